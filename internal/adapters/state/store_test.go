package state_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bedrock-fem/bedrock/internal/adapters/state"
	"github.com/bedrock-fem/bedrock/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	tmpDir := t.TempDir()
	storePath := filepath.Join(tmpDir, "state.json")

	store, err := state.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	info := domain.InstallInfo{
		Package:   "strata",
		URL:       "https://github.com/bedrock-fem/strata.git",
		Branch:    "main",
		Revision:  "abc123",
		Timestamp: time.Now(),
	}

	if err := store.Put(info); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get("strata")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil")
	}
	if got.Revision != info.Revision {
		t.Errorf("expected Revision %q, got %q", info.Revision, got.Revision)
	}
}

func TestStore_GetAbsent(t *testing.T) {
	store, err := state.NewStore(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	got, err := store.Get("missing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for absent package, got %+v", got)
	}
}

func TestStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()
	storePath := filepath.Join(tmpDir, ".bedrock", "state.json")

	store1, err := state.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore 1 failed: %v", err)
	}

	info := domain.InstallInfo{
		Package: "fiat",
		URL:     "https://github.com/bedrock-fem/fiat.git",
		Branch:  "release",
	}
	if err := store1.Put(info); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	// A second instance pointing at the same file sees the record.
	store2, err := state.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore 2 failed: %v", err)
	}

	got, err := store2.Get("fiat")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil")
	}
	if got.Branch != "release" {
		t.Errorf("expected Branch %q, got %q", "release", got.Branch)
	}
}

func TestStore_AllOrdered(t *testing.T) {
	store, err := state.NewStore(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	for _, name := range []string{"strata", "bedrock", "fiat"} {
		if err := store.Put(domain.InstallInfo{Package: name}); err != nil {
			t.Fatalf("Put %s failed: %v", name, err)
		}
	}

	all, err := store.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	want := []string{"bedrock", "fiat", "strata"}
	for i, info := range all {
		if info.Package != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], info.Package)
		}
	}
}

func TestStore_OmitZero(t *testing.T) {
	tmpDir := t.TempDir()
	storePath := filepath.Join(tmpDir, "state.json")

	store, err := state.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if err := store.Put(domain.InstallInfo{Package: "bare"}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	content, err := os.ReadFile(storePath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	jsonStr := string(content)
	if strings.Contains(jsonStr, "revision") {
		t.Error("JSON should not contain 'revision' for zero value")
	}
	if strings.Contains(jsonStr, "timestamp") {
		t.Error("JSON should not contain 'timestamp' for zero value")
	}
	if !strings.Contains(jsonStr, "package") {
		t.Error("JSON should contain 'package'")
	}
}

