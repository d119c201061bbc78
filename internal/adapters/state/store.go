// Package state persists per-package install records in a flat JSON file.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.trai.ch/zerr"

	"github.com/bedrock-fem/bedrock/internal/core/domain"
)

// DefaultPath is the store location relative to the installation directory.
const DefaultPath = ".bedrock/state.json"

// Store implements ports.StateStore using a flat JSON file keyed by package
// name. The whole file is loaded once and rewritten on every Put; the record
// set is a handful of packages, not a database.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.InstallInfo
}

// NewStore creates a state store backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.InstallInfo),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(domain.ErrStateReadFailed, err.Error())
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(domain.ErrStateReadFailed, err.Error())
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrStateWriteFailed, err.Error())
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(domain.ErrStateWriteFailed, err.Error())
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(domain.ErrStateWriteFailed, err.Error())
	}

	return nil
}

// Get retrieves the record for a package name. Returns nil, nil if absent.
func (s *Store) Get(pkg string) (*domain.InstallInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, ok := s.cache[pkg]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// Put stores the record and flushes the file.
func (s *Store) Put(info domain.InstallInfo) error {
	s.mu.Lock()
	s.cache[info.Package] = info
	s.mu.Unlock()

	return s.save()
}

// All returns every record, ordered by package name.
func (s *Store) All() ([]domain.InstallInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	infos := make([]domain.InstallInfo, 0, len(s.cache))
	for _, info := range s.cache {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Package < infos[j].Package
	})
	return infos, nil
}
