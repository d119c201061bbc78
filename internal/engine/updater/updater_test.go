package updater_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bedrock-fem/bedrock/internal/adapters/telemetry"
	"github.com/bedrock-fem/bedrock/internal/core/domain"
	"github.com/bedrock-fem/bedrock/internal/core/ports/mocks"
	"github.com/bedrock-fem/bedrock/internal/engine/installer"
	"github.com/bedrock-fem/bedrock/internal/engine/updater"
)

type fixture struct {
	pip   *mocks.MockPackageInstaller
	exec  *mocks.MockExecutor
	scm   *mocks.MockSourceControl
	store *mocks.MockStateStore
	upd   *updater.Updater
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	f := &fixture{
		pip:   mocks.NewMockPackageInstaller(ctrl),
		exec:  mocks.NewMockExecutor(ctrl),
		scm:   mocks.NewMockSourceControl(ctrl),
		store: mocks.NewMockStateStore(ctrl),
	}
	noop := telemetry.NewNoop()
	inst := installer.NewInstaller(f.pip, f.exec, f.scm, f.store, log, noop)
	f.upd = updater.NewUpdater(f.scm, f.store, inst, log, noop)
	return f
}

func mkdir(t *testing.T, base string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.MkdirAll(filepath.Join(base, name), 0o755))
	}
}

func TestRun_NoStateIsFatal(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().All().Return(nil, nil)

	err := f.upd.Run(context.Background(), &domain.Config{Kind: domain.InstallVenv}, t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotInstalled))
}

func TestRun_UnchangedPrimarySkipsRebuild(t *testing.T) {
	f := newFixture(t)
	baseDir := t.TempDir()
	mkdir(t, baseDir, "strata")

	f.store.EXPECT().All().Return([]domain.InstallInfo{
		{Package: "strata", URL: "https://example.com/strata", Branch: "main", Revision: "aaa"},
	}, nil)

	dir := filepath.Join(baseDir, "strata")
	gomock.InOrder(
		f.scm.EXPECT().Revision(gomock.Any(), dir).Return("aaa", nil),
		f.scm.EXPECT().Pull(gomock.Any(), dir).Return(nil),
		f.scm.EXPECT().Revision(gomock.Any(), dir).Return("aaa", nil),
	)
	// No executor expectations: unchanged means no configure/make.
	f.store.EXPECT().Put(gomock.Any()).Return(nil)

	cfg := &domain.Config{Kind: domain.InstallVenv}
	require.NoError(t, f.upd.Run(context.Background(), cfg, baseDir))
}

func TestRun_ChangedPrimaryRebuilds(t *testing.T) {
	f := newFixture(t)
	baseDir := t.TempDir()
	mkdir(t, baseDir, "strata")

	f.store.EXPECT().All().Return([]domain.InstallInfo{
		{Package: "strata", URL: "https://example.com/strata", Branch: "main", Revision: "aaa"},
	}, nil)

	dir := filepath.Join(baseDir, "strata")
	gomock.InOrder(
		f.scm.EXPECT().Revision(gomock.Any(), dir).Return("aaa", nil),
		f.scm.EXPECT().Pull(gomock.Any(), dir).Return(nil),
		f.scm.EXPECT().Revision(gomock.Any(), dir).Return("bbb", nil),
	)
	// The rebuild runs configure and make, then records state.
	f.exec.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)
	f.scm.EXPECT().Revision(gomock.Any(), dir).Return("bbb", nil)
	f.store.EXPECT().Put(gomock.Any()).Return(nil)

	cfg := &domain.Config{Kind: domain.InstallVenv}
	require.NoError(t, f.upd.Run(context.Background(), cfg, baseDir))
}

func TestRun_SecondaryAlwaysRebuilds(t *testing.T) {
	f := newFixture(t)
	baseDir := t.TempDir()
	mkdir(t, baseDir, "fiat")

	f.store.EXPECT().All().Return([]domain.InstallInfo{
		{Package: "fiat", URL: "https://example.com/fiat", Branch: "main", Revision: "aaa"},
	}, nil)

	dir := filepath.Join(baseDir, "fiat")
	gomock.InOrder(
		f.scm.EXPECT().Revision(gomock.Any(), dir).Return("aaa", nil),
		f.scm.EXPECT().Pull(gomock.Any(), dir).Return(nil),
		f.scm.EXPECT().Revision(gomock.Any(), dir).Return("aaa", nil),
	)
	// Unchanged, but secondaries reinstall every run.
	f.pip.EXPECT().Install(gomock.Any(), gomock.Any(), dir, false).Return(nil)
	f.scm.EXPECT().Revision(gomock.Any(), dir).Return("aaa", nil)
	f.store.EXPECT().Put(gomock.Any()).Return(nil)

	cfg := &domain.Config{Kind: domain.InstallVenv}
	require.NoError(t, f.upd.Run(context.Background(), cfg, baseDir))
}

func TestRun_ForceRebuildsUnchangedPrimariesOnce(t *testing.T) {
	f := newFixture(t)
	baseDir := t.TempDir()
	mkdir(t, baseDir, "strata", "strata4py")

	f.store.EXPECT().All().Return([]domain.InstallInfo{
		{Package: "strata", URL: "https://example.com/strata", Branch: "main"},
		{Package: "strata4py", URL: "https://example.com/strata4py", Branch: "main"},
	}, nil)

	// Both unchanged; force rebuilds each exactly once, strata first.
	var rebuilt []string
	for _, name := range []string{"strata", "strata4py"} {
		dir := filepath.Join(baseDir, name)
		f.scm.EXPECT().Revision(gomock.Any(), dir).Return("aaa", nil).MinTimes(2)
		f.scm.EXPECT().Pull(gomock.Any(), dir).Return(nil)
	}
	f.exec.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command, _, _ any) error {
			if cmd.Name == "./configure" {
				rebuilt = append(rebuilt, "strata")
			}
			return nil
		}).
		Times(2)
	f.pip.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.pip.EXPECT().
		Install(gomock.Any(), gomock.Any(), filepath.Join(baseDir, "strata4py"), false).
		DoAndReturn(func(_ context.Context, _, _ string, _ bool) error {
			rebuilt = append(rebuilt, "strata4py")
			return nil
		})
	f.store.EXPECT().Put(gomock.Any()).Return(nil).Times(2)

	cfg := &domain.Config{Kind: domain.InstallVenv, ForceRebuild: true}
	require.NoError(t, f.upd.Run(context.Background(), cfg, baseDir))

	assert.Equal(t, []string{"strata", "strata4py"}, rebuilt)
}

func TestRun_PullFailureNamesPackage(t *testing.T) {
	f := newFixture(t)
	baseDir := t.TempDir()
	mkdir(t, baseDir, "fiat")

	f.store.EXPECT().All().Return([]domain.InstallInfo{
		{Package: "fiat", URL: "https://example.com/fiat", Branch: "main"},
	}, nil)

	dir := filepath.Join(baseDir, "fiat")
	f.scm.EXPECT().Revision(gomock.Any(), dir).Return("aaa", nil)
	f.scm.EXPECT().Pull(gomock.Any(), dir).Return(errors.New("connection reset"))

	err := f.upd.Run(context.Background(), &domain.Config{Kind: domain.InstallVenv}, baseDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}
