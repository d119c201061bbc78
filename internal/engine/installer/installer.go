// Package installer installs fetched packages into the target environment:
// pip for Python packages, configure/make for the native solver stack.
package installer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/zerr"

	"github.com/bedrock-fem/bedrock/internal/core/domain"
	"github.com/bedrock-fem/bedrock/internal/core/ports"
)

// maxPurgePasses bounds the strata4py uninstall loop. The installer is known
// to leave shadow copies behind; a loop that has not converged after this
// many passes signals corrupted installer state that retrying will not fix.
const maxPurgePasses = 10

// Installer drives per-package installation in the fixed order the set
// prescribes: secondary packages first, then strata, then strata4py.
type Installer struct {
	pip       ports.PackageInstaller
	exec      ports.Executor
	scm       ports.SourceControl
	store     ports.StateStore
	logger    ports.Logger
	telemetry ports.Telemetry
}

// NewInstaller creates an installer.
func NewInstaller(
	pip ports.PackageInstaller,
	exec ports.Executor,
	scm ports.SourceControl,
	store ports.StateStore,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Installer {
	return &Installer{
		pip:       pip,
		exec:      exec,
		scm:       scm,
		store:     store,
		logger:    logger,
		telemetry: telemetry,
	}
}

// Python returns the interpreter all pip operations target: the venv
// interpreter for venv and developer installs, the ambient one otherwise.
func (i *Installer) Python(cfg *domain.Config) string {
	if venv := cfg.Venv(); venv != "" {
		return filepath.Join(venv, "bin", "python")
	}
	return "python3"
}

// EnsureVenv creates the virtual environment unless it already exists.
func (i *Installer) EnsureVenv(ctx context.Context, cfg *domain.Config) error {
	venv := cfg.Venv()
	if venv == "" {
		return nil
	}
	if _, err := os.Stat(filepath.Join(venv, "bin", "python")); err == nil {
		i.logger.Info(fmt.Sprintf("virtual environment %s already exists", venv))
		return nil
	}

	stepCtx, vertex := i.telemetry.Record(ctx, fmt.Sprintf("create virtual environment %s", venv))
	cmd := domain.NewCommand("python3", "-m", "venv", venv)
	err := i.exec.Run(stepCtx, cmd, ports.StepStdout(stepCtx), ports.StepStderr(stepCtx))
	vertex.Complete(err)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrVenvCreateFailed, err.Error()), "venv", venv)
	}
	return nil
}

// InstallAll installs every package in the set, secondaries before the two
// primaries, and records install state as it goes.
func (i *Installer) InstallAll(ctx context.Context, cfg *domain.Config, set *domain.Set, baseDir string) error {
	for _, pkg := range set.InstallOrder() {
		if err := i.InstallPackage(ctx, cfg, pkg, filepath.Join(baseDir, pkg.Name)); err != nil {
			return err
		}
	}
	return nil
}

// InstallPackage installs one package from its cloned directory and records
// its state. Update mode reuses it for rebuilds.
func (i *Installer) InstallPackage(ctx context.Context, cfg *domain.Config, pkg domain.Package, dir string) error {
	stepCtx, vertex := i.telemetry.Record(ctx, fmt.Sprintf("install %s", pkg.Name))

	var err error
	switch pkg.Name {
	case domain.StrataPackage:
		err = i.buildStrata(stepCtx, cfg, dir)
	case domain.Strata4pyPackage:
		err = i.installStrata4py(stepCtx, cfg, dir)
	default:
		err = i.installSecondary(stepCtx, cfg, dir)
	}
	vertex.Complete(err)
	if err != nil {
		return err
	}

	return i.recordState(ctx, cfg, pkg, dir)
}

func (i *Installer) installSecondary(ctx context.Context, cfg *domain.Config, dir string) error {
	python := i.Python(cfg)

	// Library dependencies first, so the package install never resolves them
	// from scratch against a different index state.
	reqs := filepath.Join(dir, "requirements.txt")
	if _, err := os.Stat(reqs); err == nil {
		if err := i.pip.InstallRequirements(ctx, python, reqs); err != nil {
			return zerr.Wrap(domain.ErrInstallFailed, err.Error())
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to stat requirements file"), "path", reqs)
	}

	if err := i.pip.Install(ctx, python, dir, cfg.Developer()); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrInstallFailed, err.Error()), "dir", dir)
	}
	return nil
}

// buildStrata runs the native configure/make build. An externally built
// strata named by STRATA_DIR is honoured instead when configured.
func (i *Installer) buildStrata(ctx context.Context, cfg *domain.Config, dir string) error {
	if cfg.HonourStrataDir && cfg.StrataDir != "" {
		i.logger.Info(fmt.Sprintf("using externally built strata at %s", cfg.StrataDir))
		return nil
	}

	configure := domain.NewCommand(append([]string{"./configure"}, i.configureOptions(cfg)...)...).InDir(dir)
	if err := i.exec.Run(ctx, configure, ports.StepStdout(ctx), ports.StepStderr(ctx)); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrBuildFailed, err.Error()), "stage", "configure")
	}

	build := domain.NewCommand("make").InDir(dir)
	if err := i.exec.Run(ctx, build, ports.StepStdout(ctx), ports.StepStderr(ctx)); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrBuildFailed, err.Error()), "stage", "make")
	}
	return nil
}

// configureOptions merges the computed defaults with the caller's extra
// options from STRATA_CONFIGURE_OPTIONS. Extras come last so they win.
func (i *Installer) configureOptions(cfg *domain.Config) []string {
	var opts []string
	if cfg.MPICompiler != "" {
		opts = append(opts, "--with-cc="+cfg.MPICompiler)
	}
	return append(opts, strings.Fields(cfg.StrataConfigureOptions)...)
}

// installStrata4py purges every shadow copy of the binding before installing
// the fresh one.
func (i *Installer) installStrata4py(ctx context.Context, cfg *domain.Config, dir string) error {
	python := i.Python(cfg)
	if err := i.purge(ctx, python, domain.Strata4pyPackage); err != nil {
		return err
	}
	if err := i.pip.Install(ctx, python, dir, cfg.Developer()); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrInstallFailed, err.Error()), "dir", dir)
	}
	return nil
}

// purge uninstalls the named distribution until a listing comes back clean.
// Each uninstall removes only the topmost shadow copy, so the loop repeats;
// a loop still finding copies after maxPurgePasses aborts.
func (i *Installer) purge(ctx context.Context, python, name string) error {
	for pass := 0; ; pass++ {
		installed, err := i.pip.List(ctx, python)
		if err != nil {
			return zerr.Wrap(domain.ErrInstallFailed, err.Error())
		}

		count := 0
		for _, entry := range installed {
			if entry == name {
				count++
			}
		}
		if count == 0 {
			return nil
		}
		if pass == maxPurgePasses {
			wrapped := zerr.Wrap(domain.ErrPurgeNotConverging, "pip still reports installed copies")
			wrapped = zerr.With(wrapped, "distribution", name)
			return zerr.With(wrapped, "passes", maxPurgePasses)
		}

		for j := 0; j < count; j++ {
			if err := i.pip.Uninstall(ctx, python, name); err != nil {
				return zerr.Wrap(domain.ErrInstallFailed, err.Error())
			}
		}
	}
}

func (i *Installer) recordState(ctx context.Context, cfg *domain.Config, pkg domain.Package, dir string) error {
	rev, err := i.scm.Revision(ctx, dir)
	if err != nil {
		return err
	}

	info := domain.InstallInfo{
		Package:   pkg.Name,
		URL:       pkg.URL,
		Branch:    cfg.Branch(pkg.Name, pkg.Branch),
		Revision:  rev,
		Timestamp: time.Now().UTC(),
	}

	manifest := filepath.Join(dir, domain.ManifestName)
	if _, err := os.Stat(manifest); err == nil {
		hash, err := domain.FingerprintFile(manifest)
		if err != nil {
			return err
		}
		info.ManifestHash = hash
	}

	return i.store.Put(info)
}
