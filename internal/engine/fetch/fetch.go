// Package fetch clones the framework's source repositories and discovers
// their transitive dependencies through per-repository manifests.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"

	"github.com/bedrock-fem/bedrock/internal/core/domain"
	"github.com/bedrock-fem/bedrock/internal/core/ports"
)

// Fetcher clones repositories and walks their dependency manifests
// breadth-first until no new packages turn up.
type Fetcher struct {
	scm       ports.SourceControl
	logger    ports.Logger
	telemetry ports.Telemetry
}

// NewFetcher creates a fetcher.
func NewFetcher(scm ports.SourceControl, logger ports.Logger, telemetry ports.Telemetry) *Fetcher {
	return &Fetcher{scm: scm, logger: logger, telemetry: telemetry}
}

// Fetch clones root into baseDir and follows dependency manifests until the
// set is closed. allowExisting adopts directories that are already present
// (update mode re-fetching newly declared dependencies); in install mode an
// existing directory is fatal.
func (f *Fetcher) Fetch(ctx context.Context, cfg *domain.Config, root domain.Package, baseDir string, allowExisting bool) (*domain.Set, error) {
	set := domain.NewSet()
	set.Add(root)

	// Breadth-first; Add ignores duplicate names, so packages declared by
	// several manifests are cloned exactly once.
	queue := []domain.Package{root}
	for len(queue) > 0 {
		pkg := queue[0]
		queue = queue[1:]
		dir := filepath.Join(baseDir, pkg.Name)

		if err := f.fetchOne(ctx, cfg, pkg, dir, allowExisting); err != nil {
			return nil, err
		}

		deps, err := f.readManifest(dir)
		if err != nil {
			return nil, err
		}
		for _, dep := range deps {
			if set.Add(dep) {
				f.logger.Info(fmt.Sprintf("discovered dependency %s", dep.Name))
				queue = append(queue, dep)
			}
		}
	}

	return set, nil
}

func (f *Fetcher) fetchOne(ctx context.Context, cfg *domain.Config, pkg domain.Package, dir string, allowExisting bool) error {
	if _, err := os.Stat(dir); err == nil {
		if !allowExisting {
			wrapped := zerr.Wrap(domain.ErrPackageDirExists, "remove it or run update")
			wrapped = zerr.With(wrapped, "package", pkg.Name)
			return zerr.With(wrapped, "dir", dir)
		}
		f.logger.Info(fmt.Sprintf("%s already present, skipping clone", pkg.Name))
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to stat package directory"), "dir", dir)
	}

	branch := cfg.Branch(pkg.Name, pkg.Branch)
	if cfg.BranchOverridden(pkg.Name) {
		f.logger.Info(fmt.Sprintf("%s pinned to branch %s by override", pkg.Name, branch))
	}
	stepCtx, vertex := f.telemetry.Record(ctx, fmt.Sprintf("clone %s", pkg.Name))
	err := f.clone(stepCtx, cfg, pkg, branch, dir)
	vertex.Complete(err)
	return err
}

// clone attempts the authenticated transport first and falls back to
// anonymous https. Override-pinned packages clone anonymously straight away.
// Exactly one error surfaces when both fail.
func (f *Fetcher) clone(ctx context.Context, cfg *domain.Config, pkg domain.Package, branch, dir string) error {
	if !cfg.NoSSH && !cfg.BranchOverridden(pkg.Name) {
		if err := f.scm.Clone(ctx, domain.SSHSource(pkg.URL), branch, dir); err == nil {
			return nil
		}
		f.logger.Warn(fmt.Sprintf("ssh clone of %s failed, falling back to https", pkg.Name))
	}

	if err := f.scm.Clone(ctx, domain.HTTPSSource(pkg.URL), branch, dir); err != nil {
		wrapped := zerr.Wrap(domain.ErrCloneFailed, "every transport failed")
		wrapped = zerr.With(wrapped, "package", pkg.Name)
		wrapped = zerr.With(wrapped, "url", pkg.URL)
		return zerr.With(wrapped, "branch", branch)
	}
	return nil
}

// readManifest parses the package's dependency manifest. A missing manifest
// means the package declares no dependencies.
func (f *Fetcher) readManifest(dir string) ([]domain.Package, error) {
	path := filepath.Join(dir, domain.ManifestName)

	file, err := os.Open(path) //nolint:gosec // path is under the install tree
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrManifestRead, err.Error()), "path", path)
	}
	defer file.Close()

	deps, err := domain.ParseManifest(file)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrManifestRead, err.Error()), "path", path)
	}
	return deps, nil
}
