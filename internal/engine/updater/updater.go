// Package updater brings an existing installation up to date: pull every
// tracked package, rebuild what changed, refresh the recorded state.
package updater

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"

	"github.com/bedrock-fem/bedrock/internal/core/domain"
	"github.com/bedrock-fem/bedrock/internal/core/ports"
	"github.com/bedrock-fem/bedrock/internal/engine/installer"
)

// Updater drives the per-package update state machine over the install
// records left behind by a previous run.
type Updater struct {
	scm       ports.SourceControl
	store     ports.StateStore
	installer *installer.Installer
	logger    ports.Logger
	telemetry ports.Telemetry
}

// NewUpdater creates an updater.
func NewUpdater(
	scm ports.SourceControl,
	store ports.StateStore,
	inst *installer.Installer,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Updater {
	return &Updater{
		scm:       scm,
		store:     store,
		installer: inst,
		logger:    logger,
		telemetry: telemetry,
	}
}

// Run updates every tracked package in install order: secondary packages
// first, then strata, then strata4py. Each package is rebuilt at most once.
func (u *Updater) Run(ctx context.Context, cfg *domain.Config, baseDir string) error {
	infos, err := u.store.All()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		return domain.ErrNotInstalled
	}

	set := domain.NewSet()
	for _, info := range infos {
		set.Add(domain.Package{Name: info.Package, URL: info.URL, Branch: info.Branch})
	}

	for _, pkg := range set.InstallOrder() {
		if err := u.updateOne(ctx, cfg, pkg, filepath.Join(baseDir, pkg.Name)); err != nil {
			return err
		}
	}
	return nil
}

func (u *Updater) updateOne(ctx context.Context, cfg *domain.Config, pkg domain.Package, dir string) error {
	stepCtx, vertex := u.telemetry.Record(ctx, fmt.Sprintf("update %s", pkg.Name))

	state, rev, err := u.pull(stepCtx, pkg, dir)
	if err != nil {
		vertex.Complete(err)
		return err
	}

	policy := domain.PolicyFor(pkg.Name)
	if !policy.ShouldRebuild(state, cfg.ForceRebuild) {
		u.logger.Info(fmt.Sprintf("%s unchanged, skipping rebuild", pkg.Name))
		vertex.Skipped()
		return u.refresh(pkg, dir, rev)
	}

	if err := u.installer.InstallPackage(stepCtx, cfg, pkg, dir); err != nil {
		vertex.Complete(err)
		return err
	}
	vertex.Complete(nil)
	return nil
}

// pull fast-forwards the checkout and classifies the package by comparing
// the revision identifier before and after.
func (u *Updater) pull(ctx context.Context, pkg domain.Package, dir string) (domain.ChangeState, string, error) {
	before, err := u.scm.Revision(ctx, dir)
	if err != nil {
		return "", "", zerr.With(err, "package", pkg.Name)
	}
	if err := u.scm.Pull(ctx, dir); err != nil {
		return "", "", zerr.With(err, "package", pkg.Name)
	}
	after, err := u.scm.Revision(ctx, dir)
	if err != nil {
		return "", "", zerr.With(err, "package", pkg.Name)
	}

	if before == after {
		return domain.Unchanged, after, nil
	}
	return domain.Changed, after, nil
}

// refresh updates the stored record for a package that was pulled but not
// rebuilt, so status output reflects the checkout on disk.
func (u *Updater) refresh(pkg domain.Package, dir, rev string) error {
	info := domain.InstallInfo{
		Package:   pkg.Name,
		URL:       pkg.URL,
		Branch:    pkg.Branch,
		Revision:  rev,
		Timestamp: time.Now().UTC(),
	}

	manifest := filepath.Join(dir, domain.ManifestName)
	if hash, err := domain.FingerprintFile(manifest); err == nil {
		info.ManifestHash = hash
	}

	return u.store.Put(info)
}
