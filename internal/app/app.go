// Package app implements the application layer for bedrock: it sequences the
// engines into the install, update and status operations the CLI exposes.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"go.trai.ch/zerr"

	"github.com/bedrock-fem/bedrock/internal/adapters/config"
	"github.com/bedrock-fem/bedrock/internal/core/domain"
	"github.com/bedrock-fem/bedrock/internal/core/ports"
	"github.com/bedrock-fem/bedrock/internal/engine/fetch"
	"github.com/bedrock-fem/bedrock/internal/engine/installer"
	"github.com/bedrock-fem/bedrock/internal/engine/provision"
	"github.com/bedrock-fem/bedrock/internal/engine/script"
	"github.com/bedrock-fem/bedrock/internal/engine/updater"
)

// App wires the engines into the bootstrapper's operations.
type App struct {
	profile     *config.Profile
	provisioner *provision.Provisioner
	fetcher     *fetch.Fetcher
	installer   *installer.Installer
	updater     *updater.Updater
	generator   *script.Generator
	store       ports.StateStore
	logger      ports.Logger
}

// New creates a new App instance.
func New(
	profile *config.Profile,
	provisioner *provision.Provisioner,
	fetcher *fetch.Fetcher,
	inst *installer.Installer,
	upd *updater.Updater,
	generator *script.Generator,
	store ports.StateStore,
	logger ports.Logger,
) *App {
	return &App{
		profile:     profile,
		provisioner: provisioner,
		fetcher:     fetcher,
		installer:   inst,
		updater:     upd,
		generator:   generator,
		store:       store,
		logger:      logger,
	}
}

// Install bootstraps a fresh installation into the working directory.
func (a *App) Install(ctx context.Context, cfg *domain.Config) error {
	if err := a.setup(cfg); err != nil {
		return err
	}

	if err := a.provisioner.Run(ctx, cfg); err != nil {
		return zerr.Wrap(err, "system package provisioning failed")
	}

	if err := a.installer.EnsureVenv(ctx, cfg); err != nil {
		return err
	}

	root := domain.Package{Name: domain.RootPackage, URL: domain.RootPackageURL}
	set, err := a.fetcher.Fetch(ctx, cfg, root, ".", false)
	if err != nil {
		return err
	}

	if err := a.installer.InstallAll(ctx, cfg, set, "."); err != nil {
		return err
	}

	if _, err := a.generator.Generate(cfg); err != nil {
		return err
	}

	a.printActivation(cfg)
	return nil
}

// Update brings an existing installation up to date, then fetches and
// installs dependencies its manifests declared since the last run.
func (a *App) Update(ctx context.Context, cfg *domain.Config) error {
	if err := a.setup(cfg); err != nil {
		return err
	}

	if err := a.updater.Run(ctx, cfg, "."); err != nil {
		return err
	}

	return a.installNewDependencies(ctx, cfg)
}

// installNewDependencies re-walks the manifests over the updated checkouts.
// Packages that are on disk already are adopted; anything newly declared is
// cloned and installed.
func (a *App) installNewDependencies(ctx context.Context, cfg *domain.Config) error {
	rootInfo, err := a.store.Get(domain.RootPackage)
	if err != nil {
		return err
	}
	if rootInfo == nil {
		return nil
	}

	root := domain.Package{Name: rootInfo.Package, URL: rootInfo.URL, Branch: rootInfo.Branch}
	set, err := a.fetcher.Fetch(ctx, cfg, root, ".", true)
	if err != nil {
		return err
	}

	for _, pkg := range set.InstallOrder() {
		tracked, err := a.store.Get(pkg.Name)
		if err != nil {
			return err
		}
		if tracked != nil {
			continue
		}
		a.logger.Info(fmt.Sprintf("installing newly declared dependency %s", pkg.Name))
		if err := a.installer.InstallPackage(ctx, cfg, pkg, pkg.Name); err != nil {
			return err
		}
	}
	return nil
}

// Status writes the tracked packages to w.
func (a *App) Status(w io.Writer) error {
	infos, err := a.store.All()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Fprintln(w, "no packages tracked, run 'bedrock install' first")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "PACKAGE\tBRANCH\tREVISION\tUPDATED")
	for _, info := range infos {
		rev := info.Revision
		if len(rev) > 12 {
			rev = rev[:12]
		}
		updated := ""
		if !info.Timestamp.IsZero() {
			updated = info.Timestamp.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", info.Package, info.Branch, rev, updated)
	}
	return tw.Flush()
}

// setup folds the profile into the configuration, validates it, and applies
// the logging options.
func (a *App) setup(cfg *domain.Config) error {
	a.profile.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Verbose {
		if v, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
			v.SetVerbose(true)
		}
	}
	if cfg.LogFile != "" {
		//nolint:gosec // log file location is the caller's choice
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to open log file"), "path", cfg.LogFile)
		}
		a.logger.SetOutput(io.MultiWriter(os.Stderr, f))
	}
	return nil
}

func (a *App) printActivation(cfg *domain.Config) {
	if venv := cfg.Venv(); venv != "" {
		a.logger.Info(fmt.Sprintf("installation complete, activate with: . %s/bin/activate", venv))
		return
	}
	a.logger.Info("installation complete")
}
