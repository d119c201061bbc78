// Package provision installs the native toolchain packages the framework
// build needs, through whichever system package manager the host carries.
package provision

import (
	"context"
	"fmt"
	"os/exec"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/bedrock-fem/bedrock/internal/core/domain"
	"github.com/bedrock-fem/bedrock/internal/core/ports"
)

// Package names differ across managers, so each one carries its own list.
// The minimal set is the compiler/git/MPI core a build cannot do without.
var packageSets = map[string]struct{ full, minimal []string }{
	"apt": {
		full: []string{
			"build-essential", "gfortran", "git", "cmake", "pkg-config",
			"libopenmpi-dev", "openmpi-bin", "libopenblas-dev", "liblapack-dev",
			"libspatialindex-dev", "python3-dev", "python3-venv", "autoconf",
			"automake", "libtool", "flex", "bison", "zlib1g-dev",
		},
		minimal: []string{
			"build-essential", "gfortran", "git", "libopenmpi-dev", "openmpi-bin",
			"python3-dev", "python3-venv",
		},
	},
	"dnf": {
		full: []string{
			"gcc", "gcc-c++", "gcc-gfortran", "git", "cmake", "pkgconf-pkg-config",
			"openmpi-devel", "openblas-devel", "lapack-devel",
			"spatialindex-devel", "python3-devel", "autoconf", "automake",
			"libtool", "flex", "bison", "zlib-devel",
		},
		minimal: []string{
			"gcc", "gcc-c++", "gcc-gfortran", "git", "openmpi-devel", "python3-devel",
		},
	},
	"brew": {
		full: []string{
			"gcc", "git", "cmake", "pkg-config", "open-mpi", "openblas",
			"spatialindex", "python", "autoconf", "automake", "libtool",
		},
		minimal: []string{"gcc", "git", "open-mpi", "python"},
	},
}

// requiredTools must resolve on PATH once provisioning is done; a build
// without them fails much later with a far worse message.
var requiredTools = []string{"git", "make", "python3"}

// Provisioner drives query-before-install system package provisioning.
type Provisioner struct {
	manager   ports.SystemPackageManager
	logger    ports.Logger
	telemetry ports.Telemetry
	lookPath  func(string) (string, error)
}

// NewProvisioner creates a provisioner. The manager may be nil when the host
// has no supported package manager; provisioning then degrades to a warning.
func NewProvisioner(manager ports.SystemPackageManager, logger ports.Logger, telemetry ports.Telemetry) *Provisioner {
	return &Provisioner{
		manager:   manager,
		logger:    logger,
		telemetry: telemetry,
		lookPath:  exec.LookPath,
	}
}

// Run provisions the platform package set for the configuration, then checks
// that the required build tools actually resolve.
func (p *Provisioner) Run(ctx context.Context, cfg *domain.Config) error {
	switch {
	case cfg.NoSystemPackages:
		p.logger.Info("skipping system package installation")
	case p.manager == nil:
		p.logger.Warn("no supported system package manager found, install the required packages manually")
	default:
		if err := p.provision(ctx, cfg); err != nil {
			return err
		}
	}
	return p.CheckTools(cfg)
}

func (p *Provisioner) provision(ctx context.Context, cfg *domain.Config) error {
	wanted := p.packages(cfg)

	// Presence queries are read-only, so they run concurrently. Installs
	// below stay sequential: package managers lock their databases.
	present := make([]bool, len(wanted))
	g, gctx := errgroup.WithContext(ctx)
	for i, pkg := range wanted {
		g.Go(func() error {
			ok, err := p.manager.Installed(gctx, pkg)
			if err != nil {
				return err
			}
			present[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return zerr.Wrap(err, "failed to query installed packages")
	}

	for i, pkg := range wanted {
		if present[i] {
			continue
		}
		stepCtx, vertex := p.telemetry.Record(ctx, fmt.Sprintf("install %s", pkg))
		err := p.manager.Install(stepCtx, pkg, cfg.Sudo)
		vertex.Complete(err)
		if err != nil {
			return err
		}
		p.logger.Info(fmt.Sprintf("installed system package %s", pkg))
	}
	return nil
}

func (p *Provisioner) packages(cfg *domain.Config) []string {
	set, ok := packageSets[p.manager.Name()]
	if !ok {
		return cfg.ExtraSystemPackages
	}
	list := set.full
	if cfg.Minimal {
		list = set.minimal
	}
	out := make([]string, 0, len(list)+len(cfg.ExtraSystemPackages))
	out = append(out, list...)
	out = append(out, cfg.ExtraSystemPackages...)
	return out
}

// CheckTools verifies the required build tools resolve on PATH. The MPI
// compiler wrapper is included when configured.
func (p *Provisioner) CheckTools(cfg *domain.Config) error {
	tools := append([]string(nil), requiredTools...)
	if cfg.MPICompiler != "" {
		tools = append(tools, cfg.MPICompiler)
	}
	for _, tool := range tools {
		if _, err := p.lookPath(tool); err != nil {
			wrapped := zerr.Wrap(domain.ErrMissingTool, fmt.Sprintf("install %s and re-run", tool))
			return zerr.With(wrapped, "tool", tool)
		}
	}
	return nil
}
