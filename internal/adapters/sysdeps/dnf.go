package sysdeps

import (
	"context"

	"go.trai.ch/zerr"

	"github.com/bedrock-fem/bedrock/internal/core/domain"
	"github.com/bedrock-fem/bedrock/internal/core/ports"
)

// Dnf drives dnf/rpm on Fedora-family systems.
type Dnf struct {
	exec ports.Executor
}

// NewDnf creates the dnf adapter.
func NewDnf(exec ports.Executor) *Dnf {
	return &Dnf{exec: exec}
}

var _ ports.SystemPackageManager = (*Dnf)(nil)

// Name identifies the manager.
func (d *Dnf) Name() string { return "dnf" }

// Installed queries the rpm database for the package.
func (d *Dnf) Installed(ctx context.Context, pkg string) (bool, error) {
	_, err := d.exec.Output(ctx, domain.NewCommand("rpm", "-q", pkg))
	return err == nil, nil
}

// Install installs the package non-interactively.
func (d *Dnf) Install(ctx context.Context, pkg string, sudo bool) error {
	argv := sudoWrap([]string{"dnf", "install", "-y", pkg}, sudo)
	if err := d.exec.Run(ctx, domain.NewCommand(argv...), ports.StepStdout(ctx), ports.StepStderr(ctx)); err != nil {
		return zerr.With(zerr.Wrap(err, "dnf install failed"), "package", pkg)
	}
	return nil
}
