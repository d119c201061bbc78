package sysdeps

import (
	"context"

	"go.trai.ch/zerr"

	"github.com/bedrock-fem/bedrock/internal/core/domain"
	"github.com/bedrock-fem/bedrock/internal/core/ports"
)

// Apt drives apt-get/dpkg on Debian-family systems.
type Apt struct {
	exec ports.Executor
}

// NewApt creates the apt adapter.
func NewApt(exec ports.Executor) *Apt {
	return &Apt{exec: exec}
}

var _ ports.SystemPackageManager = (*Apt)(nil)

// Name identifies the manager.
func (a *Apt) Name() string { return "apt" }

// Installed queries dpkg for the package. A non-zero exit means not present;
// there is no version comparison, a present package is never upgraded.
func (a *Apt) Installed(ctx context.Context, pkg string) (bool, error) {
	_, err := a.exec.Output(ctx, domain.NewCommand("dpkg", "-s", pkg))
	return err == nil, nil
}

// Install installs the package non-interactively.
func (a *Apt) Install(ctx context.Context, pkg string, sudo bool) error {
	argv := sudoWrap([]string{"apt-get", "install", "-y", pkg}, sudo)
	cmd := domain.NewCommand(argv...).WithEnv("DEBIAN_FRONTEND=noninteractive")
	if err := a.exec.Run(ctx, cmd, ports.StepStdout(ctx), ports.StepStderr(ctx)); err != nil {
		return zerr.With(zerr.Wrap(err, "apt-get install failed"), "package", pkg)
	}
	return nil
}
