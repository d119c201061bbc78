package sysdeps

import (
	"context"

	"go.trai.ch/zerr"

	"github.com/bedrock-fem/bedrock/internal/core/domain"
	"github.com/bedrock-fem/bedrock/internal/core/ports"
)

// Brew drives Homebrew on macOS. Homebrew refuses to run under sudo, so the
// sudo flag is ignored.
type Brew struct {
	exec ports.Executor
}

// NewBrew creates the brew adapter.
func NewBrew(exec ports.Executor) *Brew {
	return &Brew{exec: exec}
}

var _ ports.SystemPackageManager = (*Brew)(nil)

// Name identifies the manager.
func (b *Brew) Name() string { return "brew" }

// Installed queries brew for the package.
func (b *Brew) Installed(ctx context.Context, pkg string) (bool, error) {
	_, err := b.exec.Output(ctx, domain.NewCommand("brew", "list", "--versions", pkg))
	return err == nil, nil
}

// Install installs the package.
func (b *Brew) Install(ctx context.Context, pkg string, _ bool) error {
	cmd := domain.NewCommand("brew", "install", pkg)
	if err := b.exec.Run(ctx, cmd, ports.StepStdout(ctx), ports.StepStderr(ctx)); err != nil {
		return zerr.With(zerr.Wrap(err, "brew install failed"), "package", pkg)
	}
	return nil
}
