// Package pip implements the Python package installer adapter over
// `python -m pip`.
package pip

import (
	"context"
	"strings"

	"go.trai.ch/zerr"

	"github.com/bedrock-fem/bedrock/internal/core/domain"
	"github.com/bedrock-fem/bedrock/internal/core/ports"
)

// Installer implements ports.PackageInstaller by shelling out to pip through
// the executor port. Every invocation goes through `python -m pip` so the
// interpreter decides which site-packages is operated on.
type Installer struct {
	exec ports.Executor
}

// NewInstaller creates a new pip installer.
func NewInstaller(exec ports.Executor) *Installer {
	return &Installer{exec: exec}
}

var _ ports.PackageInstaller = (*Installer)(nil)

// List enumerates installed distribution names for the interpreter. The
// freeze format yields one "name==version" line per distribution; shadowed
// duplicates appear as repeated names.
func (i *Installer) List(ctx context.Context, python string) ([]string, error) {
	out, err := i.exec.Output(ctx, domain.NewCommand(python, "-m", "pip", "list", "--format=freeze"))
	if err != nil {
		return nil, zerr.Wrap(err, "pip list failed")
	}
	var names []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, _, _ := strings.Cut(line, "==")
		names = append(names, name)
	}
	return names, nil
}

// Install installs the package rooted at dir into the interpreter's
// environment, editable when requested.
func (i *Installer) Install(ctx context.Context, python, dir string, editable bool) error {
	argv := []string{python, "-m", "pip", "install"}
	if editable {
		argv = append(argv, "-e")
	}
	argv = append(argv, dir)
	if err := i.exec.Run(ctx, domain.NewCommand(argv...), ports.StepStdout(ctx), ports.StepStderr(ctx)); err != nil {
		return zerr.With(zerr.Wrap(err, "pip install failed"), "dir", dir)
	}
	return nil
}

// InstallRequirements installs the dependencies declared in the requirements
// file at path.
func (i *Installer) InstallRequirements(ctx context.Context, python, path string) error {
	cmd := domain.NewCommand(python, "-m", "pip", "install", "-r", path)
	if err := i.exec.Run(ctx, cmd, ports.StepStdout(ctx), ports.StepStderr(ctx)); err != nil {
		return zerr.With(zerr.Wrap(err, "pip install -r failed"), "path", path)
	}
	return nil
}

// Uninstall removes one installed copy of the named distribution. When
// several copies shadow each other only the topmost is removed, so callers
// repeat until the name stops listing.
func (i *Installer) Uninstall(ctx context.Context, python, name string) error {
	cmd := domain.NewCommand(python, "-m", "pip", "uninstall", "-y", name)
	if err := i.exec.Run(ctx, cmd, ports.StepStdout(ctx), ports.StepStderr(ctx)); err != nil {
		return zerr.With(zerr.Wrap(err, "pip uninstall failed"), "distribution", name)
	}
	return nil
}
