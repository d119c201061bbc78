package ports

import "context"

// PackageInstaller abstracts the Python package installer driven by the
// dependency installer engine. The python argument is the interpreter to
// operate on (the venv interpreter for venv installs, the ambient one
// otherwise); threading it explicitly keeps the install target out of
// process-wide state.
//
//go:generate go run go.uber.org/mock/mockgen -source=pip.go -destination=mocks/mock_pip.go -package=mocks
type PackageInstaller interface {
	// List enumerates installed distribution names. Shadow installations show
	// up as repeated entries across calls, which is exactly what the purge
	// loop needs to observe.
	List(ctx context.Context, python string) ([]string, error)

	// Install installs the package rooted at dir, editable when requested.
	Install(ctx context.Context, python, dir string, editable bool) error

	// InstallRequirements installs the library dependencies declared in the
	// requirements file at path.
	InstallRequirements(ctx context.Context, python, path string) error

	// Uninstall removes one installed copy of the named distribution.
	Uninstall(ctx context.Context, python, name string) error
}
