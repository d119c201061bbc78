package ports

import "context"

// SystemPackageManager abstracts the platform package manager used for
// native toolchain provisioning. Implementations query before installing;
// a present package is never upgraded.
//
//go:generate go run go.uber.org/mock/mockgen -source=system.go -destination=mocks/mock_system.go -package=mocks
type SystemPackageManager interface {
	// Name identifies the manager for diagnostics ("apt", "dnf", "brew").
	Name() string

	// Installed reports whether the named package is already present.
	Installed(ctx context.Context, pkg string) (bool, error)

	// Install installs the named package, optionally through sudo.
	Install(ctx context.Context, pkg string, sudo bool) error
}
