package ports

import "github.com/bedrock-fem/bedrock/internal/core/domain"

// StateStore persists per-package install records between runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type StateStore interface {
	// Get retrieves the record for a package name. Returns nil, nil if absent.
	Get(pkg string) (*domain.InstallInfo, error)

	// Put stores the record.
	Put(info domain.InstallInfo) error

	// All returns every record, ordered by package name.
	All() ([]domain.InstallInfo, error)
}
