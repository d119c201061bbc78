package ports

import "context"

// SourceControl abstracts the version control client used for fetching and
// updating package repositories.
//
//go:generate go run go.uber.org/mock/mockgen -source=vcs.go -destination=mocks/mock_vcs.go -package=mocks
type SourceControl interface {
	// Clone checks out the given branch of url into dir.
	Clone(ctx context.Context, url, branch, dir string) error

	// Pull fast-forwards the checkout in dir.
	Pull(ctx context.Context, dir string) error

	// Revision returns the current revision identifier of the checkout in dir.
	Revision(ctx context.Context, dir string) (string, error)
}
