// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"github.com/bedrock-fem/bedrock/internal/core/domain"
)

// Executor runs external commands. Every shell-out in the bootstrapper goes
// through this interface so engines can be tested against a synthetic one.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes the command, streaming its output to stdout and stderr.
	// A non-zero exit status is returned as an error carrying the exit code.
	Run(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error

	// Output executes the command and returns its captured standard output
	// with surrounding whitespace trimmed. Stderr is attached to the error
	// on failure.
	Output(ctx context.Context, cmd domain.Command) (string, error)
}
