// Package telemetry provides a no-op telemetry implementation for tests and
// callers that do not want a progress tape.
package telemetry

import (
	"context"
	"io"

	"github.com/bedrock-fem/bedrock/internal/core/ports"
)

// Noop implements ports.Telemetry and records nothing.
type Noop struct{}

// NewNoop creates a no-op telemetry recorder.
func NewNoop() *Noop {
	return &Noop{}
}

var _ ports.Telemetry = (*Noop)(nil)

// Record returns the context unchanged and a vertex that discards everything.
func (n *Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noopVertex{}
}

// Close does nothing.
func (n *Noop) Close() error { return nil }

type noopVertex struct{}

func (noopVertex) Stdout() io.Writer { return io.Discard }
func (noopVertex) Stderr() io.Writer { return io.Discard }
func (noopVertex) Complete(error)    {}
func (noopVertex) Skipped()          {}
