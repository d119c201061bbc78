package ports

import (
	"context"
	"io"
)

// Telemetry records the bootstrapper's steps on a progress tape.
type Telemetry interface {
	// Record starts a new step vertex and returns a context carrying it.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is one recorded step. Subprocess output streams into its writers.
type Vertex interface {
	// Stdout returns a writer capturing the step's standard output.
	Stdout() io.Writer

	// Stderr returns a writer capturing the step's error output.
	Stderr() io.Writer

	// Complete marks the step finished, successfully when err is nil.
	Complete(err error)

	// Skipped marks the step as not needed (already present, unchanged).
	Skipped()
}

type vertexKey struct{}

// ContextWithVertex returns a context carrying the vertex.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex carried by the context, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok
}

// StepStdout returns the context vertex's stdout writer, or nil so the
// executor falls back to the logger.
func StepStdout(ctx context.Context) io.Writer {
	if v, ok := VertexFromContext(ctx); ok {
		return v.Stdout()
	}
	return nil
}

// StepStderr returns the context vertex's stderr writer, or nil.
func StepStderr(ctx context.Context) io.Writer {
	if v, ok := VertexFromContext(ctx); ok {
		return v.Stderr()
	}
	return nil
}
