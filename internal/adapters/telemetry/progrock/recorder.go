// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"

	"github.com/bedrock-fem/bedrock/internal/core/ports"
)

// Recorder implements the ports.Telemetry interface on a progrock tape. Every
// bootstrap step becomes one vertex with the subprocess output attached; the
// output is also echoed line by line through the logger, so failures stay
// diagnosable and the log-file mirror sees what the subprocesses printed.
type Recorder struct {
	w      progrock.Writer
	rec    *progrock.Recorder
	logger ports.Logger
}

// New creates a new Recorder with a default tape.
func New(logger ports.Logger) ports.Telemetry {
	return NewRecorder(progrock.NewTape(), logger)
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer, logger ports.Logger) *Recorder {
	rec := progrock.NewRecorder(w)
	return &Recorder{
		w:      w,
		rec:    rec,
		logger: logger,
	}
}

var _ ports.Telemetry = (*Recorder)(nil)

// Record starts recording a new step vertex and returns a context carrying it.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	vertex := newVertex(v, r.logger)
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
