package progrock

import (
	"io"
	"strings"

	"github.com/vito/progrock"

	"github.com/bedrock-fem/bedrock/internal/core/ports"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder. Output
// written to its streams lands on the tape and is echoed through the logger.
type Vertex struct {
	vertex  *progrock.VertexRecorder
	stdout  io.Writer
	stderr  io.Writer
	echoOut *echoWriter
	echoErr *echoWriter
}

func newVertex(v *progrock.VertexRecorder, logger ports.Logger) *Vertex {
	echoOut := &echoWriter{logger: logger}
	echoErr := &echoWriter{logger: logger, errStream: true}
	return &Vertex{
		vertex:  v,
		stdout:  io.MultiWriter(v.Stdout(), echoOut),
		stderr:  io.MultiWriter(v.Stderr(), echoErr),
		echoOut: echoOut,
		echoErr: echoErr,
	}
}

// Stdout returns a writer to capture standard output stream.
func (v *Vertex) Stdout() io.Writer {
	return v.stdout
}

// Stderr returns a writer to capture error output stream.
func (v *Vertex) Stderr() io.Writer {
	return v.stderr
}

// Complete marks the vertex as finished (successfully or with an error).
func (v *Vertex) Complete(err error) {
	v.echoOut.flush()
	v.echoErr.flush()
	v.vertex.Done(err)
}

// Skipped marks the vertex as requiring no work, shown like a cache hit.
func (v *Vertex) Skipped() {
	v.vertex.Cached()
	v.vertex.Done(nil)
}

// echoWriter forwards subprocess output to the logger one line at a time.
// Stderr lines surface as warnings.
type echoWriter struct {
	logger    ports.Logger
	errStream bool
	buf       strings.Builder
}

func (w *echoWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	for {
		s := w.buf.String()
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			break
		}
		w.emit(s[:i])
		w.buf.Reset()
		w.buf.WriteString(s[i+1:])
	}
	return len(p), nil
}

// flush emits whatever partial line remains when the step finishes.
func (w *echoWriter) flush() {
	if w.buf.Len() > 0 {
		w.emit(w.buf.String())
		w.buf.Reset()
	}
}

func (w *echoWriter) emit(line string) {
	if line == "" {
		return
	}
	if w.errStream {
		w.logger.Warn(line)
		return
	}
	w.logger.Info(line)
}
