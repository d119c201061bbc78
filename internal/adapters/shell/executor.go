// Package shell provides the shell executor adapter.
package shell

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/zerr"

	"github.com/bedrock-fem/bedrock/internal/core/domain"
	"github.com/bedrock-fem/bedrock/internal/core/ports"
)

// Executor implements ports.Executor using os/exec. Commands run with the
// process environment plus the command's own entries; command entries win.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

var _ ports.Executor = (*Executor)(nil)

// Run executes the command, streaming output to the given writers. When a
// writer is nil the stream goes to the logger line by line instead.
func (e *Executor) Run(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error {
	if cmd.Name == "" {
		return nil
	}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec // commands are assembled from configuration
	c.Dir = cmd.Dir
	c.Env = mergeEnvironment(os.Environ(), cmd.Env)

	if stdout == nil {
		stdout = &lineWriter{logger: e.logger}
	}
	if stderr == nil {
		stderr = &lineWriter{logger: e.logger, errStream: true}
	}
	c.Stdout = stdout
	c.Stderr = stderr

	if err := c.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.With(zerr.Wrap(err, "command failed"), "command", strings.Join(cmd.Argv(), " "))
		return zerr.With(wrapped, "exit_code", exitCode)
	}
	return nil
}

// Output executes the command and returns its trimmed standard output.
// On failure the captured stderr is attached to the returned error.
func (e *Executor) Output(ctx context.Context, cmd domain.Command) (string, error) {
	if cmd.Name == "" {
		return "", nil
	}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec // commands are assembled from configuration
	c.Dir = cmd.Dir
	c.Env = mergeEnvironment(os.Environ(), cmd.Env)

	out, err := c.Output()
	if err != nil {
		wrapped := zerr.With(zerr.Wrap(err, "command failed"), "command", strings.Join(cmd.Argv(), " "))
		if exitErr, ok := err.(*exec.ExitError); ok {
			wrapped = zerr.With(wrapped, "exit_code", exitErr.ExitCode())
			wrapped = zerr.With(wrapped, "stderr", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", wrapped
	}
	return strings.TrimSpace(string(out)), nil
}

// lineWriter forwards subprocess output to the logger one line at a time.
type lineWriter struct {
	logger    ports.Logger
	errStream bool
	buf       strings.Builder
}

func (w *lineWriter) Write(p []byte) (int, error) {
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

func (w *lineWriter) emit(line string) {
	if line == "" {
		return
	}
	if w.errStream {
		w.logger.Error(zerr.New(line))
		return
	}
	w.logger.Info(line)
}

// mergeEnvironment overlays extra KEY=VALUE entries on the base environment.
func mergeEnvironment(base, extra []string) []string {
	if len(extra) == 0 {
		return base
	}
	envMap := make(map[string]string, len(base)+len(extra))
	var order []string
	for _, entry := range append(append([]string(nil), base...), extra...) {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}
	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}
