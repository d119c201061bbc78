// Package git implements the source control adapter over the git CLI.
package git

import (
	"context"

	"go.trai.ch/zerr"

	"github.com/bedrock-fem/bedrock/internal/core/domain"
	"github.com/bedrock-fem/bedrock/internal/core/ports"
)

// Client implements ports.SourceControl by shelling out to git through the
// executor port.
type Client struct {
	exec ports.Executor
}

// NewClient creates a new git client.
func NewClient(exec ports.Executor) *Client {
	return &Client{exec: exec}
}

var _ ports.SourceControl = (*Client)(nil)

// Clone checks out the given branch of url into dir. Output is streamed to
// the step vertex when the context carries one.
func (c *Client) Clone(ctx context.Context, url, branch, dir string) error {
	cmd := domain.NewCommand("git", "clone", "--branch", branch, url, dir)
	if err := c.exec.Run(ctx, cmd, ports.StepStdout(ctx), ports.StepStderr(ctx)); err != nil {
		wrapped := zerr.With(zerr.Wrap(err, "git clone failed"), "url", url)
		return zerr.With(wrapped, "branch", branch)
	}
	return nil
}

// Pull fast-forwards the checkout in dir.
func (c *Client) Pull(ctx context.Context, dir string) error {
	cmd := domain.NewCommand("git", "pull", "--ff-only").InDir(dir)
	if err := c.exec.Run(ctx, cmd, ports.StepStdout(ctx), ports.StepStderr(ctx)); err != nil {
		return zerr.With(zerr.Wrap(err, "git pull failed"), "dir", dir)
	}
	return nil
}

// Revision returns the HEAD commit of the checkout in dir.
func (c *Client) Revision(ctx context.Context, dir string) (string, error) {
	rev, err := c.exec.Output(ctx, domain.NewCommand("git", "rev-parse", "HEAD").InDir(dir))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "git rev-parse failed"), "dir", dir)
	}
	return rev, nil
}
