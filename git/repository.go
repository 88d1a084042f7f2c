package git

import (
	"context"
	"os/exec"
	"strings"

	"github.com/grovetools/hooks/command"
	"github.com/grovetools/hooks/errors"
)

// Client runs git operations for the hook runner. The executor is
// injectable for tests.
type Client struct {
	executor command.Executor
}

// NewClient creates a git client with the real executor.
func NewClient() *Client {
	return NewClientWithExecutor(&command.RealExecutor{})
}

// NewClientWithExecutor creates a git client with a custom executor.
func NewClientWithExecutor(exec command.Executor) *Client {
	return &Client{executor: exec}
}

// IsInstalled reports whether a usable git binary is on the PATH.
func (c *Client) IsInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// TopLevel returns the repository root for the given directory.
func (c *Client) TopLevel(ctx context.Context, dir string) (string, error) {
	out, err := c.output(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeNotARepository,
			"not inside a git repository").
			WithDetail("dir", dir)
	}
	return strings.TrimSpace(out), nil
}

// StagedFiles returns the paths staged for the next commit, relative to
// the repository root.
func (c *Client) StagedFiles(ctx context.Context, dir string) ([]string, error) {
	out, err := c.output(ctx, dir, "diff", "--cached", "--name-only", "--diff-filter=ACMR")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeNotARepository,
			"failed to list staged files").
			WithDetail("dir", dir)
	}
	return splitLines(out), nil
}

// AllFiles returns every tracked path in the repository.
func (c *Client) AllFiles(ctx context.Context, dir string) ([]string, error) {
	out, err := c.output(ctx, dir, "ls-files")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeNotARepository,
			"failed to list tracked files").
			WithDetail("dir", dir)
	}
	return splitLines(out), nil
}

// ResolveRemoteRef resolves a ref in a remote repository and returns
// its commit SHA. An empty result means the ref does not exist.
func (c *Client) ResolveRemoteRef(ctx context.Context, url, ref string) (string, error) {
	out, err := c.output(ctx, "", "ls-remote", "--exit-code", url, ref, ref+"^{}")
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 2 {
			// ls-remote --exit-code exits 2 when no refs matched
			return "", errors.RevNotFound(url, ref)
		}
		return "", errors.Wrap(err, errors.ErrCodeCommandFailed,
			"git ls-remote failed").
			WithDetail("repo", url).
			WithDetail("ref", ref)
	}

	// Prefer the peeled (^{}) line, which points at the commit for
	// annotated tags.
	var sha string
	for _, line := range splitLines(out) {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		sha = fields[0]
		if strings.HasSuffix(fields[1], "^{}") {
			return fields[0], nil
		}
	}
	if sha == "" {
		return "", errors.RevNotFound(url, ref)
	}
	return sha, nil
}

// RemoteTags lists the tag names in a remote repository, unpeeled.
func (c *Client) RemoteTags(ctx context.Context, url string) ([]string, error) {
	out, err := c.output(ctx, "", "ls-remote", "--tags", url)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeCommandFailed,
			"git ls-remote --tags failed").
			WithDetail("repo", url)
	}

	var tags []string
	for _, line := range splitLines(out) {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		ref := fields[1]
		if strings.HasSuffix(ref, "^{}") {
			continue
		}
		tags = append(tags, strings.TrimPrefix(ref, "refs/tags/"))
	}
	return tags, nil
}

// HeadSHA returns the commit the working tree is checked out at.
func (c *Client) HeadSHA(ctx context.Context, dir string) (string, error) {
	out, err := c.output(ctx, dir, "rev-parse", "HEAD")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeNotARepository,
			"failed to resolve HEAD").
			WithDetail("dir", dir)
	}
	return strings.TrimSpace(out), nil
}

func (c *Client) output(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := c.executor.CommandContext(ctx, "git", args...)
	if dir != "" {
		cmd.Dir = dir
	}
	out, err := cmd.Output()
	return string(out), err
}

func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
