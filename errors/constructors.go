package errors

import (
	"fmt"
	"os/exec"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *HooksError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *HooksError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// HookNotFound creates a hook not found error
func HookNotFound(id, repo string) *HooksError {
	return New(ErrCodeHookNotFound, fmt.Sprintf("hook '%s' not declared by repository %s", id, repo)).
		WithDetail("hook", id).
		WithDetail("repo", repo)
}

// HookFailed creates a hook failure error
func HookFailed(id string, err error) *HooksError {
	hooksErr := Wrap(err, ErrCodeHookFailed, fmt.Sprintf("hook '%s' failed", id)).
		WithDetail("hook", id)

	// Extract exit code if available
	if exitErr, ok := err.(*exec.ExitError); ok {
		hooksErr = hooksErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return hooksErr
}

// RepoCloneFailed creates a repository clone failure error
func RepoCloneFailed(url string, err error) *HooksError {
	return Wrap(err, ErrCodeRepoCloneFailed, fmt.Sprintf("failed to clone hook repository %s", url)).
		WithDetail("repo", url)
}

// RevNotFound creates a revision pin resolution error
func RevNotFound(url, rev string) *HooksError {
	return New(ErrCodeRevNotFound,
		fmt.Sprintf("revision '%s' does not resolve in repository %s", rev, url)).
		WithDetail("repo", url).
		WithDetail("rev", rev)
}

// CommandFailed creates a command execution failure error
func CommandFailed(cmd string, err error) *HooksError {
	hooksErr := Wrap(err, ErrCodeCommandFailed, fmt.Sprintf("command failed: %s", cmd)).
		WithDetail("command", cmd)

	if exitErr, ok := err.(*exec.ExitError); ok {
		hooksErr = hooksErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return hooksErr
}
