package cli

import (
	"fmt"
	"os"

	"github.com/grovetools/hooks/errors"
)

// ErrorHandler turns structured errors into actionable messages.
type ErrorHandler struct {
	Verbose bool
}

func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{Verbose: verbose}
}

// Handle prints guidance for known error codes and passes the error
// through for exit-code handling. A nil error passes through silently.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(os.Stderr, "❌ No hook configuration found.\n")
		fmt.Fprintf(os.Stderr, "Run 'hooks sample-config > .pre-commit-config.yaml' to create one.\n")

	case errors.ErrCodeHookNotFound:
		if hooksErr, ok := err.(*errors.HooksError); ok {
			fmt.Fprintf(os.Stderr, "❌ Hook '%v' not found in repo %v\n",
				hooksErr.Details["hook"], hooksErr.Details["repo"])
			fmt.Fprintf(os.Stderr, "Run 'hooks show' to list the configured hooks.\n")
		} else {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		}

	case errors.ErrCodeRevNotFound:
		if hooksErr, ok := err.(*errors.HooksError); ok {
			fmt.Fprintf(os.Stderr, "❌ Revision '%v' does not exist in %v\n",
				hooksErr.Details["rev"], hooksErr.Details["repo"])
			fmt.Fprintf(os.Stderr, "Run 'hooks autoupdate' to move pins to the latest tags.\n")
		} else {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		}

	case errors.ErrCodeRepoCloneFailed:
		fmt.Fprintf(os.Stderr, "❌ Failed to fetch a hook repository. Check network access and the repo URL.\n")

	case errors.ErrCodeGitNotInstalled:
		fmt.Fprintf(os.Stderr, "❌ git is not installed or not on PATH.\n")

	case errors.ErrCodeNotARepository:
		fmt.Fprintf(os.Stderr, "❌ Not inside a git repository.\n")

	default:
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
	}

	if h.Verbose {
		if hooksErr, ok := err.(*errors.HooksError); ok {
			fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", hooksErr.ToJSON())
		}
	}

	return err
}
