package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grovetools/hooks/cli"
	"github.com/grovetools/hooks/errors"
	"github.com/grovetools/hooks/git"
)

func NewInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the git pre-commit hook in this repository",
		Long: `Writes a pre-commit hook script into .git/hooks that invokes this
tool on every commit. An existing hook written by something else is
backed up, not overwritten.

Examples:
  hooks install
  hooks uninstall`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			handler := cli.NewErrorHandler(opts.Verbose)

			root, err := repoRoot(cmd)
			if err != nil {
				return handler.Handle(err)
			}

			manager := git.NewHookManager("")
			if err := manager.InstallHooks(cmd.Context(), root); err != nil {
				return handler.Handle(err)
			}

			fmt.Println("Installed pre-commit hook")
			return nil
		},
	}
	return cmd
}

func NewUninstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the git pre-commit hook installed by this tool",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			handler := cli.NewErrorHandler(opts.Verbose)

			root, err := repoRoot(cmd)
			if err != nil {
				return handler.Handle(err)
			}

			manager := git.NewHookManager("")
			if err := manager.UninstallHooks(cmd.Context(), root); err != nil {
				return handler.Handle(err)
			}

			fmt.Println("Removed pre-commit hook")
			return nil
		},
	}
	return cmd
}

func repoRoot(cmd *cobra.Command) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "failed to get current directory")
	}

	client := git.NewClient()
	if !client.IsInstalled() {
		return "", errors.New(errors.ErrCodeGitNotInstalled, "git is not installed")
	}

	return client.TopLevel(cmd.Context(), cwd)
}
