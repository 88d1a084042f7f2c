package main

import (
	"os"

	"github.com/grovetools/hooks/cli"
	"github.com/grovetools/hooks/cmd"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"hooks",
		"Git pre-commit hook runner with pinned, cached hook repositories",
	)

	rootCmd.AddCommand(cmd.NewRunCmd())
	rootCmd.AddCommand(cmd.NewValidateCmd())
	rootCmd.AddCommand(cmd.NewShowCmd())
	rootCmd.AddCommand(cmd.NewSampleConfigCmd())
	rootCmd.AddCommand(cmd.NewInstallCmd())
	rootCmd.AddCommand(cmd.NewUninstallCmd())
	rootCmd.AddCommand(cmd.NewAutoupdateCmd())
	rootCmd.AddCommand(cmd.NewSchemaCmd())
	rootCmd.AddCommand(cli.NewVersionCommand("hooks"))
	rootCmd.AddCommand(cli.NewDocsCommand(rootCmd))

	cli.ApplyStyledHelpRecursive(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
