package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/hooks/config"
)

func NewSampleConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample-config",
		Short: "Print a starter hook configuration",
		Long: `Prints a canonical configuration with a formatter and a style
checker, ready to redirect into .pre-commit-config.yaml.

Examples:
  hooks sample-config > .pre-commit-config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The sample must itself be a valid configuration.
			if _, err := config.Sample(); err != nil {
				return err
			}
			fmt.Print(config.SampleYAML)
			return nil
		},
	}
}
