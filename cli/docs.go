package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// NewDocsCommand creates a 'docs' command that renders markdown
// documentation for the whole command tree.
func NewDocsCommand(root *cobra.Command) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Generate markdown documentation for this tool",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(outDir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			if err := doc.GenMarkdownTree(root, outDir); err != nil {
				return fmt.Errorf("failed to generate documentation: %w", err)
			}
			fmt.Printf("Documentation written to %s\n", outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "output", "o", "./docs", "Directory to write documentation into")
	return cmd
}
