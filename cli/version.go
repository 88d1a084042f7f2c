package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/grovetools/hooks/version"
)

// NewVersionCommand creates the standard version subcommand.
func NewVersionCommand(componentName string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Print the version number of %s", componentName),
		Run: func(cmd *cobra.Command, args []string) {
			info := version.GetInfo()
			fmt.Printf("%s %s\n", componentName, info.Version)
			fmt.Printf("  Commit:    %s\n", info.Commit)
			fmt.Printf("  Built:     %s\n", info.BuildDate)
			fmt.Printf("  Arch:      %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
