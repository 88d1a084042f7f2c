// Package cmd holds the subcommand constructors for the hooks binary.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grovetools/hooks/cli"
	"github.com/grovetools/hooks/logging"
	"github.com/grovetools/hooks/runner"
	"github.com/grovetools/hooks/store"
)

func NewRunCmd() *cobra.Command {
	var allFiles bool
	var hookID string
	var files []string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the configured hooks against staged files",
		Long: `Runs every hook declared in the configuration, in order, against
the files currently staged in git. Hook repositories are fetched and
cached on first use.

Examples:
  # run all hooks against staged files
  hooks run

  # run a single hook against every tracked file
  hooks run --hook black --all-files

  # run against an explicit file list
  hooks run --files src/app.py --files src/util.py`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			handler := cli.NewErrorHandler(opts.Verbose)

			root, err := store.DefaultRoot()
			if err != nil {
				return handler.Handle(err)
			}

			log := logging.NewLogger("runner")
			r := runner.New(store.New(root, log), log)

			results, err := r.Run(cmd.Context(), runner.Options{
				ConfigPath: opts.ConfigFile,
				AllFiles:   allFiles,
				Files:      files,
				HookID:     hookID,
			})
			if err != nil {
				return handler.Handle(err)
			}

			if err := cli.ReportResults(os.Stdout, results, opts.JSONOutput); err != nil {
				return err
			}

			if runner.Failed(results) {
				return fmt.Errorf("hook failures")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&allFiles, "all-files", "a", false, "Run against all tracked files instead of the staged set")
	cmd.Flags().StringVar(&hookID, "hook", "", "Run only the hook with this id")
	cmd.Flags().StringSliceVar(&files, "files", nil, "Run against an explicit file list")

	return cmd
}
