package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grovetools/hooks/cli"
	"github.com/grovetools/hooks/config"
	"github.com/grovetools/hooks/errors"
	"github.com/grovetools/hooks/logging"
	"github.com/grovetools/hooks/theme"
	"github.com/grovetools/hooks/update"
)

func NewAutoupdateCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "autoupdate",
		Short: "Update hook-set revision pins to the latest tags",
		Long: `Queries every remote hook repository for its newest version tag and
rewrites the rev pins in the configuration file. Comments and
formatting in the file are preserved.

Examples:
  hooks autoupdate
  hooks autoupdate --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			handler := cli.NewErrorHandler(opts.Verbose)

			path, err := cli.ResolveConfigPath(opts)
			if err != nil {
				return handler.Handle(err)
			}
			if path == "" {
				return handler.Handle(errors.ConfigNotFound("."))
			}

			cfg, err := config.Load(path)
			if err != nil {
				return handler.Handle(err)
			}

			updater := update.New(logging.NewLogger("autoupdate"))
			changes, err := updater.Check(cmd.Context(), cfg)
			if err != nil {
				return handler.Handle(err)
			}

			if opts.JSONOutput {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(changes); err != nil {
					return err
				}
			} else {
				printChanges(changes, dryRun)
			}

			if dryRun || len(changes) == 0 {
				return nil
			}
			return handler.Handle(update.Apply(path, changes))
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report available updates without rewriting the file")
	return cmd
}

func printChanges(changes []update.Change, dryRun bool) {
	t := theme.DefaultTheme

	if len(changes) == 0 {
		fmt.Println("All revision pins are up to date")
		return
	}

	for _, change := range changes {
		fmt.Printf("%s: %s %s %s\n",
			change.Repo,
			t.Muted.Render(change.OldRev),
			"->",
			t.Success.Render(change.NewRev))
	}
	if dryRun {
		fmt.Println(t.Muted.Render("dry run, nothing written"))
	}
}
