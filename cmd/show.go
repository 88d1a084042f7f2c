package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grovetools/hooks/cli"
	"github.com/grovetools/hooks/config"
	"github.com/grovetools/hooks/errors"
	"github.com/grovetools/hooks/lintargs"
	"github.com/grovetools/hooks/theme"
)

func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display the resolved hook configuration",
		Long: `Loads the configuration, applies overrides and defaults, and prints
the resolved hook-sets. Recognized checker args are shown decoded.

Examples:
  hooks show
  hooks show --json`,
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

			if opts.JSONOutput {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			}

			printConfig(path, cfg)
			return nil
		},
	}
	return cmd
}

func printConfig(path string, cfg *config.Config) {
	t := theme.DefaultTheme

	fmt.Println(t.Title.Render(path))
	if cfg.FailFast {
		fmt.Println(t.Muted.Render("fail_fast: true"))
	}
	if cfg.Files != "" {
		fmt.Println(t.Muted.Render("files: " + cfg.Files))
	}
	if cfg.Exclude != "" {
		fmt.Println(t.Muted.Render("exclude: " + cfg.Exclude))
	}

	for _, repo := range cfg.Repos {
		fmt.Println()
		if repo.Rev != "" {
			fmt.Printf("%s %s\n", t.Accent.Render(repo.Repo), t.Muted.Render("@ "+repo.Rev))
		} else {
			fmt.Println(t.Accent.Render(repo.Repo))
		}

		for _, hook := range repo.Hooks {
			fmt.Printf("  %s", hook.ID)
			if hook.Name != hook.ID {
				fmt.Printf("  %s", t.Muted.Render(hook.Name))
			}
			if hook.LanguageVersion != "" {
				fmt.Printf("  %s", t.Muted.Render("("+hook.LanguageVersion+")"))
			}
			fmt.Println()

			printArgs(t, hook.Args)
		}
	}
}

// printArgs renders recognized checker options decoded, anything else
// verbatim.
func printArgs(t *theme.Theme, args []string) {
	if len(args) == 0 {
		return
	}

	opts, err := lintargs.Parse(args)
	if err != nil {
		fmt.Printf("    args: %s\n", strings.Join(args, " "))
		return
	}

	if opts.MaxLineLength > 0 {
		fmt.Printf("    max line length  %d\n", opts.MaxLineLength)
	}
	if opts.MaxComplexity > 0 {
		fmt.Printf("    max complexity   %d\n", opts.MaxComplexity)
	}
	if len(opts.Select) > 0 {
		fmt.Printf("    select           %s\n", strings.Join(opts.Select, ", "))
	}
	if len(opts.Ignore) > 0 {
		fmt.Printf("    ignore           %s\n", strings.Join(opts.Ignore, ", "))
	}
	if len(opts.Extra) > 0 {
		fmt.Printf("    extra args       %s\n", strings.Join(opts.Extra, " "))
	}
}
