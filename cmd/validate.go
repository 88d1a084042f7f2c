package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/grovetools/hooks/cli"
	"github.com/grovetools/hooks/config"
	"github.com/grovetools/hooks/errors"
	"github.com/grovetools/hooks/git"
	"github.com/grovetools/hooks/theme"
)

func NewValidateCmd() *cobra.Command {
	var watch bool
	var remote bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the hook configuration file",
		Long: `Parses the configuration, checks it against the schema, and runs
semantic validation. With --watch, revalidates whenever the file
changes. With --remote, also verifies every revision pin resolves in
its repository.

Examples:
  hooks validate
  hooks validate --watch
  hooks validate --remote
  hooks validate --config ci/.pre-commit-config.yaml`,
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

			if watch {
				return watchAndValidate(path)
			}
			if err := validateOnce(path); err != nil {
				return handler.Handle(err)
			}
			if remote {
				return handler.Handle(checkRemotePins(cmd, path))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Revalidate on every change to the file")
	cmd.Flags().BoolVar(&remote, "remote", false, "Verify revision pins resolve in their repositories")
	return cmd
}

// checkRemotePins confirms every remote hook-set pin still resolves,
// without cloning.
func checkRemotePins(cmd *cobra.Command, path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	t := theme.DefaultTheme
	client := git.NewClient()

	for _, repo := range cfg.Repos {
		if repo.Repo == "local" || repo.Repo == "meta" {
			continue
		}

		sha, err := client.ResolveRemoteRef(cmd.Context(), repo.Repo, repo.Rev)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s %s\n", t.Success.Render("✓"), repo.Repo,
			t.Muted.Render(repo.Rev+" = "+sha[:12]))
	}
	return nil
}

func validateOnce(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	t := theme.DefaultTheme
	fmt.Printf("%s %s\n", t.Success.Render("✓"), path)
	fmt.Printf("  %d hook-sets, %d hooks\n", len(cfg.Repos), cfg.HookCount())
	return nil
}

// watchAndValidate revalidates the file on write events until
// interrupted. Editors often replace files instead of writing in
// place, so the watch is on the directory and filtered by name.
func watchAndValidate(path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	report := func() {
		if err := validateOnce(abs); err != nil {
			t := theme.DefaultTheme
			fmt.Printf("%s %v\n", t.Error.Render("✗"), err)
		}
	}
	report()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	// Debounce bursts of events from editors that write several times.
	var pending *time.Timer
	events := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(100*time.Millisecond, func() {
				select {
				case events <- struct{}{}:
				default:
				}
			})

		case <-events:
			report()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)

		case <-interrupt:
			return nil
		}
	}
}
