// Package runner orchestrates hook execution: it reads the hook
// configuration, prepares the referenced hook repositories, selects
// candidate files, and runs each configured hook against them.
package runner

import (
	"context"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/grovetools/hooks/classify"
	"github.com/grovetools/hooks/command"
	"github.com/grovetools/hooks/config"
	"github.com/grovetools/hooks/errors"
	"github.com/grovetools/hooks/git"
	"github.com/grovetools/hooks/manifest"
	"github.com/grovetools/hooks/store"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// prepareConcurrency bounds how many hook repositories are cloned at
// the same time.
const prepareConcurrency = 4

// Options controls a single run.
type Options struct {
	// Dir is the directory to run from; defaults to the current
	// working directory. The enclosing git repository's root becomes
	// the working directory for every hook.
	Dir string

	// ConfigPath overrides the configuration file discovery.
	ConfigPath string

	// AllFiles runs hooks against every tracked file instead of the
	// staged set.
	AllFiles bool

	// Files runs hooks against an explicit file list.
	Files []string

	// HookID limits the run to a single hook id.
	HookID string
}

// Result is the outcome of one hook.
type Result struct {
	HookID   string
	Name     string
	Skipped  bool
	Reason   string
	Files    int
	Duration time.Duration
	Output   string
	Err      error
}

// Passed reports whether the hook ran and succeeded.
func (r Result) Passed() bool {
	return !r.Skipped && r.Err == nil
}

// Failed reports whether any result in the set is a failure.
func Failed(results []Result) bool {
	for _, r := range results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Runner executes the hooks declared in a configuration file.
type Runner struct {
	store   *store.Store
	gitc    *git.Client
	builder *command.SafeBuilder
	log     *logrus.Entry
}

// New creates a runner with the given repository store.
func New(s *store.Store, log *logrus.Entry) *Runner {
	return &Runner{
		store:   s,
		gitc:    git.NewClient(),
		builder: command.NewSafeBuilder(),
		log:     log,
	}
}

// preparedRepo is a hook-set entry with its manifest resolved.
type preparedRepo struct {
	entry    *config.Repo
	manifest *manifest.Manifest // nil for local and meta entries
}

// Run loads the configuration and executes its hooks in order.
func (r *Runner) Run(ctx context.Context, opts Options) ([]Result, error) {
	dir := opts.Dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to get current directory")
		}
		dir = cwd
	}

	root, err := r.gitc.TopLevel(ctx, dir)
	if err != nil {
		return nil, err
	}

	var cfg *config.Config
	if opts.ConfigPath != "" {
		cfg, err = config.Load(opts.ConfigPath)
	} else {
		cfg, err = config.LoadFrom(root)
	}
	if err != nil {
		return nil, err
	}

	candidates, err := r.candidateFiles(ctx, root, cfg, opts)
	if err != nil {
		return nil, err
	}

	prepared, err := r.prepareRepos(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var results []Result
	for _, repo := range prepared {
		for i := range repo.entry.Hooks {
			hook := &repo.entry.Hooks[i]
			if opts.HookID != "" && hook.ID != opts.HookID {
				continue
			}

			result := r.runHook(ctx, cfg, repo, hook, root, candidates)
			results = append(results, result)

			if result.Err != nil && cfg.FailFast {
				r.log.WithField("hook", hook.ID).Warn("Stopping after first failure (fail_fast)")
				return results, nil
			}

			if err := ctx.Err(); err != nil {
				return results, errors.Wrap(err, errors.ErrCodeCommandTimeout, "run aborted")
			}
		}
	}

	if opts.HookID != "" && len(results) == 0 {
		return nil, errors.New(errors.ErrCodeHookNotFound,
			"no configured hook with id '"+opts.HookID+"'").
			WithDetail("hook", opts.HookID)
	}

	return results, nil
}

// candidateFiles determines the file set hooks run against, with the
// global files/exclude patterns already applied.
func (r *Runner) candidateFiles(ctx context.Context, root string, cfg *config.Config, opts Options) ([]string, error) {
	var files []string
	var err error

	switch {
	case len(opts.Files) > 0:
		files = opts.Files
	case opts.AllFiles:
		files, err = r.gitc.AllFiles(ctx, root)
	default:
		files, err = r.gitc.StagedFiles(ctx, root)
	}
	if err != nil {
		return nil, err
	}

	files, err = filterRegex(files, cfg.Files, cfg.Exclude)
	if err != nil {
		return nil, err
	}

	r.log.WithField("count", len(files)).Debug("Selected candidate files")
	return files, nil
}

// prepareRepos clones and reads the manifest of every remote hook-set
// entry. Clones are independent, so they run concurrently.
func (r *Runner) prepareRepos(ctx context.Context, cfg *config.Config) ([]preparedRepo, error) {
	prepared := make([]preparedRepo, len(cfg.Repos))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(prepareConcurrency)

	for i := range cfg.Repos {
		entry := &cfg.Repos[i]
		prepared[i].entry = entry

		if entry.Repo == "local" || entry.Repo == "meta" {
			continue
		}

		g.Go(func() error {
			dir, err := r.store.Ensure(gctx, entry.Repo, entry.Rev)
			if err != nil {
				return err
			}

			m, err := manifest.Load(dir)
			if err != nil {
				return err
			}

			prepared[i].manifest = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return prepared, nil
}

// runHook resolves and executes a single configured hook.
func (r *Runner) runHook(ctx context.Context, cfg *config.Config, repo preparedRepo, hook *config.Hook, root string, candidates []string) Result {
	result := Result{HookID: hook.ID, Name: hook.Name}

	resolved, err := resolve(repo, hook)
	if err != nil {
		result.Err = err
		return result
	}
	if resolved.name != "" {
		result.Name = resolved.name
	}

	files, err := resolved.selectFiles(candidates)
	if err != nil {
		result.Err = err
		return result
	}
	for _, tag := range resolved.types {
		if !classify.Known(tag) {
			r.log.WithFields(logrus.Fields{"hook": hook.ID, "type": tag}).
				Warn("Unknown file type tag matches no files")
		}
	}
	result.Files = len(files)

	if len(files) == 0 && !resolved.alwaysRun {
		result.Skipped = true
		result.Reason = "no files to check"
		return result
	}

	if repo.entry.Repo == "meta" {
		start := time.Now()
		output, err := r.runMetaHook(ctx, cfg, hook.ID, root, candidates)
		result.Duration = time.Since(start)
		result.Output = output
		result.Err = err
		return result
	}

	argv := resolved.argv()
	if len(argv) == 0 {
		result.Err = errors.New(errors.ErrCodeConfigValidation,
			"hook '"+hook.ID+"' has an empty entry").WithDetail("hook", hook.ID)
		return result
	}
	if resolved.passFilenames {
		argv = append(argv, files...)
	}

	r.log.WithFields(logrus.Fields{
		"hook":  hook.ID,
		"files": len(files),
	}).Debug("Running hook")

	cmd, err := r.builder.Build(ctx, argv[0], argv[1:]...)
	if err != nil {
		result.Err = errors.Wrap(err, errors.ErrCodeInternal, "failed to build hook command")
		return result
	}

	execCmd := cmd.Exec()
	execCmd.Dir = root
	execCmd.Env = hookEnv(cfg, resolved)

	start := time.Now()
	out, err := execCmd.CombinedOutput()
	result.Duration = time.Since(start)
	result.Output = string(out)

	if err != nil {
		result.Err = errors.HookFailed(hook.ID, err)
	}
	return result
}

// hookEnv builds the environment for a hook process, exporting the
// resolved language version constraint.
func hookEnv(cfg *config.Config, resolved *resolvedHook) []string {
	env := os.Environ()

	version := resolved.languageVersion
	if version == "" && resolved.language != "" {
		version = cfg.DefaultLanguageVersion[resolved.language]
	}
	if version != "" {
		env = append(env, "HOOKS_LANGUAGE_VERSION="+version)
	}
	return env
}

// filterRegex applies include/exclude regular expressions to a file list.
func filterRegex(files []string, include, exclude string) ([]string, error) {
	var includeRe, excludeRe *regexp.Regexp
	var err error

	if include != "" {
		if includeRe, err = regexp.Compile(include); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid files pattern").
				WithDetail("pattern", include)
		}
	}
	if exclude != "" {
		if excludeRe, err = regexp.Compile(exclude); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid exclude pattern").
				WithDetail("pattern", exclude)
		}
	}

	var kept []string
	for _, file := range files {
		if includeRe != nil && !includeRe.MatchString(file) {
			continue
		}
		if excludeRe != nil && excludeRe.MatchString(file) {
			continue
		}
		kept = append(kept, file)
	}
	return kept, nil
}

// resolvedHook is a hook with manifest defaults and configuration
// overrides folded together.
type resolvedHook struct {
	id              string
	name            string
	entry           string
	language        string
	languageVersion string
	args            []string
	files           string
	exclude         string
	types           []string
	alwaysRun       bool
	passFilenames   bool
}

// resolve folds a manifest declaration (if any) and the config-side
// hook entry into a runnable hook. Configuration fields win.
func resolve(repo preparedRepo, hook *config.Hook) (*resolvedHook, error) {
	resolved := &resolvedHook{
		id:              hook.ID,
		name:            hook.Name,
		entry:           hook.Entry,
		language:        hook.Language,
		languageVersion: hook.LanguageVersion,
		args:            hook.Args,
		files:           hook.Files,
		exclude:         hook.Exclude,
		types:           hook.Types,
		alwaysRun:       hook.AlwaysRun,
		passFilenames:   hook.ShouldPassFilenames(),
	}

	switch repo.entry.Repo {
	case "local":
		// Local hooks are fully described in the configuration.
		return resolved, nil
	case "meta":
		// Built-in hooks run in-process; no entry needed.
		resolved.passFilenames = false
		return resolved, nil
	}

	declared, ok := repo.manifest.Lookup(hook.ID)
	if !ok {
		return nil, errors.HookNotFound(hook.ID, repo.entry.Repo)
	}

	resolved.entry = declared.Entry
	// SetDefaults already turned an unset config name into the id, so
	// the id doubling as the name means the user never chose one.
	if declared.Name != "" && (resolved.name == "" || resolved.name == hook.ID) {
		resolved.name = declared.Name
	}
	if resolved.language == "" {
		resolved.language = declared.Language
	}
	if resolved.args == nil {
		resolved.args = declared.Args
	}
	if resolved.files == "" {
		resolved.files = declared.Files
	}
	if resolved.exclude == "" {
		resolved.exclude = declared.Exclude
	}
	if resolved.types == nil {
		resolved.types = declared.Types
	}
	if declared.AlwaysRun {
		resolved.alwaysRun = true
	}
	if hook.PassFilenames == nil {
		resolved.passFilenames = declared.ShouldPassFilenames()
	}

	return resolved, nil
}

// selectFiles applies the hook's own filters to the candidate set.
func (h *resolvedHook) selectFiles(candidates []string) ([]string, error) {
	files, err := filterRegex(candidates, h.files, h.exclude)
	if err != nil {
		return nil, err
	}

	matcher, err := classify.NewMatcher(h.types)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to compile type patterns")
	}

	var kept []string
	for _, file := range files {
		if matcher.Matches(file) {
			kept = append(kept, file)
		}
	}
	return kept, nil
}

// argv renders the command line for the hook, before filenames.
func (h *resolvedHook) argv() []string {
	argv := strings.Fields(h.entry)
	return append(argv, h.args...)
}
