package config

import (
	"fmt"
	"regexp"

	"github.com/grovetools/hooks/command"
	"github.com/grovetools/hooks/errors"
	"github.com/grovetools/hooks/lintargs"
)

var languageVersionRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)

// Validate checks the semantic invariants of a parsed configuration:
// every hook-set entry has a non-empty repo, a revision pin, and at
// least one hook; hook ids are non-empty and well-formed; repository
// URLs are unique; and recognized checker args are well-formed.
func (c *Config) Validate() error {
	if err := c.validateGlobalPatterns(); err != nil {
		return err
	}

	seenRepos := make(map[string]bool)

	for i, repo := range c.Repos {
		if err := command.ValidateRepoURL(repo.Repo); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigValidation,
				fmt.Sprintf("invalid repo entry at index %d", i)).
				WithDetail("index", i)
		}

		if seenRepos[repo.Repo] {
			return errors.New(errors.ErrCodeConfigValidation,
				fmt.Sprintf("duplicate repo entry: %s", repo.Repo)).
				WithDetail("repo", repo.Repo)
		}
		seenRepos[repo.Repo] = true

		if err := validateRepo(&repo); err != nil {
			return err
		}
	}

	return nil
}

func validateRepo(repo *Repo) error {
	isRemote := repo.Repo != "local" && repo.Repo != "meta"

	// Remote hook-sets must carry a revision pin; local and meta
	// entries have nothing to pin.
	if isRemote {
		if repo.Rev == "" {
			return errors.New(errors.ErrCodeConfigValidation,
				fmt.Sprintf("repo %s has no revision pin", repo.Repo)).
				WithDetail("repo", repo.Repo)
		}
		if err := command.ValidateGitRef(repo.Rev); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigValidation,
				fmt.Sprintf("repo %s has an invalid revision pin", repo.Repo)).
				WithDetail("repo", repo.Repo).
				WithDetail("rev", repo.Rev)
		}
	}

	if len(repo.Hooks) == 0 {
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("repo %s declares no hooks", repo.Repo)).
			WithDetail("repo", repo.Repo)
	}

	for _, hook := range repo.Hooks {
		if err := validateHook(repo, &hook); err != nil {
			return err
		}
	}

	return nil
}

func validateHook(repo *Repo, hook *Hook) error {
	if err := command.ValidateHookID(hook.ID); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigValidation,
			fmt.Sprintf("invalid hook id in repo %s", repo.Repo)).
			WithDetail("repo", repo.Repo)
	}

	if hook.LanguageVersion != "" && !languageVersionRegex.MatchString(hook.LanguageVersion) {
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("hook '%s' has a malformed language_version: %s", hook.ID, hook.LanguageVersion)).
			WithDetail("hook", hook.ID).
			WithDetail("languageVersion", hook.LanguageVersion)
	}

	// Local hooks carry their own entry; there is no manifest to
	// supply one.
	if repo.Repo == "local" && hook.Entry == "" {
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("local hook '%s' has no entry", hook.ID)).
			WithDetail("hook", hook.ID)
	}

	for _, pattern := range []struct{ name, value string }{
		{"files", hook.Files},
		{"exclude", hook.Exclude},
	} {
		if pattern.value == "" {
			continue
		}
		if _, err := regexp.Compile(pattern.value); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigValidation,
				fmt.Sprintf("hook '%s' has an invalid %s pattern", hook.ID, pattern.name)).
				WithDetail("hook", hook.ID).
				WithDetail("pattern", pattern.value)
		}
	}

	if err := lintargs.Validate(hook.Args); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigValidation,
			fmt.Sprintf("hook '%s' has malformed args", hook.ID)).
			WithDetail("hook", hook.ID)
	}

	return nil
}

// validateGlobalPatterns compiles the top-level files/exclude patterns.
func (c *Config) validateGlobalPatterns() error {
	for _, pattern := range []struct{ name, value string }{
		{"files", c.Files},
		{"exclude", c.Exclude},
	} {
		if pattern.value == "" {
			continue
		}
		if _, err := regexp.Compile(pattern.value); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigValidation,
				fmt.Sprintf("invalid top-level %s pattern", pattern.name)).
				WithDetail("pattern", pattern.value)
		}
	}
	return nil
}
