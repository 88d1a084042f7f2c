package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

//go:generate go run ../tools/schema-generator ../schema/hooks.generated.schema.json

// Config is the parsed form of a .pre-commit-config.yaml file. It is a
// static list of hook-set entries plus a handful of top-level options;
// it is read once per invocation and never mutated afterwards.
type Config struct {
	// Repos is the ordered list of hook-set entries.
	Repos []Repo `yaml:"repos" toml:"repos" json:"repos" jsonschema:"required,description=List of hook-set entries"`

	// DefaultLanguageVersion maps a language name to the version hooks
	// should run under when the hook itself does not pin one.
	DefaultLanguageVersion map[string]string `yaml:"default_language_version,omitempty" toml:"default_language_version,omitempty" json:"default_language_version,omitempty" jsonschema:"description=Default language versions by language name"`

	// Files and Exclude are regular expressions applied to every hook's
	// candidate files before the hook's own filters.
	Files   string `yaml:"files,omitempty" toml:"files,omitempty" json:"files,omitempty" jsonschema:"description=Global file include pattern (regular expression)"`
	Exclude string `yaml:"exclude,omitempty" toml:"exclude,omitempty" json:"exclude,omitempty" jsonschema:"description=Global file exclude pattern (regular expression)"`

	// FailFast stops the run after the first failing hook.
	FailFast bool `yaml:"fail_fast,omitempty" toml:"fail_fast,omitempty" json:"fail_fast,omitempty" jsonschema:"description=Stop after the first failing hook"`

	// MinimumHooksVersion rejects configs written for a newer tool.
	MinimumHooksVersion string `yaml:"minimum_hooks_version,omitempty" toml:"minimum_hooks_version,omitempty" json:"minimum_hooks_version,omitempty" jsonschema:"description=Minimum tool version this configuration requires"`

	// Extensions captures all other top-level keys for extensibility
	// (e.g. a `logging:` section for the runner itself).
	Extensions map[string]interface{} `yaml:",inline" toml:"-" json:"-" jsonschema:"-"`
}

// Repo is a single hook-set entry: a source repository, a pinned
// revision, and the ordered hooks to take from it.
type Repo struct {
	// Repo is the source repository URL, or the sentinels "local"
	// (hooks defined inline in this file) and "meta" (built-in hooks).
	Repo string `yaml:"repo" toml:"repo" json:"repo" jsonschema:"required,description=Source repository URL (or 'local'/'meta')"`

	// Rev is the pinned revision. It must resolve to an existing
	// tag or commit in the referenced repository at run time.
	Rev string `yaml:"rev,omitempty" toml:"rev,omitempty" json:"rev,omitempty" jsonschema:"description=Pinned revision (tag or commit)"`

	// Hooks is the ordered sequence of hooks to run from this entry.
	Hooks []Hook `yaml:"hooks" toml:"hooks" json:"hooks" jsonschema:"required,description=Hooks to run from this repository"`
}

// Hook configures a single hook. Only ID is required; the remaining
// fields override the defaults declared in the repository's manifest.
type Hook struct {
	ID   string `yaml:"id" toml:"id" json:"id" jsonschema:"required,description=Hook identifier"`
	Name string `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty" jsonschema:"description=Display name (defaults to the id)"`

	// LanguageVersion pins the hook to run under a specific major
	// version of its implementation language (e.g. "python3").
	LanguageVersion string `yaml:"language_version,omitempty" toml:"language_version,omitempty" json:"language_version,omitempty" jsonschema:"description=Target language version constraint"`

	// Args is the ordered argument list appended to the hook's entry.
	Args []string `yaml:"args,omitempty" toml:"args,omitempty" json:"args,omitempty" jsonschema:"description=Arguments passed to the hook"`

	// Entry and Language are only meaningful for `repo: local` hooks,
	// which have no manifest to supply them.
	Entry    string `yaml:"entry,omitempty" toml:"entry,omitempty" json:"entry,omitempty" jsonschema:"description=Command to run (local hooks only)"`
	Language string `yaml:"language,omitempty" toml:"language,omitempty" json:"language,omitempty" jsonschema:"description=Implementation language (local hooks only)"`

	Files   string   `yaml:"files,omitempty" toml:"files,omitempty" json:"files,omitempty" jsonschema:"description=File include pattern (regular expression)"`
	Exclude string   `yaml:"exclude,omitempty" toml:"exclude,omitempty" json:"exclude,omitempty" jsonschema:"description=File exclude pattern (regular expression)"`
	Types   []string `yaml:"types,omitempty" toml:"types,omitempty" json:"types,omitempty" jsonschema:"description=File type tags the hook applies to"`

	AlwaysRun     bool  `yaml:"always_run,omitempty" toml:"always_run,omitempty" json:"always_run,omitempty" jsonschema:"description=Run even when no files match"`
	PassFilenames *bool `yaml:"pass_filenames,omitempty" toml:"pass_filenames,omitempty" json:"pass_filenames,omitempty" jsonschema:"description=Append matched filenames to the entry (default true)"`
	Verbose       bool  `yaml:"verbose,omitempty" toml:"verbose,omitempty" json:"verbose,omitempty" jsonschema:"description=Always show the hook's output"`
}

// ShouldPassFilenames reports whether matched filenames are appended to
// the hook's command line. Defaults to true when unset.
func (h *Hook) ShouldPassFilenames() bool {
	if h.PassFilenames == nil {
		return true
	}
	return *h.PassFilenames
}

// SetDefaults fills in derivable values after parsing.
func (c *Config) SetDefaults() {
	for i := range c.Repos {
		for j := range c.Repos[i].Hooks {
			hook := &c.Repos[i].Hooks[j]
			if hook.Name == "" {
				hook.Name = hook.ID
			}
		}
	}
}

// HookCount returns the total number of configured hooks.
func (c *Config) HookCount() int {
	n := 0
	for _, repo := range c.Repos {
		n += len(repo.Hooks)
	}
	return n
}

// UnmarshalExtension decodes a specific extension section from the
// loaded configuration into the provided target struct. The target must
// be a pointer. This provides a type-safe way for components to access
// their custom top-level sections.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// It's not an error if the key doesn't exist.
		// The target struct will simply remain zero-valued.
		return nil
	}

	// Use mapstructure to decode the generic map[string]interface{}
	// into the strongly-typed target struct. We configure it to use
	// `yaml` tags for consistency.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
