// Package manifest reads the .pre-commit-hooks.yaml file a hook
// repository uses to declare the hooks it provides.
package manifest

import (
	"os"
	"path/filepath"

	"github.com/grovetools/hooks/errors"
	"gopkg.in/yaml.v3"
)

// Filename is the manifest file name inside a hook repository.
const Filename = ".pre-commit-hooks.yaml"

// Hook is one hook declaration from a repository manifest. It supplies
// the defaults a configuration-side hook entry may override.
type Hook struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`

	// Entry is the command executed for this hook.
	Entry    string `yaml:"entry"`
	Language string `yaml:"language,omitempty"`

	Files   string   `yaml:"files,omitempty"`
	Exclude string   `yaml:"exclude,omitempty"`
	Types   []string `yaml:"types,omitempty"`

	Args          []string `yaml:"args,omitempty"`
	AlwaysRun     bool     `yaml:"always_run,omitempty"`
	PassFilenames *bool    `yaml:"pass_filenames,omitempty"`
}

// Manifest is the ordered list of hooks a repository declares.
type Manifest struct {
	Hooks []Hook
}

// Load reads the manifest from a cloned hook repository directory.
func Load(repoDir string) (*Manifest, error) {
	path := filepath.Join(repoDir, Filename)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeManifestInvalid,
			"failed to read hook manifest").
			WithDetail("path", path)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses a manifest document. The file format is a bare
// YAML list of hook declarations.
func LoadFromBytes(data []byte) (*Manifest, error) {
	var hooks []Hook
	if err := yaml.Unmarshal(data, &hooks); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeManifestInvalid,
			"failed to parse hook manifest")
	}

	seen := make(map[string]bool)
	for _, hook := range hooks {
		if hook.ID == "" {
			return nil, errors.New(errors.ErrCodeManifestInvalid,
				"manifest declares a hook without an id")
		}
		if hook.Entry == "" {
			return nil, errors.New(errors.ErrCodeManifestInvalid,
				"manifest hook '"+hook.ID+"' has no entry").
				WithDetail("hook", hook.ID)
		}
		if seen[hook.ID] {
			return nil, errors.New(errors.ErrCodeManifestInvalid,
				"manifest declares hook '"+hook.ID+"' more than once").
				WithDetail("hook", hook.ID)
		}
		seen[hook.ID] = true
	}

	return &Manifest{Hooks: hooks}, nil
}

// Lookup returns the declaration for a hook id.
func (m *Manifest) Lookup(id string) (*Hook, bool) {
	for i := range m.Hooks {
		if m.Hooks[i].ID == id {
			return &m.Hooks[i], true
		}
	}
	return nil, false
}

// ShouldPassFilenames reports whether matched filenames are appended to
// the hook's command line. Defaults to true when unset.
func (h *Hook) ShouldPassFilenames() bool {
	if h.PassFilenames == nil {
		return true
	}
	return *h.PassFilenames
}
