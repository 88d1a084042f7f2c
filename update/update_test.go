package update

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPickLatestTag(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want string
	}{
		{
			name: "semver ordering",
			tags: []string{"v1.2.0", "v1.10.0", "v1.9.3"},
			want: "v1.10.0",
		},
		{
			name: "mixed prefix styles",
			tags: []string{"19.3b0", "19.10b0", "18.9b0"},
			want: "19.10b0",
		},
		{
			name: "ignores non-version tags",
			tags: []string{"latest", "stable", "3.7.9", "3.7.8"},
			want: "3.7.9",
		},
		{
			name: "no version-like tags",
			tags: []string{"latest", "stable"},
			want: "",
		},
		{
			name: "empty list",
			tags: nil,
			want: "",
		},
		{
			name: "longer version wins on shared prefix",
			tags: []string{"2.0", "2.0.1"},
			want: "2.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, PickLatestTag(tt.tags))
		})
	}
}

func TestApplyRewritesRevs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".pre-commit-config.yaml")

	original := `# pinned formatter versions
repos:
  - repo: https://github.com/psf/black
    rev: 19.10b0 # old pin
    hooks:
      - id: black
        language_version: python3
  - repo: https://gitlab.com/pycqa/flake8
    rev: 3.7.9
    hooks:
      - id: flake8
`
	require.NoError(t, os.WriteFile(path, []byte(original), 0600))

	err := Apply(path, []Change{
		{Repo: "https://github.com/psf/black", OldRev: "19.10b0", NewRev: "22.3.0"},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	require.Contains(t, content, "rev: 22.3.0")
	require.NotContains(t, content, "19.10b0")
	// Untouched entries and comments survive the rewrite.
	require.Contains(t, content, "rev: 3.7.9")
	require.Contains(t, content, "# pinned formatter versions")
	require.Contains(t, content, "# old pin")
}

func TestApplyNoChangesLeavesFileAlone(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".pre-commit-config.yaml")

	original := "repos: []   # oddly formatted, on purpose\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0600))

	require.NoError(t, Apply(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, original, string(data))
}

func TestApplyMissingReposSection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".pre-commit-config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("files: '\\.py$'\n"), 0600))

	err := Apply(path, []Change{{Repo: "x", NewRev: "y"}})
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "no repos section"))
}
