package runner

import (
	"context"
	"fmt"
	"testing"

	"github.com/grovetools/hooks/config"
	"github.com/grovetools/hooks/errors"
	"github.com/grovetools/hooks/logging"
	"github.com/grovetools/hooks/manifest"
	"github.com/grovetools/hooks/store"
	"github.com/grovetools/hooks/testutil"
	"github.com/stretchr/testify/require"
)

func newTestRunner(t *testing.T) *Runner {
	t.Helper()

	log := logging.NewLogger("runner-test")
	return New(store.New(t.TempDir(), log), log)
}

func TestRunLocalHooks(t *testing.T) {
	testutil.RequireGit(t)

	repo := t.TempDir()
	testutil.InitGitRepo(t, repo)
	testutil.StageFile(t, repo, "main.py", "print('hi')\n")

	testutil.WriteConfig(t, repo, `
repos:
  - repo: local
    hooks:
      - id: always-pass
        name: Always pass
        entry: "true"
        language: system
        pass_filenames: false
      - id: always-fail
        name: Always fail
        entry: "false"
        language: system
        pass_filenames: false
`)

	r := newTestRunner(t)
	results, err := r.Run(context.Background(), Options{Dir: repo})
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.True(t, results[0].Passed())
	require.Equal(t, "always-pass", results[0].HookID)

	require.False(t, results[1].Passed())
	require.True(t, errors.Is(results[1].Err, errors.ErrCodeHookFailed))
	require.True(t, Failed(results))
}

func TestRunSkipsHookWithNoFiles(t *testing.T) {
	testutil.RequireGit(t)

	repo := t.TempDir()
	testutil.InitGitRepo(t, repo)
	testutil.StageFile(t, repo, "notes.md", "# notes\n")

	testutil.WriteConfig(t, repo, `
repos:
  - repo: local
    hooks:
      - id: py-only
        entry: "false"
        language: system
        types: [python]
`)

	r := newTestRunner(t)
	results, err := r.Run(context.Background(), Options{Dir: repo})
	require.NoError(t, err)
	require.Len(t, results, 1)

	require.True(t, results[0].Skipped)
	require.Zero(t, results[0].Files)
	require.False(t, Failed(results))
}

func TestRunAlwaysRunIgnoresEmptyFileSet(t *testing.T) {
	testutil.RequireGit(t)

	repo := t.TempDir()
	testutil.InitGitRepo(t, repo)

	testutil.WriteConfig(t, repo, `
repos:
  - repo: local
    hooks:
      - id: unconditional
        entry: "true"
        language: system
        always_run: true
        pass_filenames: false
`)

	r := newTestRunner(t)
	results, err := r.Run(context.Background(), Options{Dir: repo})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.True(t, results[0].Passed())
}

func TestRunRemoteHookRepo(t *testing.T) {
	testutil.RequireGit(t)

	hookRepo, head := testutil.CreateHookRepo(t, `
- id: echo-files
  name: Echo files
  entry: echo checking
  language: system
  types: [python]
`)

	repo := t.TempDir()
	testutil.InitGitRepo(t, repo)
	testutil.StageFile(t, repo, "app.py", "x = 1\n")
	testutil.StageFile(t, repo, "README.txt", "docs\n")

	testutil.WriteConfig(t, repo, fmt.Sprintf(`
repos:
  - repo: %s
    rev: %s
    hooks:
      - id: echo-files
`, hookRepo, head))

	r := newTestRunner(t)
	results, err := r.Run(context.Background(), Options{Dir: repo})
	require.NoError(t, err)
	require.Len(t, results, 1)

	result := results[0]
	require.True(t, result.Passed())
	require.Equal(t, "Echo files", result.Name)
	require.Equal(t, 1, result.Files)
	require.Contains(t, result.Output, "app.py")
	require.NotContains(t, result.Output, "README.txt")
}

func TestRunHookMissingFromManifest(t *testing.T) {
	testutil.RequireGit(t)

	hookRepo, head := testutil.CreateHookRepo(t, `
- id: real-hook
  entry: "true"
  language: system
`)

	repo := t.TempDir()
	testutil.InitGitRepo(t, repo)
	testutil.StageFile(t, repo, "a.txt", "a\n")

	testutil.WriteConfig(t, repo, fmt.Sprintf(`
repos:
  - repo: %s
    rev: %s
    hooks:
      - id: no-such-hook
        always_run: true
`, hookRepo, head))

	r := newTestRunner(t)
	results, err := r.Run(context.Background(), Options{Dir: repo})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.True(t, errors.Is(results[0].Err, errors.ErrCodeHookNotFound))
}

func TestRunFailFastStopsAfterFirstFailure(t *testing.T) {
	testutil.RequireGit(t)

	repo := t.TempDir()
	testutil.InitGitRepo(t, repo)

	testutil.WriteConfig(t, repo, `
fail_fast: true
repos:
  - repo: local
    hooks:
      - id: first
        entry: "false"
        language: system
        always_run: true
        pass_filenames: false
      - id: second
        entry: "true"
        language: system
        always_run: true
        pass_filenames: false
`)

	r := newTestRunner(t)
	results, err := r.Run(context.Background(), Options{Dir: repo})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "first", results[0].HookID)
}

func TestRunSingleHookSelection(t *testing.T) {
	testutil.RequireGit(t)

	repo := t.TempDir()
	testutil.InitGitRepo(t, repo)

	testutil.WriteConfig(t, repo, `
repos:
  - repo: local
    hooks:
      - id: wanted
        entry: "true"
        language: system
        always_run: true
        pass_filenames: false
      - id: unwanted
        entry: "false"
        language: system
        always_run: true
        pass_filenames: false
`)

	r := newTestRunner(t)
	results, err := r.Run(context.Background(), Options{Dir: repo, HookID: "wanted"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "wanted", results[0].HookID)

	_, err = r.Run(context.Background(), Options{Dir: repo, HookID: "missing"})
	require.True(t, errors.Is(err, errors.ErrCodeHookNotFound))
}

func TestRunExplicitFileList(t *testing.T) {
	testutil.RequireGit(t)

	repo := t.TempDir()
	testutil.InitGitRepo(t, repo)

	testutil.WriteConfig(t, repo, `
repos:
  - repo: local
    hooks:
      - id: count
        entry: echo
        language: system
`)

	r := newTestRunner(t)
	results, err := r.Run(context.Background(), Options{
		Dir:   repo,
		Files: []string{"one.py", "two.py"},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, 2, results[0].Files)
	require.Contains(t, results[0].Output, "one.py")
}

func TestRunGlobalExcludePattern(t *testing.T) {
	testutil.RequireGit(t)

	repo := t.TempDir()
	testutil.InitGitRepo(t, repo)

	testutil.WriteConfig(t, repo, `
exclude: ^vendor/
repos:
  - repo: local
    hooks:
      - id: count
        entry: echo
        language: system
`)

	r := newTestRunner(t)
	results, err := r.Run(context.Background(), Options{
		Dir:   repo,
		Files: []string{"vendor/lib.py", "src/app.py"},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, 1, results[0].Files)
	require.NotContains(t, results[0].Output, "vendor/lib.py")
}

func TestRunMetaValidateConfig(t *testing.T) {
	testutil.RequireGit(t)

	repo := t.TempDir()
	testutil.InitGitRepo(t, repo)

	testutil.WriteConfig(t, repo, `
repos:
  - repo: meta
    hooks:
      - id: validate-config
        always_run: true
`)

	r := newTestRunner(t)
	results, err := r.Run(context.Background(), Options{Dir: repo})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.True(t, results[0].Passed())
	require.Contains(t, results[0].Output, "configuration valid")
}

func TestRunMetaCheckHooksApply(t *testing.T) {
	testutil.RequireGit(t)

	repo := t.TempDir()
	testutil.InitGitRepo(t, repo)
	testutil.StageFile(t, repo, "notes.md", "# notes\n")

	testutil.WriteConfig(t, repo, `
repos:
  - repo: local
    hooks:
      - id: py-only
        entry: "true"
        language: system
        types: [python]
  - repo: meta
    hooks:
      - id: check-hooks-apply
        always_run: true
`)

	r := newTestRunner(t)
	results, err := r.Run(context.Background(), Options{Dir: repo})
	require.NoError(t, err)
	require.Len(t, results, 2)

	check := results[1]
	require.Equal(t, "check-hooks-apply", check.HookID)
	require.True(t, errors.Is(check.Err, errors.ErrCodeConfigValidation))
}

func TestResolveConfigOverridesManifest(t *testing.T) {
	m := preparedRepo{
		entry: &config.Repo{Repo: "https://github.com/example/hooks", Rev: "v1.0.0"},
	}
	m.manifest = manifestWith(t, `
- id: lint
  name: Lint tool
  entry: lint-tool
  language: python
  args: ["--fast"]
  types: [python]
`)

	hook := &config.Hook{ID: "lint", Args: []string{"--strict"}, LanguageVersion: "python3"}
	resolved, err := resolve(m, hook)
	require.NoError(t, err)

	require.Equal(t, "Lint tool", resolved.name)
	require.Equal(t, "lint-tool", resolved.entry)
	require.Equal(t, []string{"--strict"}, resolved.args)
	require.Equal(t, "python3", resolved.languageVersion)
	require.Equal(t, []string{"python"}, resolved.types)
	require.Equal(t, []string{"lint-tool", "--strict"}, resolved.argv())

	// A name chosen in the configuration beats the manifest's.
	renamed, err := resolve(m, &config.Hook{ID: "lint", Name: "My lint"})
	require.NoError(t, err)
	require.Equal(t, "My lint", renamed.name)
}

func TestHookEnvExportsLanguageVersion(t *testing.T) {
	cfg := &config.Config{
		DefaultLanguageVersion: map[string]string{"python": "python3.11"},
	}

	env := hookEnv(cfg, &resolvedHook{language: "python", languageVersion: "python3"})
	require.Contains(t, env, "HOOKS_LANGUAGE_VERSION=python3")

	env = hookEnv(cfg, &resolvedHook{language: "python"})
	require.Contains(t, env, "HOOKS_LANGUAGE_VERSION=python3.11")
}

func TestFilterRegexInvalidPattern(t *testing.T) {
	_, err := filterRegex([]string{"a.py"}, "(unclosed", "")
	require.True(t, errors.Is(err, errors.ErrCodeConfigValidation))
}

func manifestWith(t *testing.T, data string) *manifest.Manifest {
	t.Helper()
	m, err := manifest.LoadFromBytes([]byte(data))
	require.NoError(t, err)
	return m
}
