package git

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

const preCommitHookTemplate = `#!/bin/sh
# grove-hooks git hook - pre-commit
# Auto-generated, do not edit directly

HOOKS_BIN="{{.HooksBinary}}"

# Check if the runner is installed
if ! command -v "$HOOKS_BIN" >/dev/null 2>&1; then
    echo "grove-hooks not found. Skipping pre-commit hook."
    exit 0
fi

cd "$(git rev-parse --show-toplevel)"
exec "$HOOKS_BIN" run
`

// HookManager installs and removes the git pre-commit hook script that
// invokes the runner.
type HookManager struct {
	hooksBinary string
}

// NewHookManager creates a new hook manager
func NewHookManager(hooksBinary string) *HookManager {
	if hooksBinary == "" {
		hooksBinary = "hooks"
	}
	return &HookManager{
		hooksBinary: hooksBinary,
	}
}

// InstallHooks installs the pre-commit git hook
func (m *HookManager) InstallHooks(ctx context.Context, repoPath string) error {
	hooksDir := filepath.Join(repoPath, ".git", "hooks")
	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		return fmt.Errorf("create hooks directory: %w", err)
	}

	if err := m.installHook(hooksDir, "pre-commit", preCommitHookTemplate); err != nil {
		return fmt.Errorf("install pre-commit hook: %w", err)
	}

	return nil
}

// UninstallHooks removes the pre-commit git hook, restoring any backup
// taken at install time.
func (m *HookManager) UninstallHooks(ctx context.Context, repoPath string) error {
	hooksDir := filepath.Join(repoPath, ".git", "hooks")
	hookPath := filepath.Join(hooksDir, "pre-commit")

	// Only remove our own hook
	if m.isManagedHook(hookPath) {
		if err := os.Remove(hookPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove pre-commit hook: %w", err)
		}
	}

	backupPath := hookPath + ".pre-grove-hooks"
	if _, err := os.Stat(backupPath); err == nil {
		if err := os.Rename(backupPath, hookPath); err != nil {
			return fmt.Errorf("restore previous hook: %w", err)
		}
	}

	return nil
}

// installHook installs a single git hook
func (m *HookManager) installHook(hooksDir, hookName, templateContent string) error {
	hookPath := filepath.Join(hooksDir, hookName)

	// Check if hook already exists
	if _, err := os.Stat(hookPath); err == nil {
		// Back up a hook we don't manage
		if !m.isManagedHook(hookPath) {
			backupPath := hookPath + ".pre-grove-hooks"
			if err := os.Rename(hookPath, backupPath); err != nil {
				return fmt.Errorf("backup existing hook: %w", err)
			}
		}
	}

	// Generate hook content
	tmpl, err := template.New(hookName).Parse(templateContent)
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	data := struct {
		HookName    string
		HooksBinary string
	}{
		HookName:    hookName,
		HooksBinary: m.hooksBinary,
	}

	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	// Write hook file with executable permissions
	// #nosec G306 - Git hooks need to be executable
	if err := os.WriteFile(hookPath, buf.Bytes(), 0755); err != nil {
		return fmt.Errorf("write hook file: %w", err)
	}

	return nil
}

// isManagedHook checks if a hook file was written by us
func (m *HookManager) isManagedHook(hookPath string) bool {
	content, err := os.ReadFile(hookPath)
	if err != nil {
		return false
	}
	return bytes.Contains(content, []byte("grove-hooks git hook"))
}
