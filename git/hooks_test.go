package git

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grovetools/hooks/testutil"
)

func TestInstallAndUninstallHooks(t *testing.T) {
	testutil.RequireGit(t)

	dir := t.TempDir()
	testutil.InitGitRepo(t, dir)

	mgr := NewHookManager("hooks")
	ctx := context.Background()

	if err := mgr.InstallHooks(ctx, dir); err != nil {
		t.Fatalf("InstallHooks returned error: %v", err)
	}

	hookPath := filepath.Join(dir, ".git", "hooks", "pre-commit")
	content, err := os.ReadFile(hookPath)
	if err != nil {
		t.Fatalf("expected hook script to exist: %v", err)
	}
	if !strings.Contains(string(content), `exec "$HOOKS_BIN" run`) {
		t.Errorf("hook script should invoke the runner, got:\n%s", content)
	}

	info, err := os.Stat(hookPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&0111 == 0 {
		t.Error("hook script should be executable")
	}

	if err := mgr.UninstallHooks(ctx, dir); err != nil {
		t.Fatalf("UninstallHooks returned error: %v", err)
	}
	if _, err := os.Stat(hookPath); !os.IsNotExist(err) {
		t.Error("hook script should be removed")
	}
}

func TestInstallBacksUpForeignHook(t *testing.T) {
	testutil.RequireGit(t)

	dir := t.TempDir()
	testutil.InitGitRepo(t, dir)

	hooksDir := filepath.Join(dir, ".git", "hooks")
	hookPath := filepath.Join(hooksDir, "pre-commit")
	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		t.Fatal(err)
	}
	foreign := "#!/bin/sh\necho custom\n"
	if err := os.WriteFile(hookPath, []byte(foreign), 0755); err != nil {
		t.Fatal(err)
	}

	mgr := NewHookManager("")
	ctx := context.Background()

	if err := mgr.InstallHooks(ctx, dir); err != nil {
		t.Fatalf("InstallHooks returned error: %v", err)
	}

	backup, err := os.ReadFile(hookPath + ".pre-grove-hooks")
	if err != nil {
		t.Fatalf("expected backup of foreign hook: %v", err)
	}
	if string(backup) != foreign {
		t.Error("backup should preserve the foreign hook content")
	}

	// Uninstalling restores the foreign hook
	if err := mgr.UninstallHooks(ctx, dir); err != nil {
		t.Fatalf("UninstallHooks returned error: %v", err)
	}
	restored, err := os.ReadFile(hookPath)
	if err != nil {
		t.Fatalf("expected foreign hook restored: %v", err)
	}
	if string(restored) != foreign {
		t.Error("uninstall should restore the foreign hook content")
	}
}
