package git

import (
	"context"
	"testing"

	"github.com/grovetools/hooks/testutil"
)

func TestTopLevel(t *testing.T) {
	testutil.RequireGit(t)

	dir := t.TempDir()
	testutil.InitGitRepo(t, dir)

	client := NewClient()
	top, err := client.TopLevel(context.Background(), dir)
	if err != nil {
		t.Fatalf("TopLevel returned error: %v", err)
	}
	if top == "" {
		t.Fatal("expected a repository root")
	}

	// Outside a repository
	if _, err := client.TopLevel(context.Background(), t.TempDir()); err == nil {
		t.Error("expected error outside a git repository")
	}
}

func TestStagedFiles(t *testing.T) {
	testutil.RequireGit(t)

	dir := t.TempDir()
	testutil.InitGitRepo(t, dir)

	client := NewClient()

	files, err := client.StagedFiles(context.Background(), dir)
	if err != nil {
		t.Fatalf("StagedFiles returned error: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected no staged files, got %v", files)
	}

	testutil.StageFile(t, dir, "module.py", "print('hello')\n")
	testutil.StageFile(t, dir, "docs/notes.md", "# notes\n")

	files, err = client.StagedFiles(context.Background(), dir)
	if err != nil {
		t.Fatalf("StagedFiles returned error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 staged files, got %v", files)
	}
}

func TestAllFiles(t *testing.T) {
	testutil.RequireGit(t)

	dir := t.TempDir()
	testutil.InitGitRepo(t, dir)
	testutil.CreateCommit(t, dir, "module.py", "print('hello')\n")

	client := NewClient()
	files, err := client.AllFiles(context.Background(), dir)
	if err != nil {
		t.Fatalf("AllFiles returned error: %v", err)
	}

	// README.md from the fixture plus module.py
	if len(files) != 2 {
		t.Fatalf("expected 2 tracked files, got %v", files)
	}
}

func TestResolveRemoteRef(t *testing.T) {
	testutil.RequireGit(t)

	remote := t.TempDir()
	testutil.InitGitRepo(t, remote)
	testutil.RunGitCommand(t, remote, "tag", "v1.0.0")
	head := testutil.GitOutput(t, remote, "rev-parse", "HEAD")

	client := NewClient()

	sha, err := client.ResolveRemoteRef(context.Background(), remote, "v1.0.0")
	if err != nil {
		t.Fatalf("ResolveRemoteRef returned error: %v", err)
	}
	if sha != head {
		t.Errorf("expected %s, got %s", head, sha)
	}

	if _, err := client.ResolveRemoteRef(context.Background(), remote, "v9.9.9"); err == nil {
		t.Error("expected error for missing ref")
	}
}

func TestRemoteTags(t *testing.T) {
	testutil.RequireGit(t)

	remote := t.TempDir()
	testutil.InitGitRepo(t, remote)
	testutil.RunGitCommand(t, remote, "tag", "v1.0.0")
	testutil.CreateCommit(t, remote, "CHANGES.md", "v1.1.0\n")
	testutil.RunGitCommand(t, remote, "tag", "v1.1.0")

	client := NewClient()
	tags, err := client.RemoteTags(context.Background(), remote)
	if err != nil {
		t.Fatalf("RemoteTags returned error: %v", err)
	}

	if len(tags) != 2 {
		t.Fatalf("expected 2 tags, got %v", tags)
	}
}
