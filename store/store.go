// Package store maintains the local cache of cloned hook repositories.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/grovetools/hooks/command"
	"github.com/grovetools/hooks/errors"
	"github.com/sirupsen/logrus"
)

// Store caches hook repositories under a root directory, one clone per
// (url, rev) pair. Entries are immutable once checked out: the pin is
// part of the cache key, so a cached clone never needs refetching.
type Store struct {
	root    string
	builder *command.SafeBuilder
	log     *logrus.Entry
}

// New creates a store rooted at the given directory.
func New(root string, log *logrus.Entry) *Store {
	return &Store{
		root:    root,
		builder: command.NewSafeBuilder(),
		log:     log,
	}
}

// DefaultRoot returns the cache directory honoring XDG_CACHE_HOME.
func DefaultRoot() (string, error) {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return filepath.Join(xdgCache, "grove-hooks", "repos"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "failed to determine home directory")
	}
	return filepath.Join(home, ".cache", "grove-hooks", "repos"), nil
}

// Ensure returns the directory holding a clone of url checked out at
// rev, cloning on first use.
func (s *Store) Ensure(ctx context.Context, url, rev string) (string, error) {
	if err := command.ValidateRepoURL(url); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInvalidInput, "refusing to clone repository")
	}
	if err := command.ValidateGitRef(rev); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInvalidInput, "refusing to check out revision")
	}

	dir := filepath.Join(s.root, cacheKey(url, rev))

	if s.isReady(ctx, dir) {
		s.log.WithField("dir", dir).Debug("Using cached hook repository")
		return dir, nil
	}

	// A partial clone from an interrupted run is unusable; start over.
	if err := os.RemoveAll(dir); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "failed to clear stale cache entry").
			WithDetail("dir", dir)
	}
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "failed to create cache root").
			WithDetail("dir", s.root)
	}

	s.log.WithFields(logrus.Fields{"repo": url, "rev": rev}).Info("Cloning hook repository")

	if err := s.run(ctx, "", "clone", "--quiet", url, dir); err != nil {
		return "", errors.RepoCloneFailed(url, err)
	}

	if err := s.run(ctx, dir, "checkout", "--quiet", rev); err != nil {
		// The clone succeeded, so the failure is the pin itself.
		_ = os.RemoveAll(dir)
		return "", errors.RevNotFound(url, rev)
	}

	return dir, nil
}

// isReady reports whether dir holds a usable checkout.
func (s *Store) isReady(ctx context.Context, dir string) bool {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return false
	}
	return s.run(ctx, dir, "rev-parse", "--verify", "HEAD") == nil
}

func (s *Store) run(ctx context.Context, dir string, args ...string) error {
	cmd, err := s.builder.Build(ctx, "git", args...)
	if err != nil {
		return err
	}

	execCmd := cmd.Exec()
	if dir != "" {
		execCmd.Dir = dir
	}
	if out, err := execCmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git %v: %w: %s", args, err, out)
	}
	return nil
}

// cacheKey derives a stable directory name for a (url, rev) pair.
func cacheKey(url, rev string) string {
	sum := sha256.Sum256([]byte(url + "@" + rev))
	return hex.EncodeToString(sum[:])[:16]
}
