// Package update bumps pinned hook-set revisions to the newest tag
// published by each hook repository.
package update

import (
	"bytes"
	"context"
	"os"

	"github.com/grovetools/hooks/config"
	"github.com/grovetools/hooks/errors"
	"github.com/grovetools/hooks/git"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Change records a revision bump for one hook-set entry.
type Change struct {
	Repo   string `json:"repo"`
	OldRev string `json:"oldRev"`
	NewRev string `json:"newRev"`
}

// Updater queries hook repositories for newer tags.
type Updater struct {
	gitc *git.Client
	log  *logrus.Entry
}

func New(log *logrus.Entry) *Updater {
	return &Updater{gitc: git.NewClient(), log: log}
}

// NewWithClient is used by tests to substitute the git client.
func NewWithClient(c *git.Client, log *logrus.Entry) *Updater {
	return &Updater{gitc: c, log: log}
}

// Check determines, for every remote hook-set entry, whether a newer
// tag exists. Entries whose repositories publish no tags are left
// alone.
func (u *Updater) Check(ctx context.Context, cfg *config.Config) ([]Change, error) {
	var changes []Change

	for _, repo := range cfg.Repos {
		if repo.Repo == "local" || repo.Repo == "meta" {
			continue
		}

		tags, err := u.gitc.RemoteTags(ctx, repo.Repo)
		if err != nil {
			// One unreachable remote should not block updates for
			// the rest.
			u.log.WithField("repo", repo.Repo).WithError(err).
				Warn("Failed to list remote tags, keeping pin")
			continue
		}

		latest := PickLatestTag(tags)
		if latest == "" {
			u.log.WithField("repo", repo.Repo).Debug("Repository publishes no tags, keeping pin")
			continue
		}

		if latest == repo.Rev {
			continue
		}

		changes = append(changes, Change{
			Repo:   repo.Repo,
			OldRev: repo.Rev,
			NewRev: latest,
		})
	}

	return changes, nil
}

// Apply rewrites the rev fields in the configuration file for the
// given changes. The file is edited at the YAML node level so comments
// and formatting outside the touched values survive.
func Apply(path string, changes []Change) error {
	if len(changes) == 0 {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config file").
			WithDetail("path", path)
	}

	byRepo := make(map[string]string, len(changes))
	for _, change := range changes {
		byRepo[change.Repo] = change.NewRev
	}

	if !rewriteRevs(&doc, byRepo) {
		return errors.New(errors.ErrCodeConfigInvalid,
			"no repos section found in config file").
			WithDetail("path", path)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to render updated config")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to render updated config")
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, buf.Bytes(), mode); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to write config file").
			WithDetail("path", path)
	}
	return nil
}

// rewriteRevs walks the YAML document and sets the rev value of every
// repos entry whose URL appears in byRepo. Returns false when the
// document has no repos sequence.
func rewriteRevs(doc *yaml.Node, byRepo map[string]string) bool {
	root := doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return false
	}

	var repos *yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == "repos" {
			repos = root.Content[i+1]
			break
		}
	}
	if repos == nil || repos.Kind != yaml.SequenceNode {
		return false
	}

	for _, entry := range repos.Content {
		if entry.Kind != yaml.MappingNode {
			continue
		}

		var url string
		var rev *yaml.Node
		for i := 0; i+1 < len(entry.Content); i += 2 {
			switch entry.Content[i].Value {
			case "repo":
				url = entry.Content[i+1].Value
			case "rev":
				rev = entry.Content[i+1]
			}
		}

		newRev, ok := byRepo[url]
		if !ok || rev == nil {
			continue
		}
		rev.SetString(newRev)
	}

	return true
}
