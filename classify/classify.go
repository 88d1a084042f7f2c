// Package classify maps file type tags (as used in a hook's `types`
// list) to filename patterns and matches candidate files against them.
package classify

import (
	"sort"

	"github.com/moby/patternmatcher"
)

// typePatterns maps a type tag to the filename patterns it covers.
var typePatterns = map[string][]string{
	"file":       {"**"},
	"python":     {"**/*.py", "**/*.pyi", "*.py", "*.pyi"},
	"yaml":       {"**/*.yaml", "**/*.yml", "*.yaml", "*.yml"},
	"json":       {"**/*.json", "*.json"},
	"toml":       {"**/*.toml", "*.toml"},
	"markdown":   {"**/*.md", "**/*.markdown", "*.md", "*.markdown"},
	"go":         {"**/*.go", "*.go"},
	"shell":      {"**/*.sh", "**/*.bash", "*.sh", "*.bash"},
	"dockerfile": {"**/Dockerfile", "Dockerfile", "**/Dockerfile.*", "Dockerfile.*"},
	"text":       {"**/*.txt", "**/*.rst", "*.txt", "*.rst"},
}

// KnownTypes returns the supported type tags, sorted.
func KnownTypes() []string {
	types := make([]string, 0, len(typePatterns))
	for t := range typePatterns {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Known reports whether a type tag is supported.
func Known(tag string) bool {
	_, ok := typePatterns[tag]
	return ok
}

// Matcher matches files against a set of type tags. A file matches if
// any tag's patterns cover it; an empty tag set matches everything.
type Matcher struct {
	unrestricted bool
	matchers     []*patternmatcher.PatternMatcher
}

// NewMatcher compiles the patterns for the given tags. An unknown tag
// contributes nothing, so a tag set made only of unknown tags matches
// no files at all.
func NewMatcher(tags []string) (*Matcher, error) {
	m := &Matcher{unrestricted: len(tags) == 0}
	for _, tag := range tags {
		patterns, ok := typePatterns[tag]
		if !ok {
			continue
		}
		pm, err := patternmatcher.New(patterns)
		if err != nil {
			return nil, err
		}
		m.matchers = append(m.matchers, pm)
	}
	return m, nil
}

// Matches reports whether the file path matches any of the matcher's
// type tags.
func (m *Matcher) Matches(path string) bool {
	if m.unrestricted {
		return true
	}
	for _, pm := range m.matchers {
		ok, err := pm.MatchesOrParentMatches(path)
		if err == nil && ok {
			return true
		}
	}
	return false
}
