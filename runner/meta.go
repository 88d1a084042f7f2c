package runner

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/grovetools/hooks/classify"
	"github.com/grovetools/hooks/config"
	"github.com/grovetools/hooks/errors"
)

// Meta hooks run in-process against the configuration itself rather
// than executing an external program. They are addressed through a
// hook-set entry whose repo is "meta".
const (
	MetaValidateConfig  = "validate-config"
	MetaCheckHooksApply = "check-hooks-apply"
)

func (r *Runner) runMetaHook(ctx context.Context, cfg *config.Config, id, root string, candidates []string) (string, error) {
	switch id {
	case MetaValidateConfig:
		return metaValidateConfig(cfg)
	case MetaCheckHooksApply:
		return metaCheckHooksApply(ctx, cfg, candidates)
	default:
		return "", errors.HookNotFound(id, "meta")
	}
}

// metaValidateConfig re-runs semantic validation and reports a summary.
func metaValidateConfig(cfg *config.Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	return fmt.Sprintf("configuration valid: %d hook-sets, %d hooks\n",
		len(cfg.Repos), cfg.HookCount()), nil
}

// metaCheckHooksApply flags configured hooks whose file filters match
// nothing in the repository. Such hooks silently never run, which is
// almost always a configuration mistake.
func metaCheckHooksApply(_ context.Context, cfg *config.Config, candidates []string) (string, error) {
	var idle []string

	for _, repo := range cfg.Repos {
		if repo.Repo == "meta" {
			continue
		}
		for _, hook := range repo.Hooks {
			if hook.AlwaysRun {
				continue
			}
			applies, err := hookApplies(&hook, candidates)
			if err != nil {
				return "", err
			}
			if !applies {
				idle = append(idle, hook.ID)
			}
		}
	}

	if len(idle) == 0 {
		return "all hooks apply to at least one file\n", nil
	}

	sort.Strings(idle)
	return "", errors.New(errors.ErrCodeConfigValidation,
		"hooks apply to no files: "+strings.Join(idle, ", ")).
		WithDetail("hooks", strings.Join(idle, ", "))
}

func hookApplies(hook *config.Hook, candidates []string) (bool, error) {
	files, err := filterRegex(candidates, hook.Files, hook.Exclude)
	if err != nil {
		return false, err
	}

	matcher, err := classify.NewMatcher(hook.Types)
	if err != nil {
		return false, err
	}

	for _, file := range files {
		if matcher.Matches(file) {
			return true, nil
		}
	}
	return false, nil
}
