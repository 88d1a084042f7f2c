package config

// mergeConfigs merges override configuration into base. Hook-set
// entries are matched by repository URL: an override entry for a known
// URL replaces that entry's rev and merges its hooks by id; an entry
// for an unknown URL is appended. Scalar top-level options follow
// last-writer-wins.
func mergeConfigs(base, override *Config) *Config {
	result := *base

	for _, overrideRepo := range override.Repos {
		idx := -1
		for i, repo := range result.Repos {
			if repo.Repo == overrideRepo.Repo {
				idx = i
				break
			}
		}
		if idx < 0 {
			result.Repos = append(result.Repos, overrideRepo)
			continue
		}
		result.Repos[idx] = mergeRepo(result.Repos[idx], overrideRepo)
	}

	if override.Files != "" {
		result.Files = override.Files
	}
	if override.Exclude != "" {
		result.Exclude = override.Exclude
	}
	if override.FailFast {
		result.FailFast = true
	}
	if override.MinimumHooksVersion != "" {
		result.MinimumHooksVersion = override.MinimumHooksVersion
	}

	if override.DefaultLanguageVersion != nil {
		if result.DefaultLanguageVersion == nil {
			result.DefaultLanguageVersion = make(map[string]string)
		}
		for lang, version := range override.DefaultLanguageVersion {
			result.DefaultLanguageVersion[lang] = version
		}
	}

	if override.Extensions != nil {
		if result.Extensions == nil {
			result.Extensions = make(map[string]interface{})
		}
		for key, value := range override.Extensions {
			// If both sides carry the same extension section, merge them
			if baseValue, exists := result.Extensions[key]; exists {
				if baseMap, baseOk := baseValue.(map[string]interface{}); baseOk {
					if overrideMap, overrideOk := value.(map[string]interface{}); overrideOk {
						mergedMap := make(map[string]interface{})
						for k, v := range baseMap {
							mergedMap[k] = v
						}
						for k, v := range overrideMap {
							mergedMap[k] = v
						}
						result.Extensions[key] = mergedMap
						continue
					}
				}
			}
			result.Extensions[key] = value
		}
	}

	return &result
}

func mergeRepo(base, override Repo) Repo {
	result := base

	if override.Rev != "" {
		result.Rev = override.Rev
	}

	for _, overrideHook := range override.Hooks {
		idx := -1
		for i, hook := range result.Hooks {
			if hook.ID == overrideHook.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			result.Hooks = append(result.Hooks, overrideHook)
			continue
		}
		result.Hooks[idx] = mergeHook(result.Hooks[idx], overrideHook)
	}

	return result
}

func mergeHook(base, override Hook) Hook {
	result := base

	if override.Name != "" {
		result.Name = override.Name
	}
	if override.LanguageVersion != "" {
		result.LanguageVersion = override.LanguageVersion
	}
	if override.Args != nil {
		result.Args = override.Args
	}
	if override.Entry != "" {
		result.Entry = override.Entry
	}
	if override.Language != "" {
		result.Language = override.Language
	}
	if override.Files != "" {
		result.Files = override.Files
	}
	if override.Exclude != "" {
		result.Exclude = override.Exclude
	}
	if override.Types != nil {
		result.Types = override.Types
	}
	if override.AlwaysRun {
		result.AlwaysRun = true
	}
	if override.PassFilenames != nil {
		result.PassFilenames = override.PassFilenames
	}
	if override.Verbose {
		result.Verbose = true
	}

	return result
}
