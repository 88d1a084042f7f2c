package config

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/grovetools/hooks/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// ConfigFileNames are the recognized configuration file names, in
// precedence order. The TOML variant is an alternative syntax for the
// same schema.
var ConfigFileNames = []string{
	".pre-commit-config.yaml",
	".pre-commit-config.yml",
	".pre-commit-config.toml",
}

// Load reads and parses a hook configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	cfg, err := parse(data, path)
	if err == nil {
		cfg, err = finish(cfg)
	}
	if err != nil {
		if hooksErr, ok := err.(*errors.HooksError); ok {
			return nil, hooksErr.WithDetail("path", path)
		}
		return nil, err
	}
	return cfg, nil
}

// LoadDefault finds and loads the configuration starting from the
// current working directory.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}

	return LoadFrom(cwd)
}

// LoadFrom loads configuration starting from the given directory
func LoadFrom(startDir string) (*Config, error) {
	return LoadFromWithLogger(startDir, logrus.New())
}

// LoadFromWithLogger loads configuration with local override merging and logging:
// 1. Project config (.pre-commit-config.yaml) - base layer
// 2. Local override (.pre-commit-config.override.yaml) - overrides project
func LoadFromWithLogger(startDir string, logger *logrus.Logger) (*Config, error) {
	projectPath, err := FindConfigFile(startDir)
	if err != nil {
		return nil, err
	}

	logger.WithField("path", projectPath).Debug("Loading hook configuration")

	projectData, err := os.ReadFile(projectPath)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", projectPath)
	}

	finalConfig, err := parse(projectData, projectPath)
	if err != nil {
		if hooksErr, ok := err.(*errors.HooksError); ok {
			return nil, hooksErr.WithDetail("path", projectPath)
		}
		return nil, err
	}

	// Merge override files if they exist (optional)
	projectDir := filepath.Dir(projectPath)
	overrideFiles := []string{
		filepath.Join(projectDir, ".pre-commit-config.override.yaml"),
		filepath.Join(projectDir, ".pre-commit-config.override.yml"),
	}

	merged := finalConfig
	for _, overridePath := range overrideFiles {
		if _, err := os.Stat(overridePath); err == nil {
			logger.WithField("path", overridePath).Debug("Loading local override configuration")

			overrideData, err := os.ReadFile(overridePath)
			if err != nil {
				logger.WithError(err).Warn("Failed to read override file, skipping")
				continue
			}

			expanded := expandEnvVars(string(overrideData))

			var overrideConfig Config
			if err := yaml.Unmarshal([]byte(expanded), &overrideConfig); err != nil {
				logger.WithError(err).Warn("Failed to parse override file, skipping")
				continue
			}

			merged = mergeConfigs(merged, &overrideConfig)
		}
	}

	return finish(merged)
}

// LoadFromBytes parses YAML configuration from a byte array
func LoadFromBytes(data []byte) (*Config, error) {
	cfg, err := parse(data, "")
	if err != nil {
		return nil, err
	}
	return finish(cfg)
}

// parse expands env vars, schema-validates the raw document, and
// decodes it into the typed config. Schema validation happens on the
// raw document: decoding first would drop unknown keys before
// additionalProperties could reject them.
func parse(data []byte, path string) (*Config, error) {
	expanded := expandEnvVars(string(data))

	isTOML := strings.HasSuffix(path, ".toml")
	unmarshal := yaml.Unmarshal
	syntax := "YAML"
	if isTOML {
		unmarshal = toml.Unmarshal
		syntax = "TOML"
	}

	var raw map[string]interface{}
	if err := unmarshal([]byte(expanded), &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse "+syntax+" configuration")
	}

	validator, err := NewSchemaValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to create validator")
	}
	if err := validator.Validate(raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "schema validation failed")
	}

	var config Config
	if err := unmarshal([]byte(expanded), &config); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse "+syntax+" configuration")
	}
	return &config, nil
}

// finish runs defaults and semantic validation on a parsed config.
// Runs after override merging, so it revalidates what overrides added.
func finish(config *Config) (*Config, error) {
	config.SetDefaults()

	if err := config.Validate(); err != nil {
		return nil, err // Already returns structured error from validation
	}

	return config, nil
}

// FindConfigFile searches for hook configuration files with the following precedence:
// 1. Current directory up to filesystem root
// 2. Git repository root (if in a git repo)
func FindConfigFile(startDir string) (string, error) {
	// 1. Search from current directory up to filesystem root
	dir := startDir
	for {
		for _, name := range ConfigFileNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	// 2. Check git repository root if we're in a git repo
	if gitRoot, err := getGitRoot(startDir); err == nil && gitRoot != "" {
		for _, name := range ConfigFileNames {
			path := filepath.Join(gitRoot, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}
	}

	return "", errors.ConfigNotFound(startDir).WithDetail("searchPath", startDir)
}

// expandEnvVars replaces ${VAR} with environment variable values
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		// Handle default values: ${VAR:-default}
		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return defaultValue
	})
}

// getGitRoot attempts to find the git repository root
func getGitRoot(dir string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}
