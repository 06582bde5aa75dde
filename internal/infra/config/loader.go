// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/guardkit/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	projectDir    string // Directory holding .guardkit.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/guardkit)
}

// NewLoader creates a new Loader.
func NewLoader(projectDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(projectDir, globalConfDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (global + project).
// Project config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	return l.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadWithOptions returns the merged configuration with options to ignore sources.
func (l *Loader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	var global, project *layer
	var err error

	if !opts.IgnoreGlobal && l.globalConfDir != "" {
		global, err = l.loadLayer(l.globalConfigPath())
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if !opts.IgnoreProject && l.projectDir != "" {
		project, err = l.loadLayer(domain.ProjectConfigPath(l.projectDir))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	// Merge: default <- global <- project (later takes precedence)
	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if project != nil {
		base = mergeConfigs(base, project)
	}

	if base.AllowList().Len() == 0 {
		base.Warnings = append(base.Warnings, "[runner] allow is empty: no command can be run")
	}
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(l.globalConfigPath())
}

func (l *Loader) globalConfigPath() string {
	return filepath.Join(l.globalConfDir, domain.ConfigFileName)
}

// LoadProject returns only the project configuration.
func (l *Loader) LoadProject() (*domain.Config, error) {
	if l.projectDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(domain.ProjectConfigPath(l.projectDir))
}

// layer is one config file together with the keys it sets.
// Keys are recorded as "section.key" so that an explicit zero still overrides.
type layer struct {
	cfg     *domain.Config
	present map[string]bool
}

func (ly *layer) has(key string) bool {
	return ly.present[key]
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	ly, err := l.loadLayer(path)
	if err != nil {
		return nil, err
	}
	return ly.cfg, nil
}

func (l *Loader) loadLayer(path string) (*layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
// Only keys holding a valid value are marked present.
func convertRawToDomainConfig(raw map[string]any) *layer {
	res := &domain.Config{}
	present := make(map[string]bool)
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "runner":
			for k, v := range m {
				switch k {
				case "allow":
					verbs, ok := toStringSlice(v)
					if !ok {
						warnings = append(warnings, "[runner] allow must be an array of strings")
						continue
					}
					res.Runner.Allow = verbs
					present["runner.allow"] = true
				case "dir":
					s, ok := v.(string)
					if !ok {
						warnings = append(warnings, "[runner] dir must be a string")
						continue
					}
					res.Runner.Dir = s
					present["runner.dir"] = true
				case "max_output":
					n, ok := v.(int64)
					if !ok {
						warnings = append(warnings, "[runner] max_output must be an integer")
						continue
					}
					if n < 0 {
						warnings = append(warnings, "[runner] max_output must not be negative")
						continue
					}
					res.Runner.MaxOutput = int(n)
					present["runner.max_output"] = true
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [runner]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					s, ok := v.(string)
					if !ok {
						warnings = append(warnings, "[log] level must be a string")
						continue
					}
					if !isValidLogLevel(s) {
						warnings = append(warnings, fmt.Sprintf("unknown log level %q (using %q)", s, domain.DefaultLogLevel))
						continue
					}
					res.Log.Level = s
					present["log.level"] = true
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "history":
			for k, v := range m {
				switch k {
				case "enabled":
					b, ok := v.(bool)
					if !ok {
						warnings = append(warnings, "[history] enabled must be a boolean")
						continue
					}
					res.History.Enabled = &b
					present["history.enabled"] = true
				case "limit":
					n, ok := v.(int64)
					if !ok {
						warnings = append(warnings, "[history] limit must be an integer")
						continue
					}
					if n < 0 {
						warnings = append(warnings, "[history] limit must not be negative")
						continue
					}
					res.History.Limit = int(n)
					present["history.limit"] = true
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [history]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return &layer{cfg: res, present: present}
}

// toStringSlice converts a decoded TOML array to []string.
// An empty array yields a non-nil empty slice.
func toStringSlice(v any) ([]string, bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func isValidLogLevel(s string) bool {
	switch s {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

// mergeConfigs merges a config layer onto base. Every key the layer sets
// takes precedence, including explicit zero values.
func mergeConfigs(base *domain.Config, ly *layer) *domain.Config {
	override := ly.cfg
	result := &domain.Config{
		Runner:   base.Runner,
		Log:      base.Log,
		History:  base.History,
		Warnings: append([]string{}, base.Warnings...),
	}
	result.Warnings = append(result.Warnings, override.Warnings...)

	// A present allow key replaces the list, even when empty.
	if ly.has("runner.allow") {
		result.Runner.Allow = append([]string{}, override.Runner.Allow...)
	}
	if ly.has("runner.dir") {
		result.Runner.Dir = override.Runner.Dir
	}
	if ly.has("runner.max_output") {
		result.Runner.MaxOutput = override.Runner.MaxOutput
	}
	if ly.has("log.level") {
		result.Log.Level = override.Log.Level
	}
	if ly.has("history.enabled") {
		result.History.Enabled = override.History.Enabled
	}
	if ly.has("history.limit") {
		result.History.Limit = override.History.Limit
	}

	return result
}
