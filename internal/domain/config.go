package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string      `toml:"-"`
	Runner   RunnerConfig  `toml:"runner"`
	Log      LogConfig     `toml:"log"`
	History  HistoryConfig `toml:"history"`
}

// RunnerConfig holds settings for the command runner from [runner] section.
type RunnerConfig struct {
	Allow     []string `toml:"allow"`                // Allowed command verbs
	Dir       string   `toml:"dir,omitempty"`        // Working directory for commands (default: current)
	MaxOutput int      `toml:"max_output,omitempty"` // Output cap in bytes (0 = unlimited)
}

// LogConfig holds settings for logging from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
}

// HistoryConfig holds settings for the history store from [history] section.
type HistoryConfig struct {
	Enabled *bool `toml:"enabled,omitempty"` // nil = enabled
	Limit   int   `toml:"limit"`             // Entries kept (0 = unlimited)
}

// Default configuration values.
const (
	DefaultLogLevel     = "info"
	DefaultHistoryLimit = 500
)

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Runner: RunnerConfig{
			Allow: append([]string(nil), DefaultAllowedVerbs...),
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		History: HistoryConfig{
			Limit: DefaultHistoryLimit,
		},
	}
}

// AllowList returns the configured allow-list.
func (c *Config) AllowList() AllowList {
	return NewAllowList(c.Runner.Allow)
}

// HistoryEnabled reports whether history recording is on.
func (c *Config) HistoryEnabled() bool {
	return c.History.Enabled == nil || *c.History.Enabled
}

// RenderConfigTemplate renders the config template with values from cfg.
func RenderConfigTemplate(cfg *Config) string {
	quoted := make([]string, 0, len(cfg.Runner.Allow))
	for _, v := range cfg.Runner.Allow {
		quoted = append(quoted, strconv.Quote(v))
	}

	data := struct {
		Allow          string
		LogLevel       string
		MaxOutput      int
		HistoryLimit   int
		HistoryEnabled bool
	}{
		Allow:          strings.Join(quoted, ", "),
		LogLevel:       cfg.Log.Level,
		MaxOutput:      cfg.Runner.MaxOutput,
		HistoryLimit:   cfg.History.Limit,
		HistoryEnabled: cfg.HistoryEnabled(),
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}
