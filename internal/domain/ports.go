package domain

import (
	"context"
	"time"
)

// CommandExecutor starts external processes.
type CommandExecutor interface {
	// Execute runs cmd to completion and returns its combined output and exit status.
	// It returns a *SpawnError when the process could not be started.
	Execute(ctx context.Context, cmd *ExecCommand) (*ExecResult, error)
}

// HistoryRepository persists evaluation and command history.
type HistoryRepository interface {
	// Append adds an entry and prunes the oldest entries beyond keep (0 = unlimited).
	Append(entry HistoryEntry, keep int) error

	// List returns entries matching the filter, newest first.
	List(filter HistoryFilter) ([]HistoryEntry, error)

	// Clear removes all entries and returns how many were removed.
	Clear() (int, error)
}

// HistoryFilter specifies criteria for listing history.
type HistoryFilter struct {
	Kind  HistoryKind // empty = all kinds
	Limit int         // 0 = no limit
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (default <- global <- project).
	Load() (*Config, error)

	// LoadWithOptions returns the merged configuration, skipping ignored sources.
	LoadWithOptions(opts LoadConfigOptions) (*Config, error)
}

// LoadConfigOptions controls which configuration sources are merged.
type LoadConfigOptions struct {
	IgnoreGlobal  bool
	IgnoreProject bool
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetConfigInfo returns information about the config files.
	GetConfigInfo() ConfigInfo

	// InitProjectConfig writes the config template to the project config path
	// and returns the path written.
	InitProjectConfig(cfg *Config, force bool) (string, error)

	// InitGlobalConfig writes the config template to the global config path
	// and returns the path written.
	InitGlobalConfig(cfg *Config, force bool) (string, error)
}

// ConfigInfo describes the config file locations.
type ConfigInfo struct {
	GlobalConfig  ConfigFileInfo
	ProjectConfig ConfigFileInfo
}

// ConfigFileInfo describes one config file.
type ConfigFileInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Logger records operational events.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards all log entries.
type NopLogger struct{}

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
