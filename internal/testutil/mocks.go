// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"strings"
	"time"

	"github.com/runoshun/guardkit/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockCommandExecutor is a spy for domain.CommandExecutor.
// It records every command it is asked to start.
// Fields are ordered to minimize memory padding.
type MockCommandExecutor struct {
	Result  *domain.ExecResult
	Err     error
	Calls   []domain.ExecCommand
	Outputs map[string]string // Program -> output, used when Result is nil
}

// NewMockCommandExecutor creates a MockCommandExecutor that echoes its arguments.
func NewMockCommandExecutor() *MockCommandExecutor {
	return &MockCommandExecutor{
		Outputs: make(map[string]string),
	}
}

// Execute records cmd and returns the configured result.
func (m *MockCommandExecutor) Execute(_ context.Context, cmd *domain.ExecCommand) (*domain.ExecResult, error) {
	m.Calls = append(m.Calls, *cmd)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Result != nil {
		return m.Result, nil
	}
	if out, ok := m.Outputs[cmd.Program]; ok {
		return &domain.ExecResult{Output: []byte(out)}, nil
	}
	return &domain.ExecResult{Output: []byte(strings.Join(cmd.Args, " ") + "\n")}, nil
}

// Programs returns the program of every recorded call.
func (m *MockCommandExecutor) Programs() []string {
	out := make([]string, 0, len(m.Calls))
	for _, c := range m.Calls {
		out = append(out, c.Program)
	}
	return out
}

// MockHistoryRepository is a test double for domain.HistoryRepository.
// Fields are ordered to minimize memory padding.
type MockHistoryRepository struct {
	AppendErr error
	ListErr   error
	ClearErr  error
	Entries   []domain.HistoryEntry // Oldest first
	LastKeep  int
}

// NewMockHistoryRepository creates an empty MockHistoryRepository.
func NewMockHistoryRepository() *MockHistoryRepository {
	return &MockHistoryRepository{}
}

// Append records entry.
func (m *MockHistoryRepository) Append(entry domain.HistoryEntry, keep int) error {
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.LastKeep = keep
	m.Entries = append(m.Entries, entry)
	return nil
}

// List returns entries newest first, applying the kind filter and limit.
func (m *MockHistoryRepository) List(filter domain.HistoryFilter) ([]domain.HistoryEntry, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := []domain.HistoryEntry{}
	for i := len(m.Entries) - 1; i >= 0; i-- {
		if filter.Kind != "" && m.Entries[i].Kind != filter.Kind {
			continue
		}
		out = append(out, m.Entries[i])
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out, nil
}

// Clear removes all entries.
func (m *MockHistoryRepository) Clear() (int, error) {
	if m.ClearErr != nil {
		return 0, m.ClearErr
	}
	n := len(m.Entries)
	m.Entries = nil
	return n, nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
	Opts    []domain.LoadConfigOptions
}

// NewMockConfigLoader creates a MockConfigLoader returning the default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{Config: domain.NewDefaultConfig()}
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	return m.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadWithOptions returns the configured config and records opts.
func (m *MockConfigLoader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	m.Opts = append(m.Opts, opts)
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr      error
	Info         domain.ConfigInfo
	InitedPath   string
	InitedGlobal bool
	InitedForce  bool
}

// GetConfigInfo returns the configured info.
func (m *MockConfigManager) GetConfigInfo() domain.ConfigInfo {
	return m.Info
}

// InitProjectConfig records the call.
func (m *MockConfigManager) InitProjectConfig(_ *domain.Config, force bool) (string, error) {
	if m.InitErr != nil {
		return "", m.InitErr
	}
	m.InitedForce = force
	m.InitedPath = m.Info.ProjectConfig.Path
	return m.InitedPath, nil
}

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig(_ *domain.Config, force bool) (string, error) {
	if m.InitErr != nil {
		return "", m.InitErr
	}
	m.InitedForce = force
	m.InitedGlobal = true
	m.InitedPath = m.Info.GlobalConfig.Path
	return m.InitedPath, nil
}

// LogEntry is one call recorded by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger records log calls.
type MockLogger struct {
	Entries []LogEntry
}

func (m *MockLogger) Debug(category, msg string) { m.add("debug", category, msg) }
func (m *MockLogger) Info(category, msg string)  { m.add("info", category, msg) }
func (m *MockLogger) Warn(category, msg string)  { m.add("warn", category, msg) }
func (m *MockLogger) Error(category, msg string) { m.add("error", category, msg) }

func (m *MockLogger) add(level, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Levels returns the level of every recorded entry.
func (m *MockLogger) Levels() []string {
	out := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		out = append(out, e.Level)
	}
	return out
}

var (
	_ domain.Clock             = (*MockClock)(nil)
	_ domain.CommandExecutor   = (*MockCommandExecutor)(nil)
	_ domain.HistoryRepository = (*MockHistoryRepository)(nil)
	_ domain.ConfigLoader      = (*MockConfigLoader)(nil)
	_ domain.ConfigManager     = (*MockConfigManager)(nil)
	_ domain.Logger            = (*MockLogger)(nil)
)
