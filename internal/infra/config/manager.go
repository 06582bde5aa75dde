package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/runoshun/guardkit/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	projectDir    string // Directory holding .guardkit.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/guardkit)
}

// NewManager creates a new Manager.
func NewManager(projectDir string) *Manager {
	return &Manager{
		projectDir:    projectDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(projectDir, globalConfDir string) *Manager {
	return &Manager{
		projectDir:    projectDir,
		globalConfDir: globalConfDir,
	}
}

// GetConfigInfo returns information about the global and project config files.
func (m *Manager) GetConfigInfo() domain.ConfigInfo {
	info := domain.ConfigInfo{}
	if m.globalConfDir != "" {
		info.GlobalConfig = readConfigInfo(filepath.Join(m.globalConfDir, domain.ConfigFileName))
	}
	if m.projectDir != "" {
		info.ProjectConfig = readConfigInfo(domain.ProjectConfigPath(m.projectDir))
	}
	return info
}

// readConfigInfo reads a config file and returns its info.
func readConfigInfo(path string) domain.ConfigFileInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigFileInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigFileInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitProjectConfig creates .guardkit.toml in the project directory.
func (m *Manager) InitProjectConfig(cfg *domain.Config, force bool) (string, error) {
	if m.projectDir == "" {
		return "", errors.New("project directory not available")
	}
	path := domain.ProjectConfigPath(m.projectDir)
	return path, m.initConfig(path, cfg, force)
}

// InitGlobalConfig creates the global config file with the default template.
func (m *Manager) InitGlobalConfig(cfg *domain.Config, force bool) (string, error) {
	if m.globalConfDir == "" {
		return "", errors.New("global config directory not available")
	}
	path := filepath.Join(m.globalConfDir, domain.ConfigFileName)

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(m.globalConfDir, 0o700); err != nil {
		return "", err
	}

	return path, m.initConfig(path, cfg, force)
}

// initConfig writes the rendered template to path.
func (m *Manager) initConfig(path string, cfg *domain.Config, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return domain.ErrConfigExists
	}

	content := domain.RenderConfigTemplate(cfg)
	return os.WriteFile(path, []byte(content), 0o600)
}
