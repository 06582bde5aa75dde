package domain

import "path/filepath"

// Directory and file names for guardkit.
const (
	AppDirName            = "guardkit"       // Directory name under config/data homes
	ConfigFileName        = "config.toml"    // Global config file name
	ProjectConfigFileName = ".guardkit.toml" // Config file name in a project directory
	HistoryFileName       = "history.json"   // History store file name
	LogFileName           = "guardkit.log"   // Log file name
)

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// ProjectConfigPath returns the project config path for dir.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ProjectConfigFileName)
}

// DataDir returns the data directory.
// dataHome is typically XDG_DATA_HOME or ~/.local/share (resolved by caller).
func DataDir(dataHome string) string {
	return filepath.Join(dataHome, AppDirName)
}

// HistoryPath returns the history store path.
func HistoryPath(dataDir string) string {
	return filepath.Join(dataDir, HistoryFileName)
}

// LogPath returns the log file path.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", LogFileName)
}
