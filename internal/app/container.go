// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/runoshun/guardkit/internal/domain"
	"github.com/runoshun/guardkit/internal/infra/config"
	"github.com/runoshun/guardkit/internal/infra/executor"
	"github.com/runoshun/guardkit/internal/infra/jsonstore"
	"github.com/runoshun/guardkit/internal/infra/logging"
	"github.com/runoshun/guardkit/internal/usecase"
	"github.com/runoshun/guardkit/internal/usecase/shared"
)

// Config holds the application paths.
type Config struct {
	WorkDir     string // Directory guardkit was started in
	DataDir     string // Path to the data directory (e.g., ~/.local/share/guardkit)
	HistoryPath string // Path to history.json
	LogPath     string // Path to guardkit.log
}

// newConfig creates a new Config for workDir and dataDir.
func newConfig(workDir, dataDir string) Config {
	return Config{
		WorkDir:     workDir,
		DataDir:     dataDir,
		HistoryPath: domain.HistoryPath(dataDir),
		LogPath:     domain.LogPath(dataDir),
	}
}

// defaultDataDir returns the data directory from XDG_DATA_HOME or ~/.local/share.
func defaultDataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve data directory: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return domain.DataDir(dataHome), nil
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Executor      domain.CommandExecutor
	History       domain.HistoryRepository
	Clock         domain.Clock
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Pointer fields
	AppConfig *domain.Config
	logFile   *logging.Logger

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
// A config file that cannot be parsed is reported as a warning and
// the defaults are used instead.
func New(dir string) (*Container, error) {
	workDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	dataDir, err := defaultDataDir()
	if err != nil {
		return nil, err
	}
	cfg := newConfig(workDir, dataDir)

	configLoader := config.NewLoader(workDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		appConfig = domain.NewDefaultConfig()
		appConfig.Warnings = append(appConfig.Warnings, fmt.Sprintf("%v (using defaults)", err))
	}

	// Diagnostics that cannot go to the log file are reported on stderr.
	diag := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	logger := logging.New(cfg.DataDir, logging.ParseLevel(appConfig.Log.Level)).WithFallback(diag)

	return &Container{
		Executor:      executor.NewClient(appConfig.Runner.MaxOutput),
		History:       jsonstore.New(cfg.HistoryPath),
		Clock:         domain.RealClock{},
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(workDir),
		Logger:        logger,
		AppConfig:     appConfig,
		logFile:       logger,
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, exec domain.CommandExecutor, history domain.HistoryRepository, clock domain.Clock, logger domain.Logger) *Container {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		Executor:  exec,
		History:   history,
		Clock:     clock,
		Logger:    logger,
		AppConfig: appConfig,
		Config:    cfg,
	}
}

// Close releases the log file.
func (c *Container) Close() error {
	if c.logFile == nil {
		return nil
	}
	return c.logFile.Close()
}

// RunnerDir returns the working directory for commands.
// A relative [runner] dir is resolved against the working directory.
func (c *Container) RunnerDir() string {
	dir := c.AppConfig.Runner.Dir
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.Config.WorkDir, dir)
}

// historyRecorder returns a recorder bound to the history store.
func (c *Container) historyRecorder() *shared.HistoryRecorder {
	return shared.NewHistoryRecorder(c.History, c.Clock, c.Logger, c.AppConfig.History)
}

// UseCase factory methods

// EvaluateExpressionUseCase returns a new EvaluateExpression use case.
func (c *Container) EvaluateExpressionUseCase() *usecase.EvaluateExpression {
	return usecase.NewEvaluateExpression(c.historyRecorder(), c.Logger)
}

// RunCommandUseCase returns a new RunCommand use case.
func (c *Container) RunCommandUseCase() *usecase.RunCommand {
	return usecase.NewRunCommand(c.Executor, c.AppConfig.AllowList(), c.RunnerDir(), c.historyRecorder(), c.Logger)
}

// ListHistoryUseCase returns a new ListHistory use case.
func (c *Container) ListHistoryUseCase() *usecase.ListHistory {
	return usecase.NewListHistory(c.History)
}

// ClearHistoryUseCase returns a new ClearHistory use case.
func (c *Container) ClearHistoryUseCase() *usecase.ClearHistory {
	return usecase.NewClearHistory(c.History, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}
