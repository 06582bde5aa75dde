package usecase

import (
	"context"

	"github.com/runoshun/guardkit/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct {
	IgnoreGlobal  bool // Skip the global config file
	IgnoreProject bool // Skip the project config file
}

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	EffectiveConfig *domain.Config        // Merged configuration
	GlobalConfig    domain.ConfigFileInfo // Global config file info
	ProjectConfig   domain.ConfigFileInfo // Project config file info
}

// ShowConfig displays configuration file information and the effective configuration.
type ShowConfig struct {
	configManager domain.ConfigManager
	configLoader  domain.ConfigLoader
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(configManager domain.ConfigManager, configLoader domain.ConfigLoader) *ShowConfig {
	return &ShowConfig{
		configManager: configManager,
		configLoader:  configLoader,
	}
}

// Execute retrieves configuration file information.
func (uc *ShowConfig) Execute(_ context.Context, in ShowConfigInput) (*ShowConfigOutput, error) {
	cfg, err := uc.configLoader.LoadWithOptions(domain.LoadConfigOptions{
		IgnoreGlobal:  in.IgnoreGlobal,
		IgnoreProject: in.IgnoreProject,
	})
	if err != nil {
		return nil, err
	}

	info := uc.configManager.GetConfigInfo()
	return &ShowConfigOutput{
		EffectiveConfig: cfg,
		GlobalConfig:    info.GlobalConfig,
		ProjectConfig:   info.ProjectConfig,
	}, nil
}
