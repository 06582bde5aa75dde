package usecase

import (
	"context"

	"github.com/runoshun/guardkit/internal/domain"
)

// InitConfigInput contains the input for the InitConfig use case.
type InitConfigInput struct {
	Global bool // If true, initialize global config; otherwise project config
	Force  bool // Overwrite an existing file
}

// InitConfigOutput contains the output of the InitConfig use case.
type InitConfigOutput struct {
	Path string // Path to the created config file
}

// InitConfig generates a configuration file template.
type InitConfig struct {
	configManager domain.ConfigManager
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(configManager domain.ConfigManager) *InitConfig {
	return &InitConfig{
		configManager: configManager,
	}
}

// Execute creates a configuration file with the default template.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	cfg := domain.NewDefaultConfig()

	var path string
	var err error
	if in.Global {
		path, err = uc.configManager.InitGlobalConfig(cfg, in.Force)
	} else {
		path, err = uc.configManager.InitProjectConfig(cfg, in.Force)
	}
	if err != nil {
		return nil, err
	}
	return &InitConfigOutput{Path: path}, nil
}
