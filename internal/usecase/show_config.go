package usecase

import (
	"context"

	"github.com/runoshun/goals/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct{}

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	Effective *domain.Config    // Configuration in effect
	File      domain.ConfigInfo // Config file info
	DataDir   string            // Resolved data directory
}

// ShowConfig displays configuration file information.
type ShowConfig struct {
	configManager domain.ConfigManager
	config        *domain.Config
	dataDir       string
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(configManager domain.ConfigManager, config *domain.Config, dataDir string) *ShowConfig {
	return &ShowConfig{
		configManager: configManager,
		config:        config,
		dataDir:       dataDir,
	}
}

// Execute retrieves configuration file information.
func (uc *ShowConfig) Execute(_ context.Context, _ ShowConfigInput) (*ShowConfigOutput, error) {
	return &ShowConfigOutput{
		File:      uc.configManager.Info(),
		Effective: uc.config,
		DataDir:   uc.dataDir,
	}, nil
}
