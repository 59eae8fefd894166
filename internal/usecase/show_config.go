package usecase

import (
	"context"

	"github.com/trebuchet-org/bridge-deploy/internal/domain/config"
)

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	Config     *config.DeployConfig
	ConfigPath string
	Exists     bool
}

// ShowConfig is a use case for showing the persisted deployment configuration
type ShowConfig struct {
	store DeployConfigStore
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(store DeployConfigStore) *ShowConfig {
	return &ShowConfig{
		store: store,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	exists := uc.store.Exists()

	cfg, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &ShowConfigResult{
		Config:     cfg,
		ConfigPath: uc.store.GetPath(),
		Exists:     exists,
	}, nil
}
