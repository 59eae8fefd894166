package usecase

import (
	"context"
	"fmt"
)

// RemoveConfigParams contains parameters for removing configuration
type RemoveConfigParams struct {
	Key string
	// All removes the whole config file
	All bool
}

// RemoveConfigResult contains the result of removing configuration
type RemoveConfigResult struct {
	ConfigPath string
	Key        string
	Cleared    bool
}

// RemoveConfig is a use case for removing persisted configuration values
type RemoveConfig struct {
	store DeployConfigStore
}

// NewRemoveConfig creates a new RemoveConfig use case
func NewRemoveConfig(store DeployConfigStore) *RemoveConfig {
	return &RemoveConfig{
		store: store,
	}
}

// Run executes the remove config use case
func (uc *RemoveConfig) Run(ctx context.Context, params RemoveConfigParams) (*RemoveConfigResult, error) {
	if !uc.store.Exists() {
		return nil, fmt.Errorf("no config file found at %s", uc.store.GetPath())
	}

	if params.All {
		if err := uc.store.Delete(ctx); err != nil {
			return nil, fmt.Errorf("failed to delete config: %w", err)
		}
		return &RemoveConfigResult{ConfigPath: uc.store.GetPath(), Cleared: true}, nil
	}

	key, err := normalizeKey(params.Key)
	if err != nil {
		return nil, err
	}

	if err := uc.store.Remove(ctx, key); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return &RemoveConfigResult{
		ConfigPath: uc.store.GetPath(),
		Key:        string(key),
	}, nil
}
