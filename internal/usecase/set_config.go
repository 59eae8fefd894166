package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/bridge-deploy/internal/domain/config"
)

// SetConfigParams contains parameters for setting configuration
type SetConfigParams struct {
	Key   string
	Value string
}

// SetConfigResult contains the result of setting configuration
type SetConfigResult struct {
	ConfigPath string
	Key        config.Key
	Value      string
}

// SetConfig is a use case for setting a persisted configuration value
type SetConfig struct {
	store DeployConfigStore
}

// NewSetConfig creates a new SetConfig use case
func NewSetConfig(store DeployConfigStore) *SetConfig {
	return &SetConfig{
		store: store,
	}
}

// Run validates the value for the key and merges it into the config file
func (uc *SetConfig) Run(ctx context.Context, params SetConfigParams) (*SetConfigResult, error) {
	key, err := normalizeKey(params.Key)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(params.Value) == "" {
		return nil, fmt.Errorf("value for %s must not be empty", key)
	}

	// Only the new key is written; Save merges it over the existing file.
	update := config.NewDeployConfig()
	if err := update.Set(key, params.Value); err != nil {
		return nil, err
	}

	if err := uc.store.Save(ctx, update); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	field, _ := config.LookupField(key)
	return &SetConfigResult{
		ConfigPath: uc.store.GetPath(),
		Key:        key,
		Value:      field.Mask(strings.TrimSpace(params.Value)),
	}, nil
}

// normalizeKey accepts a key name or its env var name
func normalizeKey(raw string) (config.Key, error) {
	for _, f := range config.Fields() {
		if string(f.Key) == raw || strings.EqualFold(string(f.Key), raw) || f.EnvVar == strings.ToUpper(raw) {
			return f.Key, nil
		}
	}
	keys := lo.Map(config.Fields(), func(f config.Field, _ int) string { return string(f.Key) })
	return "", fmt.Errorf("%w: %s\nAvailable keys: %s", config.ErrUnknownKey, raw, strings.Join(keys, ", "))
}
