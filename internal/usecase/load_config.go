package usecase

import (
	"context"
	"log/slog"

	"github.com/trebuchet-org/bridge-deploy/internal/domain/config"
)

const loadConfigPrompt = "Do you want to load configuration from prior runs? [Y/n]"

// LoadConfigurationResult describes how the starting configuration was obtained
type LoadConfigurationResult struct {
	Config  *config.DeployConfig
	Loaded  bool // values came from the config file
	Deleted bool // a corrupt config file was removed
}

// LoadConfiguration produces the starting configuration for a run
type LoadConfiguration struct {
	store     DeployConfigStore
	prompter  Prompter
	indicator StatusIndicator
	log       *slog.Logger
}

// NewLoadConfiguration creates a new LoadConfiguration use case
func NewLoadConfiguration(store DeployConfigStore, prompter Prompter, indicator StatusIndicator, log *slog.Logger) *LoadConfiguration {
	return &LoadConfiguration{
		store:     store,
		prompter:  prompter,
		indicator: indicator,
		log:       log.With("component", "LoadConfiguration"),
	}
}

// Run returns an empty configuration when useStored is false. Otherwise it
// asks whether to reuse the previous run's configuration (default yes).
// A file that cannot be read or parsed is deleted and an empty configuration
// is returned.
func (uc *LoadConfiguration) Run(ctx context.Context, useStored bool) (*LoadConfigurationResult, error) {
	result := &LoadConfigurationResult{Config: config.NewDeployConfig()}
	if !useStored {
		return result, nil
	}

	raw, err := uc.prompter.Prompt(ctx, PromptRequest{Label: loadConfigPrompt})
	if err != nil {
		return nil, err
	}
	answer, err := config.ParseBoolAnswer(raw)
	if err != nil {
		return nil, err
	}

	uc.indicator.Start("Configuration Loading")
	if answer != nil && !*answer {
		uc.indicator.Succeed("Configuration not loaded")
		return result, nil
	}

	if !uc.store.Exists() {
		uc.indicator.Warn("Configuration load requested but no configuration available: continuing")
		return result, nil
	}

	cfg, err := uc.store.Load(ctx)
	if err != nil {
		uc.log.Debug("config file unreadable", "path", uc.store.GetPath(), "error", err)
		uc.indicator.Warn("Unable to parse configuration: deleting and continuing")
		if delErr := uc.store.Delete(ctx); delErr != nil {
			uc.log.Warn("failed to delete config file", "path", uc.store.GetPath(), "error", delErr)
		}
		result.Deleted = true
		return result, nil
	}

	uc.indicator.Succeed("Configuration loaded")
	result.Config = cfg
	result.Loaded = true
	return result, nil
}
