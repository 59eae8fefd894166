package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trebuchet-org/bridge-deploy/internal/domain/config"
)

// ValueSource records where a resolved value came from
type ValueSource string

const (
	SourceConfig   ValueSource = "config"
	SourceEnv      ValueSource = "env"
	SourcePrompt   ValueSource = "prompt"
	SourceFallback ValueSource = "fallback"
	SourceNone     ValueSource = "none"
)

// ResolveValue fills a configuration key from, in order, the in-memory
// configuration, the environment, an operator prompt and the field fallback.
type ResolveValue struct {
	env      EnvLookup
	prompter Prompter
	log      *slog.Logger
}

// NewResolveValue creates a new ResolveValue use case
func NewResolveValue(env EnvLookup, prompter Prompter, log *slog.Logger) *ResolveValue {
	return &ResolveValue{
		env:      env,
		prompter: prompter,
		log:      log.With("component", "ResolveValue"),
	}
}

// Resolve populates cfg[key] unless it is already set
func (uc *ResolveValue) Resolve(ctx context.Context, cfg *config.DeployConfig, key config.Key) (ValueSource, error) {
	field, ok := config.LookupField(key)
	if !ok {
		return SourceNone, fmt.Errorf("%w: %s", config.ErrUnknownKey, key)
	}

	if cfg.IsSet(key) {
		return SourceConfig, nil
	}

	if raw, ok := uc.env.LookupEnv(field.EnvVar); ok && raw != "" {
		if err := cfg.Set(key, raw); err != nil {
			return SourceEnv, fmt.Errorf("%s: %w", field.EnvVar, err)
		}
		if cfg.IsSet(key) {
			uc.log.Debug("resolved from environment", "key", key, "env", field.EnvVar)
			return SourceEnv, nil
		}
	}

	fallback, hasFallback := field.Fallback(cfg)
	answer, err := uc.prompter.Prompt(ctx, PromptRequest{
		Label:   field.Prompt,
		Default: fallback,
		Secret:  field.Secret,
	})
	if err != nil {
		return SourcePrompt, err
	}
	if err := cfg.Set(key, answer); err != nil {
		return SourcePrompt, err
	}
	if cfg.IsSet(key) {
		return SourcePrompt, nil
	}

	if hasFallback {
		if err := cfg.Set(key, fallback); err != nil {
			return SourceFallback, err
		}
		uc.log.Debug("resolved from fallback", "key", key)
		return SourceFallback, nil
	}

	uc.log.Warn("no value provided", "key", key)
	return SourceNone, nil
}
