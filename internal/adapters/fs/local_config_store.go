package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/trebuchet-org/bridge-deploy/internal/domain/config"
	"github.com/trebuchet-org/bridge-deploy/internal/usecase"
)

// LocalConfigStoreAdapter implements DeployConfigStore as a flat JSON file.
// There is no locking; concurrent runs in the same directory race.
type LocalConfigStoreAdapter struct {
	configPath string
	log        *slog.Logger
}

// NewLocalConfigStoreAdapter creates a new LocalConfigStoreAdapter
func NewLocalConfigStoreAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *LocalConfigStoreAdapter {
	path := cfg.ConfigFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.WorkDir, path)
	}
	return &LocalConfigStoreAdapter{
		configPath: path,
		log:        log.With("component", "LocalConfigStore"),
	}
}

// Exists checks if the config file exists
func (s *LocalConfigStoreAdapter) Exists() bool {
	_, err := os.Stat(s.configPath)
	return !os.IsNotExist(err)
}

// Load reads the configuration from the file
func (s *LocalConfigStoreAdapter) Load(ctx context.Context) (*config.DeployConfig, error) {
	if !s.Exists() {
		return config.NewDeployConfig(), nil
	}

	data, err := os.ReadFile(s.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, skipped, err := config.DecodeDeployConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	for _, err := range skipped {
		s.log.Warn("ignoring unreadable config value", "path", s.configPath, "error", err)
	}

	return cfg, nil
}

// Save merges the set fields of cfg over the stored data and writes the result
func (s *LocalConfigStoreAdapter) Save(ctx context.Context, cfg *config.DeployConfig) error {
	merged := s.readRaw()

	update, err := cfg.ToMap()
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	for k, v := range update {
		merged[k] = v
	}

	return s.write(merged)
}

// Remove deletes one key from the stored data, keeping everything else
func (s *LocalConfigStoreAdapter) Remove(ctx context.Context, key config.Key) error {
	data := s.readRaw()
	delete(data, string(key))
	return s.write(data)
}

// Delete removes the config file
func (s *LocalConfigStoreAdapter) Delete(ctx context.Context) error {
	if err := os.Remove(s.configPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete config file: %w", err)
	}
	return nil
}

// GetPath returns the path to the config file
func (s *LocalConfigStoreAdapter) GetPath() string {
	return s.configPath
}

// readRaw returns the stored object, or an empty one on any error
func (s *LocalConfigStoreAdapter) readRaw() map[string]any {
	out := map[string]any{}
	data, err := os.ReadFile(s.configPath)
	if err != nil {
		return out
	}
	var stored map[string]any
	if err := json.Unmarshal(data, &stored); err != nil || stored == nil {
		return out
	}
	return stored
}

func (s *LocalConfigStoreAdapter) write(data map[string]any) error {
	dir := filepath.Dir(s.configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(s.configPath, encoded, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Ensure LocalConfigStoreAdapter implements DeployConfigStore
var _ usecase.DeployConfigStore = (*LocalConfigStoreAdapter)(nil)
