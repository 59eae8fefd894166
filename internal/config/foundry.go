package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultScriptDir is forge's script directory when foundry.toml does not set one
const DefaultScriptDir = "src/script"

// FoundryTOML is the subset of foundry.toml this tool reads
type FoundryTOML struct {
	Profile map[string]FoundryProfile `toml:"profile"`
}

// FoundryProfile holds the directory layout of a foundry profile
type FoundryProfile struct {
	Src    string `toml:"src"`
	Script string `toml:"script"`
	Out    string `toml:"out"`
}

// ReadScriptDir returns the script directory of the default profile,
// relative to projectRoot. A missing foundry.toml yields DefaultScriptDir.
func ReadScriptDir(projectRoot string) (string, error) {
	var raw FoundryTOML
	_, err := toml.DecodeFile(filepath.Join(projectRoot, "foundry.toml"), &raw)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultScriptDir, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to parse foundry.toml: %w", err)
	}

	if profile, ok := raw.Profile["default"]; ok && profile.Script != "" {
		return filepath.Clean(profile.Script), nil
	}
	return DefaultScriptDir, nil
}
