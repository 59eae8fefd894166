package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/bridge-deploy/internal/domain/config"
)

const (
	// EnvPrefix is the prefix of every runtime setting read from the environment
	EnvPrefix = "BRIDGE_DEPLOY"

	// DeployConfigFileName is the file the deployment scripts read their inputs from
	DeployConfigFileName = ".deploy-config.json"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		projectRoot, _ = FindProjectRoot(workDir)
	}
	projectRoot, err = filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	LoadDotEnv(workDir, projectRoot)

	scriptDir := v.GetString("script_dir")
	if scriptDir == "" {
		scriptDir, err = ReadScriptDir(projectRoot)
		if err != nil {
			return nil, fmt.Errorf("failed to load foundry config: %w", err)
		}
	}

	configFile := v.GetString("config_file")
	if configFile == "" {
		configFile = filepath.Join(projectRoot, scriptDir, DeployConfigFileName)
	} else if !filepath.IsAbs(configFile) {
		configFile = filepath.Join(workDir, configFile)
	}

	return &config.RuntimeConfig{
		WorkDir:     workDir,
		ProjectRoot: projectRoot,
		ScriptDir:   scriptDir,
		ConfigFile:  configFile,
		ForgeBinary: v.GetString("forge_binary"),
		UsePTY:      v.GetBool("pty"),
		Debug:       v.GetBool("debug"),
		NoConfig:    v.GetBool("no_config"),
	}, nil
}

// FindProjectRoot walks up from dir to the nearest directory containing
// foundry.toml. When there is none, dir itself is returned with ok false.
func FindProjectRoot(dir string) (root string, ok bool) {
	current := dir
	for {
		if _, err := os.Stat(filepath.Join(current, "foundry.toml")); err == nil {
			return current, true
		}

		parent := filepath.Dir(current)
		if parent == current {
			return dir, false
		}
		current = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("forge_binary", "forge")
	v.SetDefault("script_dir", "")
	v.SetDefault("config_file", "")
	v.SetDefault("project_root", "")
	v.SetDefault("debug", false)
	v.SetDefault("no_config", false)
	v.SetDefault("pty", !color.NoColor)

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	})

	return v
}
