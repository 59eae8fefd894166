package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestFindProjectRoot(t *testing.T) {
	t.Run("walks up to foundry.toml", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "foundry.toml"), "[profile.default]\n")
		nested := filepath.Join(root, "src", "script")
		require.NoError(t, os.MkdirAll(nested, 0755))

		found, ok := FindProjectRoot(nested)

		assert.True(t, ok)
		assert.Equal(t, root, found)
	})

	t.Run("falls back to the start directory", func(t *testing.T) {
		dir := t.TempDir()

		found, ok := FindProjectRoot(dir)

		assert.False(t, ok)
		assert.Equal(t, dir, found)
	})
}

func TestReadScriptDir(t *testing.T) {
	tests := []struct {
		name     string
		toml     string
		expected string
	}{
		{
			name:     "custom script dir",
			toml:     "[profile.default]\nsrc = \"src\"\nscript = \"scripts/forge\"\n",
			expected: "scripts/forge",
		},
		{
			name:     "no script entry",
			toml:     "[profile.default]\nsrc = \"src\"\n",
			expected: DefaultScriptDir,
		},
		{
			name:     "only other profiles",
			toml:     "[profile.ci]\nscript = \"ci\"\n",
			expected: DefaultScriptDir,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, filepath.Join(root, "foundry.toml"), tt.toml)

			dir, err := ReadScriptDir(root)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, dir)
		})
	}

	t.Run("missing foundry.toml", func(t *testing.T) {
		dir, err := ReadScriptDir(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, DefaultScriptDir, dir)
	})

	t.Run("invalid foundry.toml", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "foundry.toml"), "[profile.default\n")

		_, err := ReadScriptDir(root)
		assert.Error(t, err)
	})
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), "BRIDGE_TEST_A=from-env\nBRIDGE_TEST_B=from-env\nBRIDGE_TEST_C=from-env\n")
	writeFile(t, filepath.Join(dir, ".env.local"), "BRIDGE_TEST_B=from-local\n")

	for _, key := range []string{"BRIDGE_TEST_A", "BRIDGE_TEST_B", "BRIDGE_TEST_C"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("BRIDGE_TEST_C", "from-process")

	loaded := LoadDotEnv(dir, dir)

	assert.Equal(t, []string{filepath.Join(dir, ".env.local"), filepath.Join(dir, ".env")}, loaded)
	assert.Equal(t, "from-env", os.Getenv("BRIDGE_TEST_A"))
	assert.Equal(t, "from-local", os.Getenv("BRIDGE_TEST_B"))
	assert.Equal(t, "from-process", os.Getenv("BRIDGE_TEST_C"))
}

func TestProvider(t *testing.T) {
	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{Use: "test"}
		cmd.Flags().String("config-file", "", "")
		cmd.Flags().String("project-root", "", "")
		cmd.Flags().Bool("debug", false, "")
		cmd.Flags().Bool("no-config", false, "")
		return cmd
	}

	t.Run("defaults from foundry project", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "foundry.toml"), "[profile.default]\nscript = \"src/script\"\n")
		t.Chdir(root)

		cmd := newCmd()
		cfg, err := Provider(SetupViper(cmd))

		require.NoError(t, err)
		assert.Equal(t, root, cfg.ProjectRoot)
		assert.Equal(t, "src/script", cfg.ScriptDir)
		assert.Equal(t, filepath.Join(root, "src", "script", DeployConfigFileName), cfg.ConfigFile)
		assert.Equal(t, "forge", cfg.ForgeBinary)
		assert.False(t, cfg.NoConfig)
	})

	t.Run("flags and environment override defaults", func(t *testing.T) {
		root := t.TempDir()
		t.Chdir(root)
		t.Setenv("BRIDGE_DEPLOY_FORGE_BINARY", "/opt/forge")

		cmd := newCmd()
		require.NoError(t, cmd.Flags().Parse([]string{"--config-file", "custom.json", "--no-config", "--debug"}))
		cfg, err := Provider(SetupViper(cmd))

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "custom.json"), cfg.ConfigFile)
		assert.Equal(t, "/opt/forge", cfg.ForgeBinary)
		assert.True(t, cfg.NoConfig)
		assert.True(t, cfg.Debug)
	})
}
