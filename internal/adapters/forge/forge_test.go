package forge

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/bridge-deploy/internal/domain/config"
	"github.com/trebuchet-org/bridge-deploy/internal/domain/forge"
)

func newTestForgeAdapter(t *testing.T, binary string) *ForgeAdapter {
	t.Helper()
	return NewForgeAdapter(&config.RuntimeConfig{
		ProjectRoot: t.TempDir(),
		ForgeBinary: binary,
	}, slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
}

// writeFakeForge writes a shell script standing in for the forge binary
func writeFakeForge(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake forge binary requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "forge")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return path
}

func envToMap(envStrings []string) map[string]string {
	m := make(map[string]string)
	for _, s := range envStrings {
		if k, v, ok := strings.Cut(s, "="); ok {
			m[k] = v
		}
	}
	return m
}

func TestBuildArgs(t *testing.T) {
	adapter := newTestForgeAdapter(t, "forge")

	tests := []struct {
		name     string
		req      forge.ScriptRequest
		expected []string
	}{
		{
			name: "all flags",
			req: forge.ScriptRequest{
				Target:      "src/script/deploy/DeployPolygonWorldIDMumbai.s.sol:DeployPolygonWorldIDMumbai",
				ForkURL:     "http://localhost:8545",
				ExplorerKey: "polygonscan-key",
				Legacy:      true,
				Broadcast:   true,
				Verify:      true,
			},
			expected: []string{
				"script", "src/script/deploy/DeployPolygonWorldIDMumbai.s.sol:DeployPolygonWorldIDMumbai",
				"--fork-url", "http://localhost:8545",
				"--etherscan-api-key", "polygonscan-key",
				"--legacy", "--broadcast", "--verify", "-vvvv",
			},
		},
		{
			name: "broadcast only",
			req: forge.ScriptRequest{
				Target:    "src/script/initialize/SetOpGasLimit.s.sol:SetOpGasLimit",
				ForkURL:   "https://eth.example.com",
				Broadcast: true,
			},
			expected: []string{
				"script", "src/script/initialize/SetOpGasLimit.s.sol:SetOpGasLimit",
				"--fork-url", "https://eth.example.com",
				"--broadcast", "-vvvv",
			},
		},
		{
			name:     "no fork url",
			req:      forge.ScriptRequest{Target: "a.s.sol:A"},
			expected: []string{"script", "a.s.sol:A", "-vvvv"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, adapter.buildArgs(tt.req))
		})
	}
}

func TestBuildEnv_SortedAndComplete(t *testing.T) {
	adapter := newTestForgeAdapter(t, "forge")

	env := adapter.buildEnv(forge.ScriptRequest{Env: map[string]string{
		"TREE_DEPTH":  "30",
		"PRIVATE_KEY": "0xabc",
		"ETH_RPC_URL": "http://localhost:8545",
	}})

	assert.Equal(t, []string{
		"ETH_RPC_URL=http://localhost:8545",
		"PRIVATE_KEY=0xabc",
		"TREE_DEPTH=30",
	}, env)
	assert.Equal(t, "30", envToMap(env)["TREE_DEPTH"])
}

func TestRunScript_Success(t *testing.T) {
	binary := writeFakeForge(t, `echo "args: $*"; echo "depth: $TREE_DEPTH"`)
	adapter := newTestForgeAdapter(t, binary)

	output, err := adapter.RunScript(context.Background(), forge.ScriptRequest{
		Target:    "src/script/deploy/DeployMockWorldID.s.sol:DeployMockWorldID",
		ForkURL:   "http://localhost:8545",
		Broadcast: true,
		Env:       map[string]string{"TREE_DEPTH": "16"},
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.True(t, output.Success)
	assert.Equal(t, 0, output.ExitCode)
	assert.Contains(t, string(output.Stdout), "args: script src/script/deploy/DeployMockWorldID.s.sol:DeployMockWorldID --fork-url http://localhost:8545 --broadcast -vvvv")
	assert.Contains(t, string(output.Stdout), "depth: 16")
}

func TestRunScript_Failure(t *testing.T) {
	binary := writeFakeForge(t, `echo "partial"; echo "boom" >&2; exit 3`)
	adapter := newTestForgeAdapter(t, binary)

	output, err := adapter.RunScript(context.Background(), forge.ScriptRequest{Target: "a.s.sol:A"})

	require.Error(t, err)
	require.NotNil(t, output)
	assert.False(t, output.Success)
	assert.Equal(t, 3, output.ExitCode)
	assert.Equal(t, "partial\n", string(output.Stdout))
	assert.Equal(t, "boom\n", string(output.Stderr))
	assert.ErrorIs(t, output.Error, err)
}

func TestRunScript_MissingBinary(t *testing.T) {
	adapter := newTestForgeAdapter(t, filepath.Join(t.TempDir(), "does-not-exist"))

	output, err := adapter.RunScript(context.Background(), forge.ScriptRequest{Target: "a.s.sol:A"})

	require.Error(t, err)
	assert.Equal(t, -1, output.ExitCode)
}
