package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/bridge-deploy/internal/domain"
	"github.com/trebuchet-org/bridge-deploy/internal/domain/config"
	"github.com/trebuchet-org/bridge-deploy/internal/usecase"
)

var deployOpWorldID = &domain.ActionTemplate{
	Name:        "deployOpWorldID",
	Label:       "Deploying OpWorldID...",
	Script:      "deploy/DeployOpWorldID.s.sol",
	Contract:    "DeployOpWorldID",
	RPC:         config.KeyOptimismRPCURL,
	ExplorerKey: config.KeyOptimismEtherscanAPIKey,
	Broadcast:   true,
	Verify:      true,
}

func TestInvokeAction_BuildRequest(t *testing.T) {
	runtime := &config.RuntimeConfig{ScriptDir: "src/script"}
	uc := usecase.NewInvokeAction(runtime, &fakeForge{}, &recordingIndicator{}, discardLogger())

	cfg := config.NewDeployConfig()
	require.NoError(t, cfg.Set(config.KeyPrivateKey, testPrivateKey))
	require.NoError(t, cfg.Set(config.KeyOptimismRPCURL, "https://op.example.com"))
	require.NoError(t, cfg.Set(config.KeyOptimismEtherscanAPIKey, "OPKEY"))
	require.NoError(t, cfg.Set(config.KeyTreeDepth, "30"))

	req := uc.BuildRequest(deployOpWorldID, cfg)
	assert.Equal(t, []string{
		"script", "src/script/deploy/DeployOpWorldID.s.sol:DeployOpWorldID",
		"--fork-url", "https://op.example.com",
		"--etherscan-api-key", "OPKEY",
		"--broadcast", "--verify", "-vvvv",
	}, req.Args())
	assert.Equal(t, map[string]string{
		"PRIVATE_KEY":                testPrivateKey,
		"OP_RPC_URL":                 "https://op.example.com",
		"OPTIMISM_ETHERSCAN_API_KEY": "OPKEY",
		"TREE_DEPTH":                 "30",
	}, req.Env)

	t.Run("missing explorer key drops the flag", func(t *testing.T) {
		require.NoError(t, cfg.Unset(config.KeyOptimismEtherscanAPIKey))
		req := uc.BuildRequest(deployOpWorldID, cfg)
		assert.NotContains(t, req.Args(), "--etherscan-api-key")
		assert.Contains(t, req.Args(), "--verify")
	})
}

func TestInvokeAction_Invoke(t *testing.T) {
	runtime := &config.RuntimeConfig{ScriptDir: "src/script"}
	target := "src/script/deploy/DeployOpWorldID.s.sol:DeployOpWorldID"

	t.Run("success", func(t *testing.T) {
		forge := &fakeForge{}
		indicator := &recordingIndicator{}
		uc := usecase.NewInvokeAction(runtime, forge, indicator, discardLogger())

		out, err := uc.Invoke(context.Background(), deployOpWorldID, config.NewDeployConfig())
		require.NoError(t, err)
		assert.True(t, out.Success)
		assert.Equal(t, []string{target}, forge.targets())
		assert.Equal(t, []string{
			"start:Deploying OpWorldID...",
			"print:Script ran successfully.\n",
			"succeed:DeployOpWorldID.s.sol ran successfully!",
		}, indicator.events)
	})

	t.Run("failure is reported, not fatal", func(t *testing.T) {
		forge := &fakeForge{fail: map[string]error{target: errors.New("exit status 1")}}
		indicator := &recordingIndicator{}
		uc := usecase.NewInvokeAction(runtime, forge, indicator, discardLogger())

		out, err := uc.Invoke(context.Background(), deployOpWorldID, config.NewDeployConfig())
		require.Error(t, err)
		assert.False(t, out.Success)

		var failed usecase.ActionFailedErr
		require.ErrorAs(t, err, &failed)
		assert.Equal(t, "deployOpWorldID", failed.Action)
		assert.False(t, domain.IsFatal(err))
		assert.Equal(t, []string{
			"start:Deploying OpWorldID...",
			"print:Script ran successfully.\n",
			"print:Error: exit status 1\n",
			"fail:DeployOpWorldID.s.sol failed: exit status 1",
		}, indicator.events)
	})
}
