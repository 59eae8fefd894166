package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trebuchet-org/bridge-deploy/internal/domain"
	"github.com/trebuchet-org/bridge-deploy/internal/domain/config"
	"github.com/trebuchet-org/bridge-deploy/internal/domain/forge"
)

// ActionFailedErr is returned when a forge script does not complete successfully
type ActionFailedErr struct {
	Action string
	Err    error
}

func (e ActionFailedErr) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Action, e.Err)
}

func (e ActionFailedErr) Unwrap() error {
	return e.Err
}

// InvokeAction runs one forge script with status reporting. Failures are
// reported and returned as ActionFailedErr; they never panic or exit.
type InvokeAction struct {
	runtime   *config.RuntimeConfig
	forge     ForgeScriptRunner
	indicator StatusIndicator
	log       *slog.Logger
}

// NewInvokeAction creates a new InvokeAction use case
func NewInvokeAction(
	runtime *config.RuntimeConfig,
	forge ForgeScriptRunner,
	indicator StatusIndicator,
	log *slog.Logger,
) *InvokeAction {
	return &InvokeAction{
		runtime:   runtime,
		forge:     forge,
		indicator: indicator,
		log:       log.With("component", "InvokeAction"),
	}
}

// Invoke runs the action against the current configuration
func (uc *InvokeAction) Invoke(ctx context.Context, action *domain.ActionTemplate, cfg *config.DeployConfig) (*forge.CommandOutput, error) {
	req := uc.BuildRequest(action, cfg)

	uc.indicator.Start(action.Label)
	output, err := uc.forge.RunScript(ctx, req)
	if output != nil && len(output.Stdout) > 0 {
		uc.indicator.Print(string(output.Stdout))
	}
	if output != nil && len(output.Stderr) > 0 {
		uc.indicator.Print(string(output.Stderr))
	}

	if err != nil {
		uc.log.Debug("forge script failed", "action", action.Name, "target", req.Target, "error", err)
		uc.indicator.Fail(fmt.Sprintf("%s failed: %v", action.ScriptName(), err))
		return output, ActionFailedErr{Action: action.Name, Err: err}
	}

	uc.indicator.Succeed(fmt.Sprintf("%s ran successfully!", action.ScriptName()))
	return output, nil
}

// BuildRequest translates an action template into a forge invocation
func (uc *InvokeAction) BuildRequest(action *domain.ActionTemplate, cfg *config.DeployConfig) forge.ScriptRequest {
	rpcURL, _ := cfg.Get(action.RPC)

	var explorerKey string
	if action.ExplorerKey != "" {
		explorerKey, _ = cfg.Get(action.ExplorerKey)
	}

	return forge.ScriptRequest{
		Target:      action.Target(uc.runtime.ScriptDir),
		ForkURL:     rpcURL,
		ExplorerKey: explorerKey,
		Legacy:      action.Legacy,
		Broadcast:   action.Broadcast,
		Verify:      action.Verify,
		Env:         ScriptEnv(cfg),
	}
}

// ScriptEnv exports every set configuration value under its env var name
func ScriptEnv(cfg *config.DeployConfig) map[string]string {
	env := make(map[string]string)
	for _, f := range config.Fields() {
		if v, ok := cfg.Get(f.Key); ok {
			env[f.EnvVar] = v
		}
	}
	return env
}
