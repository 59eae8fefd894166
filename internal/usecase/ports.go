package usecase

import (
	"context"

	"github.com/trebuchet-org/bridge-deploy/internal/domain"
	"github.com/trebuchet-org/bridge-deploy/internal/domain/config"
	"github.com/trebuchet-org/bridge-deploy/internal/domain/forge"
)

// DeployConfigStore persists the deployment configuration between runs
type DeployConfigStore interface {
	Exists() bool
	// Load parses the stored configuration. A missing file yields an empty config.
	Load(ctx context.Context) (*config.DeployConfig, error)
	// Save merges the set fields of cfg over the stored data
	Save(ctx context.Context, cfg *config.DeployConfig) error
	// Remove deletes a single key from the stored data
	Remove(ctx context.Context, key config.Key) error
	Delete(ctx context.Context) error
	GetPath() string
}

// PromptRequest describes a single question to the operator
type PromptRequest struct {
	Label   string
	Default string // shown to the operator, returned on an empty answer
	Secret  bool   // mask the typed characters
}

// Prompter reads a line of input from the operator
type Prompter interface {
	// Prompt blocks until the operator answers. There is no timeout.
	Prompt(ctx context.Context, req PromptRequest) (string, error)
}

// EnvLookup reads environment variables
type EnvLookup interface {
	LookupEnv(key string) (string, bool)
}

// ForgeScriptRunner executes forge scripts
type ForgeScriptRunner interface {
	// RunScript always returns a non-nil output; err is set when forge could
	// not be started or exited unsuccessfully.
	RunScript(ctx context.Context, req forge.ScriptRequest) (*forge.CommandOutput, error)
}

// StatusIndicator shows the state of a long running operation
type StatusIndicator interface {
	Start(message string)
	Succeed(message string)
	Fail(message string)
	Warn(message string)
	// Print writes passthrough output without corrupting the indicator
	Print(text string)
}

// ScenarioRepository provides the scenario catalogue
type ScenarioRepository interface {
	Catalogue() *domain.Catalogue
	GetScenario(name string) (*domain.Scenario, error)
	GetAction(name string) (*domain.ActionTemplate, error)
}

// ScenarioSelector lets the operator pick a scenario
type ScenarioSelector interface {
	SelectScenario(ctx context.Context, scenarios []*domain.Scenario, prompt string) (*domain.Scenario, error)
}

// BlockchainChecker queries RPC endpoints
type BlockchainChecker interface {
	ChainID(ctx context.Context, rpcURL string) (uint64, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}
