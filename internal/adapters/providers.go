package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/bridge-deploy/internal/adapters/blockchain"
	"github.com/trebuchet-org/bridge-deploy/internal/adapters/environment"
	"github.com/trebuchet-org/bridge-deploy/internal/adapters/forge"
	"github.com/trebuchet-org/bridge-deploy/internal/adapters/fs"
	"github.com/trebuchet-org/bridge-deploy/internal/adapters/interactive"
	"github.com/trebuchet-org/bridge-deploy/internal/adapters/progress"
	"github.com/trebuchet-org/bridge-deploy/internal/adapters/scenarios"
	"github.com/trebuchet-org/bridge-deploy/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.DeployConfigStore), new(*fs.LocalConfigStoreAdapter)),
)

// ForgeSet provides forge-based implementations
var ForgeSet = wire.NewSet(
	forge.NewForgeAdapter,
	wire.Bind(new(usecase.ForgeScriptRunner), new(*forge.ForgeAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewPrompterAdapter,
	wire.Bind(new(usecase.Prompter), new(*interactive.PrompterAdapter)),

	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.ScenarioSelector), new(*interactive.SelectorAdapter)),
)

// EnvironmentSet provides process environment access
var EnvironmentSet = wire.NewSet(
	environment.NewLookupAdapter,
	wire.Bind(new(usecase.EnvLookup), new(*environment.LookupAdapter)),
)

// ProgressSet provides terminal status reporting. One spinner serves both ports.
var ProgressSet = wire.NewSet(
	progress.NewSpinnerReporter,
	wire.Bind(new(usecase.StatusIndicator), new(*progress.SpinnerReporter)),
	wire.Bind(new(usecase.ProgressSink), new(*progress.SpinnerReporter)),
)

// ScenarioSet provides the scenario catalogue
var ScenarioSet = wire.NewSet(
	scenarios.NewRepository,
	wire.Bind(new(usecase.ScenarioRepository), new(*scenarios.Repository)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewCheckerAdapter,
	wire.Bind(new(usecase.BlockchainChecker), new(*blockchain.CheckerAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	ForgeSet,
	InteractiveSet,
	EnvironmentSet,
	ProgressSet,
	ScenarioSet,
	BlockchainSet,
)
