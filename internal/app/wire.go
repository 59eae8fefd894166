//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/bridge-deploy/internal/adapters"
	"github.com/trebuchet-org/bridge-deploy/internal/config"
	"github.com/trebuchet-org/bridge-deploy/internal/logging"
	"github.com/trebuchet-org/bridge-deploy/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Runtime configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewResolveValue,
		usecase.NewLoadConfiguration,
		usecase.NewInvokeAction,
		usecase.NewBuildPlan,
		usecase.NewRunPlan,
		usecase.NewDeployScenario,
		usecase.NewShowPlan,
		usecase.NewListScenarios,
		usecase.NewListNetworks,
		usecase.NewShowConfig,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,

		// App
		NewApp,
	)
	return nil, nil
}
