package app

import (
	"log/slog"

	"github.com/trebuchet-org/bridge-deploy/internal/domain/config"
	"github.com/trebuchet-org/bridge-deploy/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	DeployScenario *usecase.DeployScenario
	ShowPlan       *usecase.ShowPlan
	ListScenarios  *usecase.ListScenarios
	ListNetworks   *usecase.ListNetworks
	ShowConfig     *usecase.ShowConfig
	SetConfig      *usecase.SetConfig
	RemoveConfig   *usecase.RemoveConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	deployScenario *usecase.DeployScenario,
	showPlan *usecase.ShowPlan,
	listScenarios *usecase.ListScenarios,
	listNetworks *usecase.ListNetworks,
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
) (*App, error) {
	return &App{
		Config:         cfg,
		Log:            log,
		DeployScenario: deployScenario,
		ShowPlan:       showPlan,
		ListScenarios:  listScenarios,
		ListNetworks:   listNetworks,
		ShowConfig:     showConfig,
		SetConfig:      setConfig,
		RemoveConfig:   removeConfig,
	}, nil
}
