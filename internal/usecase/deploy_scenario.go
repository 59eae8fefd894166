package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trebuchet-org/bridge-deploy/internal/domain"
	"github.com/trebuchet-org/bridge-deploy/internal/domain/config"
)

// DeployScenarioParams contains parameters for running a scenario
type DeployScenarioParams struct {
	Scenario string
	NoConfig bool
}

// DeployScenarioResult contains the result of running a scenario
type DeployScenarioResult struct {
	Plan       *domain.Plan
	Report     *domain.RunReport
	Config     *config.DeployConfig
	ConfigPath string
}

// DeployScenario loads the configuration, builds and runs the scenario plan
// and persists the final configuration.
type DeployScenario struct {
	load    *LoadConfiguration
	builder *BuildPlan
	runner  *RunPlan
	store   DeployConfigStore
	log     *slog.Logger
}

// NewDeployScenario creates a new DeployScenario use case
func NewDeployScenario(
	load *LoadConfiguration,
	builder *BuildPlan,
	runner *RunPlan,
	store DeployConfigStore,
	log *slog.Logger,
) *DeployScenario {
	return &DeployScenario{
		load:    load,
		builder: builder,
		runner:  runner,
		store:   store,
		log:     log.With("component", "DeployScenario"),
	}
}

// Run executes the scenario. Forge failures are reported in the result, not
// returned as errors; a returned error means the run was aborted.
func (uc *DeployScenario) Run(ctx context.Context, params DeployScenarioParams) (*DeployScenarioResult, error) {
	plan, err := uc.builder.Build(ctx, params.Scenario)
	if err != nil {
		return nil, err
	}

	loaded, err := uc.load.Run(ctx, !params.NoConfig)
	if err != nil {
		return nil, err
	}

	result := &DeployScenarioResult{
		Plan:       plan,
		Config:     loaded.Config,
		ConfigPath: uc.store.GetPath(),
	}

	uc.log.Debug("running scenario", "scenario", plan.Scenario, "run", plan.RunID, "steps", plan.Len())
	report, err := uc.runner.Run(ctx, plan, loaded.Config)
	result.Report = report
	if err != nil {
		return result, fmt.Errorf("scenario %s aborted: %w", plan.Scenario, err)
	}

	if err := uc.store.Save(ctx, loaded.Config); err != nil {
		return result, fmt.Errorf("failed to save configuration: %w", err)
	}

	return result, nil
}
