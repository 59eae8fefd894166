package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/bridge-deploy/internal/domain"
	"github.com/trebuchet-org/bridge-deploy/internal/domain/config"
	"github.com/trebuchet-org/bridge-deploy/internal/domain/forge"
)

// PlannedStep is a plan step annotated for display
type PlannedStep struct {
	Index   int
	Step    *domain.PlanStep
	EnvVar  string               // resolve steps
	Request *forge.ScriptRequest // action steps, with secrets left out
}

// ShowPlanResult contains the ordered steps of a scenario
type ShowPlanResult struct {
	Scenario *domain.Scenario
	Steps    []PlannedStep
}

// ShowPlan describes a scenario without running anything
type ShowPlan struct {
	scenarios ScenarioRepository
	builder   *BuildPlan
	invoker   *InvokeAction
}

// NewShowPlan creates a new ShowPlan use case
func NewShowPlan(scenarios ScenarioRepository, builder *BuildPlan, invoker *InvokeAction) *ShowPlan {
	return &ShowPlan{
		scenarios: scenarios,
		builder:   builder,
		invoker:   invoker,
	}
}

// Run builds the plan for the scenario and annotates each step
func (uc *ShowPlan) Run(ctx context.Context, name string) (*ShowPlanResult, error) {
	scenario, err := uc.scenarios.GetScenario(name)
	if err != nil {
		return nil, err
	}
	plan, err := uc.builder.Build(ctx, name)
	if err != nil {
		return nil, err
	}

	// Placeholders stand in for values that are only known at run time.
	placeholders := config.NewDeployConfig()
	placeholders.EthereumRPCURL = "<" + string(config.KeyEthereumRPCURL) + ">"
	placeholders.OptimismRPCURL = "<" + string(config.KeyOptimismRPCURL) + ">"
	placeholders.PolygonRPCURL = "<" + string(config.KeyPolygonRPCURL) + ">"
	placeholders.EthereumEtherscanAPIKey = "<" + string(config.KeyEthereumEtherscanAPIKey) + ">"
	placeholders.OptimismEtherscanAPIKey = "<" + string(config.KeyOptimismEtherscanAPIKey) + ">"
	placeholders.PolygonscanAPIKey = "<" + string(config.KeyPolygonscanAPIKey) + ">"

	result := &ShowPlanResult{Scenario: scenario}
	for i, step := range plan.Steps {
		planned := PlannedStep{Index: i + 1, Step: step}
		switch step.Kind {
		case domain.StepResolve:
			if f, ok := config.LookupField(step.Key); ok {
				planned.EnvVar = f.EnvVar
			}
		case domain.StepAction:
			req := uc.invoker.BuildRequest(step.Action, placeholders)
			req.Env = nil
			planned.Request = &req
		}
		result.Steps = append(result.Steps, planned)
	}

	return result, nil
}

// ListScenarios returns the scenario catalogue
type ListScenarios struct {
	scenarios ScenarioRepository
	selector  ScenarioSelector
}

// NewListScenarios creates a new ListScenarios use case
func NewListScenarios(scenarios ScenarioRepository, selector ScenarioSelector) *ListScenarios {
	return &ListScenarios{
		scenarios: scenarios,
		selector:  selector,
	}
}

// Run returns every scenario in catalogue order
func (uc *ListScenarios) Run(ctx context.Context) []*domain.Scenario {
	return uc.scenarios.Catalogue().Scenarios
}

// Pick asks the operator to choose a scenario
func (uc *ListScenarios) Pick(ctx context.Context) (*domain.Scenario, error) {
	scenarios := uc.Run(ctx)
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios available")
	}
	return uc.selector.SelectScenario(ctx, scenarios, "Select a deployment scenario")
}
