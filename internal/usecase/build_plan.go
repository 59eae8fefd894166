package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/trebuchet-org/bridge-deploy/internal/domain"
	"github.com/trebuchet-org/bridge-deploy/internal/domain/config"
)

// BuildPlan turns a scenario definition into an executable plan
type BuildPlan struct {
	scenarios ScenarioRepository
	resolver  *ResolveValue
	store     DeployConfigStore
	invoker   *InvokeAction
}

// NewBuildPlan creates a new BuildPlan use case
func NewBuildPlan(
	scenarios ScenarioRepository,
	resolver *ResolveValue,
	store DeployConfigStore,
	invoker *InvokeAction,
) *BuildPlan {
	return &BuildPlan{
		scenarios: scenarios,
		resolver:  resolver,
		store:     store,
		invoker:   invoker,
	}
}

// Build creates the plan for the named scenario. Steps are emitted in the
// order the scenario lists them.
func (uc *BuildPlan) Build(ctx context.Context, name string) (*domain.Plan, error) {
	scenario, err := uc.scenarios.GetScenario(name)
	if err != nil {
		return nil, err
	}

	plan := domain.NewPlan(uuid.NewString(), scenario.Name)
	for i, s := range scenario.Steps {
		step, err := uc.buildStep(s)
		if err != nil {
			return nil, fmt.Errorf("scenario %s step %d: %w", scenario.Name, i+1, err)
		}
		plan.Add(step)
	}

	return plan, nil
}

func (uc *BuildPlan) buildStep(s domain.ScenarioStep) (*domain.PlanStep, error) {
	kind, err := s.Kind()
	if err != nil {
		return nil, err
	}

	switch kind {
	case domain.StepResolve:
		key := s.Resolve
		if !config.IsValidKey(string(key)) {
			return nil, fmt.Errorf("%w: %s", config.ErrUnknownKey, key)
		}
		return &domain.PlanStep{
			Label: fmt.Sprintf("Resolve %s", key),
			Kind:  kind,
			Key:   key,
			Exec: func(ctx context.Context, cfg *config.DeployConfig) error {
				_, err := uc.resolver.Resolve(ctx, cfg, key)
				return err
			},
		}, nil

	case domain.StepCheckpoint:
		return &domain.PlanStep{
			Label: "Save configuration",
			Kind:  kind,
			Exec: func(ctx context.Context, cfg *config.DeployConfig) error {
				return uc.store.Save(ctx, cfg)
			},
		}, nil

	default:
		action, err := uc.scenarios.GetAction(s.Action)
		if err != nil {
			return nil, err
		}
		return &domain.PlanStep{
			Label:  fmt.Sprintf("Run %s", action.ScriptName()),
			Kind:   kind,
			Action: action,
			Exec: func(ctx context.Context, cfg *config.DeployConfig) error {
				_, err := uc.invoker.Invoke(ctx, action, cfg)
				return err
			},
		}, nil
	}
}
