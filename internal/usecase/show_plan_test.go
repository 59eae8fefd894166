package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/bridge-deploy/internal/adapters/scenarios"
	"github.com/trebuchet-org/bridge-deploy/internal/domain"
	"github.com/trebuchet-org/bridge-deploy/internal/domain/config"
	"github.com/trebuchet-org/bridge-deploy/internal/usecase"
)

func newShowPlan(t *testing.T, repo usecase.ScenarioRepository) *usecase.ShowPlan {
	t.Helper()
	log := discardLogger()
	prompter := new(MockPrompter)
	prompter.Test(t)
	resolver := usecase.NewResolveValue(envMap{}, prompter, log)
	invoker := usecase.NewInvokeAction(&config.RuntimeConfig{ScriptDir: "src/script"}, &fakeForge{}, &recordingIndicator{}, log)
	builder := usecase.NewBuildPlan(repo, resolver, &memStore{}, invoker)
	return usecase.NewShowPlan(repo, builder, invoker)
}

func TestShowPlan(t *testing.T) {
	repo, err := scenarios.NewRepository()
	require.NoError(t, err)

	result, err := newShowPlan(t, repo).Run(context.Background(), "mock")
	require.NoError(t, err)
	assert.Equal(t, "mock", result.Scenario.Name)
	require.Len(t, result.Steps, 25)

	first := result.Steps[0]
	assert.Equal(t, 1, first.Index)
	assert.Equal(t, domain.StepResolve, first.Step.Kind)
	assert.Equal(t, "PRIVATE_KEY", first.EnvVar)

	assert.Equal(t, domain.StepCheckpoint, result.Steps[8].Step.Kind)

	action := result.Steps[9]
	require.NotNil(t, action.Request)
	assert.Equal(t, "Run DeployMockWorldID.s.sol", action.Step.Label)
	assert.Equal(t, "<ethereumRpcUrl>", action.Request.ForkURL)
	assert.Equal(t, "<ethereumEtherscanApiKey>", action.Request.ExplorerKey)
	assert.Nil(t, action.Request.Env)

	_, err = newShowPlan(t, repo).Run(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrUnknownScenario)
}

func TestBuildPlan_UnknownAction(t *testing.T) {
	repo := &fakeRepo{catalogue: &domain.Catalogue{
		Actions: map[string]*domain.ActionTemplate{},
		Scenarios: []*domain.Scenario{{
			Name:  "broken",
			Steps: []domain.ScenarioStep{{Resolve: config.KeyTreeDepth}, {Action: "missing"}},
		}},
	}}
	log := discardLogger()
	invoker := usecase.NewInvokeAction(&config.RuntimeConfig{}, &fakeForge{}, &recordingIndicator{}, log)
	builder := usecase.NewBuildPlan(repo, usecase.NewResolveValue(envMap{}, new(MockPrompter), log), &memStore{}, invoker)

	_, err := builder.Build(context.Background(), "broken")
	require.ErrorIs(t, err, domain.ErrUnknownAction)
	assert.Contains(t, err.Error(), "step 2")
}

func TestListScenarios(t *testing.T) {
	repo, err := scenarios.NewRepository()
	require.NoError(t, err)

	selector := new(MockSelector)
	uc := usecase.NewListScenarios(repo, selector)

	all := uc.Run(context.Background())
	assert.Equal(t, []string{"deploy", "deploy-testnet", "deploy-devnet", "mock", "local-mock", "set-op-gas-limit"},
		repo.Catalogue().Names())
	assert.Len(t, all, 6)

	selector.On("SelectScenario", mock.Anything, all, "Select a deployment scenario").Return(all[3], nil).Once()
	picked, err := uc.Pick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "mock", picked.Name)
	selector.AssertExpectations(t)
}

// MockSelector is a mock implementation of ScenarioSelector
type MockSelector struct {
	mock.Mock
}

func (m *MockSelector) SelectScenario(ctx context.Context, scenarios []*domain.Scenario, prompt string) (*domain.Scenario, error) {
	args := m.Called(ctx, scenarios, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Scenario), args.Error(1)
}
