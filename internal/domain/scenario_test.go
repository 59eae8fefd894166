package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/bridge-deploy/internal/domain/config"
)

func TestScenarioStep_Kind(t *testing.T) {
	tests := []struct {
		name    string
		step    ScenarioStep
		want    StepKind
		wantErr bool
	}{
		{name: "resolve", step: ScenarioStep{Resolve: config.KeyTreeDepth}, want: StepResolve},
		{name: "checkpoint", step: ScenarioStep{Checkpoint: true}, want: StepCheckpoint},
		{name: "action", step: ScenarioStep{Action: "deployOpWorldID"}, want: StepAction},
		{name: "empty", step: ScenarioStep{}, wantErr: true},
		{name: "ambiguous", step: ScenarioStep{Resolve: config.KeyTreeDepth, Action: "x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := tt.step.Kind()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestActionTemplate_Target(t *testing.T) {
	action := &ActionTemplate{Script: "deploy/DeployOpWorldID.s.sol", Contract: "DeployOpWorldID"}

	assert.Equal(t, "src/script/deploy/DeployOpWorldID.s.sol:DeployOpWorldID", action.Target("src/script"))
	assert.Equal(t, "DeployOpWorldID.s.sol", action.ScriptName())
}

func TestCatalogue_Scenario(t *testing.T) {
	c := &Catalogue{Scenarios: []*Scenario{{Name: "deploy"}, {Name: "mock"}}}

	s, err := c.Scenario("mock")
	require.NoError(t, err)
	assert.Equal(t, "mock", s.Name)

	_, err = c.Scenario("nope")
	require.ErrorIs(t, err, ErrUnknownScenario)
	assert.Contains(t, err.Error(), "deploy, mock")
}

func TestRunReport(t *testing.T) {
	plan := NewPlan("run-1", "mock")
	for _, label := range []string{"a", "b", "c"} {
		plan.Add(&PlanStep{Label: label, Kind: StepAction})
	}

	report := &RunReport{Plan: plan}
	report.Results = []*StepResult{
		{Step: plan.Steps[0], Status: StepSucceeded},
		{Step: plan.Steps[1], Status: StepFailed},
		{Step: plan.Steps[2], Status: StepSucceeded},
	}

	assert.Len(t, report.Failures(), 1)
	assert.Equal(t, "b", report.Failures()[0].Step.Label)
	assert.False(t, report.Succeeded())

	report.Results[1].Status = StepSucceeded
	assert.True(t, report.Succeeded())

	report.Aborted = true
	assert.False(t, report.Succeeded())
}

func TestIsFatal(t *testing.T) {
	assert.True(t, IsFatal(config.InvalidInputErr{Key: config.KeyTreeDepth}))
	assert.True(t, IsFatal(ErrPromptCancelled))
	assert.False(t, IsFatal(ErrUnknownAction))
	assert.False(t, IsFatal(nil))
}
