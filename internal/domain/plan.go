package domain

import (
	"context"
	"time"

	"github.com/trebuchet-org/bridge-deploy/internal/domain/config"
)

// StepKind identifies what a plan step does
type StepKind string

const (
	StepResolve    StepKind = "resolve"
	StepCheckpoint StepKind = "checkpoint"
	StepAction     StepKind = "action"
)

// StepFunc executes a step against the run's configuration
type StepFunc func(ctx context.Context, cfg *config.DeployConfig) error

// PlanStep is a labeled unit of work in a plan
type PlanStep struct {
	Label  string
	Kind   StepKind
	Key    config.Key      // set for resolve steps
	Action *ActionTemplate // set for action steps
	Exec   StepFunc
}

// Plan is the ordered list of steps for one scenario run.
// It is built once, run once, and discarded.
type Plan struct {
	RunID    string
	Scenario string
	Steps    []*PlanStep
}

// NewPlan creates an empty plan
func NewPlan(runID, scenario string) *Plan {
	return &Plan{RunID: runID, Scenario: scenario}
}

// Add appends a step, preserving insertion order
func (p *Plan) Add(step *PlanStep) {
	p.Steps = append(p.Steps, step)
}

// Len returns the number of steps
func (p *Plan) Len() int {
	return len(p.Steps)
}

// StepStatus is the outcome of a single step
type StepStatus string

const (
	StepSucceeded StepStatus = "succeeded"
	StepFailed    StepStatus = "failed"
)

// StepResult records what happened when a step ran
type StepResult struct {
	Step     *PlanStep
	Status   StepStatus
	Error    error
	Duration time.Duration
}

// RunReport collects the results of a plan run
type RunReport struct {
	Plan      *Plan
	Results   []*StepResult
	Aborted   bool
	StartedAt time.Time
	Duration  time.Duration
}

// Failures returns the results of steps that failed
func (r *RunReport) Failures() []*StepResult {
	var failed []*StepResult
	for _, res := range r.Results {
		if res.Status == StepFailed {
			failed = append(failed, res)
		}
	}
	return failed
}

// Succeeded reports whether every step ran and none failed
func (r *RunReport) Succeeded() bool {
	return !r.Aborted && len(r.Failures()) == 0 && len(r.Results) == r.Plan.Len()
}
