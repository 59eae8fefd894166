package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/trebuchet-org/bridge-deploy/internal/domain"
	"github.com/trebuchet-org/bridge-deploy/internal/domain/config"
)

// RunPlan executes a plan's steps strictly in order
type RunPlan struct {
	progress ProgressSink
	log      *slog.Logger
}

// NewRunPlan creates a new RunPlan use case
func NewRunPlan(progress ProgressSink, log *slog.Logger) *RunPlan {
	return &RunPlan{
		progress: progress,
		log:      log.With("component", "RunPlan"),
	}
}

// Run executes every step once, in insertion order. A failing step does not
// stop the run; only fatal errors (invalid operator input, cancelled prompts,
// a cancelled context) abort it, in which case the partial report is
// returned together with the error.
func (uc *RunPlan) Run(ctx context.Context, plan *domain.Plan, cfg *config.DeployConfig) (*domain.RunReport, error) {
	report := &domain.RunReport{
		Plan:      plan,
		StartedAt: time.Now(),
	}
	defer func() {
		report.Duration = time.Since(report.StartedAt)
	}()

	log := uc.log.With("run", plan.RunID, "scenario", plan.Scenario)
	total := plan.Len()

	for i, step := range plan.Steps {
		if err := ctx.Err(); err != nil {
			report.Aborted = true
			return report, err
		}

		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:    string(step.Kind),
			Current:  i + 1,
			Total:    total,
			Message:  step.Label,
			Metadata: step,
		})

		start := time.Now()
		err := step.Exec(ctx, cfg)
		result := &domain.StepResult{
			Step:     step,
			Status:   domain.StepSucceeded,
			Error:    err,
			Duration: time.Since(start),
		}
		if err != nil {
			result.Status = domain.StepFailed
		}
		report.Results = append(report.Results, result)

		if err == nil {
			log.Debug("step completed", "step", i+1, "label", step.Label, "duration", result.Duration)
			continue
		}

		if domain.IsFatal(err) {
			log.Error("step aborted run", "step", i+1, "label", step.Label, "error", err)
			report.Aborted = true
			return report, err
		}

		log.Warn("step failed, continuing", "step", i+1, "label", step.Label, "error", err)
	}

	return report, nil
}
