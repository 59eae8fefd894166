package render

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/bridge-deploy/internal/domain"
	"github.com/trebuchet-org/bridge-deploy/internal/usecase"
)

// ReportRenderer renders the summary of a scenario run
type ReportRenderer struct {
	out io.Writer
}

// NewReportRenderer creates a new report renderer
func NewReportRenderer(out io.Writer) *ReportRenderer {
	return &ReportRenderer{
		out: out,
	}
}

// RenderResult renders the forge script outcomes and any failed steps
func (r *ReportRenderer) RenderResult(result *usecase.DeployScenarioResult) error {
	if result == nil || result.Report == nil {
		return nil
	}
	report := result.Report

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "📊 %s summary %s\n", headerStyle.Sprint(result.Plan.Scenario), faintStyle.Sprintf("(run %s)", result.Plan.RunID))
	fmt.Fprintln(r.out)

	t := newTable(r.out)
	t.AppendHeader(table.Row{
		headerStyle.Sprint("STEP"),
		headerStyle.Sprint("STATUS"),
		headerStyle.Sprint("DURATION"),
	})
	for _, res := range report.Results {
		if res.Step.Kind != domain.StepAction && res.Status == domain.StepSucceeded {
			continue
		}
		t.AppendRow(table.Row{res.Step.Label, statusText(res), faintStyle.Sprint(res.Duration.Round(time.Millisecond))})
	}
	for _, step := range result.Plan.Steps[len(report.Results):] {
		if step.Kind == domain.StepAction {
			t.AppendRow(table.Row{step.Label, warningStyle.Sprint("not run"), ""})
		}
	}
	t.Render()
	fmt.Fprintln(r.out)

	failures := report.Failures()
	switch {
	case report.Aborted:
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("Run aborted after %d of %d steps", len(report.Results), result.Plan.Len())))
	case len(failures) > 0:
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("Completed with %d failed step(s) in %s", len(failures), report.Duration.Round(time.Second))))
	default:
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Completed %d steps in %s", len(report.Results), report.Duration.Round(time.Second))))
	}
	if result.ConfigPath != "" && !report.Aborted {
		fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	}

	return nil
}

func statusText(res *domain.StepResult) string {
	if res.Status == domain.StepSucceeded {
		return successStyle.Sprint("✔ succeeded")
	}
	if res.Error != nil {
		return failureStyle.Sprintf("✖ %v", res.Error)
	}
	return failureStyle.Sprint("✖ failed")
}
