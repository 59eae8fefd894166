package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/bridge-deploy/internal/domain"
	"github.com/trebuchet-org/bridge-deploy/internal/usecase"
)

// ScenariosRenderer renders the scenario catalogue and scenario plans
type ScenariosRenderer struct {
	out io.Writer
}

// NewScenariosRenderer creates a new scenarios renderer
func NewScenariosRenderer(out io.Writer) *ScenariosRenderer {
	return &ScenariosRenderer{
		out: out,
	}
}

// RenderList renders every scenario with its network and step counts
func (r *ScenariosRenderer) RenderList(scenarios []*domain.Scenario) error {
	if len(scenarios) == 0 {
		fmt.Fprintln(r.out, "No scenarios available")
		return nil
	}

	t := newTable(r.out)
	t.AppendHeader(table.Row{
		headerStyle.Sprint("SCENARIO"),
		headerStyle.Sprint("NETWORK"),
		headerStyle.Sprint("STEPS"),
		headerStyle.Sprint("DESCRIPTION"),
	})
	for _, s := range scenarios {
		var resolves, actions int
		for _, step := range s.Steps {
			switch {
			case step.Resolve != "":
				resolves++
			case step.Action != "":
				actions++
			}
		}
		t.AppendRow(table.Row{
			s.Name,
			titleCase(s.Network),
			faintStyle.Sprintf("%d values, %d scripts", resolves, actions),
			s.Short,
		})
	}
	t.Render()
	return nil
}

// RenderPlan renders the ordered steps of a scenario without running them
func (r *ScenariosRenderer) RenderPlan(result *usecase.ShowPlanResult) error {
	fmt.Fprintf(r.out, "📋 %s (%s)\n", headerStyle.Sprint(result.Scenario.Name), titleCase(result.Scenario.Network))
	if result.Scenario.Short != "" {
		fmt.Fprintln(r.out, faintStyle.Sprint(result.Scenario.Short))
	}
	fmt.Fprintln(r.out)

	t := newTable(r.out)
	t.AppendHeader(table.Row{
		headerStyle.Sprint("#"),
		headerStyle.Sprint("STEP"),
		headerStyle.Sprint("DETAILS"),
	})
	for _, planned := range result.Steps {
		t.AppendRow(table.Row{planned.Index, planned.Step.Label, planDetails(planned)})
	}
	t.Render()
	return nil
}

func planDetails(planned usecase.PlannedStep) string {
	switch planned.Step.Kind {
	case domain.StepResolve:
		return faintStyle.Sprintf("config → $%s → prompt", planned.EnvVar)
	case domain.StepCheckpoint:
		return faintStyle.Sprint("merge into config file")
	case domain.StepAction:
		if planned.Request == nil {
			return ""
		}
		return "forge " + strings.Join(planned.Request.Args(), " ")
	default:
		return ""
	}
}
