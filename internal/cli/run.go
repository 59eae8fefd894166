package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/bridge-deploy/internal/cli/render"
	"github.com/trebuchet-org/bridge-deploy/internal/domain"
	"github.com/trebuchet-org/bridge-deploy/internal/usecase"
)

const noConfigUsage = "Do not use any existing configuration"

// newScenarioCommands creates one command per scenario
func newScenarioCommands(scenarios []*domain.Scenario) []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(scenarios))
	for _, s := range scenarios {
		name := s.Name
		long := s.Long
		if long == "" {
			long = s.Short + "."
		}

		cmd := &cobra.Command{
			Use:   name,
			Short: s.Short,
			Long: long + `

Values are taken from the saved config file, then the environment, then an
interactive prompt. Values are saved after each group of prompts so an
interrupted run can be resumed. A failing forge script does not stop the run.`,
			Args: cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runScenario(cmd, name)
			},
		}
		cmd.Flags().Bool("no-config", false, noConfigUsage)
		cmds = append(cmds, cmd)
	}
	return cmds
}

// NewRunCmd creates the run command
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "Run a deployment scenario, picking one interactively if none is given",
		Long: `Run a deployment scenario by name. Without a name, an interactive
picker with fuzzy search lists every scenario.

Examples:
  bridge-deploy run mock
  bridge-deploy run --no-config`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runScenario(cmd, args[0])
			}

			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			scenario, err := app.ListScenarios.Pick(cmd.Context())
			if err != nil {
				return err
			}
			return runScenario(cmd, scenario.Name)
		},
	}
	cmd.Flags().Bool("no-config", false, noConfigUsage)

	return cmd
}

// runScenario executes a scenario and renders the run summary. Forge failures
// are only reported; an error is returned when the run was aborted.
func runScenario(cmd *cobra.Command, name string) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	result, err := app.DeployScenario.Run(cmd.Context(), usecase.DeployScenarioParams{
		Scenario: name,
		NoConfig: app.Config.NoConfig,
	})

	renderer := render.NewReportRenderer(cmd.OutOrStdout())
	if renderErr := renderer.RenderResult(result); renderErr != nil {
		return renderErr
	}

	return err
}

// NewPlanCmd creates the plan command
func NewPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan <scenario>",
		Short: "Show the ordered steps of a scenario without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowPlan.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			renderer := render.NewScenariosRenderer(cmd.OutOrStdout())
			return renderer.RenderPlan(result)
		},
	}
}

// NewScenariosCmd creates the scenarios command
func NewScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "scenarios",
		Aliases: []string{"ls"},
		Short:   "List the available deployment scenarios",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			scenarios := app.ListScenarios.Run(cmd.Context())
			if len(scenarios) == 0 {
				return fmt.Errorf("no scenarios available")
			}

			renderer := render.NewScenariosRenderer(cmd.OutOrStdout())
			return renderer.RenderList(scenarios)
		},
	}
}
