package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/bridge-deploy/internal/adapters/scenarios"
	"github.com/trebuchet-org/bridge-deploy/internal/app"
	"github.com/trebuchet-org/bridge-deploy/internal/config"
	"github.com/trebuchet-org/bridge-deploy/internal/domain"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bridge-deploy",
		Short: "Interactive deployment of the WorldID state bridge",
		Long: `bridge-deploy collects deployment parameters for the WorldID state bridge
from a saved config file, the environment or interactive prompts, and runs the
forge scripts that deploy and wire together the bridge contracts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			v := config.SetupViper(cmd)

			// Initialize app with DI
			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().String("config-file", "", "Deployment config file (default <project root>/<script dir>/.deploy-config.json; relative paths resolve from the current directory)")
	rootCmd.PersistentFlags().String("project-root", "", "Foundry project root (default: nearest directory with foundry.toml)")
	rootCmd.PersistentFlags().String("forge-binary", "forge", "Path to the forge binary")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "deploy",
		Title: "Deployment Scenarios",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	// One command per catalogued scenario
	for _, scenarioCmd := range newScenarioCommands(loadScenarios()) {
		scenarioCmd.GroupID = "deploy"
		rootCmd.AddCommand(scenarioCmd)
	}

	// Main commands
	runCmd := NewRunCmd()
	runCmd.GroupID = "main"
	rootCmd.AddCommand(runCmd)

	planCmd := NewPlanCmd()
	planCmd.GroupID = "main"
	rootCmd.AddCommand(planCmd)

	scenariosCmd := NewScenariosCmd()
	scenariosCmd.GroupID = "main"
	rootCmd.AddCommand(scenariosCmd)

	// Management commands
	configCmd := NewConfigCmd()
	configCmd.GroupID = "management"
	rootCmd.AddCommand(configCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	// Version command
	versionCmd := NewVersionCmd()
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// loadScenarios reads the embedded catalogue. A broken catalogue registers no
// scenario commands; the error surfaces when the app is initialized.
func loadScenarios() []*domain.Scenario {
	repo, err := scenarios.NewRepository()
	if err != nil {
		return nil
	}
	return repo.Catalogue().Scenarios
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
