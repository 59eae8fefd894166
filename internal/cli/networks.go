package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/bridge-deploy/internal/cli/render"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "Check the configured RPC endpoints",
		Long: `Query the chain ID of the Ethereum, Optimism and Polygon RPC URLs held in
the saved config, falling back to ETH_RPC_URL, OP_RPC_URL and POLYGON_RPC_URL.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context())
			if err != nil {
				return err
			}

			// Render output
			renderer := render.NewNetworksRenderer(cmd.OutOrStdout())
			return renderer.RenderNetworksList(result)
		},
	}

	return cmd
}
