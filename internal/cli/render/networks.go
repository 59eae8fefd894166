package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/bridge-deploy/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{
		out: out,
	}
}

// RenderNetworksList renders the RPC endpoints and the chain ID each reports
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No RPC URLs configured. Run a scenario or set ETH_RPC_URL, OP_RPC_URL or POLYGON_RPC_URL.")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Configured Networks:")
	fmt.Fprintln(r.out)

	t := newTable(r.out)
	t.AppendHeader(table.Row{
		headerStyle.Sprint("NETWORK"),
		headerStyle.Sprint("RPC URL"),
		headerStyle.Sprint("STATUS"),
	})
	for _, network := range result.Networks {
		status := successStyle.Sprintf("✅ Chain ID: %d", network.ChainID)
		if network.Error != nil {
			status = failureStyle.Sprintf("❌ %v", network.Error)
		}
		t.AppendRow(table.Row{titleCase(network.Network.Name), network.Network.RPCURL, status})
	}
	t.Render()

	return nil
}
