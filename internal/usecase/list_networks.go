package usecase

import (
	"context"
	"strings"

	"github.com/trebuchet-org/bridge-deploy/internal/domain/config"
)

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Network config.Network
	ChainID uint64
	Error   error
}

// ListNetworks checks the RPC endpoints held in the persisted configuration
type ListNetworks struct {
	store   DeployConfigStore
	env     EnvLookup
	checker BlockchainChecker
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(store DeployConfigStore, env EnvLookup, checker BlockchainChecker) *ListNetworks {
	return &ListNetworks{
		store:   store,
		env:     env,
		checker: checker,
	}
}

// Run queries the chain ID of each configured RPC endpoint. Endpoints missing
// from the config file fall back to their environment variable.
func (uc *ListNetworks) Run(ctx context.Context) (*ListNetworksResult, error) {
	cfg, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	networks := make([]NetworkStatus, 0, len(rpcKeys))
	for _, key := range rpcKeys {
		field, _ := config.LookupField(key)
		url, ok := cfg.Get(key)
		if !ok {
			url, ok = uc.env.LookupEnv(field.EnvVar)
		}
		if !ok || url == "" {
			continue
		}

		status := NetworkStatus{
			Network: config.Network{
				Name:   strings.TrimSuffix(string(key), "RpcUrl"),
				Key:    key,
				RPCURL: url,
			},
		}
		status.ChainID, status.Error = uc.checker.ChainID(ctx, url)
		networks = append(networks, status)
	}

	return &ListNetworksResult{
		Networks: networks,
	}, nil
}

var rpcKeys = []config.Key{
	config.KeyEthereumRPCURL,
	config.KeyOptimismRPCURL,
	config.KeyPolygonRPCURL,
}
