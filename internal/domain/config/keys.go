package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	// ErrInvalidInput is returned when a value cannot be parsed for its field kind
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownKey is returned for keys outside the registry
	ErrUnknownKey = errors.New("unknown config key")
)

// InvalidInputErr carries the key and raw value that failed to parse
type InvalidInputErr struct {
	Key    Key
	Value  string
	Reason string
}

func (e InvalidInputErr) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("invalid input %q: %s", e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid input for %s %q: %s", e.Key, e.Value, e.Reason)
}

func (e InvalidInputErr) Unwrap() error {
	return ErrInvalidInput
}

// Key names a deployment configuration value. Keys double as JSON field names.
type Key string

const (
	KeyPrivateKey                             Key = "privateKey"
	KeyEthereumRPCURL                         Key = "ethereumRpcUrl"
	KeyOptimismRPCURL                         Key = "optimismRpcUrl"
	KeyPolygonRPCURL                          Key = "polygonRpcUrl"
	KeyOptimismAlchemyAPIKey                  Key = "optimismAlchemyApiKey"
	KeyEthereumEtherscanAPIKey                Key = "ethereumEtherscanApiKey"
	KeyOptimismEtherscanAPIKey                Key = "optimismEtherscanApiKey"
	KeyPolygonscanAPIKey                      Key = "polygonscanApiKey"
	KeyTreeDepth                              Key = "treeDepth"
	KeyStateBridgeAddress                     Key = "stateBridgeAddress"
	KeyOptimismWorldIDAddress                 Key = "optimismWorldIDAddress"
	KeyPolygonWorldIDAddress                  Key = "polygonWorldIDAddress"
	KeyWorldIDIdentityManagerAddress          Key = "worldIDIdentityManagerAddress"
	KeyNewRoot                                Key = "newRoot"
	KeyDeployerAddress                        Key = "deployerAddress"
	KeyOpGasLimitSendRootOptimism             Key = "opGasLimitSendRootOptimism"
	KeyOpGasLimitSetRootHistoryExpiryOptimism Key = "opGasLimitSetRootHistoryExpiryOptimism"
	KeyOpGasLimitTransferOwnershipOptimism    Key = "opGasLimitTransferOwnershipOptimism"
)

// Kind determines how a raw value is validated
type Kind string

const (
	KindString     Kind = "string"
	KindURL        Kind = "url"
	KindUint       Kind = "uint"
	KindAddress    Kind = "address"
	KindPrivateKey Kind = "private_key"
)

// Field describes where a key comes from and how it is parsed
type Field struct {
	Key     Key
	EnvVar  string
	Prompt  string
	Default string
	Kind    Kind
	Secret  bool

	derive func(*DeployConfig) (string, bool)
	str    func(*DeployConfig) *string
	num    func(*DeployConfig) *Uint
}

// Fallback returns the value used when neither env nor prompt produced one
func (f Field) Fallback(c *DeployConfig) (string, bool) {
	if f.derive != nil {
		if v, ok := f.derive(c); ok {
			return v, true
		}
	}
	return f.Default, f.Default != ""
}

// Validate checks raw against the field kind
func (f Field) Validate(raw string) error {
	invalid := func(reason string) error {
		return InvalidInputErr{Key: f.Key, Value: raw, Reason: reason}
	}

	switch f.Kind {
	case KindUint:
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return invalid("expected a decimal integer")
		}
		// Zero is the unset state of an integer field
		if n == 0 {
			return invalid("expected a positive integer")
		}
	case KindAddress:
		if !common.IsHexAddress(raw) {
			return invalid("expected a 20-byte hex address")
		}
	case KindPrivateKey:
		if _, err := crypto.HexToECDSA(strings.TrimPrefix(raw, "0x")); err != nil {
			return invalid("expected a hex encoded secp256k1 private key")
		}
	case KindURL:
		if _, err := url.Parse(raw); err != nil {
			return invalid("expected a URL")
		}
	}
	return nil
}

// Mask hides secrets for display
func (f Field) Mask(value string) string {
	if !f.Secret || value == "" {
		return value
	}
	if len(value) <= 10 {
		return strings.Repeat("*", len(value))
	}
	return value[:6] + "…" + value[len(value)-4:]
}

func strField(key Key, env, prompt string, kind Kind, get func(*DeployConfig) *string) Field {
	return Field{Key: key, EnvVar: env, Prompt: prompt, Kind: kind, str: get}
}

func uintField(key Key, env, prompt string, get func(*DeployConfig) *Uint) Field {
	return Field{Key: key, EnvVar: env, Prompt: prompt, Kind: KindUint, num: get}
}

func rpcField(key Key, env, chain string, get func(*DeployConfig) *string) Field {
	f := strField(key, env, fmt.Sprintf("Enter %s RPC URL", chain), KindURL, get)
	f.Default = DefaultRPCURL
	return f
}

func secret(f Field) Field {
	f.Secret = true
	return f
}

// deriveDeployer returns the address controlled by the configured private key
func deriveDeployer(c *DeployConfig) (string, bool) {
	if c.PrivateKey == "" {
		return "", false
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(c.PrivateKey, "0x"))
	if err != nil {
		return "", false
	}
	return crypto.PubkeyToAddress(key.PublicKey).Hex(), true
}

var registry = buildRegistry()

func buildRegistry() []Field {
	deployer := strField(KeyDeployerAddress, "DEPLOYER_ADDRESS", "Enter deployer address", KindAddress,
		func(c *DeployConfig) *string { return &c.DeployerAddress })
	deployer.derive = deriveDeployer

	return []Field{
		secret(strField(KeyPrivateKey, "PRIVATE_KEY", "Enter your private key", KindPrivateKey,
			func(c *DeployConfig) *string { return &c.PrivateKey })),
		rpcField(KeyEthereumRPCURL, "ETH_RPC_URL", "Ethereum",
			func(c *DeployConfig) *string { return &c.EthereumRPCURL }),
		rpcField(KeyOptimismRPCURL, "OP_RPC_URL", "Optimism",
			func(c *DeployConfig) *string { return &c.OptimismRPCURL }),
		rpcField(KeyPolygonRPCURL, "POLYGON_RPC_URL", "Polygon",
			func(c *DeployConfig) *string { return &c.PolygonRPCURL }),
		secret(strField(KeyOptimismAlchemyAPIKey, "OP_ALCHEMY_API_KEY", "Enter Optimism Alchemy API key", KindString,
			func(c *DeployConfig) *string { return &c.OptimismAlchemyAPIKey })),
		secret(strField(KeyEthereumEtherscanAPIKey, "ETHERSCAN_API_KEY",
			"Enter Ethereum Etherscan API KEY: (https://etherscan.io/myaccount)", KindString,
			func(c *DeployConfig) *string { return &c.EthereumEtherscanAPIKey })),
		secret(strField(KeyOptimismEtherscanAPIKey, "OPTIMISM_ETHERSCAN_API_KEY",
			"Enter Optimism Etherscan API KEY: (https://optimistic.etherscan.io/myaccount)", KindString,
			func(c *DeployConfig) *string { return &c.OptimismEtherscanAPIKey })),
		secret(strField(KeyPolygonscanAPIKey, "POLYGONSCAN_API_KEY",
			"Enter Polygonscan API KEY: (https://polygonscan.com/myaccount)", KindString,
			func(c *DeployConfig) *string { return &c.PolygonscanAPIKey })),
		uintField(KeyTreeDepth, "TREE_DEPTH", "Enter WorldID tree depth",
			func(c *DeployConfig) *Uint { return &c.TreeDepth }),
		strField(KeyStateBridgeAddress, "STATE_BRIDGE_ADDRESS", "Enter State Bridge Address", KindAddress,
			func(c *DeployConfig) *string { return &c.StateBridgeAddress }),
		strField(KeyOptimismWorldIDAddress, "OPTIMISM_WORLD_ID_ADDRESS", "Enter Optimism World ID Address", KindAddress,
			func(c *DeployConfig) *string { return &c.OptimismWorldIDAddress }),
		strField(KeyPolygonWorldIDAddress, "POLYGON_WORLD_ID_ADDRESS", "Enter Polygon World ID Address", KindAddress,
			func(c *DeployConfig) *string { return &c.PolygonWorldIDAddress }),
		strField(KeyWorldIDIdentityManagerAddress, "WORLD_ID_IDENTITY_MANAGER_ADDRESS",
			"Enter World ID Identity Manager Address (world-id-contracts or WorldIDMock)", KindAddress,
			func(c *DeployConfig) *string { return &c.WorldIDIdentityManagerAddress }),
		strField(KeyNewRoot, "NEW_ROOT", "Enter WorldID root to be inserted into MockWorldID", KindString,
			func(c *DeployConfig) *string { return &c.NewRoot }),
		deployer,
		uintField(KeyOpGasLimitSendRootOptimism, "OP_GAS_LIMIT_SEND_ROOT_OPTIMISM",
			"Enter the Optimism gas limit for sendRootOptimism",
			func(c *DeployConfig) *Uint { return &c.OpGasLimitSendRootOptimism }),
		uintField(KeyOpGasLimitSetRootHistoryExpiryOptimism, "OP_GAS_LIMIT_SET_ROOT_HISTORY_EXPIRY_OPTIMISM",
			"Enter the Optimism gas limit for setRootHistoryExpiryOptimism",
			func(c *DeployConfig) *Uint { return &c.OpGasLimitSetRootHistoryExpiryOptimism }),
		uintField(KeyOpGasLimitTransferOwnershipOptimism, "OP_GAS_LIMIT_TRANSFER_OWNERSHIP_OPTIMISM",
			"Enter the Optimism gas limit for transferOwnershipOptimism",
			func(c *DeployConfig) *Uint { return &c.OpGasLimitTransferOwnershipOptimism }),
	}
}

// Fields returns the registry in display order
func Fields() []Field {
	out := make([]Field, len(registry))
	copy(out, registry)
	return out
}

// LookupField finds a field by key
func LookupField(key Key) (Field, bool) {
	for _, f := range registry {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// IsValidKey checks if a key is in the registry
func IsValidKey(key string) bool {
	_, ok := LookupField(Key(key))
	return ok
}

// ParseBoolAnswer parses a yes/no answer. An empty answer yields nil.
func ParseBoolAnswer(raw string) (*bool, error) {
	var v bool
	switch strings.TrimSpace(raw) {
	case "":
		return nil, nil
	case "y", "Y", "true", "True":
		v = true
	case "n", "N", "false", "False":
		v = false
	default:
		return nil, InvalidInputErr{Value: raw, Reason: "expected y/n"}
	}
	return &v, nil
}

// ParseUintAnswer parses a decimal integer answer. An empty answer yields nil.
func ParseUintAnswer(raw string) (*uint64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, InvalidInputErr{Value: raw, Reason: "expected a decimal integer"}
	}
	return &n, nil
}
