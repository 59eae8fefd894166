package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DefaultRPCURL is the fallback for every RPC URL prompt
const DefaultRPCURL = "http://localhost:8545"

// DeployConfig holds every deployment parameter collected during a run.
// It is persisted as a flat JSON object; unset fields are omitted so that
// saving never clobbers values written by an earlier run.
type DeployConfig struct {
	PrivateKey string `json:"privateKey,omitempty"`

	EthereumRPCURL string `json:"ethereumRpcUrl,omitempty"`
	OptimismRPCURL string `json:"optimismRpcUrl,omitempty"`
	PolygonRPCURL  string `json:"polygonRpcUrl,omitempty"`

	OptimismAlchemyAPIKey   string `json:"optimismAlchemyApiKey,omitempty"`
	EthereumEtherscanAPIKey string `json:"ethereumEtherscanApiKey,omitempty"`
	OptimismEtherscanAPIKey string `json:"optimismEtherscanApiKey,omitempty"`
	PolygonscanAPIKey       string `json:"polygonscanApiKey,omitempty"`

	TreeDepth Uint `json:"treeDepth,omitempty"`

	StateBridgeAddress            string `json:"stateBridgeAddress,omitempty"`
	OptimismWorldIDAddress        string `json:"optimismWorldIDAddress,omitempty"`
	PolygonWorldIDAddress         string `json:"polygonWorldIDAddress,omitempty"`
	WorldIDIdentityManagerAddress string `json:"worldIDIdentityManagerAddress,omitempty"`
	DeployerAddress               string `json:"deployerAddress,omitempty"`

	NewRoot string `json:"newRoot,omitempty"`

	OpGasLimitSendRootOptimism             Uint `json:"opGasLimitSendRootOptimism,omitempty"`
	OpGasLimitSetRootHistoryExpiryOptimism Uint `json:"opGasLimitSetRootHistoryExpiryOptimism,omitempty"`
	OpGasLimitTransferOwnershipOptimism    Uint `json:"opGasLimitTransferOwnershipOptimism,omitempty"`
}

// NewDeployConfig returns an empty configuration
func NewDeployConfig() *DeployConfig {
	return &DeployConfig{}
}

// Get returns the string form of a key and whether it is set
func (c *DeployConfig) Get(key Key) (string, bool) {
	f, ok := LookupField(key)
	if !ok {
		return "", false
	}
	if f.str != nil {
		v := *f.str(c)
		return v, v != ""
	}
	v := *f.num(c)
	if v == 0 {
		return "", false
	}
	return strconv.FormatUint(uint64(v), 10), true
}

// IsSet reports whether a key already holds a value
func (c *DeployConfig) IsSet(key Key) bool {
	_, ok := c.Get(key)
	return ok
}

// Set parses raw according to the field kind and stores it.
// An empty raw value leaves the field untouched.
func (c *DeployConfig) Set(key Key, raw string) error {
	f, ok := LookupField(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if err := f.Validate(raw); err != nil {
		return err
	}
	if f.str != nil {
		*f.str(c) = raw
		return nil
	}
	n, err := ParseUintAnswer(raw)
	if err != nil || n == nil {
		return err
	}
	*f.num(c) = Uint(*n)
	return nil
}

// Unset clears a key
func (c *DeployConfig) Unset(key Key) error {
	f, ok := LookupField(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if f.str != nil {
		*f.str(c) = ""
	} else {
		*f.num(c) = 0
	}
	return nil
}

// SetKeys returns the keys holding a value, in registry order
func (c *DeployConfig) SetKeys() []Key {
	var keys []Key
	for _, f := range Fields() {
		if c.IsSet(f.Key) {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

// Clone returns a copy of the configuration
func (c *DeployConfig) Clone() *DeployConfig {
	clone := *c
	return &clone
}

// ToMap converts the set fields into a flat JSON-compatible map
func (c *DeployConfig) ToMap() (map[string]any, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeDeployConfig decodes a stored JSON object one field at a time. A value
// that does not decode for its field is left unset and reported in skipped;
// err is set only when data is not a JSON object.
func DecodeDeployConfig(data []byte) (cfg *DeployConfig, skipped []error, err error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, err
	}
	if raw == nil {
		return nil, nil, fmt.Errorf("not a JSON object")
	}

	cfg = NewDeployConfig()
	for _, f := range registry {
		value, ok := raw[string(f.Key)]
		if !ok {
			continue
		}
		var decodeErr error
		if f.str != nil {
			decodeErr = json.Unmarshal(value, f.str(cfg))
		} else {
			decodeErr = json.Unmarshal(value, f.num(cfg))
		}
		if decodeErr != nil {
			skipped = append(skipped, fmt.Errorf("%s: %w", f.Key, decodeErr))
		}
	}
	return cfg, skipped, nil
}

// Uint is an unsigned integer that also accepts quoted decimal strings when
// decoded, so configuration files written with string values still load.
type Uint uint64

// UnmarshalJSON implements json.Unmarshaler
func (u *Uint) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	s = strings.TrimSpace(strings.Trim(s, `"`))
	if s == "" {
		*u = 0
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid unsigned integer %s: %w", string(data), err)
	}
	*u = Uint(n)
	return nil
}
