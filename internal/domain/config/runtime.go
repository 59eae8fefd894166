package config

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	WorkDir     string // invocation directory, base for relative paths
	ProjectRoot string // directory containing foundry.toml, forge runs here
	ScriptDir   string // script root relative to ProjectRoot (e.g. "src/script")

	// Persisted deployment configuration
	ConfigFile string

	// Forge settings
	ForgeBinary string
	UsePTY      bool

	// Execution settings
	Debug    bool
	NoConfig bool
}

// Network is an RPC endpoint known to the deploy configuration
type Network struct {
	Name   string `json:"name"`
	Key    Key    `json:"key"`
	RPCURL string `json:"rpcUrl"`
}
