package forge

import (
	"time"
)

// ScriptRequest describes a single `forge script` invocation
type ScriptRequest struct {
	Target      string // path/to/Script.s.sol:Contract
	ForkURL     string
	ExplorerKey string
	Legacy      bool
	Broadcast   bool
	Verify      bool
	Env         map[string]string
}

// Args returns the forge command line, without the binary name
func (r ScriptRequest) Args() []string {
	args := []string{"script", r.Target}

	if r.ForkURL != "" {
		args = append(args, "--fork-url", r.ForkURL)
	}

	if r.ExplorerKey != "" {
		args = append(args, "--etherscan-api-key", r.ExplorerKey)
	}

	if r.Legacy {
		args = append(args, "--legacy")
	}

	if r.Broadcast {
		args = append(args, "--broadcast")
	}

	if r.Verify {
		args = append(args, "--verify")
	}

	return append(args, "-vvvv")
}

// CommandOutput is the captured result of running forge
type CommandOutput struct {
	Args     []string
	Stdout   []byte
	Stderr   []byte // empty in PTY mode, where it is merged into Stdout
	Success  bool
	ExitCode int
	Duration time.Duration
	Error    error
}
