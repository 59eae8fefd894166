package domain

import (
	"fmt"
	"path"

	"github.com/trebuchet-org/bridge-deploy/internal/domain/config"
)

// Scenario is a named deployment target with a hand-ordered list of steps.
// Ordering matters: addresses produced by an action are resolved only after it.
type Scenario struct {
	Name    string         `yaml:"name"`
	Short   string         `yaml:"short"`
	Long    string         `yaml:"long,omitempty"`
	Network string         `yaml:"network"`
	Steps   []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is exactly one of resolve, checkpoint or action
type ScenarioStep struct {
	Resolve    config.Key `yaml:"resolve,omitempty"`
	Checkpoint bool       `yaml:"checkpoint,omitempty"`
	Action     string     `yaml:"action,omitempty"`
}

// Kind returns the step kind, or an error when the step is ambiguous or empty
func (s ScenarioStep) Kind() (StepKind, error) {
	var kinds []StepKind
	if s.Resolve != "" {
		kinds = append(kinds, StepResolve)
	}
	if s.Checkpoint {
		kinds = append(kinds, StepCheckpoint)
	}
	if s.Action != "" {
		kinds = append(kinds, StepAction)
	}
	if len(kinds) != 1 {
		return "", fmt.Errorf("step must set exactly one of resolve, checkpoint, action (got %d)", len(kinds))
	}
	return kinds[0], nil
}

// ActionTemplate describes one forge script invocation
type ActionTemplate struct {
	Name        string     `yaml:"-"`
	Label       string     `yaml:"label"`
	Script      string     `yaml:"script"`
	Contract    string     `yaml:"contract"`
	RPC         config.Key `yaml:"rpc"`
	ExplorerKey config.Key `yaml:"explorer_key,omitempty"`
	Legacy      bool       `yaml:"legacy,omitempty"`
	Broadcast   bool       `yaml:"broadcast,omitempty"`
	Verify      bool       `yaml:"verify,omitempty"`
}

// Target returns the forge script target, e.g. deploy/DeployOpWorldID.s.sol:DeployOpWorldID
func (a *ActionTemplate) Target(scriptDir string) string {
	return fmt.Sprintf("%s:%s", path.Join(scriptDir, a.Script), a.Contract)
}

// ScriptName returns the script file name for status messages
func (a *ActionTemplate) ScriptName() string {
	return path.Base(a.Script)
}

// Catalogue holds every scenario and the action templates they reference
type Catalogue struct {
	Actions   map[string]*ActionTemplate `yaml:"actions"`
	Scenarios []*Scenario                `yaml:"scenarios"`
}

// Scenario looks up a scenario by name
func (c *Catalogue) Scenario(name string) (*Scenario, error) {
	for _, s := range c.Scenarios {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, UnknownScenarioErr{Name: name, Available: c.Names()}
}

// Names returns the scenario names in catalogue order
func (c *Catalogue) Names() []string {
	names := make([]string, len(c.Scenarios))
	for i, s := range c.Scenarios {
		names[i] = s.Name
	}
	return names
}
