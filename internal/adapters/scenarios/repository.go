package scenarios

import (
	_ "embed"
	"fmt"

	"github.com/samber/lo"
	"github.com/trebuchet-org/bridge-deploy/internal/domain"
	"github.com/trebuchet-org/bridge-deploy/internal/domain/config"
	"github.com/trebuchet-org/bridge-deploy/internal/usecase"
	"gopkg.in/yaml.v3"
)

//go:embed scenarios.yaml
var embeddedCatalogue []byte

// Repository serves the scenario catalogue compiled into the binary
type Repository struct {
	catalogue *domain.Catalogue
}

// NewRepository parses and validates the embedded catalogue
func NewRepository() (*Repository, error) {
	catalogue, err := Parse(embeddedCatalogue)
	if err != nil {
		return nil, fmt.Errorf("embedded scenario catalogue: %w", err)
	}
	return &Repository{catalogue: catalogue}, nil
}

// Parse decodes a catalogue from YAML and validates it
func Parse(data []byte) (*domain.Catalogue, error) {
	var catalogue domain.Catalogue
	if err := yaml.Unmarshal(data, &catalogue); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for name, action := range catalogue.Actions {
		if action == nil {
			return nil, fmt.Errorf("action %q is empty", name)
		}
		action.Name = name
	}

	if err := Validate(&catalogue); err != nil {
		return nil, err
	}
	return &catalogue, nil
}

// Validate checks that every scenario references known keys and actions
func Validate(c *domain.Catalogue) error {
	if len(c.Scenarios) == 0 {
		return fmt.Errorf("catalogue has no scenarios")
	}

	names := lo.Map(c.Scenarios, func(s *domain.Scenario, _ int) string { return s.Name })
	if dups := lo.FindDuplicates(names); len(dups) > 0 {
		return fmt.Errorf("duplicate scenario names: %v", dups)
	}

	for name, action := range c.Actions {
		if err := validateAction(action); err != nil {
			return fmt.Errorf("action %s: %w", name, err)
		}
	}

	for _, s := range c.Scenarios {
		if s.Name == "" {
			return fmt.Errorf("scenario without a name")
		}
		if len(s.Steps) == 0 {
			return fmt.Errorf("scenario %s has no steps", s.Name)
		}
		for i, step := range s.Steps {
			kind, err := step.Kind()
			if err != nil {
				return fmt.Errorf("scenario %s step %d: %w", s.Name, i+1, err)
			}
			switch kind {
			case domain.StepResolve:
				if !config.IsValidKey(string(step.Resolve)) {
					return fmt.Errorf("scenario %s step %d: %w: %s", s.Name, i+1, config.ErrUnknownKey, step.Resolve)
				}
			case domain.StepAction:
				if _, ok := c.Actions[step.Action]; !ok {
					return fmt.Errorf("scenario %s step %d: %w: %s", s.Name, i+1, domain.ErrUnknownAction, step.Action)
				}
			}
		}
	}
	return nil
}

func validateAction(a *domain.ActionTemplate) error {
	if a.Script == "" || a.Contract == "" {
		return fmt.Errorf("script and contract are required")
	}
	rpc, ok := config.LookupField(a.RPC)
	if !ok {
		return fmt.Errorf("%w: rpc %q", config.ErrUnknownKey, a.RPC)
	}
	if rpc.Kind != config.KindURL {
		return fmt.Errorf("rpc key %s is not a URL field", a.RPC)
	}
	if a.ExplorerKey != "" && !config.IsValidKey(string(a.ExplorerKey)) {
		return fmt.Errorf("%w: explorer_key %q", config.ErrUnknownKey, a.ExplorerKey)
	}
	return nil
}

// Catalogue returns the full catalogue
func (r *Repository) Catalogue() *domain.Catalogue {
	return r.catalogue
}

// GetScenario looks up a scenario by name
func (r *Repository) GetScenario(name string) (*domain.Scenario, error) {
	return r.catalogue.Scenario(name)
}

// GetAction looks up an action template by name
func (r *Repository) GetAction(name string) (*domain.ActionTemplate, error) {
	action, ok := r.catalogue.Actions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownAction, name)
	}
	return action, nil
}

// Ensure the repository implements the interface
var _ usecase.ScenarioRepository = (*Repository)(nil)
