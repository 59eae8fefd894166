package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/trebuchet-org/bridge-deploy/internal/domain/config"
)

// Sentinel errors for domain operations
var (
	// ErrInvalidInput is returned when a prompted or environment value cannot be parsed
	ErrInvalidInput = config.ErrInvalidInput

	// ErrPromptCancelled is returned when the operator aborts an interactive prompt
	ErrPromptCancelled = errors.New("prompt cancelled")

	// ErrUnknownKey is returned for configuration keys outside the key registry
	ErrUnknownKey = config.ErrUnknownKey

	// ErrUnknownScenario is returned when a scenario name is not in the catalogue
	ErrUnknownScenario = errors.New("unknown scenario")

	// ErrUnknownAction is returned when a scenario references an undefined action
	ErrUnknownAction = errors.New("unknown action")
)

// IsFatal reports whether a step error must stop a plan run.
// Forge failures never stop a run; bad operator input and cancelled prompts do.
func IsFatal(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrPromptCancelled)
}

// UnknownScenarioErr lists the scenarios that do exist
type UnknownScenarioErr struct {
	Name      string
	Available []string
}

func (e UnknownScenarioErr) Error() string {
	return fmt.Sprintf("unknown scenario %q (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

func (e UnknownScenarioErr) Unwrap() error {
	return ErrUnknownScenario
}
