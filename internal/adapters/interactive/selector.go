package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/bridge-deploy/internal/domain"
	"github.com/trebuchet-org/bridge-deploy/internal/usecase"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct{}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter() *SelectorAdapter {
	return &SelectorAdapter{}
}

// SelectScenario selects a scenario from a list
func (s *SelectorAdapter) SelectScenario(ctx context.Context, scenarios []*domain.Scenario, prompt string) (*domain.Scenario, error) {
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios provided for selection")
	}

	if len(scenarios) == 1 {
		return scenarios[0], nil
	}

	options := formatScenarioOptions(scenarios)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:     prompt,
		Items:     options,
		Templates: templates,
		Size:      10,
		Searcher:  createFuzzySearchFunc(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}

	return scenarios[index], nil
}

// formatScenarioOptions creates display strings for scenario selection
func formatScenarioOptions(scenarios []*domain.Scenario) []string {
	options := make([]string, len(scenarios))
	for i, scenario := range scenarios {
		name := color.New(color.FgWhite, color.Bold).Sprint(scenario.Name)
		network := color.New(color.FgBlue).Sprintf("[%s]", scenario.Network)
		options[i] = fmt.Sprintf("%s %s %s", name, network, scenario.Short)
	}
	return options
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		// Empty search shows all items
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		matches := fuzzy.Find(input, []string{item})
		return len(matches) > 0
	}
}

// Ensure the adapter implements the interface
var _ usecase.ScenarioSelector = (*SelectorAdapter)(nil)
