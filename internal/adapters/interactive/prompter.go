package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/trebuchet-org/bridge-deploy/internal/domain"
	"github.com/trebuchet-org/bridge-deploy/internal/usecase"
)

// PrompterAdapter asks the operator for values on the terminal
type PrompterAdapter struct {
	stdin  io.ReadCloser
	stdout io.WriteCloser
}

// NewPrompterAdapter creates a prompter bound to the process terminal
func NewPrompterAdapter() *PrompterAdapter {
	return &PrompterAdapter{
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
}

// Prompt blocks until the operator submits a line. An empty submission
// returns the default. Closed stdin counts as an empty answer; Ctrl-C
// cancels.
func (p *PrompterAdapter) Prompt(ctx context.Context, req usecase.PromptRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	prompt := promptui.Prompt{
		Label:   req.Label,
		Default: req.Default,
		Stdin:   p.stdin,
		Stdout:  p.stdout,
	}
	if req.Secret {
		prompt.Mask = '*'
	}

	result, err := prompt.Run()
	switch {
	case err == nil:
		return result, nil
	case errors.Is(err, promptui.ErrEOF):
		return req.Default, nil
	case errors.Is(err, promptui.ErrInterrupt), errors.Is(err, promptui.ErrAbort):
		return "", fmt.Errorf("%s: %w", req.Label, domain.ErrPromptCancelled)
	default:
		return "", fmt.Errorf("input cancelled: %w", err)
	}
}

// Ensure the adapter implements the interface
var _ usecase.Prompter = (*PrompterAdapter)(nil)
