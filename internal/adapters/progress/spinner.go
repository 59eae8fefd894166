package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/bridge-deploy/internal/usecase"
)

// SpinnerReporter reports step labels and action status on the terminal
type SpinnerReporter struct {
	spinner *spinner.Spinner
	out     io.Writer
	message string
}

// NewSpinnerReporter creates a new spinner-based reporter writing to stdout
func NewSpinnerReporter() *SpinnerReporter {
	return NewSpinnerReporterWithWriter(os.Stdout)
}

// NewSpinnerReporterWithWriter creates a reporter writing to out
func NewSpinnerReporterWithWriter(out io.Writer) *SpinnerReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerReporter{
		spinner: s,
		out:     out,
	}
}

// Start shows the spinner with a message
func (r *SpinnerReporter) Start(message string) {
	r.message = message
	r.spinner.Suffix = " " + message
	if !r.spinner.Active() {
		r.spinner.Start()
	}
}

// Succeed stops the spinner with a success mark
func (r *SpinnerReporter) Succeed(message string) {
	r.finish(color.New(color.FgGreen).Sprint("✔"), message)
}

// Fail stops the spinner with a failure mark
func (r *SpinnerReporter) Fail(message string) {
	r.finish(color.New(color.FgRed).Sprint("✖"), message)
}

// Warn stops the spinner with a warning mark
func (r *SpinnerReporter) Warn(message string) {
	r.finish(color.New(color.FgYellow).Sprint("⚠"), message)
}

// Print writes passthrough output, pausing the spinner while it does
func (r *SpinnerReporter) Print(text string) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	fmt.Fprint(r.out, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(r.out)
	}

	if wasActive {
		r.spinner.Start()
	}
}

// OnProgress prints the label of each plan step before it runs
func (r *SpinnerReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if r.spinner.Active() {
		r.spinner.Stop()
	}

	counter := fmt.Sprintf("[%d/%d]", event.Current, event.Total)
	switch event.Stage {
	case "action":
		fmt.Fprintf(r.out, "%s %s\n", color.New(color.Faint).Sprint(counter), color.New(color.FgCyan, color.Bold).Sprint(event.Message))
	default:
		fmt.Fprintln(r.out, color.New(color.Faint).Sprintf("%s %s", counter, event.Message))
	}
}

// Info prints an info message
func (r *SpinnerReporter) Info(message string) {
	r.Print(color.New(color.FgCyan).Sprint(message))
}

// Error prints an error message
func (r *SpinnerReporter) Error(message string) {
	r.Print(color.New(color.FgRed).Sprint(message))
}

func (r *SpinnerReporter) finish(mark, message string) {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
	if message == "" {
		message = r.message
	}
	fmt.Fprintf(r.out, "%s %s\n", mark, message)
	r.message = ""
}

// Ensure SpinnerReporter implements the reporting ports
var (
	_ usecase.StatusIndicator = (*SpinnerReporter)(nil)
	_ usecase.ProgressSink    = (*SpinnerReporter)(nil)
)
