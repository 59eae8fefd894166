package forge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"slices"
	"syscall"
	"time"

	"github.com/creack/pty"
	"github.com/trebuchet-org/bridge-deploy/internal/domain/config"
	"github.com/trebuchet-org/bridge-deploy/internal/domain/forge"
	"github.com/trebuchet-org/bridge-deploy/internal/usecase"
)

// ForgeAdapter handles forge script execution
type ForgeAdapter struct {
	log         *slog.Logger
	binary      string
	projectRoot string
	usePTY      bool
}

// NewForgeAdapter creates a new forge executor
func NewForgeAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *ForgeAdapter {
	binary := cfg.ForgeBinary
	if binary == "" {
		binary = "forge"
	}
	return &ForgeAdapter{
		log:         log.With("component", "ForgeAdapter"),
		binary:      binary,
		projectRoot: cfg.ProjectRoot,
		usePTY:      cfg.UsePTY,
	}
}

// RunScript runs `forge script` synchronously and captures its output.
// In PTY mode stdout and stderr share the terminal so forge keeps its colors;
// otherwise stderr is captured separately so it cannot interleave with a spinner.
func (f *ForgeAdapter) RunScript(ctx context.Context, req forge.ScriptRequest) (*forge.CommandOutput, error) {
	args := f.buildArgs(req)
	output := &forge.CommandOutput{Args: args}

	f.log.Debug("running forge script", "target", req.Target, "dir", f.projectRoot, "pty", f.usePTY)

	cmd := exec.CommandContext(ctx, f.binary, args...)
	cmd.Dir = f.projectRoot
	cmd.Env = append(os.Environ(), f.buildEnv(req)...)

	start := time.Now()
	var stdout, stderr bytes.Buffer
	var err error
	if f.usePTY {
		err = f.runWithPTY(cmd, &stdout)
	} else {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
		err = cmd.Run()
	}
	output.Duration = time.Since(start)
	output.Stdout = stdout.Bytes()
	output.Stderr = stderr.Bytes()

	if err != nil {
		output.ExitCode = exitCode(err)
		output.Error = fmt.Errorf("forge script %s: %w", req.Target, err)
		f.log.Debug("forge script failed", "target", req.Target, "exit", output.ExitCode, "duration", output.Duration)
		return output, output.Error
	}

	output.Success = true
	f.log.Debug("forge script completed", "target", req.Target, "duration", output.Duration)
	return output, nil
}

func (f *ForgeAdapter) runWithPTY(cmd *exec.Cmd, stdout io.Writer) error {
	ptyFile, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("failed to start pty: %w", err)
	}
	defer func() {
		_ = ptyFile.Close()
	}()

	// Reading a pty whose child has exited yields EIO on Linux; that is EOF here.
	if _, err := io.Copy(stdout, ptyFile); err != nil && !errors.Is(err, syscall.EIO) {
		f.log.Debug("pty read ended", "error", err)
	}

	return cmd.Wait()
}

// buildArgs builds the forge script command arguments
func (f *ForgeAdapter) buildArgs(req forge.ScriptRequest) []string {
	return req.Args()
}

// buildEnv builds the environment variable array in a stable order
func (f *ForgeAdapter) buildEnv(req forge.ScriptRequest) []string {
	envStrings := make([]string, 0, len(req.Env))
	for _, k := range slices.Sorted(maps.Keys(req.Env)) {
		envStrings = append(envStrings, fmt.Sprintf("%s=%s", k, req.Env[k]))
	}
	return envStrings
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// Ensure ForgeAdapter implements ForgeScriptRunner
var _ usecase.ForgeScriptRunner = (*ForgeAdapter)(nil)
