package usecase_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/bridge-deploy/internal/domain"
	"github.com/trebuchet-org/bridge-deploy/internal/domain/config"
	"github.com/trebuchet-org/bridge-deploy/internal/domain/forge"
	"github.com/trebuchet-org/bridge-deploy/internal/usecase"
)

// Well-known development key (anvil account #0)
const (
	testPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddress    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockPrompter is a mock implementation of Prompter
type MockPrompter struct {
	mock.Mock
}

func (m *MockPrompter) Prompt(ctx context.Context, req usecase.PromptRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

// envMap serves environment variables from a map
type envMap map[string]string

func (e envMap) LookupEnv(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

// memStore is an in-memory DeployConfigStore. A nil data means no file.
type memStore struct {
	data    *config.DeployConfig
	loadErr error
	saves   int
	deleted bool
}

func (s *memStore) Exists() bool {
	return s.data != nil || s.loadErr != nil
}

func (s *memStore) Load(ctx context.Context) (*config.DeployConfig, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.data == nil {
		return config.NewDeployConfig(), nil
	}
	return s.data.Clone(), nil
}

func (s *memStore) Save(ctx context.Context, cfg *config.DeployConfig) error {
	s.saves++
	s.loadErr = nil
	if s.data == nil {
		s.data = config.NewDeployConfig()
	}
	for _, key := range cfg.SetKeys() {
		v, _ := cfg.Get(key)
		if err := s.data.Set(key, v); err != nil {
			return err
		}
	}
	return nil
}

func (s *memStore) Remove(ctx context.Context, key config.Key) error {
	if s.data == nil {
		return nil
	}
	return s.data.Unset(key)
}

func (s *memStore) Delete(ctx context.Context) error {
	s.data = nil
	s.loadErr = nil
	s.deleted = true
	return nil
}

func (s *memStore) GetPath() string {
	return "/project/src/script/.deploy-config.json"
}

// fakeForge records script requests and fails the targets listed in fail
type fakeForge struct {
	requests []forge.ScriptRequest
	fail     map[string]error
}

func (f *fakeForge) RunScript(ctx context.Context, req forge.ScriptRequest) (*forge.CommandOutput, error) {
	f.requests = append(f.requests, req)
	out := &forge.CommandOutput{Args: req.Args(), Stdout: []byte("Script ran successfully.\n"), Success: true}
	if err, ok := f.fail[req.Target]; ok {
		out.Success = false
		out.ExitCode = 1
		out.Stderr = []byte("Error: " + err.Error() + "\n")
		return out, err
	}
	return out, nil
}

func (f *fakeForge) targets() []string {
	targets := make([]string, len(f.requests))
	for i, r := range f.requests {
		targets[i] = r.Target
	}
	return targets
}

// recordingIndicator captures status updates as "kind:message"
type recordingIndicator struct {
	events []string
}

func (r *recordingIndicator) Start(message string)   { r.add("start", message) }
func (r *recordingIndicator) Succeed(message string) { r.add("succeed", message) }
func (r *recordingIndicator) Fail(message string)    { r.add("fail", message) }
func (r *recordingIndicator) Warn(message string)    { r.add("warn", message) }
func (r *recordingIndicator) Print(text string)      { r.add("print", text) }

func (r *recordingIndicator) add(kind, message string) {
	r.events = append(r.events, fmt.Sprintf("%s:%s", kind, message))
}

// recordingProgress captures progress events
type recordingProgress struct {
	events []usecase.ProgressEvent
}

func (r *recordingProgress) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.events = append(r.events, event)
}
func (r *recordingProgress) Info(string)  {}
func (r *recordingProgress) Error(string) {}

// fakeRepo serves a hand-built catalogue
type fakeRepo struct {
	catalogue *domain.Catalogue
}

func (r *fakeRepo) Catalogue() *domain.Catalogue { return r.catalogue }

func (r *fakeRepo) GetScenario(name string) (*domain.Scenario, error) {
	return r.catalogue.Scenario(name)
}

func (r *fakeRepo) GetAction(name string) (*domain.ActionTemplate, error) {
	a, ok := r.catalogue.Actions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownAction, name)
	}
	return a, nil
}

// fakeChecker returns chain IDs by RPC URL
type fakeChecker map[string]uint64

func (c fakeChecker) ChainID(ctx context.Context, rpcURL string) (uint64, error) {
	id, ok := c[rpcURL]
	if !ok {
		return 0, fmt.Errorf("dial %s: connection refused", rpcURL)
	}
	return id, nil
}
