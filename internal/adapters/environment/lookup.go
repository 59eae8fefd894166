package environment

import (
	"os"

	"github.com/trebuchet-org/bridge-deploy/internal/usecase"
)

// LookupAdapter reads variables from the process environment
type LookupAdapter struct{}

// NewLookupAdapter creates a new environment lookup adapter
func NewLookupAdapter() *LookupAdapter {
	return &LookupAdapter{}
}

// LookupEnv returns the value of key and whether it is set
func (a *LookupAdapter) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapLookup serves variables from a fixed map
type MapLookup map[string]string

// LookupEnv returns the value of key and whether it is present
func (m MapLookup) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Ensure the adapters implement the interface
var (
	_ usecase.EnvLookup = (*LookupAdapter)(nil)
	_ usecase.EnvLookup = MapLookup(nil)
)
