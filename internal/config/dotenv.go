package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

// LoadDotEnv loads .env.local and .env from each directory into the process
// environment. Variables that are already set are never overridden, so the
// first file to define a variable wins. Returns the files that were loaded.
func LoadDotEnv(dirs ...string) []string {
	var loaded []string
	for _, dir := range lo.Uniq(dirs) {
		for _, name := range []string{".env.local", ".env"} {
			envFile := filepath.Join(dir, name)
			if _, err := os.Stat(envFile); err != nil {
				continue
			}
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
				continue
			}
			loaded = append(loaded, envFile)
		}
	}
	return loaded
}
