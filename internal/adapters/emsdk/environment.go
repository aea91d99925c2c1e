// Package emsdk resolves the Emscripten SDK process environment.
package emsdk

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"go.trai.ch/emforge/internal/core/domain"
	"go.trai.ch/emforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Environment implements ports.Environment by reading a dotenv-format file
// (typically one that exports EMSDK, PATH and related variables from an SDK
// activation). Entries are layered over the system environment by the
// runner; PATH entries are prepended there.
type Environment struct {
	logger ports.Logger
}

// NewEnvironment creates a new Environment adapter.
func NewEnvironment(logger ports.Logger) *Environment {
	return &Environment{logger: logger}
}

// Load reads the env file and returns its entries as KEY=VALUE strings in
// deterministic (sorted) order. An empty envFile yields no entries.
func (e *Environment) Load(envFile string) ([]string, error) {
	if envFile == "" {
		return nil, nil
	}

	if _, err := os.Stat(envFile); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrEnvFileNotFound, err), "path", envFile)
	}

	vars, err := godotenv.Read(envFile)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrEnvFileParseFailed, err), "path", envFile)
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]string, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, k+"="+vars[k])
	}

	e.logger.Debug(fmt.Sprintf("loaded %d environment entries from %s", len(entries), envFile))
	return entries, nil
}

var _ ports.Environment = (*Environment)(nil)
