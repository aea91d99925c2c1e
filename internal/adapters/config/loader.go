// Package config loads the optional emforge.yaml defaults file.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/emforge/internal/core/domain"
	"go.trai.ch/emforge/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultsFileName is the defaults file looked up in the working directory.
const DefaultsFileName = "emforge.yaml"

// Loader reads the defaults file from a working directory.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads cwd/emforge.yaml. A missing file is not an error and yields
// nil defaults.
func (l *Loader) Load(cwd string) (*Defaults, error) {
	path := filepath.Join(cwd, DefaultsFileName)

	data, err := os.ReadFile(path) //nolint:gosec // fixed file name under cwd
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(errors.Join(domain.ErrDefaultsReadFailed, err), "path", path)
	}

	var d Defaults
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		// An empty or comments-only file carries no defaults and behaves
		// like a missing one.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, zerr.With(errors.Join(domain.ErrDefaultsParseFailed, err), "path", path)
	}

	l.Logger.Debug("loaded defaults from " + path)
	return &d, nil
}
