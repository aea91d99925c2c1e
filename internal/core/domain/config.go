// Package domain contains the core build types for emforge.
package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// BuildMode selects the optimization/diagnostics profile of a build.
type BuildMode string

const (
	// ModeDebug builds with source maps, assertions and no optimization.
	ModeDebug BuildMode = "Debug"
	// ModeRelease builds optimized with assertions disabled.
	ModeRelease BuildMode = "Release"
)

// ParseBuildMode parses a case-insensitive build mode name.
func ParseBuildMode(s string) (BuildMode, error) {
	switch strings.ToLower(s) {
	case "debug":
		return ModeDebug, nil
	case "release":
		return ModeRelease, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidBuildMode, ""), "mode", s)
	}
}

// TargetEnv identifies the runtime the compiled module is intended for.
type TargetEnv string

const (
	// TargetWeb targets browsers.
	TargetWeb TargetEnv = "web"
	// TargetNode targets the Node.js runtime.
	TargetNode TargetEnv = "node"
	// TargetWASI targets standalone WASI hosts.
	TargetWASI TargetEnv = "wasi"
)

// ParseTargetEnv parses a case-insensitive target environment name.
func ParseTargetEnv(s string) (TargetEnv, error) {
	switch strings.ToLower(s) {
	case "web":
		return TargetWeb, nil
	case "node":
		return TargetNode, nil
	case "wasi":
		return TargetWASI, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidTargetEnv, ""), "target", s)
	}
}

// Defaults applied when the CLI or the defaults file leaves a field empty.
const (
	DefaultOutputDir  = "dist"
	DefaultOutputName = "output"
)

// BuildConfiguration is the immutable description of one requested build.
// It is constructed once per invocation and passed through the
// classifier, composer and invoker unchanged.
type BuildConfiguration struct {
	// ProjectPath is a project directory or a single C++ source file.
	ProjectPath string
	// OutputDir receives the produced .js/.wasm artifacts.
	OutputDir string
	Mode      BuildMode
	Target    TargetEnv
	// OutputName is the base name of the produced artifacts.
	OutputName string
	// WithImGui enables the ImGui WebGL/input emulation flag bundle.
	WithImGui bool
	// RawFlags holds user-supplied emcc flags, whitespace-separated.
	// They are appended last so the user keeps final override power.
	RawFlags string
	// EnvFile optionally names a dotenv-format file whose entries are
	// applied to every toolchain process environment.
	EnvFile string
	// Webapp enables webapp shell generation for GUI builds.
	Webapp bool
}

// Validate checks the configuration invariants. Path existence is the
// classifier's concern; Validate only rejects structurally invalid values.
func (c BuildConfiguration) Validate() error {
	if strings.TrimSpace(c.ProjectPath) == "" {
		return ErrProjectPathEmpty
	}
	if _, err := ParseBuildMode(string(c.Mode)); err != nil {
		return err
	}
	if _, err := ParseTargetEnv(string(c.Target)); err != nil {
		return err
	}
	if strings.TrimSpace(c.OutputName) == "" {
		return ErrOutputNameEmpty
	}
	return nil
}

// Absolutize returns a copy with ProjectPath and OutputDir resolved to
// absolute paths. The invoker changes working directories between steps,
// so relative paths in composed flags would silently point elsewhere.
func (c BuildConfiguration) Absolutize() (BuildConfiguration, error) {
	proj, err := filepath.Abs(c.ProjectPath)
	if err != nil {
		return c, zerr.With(errors.Join(ErrInvalidPath, err), "path", c.ProjectPath)
	}
	out, err := filepath.Abs(c.OutputDir)
	if err != nil {
		return c, zerr.With(errors.Join(ErrInvalidPath, err), "path", c.OutputDir)
	}
	c.ProjectPath = proj
	c.OutputDir = out
	return c, nil
}

// Digest returns a stable identity for the configuration, used to key the
// CMake build directory and the build record.
func (c BuildConfiguration) Digest() string {
	h := xxhash.New()
	_, _ = h.WriteString(c.ProjectPath)
	_, _ = h.WriteString("|")
	_, _ = h.WriteString(string(c.Mode))
	_, _ = h.WriteString("|")
	_, _ = h.WriteString(string(c.Target))
	_, _ = h.WriteString("|")
	_, _ = h.WriteString(c.OutputName)
	return fmt.Sprintf("%016x", h.Sum64())
}
