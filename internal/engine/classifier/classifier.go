// Package classifier determines which build strategy applies to a project.
package classifier

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/emforge/internal/core/domain"
	"go.trai.ch/zerr"
)

// sourceExtensions are the file extensions accepted for single-file builds.
var sourceExtensions = map[string]bool{
	".cpp": true,
	".cc":  true,
	".cxx": true,
}

// Marker files checked at the top level of a project directory, in priority
// order: CMake wins when both are present.
const (
	cmakeMarker    = "CMakeLists.txt"
	makefileMarker = "Makefile"
)

// Classify inspects projectPath and selects the build strategy. The result
// is deterministic given the file system state at call time and is never
// re-evaluated mid-build.
func Classify(projectPath string) (domain.Strategy, error) {
	info, err := os.Stat(projectPath)
	if err != nil {
		return domain.Strategy{}, zerr.With(errors.Join(domain.ErrInvalidPath, err), "path", projectPath)
	}

	if !info.IsDir() {
		ext := strings.ToLower(filepath.Ext(projectPath))
		if !sourceExtensions[ext] {
			return domain.Strategy{}, zerr.With(zerr.Wrap(domain.ErrInvalidPath, ""), "path", projectPath)
		}
		return domain.Strategy{Kind: domain.StrategySingleFile, SourceFile: projectPath}, nil
	}

	if fileExists(filepath.Join(projectPath, cmakeMarker)) {
		return domain.Strategy{Kind: domain.StrategyCMake}, nil
	}
	if fileExists(filepath.Join(projectPath, makefileMarker)) {
		return domain.Strategy{Kind: domain.StrategyMakefile}, nil
	}

	return domain.Strategy{}, zerr.With(zerr.Wrap(domain.ErrUnknownProjectType, ""), "path", projectPath)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
