package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/emforge/internal/core/domain"
	"go.trai.ch/zerr"
)

// Clean removes the artifacts listed in the build record of outputDir, the
// CMake build directory, and the record itself. Without a record there is
// nothing to clean.
func (a *App) Clean(_ context.Context, outputDir string) error {
	abs, err := filepath.Abs(outputDir)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrInvalidPath, err), "path", outputDir)
	}

	rec, err := a.store.Get(domain.RecordPathIn(abs))
	if err != nil {
		return err
	}
	if rec == nil {
		a.logger.Info("no build record in " + abs + ", nothing to clean")
		return nil
	}

	for _, artifact := range rec.Artifacts {
		if err := os.Remove(artifact); err != nil && !errors.Is(err, os.ErrNotExist) {
			return zerr.With(errors.Join(domain.ErrInvalidPath, err), "artifact", artifact)
		}
		a.logger.Debug("removed " + artifact)
	}
	if rec.BuildDir != "" {
		if err := os.RemoveAll(rec.BuildDir); err != nil {
			return zerr.With(errors.Join(domain.ErrInvalidPath, err), "dir", rec.BuildDir)
		}
		a.logger.Debug("removed " + rec.BuildDir)
	}
	if err := os.RemoveAll(domain.RecordDirIn(abs)); err != nil {
		return zerr.With(errors.Join(domain.ErrInvalidPath, err), "dir", domain.RecordDirIn(abs))
	}

	a.logger.Info("cleaned " + abs)
	return nil
}
