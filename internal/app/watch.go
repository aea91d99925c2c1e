package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/emforge/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Watch runs an initial build and then rebuilds whenever files under the
// project change. It returns when ctx is cancelled or the watcher fails.
// A failing build does not stop the loop; the next change triggers a new
// attempt.
func (a *App) Watch(ctx context.Context, cfg domain.BuildConfiguration) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	abs, err := cfg.Absolutize()
	if err != nil {
		return err
	}

	root, err := watchRoot(abs.ProjectPath)
	if err != nil {
		return err
	}

	batches, err := a.watcher.Start(ctx, root)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrWatchFailed, err), "root", root)
	}
	defer func() { _ = a.watcher.Stop() }()

	a.logger.Info("watching " + root)
	if _, err := a.Run(ctx, cfg); err != nil {
		if errors.Is(err, domain.ErrBuildCancelled) {
			return nil
		}
		a.logger.Error(err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case paths, ok := <-batches:
				if !ok {
					return nil
				}
				a.logger.Info(fmt.Sprintf("%d change(s) detected, rebuilding", len(paths)))
				if _, err := a.Run(ctx, cfg); err != nil {
					if errors.Is(err, domain.ErrBuildCancelled) {
						return nil
					}
					a.logger.Error(err)
				}
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// watchRoot is the directory watched for changes: the project directory, or
// the containing directory for single-file builds.
func watchRoot(projectPath string) (string, error) {
	info, err := os.Stat(projectPath)
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrInvalidPath, err), "path", projectPath)
	}
	if info.IsDir() {
		return projectPath, nil
	}
	return filepath.Dir(projectPath), nil
}
