// Package app implements the application layer for emforge.
package app

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/emforge/internal/core/domain"
	"go.trai.ch/emforge/internal/core/ports"
	"go.trai.ch/emforge/internal/engine/classifier"
	"go.trai.ch/emforge/internal/engine/flags"
	"go.trai.ch/emforge/internal/engine/invoker"
)

// App orchestrates the build pipeline: classify the project, compose the
// flag set, invoke the toolchain, then persist the outcome.
type App struct {
	logger  ports.Logger
	env     ports.Environment
	store   ports.BuildRecordStore
	tracer  ports.Tracer
	invoker *invoker.Invoker
	watcher ports.Watcher
}

// New creates a new App instance.
func New(
	logger ports.Logger,
	env ports.Environment,
	store ports.BuildRecordStore,
	tracer ports.Tracer,
	inv *invoker.Invoker,
	watcher ports.Watcher,
) *App {
	return &App{
		logger:  logger,
		env:     env,
		store:   store,
		tracer:  tracer,
		invoker: inv,
		watcher: watcher,
	}
}

// Run executes one build. Pipeline failures carry their originating stage
// via domain.StageError; configuration problems (invalid values, unreadable
// environment file) surface before the pipeline starts and carry no stage.
func (a *App) Run(ctx context.Context, cfg domain.BuildConfiguration) (*domain.Outcome, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg, err := cfg.Absolutize()
	if err != nil {
		return nil, err
	}
	env, err := a.env.Load(cfg.EnvFile)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	ctx, span := a.tracer.Start(ctx, "build")
	defer span.End()
	span.SetAttribute("project", cfg.ProjectPath)

	strategy, err := a.classify(ctx, cfg)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	a.logger.Info("project classified as " + strategy.Kind.String())

	flagSet, err := a.compose(ctx, cfg, strategy)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	outcome, err := a.invoke(ctx, cfg, strategy, flagSet, env)
	if err != nil {
		span.RecordError(err)
		return outcome, err
	}

	if err := a.persistRecord(cfg, outcome, started); err != nil {
		return outcome, err
	}
	if needsWebapp(cfg) {
		if err := a.createWebapp(cfg); err != nil {
			return outcome, err
		}
	}

	a.logger.Info(fmt.Sprintf("build succeeded in %s: %s",
		time.Since(started).Round(time.Millisecond), cfg.PrimaryArtifact()))
	return outcome, nil
}

func (a *App) classify(ctx context.Context, cfg domain.BuildConfiguration) (domain.Strategy, error) {
	_, span := a.tracer.Start(ctx, "classify")
	defer span.End()

	strategy, err := classifier.Classify(cfg.ProjectPath)
	if err != nil {
		span.RecordError(err)
		return domain.Strategy{}, domain.AtStage(domain.StageClassification, err)
	}
	span.SetAttribute("strategy", strategy.Kind.String())
	return strategy, nil
}

func (a *App) compose(ctx context.Context, cfg domain.BuildConfiguration, strategy domain.Strategy) (domain.FlagSet, error) {
	_, span := a.tracer.Start(ctx, "compose")
	defer span.End()

	flagSet, err := flags.Compose(cfg, strategy)
	if err != nil {
		span.RecordError(err)
		return nil, domain.AtStage(domain.StageComposition, err)
	}
	a.logger.Debug("composed flags: " + flagSet.Join())
	return flagSet, nil
}

func (a *App) invoke(
	ctx context.Context,
	cfg domain.BuildConfiguration,
	strategy domain.Strategy,
	flagSet domain.FlagSet,
	env []string,
) (*domain.Outcome, error) {
	ctx, span := a.tracer.Start(ctx, "invoke")
	defer span.End()

	outcome, err := a.invoker.Invoke(ctx, cfg, strategy, flagSet, env)
	if err != nil {
		span.RecordError(err)
		return outcome, domain.AtStage(domain.StageInvocation, err)
	}
	return outcome, nil
}

func (a *App) persistRecord(cfg domain.BuildConfiguration, outcome *domain.Outcome, started time.Time) error {
	rec := domain.BuildRecord{
		ConfigDigest: cfg.Digest(),
		Strategy:     outcome.Strategy.Kind.String(),
		Artifacts:    outcome.Artifacts,
		FinishedAt:   time.Now().UTC(),
		DurationMS:   time.Since(started).Milliseconds(),
	}
	if outcome.Strategy.Kind == domain.StrategyCMake {
		rec.BuildDir = cfg.CMakeBuildDir()
	}
	return a.store.Put(cfg.RecordPath(), rec)
}
