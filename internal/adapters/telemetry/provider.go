package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/emforge/internal/core/ports"
)

// Setup installs a global tracer provider whose completed spans are
// reported through the logger at debug level. It returns a shutdown
// function that flushes the provider.
func Setup(logger ports.Logger) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(newLoggerProcessor(logger)),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}

// loggerProcessor forwards span completions to the logger, giving verbose
// runs a per-stage timing trace without an external collector.
type loggerProcessor struct {
	logger ports.Logger
}

func newLoggerProcessor(logger ports.Logger) *loggerProcessor {
	return &loggerProcessor{logger: logger}
}

func (p *loggerProcessor) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

func (p *loggerProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	d := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)
	p.logger.Debug(fmt.Sprintf("%s finished in %s", s.Name(), d))
}

func (p *loggerProcessor) Shutdown(_ context.Context) error { return nil }

func (p *loggerProcessor) ForceFlush(_ context.Context) error { return nil }
