package telemetry

import (
	"context"

	"go.trai.ch/emforge/internal/core/ports"
)

// NewNoop returns a tracer that records nothing. Used in tests.
func NewNoop() ports.Tracer {
	return noopTracer{}
}

type noopTracer struct{}

func (noopTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) SetAttribute(_, _ string) {}
func (noopSpan) RecordError(_ error)      {}
func (noopSpan) End()                     {}
