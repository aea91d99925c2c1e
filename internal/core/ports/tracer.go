package ports

import "context"

// Tracer creates spans around build stages and toolchain steps.
type Tracer interface {
	// Start opens a span. The returned context carries the span for nesting.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span is one traced unit of work.
type Span interface {
	// SetAttribute attaches a key/value pair to the span.
	SetAttribute(key string, value string)

	// RecordError marks the span as failed with err.
	RecordError(err error)

	// End completes the span.
	End()
}
