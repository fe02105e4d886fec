package ports

import "context"

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span represents a unit of work.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// Metrics records run-level counters.
type Metrics interface {
	// ObserveEndorsement counts one endorsement attempt with the given outcome.
	ObserveEndorsement(outcome string)
	// SetRemaining records how many targets are left in the queue.
	SetRemaining(n int)
	// Flush writes the collected metrics to path. An empty path is a no-op.
	Flush(path string) error
}
