package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// StageRecorder implements sdktrace.SpanProcessor and turns finished spans into
// stage duration observations.
type StageRecorder struct {
	metrics *Metrics
}

// NewStageRecorder returns a span processor that reports to metrics.
func NewStageRecorder(metrics *Metrics) *StageRecorder {
	return &StageRecorder{metrics: metrics}
}

// OnStart does nothing.
func (r *StageRecorder) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd records the span's duration under its name.
func (r *StageRecorder) OnEnd(s sdktrace.ReadOnlySpan) {
	if r.metrics == nil || !s.SpanContext().IsValid() {
		return
	}

	status := "ok"
	if s.Status().Code == codes.Error {
		status = "error"
	}
	r.metrics.ObserveStage(s.Name(), status, s.EndTime().Sub(s.StartTime()).Seconds())
}

// ForceFlush does nothing.
func (r *StageRecorder) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (r *StageRecorder) Shutdown(_ context.Context) error {
	return nil
}
