package telemetry

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/endotarter/internal/core/domain"
	"go.trai.ch/zerr"
)

const namespace = "endotarter"

// Metrics implements ports.Metrics on a private Prometheus registry.
type Metrics struct {
	registry     *prometheus.Registry
	endorsements *prometheus.CounterVec
	remaining    prometheus.Gauge
	stages       *prometheus.HistogramVec
	lastRun      prometheus.Gauge
}

// NewMetrics creates and registers the run metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		endorsements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "endorsements_total",
			Help:      "Endorsement attempts by outcome.",
		}, []string{"outcome"}),
		remaining: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "remaining_targets",
			Help:      "Nations still queued for endorsement.",
		}),
		stages: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of run stages.",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 5, 15, 30, 60, 120},
		}, []string{"stage", "status"}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_flush_timestamp_seconds",
			Help:      "Unix time at which these metrics were written.",
		}),
	}

	m.registry.MustRegister(m.endorsements, m.remaining, m.stages, m.lastRun)
	return m
}

// ObserveEndorsement counts one endorsement attempt.
func (m *Metrics) ObserveEndorsement(outcome string) {
	m.endorsements.WithLabelValues(outcome).Inc()
}

// SetRemaining records the queue length.
func (m *Metrics) SetRemaining(n int) {
	m.remaining.Set(float64(n))
}

// ObserveStage records how long a run stage took.
func (m *Metrics) ObserveStage(stage, status string, seconds float64) {
	m.stages.WithLabelValues(stage, status).Observe(seconds)
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Flush writes the metrics to path in the Prometheus text format.
// An empty path is a no-op.
func (m *Metrics) Flush(path string) error {
	if path == "" {
		return nil
	}

	m.lastRun.SetToCurrentTime()

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(errors.Join(domain.ErrMetricsWriteFailed, err), "path", path)
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return zerr.With(errors.Join(domain.ErrMetricsWriteFailed, err), "path", path)
	}
	return nil
}
