package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
)

// MetricsNodeID is the unique identifier for the run metrics Graft node.
const MetricsNodeID graft.ID = "adapter.metrics"

func init() {
	graft.Register(graft.Node[*Metrics]{
		ID:        MetricsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Metrics, error) {
			return NewMetrics(), nil
		},
	})
}
