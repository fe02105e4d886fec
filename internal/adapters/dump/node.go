package dump

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/endotarter/internal/core/ports"
)

// NodeID is the unique identifier for the dump source Graft node.
const NodeID graft.ID = "adapter.dump_source"

func init() {
	graft.Register(graft.Node[ports.ExportSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ExportSource, error) {
			return NewSource(), nil
		},
	})
}
