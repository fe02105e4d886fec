package nationstates

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/endotarter/internal/core/ports"
)

// NodeID is the unique identifier for the NationStates client Graft node.
const NodeID graft.ID = "adapter.nationstates"

func init() {
	graft.Register(graft.Node[ports.GameClient]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.GameClient, error) {
			return NewClient(), nil
		},
	})
}
