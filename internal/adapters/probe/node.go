package probe

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lnms-install/internal/core/ports"
)

// NodeID is the unique identifier for the server prober Graft node.
const NodeID graft.ID = "adapter.prober"

func init() {
	graft.Register(graft.Node[ports.Prober]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Prober, error) {
			return NewPinger(), nil
		},
	})
}
