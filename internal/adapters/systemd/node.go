package systemd

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lnms-install/internal/core/ports"
)

// NodeID is the unique identifier for the unit renderer Graft node.
const NodeID graft.ID = "adapter.unit_renderer"

func init() {
	graft.Register(graft.Node[ports.UnitRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.UnitRenderer, error) {
			return NewRenderer(), nil
		},
	})
}
