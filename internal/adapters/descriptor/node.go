package descriptor

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lnms-install/internal/core/ports"
)

// NodeID is the unique identifier for the descriptor loader Graft node.
const NodeID graft.ID = "adapter.descriptor_loader"

func init() {
	graft.Register(graft.Node[ports.DescriptorLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DescriptorLoader, error) {
			return NewLoader(), nil
		},
	})
}
