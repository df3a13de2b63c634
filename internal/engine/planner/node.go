package planner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lnms-install/internal/adapters/systemd" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lnms-install/internal/core/ports"
)

// NodeID is the unique identifier for the planner Graft node.
const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[*Planner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{systemd.NodeID},
		Run: func(ctx context.Context) (*Planner, error) {
			units, err := graft.Dep[ports.UnitRenderer](ctx)
			if err != nil {
				return nil, err
			}
			return New(units), nil
		},
	})
}
