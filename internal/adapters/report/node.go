package report

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lnms-install/internal/adapters/hostenv"
	"go.trai.ch/lnms-install/internal/core/domain"
	"go.trai.ch/lnms-install/internal/core/ports"
)

// NodeID is the unique identifier for the reporter Graft node.
const NodeID graft.ID = "adapter.reporter"

func init() {
	graft.Register(graft.Node[ports.Reporter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{hostenv.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Reporter, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(settings), nil
		},
	})
}
