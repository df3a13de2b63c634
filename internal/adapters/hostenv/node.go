package hostenv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lnms-install/internal/core/domain"
	"go.trai.ch/lnms-install/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the host inspector Graft node.
	NodeID graft.ID = "adapter.host_inspector"
	// SettingsNodeID is the unique identifier for the Settings Graft node.
	SettingsNodeID graft.ID = "adapter.settings"
)

func init() {
	graft.Register(graft.Node[ports.HostInspector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HostInspector, error) {
			return NewInspector(), nil
		},
	})

	// Settings are read once and shared by every consumer.
	graft.Register(graft.Node[domain.Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (domain.Settings, error) {
			inspector, err := graft.Dep[ports.HostInspector](ctx)
			if err != nil {
				return domain.Settings{}, err
			}
			return inspector.Inspect(), nil
		},
	})
}
