package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lnms-install/internal/adapters/descriptor" //nolint:depguard // Wired in app layer
	"go.trai.ch/lnms-install/internal/adapters/hostenv"    //nolint:depguard // Wired in app layer
	"go.trai.ch/lnms-install/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/lnms-install/internal/adapters/probe"      //nolint:depguard // Wired in app layer
	"go.trai.ch/lnms-install/internal/adapters/report"     //nolint:depguard // Wired in app layer
	"go.trai.ch/lnms-install/internal/core/domain"
	"go.trai.ch/lnms-install/internal/core/ports"
	"go.trai.ch/lnms-install/internal/engine/planner"
	"go.trai.ch/lnms-install/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			descriptor.NodeID,
			resolver.NodeID,
			planner.NodeID,
			probe.NodeID,
			report.NodeID,
			logger.NodeID,
			hostenv.SettingsNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.DescriptorLoader](ctx)
	if err != nil {
		return nil, err
	}

	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	plan, err := graft.Dep[*planner.Planner](ctx)
	if err != nil {
		return nil, err
	}

	prober, err := graft.Dep[ports.Prober](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, res, plan, prober, reporter, log, settings), nil
}
