package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/endotarter/internal/adapters/cache"        //nolint:depguard // Wired in app layer
	"go.trai.ch/endotarter/internal/adapters/config"       //nolint:depguard // Wired in app layer
	"go.trai.ch/endotarter/internal/adapters/dump"         //nolint:depguard // Wired in app layer
	"go.trai.ch/endotarter/internal/adapters/logger"       //nolint:depguard // Wired in app layer
	"go.trai.ch/endotarter/internal/adapters/nationstates" //nolint:depguard // Wired in app layer
	"go.trai.ch/endotarter/internal/adapters/telemetry"    //nolint:depguard // Wired in app layer
	"go.trai.ch/endotarter/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			cache.NodeID,
			dump.NodeID,
			nationstates.NodeID,
			logger.NodeID,
			telemetry.MetricsNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.CacheStore](ctx)
	if err != nil {
		return nil, err
	}

	exports, err := graft.Dep[ports.ExportSource](ctx)
	if err != nil {
		return nil, err
	}

	game, err := graft.Dep[ports.GameClient](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	metrics, err := graft.Dep[*telemetry.Metrics](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, store, exports, game, log, metrics), nil
}
