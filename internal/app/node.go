package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/emforge/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/emforge/internal/adapters/emsdk"     //nolint:depguard // Wired in app layer
	"go.trai.ch/emforge/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/emforge/internal/adapters/store"     //nolint:depguard // Wired in app layer
	"go.trai.ch/emforge/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/emforge/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/emforge/internal/core/ports"
	"go.trai.ch/emforge/internal/engine/invoker"
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
			logger.NodeID,
			emsdk.NodeID,
			store.NodeID,
			telemetry.NodeID,
			watcher.NodeID,
			invoker.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			env, err := graft.Dep[ports.Environment](ctx)
			if err != nil {
				return nil, err
			}

			recordStore, err := graft.Dep[ports.BuildRecordStore](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			watch, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}

			inv, err := graft.Dep[*invoker.Invoker](ctx)
			if err != nil {
				return nil, err
			}

			return New(log, env, recordStore, tracer, inv, watch), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	defaults, err := graft.Dep[*config.Loader](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      application,
		Logger:   log,
		Defaults: defaults,
	}, nil
}
