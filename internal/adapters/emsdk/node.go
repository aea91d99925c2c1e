package emsdk

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/emforge/internal/adapters/logger"
	"go.trai.ch/emforge/internal/core/ports"
)

// NodeID is the unique identifier for the environment Graft node.
const NodeID graft.ID = "adapter.environment"

func init() {
	graft.Register(graft.Node[ports.Environment]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Environment, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewEnvironment(log), nil
		},
	})
}
