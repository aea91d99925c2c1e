package invoker

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/emforge/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/emforge/internal/adapters/shell"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/emforge/internal/core/ports"
)

// NodeID is the unique identifier for the invoker Graft node.
const NodeID graft.ID = "engine.invoker"

func init() {
	graft.Register(graft.Node[*Invoker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Invoker, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(runner, log), nil
		},
	})
}
