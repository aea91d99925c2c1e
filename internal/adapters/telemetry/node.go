package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/emforge/internal/adapters/logger"
	"go.trai.ch/emforge/internal/core/ports"
)

// NodeID is the unique identifier for the tracer Graft node.
const NodeID graft.ID = "adapter.tracer"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			_ = Setup(log)
			return NewOTelTracer("emforge"), nil
		},
	})
}
