package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/progbuild/internal/adapters/directive"
	"go.trai.ch/progbuild/internal/adapters/logger"
	"go.trai.ch/progbuild/internal/core/ports"
)

// NodeID is the unique identifier for the executor Graft node.
const NodeID graft.ID = "adapter.executor"

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, directive.NodeID},
		Run: func(ctx context.Context) (ports.Executor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			emitter, err := graft.Dep[ports.DirectiveEmitter](ctx)
			if err != nil {
				return nil, err
			}

			return NewExecutor(log, emitter), nil
		},
	})
}
