package chain

import (
	"context"

	"github.com/crackingshells/hatch-registry/internal/adapters/logger"
	"github.com/crackingshells/hatch-registry/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the reconstructor Graft node.
const NodeID graft.ID = "engine.reconstructor"

func init() {
	graft.Register(graft.Node[*Reconstructor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Reconstructor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewReconstructor(log), nil
		},
	})
}
