package writer

import (
	"context"

	"github.com/crackingshells/hatch-registry/internal/adapters/clock"   
	"github.com/crackingshells/hatch-registry/internal/adapters/logger"  
	"github.com/crackingshells/hatch-registry/internal/adapters/registry"
	"github.com/crackingshells/hatch-registry/internal/core/ports"
	"github.com/crackingshells/hatch-registry/internal/engine/chain"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the version writer Graft node.
const NodeID graft.ID = "engine.writer"

func init() {
	graft.Register(graft.Node[*Writer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			registry.NodeID,
			chain.NodeID,
			clock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Writer, error) {
			store, err := graft.Dep[ports.RegistryStore](ctx)
			if err != nil {
				return nil, err
			}

			reconstructor, err := graft.Dep[*chain.Reconstructor](ctx)
			if err != nil {
				return nil, err
			}

			clk, err := graft.Dep[ports.Clock](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(store, reconstructor, clk, log), nil
		},
	})
}
