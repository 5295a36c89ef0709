package registry

import (
	"context"

	"github.com/crackingshells/hatch-registry/internal/adapters/clock"
	"github.com/crackingshells/hatch-registry/internal/adapters/config"
	"github.com/crackingshells/hatch-registry/internal/adapters/logger"
	"github.com/crackingshells/hatch-registry/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the registry store Graft node.
const NodeID graft.ID = "adapter.registry_store"

func init() {
	graft.Register(graft.Node[ports.RegistryStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			clock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.RegistryStore, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
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

			return NewStore(cfg.RegistryPath, clk, log)
		},
	})
}
