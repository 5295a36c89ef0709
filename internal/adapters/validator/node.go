package validator

import (
	"context"

	"github.com/crackingshells/hatch-registry/internal/adapters/config"
	"github.com/crackingshells/hatch-registry/internal/adapters/fs"
	"github.com/crackingshells/hatch-registry/internal/adapters/registry"
	"github.com/crackingshells/hatch-registry/internal/core/ports"
	"github.com/crackingshells/hatch-registry/internal/engine/chain"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the package validator Graft node.
const NodeID graft.ID = "adapter.package_validator"

func init() {
	graft.Register(graft.Node[ports.PackageValidator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			registry.NodeID,
			fs.LoaderNodeID,
			chain.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (ports.PackageValidator, error) {
			store, err := graft.Dep[ports.RegistryStore](ctx)
			if err != nil {
				return nil, err
			}

			loader, err := graft.Dep[ports.MetadataLoader](ctx)
			if err != nil {
				return nil, err
			}

			reconstructor, err := graft.Dep[*chain.Reconstructor](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}

			return New(store, loader, reconstructor, cfg.MetadataFile), nil
		},
	})
}
