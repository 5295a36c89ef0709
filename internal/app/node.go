package app

import (
	"context"

	"github.com/crackingshells/hatch-registry/internal/adapters/config"
	"github.com/crackingshells/hatch-registry/internal/adapters/fs"
	"github.com/crackingshells/hatch-registry/internal/adapters/logger"
	"github.com/crackingshells/hatch-registry/internal/adapters/registry"
	"github.com/crackingshells/hatch-registry/internal/adapters/validator"
	"github.com/crackingshells/hatch-registry/internal/core/ports"
	"github.com/crackingshells/hatch-registry/internal/engine/chain"
	"github.com/crackingshells/hatch-registry/internal/engine/writer"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"

	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components. This
// struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	Config *config.Config
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			registry.NodeID,
			validator.NodeID,
			writer.NodeID,
			chain.NodeID,
			fs.ScannerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

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

func runAppNode(ctx context.Context) (*App, error) {
	store, err := graft.Dep[ports.RegistryStore](ctx)
	if err != nil {
		return nil, err
	}

	val, err := graft.Dep[ports.PackageValidator](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[*writer.Writer](ctx)
	if err != nil {
		return nil, err
	}

	reconstructor, err := graft.Dep[*chain.Reconstructor](ctx)
	if err != nil {
		return nil, err
	}

	scanner, err := graft.Dep[ports.ArtifactScanner](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(store, val, w, reconstructor, scanner, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*config.Config](ctx)
	if err != nil {
		return nil, err
	}

	if cfg.JSONLogs {
		if l, ok := log.(*logger.Logger); ok {
			l.SetJSON(true)
		}
	}

	return &Components{
		App:    a,
		Logger: log,
		Config: cfg,
	}, nil
}
