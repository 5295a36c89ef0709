package fs

import (
	"context"

	"github.com/crackingshells/hatch-registry/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// LoaderNodeID is the unique identifier for the metadata loader Graft node.
	LoaderNodeID graft.ID = "adapter.metadata_loader"

	// ScannerNodeID is the unique identifier for the artifact scanner Graft node.
	ScannerNodeID graft.ID = "adapter.artifact_scanner"
)

func init() {
	graft.Register(graft.Node[ports.MetadataLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MetadataLoader, error) {
			return NewLoader(), nil
		},
	})

	graft.Register(graft.Node[ports.ArtifactScanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactScanner, error) {
			return NewScanner(), nil
		},
	})
}
