package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cxpack/internal/core/ports"
)

// NodeID is the unique identifier for the package history Graft node.
const NodeID graft.ID = "adapter.package_store"

func init() {
	graft.Register(graft.Node[ports.PackageStoreOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PackageStoreOpener, error) {
			return Opener{}, nil
		},
	})
}
