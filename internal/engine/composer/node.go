package composer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cxpack/internal/adapters/archive"            //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cxpack/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cxpack/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cxpack/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cxpack/internal/core/domain"
	"go.trai.ch/cxpack/internal/core/ports"
	"go.trai.ch/cxpack/internal/engine/page"
)

// NodeID is the unique identifier for the composer Graft node.
const NodeID graft.ID = "engine.composer"

func init() {
	graft.Register(graft.Node[*Composer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.AllocatorNodeID,
			archive.NodeID,
			progrock.NodeID,
			logger.NodeID,
			page.NodeID,
		},
		Run: func(ctx context.Context) (*Composer, error) {
			allocator, err := graft.Dep[ports.WorkspaceAllocator](ctx)
			if err != nil {
				return nil, err
			}

			archiver, err := graft.Dep[ports.Archiver](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			pageBuilder, err := graft.Dep[*page.Builder](ctx)
			if err != nil {
				return nil, err
			}

			c := NewComposer(allocator, archiver, tel, log)
			c.Register(domain.ItemTypePage, pageBuilder)
			return c, nil
		},
	})
}
