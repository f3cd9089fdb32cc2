package archive

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cxpack/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the archiver Graft node.
	NodeID graft.ID = "adapter.archive"
	// ReaderNodeID is the unique identifier for the archive reader Graft node.
	ReaderNodeID graft.ID = "adapter.archive.reader"
)

func init() {
	graft.Register(graft.Node[ports.Archiver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Archiver, error) {
			return NewZip(), nil
		},
	})

	graft.Register(graft.Node[ports.ArchiveReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArchiveReader, error) {
			return NewZip(), nil
		},
	})
}
