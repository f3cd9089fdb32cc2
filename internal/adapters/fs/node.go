package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cxpack/internal/core/ports"
)

const (
	WalkerNodeID    graft.ID = "adapter.fs.walker"
	AllocatorNodeID graft.ID = "adapter.fs.allocator"
	CopierNodeID    graft.ID = "adapter.fs.copier"
	VerifierNodeID  graft.ID = "adapter.fs.verifier"
	LayoutNodeID    graft.ID = "adapter.fs.layout"
	HasherNodeID    graft.ID = "adapter.fs.hasher"
)

func init() {
	// Walker Node (Concrete implementation needed by Copier)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.WorkspaceAllocator]{
		ID:        AllocatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.WorkspaceAllocator, error) {
			return NewAllocator(), nil
		},
	})

	graft.Register(graft.Node[ports.TreeCopier]{
		ID:        CopierNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.TreeCopier, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewCopier(walker), nil
		},
	})

	graft.Register(graft.Node[ports.PathVerifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PathVerifier, error) {
			return NewVerifier(), nil
		},
	})

	graft.Register(graft.Node[ports.LocaleLayout]{
		ID:        LayoutNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LocaleLayout, error) {
			return PatternLayout(DefaultLocalePattern), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
