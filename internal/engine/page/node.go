package page

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cxpack/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cxpack/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cxpack/internal/core/ports"
)

// NodeID is the unique identifier for the page builder Graft node.
const NodeID graft.ID = "engine.page"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.CopierNodeID,
			fs.VerifierNodeID,
			fs.LayoutNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			copier, err := graft.Dep[ports.TreeCopier](ctx)
			if err != nil {
				return nil, err
			}

			verifier, err := graft.Dep[ports.PathVerifier](ctx)
			if err != nil {
				return nil, err
			}

			layout, err := graft.Dep[ports.LocaleLayout](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			patterns := func(pattern string) ports.LocaleLayout {
				return fs.PatternLayout(pattern)
			}

			return NewBuilder(copier, verifier, layout, patterns, log), nil
		},
	})
}
