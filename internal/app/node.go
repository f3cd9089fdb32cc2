package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cxpack/internal/adapters/archive"            //nolint:depguard // Wired in app layer
	"go.trai.ch/cxpack/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/cxpack/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/cxpack/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/cxpack/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/cxpack/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/cxpack/internal/core/ports"
	"go.trai.ch/cxpack/internal/engine/composer"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			composer.NodeID,
			fs.HasherNodeID,
			cas.NodeID,
			archive.ReaderNodeID,
			progrock.NodeID,
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
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	comp, err := graft.Dep[*composer.Composer](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	stores, err := graft.Dep[ports.PackageStoreOpener](ctx)
	if err != nil {
		return nil, err
	}

	reader, err := graft.Dep[ports.ArchiveReader](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, comp, hasher, fs.FormatDigest, stores, reader, telemetry, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}
