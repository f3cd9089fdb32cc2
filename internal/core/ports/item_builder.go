package ports

import (
	"context"

	"go.trai.ch/cxpack/internal/core/domain"
)

// ItemBuildRequest carries everything a builder needs for one item.
type ItemBuildRequest struct {
	Item domain.ProvisioningItem
	// StagingDir is an empty directory owned by this build.
	StagingDir string
	// WorkspaceRoot resolves the item's relative paths.
	WorkspaceRoot string
}

// ItemBuilder turns one provisioning item into a directory ready for archiving.
//
//go:generate go run go.uber.org/mock/mockgen -source=item_builder.go -destination=mocks/mock_item_builder.go -package=mocks
type ItemBuilder interface {
	Build(ctx context.Context, req ItemBuildRequest) error
}

// ItemBuilderFunc adapts a function to ItemBuilder.
type ItemBuilderFunc func(ctx context.Context, req ItemBuildRequest) error

// Build calls f.
func (f ItemBuilderFunc) Build(ctx context.Context, req ItemBuildRequest) error {
	return f(ctx, req)
}
