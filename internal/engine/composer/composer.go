// Package composer assembles provisioning packages from concurrently built items.
package composer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"go.trai.ch/cxpack/internal/core/domain"
	"go.trai.ch/cxpack/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	// ContentDirName is the workspace directory holding the package content.
	ContentDirName = "zoz"

	contentDirSuffix = "-content"
	workspaceSuffix  = ".tmp"
)

// Composer builds provisioning items and packs them into a single archive.
type Composer struct {
	allocator ports.WorkspaceAllocator
	archiver  ports.Archiver
	telemetry ports.Telemetry
	logger    ports.Logger
	builders  map[domain.ItemType]ports.ItemBuilder
	removeAll func(path string) error

	mu       sync.RWMutex
	statuses map[string]domain.ItemStatus
}

// NewComposer creates a Composer without any registered item builders.
func NewComposer(
	allocator ports.WorkspaceAllocator,
	archiver ports.Archiver,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Composer {
	return &Composer{
		allocator: allocator,
		archiver:  archiver,
		telemetry: telemetry,
		logger:    logger,
		builders:  make(map[domain.ItemType]ports.ItemBuilder),
		removeAll: os.RemoveAll,
		statuses:  make(map[string]domain.ItemStatus),
	}
}

// Register installs the builder for an item type, replacing any previous one.
func (c *Composer) Register(itemType domain.ItemType, builder ports.ItemBuilder) {
	c.builders[itemType] = builder
}

// Statuses returns a snapshot of the item statuses of the last Compose call.
func (c *Composer) Statuses() map[string]domain.ItemStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]domain.ItemStatus, len(c.statuses))
	for k, v := range c.statuses {
		out[k] = v
	}
	return out
}

func (c *Composer) setStatus(name string, status domain.ItemStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.statuses[name] = status
}

// abortPending marks every item that has not reached a terminal state as aborted.
func (c *Composer) abortPending() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for name, status := range c.statuses {
		if !status.IsTerminal() {
			c.statuses[name] = domain.ItemStatusAborted
		}
	}
}

// Compose builds every item of spec and writes the package to
// <DestDir>/<DestFileName>. It returns the absolute package path. When any item
// fails no package file is written.
func (c *Composer) Compose(ctx context.Context, spec domain.PackageSpec) (string, error) {
	for _, item := range spec.Items {
		if err := item.CheckName(); err != nil {
			return "", domain.Tag(domain.ErrInvalidConfig, err)
		}
	}

	builders, err := c.resolveBuilders(spec.Items)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.statuses = make(map[string]domain.ItemStatus, len(spec.Items))
	for _, item := range spec.Items {
		c.statuses[item.Name] = domain.ItemStatusPending
	}
	c.mu.Unlock()

	destDir, err := filepath.Abs(resolve(spec.WorkspaceRoot, destDirOf(spec)))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve destination directory"), "path", spec.DestDir)
	}
	if err := os.MkdirAll(destDir, 0o750); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create destination directory"), "path", destDir)
	}

	workspace, err := c.allocator.Allocate(destDir, spec.DestFileName+workspaceSuffix)
	if err != nil {
		return "", err
	}

	dest, err := c.assemble(ctx, spec, workspace, destDir, builders)
	c.cleanup(workspace, spec.SkipCleanUp)
	if err != nil {
		return "", err
	}

	c.logger.Info("Created provisioning package: " + dest)
	return dest, nil
}

func (c *Composer) assemble(
	ctx context.Context,
	spec domain.PackageSpec,
	workspace, destDir string,
	builders []ports.ItemBuilder,
) (string, error) {
	built, err := c.buildItems(ctx, spec, workspace, builders)
	if err != nil {
		return "", err
	}

	manifest := domain.NewManifest(built)

	contentDir := filepath.Join(workspace, ContentDirName, spec.DestFileName+contentDirSuffix)
	if err := os.MkdirAll(contentDir, 0o750); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create package content directory"), "path", contentDir)
	}

	if err := writeManifest(filepath.Join(contentDir, domain.ManifestFileName), manifest); err != nil {
		return "", err
	}

	for _, item := range built {
		src := filepath.Join(workspace, item.ArchiveFileName)
		dst := filepath.Join(contentDir, item.Location)
		if err := os.Rename(src, dst); err != nil {
			return "", zerr.With(zerr.With(zerr.Wrap(err, "failed to move item archive"), "item", item.Name), "path", src)
		}
	}

	dest := filepath.Join(destDir, spec.DestFileName)
	if err := c.archiver.Archive(contentDir, dest); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to archive package"), "package", spec.DestFileName)
	}
	return dest, nil
}

func (c *Composer) resolveBuilders(items []domain.ProvisioningItem) ([]ports.ItemBuilder, error) {
	builders := make([]ports.ItemBuilder, len(items))
	for i, item := range items {
		b, ok := c.builders[item.Type]
		if !ok {
			err := zerr.With(zerr.New("no builder for item type"), "item_type", item.Type.String())
			return nil, domain.Tag(domain.ErrUnknownItemType, zerr.With(err, "item", item.Name))
		}
		builders[i] = b
	}
	return builders, nil
}

func (c *Composer) buildItems(
	ctx context.Context,
	spec domain.PackageSpec,
	workspace string,
	builders []ports.ItemBuilder,
) ([]domain.BuiltItem, error) {
	limit := spec.Parallelism
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	results := make([]domain.BuiltItem, len(spec.Items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, item := range spec.Items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				c.setStatus(item.Name, domain.ItemStatusAborted)
				return err
			}

			c.setStatus(item.Name, domain.ItemStatusRunning)
			built, err := c.buildItem(gctx, item, builders[i], workspace, spec.WorkspaceRoot)
			if err != nil {
				if gctx.Err() != nil && errors.Is(err, context.Canceled) {
					c.setStatus(item.Name, domain.ItemStatusAborted)
				} else {
					c.setStatus(item.Name, domain.ItemStatusFailed)
				}
				return domain.Tag(domain.ErrItemBuildFailed, zerr.With(zerr.Wrap(err, "failed to build item"), "item", item.Name))
			}

			c.setStatus(item.Name, domain.ItemStatusCompleted)
			results[i] = built
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		c.abortPending()
		return nil, err
	}
	return results, nil
}

func (c *Composer) buildItem(
	ctx context.Context,
	item domain.ProvisioningItem,
	builder ports.ItemBuilder,
	workspace, workspaceRoot string,
) (built domain.BuiltItem, err error) {
	ctx, vertex := c.telemetry.Record(ctx, item.Name)
	defer func() { vertex.Complete(err) }()

	staging, err := c.allocator.Allocate(workspace, item.StagingName())
	if err != nil {
		return domain.BuiltItem{}, err
	}
	if rel, relErr := filepath.Rel(workspace, staging); relErr != nil || rel != filepath.Base(staging) {
		err := zerr.With(zerr.New("staging directory is outside the package workspace"), "path", staging)
		return domain.BuiltItem{}, domain.Tag(domain.ErrWorkspaceAllocation, err)
	}
	archiveName := filepath.Base(staging) + ".zip"

	c.logger.Debug(fmt.Sprintf("Creating provisioning item %q as %s...", item.Name, archiveName))

	req := ports.ItemBuildRequest{
		Item:          item,
		StagingDir:    staging,
		WorkspaceRoot: workspaceRoot,
	}
	if err := builder.Build(ctx, req); err != nil {
		return domain.BuiltItem{}, err
	}

	if err := ctx.Err(); err != nil {
		return domain.BuiltItem{}, err
	}

	vertex.Log(domain.LogLevelDebug, "archiving "+archiveName)
	if err := c.archiver.Archive(staging, filepath.Join(workspace, archiveName)); err != nil {
		return domain.BuiltItem{}, err
	}

	return domain.BuiltItem{
		Name:            item.Name,
		ItemType:        domain.CatalogItemType,
		Location:        item.ArchiveName(),
		ArchiveFileName: archiveName,
	}, nil
}

func writeManifest(path string, manifest domain.Manifest) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(manifest); err != nil {
		return zerr.Wrap(err, "failed to encode manifest")
	}

	data := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write manifest"), "path", path)
	}
	return nil
}

func (c *Composer) cleanup(workspace string, skip bool) {
	if skip {
		c.logger.Debug("Skipping cleaning up tmp dir " + workspace)
		return
	}
	if err := c.removeAll(workspace); err != nil {
		c.logger.Warn(fmt.Sprintf("Error deleting tmp dir %s: %v", workspace, err))
	}
}

func destDirOf(spec domain.PackageSpec) string {
	if spec.DestDir == "" {
		return domain.DefaultDestDir
	}
	return spec.DestDir
}

func resolve(root, p string) string {
	if filepath.IsAbs(p) || root == "" {
		return p
	}
	return filepath.Join(root, p)
}
