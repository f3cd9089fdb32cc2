// Package page builds rich page provisioning items from a web application build.
package page

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/cxpack/internal/core/domain"
	"go.trai.ch/cxpack/internal/core/ports"
	"go.trai.ch/cxpack/internal/engine/model"
	"go.trai.ch/zerr"
)

const (
	// ModelFileName is the name of the edited model document inside the item.
	ModelFileName = "model.xml"
	// ItemRootVar is the host variable resolving to the item's installed location.
	ItemRootVar = "$(itemRoot)"

	srcProperty       = "src"
	thumbnailProperty = "thumbnailUrl"
)

var _ ports.ItemBuilder = (*Builder)(nil)

// LayoutFactory returns the locale layout described by a path pattern.
type LayoutFactory func(pattern string) ports.LocaleLayout

// Builder produces the staging directory of a page item.
type Builder struct {
	copier   ports.TreeCopier
	verifier ports.PathVerifier
	layout   ports.LocaleLayout
	layouts  LayoutFactory
	logger   ports.Logger
}

// NewBuilder creates a page builder. layouts may be nil, in which case per-item
// layout patterns are ignored and layout is always used.
func NewBuilder(
	copier ports.TreeCopier,
	verifier ports.PathVerifier,
	layout ports.LocaleLayout,
	layouts LayoutFactory,
	logger ports.Logger,
) *Builder {
	return &Builder{
		copier:   copier,
		verifier: verifier,
		layout:   layout,
		layouts:  layouts,
		logger:   logger,
	}
}

type itemPaths struct {
	entryFile    string
	icon         string
	model        string
	builtSources string
}

type indexFile struct {
	locale string
	path   string
	dir    string
}

// Build writes the page item into req.StagingDir.
func (b *Builder) Build(ctx context.Context, req ports.ItemBuildRequest) error {
	item := req.Item
	paths := resolvePaths(req)

	if err := b.checkExists(item, paths.entryFile, paths.icon, paths.model, paths.builtSources); err != nil {
		return err
	}

	indexes, err := b.resolveIndexes(item, paths.builtSources)
	if err != nil {
		return err
	}
	indexPaths := make([]string, 0, len(indexes))
	for _, idx := range indexes {
		indexPaths = append(indexPaths, idx.path)
	}
	if err := b.checkExists(item, indexPaths...); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	progress(ctx, "copying built sources")
	skip := make(map[string]struct{}, len(indexPaths))
	for _, p := range indexPaths {
		skip[p] = struct{}{}
	}
	err = b.copier.CopyTree(paths.builtSources, req.StagingDir, func(p string) bool {
		_, ok := skip[filepath.Clean(p)]
		return ok
	})
	if err != nil {
		return domain.With(err, "item", item.Name)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	progress(ctx, "rendering entry file")
	entryName, err := b.writeEntryFile(item, paths.entryFile, indexes, req.StagingDir)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	iconName := filepath.Base(paths.icon)
	if err := b.copier.CopyFile(paths.icon, filepath.Join(req.StagingDir, iconName)); err != nil {
		return domain.With(err, "item", item.Name)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	progress(ctx, "updating model document")
	if err := writeModel(item, paths.model, entryName, iconName, req.StagingDir); err != nil {
		return err
	}

	b.logger.Debug(fmt.Sprintf("Staged page item %q with %d index file(s) in %s", item.Name, len(indexes), req.StagingDir))
	return nil
}

func resolvePaths(req ports.ItemBuildRequest) itemPaths {
	return itemPaths{
		entryFile:    resolve(req.WorkspaceRoot, req.Item.EntryFile),
		icon:         resolve(req.WorkspaceRoot, req.Item.Icon),
		model:        resolve(req.WorkspaceRoot, req.Item.ModelDocument),
		builtSources: resolve(req.WorkspaceRoot, req.Item.BuiltSources),
	}
}

func resolve(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}

func (b *Builder) checkExists(item domain.ProvisioningItem, paths ...string) error {
	missing, err := b.verifier.MissingPaths(paths...)
	if err != nil {
		return domain.With(err, "item", item.Name)
	}
	if len(missing) > 0 {
		err := zerr.With(zerr.New("declared resources do not exist"), "item", item.Name)
		err = zerr.With(err, "missing", strings.Join(missing, ", "))
		return domain.Tag(domain.ErrResourceNotFound, err)
	}
	return nil
}

func (b *Builder) resolveIndexes(item domain.ProvisioningItem, builtSources string) ([]indexFile, error) {
	indexName := item.IndexFileName()
	if !item.IsLocalized() {
		return []indexFile{{path: filepath.Join(builtSources, indexName)}}, nil
	}

	layout := b.layout
	if item.LocaleLayout != "" && b.layouts != nil {
		layout = b.layouts(item.LocaleLayout)
	}

	indexes := make([]indexFile, 0, len(item.Locales))
	for _, locale := range item.Locales {
		p := filepath.Clean(layout.IndexFile(builtSources, locale, indexName))
		rel, err := filepath.Rel(builtSources, filepath.Dir(p))
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return nil, domain.Tag(domain.ErrInvalidConfig, zerr.With(
				zerr.With(zerr.New("locale index file is outside of the built sources"), "item", item.Name),
				"locale", locale,
			))
		}
		dir := filepath.ToSlash(rel)
		if dir == "." {
			dir = ""
		}
		indexes = append(indexes, indexFile{locale: locale, path: p, dir: dir})
	}
	return indexes, nil
}

func (b *Builder) writeEntryFile(item domain.ProvisioningItem, entryFile string, indexes []indexFile, stagingDir string) (string, error) {
	blocks := make([]LocaleBlock, 0, len(indexes))
	for _, idx := range indexes {
		tags, err := extractFile(idx.path, idx.dir)
		if err != nil {
			return "", domain.With(domain.With(err, "item", item.Name), "path", idx.path)
		}
		blocks = append(blocks, LocaleBlock{Locale: idx.locale, Dir: idx.dir, Tags: tags})
	}

	fragments, err := Render(blocks)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to render entry fragments"), "item", item.Name)
	}

	template, err := os.ReadFile(entryFile) //nolint:gosec // Path comes from the package configuration
	if err != nil {
		return "", domain.Tag(domain.ErrResourceNotFound, zerr.With(zerr.Wrap(err, "failed to read entry file"), "path", entryFile))
	}

	name := filepath.Base(entryFile)
	dest := filepath.Join(stagingDir, name)
	if err := os.WriteFile(dest, []byte(fragments.Apply(string(template))), 0o600); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to write entry file"), "path", dest)
	}
	return name, nil
}

func extractFile(path, prefix string) (Tags, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from the package configuration
	if err != nil {
		return Tags{}, domain.Tag(domain.ErrResourceNotFound, zerr.Wrap(err, "failed to open index file"))
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	return Extract(f, prefix)
}

func writeModel(item domain.ProvisioningItem, modelPath, entryName, iconName, stagingDir string) error {
	doc, err := model.Load(modelPath)
	if err != nil {
		return domain.With(err, "item", item.Name)
	}

	catalog, err := doc.Catalog()
	if err != nil {
		return domain.With(domain.With(err, "item", item.Name), "path", modelPath)
	}

	props := catalog.Page().EnsureProperties()
	props.Upsert(srcProperty, ItemRootVar+"/"+entryName)
	props.Upsert(thumbnailProperty, ItemRootVar+"/"+iconName)

	return doc.WriteFile(filepath.Join(stagingDir, ModelFileName))
}

func progress(ctx context.Context, msg string) {
	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Log(domain.LogLevelDebug, msg)
	}
}
