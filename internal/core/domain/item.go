package domain

import (
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// ItemType tags the kind of a provisioning item.
type ItemType string

const (
	// ItemTypePage is a rich page item rendered from a web application build.
	ItemTypePage ItemType = "page"
)

// CatalogItemType is the item type recorded in the manifest for every built item.
const CatalogItemType = "catalog"

// DefaultIndexFileName is the entry file of a web application build.
const DefaultIndexFileName = "index.html"

// ItemTypes lists every item type the engine knows how to build.
func ItemTypes() []ItemType {
	return []ItemType{ItemTypePage}
}

// ParseItemType converts a configuration value into an ItemType.
func ParseItemType(s string) (ItemType, error) {
	for _, t := range ItemTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", Tag(ErrUnknownItemType, zerr.With(zerr.New("no builder for item type"), "item_type", s))
}

// String returns the type tag.
func (t ItemType) String() string {
	return string(t)
}

// ProvisioningItem describes one unit of content to package.
// Paths are relative to the workspace root unless absolute.
type ProvisioningItem struct {
	Type               ItemType
	Name               string
	EntryFile          string
	Icon               string
	BuiltSources       string
	ModelDocument      string
	Locales            []string
	BuiltIndexFileName string
	// LocaleLayout is a path pattern locating a locale's index file below BuiltSources.
	// Empty means the builder's default layout.
	LocaleLayout string
}

var whitespace = regexp.MustCompile(`\s+`)

// Slug returns the item name with every run of whitespace replaced by a hyphen.
func (i ProvisioningItem) Slug() string {
	return whitespace.ReplaceAllString(i.Name, "-")
}

// StagingName is the base name used for the item's staging directory and archive.
func (i ProvisioningItem) StagingName() string {
	return i.Slug() + "-" + i.Type.String()
}

// ArchiveName is the item's archive file name inside the package.
func (i ProvisioningItem) ArchiveName() string {
	return i.StagingName() + ".zip"
}

// IndexFileName returns the name of the built index file, defaulting to index.html.
func (i ProvisioningItem) IndexFileName() string {
	if strings.TrimSpace(i.BuiltIndexFileName) == "" {
		return DefaultIndexFileName
	}
	return i.BuiltIndexFileName
}

// IsLocalized reports whether the item declares at least one locale.
func (i ProvisioningItem) IsLocalized() bool {
	return len(i.Locales) > 0
}

// CheckName rejects names whose staging name is not a plain file name,
// such as names containing path separators.
func (i ProvisioningItem) CheckName() error {
	name := i.StagingName()
	if strings.ContainsAny(i.Name, `/\`) || !filepath.IsLocal(name) || filepath.Base(name) != name {
		return Tag(ErrInvalidItemName, zerr.With(zerr.New("item name must be usable as a file name"), "item", i.Name))
	}
	return nil
}
