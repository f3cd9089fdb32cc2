package domain

// ManifestFileName is the name of the manifest inside a package.
const ManifestFileName = "manifest.json"

// ManifestName is the name every package manifest carries.
const ManifestName = "catalog"

// BuiltItem is the artifact produced by building one provisioning item.
type BuiltItem struct {
	Name     string `json:"name"`
	ItemType string `json:"itemType"`
	// Location is the archive's file name inside the package content directory.
	Location string `json:"location"`
	// ArchiveFileName is the archive's file name inside the package workspace.
	ArchiveFileName string `json:"-"`
}

// Manifest indexes the items contained in a package.
type Manifest struct {
	Name              string      `json:"name"`
	ProvisioningItems []BuiltItem `json:"provisioningItems"`
}

// NewManifest creates a manifest listing items in the given order.
func NewManifest(items []BuiltItem) Manifest {
	listed := make([]BuiltItem, len(items))
	copy(listed, items)
	return Manifest{
		Name:              ManifestName,
		ProvisioningItems: listed,
	}
}

// Locations returns the archive locations referenced by the manifest.
func (m Manifest) Locations() []string {
	locations := make([]string, len(m.ProvisioningItems))
	for i, item := range m.ProvisioningItems {
		locations[i] = item.Location
	}
	return locations
}
