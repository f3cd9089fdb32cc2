package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cxpack/internal/core/domain"
)

func TestParseItemType(t *testing.T) {
	typ, err := domain.ParseItemType("page")
	require.NoError(t, err)
	assert.Equal(t, domain.ItemTypePage, typ)

	_, err = domain.ParseItemType("widget")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownItemType))
}

func TestProvisioningItem_Names(t *testing.T) {
	item := domain.ProvisioningItem{Type: domain.ItemTypePage, Name: "My  landing\tpage"}

	assert.Equal(t, "My-landing-page", item.Slug())
	assert.Equal(t, "My-landing-page-page", item.StagingName())
	assert.Equal(t, "My-landing-page-page.zip", item.ArchiveName())
}

func TestProvisioningItem_IndexFileName(t *testing.T) {
	assert.Equal(t, "index.html", domain.ProvisioningItem{}.IndexFileName())
	assert.Equal(t, "main.html", domain.ProvisioningItem{BuiltIndexFileName: "main.html"}.IndexFileName())
}

func TestNewManifest_KeepsOrder(t *testing.T) {
	items := []domain.BuiltItem{
		{Name: "B", ItemType: domain.CatalogItemType, Location: "B-page.zip"},
		{Name: "A", ItemType: domain.CatalogItemType, Location: "A-page.zip"},
	}

	m := domain.NewManifest(items)
	items[0].Name = "mutated"

	assert.Equal(t, "catalog", m.Name)
	assert.Equal(t, []string{"B-page.zip", "A-page.zip"}, m.Locations())
	assert.Equal(t, "B", m.ProvisioningItems[0].Name)
}
