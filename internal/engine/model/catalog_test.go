package model_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cxpack/internal/core/domain"
	"go.trai.ch/cxpack/internal/engine/model"
)

const pageModel = `<?xml version="1.0" encoding="UTF-8"?>
<!-- page item -->
<catalog type="page">
  <page>
    <properties>
      <property name="title"><value type="string">Dashboard</value></property>
    </properties>
  </page>
</catalog>
`

func TestCatalog_Upsert(t *testing.T) {
	doc, err := model.ParseString(pageModel)
	require.NoError(t, err)

	catalog, err := doc.Catalog()
	require.NoError(t, err)

	props := catalog.Page().EnsureProperties()
	props.Upsert("src", "$(itemRoot)/entry.html")
	props.Upsert("thumbnailUrl", "$(itemRoot)/icon.png")

	src, ok := props.Property("src")
	require.True(t, ok)
	assert.Equal(t, "src", src.Name())
	value, ok := src.Value()
	require.True(t, ok)
	assert.Equal(t, "string", value.Type())
	assert.Equal(t, "$(itemRoot)/entry.html", value.Text())

	names := make([]string, 0, 3)
	for _, p := range props.All() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"title", "src", "thumbnailUrl"}, names)
}

func TestCatalog_Upsert_Idempotent(t *testing.T) {
	doc, err := model.ParseString(pageModel)
	require.NoError(t, err)

	apply := func() {
		catalog, err := doc.Catalog()
		require.NoError(t, err)
		catalog.Page().EnsureProperties().Upsert("src", "$(itemRoot)/entry.html")
	}

	apply()
	once := string(doc.Bytes())
	apply()
	assert.Equal(t, once, string(doc.Bytes()))
	assert.Equal(t, 1, strings.Count(once, `name="src"`))
}

func TestCatalog_Upsert_ReplacesExistingValue(t *testing.T) {
	doc, err := model.ParseString(`<catalog><page><properties>` +
		`<property name="src"><value type="url">old.html</value></property>` +
		`<property name="SRC"/>` +
		`</properties></page></catalog>`)
	require.NoError(t, err)

	catalog, err := doc.Catalog()
	require.NoError(t, err)
	catalog.Page().EnsureProperties().Upsert("src", "new.html")

	assert.Equal(t,
		`<catalog><page><properties>`+
			`<property name="src"><value type="string">new.html</value></property>`+
			`<property name="SRC"/>`+
			`</properties></page></catalog>`,
		string(doc.Bytes()))
}

func TestCatalog_Upsert_CreatesValueChild(t *testing.T) {
	doc, err := model.ParseString(`<catalog><page><properties><property name="src"/></properties></page></catalog>`)
	require.NoError(t, err)

	catalog, err := doc.Catalog()
	require.NoError(t, err)
	catalog.Page().EnsureProperties().Upsert("src", "a&b")

	assert.Equal(t,
		`<catalog><page><properties><property name="src"><value type="string">a&amp;b</value></property></properties></page></catalog>`,
		string(doc.Bytes()))
}

func TestPage_EnsureProperties(t *testing.T) {
	doc, err := model.ParseString(`<catalog><page id="p"/></catalog>`)
	require.NoError(t, err)

	catalog, err := doc.Catalog()
	require.NoError(t, err)

	_, ok := catalog.Page().Properties()
	assert.False(t, ok)

	first := catalog.Page().EnsureProperties()
	second := catalog.Page().EnsureProperties()
	assert.Same(t, first.Element(), second.Element())
	assert.Equal(t, `<catalog><page id="p"><properties/></page></catalog>`, string(doc.Bytes()))
}

func TestDocument_Catalog_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sentinel error
	}{
		{name: "wrong root", input: `<widget><page/></widget>`, sentinel: domain.ErrMalformedModel},
		{name: "missing page", input: `<catalog><properties/></catalog>`, sentinel: domain.ErrMissingPageElement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := model.ParseString(tt.input)
			require.NoError(t, err)

			_, err = doc.Catalog()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.ErrorIs(t, err, domain.ErrMalformedDocument)
		})
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "model.xml")
	require.NoError(t, os.WriteFile(path, []byte(pageModel), 0o600))

	doc, err := model.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "catalog", doc.Root.Tag())

	out := filepath.Join(tmpDir, "out.xml")
	require.NoError(t, doc.WriteFile(out))
	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, pageModel, string(content))

	_, err = model.Load(filepath.Join(tmpDir, "missing.xml"))
	assert.ErrorIs(t, err, domain.ErrResourceNotFound)
}
