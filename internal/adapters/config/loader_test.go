package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cxpack/internal/adapters/config"
	"go.trai.ch/cxpack/internal/core/domain"
	"go.trai.ch/cxpack/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, config.DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	path := writeConfig(t, `
destDir: out
destFileName: catalog.zip
skipCleanUp: true
parallelism: 2
items:
  - type: page
    name: My Page
    entryFile: src/entry.html
    icon: src/icon.png
    builtSources: dist/my-page
    modelXml: src/model.xml
    locales: [en, fr]
    builtIndexFileName: main.html
    localeLayout: "i18n/{locale}/{index}"
`)

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	spec, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Dir(path), spec.WorkspaceRoot)
	assert.Equal(t, "out", spec.DestDir)
	assert.Equal(t, "catalog.zip", spec.DestFileName)
	assert.True(t, spec.SkipCleanUp)
	assert.Equal(t, 2, spec.Parallelism)
	require.Len(t, spec.Items, 1)
	assert.Equal(t, domain.ProvisioningItem{
		Type:               domain.ItemTypePage,
		Name:               "My Page",
		EntryFile:          "src/entry.html",
		Icon:               "src/icon.png",
		BuiltSources:       "dist/my-page",
		ModelDocument:      "src/model.xml",
		Locales:            []string{"en", "fr"},
		BuiltIndexFileName: "main.html",
		LocaleLayout:       "i18n/{locale}/{index}",
	}, spec.Items[0])
}

func TestLoad_DirectoryAndDefaults(t *testing.T) {
	path := writeConfig(t, `
destFileName: catalog.zip
items:
  - type: page
    name: Home
    entryFile: e.html
    icon: i.png
    builtSources: dist
    modelXml: m.xml
`)

	ctrl := gomock.NewController(t)
	spec, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(filepath.Dir(path))
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultDestDir, spec.DestDir)
	assert.False(t, spec.SkipCleanUp)
	assert.Zero(t, spec.Parallelism)
	assert.Nil(t, spec.Items[0].Locales)
}

func TestLoad_RepeatedLocalesWarn(t *testing.T) {
	path := writeConfig(t, `
destFileName: catalog.zip
items:
  - type: page
    name: Home
    entryFile: e.html
    icon: i.png
    builtSources: dist
    modelXml: m.xml
    locales: [en, " fr", en]
`)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	spec, err := config.NewLoader(log).Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "fr"}, spec.Items[0].Locales)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		sentinel error
	}{
		{
			name:     "syntax error",
			content:  "items: [",
			sentinel: domain.ErrConfigParseFailed,
		},
		{
			name:     "unknown field",
			content:  "destFileName: a.zip\nbogus: true\n",
			sentinel: domain.ErrConfigParseFailed,
		},
		{
			name: "unknown item type",
			content: `
destFileName: a.zip
items:
  - {type: widget, name: W, entryFile: e, icon: i, builtSources: d, modelXml: m}
`,
			sentinel: domain.ErrUnknownItemType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			ctrl := gomock.NewController(t)

			_, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestLoad_LeavesCompletenessToCaller(t *testing.T) {
	path := writeConfig(t, `
items:
  - {type: page, name: A, entryFile: e, icon: i, builtSources: d, modelXml: m}
  - {type: page, name: A, entryFile: e, icon: i, builtSources: d, modelXml: m}
`)
	ctrl := gomock.NewController(t)

	spec, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(path)
	require.NoError(t, err)
	assert.Empty(t, spec.DestFileName)
	assert.Len(t, spec.Items, 2)

	err = spec.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingField)
	assert.ErrorIs(t, err, domain.ErrDuplicateItemName)
}
