package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cxpack/internal/adapters/fs"
	"go.trai.ch/cxpack/internal/adapters/telemetry"
	"go.trai.ch/cxpack/internal/app"
	"go.trai.ch/cxpack/internal/core/domain"
	"go.trai.ch/cxpack/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTestApp(ctrl *gomock.Controller, loader *mocks.MockConfigLoader, log *mocks.MockLogger) *app.App {
	return app.New(
		loader,
		nil,
		mocks.NewMockHasher(ctrl),
		fs.FormatDigest,
		mocks.NewMockPackageStoreOpener(ctrl),
		mocks.NewMockArchiveReader(ctrl),
		telemetry.NewNoOp(),
		log,
	)
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	application := newTestApp(ctrl, mocks.NewMockConfigLoader(ctrl), mockLogger)

	provider := func(_ context.Context) (*app.Components, error) {
		return &app.Components{App: application, Logger: mockLogger}, nil
	}

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "cxpack version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	application := newTestApp(ctrl, mockLoader, mockLogger)

	provider := func(_ context.Context) (*app.Components, error) {
		return &app.Components{App: application, Logger: mockLogger}, nil
	}

	mockLoader.EXPECT().Load(".").Return(nil, domain.ErrConfigReadFailed)
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrConfigReadFailed)
	})

	exitCode := run(context.Background(), []string{"package"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_PackagesWorkspace runs the fully wired CLI against a real workspace.
func TestRun_PackagesWorkspace(t *testing.T) {
	root := t.TempDir()
	write := func(rel, content string) {
		t.Helper()
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	write("cxpack.yaml", `
destFileName: catalog.zip
items:
  - type: page
    name: Sales
    entryFile: src/entry.html
    icon: src/icon.png
    builtSources: dist/sales
    modelXml: src/model.xml
`)
	write("src/entry.html", "<div>{{styles}}{{scripts}}</div>")
	write("src/icon.png", "png")
	write("src/model.xml", `<catalog><page/></catalog>`)
	write("dist/sales/index.html", `<html><head><link rel="stylesheet" href="styles.css"></head><body><script src="main.js"></script></body></html>`)
	write("dist/sales/styles.css", "body{}")
	write("dist/sales/main.js", "console.log(1)")

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"package", "-c", root}, stdout, stderr, wiredComponents)
	require.Equal(t, 0, exitCode, stderr.String())

	dest := filepath.Join(root, "dist", "provisioning-packages", "catalog.zip")
	assert.Equal(t, dest+"\n", stdout.String())
	assert.FileExists(t, dest)

	exitCode = run(context.Background(), []string{"verify", dest, "-c", root}, stdout, stderr, wiredComponents)
	assert.Equal(t, 0, exitCode, stderr.String())
}
