package commands_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cxpack/cmd/cxpack/commands"
	"go.trai.ch/cxpack/internal/app"
	"go.trai.ch/cxpack/internal/build"
)

type mockApp struct {
	runFunc    func(ctx context.Context, configPath string, opts app.RunOptions) (string, error)
	verifyFunc func(ctx context.Context, opts app.VerifyOptions) (*app.VerifyReport, error)
}

func (m *mockApp) Run(ctx context.Context, configPath string, opts app.RunOptions) (string, error) {
	if m.runFunc != nil {
		return m.runFunc(ctx, configPath, opts)
	}
	return "", nil
}

func (m *mockApp) Verify(ctx context.Context, opts app.VerifyOptions) (*app.VerifyReport, error) {
	if m.verifyFunc != nil {
		return m.verifyFunc(ctx, opts)
	}
	return &app.VerifyReport{}, nil
}

type logSettings struct {
	verbose bool
	json    bool
}

func (l *logSettings) SetVerbose(verbose bool) { l.verbose = verbose }
func (l *logSettings) SetJSON(enable bool)     { l.json = enable }

func TestCommands_Package(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.RunOptions
		var capturedConfig string

		mock := &mockApp{
			runFunc: func(_ context.Context, configPath string, opts app.RunOptions) (string, error) {
				capturedConfig = configPath
				capturedOpts = opts
				return "/ws/dist/catalog.zip", nil
			},
		}

		cli := commands.New(mock)
		out := new(bytes.Buffer)
		cli.SetOutput(out, new(bytes.Buffer))
		cli.SetArgs([]string{
			"package", "-c", "conf/cxpack.yaml", "--root", "/ws", "--dest-dir", "out",
			"--dest-file", "bundle.zip", "--skip-cleanup", "-j", "3",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "conf/cxpack.yaml", capturedConfig)
		assert.Equal(t, app.RunOptions{
			Root:         "/ws",
			DestDir:      "out",
			DestFileName: "bundle.zip",
			SkipCleanUp:  true,
			Parallelism:  3,
		}, capturedOpts)
		assert.Equal(t, "/ws/dist/catalog.zip\n", out.String())
	})

	t.Run("defaults config to working directory", func(t *testing.T) {
		var capturedConfig string
		mock := &mockApp{
			runFunc: func(_ context.Context, configPath string, _ app.RunOptions) (string, error) {
				capturedConfig = configPath
				return "", nil
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"package"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, ".", capturedConfig)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(context.Context, string, app.RunOptions) (string, error) {
				return "", errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"package"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(context.Context, string, app.RunOptions) (string, error) {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"package", "extra"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_LogFlags(t *testing.T) {
	ls := &logSettings{}
	cli := commands.New(&mockApp{}, commands.WithLogSettings(ls))
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"package", "--verbose", "--log-json"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, ls.verbose)
	assert.True(t, ls.json)
}

func TestCommands_Verify(t *testing.T) {
	t.Run("derives root from config file", func(t *testing.T) {
		var captured app.VerifyOptions
		mock := &mockApp{
			verifyFunc: func(_ context.Context, opts app.VerifyOptions) (*app.VerifyReport, error) {
				captured = opts
				return &app.VerifyReport{
					Package:  "/ws/dist/catalog.zip",
					Digest:   "00000000000000ff",
					Recorded: true,
					Items:    []string{"A", "B"},
				}, nil
			},
		}

		cli := commands.New(mock)
		out := new(bytes.Buffer)
		cli.SetOutput(out, new(bytes.Buffer))
		cli.SetArgs([]string{"verify", "dist/catalog.zip", "-c", filepath.Join("ws", "cxpack.yaml")})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.VerifyOptions{Root: "ws", Package: "dist/catalog.zip"}, captured)
		assert.Equal(t, "/ws/dist/catalog.zip: ok (recorded digest 00000000000000ff, 2 items)\n", out.String())
	})

	t.Run("explicit root wins", func(t *testing.T) {
		var captured app.VerifyOptions
		mock := &mockApp{
			verifyFunc: func(_ context.Context, opts app.VerifyOptions) (*app.VerifyReport, error) {
				captured = opts
				return &app.VerifyReport{}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"verify", "catalog.zip", "--root", "/elsewhere"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "/elsewhere", captured.Root)
	})

	t.Run("requires a package argument", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"verify"})

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
