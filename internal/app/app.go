// Package app implements the application layer for cxpack.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/cxpack/internal/core/domain"
	"go.trai.ch/cxpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// PackageComposer assembles a provisioning package from a validated spec.
type PackageComposer interface {
	Compose(ctx context.Context, spec domain.PackageSpec) (string, error)
	// Statuses reports the item states of the last Compose call.
	Statuses() map[string]domain.ItemStatus
}

// DigestFunc renders a file hash as a digest string.
type DigestFunc func(sum uint64) string

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	composer     PackageComposer
	hasher       ports.Hasher
	digest       DigestFunc
	stores       ports.PackageStoreOpener
	reader       ports.ArchiveReader
	telemetry    ports.Telemetry
	logger       ports.Logger
	now          func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	composer PackageComposer,
	hasher ports.Hasher,
	digest DigestFunc,
	stores ports.PackageStoreOpener,
	reader ports.ArchiveReader,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		composer:     composer,
		hasher:       hasher,
		digest:       digest,
		stores:       stores,
		reader:       reader,
		telemetry:    telemetry,
		logger:       log,
		now:          time.Now,
	}
}

// WithClock replaces the clock used to timestamp history records.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// RunOptions overrides values read from the configuration file.
// Zero values keep the configured value.
type RunOptions struct {
	Root         string
	DestDir      string
	DestFileName string
	SkipCleanUp  bool
	Parallelism  int
}

func (o RunOptions) apply(spec *domain.PackageSpec) error {
	if o.Root != "" {
		root, err := filepath.Abs(o.Root)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve workspace root"), "root", o.Root)
		}
		spec.WorkspaceRoot = root
	}
	if o.DestDir != "" {
		spec.DestDir = o.DestDir
	}
	if o.DestFileName != "" {
		spec.DestFileName = o.DestFileName
	}
	if o.SkipCleanUp {
		spec.SkipCleanUp = true
	}
	if o.Parallelism > 0 {
		spec.Parallelism = o.Parallelism
	}
	return nil
}

// Run builds the package described by the configuration at configPath and
// records it in the workspace's package history. It returns the package path.
func (a *App) Run(ctx context.Context, configPath string, opts RunOptions) (string, error) {
	defer func() {
		_ = a.telemetry.Close()
	}()

	// 1. Load the configuration
	spec, err := a.configLoader.Load(configPath)
	if err != nil {
		return "", zerr.Wrap(err, "failed to load configuration")
	}

	// 2. Apply command line overrides
	if err := opts.apply(spec); err != nil {
		return "", err
	}
	if err := spec.Validate(); err != nil {
		return "", err
	}

	// 3. Compose
	dest, err := a.composer.Compose(ctx, *spec)
	if err != nil {
		a.reportStatuses(spec.Items)
		return "", domain.Tag(domain.ErrPackageBuildFailed, err)
	}

	// 4. Record
	if err := a.record(spec, dest); err != nil {
		a.logger.Warn(fmt.Sprintf("Could not record package history: %v", err))
	}

	return dest, nil
}

// reportStatuses logs how far each item got, in declaration order.
func (a *App) reportStatuses(items []domain.ProvisioningItem) {
	statuses := a.composer.Statuses()
	if len(statuses) == 0 {
		return
	}

	parts := make([]string, 0, len(items))
	for _, item := range items {
		if status, ok := statuses[item.Name]; ok {
			parts = append(parts, fmt.Sprintf("%q %s", item.Name, status))
		}
	}
	a.logger.Warn("Provisioning item statuses: " + strings.Join(parts, ", "))
}

func (a *App) record(spec *domain.PackageSpec, dest string) error {
	sum, err := a.hasher.ComputeFileHash(dest)
	if err != nil {
		return err
	}

	store, err := a.stores.Open(spec.WorkspaceRoot)
	if err != nil {
		return err
	}

	items := make([]string, len(spec.Items))
	for i, item := range spec.Items {
		items[i] = item.Name
	}

	return store.Put(domain.PackageRecord{
		Package:   filepath.Base(dest),
		Path:      dest,
		Digest:    a.digest(sum),
		Items:     items,
		Timestamp: a.now().UTC(),
	})
}

// VerifyOptions selects the package to check and the workspace holding its history.
type VerifyOptions struct {
	Root    string
	Package string
}

// VerifyReport summarizes a verified package.
type VerifyReport struct {
	Package string
	Digest  string
	// Recorded is false when the workspace history has no entry for the package.
	Recorded bool
	Items    []string
}

// Verify checks a package against its recorded digest and its own manifest.
func (a *App) Verify(_ context.Context, opts VerifyOptions) (*VerifyReport, error) {
	pkg, err := filepath.Abs(opts.Package)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve package path"), "package", opts.Package)
	}
	if _, err := os.Stat(pkg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.Tag(domain.ErrResourceNotFound, zerr.With(zerr.Wrap(err, "package not found"), "package", pkg))
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to stat package"), "package", pkg)
	}

	sum, err := a.hasher.ComputeFileHash(pkg)
	if err != nil {
		return nil, err
	}
	report := &VerifyReport{Package: pkg, Digest: a.digest(sum)}

	if err := a.verifyDigest(opts.Root, report); err != nil {
		return nil, err
	}

	items, err := a.verifyManifest(pkg)
	if err != nil {
		return nil, err
	}
	report.Items = items

	return report, nil
}

func (a *App) verifyDigest(root string, report *VerifyReport) error {
	if root == "" {
		root = "."
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve workspace root"), "root", root)
	}

	store, err := a.stores.Open(root)
	if err != nil {
		return err
	}
	record, err := store.Get(filepath.Base(report.Package))
	if err != nil {
		return err
	}
	if record == nil {
		a.logger.Warn("No recorded digest for " + filepath.Base(report.Package))
		return nil
	}

	report.Recorded = true
	if record.Digest != report.Digest {
		err := zerr.With(zerr.New("digest differs from package history"), "recorded", record.Digest)
		return domain.Tag(domain.ErrDigestMismatch, zerr.With(err, "actual", report.Digest))
	}
	return nil
}

func (a *App) verifyManifest(pkg string) ([]string, error) {
	raw, err := a.reader.ReadFile(pkg, domain.ManifestFileName)
	if err != nil {
		return nil, domain.Tag(domain.ErrManifestMismatch, err)
	}

	var manifest domain.Manifest
	if err := json.Unmarshal(raw, &manifest); err != nil {
		return nil, domain.Tag(domain.ErrManifestMismatch, zerr.Wrap(err, "failed to decode manifest"))
	}

	entries, err := a.reader.List(pkg)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, location := range manifest.Locations() {
		if !slices.Contains(entries, location) {
			missing = append(missing, location)
		}
	}
	if len(missing) > 0 {
		err := zerr.With(zerr.New("manifest references missing archives"), "missing", missing)
		return nil, domain.Tag(domain.ErrManifestMismatch, zerr.With(err, "package", pkg))
	}

	items := make([]string, len(manifest.ProvisioningItems))
	for i, item := range manifest.ProvisioningItems {
		items[i] = item.Name
	}
	return items, nil
}
