// Package config loads package definitions from cxpack.yaml files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/cxpack/internal/core/domain"
	"go.trai.ch/cxpack/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load reads the package definition at path. A directory is resolved to the
// cxpack.yaml inside it. Item paths stay relative; the workspace root is the
// directory holding the configuration file.
func (l *Loader) Load(path string) (*domain.PackageSpec, error) {
	path, err := resolveConfigPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, domain.Tag(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path))
	}

	var pf Packagefile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&pf); err != nil && !errors.Is(err, io.EOF) {
		return nil, domain.Tag(domain.ErrConfigParseFailed, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path))
	}

	spec, err := l.toSpec(&pf, filepath.Dir(path))
	if err != nil {
		return nil, domain.With(err, "path", path)
	}
	return spec, nil
}

func resolveConfigPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", domain.Tag(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "failed to resolve config path"), "path", path))
	}
	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		return filepath.Join(abs, DefaultFileName), nil
	}
	return abs, nil
}

func (l *Loader) toSpec(pf *Packagefile, root string) (*domain.PackageSpec, error) {
	spec := &domain.PackageSpec{
		WorkspaceRoot: root,
		DestDir:       pf.DestDir,
		DestFileName:  strings.TrimSpace(pf.DestFileName),
		SkipCleanUp:   pf.SkipCleanUp,
		Parallelism:   pf.Parallelism,
		Items:         make([]domain.ProvisioningItem, 0, len(pf.Items)),
	}
	if spec.DestDir == "" {
		spec.DestDir = domain.DefaultDestDir
	}

	var errs error
	for _, dto := range pf.Items {
		itemType, err := domain.ParseItemType(dto.Type)
		if err != nil {
			errs = errors.Join(errs, domain.With(err, "item", dto.Name))
			continue
		}

		spec.Items = append(spec.Items, domain.ProvisioningItem{
			Type:               itemType,
			Name:               dto.Name,
			EntryFile:          dto.EntryFile,
			Icon:               dto.Icon,
			BuiltSources:       dto.BuiltSources,
			ModelDocument:      dto.ModelXML,
			Locales:            l.canonicalizeLocales(dto.Name, dto.Locales),
			BuiltIndexFileName: dto.BuiltIndexFileName,
			LocaleLayout:       dto.LocaleLayout,
		})
	}
	if errs != nil {
		return nil, domain.Tag(domain.ErrInvalidConfig, errs)
	}
	return spec, nil
}

// canonicalizeLocales trims locale codes and drops repeats, keeping declaration order.
func (l *Loader) canonicalizeLocales(itemName string, locales []string) []string {
	if len(locales) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(locales))
	res := make([]string, 0, len(locales))
	for _, locale := range locales {
		locale = strings.TrimSpace(locale)
		if _, dup := seen[locale]; dup {
			if l.Logger != nil {
				l.Logger.Warn(fmt.Sprintf("Ignoring repeated locale %q of provisioning item %q", locale, itemName))
			}
			continue
		}
		seen[locale] = struct{}{}
		res = append(res, locale)
	}
	return res
}
