package ports

import "go.trai.ch/cxpack/internal/core/domain"

// ConfigLoader defines the interface for loading a package configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and returns the package spec.
	// Relative paths of the spec resolve against the config file's directory.
	// Only item types are checked; callers validate once overrides are applied.
	Load(path string) (*domain.PackageSpec, error)
}
