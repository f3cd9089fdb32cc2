package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrInvalidConfig is the category for package configurations rejected before any build starts.
	ErrInvalidConfig = zerr.New("invalid package configuration")

	// ErrUnknownItemType is returned when an item declares a type without a registered builder.
	ErrUnknownItemType = zerr.New("unknown provisioning item type")

	// ErrNoItems is returned when a package declares no provisioning items.
	ErrNoItems = zerr.New("no provisioning items declared")

	// ErrDuplicateItemName is returned when two items share a name or a name slug.
	ErrDuplicateItemName = zerr.New("duplicate provisioning item name")

	// ErrInvalidItemName is returned when an item name cannot serve as a single file name.
	ErrInvalidItemName = zerr.New("invalid provisioning item name")

	// ErrMissingField is returned when a required configuration field is empty.
	ErrMissingField = zerr.New("missing required field")

	// ErrResourceNotFound is returned when a declared source, icon, template or model file is missing.
	ErrResourceNotFound = zerr.New("resource not found")

	// ErrMalformedDocument is the category for model documents without the expected structure.
	ErrMalformedDocument = zerr.New("malformed model document")

	// ErrMalformedModel is returned when the model's document element is not <catalog>.
	ErrMalformedModel = zerr.New("expected document element to have tag name 'catalog'")

	// ErrMissingPageElement is returned when the <catalog> element has no <page> child.
	ErrMissingPageElement = zerr.New("expected a <page> child of the <catalog> document element")

	// ErrArchiveFailed is returned when compressing a directory fails.
	ErrArchiveFailed = zerr.New("failed to create archive")

	// ErrWorkspaceAllocation is returned when a staging directory cannot be created.
	ErrWorkspaceAllocation = zerr.New("failed to allocate workspace directory")

	// ErrItemBuildFailed is returned when building a provisioning item fails.
	ErrItemBuildFailed = zerr.New("failed to build provisioning item")

	// ErrPackageBuildFailed is returned when the package build fails.
	ErrPackageBuildFailed = zerr.New("package build failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrStoreReadFailed is returned when the package history cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read package history")

	// ErrStoreWriteFailed is returned when the package history cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write package history")

	// ErrDigestMismatch is returned when a package's content differs from its recorded digest.
	ErrDigestMismatch = zerr.New("package digest does not match recorded digest")

	// ErrManifestMismatch is returned when a package manifest references missing item archives.
	ErrManifestMismatch = zerr.New("package manifest does not match package contents")
)

// Tag marks err with a category sentinel so that errors.Is(err, sentinel) holds
// no matter how err itself was built or wrapped.
func Tag(sentinel, err error) error {
	if err == nil {
		return sentinel
	}
	return errors.Join(sentinel, err)
}

// With attaches metadata to err. For errors built by Tag the metadata goes on
// the detail error, so the category sentinels stay reachable through errors.Is.
func With(err error, key string, value any) error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		if errs := joined.Unwrap(); len(errs) > 0 {
			out := make([]error, len(errs))
			copy(out, errs)
			out[len(out)-1] = With(out[len(out)-1], key, value)
			return errors.Join(out...)
		}
	}
	return zerr.With(err, key, value)
}
