package domain

import (
	"errors"
	"strings"

	"go.trai.ch/zerr"
)

// DefaultDestDir is where packages are written when no destination is configured.
const DefaultDestDir = "dist/provisioning-packages"

// PackageSpec is a validated request to assemble a provisioning package.
type PackageSpec struct {
	Items []ProvisioningItem
	// WorkspaceRoot resolves every relative path of the spec.
	WorkspaceRoot string
	DestDir       string
	DestFileName  string
	// SkipCleanUp keeps the staging workspace for debugging.
	SkipCleanUp bool
	// Parallelism bounds concurrent item builds. Zero or less means one per CPU.
	Parallelism int
}

// Validate rejects specs that cannot produce a package.
// All configuration errors are reported together and match ErrInvalidConfig.
func (s *PackageSpec) Validate() error {
	var errs error

	if strings.TrimSpace(s.DestFileName) == "" {
		errs = errors.Join(errs, missingField("destFileName", ""))
	}

	if len(s.Items) == 0 {
		errs = errors.Join(errs, Tag(ErrNoItems, zerr.New("package declares no items")))
	}

	names := make(map[string]bool, len(s.Items))
	stagingNames := make(map[string]string, len(s.Items))
	for i := range s.Items {
		item := &s.Items[i]
		errs = errors.Join(errs, validateItem(item))

		if names[item.Name] {
			errs = errors.Join(errs, Tag(ErrDuplicateItemName,
				zerr.With(zerr.New("item name declared twice"), "item", item.Name)))
			continue
		}
		names[item.Name] = true

		if other, ok := stagingNames[item.StagingName()]; ok {
			err := zerr.With(zerr.New("item names map to the same archive"), "item", item.Name)
			errs = errors.Join(errs, Tag(ErrDuplicateItemName, zerr.With(err, "conflicts_with", other)))
			continue
		}
		stagingNames[item.StagingName()] = item.Name
	}

	if errs != nil {
		return Tag(ErrInvalidConfig, errs)
	}
	return nil
}

func validateItem(item *ProvisioningItem) error {
	var errs error

	if _, err := ParseItemType(item.Type.String()); err != nil {
		errs = errors.Join(errs, err)
	}

	required := []struct {
		field string
		value string
	}{
		{"name", item.Name},
		{"entryFile", item.EntryFile},
		{"icon", item.Icon},
		{"builtSources", item.BuiltSources},
		{"modelXml", item.ModelDocument},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = errors.Join(errs, missingField(r.field, item.Name))
		}
	}

	if strings.TrimSpace(item.Name) != "" {
		errs = errors.Join(errs, item.CheckName())
	}

	for _, locale := range item.Locales {
		if strings.TrimSpace(locale) == "" {
			errs = errors.Join(errs, missingField("locales", item.Name))
		}
	}

	return errs
}

func missingField(field, itemName string) error {
	err := zerr.With(zerr.New("field is empty"), "field", field)
	if itemName != "" {
		err = zerr.With(err, "item", itemName)
	}
	return Tag(ErrMissingField, err)
}
