package fs

import (
	"path/filepath"
	"strings"

	"go.trai.ch/cxpack/internal/core/ports"
)

const (
	// LocaleToken is replaced by the locale code in a layout pattern.
	LocaleToken = "{locale}"
	// IndexToken is replaced by the index file name in a layout pattern.
	IndexToken = "{index}"
	// DefaultLocalePattern puts every locale's build in a folder named after the locale.
	DefaultLocalePattern = LocaleToken + "/" + IndexToken
)

var _ ports.LocaleLayout = PatternLayout("")

// PatternLayout locates localized index files with a slash-separated pattern
// relative to the built sources, e.g. "{locale}/{index}" or "i18n/{locale}/{index}".
type PatternLayout string

// IndexFile expands the pattern for locale and indexFileName.
func (p PatternLayout) IndexFile(builtSources, locale, indexFileName string) string {
	pattern := string(p)
	if pattern == "" {
		pattern = DefaultLocalePattern
	}
	rel := strings.NewReplacer(LocaleToken, locale, IndexToken, indexFileName).Replace(pattern)
	return filepath.Join(builtSources, filepath.FromSlash(rel))
}
