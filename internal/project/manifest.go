// Package project loads a lumen.toml project manifest: the package's name
// and the target's word size / max alignment, the same two knobs the
// checker's sizing tables (internal/types.Sizes) need before it can lay out
// a single record.
package project

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"

	"lumen/internal/types"
)

// Manifest is the parsed contents of a project's lumen.toml.
type Manifest struct {
	Package PackageSection `toml:"package"`
	Sizes   SizesSection   `toml:"sizes"`
}

// PackageSection is the [package] table.
type PackageSection struct {
	Name string `toml:"name"`
}

// SizesSection is the [sizes] table; zero values mean "use the default".
type SizesSection struct {
	WordSize uint64 `toml:"word_size"`
	MaxAlign uint64 `toml:"max_align"`
}

// ErrPackageSectionMissing indicates a manifest with no [package] table.
var ErrPackageSectionMissing = fmt.Errorf("missing [package]")

// ErrPackageNameMissing indicates [package] is present but has no name.
var ErrPackageNameMissing = fmt.Errorf("missing [package].name")

// LoadManifest parses the manifest at path.
func LoadManifest(path string) (Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	m.Package.Name = strings.TrimSpace(m.Package.Name)
	if m.Package.Name == "" {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageNameMissing)
	}
	if !IsValidPackageName(m.Package.Name) {
		return Manifest{}, fmt.Errorf("%s: invalid [package].name %q", path, m.Package.Name)
	}
	return m, nil
}

// ResolveSizes returns the manifest's [sizes] overrides applied on top of
// the checker's defaults, so a manifest with no [sizes] table at all
// reproduces types.DefaultSizes() exactly.
func (m Manifest) ResolveSizes() types.Sizes {
	sizes := types.DefaultSizes()
	if m.Sizes.WordSize != 0 {
		sizes.WordSize = m.Sizes.WordSize
	}
	if m.Sizes.MaxAlign != 0 {
		sizes.MaxAlign = m.Sizes.MaxAlign
	}
	return sizes
}

// IsValidPackageName reports whether name is a valid Lumen identifier:
// ASCII letters, digits and underscores, not starting with a digit.
func IsValidPackageName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r > unicode.MaxASCII {
			return false
		}
		if i == 0 && r != '_' && !unicode.IsLetter(r) {
			return false
		}
		if i > 0 && r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
