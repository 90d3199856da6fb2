// Package manifest reads program metadata from Cargo manifests.
package manifest

import (
	"errors"

	"github.com/BurntSushi/toml"
	"go.trai.ch/progbuild/internal/core/domain"
	"go.trai.ch/progbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestReader = (*Reader)(nil)

// cargoManifest is the subset of Cargo.toml the helper needs.
// A virtual workspace manifest has no [package] table.
type cargoManifest struct {
	Package *struct {
		Name string `toml:"name"`
	} `toml:"package"`
}

// Reader implements ports.ManifestReader for Cargo.toml files.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// PackageName returns the [package].name declared in the manifest.
func (r *Reader) PackageName(manifestPath string) (string, bool, error) {
	var m cargoManifest
	if _, err := toml.DecodeFile(manifestPath, &m); err != nil {
		return "", false, errors.Join(
			domain.ErrMetadataLookupFailed,
			zerr.With(zerr.Wrap(err, "cannot decode manifest"), "manifest", manifestPath),
		)
	}

	if m.Package == nil || m.Package.Name == "" {
		return "", false, nil
	}
	return m.Package.Name, true, nil
}
