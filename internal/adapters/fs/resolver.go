// Package fs provides filesystem adapters.
package fs

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/progbuild/internal/core/domain"
	"go.trai.ch/progbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathResolver = (*Resolver)(nil)

// Resolver implements ports.PathResolver on the local filesystem.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve anchors a relative location at anchorRoot (never the working
// directory), then resolves symlinks and cleans the result. The result must be
// an existing directory.
func (r *Resolver) Resolve(anchorRoot, location string) (domain.ProgramDir, error) {
	path := location
	if !filepath.IsAbs(path) {
		if anchorRoot == "" {
			return "", resolutionError(domain.ErrAnchorRootUnset, location)
		}
		path = filepath.Join(anchorRoot, path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", resolutionError(err, location)
	}

	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", resolutionError(err, location)
	}

	info, err := os.Stat(canonical)
	if err != nil {
		return "", resolutionError(err, location)
	}
	if !info.IsDir() {
		return "", resolutionError(domain.ErrNotADirectory, location)
	}

	return domain.ProgramDir(canonical), nil
}

func resolutionError(cause error, location string) error {
	return errors.Join(
		domain.ErrResolutionFailed,
		zerr.With(zerr.Wrap(cause, "cannot resolve `"+location+"`"), "location", location),
	)
}
