package ports

import "go.trai.ch/progbuild/internal/core/domain"

// PathResolver defines the interface for resolving program locations.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type PathResolver interface {
	// Resolve turns location into an absolute, canonical directory.
	// Relative locations are joined to anchorRoot.
	Resolve(anchorRoot, location string) (domain.ProgramDir, error)
}
