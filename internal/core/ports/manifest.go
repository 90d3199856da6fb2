package ports

// ManifestReader looks up metadata from a program manifest.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestReader interface {
	// PackageName returns the package name declared by the manifest.
	// The boolean is false when the manifest declares no package.
	PackageName(manifestPath string) (string, bool, error)
}
