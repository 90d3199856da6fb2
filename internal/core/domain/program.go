package domain

import "path/filepath"

// DefaultDisplayName is used in diagnostics when the manifest does not name the program.
const DefaultDisplayName = "Program"

// ProgramDir is an absolute, symlink-resolved program directory.
type ProgramDir string

// String returns the directory path.
func (d ProgramDir) String() string {
	return string(d)
}

// Join returns a path below the program directory.
func (d ProgramDir) Join(elem ...string) string {
	return filepath.Join(append([]string{string(d)}, elem...)...)
}

// ManifestPath returns the path of the program manifest.
func (d ProgramDir) ManifestPath() string {
	return d.Join(ManifestFileName)
}

// TriggerPaths returns the paths whose changes invalidate a previous build, in emission order.
func (d ProgramDir) TriggerPaths() []string {
	return []string{
		d.Join(SourceDirName),
		d.Join(ManifestFileName),
		d.Join(LockFileName),
	}
}

// BuildRequest carries everything the build executor needs for a single invocation.
type BuildRequest struct {
	Dir         ProgramDir
	DisplayName string

	// Skip bypasses the build tool entirely and reports success.
	Skip bool

	// CompilerOverridePresent records that EnvCompilerOverride was set in the parent.
	// It is always removed from the child environment.
	CompilerOverridePresent bool

	Toolchain Toolchain
}
