package domain

const (
	// SourceDirName is the program's source directory.
	SourceDirName = "src"

	// ManifestFileName is the program's manifest file.
	ManifestFileName = "Cargo.toml"

	// LockFileName is the program's lock file.
	LockFileName = "Cargo.lock"

	// ConfigFileName is the optional toolchain override file looked up in the anchor root.
	ConfigFileName = "progbuild.yaml"
)

const (
	// EnvAnchorRoot names the directory containing the build instructions that requested the helper.
	// It is also overridden to the program directory for the nested build.
	EnvAnchorRoot = "CARGO_MANIFEST_DIR"

	// EnvWorkspaceWrapper names the compiler wrapper variable inspected for the skip condition.
	EnvWorkspaceWrapper = "RUSTC_WORKSPACE_WRAPPER"

	// EnvCompilerOverride names the compiler override that is removed before spawning the build tool.
	EnvCompilerOverride = "RUSTC"

	// SkipWrapperMarker marks a wrapper that drives compilation for linting only.
	SkipWrapperMarker = "clippy-driver"
)
