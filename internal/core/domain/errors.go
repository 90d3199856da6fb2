package domain

import "go.trai.ch/zerr"

var (
	// ErrResolutionFailed is returned when the program location cannot be turned into an existing directory.
	ErrResolutionFailed = zerr.New("failed to get the absolute path of the program directory")

	// ErrAnchorRootUnset is returned when a relative program location is given without an anchor root.
	ErrAnchorRootUnset = zerr.New("anchor root is not set, relative program paths cannot be resolved")

	// ErrNotADirectory is returned when the resolved program location is not a directory.
	ErrNotADirectory = zerr.New("program path is not a directory")

	// ErrMetadataLookupFailed is returned when the program manifest cannot be read.
	// It is never fatal: callers fall back to DefaultDisplayName.
	ErrMetadataLookupFailed = zerr.New("failed to read program metadata")

	// ErrSpawnFailed is returned when the build tool cannot be started.
	ErrSpawnFailed = zerr.New("failed to spawn build tool")

	// ErrStreamReadFailed is returned when reading a line from the build tool output fails.
	ErrStreamReadFailed = zerr.New("failed to read build tool output")

	// ErrStreamWriteFailed is returned when a relayed line cannot be written to the parent stream.
	ErrStreamWriteFailed = zerr.New("failed to relay build tool output")

	// ErrBuildFailed is returned when the build tool exits with a non-zero status or cannot be waited on.
	ErrBuildFailed = zerr.New("build tool failed")

	// ErrBuildExecutionFailed is returned by the application when building the program fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")
)
