package domain

import "slices"

const (
	// DefaultTool is the build tool executable.
	DefaultTool = "cargo"

	// DefaultOutputPrefix is prepended to every relayed output line.
	DefaultOutputPrefix = "[sp1] "
)

// DefaultToolArgs returns the fixed argument list passed to the build tool.
func DefaultToolArgs() []string {
	return []string{"prove", "build"}
}

// Toolchain describes how the external build tool is invoked.
type Toolchain struct {
	Tool   string
	Args   []string
	Prefix string
}

// DefaultToolchain returns the toolchain used when no config file overrides it.
func DefaultToolchain() Toolchain {
	return Toolchain{
		Tool:   DefaultTool,
		Args:   DefaultToolArgs(),
		Prefix: DefaultOutputPrefix,
	}
}

// Clone returns a deep copy of the toolchain.
func (t Toolchain) Clone() Toolchain {
	t.Args = slices.Clone(t.Args)
	return t
}

// Invocation holds the process-wide inputs, read once at the boundary.
type Invocation struct {
	AnchorRoot              string
	SkipSignalPresent       bool
	CompilerOverridePresent bool
}

// Config is the fully resolved configuration of a single invocation.
type Config struct {
	Invocation Invocation
	Toolchain  Toolchain
}

// LoadOptions are caller-supplied overrides applied while loading the configuration.
type LoadOptions struct {
	// AnchorRoot replaces the anchor root taken from the environment when non-empty.
	AnchorRoot string

	// ConfigPath names an explicit toolchain config file. It must exist when set.
	ConfigPath string
}
