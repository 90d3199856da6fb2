package config

// SupportedVersion is the only toolfile schema version understood. An absent
// version is read as this one.
const SupportedVersion = "1"

// Toolfile represents the structure of the optional progbuild.yaml file.
// Absent keys keep the built-in defaults, so every field is a pointer.
type Toolfile struct {
	Version string    `yaml:"version"`
	Tool    *string   `yaml:"tool"`
	Args    *[]string `yaml:"args"`
	Prefix  *string   `yaml:"prefix"`
}
