package ports

import "go.trai.ch/progbuild/internal/core/domain"

// ConfigLoader defines the interface for loading the invocation configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the invocation environment and the optional toolchain file.
	Load(opts domain.LoadOptions) (*domain.Config, error)
}
