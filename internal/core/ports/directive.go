package ports

import "go.trai.ch/progbuild/internal/core/domain"

// DirectiveEmitter writes declarative directives to the host build system.
//
//go:generate mockgen -source=directive.go -destination=mocks/mock_directive.go -package=mocks
type DirectiveEmitter interface {
	// EmitTriggers declares the paths whose changes must rerun the helper.
	EmitTriggers(dir domain.ProgramDir)

	// Warn emits an informational message the host shows to the user.
	Warn(msg string)
}
