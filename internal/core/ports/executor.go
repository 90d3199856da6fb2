// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/progbuild/internal/core/domain"
)

// Executor defines the interface for building a program with the external build tool.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the build tool for the request and relays its output.
	//
	// It returns nil when the build was skipped or the tool exited with status zero.
	// Every other outcome is fatal for the caller.
	Execute(ctx context.Context, req domain.BuildRequest) error
}
