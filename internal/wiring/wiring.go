// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/progbuild/internal/adapters/config"
	_ "go.trai.ch/progbuild/internal/adapters/directive"
	_ "go.trai.ch/progbuild/internal/adapters/fs"
	_ "go.trai.ch/progbuild/internal/adapters/logger"
	_ "go.trai.ch/progbuild/internal/adapters/manifest"
	_ "go.trai.ch/progbuild/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/progbuild/internal/app"
)
