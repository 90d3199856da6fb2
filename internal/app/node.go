package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/progbuild/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/progbuild/internal/adapters/directive" //nolint:depguard // Wired in app layer
	"go.trai.ch/progbuild/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/progbuild/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/progbuild/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"go.trai.ch/progbuild/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/progbuild/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ResolverNodeID,
			directive.NodeID,
			manifest.NodeID,
			shell.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.PathResolver](ctx)
	if err != nil {
		return nil, err
	}

	emitter, err := graft.Dep[ports.DirectiveEmitter](ctx)
	if err != nil {
		return nil, err
	}

	reader, err := graft.Dep[ports.ManifestReader](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, resolver, emitter, reader, executor, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    a,
		Logger: log,
	}, nil
}
