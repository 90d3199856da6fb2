// Package app implements the application layer for progbuild.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/progbuild/internal/core/domain"
	"go.trai.ch/progbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	tracerName = "go.trai.ch/progbuild"

	// timestampLayout renders the local build time, e.g. 2024-05-01 13:37:00.
	timestampLayout = "2006-01-02 15:04:05"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.PathResolver
	emitter      ports.DirectiveEmitter
	manifest     ports.ManifestReader
	executor     ports.Executor
	logger       ports.Logger
	tracer       trace.Tracer
	now          func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.PathResolver,
	emitter ports.DirectiveEmitter,
	manifest ports.ManifestReader,
	executor ports.Executor,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		emitter:      emitter,
		manifest:     manifest,
		executor:     executor,
		logger:       log,
		tracer:       otel.Tracer(tracerName),
		now:          time.Now,
	}
}

// WithClock replaces the clock used for the build timestamp.
// This is primarily used for testing.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// WithTracerProvider replaces the global tracer provider.
// This is primarily used for testing.
func (a *App) WithTracerProvider(tp trace.TracerProvider) *App {
	a.tracer = tp.Tracer(tracerName)
	return a
}

// BuildOptions configuration for the BuildProgram method.
type BuildOptions struct {
	// AnchorRoot overrides the anchor root read from the environment.
	AnchorRoot string
	// ConfigPath names an explicit toolchain config file.
	ConfigPath string
}

// BuildProgram builds the program at location with the external build tool.
//
// It declares the program's rerun triggers to the host, announces the build
// with a timestamped warning and runs the tool. Failing to read the program
// name is not fatal; every other failure is.
func (a *App) BuildProgram(ctx context.Context, location string, opts BuildOptions) (err error) {
	ctx, span := a.tracer.Start(ctx, "build_program",
		trace.WithAttributes(attribute.String("program.location", location)),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "build failed")
		}
		span.End()
	}()

	// 1. Read the invocation environment once
	cfg, err := a.configLoader.Load(domain.LoadOptions{
		AnchorRoot: opts.AnchorRoot,
		ConfigPath: opts.ConfigPath,
	})
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	// 2. Resolve the program directory
	dir, err := a.resolver.Resolve(cfg.Invocation.AnchorRoot, location)
	if err != nil {
		return zerr.Wrap(err, "failed to get the absolute path of the program directory `"+location+"`")
	}
	span.SetAttributes(attribute.String("program.dir", dir.String()))

	// 3. Declare the invalidation surface
	a.emitter.EmitTriggers(dir)

	// 4. Best-effort display name
	name := a.displayName(dir)
	span.SetAttributes(
		attribute.String("program.name", name),
		attribute.Bool("build.skipped", cfg.Invocation.SkipSignalPresent),
	)

	// The host caches warnings, so the timestamp tells users which build they are looking at.
	a.emitter.Warn(fmt.Sprintf("%s built at %s", name, a.now().Format(timestampLayout)))

	// 5. Build
	req := domain.BuildRequest{
		Dir:                     dir,
		DisplayName:             name,
		Skip:                    cfg.Invocation.SkipSignalPresent,
		CompilerOverridePresent: cfg.Invocation.CompilerOverridePresent,
		Toolchain:               cfg.Toolchain.Clone(),
	}
	if err := a.executor.Execute(ctx, req); err != nil {
		return errors.Join(domain.ErrBuildExecutionFailed, zerr.Wrap(err, "failed to build `"+name+"`"))
	}

	return nil
}

func (a *App) displayName(dir domain.ProgramDir) string {
	name, ok, err := a.manifest.PackageName(dir.ManifestPath())
	if err != nil {
		a.logger.Warn(fmt.Sprintf("could not read the program name, using %q: %v", domain.DefaultDisplayName, err))
		return domain.DefaultDisplayName
	}
	if !ok {
		return domain.DefaultDisplayName
	}
	return name
}
