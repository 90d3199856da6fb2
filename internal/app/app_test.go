package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/progbuild/internal/app"
	"go.trai.ch/progbuild/internal/core/domain"
	"go.trai.ch/progbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 5, 1, 13, 37, 0, 0, time.Local)

type fixture struct {
	app      *app.App
	loader   *mocks.MockConfigLoader
	resolver *mocks.MockPathResolver
	emitter  *mocks.MockDirectiveEmitter
	manifest *mocks.MockManifestReader
	executor *mocks.MockExecutor
	logger   *mocks.MockLogger
	spans    *tracetest.SpanRecorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:   mocks.NewMockConfigLoader(ctrl),
		resolver: mocks.NewMockPathResolver(ctrl),
		emitter:  mocks.NewMockDirectiveEmitter(ctrl),
		manifest: mocks.NewMockManifestReader(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		spans:    tracetest.NewSpanRecorder(),
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(f.spans))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	f.app = app.New(f.loader, f.resolver, f.emitter, f.manifest, f.executor, f.logger).
		WithClock(func() time.Time { return fixedNow }).
		WithTracerProvider(tp)
	return f
}

func defaultConfig(inv domain.Invocation) *domain.Config {
	return &domain.Config{Invocation: inv, Toolchain: domain.DefaultToolchain()}
}

func spanAttr(t *testing.T, f *fixture, key string) attribute.Value {
	t.Helper()
	ended := f.spans.Ended()
	require.Len(t, ended, 1)
	for _, kv := range ended[0].Attributes() {
		if string(kv.Key) == key {
			return kv.Value
		}
	}
	t.Fatalf("span attribute %q not found", key)
	return attribute.Value{}
}

func TestApp_BuildProgram_Success(t *testing.T) {
	f := newFixture(t)
	dir := domain.ProgramDir("/work/program")
	inv := domain.Invocation{AnchorRoot: "/work", CompilerOverridePresent: true}

	gomock.InOrder(
		f.loader.EXPECT().Load(domain.LoadOptions{}).Return(defaultConfig(inv), nil),
		f.resolver.EXPECT().Resolve("/work", "program").Return(dir, nil),
		f.emitter.EXPECT().EmitTriggers(dir),
		f.manifest.EXPECT().PackageName("/work/program/Cargo.toml").Return("fibonacci-program", true, nil),
		f.emitter.EXPECT().Warn("fibonacci-program built at 2024-05-01 13:37:00"),
		f.executor.EXPECT().Execute(gomock.Any(), domain.BuildRequest{
			Dir:                     dir,
			DisplayName:             "fibonacci-program",
			CompilerOverridePresent: true,
			Toolchain:               domain.DefaultToolchain(),
		}).Return(nil),
	)

	require.NoError(t, f.app.BuildProgram(context.Background(), "program", app.BuildOptions{}))

	assert.Equal(t, "/work/program", spanAttr(t, f, "program.dir").AsString())
	assert.Equal(t, "fibonacci-program", spanAttr(t, f, "program.name").AsString())
	assert.False(t, spanAttr(t, f, "build.skipped").AsBool())
	assert.Equal(t, codes.Unset, f.spans.Ended()[0].Status().Code)
}

func TestApp_BuildProgram_PassesOptionsAndSkip(t *testing.T) {
	f := newFixture(t)
	dir := domain.ProgramDir("/elsewhere/program")
	opts := app.BuildOptions{AnchorRoot: "/elsewhere", ConfigPath: "/elsewhere/tools.yaml"}

	f.loader.EXPECT().
		Load(domain.LoadOptions{AnchorRoot: opts.AnchorRoot, ConfigPath: opts.ConfigPath}).
		Return(defaultConfig(domain.Invocation{AnchorRoot: "/elsewhere", SkipSignalPresent: true}), nil)
	f.resolver.EXPECT().Resolve("/elsewhere", "program").Return(dir, nil)
	f.emitter.EXPECT().EmitTriggers(dir)
	f.manifest.EXPECT().PackageName(gomock.Any()).Return("guest", true, nil)
	f.emitter.EXPECT().Warn(gomock.Any())
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.BuildRequest) error {
			assert.True(t, req.Skip)
			return nil
		},
	)

	require.NoError(t, f.app.BuildProgram(context.Background(), "program", opts))
	assert.True(t, spanAttr(t, f, "build.skipped").AsBool())
}

func TestApp_BuildProgram_DisplayNameFallback(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f *fixture)
		wantMsg string
	}{
		{
			name: "manifest without package",
			setup: func(f *fixture) {
				f.manifest.EXPECT().PackageName(gomock.Any()).Return("", false, nil)
			},
		},
		{
			name: "manifest lookup fails",
			setup: func(f *fixture) {
				f.manifest.EXPECT().PackageName(gomock.Any()).
					Return("", false, errors.Join(domain.ErrMetadataLookupFailed, errors.New("no such file")))
				f.logger.EXPECT().Warn(gomock.Any())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			dir := domain.ProgramDir("/work/program")

			f.loader.EXPECT().Load(gomock.Any()).Return(defaultConfig(domain.Invocation{AnchorRoot: "/work"}), nil)
			f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(dir, nil)
			f.emitter.EXPECT().EmitTriggers(dir)
			tt.setup(f)
			f.emitter.EXPECT().Warn("Program built at 2024-05-01 13:37:00")
			f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, req domain.BuildRequest) error {
					assert.Equal(t, domain.DefaultDisplayName, req.DisplayName)
					return nil
				},
			)

			require.NoError(t, f.app.BuildProgram(context.Background(), "program", app.BuildOptions{}))
		})
	}
}

func TestApp_BuildProgram_ConfigError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any()).Return(nil, domain.ErrConfigParseFailed)

	err := f.app.BuildProgram(context.Background(), "program", app.BuildOptions{})
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
	assert.Equal(t, codes.Error, f.spans.Ended()[0].Status().Code)
}

func TestApp_BuildProgram_ResolutionError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any()).Return(defaultConfig(domain.Invocation{AnchorRoot: "/work"}), nil)
	f.resolver.EXPECT().Resolve("/work", "../missing").Return(domain.ProgramDir(""), domain.ErrResolutionFailed)

	err := f.app.BuildProgram(context.Background(), "../missing", app.BuildOptions{})
	require.ErrorIs(t, err, domain.ErrResolutionFailed)
	assert.Contains(t, err.Error(), "../missing")
	assert.NotErrorIs(t, err, domain.ErrBuildExecutionFailed)
	assert.Equal(t, codes.Error, f.spans.Ended()[0].Status().Code)
}

func TestApp_BuildProgram_ExecutionError(t *testing.T) {
	f := newFixture(t)
	dir := domain.ProgramDir("/work/program")
	buildErr := errors.Join(domain.ErrBuildFailed, errors.New("exit status 101"))

	f.loader.EXPECT().Load(gomock.Any()).Return(defaultConfig(domain.Invocation{AnchorRoot: "/work"}), nil)
	f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(dir, nil)
	f.emitter.EXPECT().EmitTriggers(dir)
	f.manifest.EXPECT().PackageName(gomock.Any()).Return("fibonacci-program", true, nil)
	f.emitter.EXPECT().Warn(gomock.Any())
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(buildErr)

	err := f.app.BuildProgram(context.Background(), "program", app.BuildOptions{})
	require.ErrorIs(t, err, domain.ErrBuildExecutionFailed)
	require.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.Contains(t, err.Error(), "fibonacci-program")

	ended := f.spans.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.NotEmpty(t, ended[0].Events(), "error should be recorded on the span")
}
