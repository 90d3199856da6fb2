// Package config resolves the invocation configuration of progbuild.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/progbuild/internal/core/domain"
	"go.trai.ch/progbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// LookupEnvFunc reports the value of an environment variable and whether it is set.
type LookupEnvFunc func(key string) (string, bool)

// Loader implements ports.ConfigLoader from the process environment and an
// optional YAML toolchain file.
type Loader struct {
	Logger    ports.Logger
	LookupEnv LookupEnvFunc
}

// NewLoader creates a new Loader reading the process environment.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, LookupEnv: os.LookupEnv}
}

// WithLookupEnv replaces the environment source. Used for testing.
func (l *Loader) WithLookupEnv(fn LookupEnvFunc) *Loader {
	l.LookupEnv = fn
	return l
}

// Load reads the environment once and applies the toolchain file, if any.
func (l *Loader) Load(opts domain.LoadOptions) (*domain.Config, error) {
	inv := l.invocation()
	if opts.AnchorRoot != "" {
		inv.AnchorRoot = opts.AnchorRoot
	}

	toolchain := domain.DefaultToolchain()

	// A skipped invocation never runs the tool, so a broken toolfile must not fail it.
	if inv.SkipSignalPresent {
		return &domain.Config{Invocation: inv, Toolchain: toolchain}, nil
	}

	path, required := opts.ConfigPath, true
	if path == "" {
		required = false
		if inv.AnchorRoot != "" {
			path = filepath.Join(inv.AnchorRoot, domain.ConfigFileName)
		}
	}

	if path != "" {
		found, err := l.applyToolfile(path, required, &toolchain)
		if err != nil {
			return nil, err
		}
		if found {
			l.Logger.Info("using toolchain from " + path)
		}
	}

	return &domain.Config{
		Invocation: inv,
		Toolchain:  toolchain,
	}, nil
}

func (l *Loader) invocation() domain.Invocation {
	anchor, _ := l.LookupEnv(domain.EnvAnchorRoot)
	wrapper, _ := l.LookupEnv(domain.EnvWorkspaceWrapper)
	_, override := l.LookupEnv(domain.EnvCompilerOverride)

	return domain.Invocation{
		AnchorRoot:              anchor,
		SkipSignalPresent:       strings.Contains(wrapper, domain.SkipWrapperMarker),
		CompilerOverridePresent: override,
	}
}

func (l *Loader) applyToolfile(path string, required bool, toolchain *domain.Toolchain) (bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the invoking build
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if required {
				return false, configError(domain.ErrConfigNotFound, err, path)
			}
			return false, nil
		}
		return false, configError(domain.ErrConfigReadFailed, err, path)
	}

	var file Toolfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return false, configError(domain.ErrConfigParseFailed, err, path)
	}

	if file.Version != "" && file.Version != SupportedVersion {
		return false, configError(domain.ErrConfigParseFailed,
			zerr.With(zerr.New("unsupported toolfile version"), "version", file.Version), path)
	}

	if file.Tool != nil {
		if strings.TrimSpace(*file.Tool) == "" {
			return false, configError(domain.ErrConfigParseFailed, errors.New("tool must not be empty"), path)
		}
		toolchain.Tool = *file.Tool
	}
	if file.Args != nil {
		toolchain.Args = append([]string(nil), (*file.Args)...)
	}
	if file.Prefix != nil {
		toolchain.Prefix = *file.Prefix
	}

	return true, nil
}

func configError(kind, cause error, path string) error {
	return errors.Join(kind, zerr.With(zerr.Wrap(cause, path), "path", path))
}
