// Package shell runs the external build tool and relays its output.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/progbuild/internal/core/domain"
	"go.trai.ch/progbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// SkipNotice is emitted instead of building when a linter drives compilation.
const SkipNotice = "Skipping build due to clippy invocation."

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger  ports.Logger
	emitter ports.DirectiveEmitter
	stdout  io.Writer
	stderr  io.Writer
	environ func() []string
}

// NewExecutor creates a new Executor relaying to the process's own standard streams.
func NewExecutor(logger ports.Logger, emitter ports.DirectiveEmitter) *Executor {
	return &Executor{
		logger:  logger,
		emitter: emitter,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		environ: os.Environ,
	}
}

// WithOutput replaces the writers relayed output lines are written to.
func (e *Executor) WithOutput(stdout, stderr io.Writer) *Executor {
	e.stdout = stdout
	e.stderr = stderr
	return e
}

// WithEnviron replaces the parent environment the child environment is derived from.
func (e *Executor) WithEnviron(fn func() []string) *Executor {
	e.environ = fn
	return e
}

// Execute builds the program described by req.
//
// The tool's standard output is relayed on a worker goroutine while standard
// error is relayed on the calling goroutine; both are drained to the end
// before the process is waited on, exactly once. A failed wait and a non-zero
// exit status are reported the same way.
func (e *Executor) Execute(ctx context.Context, req domain.BuildRequest) error {
	if req.Skip {
		e.emitter.Warn(SkipNotice)
		return nil
	}

	if req.CompilerOverridePresent {
		e.logger.Info(fmt.Sprintf("removing %s from the build tool environment", domain.EnvCompilerOverride))
	}

	cmd, err := e.command(ctx, req)
	if err != nil {
		return spawnError(err, req)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return spawnError(err, req)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return spawnError(err, req)
	}

	if err := cmd.Start(); err != nil {
		return spawnError(err, req)
	}

	relayErr := relay(req.Toolchain.Prefix, func() { _ = cmd.Process.Kill() },
		stream{name: "stderr", r: stderr, w: e.stderr},
		stream{name: "stdout", r: stdout, w: e.stdout},
	)

	waitErr := cmd.Wait()

	if relayErr != nil {
		return zerr.With(zerr.Wrap(relayErr, "output relay interrupted"), "program", req.DisplayName)
	}
	if waitErr != nil {
		return buildError(waitErr, req)
	}
	return nil
}

func (e *Executor) command(ctx context.Context, req domain.BuildRequest) (*exec.Cmd, error) {
	name := req.Toolchain.Tool
	if name == "" {
		return nil, exec.ErrNotFound
	}

	env := childEnvironment(e.environ(), req.Dir)

	executable := name
	if !strings.ContainsRune(name, filepath.Separator) {
		lp, err := lookPath(name, env)
		if err != nil {
			return nil, err
		}
		executable = lp
	}

	cmd := exec.CommandContext(ctx, executable, req.Toolchain.Args...) //nolint:gosec // tool comes from the invoking build
	cmd.Args[0] = name
	cmd.Dir = req.Dir.String()
	cmd.Env = env
	return cmd, nil
}

func spawnError(err error, req domain.BuildRequest) error {
	return errors.Join(
		domain.ErrSpawnFailed,
		zerr.With(zerr.Wrap(err, "cannot start `"+req.Toolchain.Tool+"`"), "program", req.DisplayName),
	)
}

func buildError(err error, req domain.BuildRequest) error {
	msg := "`" + req.Toolchain.Tool + "` did not finish"
	exitCode := -1

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
		msg = fmt.Sprintf("`%s` exited with status %d", req.Toolchain.Tool, exitCode)
	}

	wrapped := zerr.With(zerr.Wrap(err, msg), "program", req.DisplayName)
	return errors.Join(domain.ErrBuildFailed, zerr.With(wrapped, "exit_code", exitCode))
}

// childEnvironment derives the build tool's environment from the parent's:
// the anchor variable points at the program directory and the compiler
// override is removed so the nested build selects its own compiler.
func childEnvironment(parent []string, dir domain.ProgramDir) []string {
	envMap := make(map[string]string, len(parent)+1)
	for _, entry := range parent {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	delete(envMap, domain.EnvCompilerOverride)
	envMap[domain.EnvAnchorRoot] = dir.String()

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	sort.Strings(result)
	return result
}

// lookPath searches for an executable in the directories named by the PATH
// entry of env, returning an absolute path.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			// The child runs in the program directory, not ours.
			if !filepath.IsAbs(candidate) {
				return "", zerr.With(zerr.Wrap(exec.ErrDot, "executable found in a relative PATH entry"), "executable", file)
			}
			return candidate, nil
		}
	}
	return "", zerr.With(zerr.Wrap(exec.ErrNotFound, "executable not found in PATH"), "executable", file)
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
