// Package directive writes instructions for the host build system.
//
// The host reads the helper's standard output and treats lines of the form
// "cargo:<key>=<value>" as directives. Everything else on standard output is
// ignored by the host, which is why relayed build output never collides with
// the directives written here.
package directive

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.trai.ch/progbuild/internal/core/domain"
	"go.trai.ch/progbuild/internal/core/ports"
)

const (
	prefix        = "cargo:"
	keyRerun      = "rerun-if-changed"
	keyWarning    = "warning"
	lineSeparator = "\n"
)

var _ ports.DirectiveEmitter = (*Emitter)(nil)

// Emitter implements ports.DirectiveEmitter.
type Emitter struct {
	out io.Writer
}

// NewEmitter creates an Emitter writing to standard output.
func NewEmitter() *Emitter {
	return NewEmitterTo(os.Stdout)
}

// NewEmitterTo creates an Emitter writing to w.
func NewEmitterTo(w io.Writer) *Emitter {
	return &Emitter{out: w}
}

// EmitTriggers declares the program's source directory, manifest and lock file
// as the invalidation surface of the helper.
func (e *Emitter) EmitTriggers(dir domain.ProgramDir) {
	for _, path := range dir.TriggerPaths() {
		e.emit(keyRerun, path)
	}
}

// Warn emits a warning directive. Newlines would end the directive early, so
// they are folded into spaces.
func (e *Emitter) Warn(msg string) {
	msg = strings.ReplaceAll(msg, "\r\n", " ")
	msg = strings.ReplaceAll(msg, "\n", " ")
	e.emit(keyWarning, msg)
}

func (e *Emitter) emit(key, value string) {
	_, _ = fmt.Fprint(e.out, prefix+key+"="+value+lineSeparator)
}
