package shell

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"go.trai.ch/progbuild/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var errInvalidUTF8 = errors.New("stream contains invalid UTF-8")

// stream pairs a subprocess output pipe with the writer its lines are relayed to.
type stream struct {
	name string
	r    io.Reader
	w    io.Writer
}

// relay drains all streams concurrently and returns once every one of them
// reached end of file. The first stream is drained on the calling goroutine,
// every other stream on its own worker, so N streams use N-1 workers.
//
// Lines keep their order within a stream; there is no ordering between
// streams. Each reader and each writer is touched by exactly one goroutine.
//
// On the first failure abort is called once, and the failing stream is still
// read to the end so that no writer on the other side blocks on a full pipe.
func relay(prefix string, abort func(), streams ...stream) error {
	if len(streams) == 0 {
		return nil
	}

	var once sync.Once
	stop := func() { once.Do(abort) }

	var g errgroup.Group
	for _, s := range streams[1:] {
		g.Go(func() error {
			return drain(s, prefix, stop)
		})
	}

	err := drain(streams[0], prefix, stop)
	return errors.Join(err, g.Wait())
}

// drain relays s line by line, prefixing every line. Line terminators (LF or
// CRLF) are normalized to LF and a final unterminated line is relayed too.
func drain(s stream, prefix string, abort func()) error {
	br := bufio.NewReader(s.r)

	fail := func(kind, cause error) error {
		abort()
		_, _ = io.Copy(io.Discard, br)
		return errors.Join(kind, zerr.With(zerr.Wrap(cause, "relaying "+s.name), "stream", s.name))
	}

	for {
		line, readErr := br.ReadString('\n')

		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")

			if !utf8.ValidString(line) {
				return fail(domain.ErrStreamReadFailed, errInvalidUTF8)
			}
			if _, err := io.WriteString(s.w, prefix+line+"\n"); err != nil {
				return fail(domain.ErrStreamWriteFailed, err)
			}
		}

		switch {
		case readErr == nil:
		case errors.Is(readErr, io.EOF):
			return nil
		default:
			return fail(domain.ErrStreamReadFailed, readErr)
		}
	}
}
