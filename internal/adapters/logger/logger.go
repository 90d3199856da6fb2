// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.trai.ch/progbuild/internal/core/ports"
)

// messager is implemented by zerr errors: Message returns the error's own
// message without the wrapped chain.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
//
// Standard output is reserved for host build directives, so the logger
// only ever writes to standard error or an injected writer.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger writing pretty output to standard error.
func New() ports.Logger {
	return &Logger{
		logger: slog.New(NewPrettyHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})),
		output: os.Stderr,
	}
}

// SetOutput updates the logger's output destination, keeping the current mode.
// A nil writer selects standard error.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuildLocked()
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuildLocked()
}

func (l *Logger) rebuildLocked() {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if l.jsonMode {
		l.logger = slog.New(slog.NewJSONHandler(l.output, opts))
		return
	}
	l.logger = slog.New(NewPrettyHandler(l.output, opts))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error together with its cause chain.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatChain(collectMessages(err)))
}

// collectMessages flattens err into the list of messages from outermost to
// innermost. zerr errors contribute their own message and are unwrapped;
// joined errors contribute each branch in order; any other error contributes
// its full text and ends the walk.
func collectMessages(err error) []string {
	var messages []string

	for err != nil {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				messages = append(messages, collectMessages(e)...)
			}
			return messages
		}

		m, ok := err.(messager)
		if !ok {
			return append(messages, err.Error())
		}
		messages = append(messages, m.Message())
		err = errors.Unwrap(err)
	}

	return messages
}

func formatChain(messages []string) string {
	var lines []string

	for i, msg := range messages {
		parts := strings.Split(msg, "\n")

		switch i {
		case 0:
			lines = append(lines, "Error: "+parts[0])
			for _, part := range parts[1:] {
				lines = append(lines, "       "+part)
			}
			continue
		case 1:
			lines = append(lines, "", "  Caused by:")
		}

		lines = append(lines, "    → "+parts[0])
		for _, part := range parts[1:] {
			lines = append(lines, "      "+part)
		}
	}

	return strings.Join(lines, "\n")
}
