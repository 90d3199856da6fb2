package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/progbuild/internal/ui/output"
	"go.trai.ch/progbuild/internal/ui/style"
)

// PrettyHandler is a slog.Handler that writes one colored line per record.
// Warnings and errors carry an icon; attributes follow the message as key=value pairs.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	attrs  []string
	prefix string
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := levelStyle(r.Level)

	var sb strings.Builder
	if icon != "" {
		sb.WriteString(icon)
		sb.WriteByte(' ')
	}
	sb.WriteString(r.Message)

	for _, attr := range h.attrs {
		sb.WriteByte(' ')
		sb.WriteString(attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		sb.WriteByte(' ')
		sb.WriteString(h.formatAttr(attr))
		return true
	})

	styled := h.out.String(sb.String()).Foreground(termenv.RGBColor(string(color)))
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = make([]string, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, attr := range attrs {
		clone.attrs = append(clone.attrs, h.formatAttr(attr))
	}
	return &clone
}

// WithGroup returns a new Handler that qualifies subsequent attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func (h *PrettyHandler) formatAttr(attr slog.Attr) string {
	return h.prefix + attr.Key + "=" + attr.Value.String()
}

func levelStyle(level slog.Level) (string, lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, style.Red
	case level >= slog.LevelWarn:
		return style.Warning, style.Yellow
	default:
		return "", style.Slate
	}
}
