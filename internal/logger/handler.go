package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ConsoleHandler writes one human-readable line per record:
//
//	15:04:05 WARN  message key=value group.key=value
type ConsoleHandler struct {
	mu     *sync.Mutex
	w      io.Writer
	opts   *slog.HandlerOptions
	attrs  []groupedAttr
	groups []string
	styles consoleStyles
}

type groupedAttr struct {
	groups []string
	attr   slog.Attr
}

type consoleStyles struct {
	levels map[slog.Level]lipgloss.Style
	key    lipgloss.Style
}

// NewConsoleHandler returns a handler writing to w. styled enables ANSI
// colors regardless of what w is.
func NewConsoleHandler(w io.Writer, opts *slog.HandlerOptions, styled bool) *ConsoleHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	r := lipgloss.NewRenderer(w)
	if styled {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &ConsoleHandler{
		mu:   &sync.Mutex{},
		w:    w,
		opts: opts,
		styles: consoleStyles{
			levels: map[slog.Level]lipgloss.Style{
				slog.LevelDebug: r.NewStyle().Foreground(lipgloss.Color("8")),
				slog.LevelInfo:  r.NewStyle().Foreground(lipgloss.Color("2")),
				slog.LevelWarn:  r.NewStyle().Foreground(lipgloss.Color("3")),
				slog.LevelError: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
			},
			key: r.NewStyle().Foreground(lipgloss.Color("8")),
		},
	}
}

func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	threshold := slog.LevelInfo
	if h.opts.Level != nil {
		threshold = h.opts.Level.Level()
	}
	return level >= threshold
}

func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Time.Format("15:04:05"))
	b.WriteByte(' ')
	level := r.Level.String()
	b.WriteString(h.levelStyle(r.Level).Render(level))
	b.WriteString(strings.Repeat(" ", max(1, 6-len(level))))
	b.WriteString(r.Message)

	for _, ga := range h.attrs {
		h.appendAttr(&b, ga.groups, ga.attr)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&b, h.groups, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *ConsoleHandler) levelStyle(level slog.Level) lipgloss.Style {
	if s, ok := h.styles.levels[level]; ok {
		return s
	}
	return h.styles.key
}

func (h *ConsoleHandler) appendAttr(b *strings.Builder, groups []string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			groups = append(groups[:len(groups):len(groups)], a.Key)
		}
		for _, member := range a.Value.Group() {
			h.appendAttr(b, groups, member)
		}
		return
	}
	if h.opts.ReplaceAttr != nil {
		a = h.opts.ReplaceAttr(groups, a)
	}
	if a.Key == "" {
		return
	}
	key := a.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	fmt.Fprintf(b, " %s%v", h.styles.key.Render(key+"="), a.Value)
}

func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	h2.attrs = append([]groupedAttr(nil), h.attrs...)
	for _, a := range attrs {
		h2.attrs = append(h2.attrs, groupedAttr{groups: h.groups, attr: a})
	}
	return &h2
}

func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.groups = append(h.groups[:len(h.groups):len(h.groups)], name)
	return &h2
}

// fanout sends every record to each handler that accepts its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
