package handler

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/colog-go/colog/core"
	"github.com/colog-go/colog/filter"
	"github.com/colog-go/colog/format"
)

// LevelTrace is the slog.Level that maps to core.TraceLevel. slog has
// no trace level of its own; by convention one step of the level gap
// below Debug is used.
const LevelTrace = slog.Level(-8)

// Options configures a Handler.
type Options struct {
	// Level is the minimum severity the handler reports as enabled.
	// nil means slog.LevelInfo.
	Level slog.Leveler

	// Style controls colors, tokens, and multi-line alignment.
	// nil means format.DefaultStyle.
	Style format.Style

	// Filter, when set, replaces Level with per-target severity
	// thresholds. The record target is the handler's dot-joined
	// group path.
	Filter *filter.Filter
}

// lockedWriter wraps an io.Writer with a mutex, acquiring the lock
// only for Write calls. The formatter prepares each record in its own
// pooled buffer and calls Write once, so the lock is held only during
// the actual I/O. All clones of a Handler share the same lockedWriter,
// which keeps concurrent log calls from interleaving bytes within a
// record.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	n, err = lw.w.Write(p)
	lw.mu.Unlock()
	return
}

// Handler is a slog.Handler that renders records through a
// format.Style. It carries no state that mutates per call: WithAttrs
// and WithGroup return clones, and the shared writer lock is the only
// synchronization point.
type Handler struct {
	style  format.Style
	level  slog.Leveler
	filter *filter.Filter
	lw     *lockedWriter
	attrs  string // pre-rendered " key=value" suffix from WithAttrs
	groups []string
	target string
}

// New creates a Handler writing to w. A nil opts selects all defaults.
func New(w io.Writer, opts *Options) *Handler {
	if opts == nil {
		opts = &Options{}
	}
	style := opts.Style
	if style == nil {
		style = format.DefaultStyle{}
	}
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{
		style:  style,
		level:  level,
		filter: opts.Filter,
		lw:     &lockedWriter{w: w},
	}
}

// Enabled reports whether the handler processes records at the given
// level. With a Filter configured the decision is per-target;
// otherwise it is a plain threshold comparison. Filtering happens
// here, before Handle — but Handle itself renders any level correctly
// regardless of what the filter would say.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	if h.filter != nil {
		return h.filter.Enabled(h.target, coreLevel(level))
	}
	return level >= h.level.Level()
}

// Handle converts the slog record and renders it through the style.
// Attrs are appended to the message as " key=value" text with
// group-dotted keys. The writer's error, if any, is returned
// unmodified; a failed write is a dropped line, not a reason to retry.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	rec := core.GetRecord()
	rec.Time = r.Time
	rec.Level = coreLevel(r.Level)
	rec.Target = h.target

	if h.attrs == "" && r.NumAttrs() == 0 {
		rec.Message = r.Message
	} else {
		var sb strings.Builder
		sb.WriteString(r.Message)
		sb.WriteString(h.attrs)
		prefix := h.target
		r.Attrs(func(a slog.Attr) bool {
			appendAttr(&sb, prefix, a)
			return true
		})
		rec.Message = sb.String()
	}

	err := format.Format(h.style, h.lw, rec)
	core.PutRecord(rec)
	return err
}

// WithAttrs returns a Handler that appends the given attributes to
// every record. The attrs are rendered once, here, not per call.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var sb strings.Builder
	sb.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&sb, h.target, a)
	}
	h2 := *h
	h2.attrs = sb.String()
	return &h2
}

// WithGroup returns a Handler scoped to the given group. The
// dot-joined group path becomes the record target used for filtering
// and the key prefix for subsequent attrs.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.groups = make([]string, len(h.groups), len(h.groups)+1)
	copy(h2.groups, h.groups)
	h2.groups = append(h2.groups, name)
	h2.target = strings.Join(h2.groups, ".")
	return &h2
}

// appendAttr renders one attr as " key=value", flattening groups into
// dot-prefixed keys. Empty attrs are dropped, per slog convention.
func appendAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Value.Kind() == slog.KindGroup {
		p := a.Key
		if prefix != "" {
			p = prefix + "." + a.Key
		}
		for _, ga := range a.Value.Group() {
			appendAttr(sb, p, ga)
		}
		return
	}
	if a.Key == "" {
		return
	}
	sb.WriteByte(' ')
	if prefix != "" {
		sb.WriteString(prefix)
		sb.WriteByte('.')
	}
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
}

// coreLevel converts a slog.Level to a core.Level. Anything below
// slog.LevelDebug is treated as trace.
func coreLevel(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}
