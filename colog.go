package colog

import (
	"io"
	"log/slog"
	"os"

	colorable "github.com/mattn/go-colorable"

	"github.com/colog-go/colog/core"
	"github.com/colog-go/colog/filter"
	"github.com/colog-go/colog/format"
	"github.com/colog-go/colog/handler"
)

// EnvVar is the environment variable Init consults for a filter
// specification (see the filter package for the grammar).
const EnvVar = "GOLOG"

// LevelTrace is the slog.Level carrying trace records through the
// facade: slog.Default().Log(ctx, colog.LevelTrace, ...).
const LevelTrace = handler.LevelTrace

// Init installs colog as the process-wide slog backend with default
// styling, minimum severity Info, and output to stderr. When the GOLOG
// environment variable holds a well-formed filter specification it
// overrides the Info default with per-target thresholds; a malformed
// value is ignored.
//
// Calling Init again simply reinstalls the default logger, which is
// slog's own re-initialization policy.
func Init() {
	InitWithStyle(format.DefaultStyle{})
}

// InitWithStyle is Init with a custom style.
func InitWithStyle(style format.Style) {
	opts := &handler.Options{Level: slog.LevelInfo, Style: style}
	if spec := os.Getenv(EnvVar); spec != "" {
		if f, err := filter.Parse(spec); err == nil {
			opts.Filter = f
		}
	}
	slog.SetDefault(slog.New(handler.New(colorable.NewColorableStderr(), opts)))
}

// NewHandler returns a slog.Handler with colog's default styling
// applied when opts names none, leaving severity and environment
// handling to the caller. Use it as a building block in existing slog
// setups:
//
//	log := slog.New(colog.NewHandler(os.Stderr, nil))
func NewHandler(w io.Writer, opts *handler.Options) *handler.Handler {
	return handler.New(w, opts)
}

// Formatter binds a style into a reusable formatting function. The
// style is captured once and shared by every subsequent call, so it
// must be stateless or internally synchronized; the returned function
// is then safe to invoke from arbitrary goroutines.
func Formatter(style format.Style) format.FormatFunc {
	return func(w io.Writer, rec *core.Record) error {
		return format.Format(style, w, rec)
	}
}
