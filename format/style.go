package format

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/colog-go/colog/core"
)

// Style selects the color and token rendered for each severity level.
// It is the narrow interface custom styles implement; everything else
// (prefix composition, continuation alignment, the rendering loop) has
// a package-level default that a style can opt out of by additionally
// implementing one of the optional interfaces below.
//
// A Style is shared read-only across all concurrent log calls, so it
// must be stateless or internally synchronized.
type Style interface {
	// ColorFor maps a severity level to its display color. It must be
	// a pure, total function: one color per level, no randomness.
	ColorFor(level core.Level) *color.Color

	// TokenFor returns the short label rendered in the prefix. Tokens
	// should share a fixed visual width so continuation lines of
	// different levels align identically.
	TokenFor(level core.Level) string
}

// PrefixTokener is an optional interface a Style can implement to take
// over composition of the full first-line prefix, including any
// bracketing and color application.
type PrefixTokener interface {
	PrefixToken(rec *core.Record) string
}

// LineSeparatorer is an optional interface a Style can implement to
// replace the derived continuation-line separator.
type LineSeparatorer interface {
	LineSeparator() string
}

// Formatter is an optional interface a Style can implement to take
// over rendering entirely. Format checks for it first and delegates
// without applying any of the default algorithm.
type Formatter interface {
	Format(w io.Writer, rec *core.Record) error
}

// Prefix returns the colorized prefix placed before the first line of
// a record. The default wraps the level token in brackets and applies
// the level color to the token only; the brackets and the message body
// stay uncolored.
func Prefix(s Style, rec *core.Record) string {
	if p, ok := s.(PrefixTokener); ok {
		return p.PrefixToken(rec)
	}
	return "[" + s.ColorFor(rec.Level).Sprint(s.TokenFor(rec.Level)) + "] "
}

// Separator returns the string joining continuation lines of a
// multi-line message. The default is a newline followed by as many
// spaces as the default prefix is wide when printed (brackets, token,
// trailing space — color escapes excluded), so wrapped lines sit flush
// under where the first line's message text begins. The width is
// derived from the token, never hardcoded, so custom tokens of a
// different length still align.
func Separator(s Style, level core.Level) string {
	if ls, ok := s.(LineSeparatorer); ok {
		return ls.LineSeparator()
	}
	width := utf8.RuneCountInString(s.TokenFor(level)) + 3 // "[", "]", " "
	return "\n" + strings.Repeat(" ", width)
}
