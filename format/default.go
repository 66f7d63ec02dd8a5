package format

import (
	"github.com/fatih/color"

	"github.com/colog-go/colog/core"
)

// DefaultStyle is the stock colog look: a one-letter level initial in
// brackets, colored by severity. It is stateless; the zero value is
// ready to use and safe for concurrent sharing.
type DefaultStyle struct{}

// pre-built colors, one per level, so ColorFor never allocates
var (
	errorColor = color.New(color.FgRed)
	warnColor  = color.New(color.FgYellow)
	infoColor  = color.New(color.FgGreen)
	debugColor = color.New(color.FgBlue)
	traceColor = color.New(color.FgCyan)
)

// ColorFor returns the display color for a level: Error red, Warn
// yellow, Info green, Debug blue, Trace cyan.
func (DefaultStyle) ColorFor(level core.Level) *color.Color {
	switch level {
	case core.ErrorLevel:
		return errorColor
	case core.WarnLevel:
		return warnColor
	case core.InfoLevel:
		return infoColor
	case core.DebugLevel:
		return debugColor
	case core.TraceLevel:
		return traceColor
	default:
		return infoColor
	}
}

// TokenFor returns the one-letter level initial. All tokens are one
// rune wide, which keeps the derived continuation indent identical
// across levels.
func (DefaultStyle) TokenFor(level core.Level) string {
	switch level {
	case core.ErrorLevel:
		return "E"
	case core.WarnLevel:
		return "W"
	case core.InfoLevel:
		return "I"
	case core.DebugLevel:
		return "D"
	case core.TraceLevel:
		return "T"
	default:
		return "?"
	}
}
