// Package format implements the style policy and line renderer that
// turn a log record into colorized terminal output.
//
// The required Style interface is deliberately narrow — ColorFor and
// TokenFor are the two methods custom styles actually change. The
// remaining behavior is provided as package-level defaults (Prefix,
// Separator, Format) that check optional capability interfaces
// (PrefixTokener, LineSeparatorer, Formatter) at call time, so a style
// overrides exactly as much as it needs and delegates the rest.
//
// Multi-line messages are re-indented: the first physical line carries
// the colorized prefix, every continuation line is indented by the
// visible width of that prefix so the message body forms one aligned
// block. The indent width is derived from the token, which is why
// tokens of a given style should share a fixed width.
//
// Color selection is expressed through *color.Color values from
// github.com/fatih/color; escape emission, tty detection, NO_COLOR and
// Windows console handling all live there. Rendering uses a pooled
// bytes.Buffer and performs a single Write per record. Buffers larger
// than 64 KiB are not returned to the pool to prevent one large log
// line from permanently inflating memory usage.
package format
