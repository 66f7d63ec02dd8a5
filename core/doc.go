// Package core defines the shared types used across the colog module.
//
// It provides the Level type for severity ordering and the Record type
// that represents a single log event as the formatting layer sees it:
// a timestamp, a severity, an optional target path, and an opaque
// message string that may contain embedded newlines.
//
// Record objects are pooled via sync.Pool since the slog binding
// creates and discards one per log call. Callers get a Record with
// GetRecord and must return it with PutRecord once the formatter has
// consumed it.
package core
