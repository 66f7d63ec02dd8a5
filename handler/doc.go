// Package handler binds the colog formatting layer to log/slog.
//
// Handler implements slog.Handler over any io.Writer and a
// format.Style. Severity gating happens in Enabled — either against a
// fixed slog.Leveler or against a per-target filter.Filter, keyed by
// the handler's dot-joined group path. Handle converts the slog record
// into a core.Record, flattens attrs into " key=value" message text,
// and delegates rendering to format.Format.
//
// Every record is formatted into a pooled buffer and written with a
// single Write call through a mutex-guarded writer that all
// WithAttrs/WithGroup clones share, so concurrent log calls from
// arbitrary goroutines never interleave bytes within one record.
// Ordering of records relative to each other is whatever order the
// writes win the lock in.
package handler
