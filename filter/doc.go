// Package filter parses the environment-variable filter specification
// that scopes log severity per target.
//
// The grammar follows the usual env-logger convention: a
// comma-separated list where a bare level name sets the process-wide
// threshold and "target=level" overrides it for one target subtree.
// For example
//
//	GOLOG=warn,store=debug,store/gc=trace
//
// shows warnings and up everywhere, debug and up from store, and
// everything from store/gc. Target matching is by path prefix on '.'
// or '/' boundaries, and the most specific (longest) matching
// directive wins.
//
// The package only parses and answers Enabled queries; wiring the
// GOLOG variable into a handler happens in the root colog package.
package filter
