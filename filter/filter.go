package filter

import (
	"fmt"
	"strings"

	"github.com/colog-go/colog/core"
)

// directive is one parsed entry of a filter specification: a severity
// threshold, optionally scoped to a target path.
type directive struct {
	target string
	level  core.Level
}

// Filter holds per-target severity thresholds parsed from a filter
// specification string. The zero value is not useful; construct with
// Parse. A Filter is immutable after Parse and safe for concurrent
// use.
type Filter struct {
	fallback   core.Level
	directives []directive
}

// Parse parses a comma-separated filter specification. Each entry is
// either a bare level name ("debug"), which sets the fallback
// threshold, or "target=level" ("net/http=trace"), which sets the
// threshold for that target and everything below it. Level names are
// case-insensitive. The fallback defaults to Info when no bare level
// appears.
//
// Parse returns an error for unknown level names and for directives
// with an empty target; it never partially applies a malformed
// specification.
func Parse(spec string) (*Filter, error) {
	f := &Filter{fallback: core.InfoLevel}
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		target, levelName, scoped := strings.Cut(part, "=")
		if !scoped {
			level, err := core.ParseLevel(part)
			if err != nil {
				return nil, fmt.Errorf("filter: %w", err)
			}
			f.fallback = level
			continue
		}
		target = strings.TrimSpace(target)
		if target == "" {
			return nil, fmt.Errorf("filter: empty target in directive %q", part)
		}
		level, err := core.ParseLevel(levelName)
		if err != nil {
			return nil, fmt.Errorf("filter: directive %q: %w", part, err)
		}
		f.directives = append(f.directives, directive{target: target, level: level})
	}
	return f, nil
}

// Enabled reports whether a record originating from target at the
// given level passes the filter. The directive whose target is the
// longest path-prefix match of the record's target decides; with no
// match the fallback threshold applies.
func (f *Filter) Enabled(target string, level core.Level) bool {
	threshold := f.fallback
	best := -1
	for _, d := range f.directives {
		if len(d.target) > best && pathPrefix(target, d.target) {
			best = len(d.target)
			threshold = d.level
		}
	}
	return level >= threshold
}

// pathPrefix reports whether prefix matches target on a path-segment
// boundary: "net" matches "net" and "net.http" but not "nether".
func pathPrefix(target, prefix string) bool {
	if !strings.HasPrefix(target, prefix) {
		return false
	}
	if len(target) == len(prefix) {
		return true
	}
	return target[len(prefix)] == '.' || target[len(prefix)] == '/'
}
