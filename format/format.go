package format

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/colog-go/colog/core"
)

// FormatFunc is the formatter callable bound to a logging backend:
// given a writer and a record it renders one complete log line. Bound
// functions returned by colog.Formatter are safe for concurrent use as
// long as the captured Style is.
type FormatFunc func(w io.Writer, rec *core.Record) error

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// Format renders rec through s and writes the result to w in a single
// Write call.
//
// The prefix is computed once per record. The message is split on
// embedded newlines: the first line follows the prefix directly, every
// further line is preceded by the continuation separator, and exactly
// one terminating newline ends the output. A message that itself ends
// in a newline therefore renders one trailing empty continuation line
// (plain split-on-newline semantics); styles needing different
// behavior implement Formatter.
//
// Format never fails for reasons of its own — the only error surface
// is the writer's, propagated unmodified with no retry.
func Format(s Style, w io.Writer, rec *core.Record) error {
	if f, ok := s.(Formatter); ok {
		return f.Format(w, rec)
	}

	buf := getBuffer()
	defer putBuffer(buf)

	buf.WriteString(Prefix(s, rec))
	line, rest, multi := strings.Cut(rec.Message, "\n")
	buf.WriteString(line)
	if multi {
		sep := Separator(s, rec.Level)
		for {
			line, rest, multi = strings.Cut(rest, "\n")
			buf.WriteString(sep)
			buf.WriteString(line)
			if !multi {
				break
			}
		}
	}
	buf.WriteByte('\n')

	_, err := w.Write(buf.Bytes())
	return err
}
