package format_test

import (
	"os"

	"github.com/fatih/color"

	"github.com/colog-go/colog/core"
	"github.com/colog-go/colog/format"
)

func ExampleFormat() {
	color.NoColor = true // deterministic example output

	rec := &core.Record{
		Level:   core.InfoLevel,
		Message: "multi line demonstration\nhere",
	}
	format.Format(format.DefaultStyle{}, os.Stdout, rec)
	// Output:
	// [I] multi line demonstration
	//     here
}

func ExampleSeparator() {
	color.NoColor = true

	// The continuation indent is derived from the token width, so it
	// always matches the visible width of the prefix.
	s := format.DefaultStyle{}
	rec := &core.Record{Level: core.ErrorLevel, Message: "first\nsecond\nthird"}
	format.Format(s, os.Stdout, rec)
	// Output:
	// [E] first
	//     second
	//     third
}
