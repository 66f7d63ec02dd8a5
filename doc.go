// Package colog is a colored formatting layer for the standard
// library's log/slog facade.
//
// It turns each log record into a human-readable terminal line: a
// colorized one-letter level token in brackets, then the message, with
// continuation lines of multi-line messages indented to align under
// the first line. It is not a logging framework — level gating, call
// sites, and record construction all belong to slog; colog only
// decides what the bytes look like.
//
// # Quick start
//
//	colog.Init()
//
//	slog.Error("error message")
//	slog.Error(fmt.Sprintf("error with fmt: %d", 42))
//	slog.Warn("warn message")
//	slog.Info("info message")
//	slog.Debug("debug message") // not printed (Info is the default level)
//
//	// multi-line messages are aligned gracefully
//	slog.Info("multi line demonstration\nhere")
//	slog.Info("more\nmulti\nline\nhere\nhere")
//
// Init writes to stderr, shows Info and up, and honors the GOLOG
// environment variable for per-target filtering ("warn,store=debug").
//
// # Custom styling
//
// All styling goes through the format.Style interface. Implement its
// two methods (ColorFor, TokenFor) for custom colors or tokens, and
// optionally PrefixToken, LineSeparator, or Format for deeper changes;
// every default the style does not override stays in effect. Install a
// custom style globally with InitWithStyle, or keep full manual
// control:
//
//	h := colog.NewHandler(os.Stderr, &handler.Options{
//		Style: myStyle,
//		Level: slog.LevelDebug,
//	})
//	slog.SetDefault(slog.New(h))
//
// Color capability detection (tty checks, NO_COLOR, Windows consoles)
// is handled by the underlying color stack, not by colog.
package colog
