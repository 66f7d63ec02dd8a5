package benchmark

import (
	"io"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/colog-go/colog"
	"github.com/colog-go/colog/handler"
)

// ---------------------------------------------------------------------------
// Helpers – identical sink for every framework (io.Discard), colored
// console output everywhere so the escape-sequence cost is included.
// ---------------------------------------------------------------------------

func init() {
	// io.Discard is not a tty; force colors so the benchmarks measure
	// the colored path.
	color.NoColor = false
}

// newCologLogger returns an slog.Logger backed by the colog handler.
func newCologLogger() *slog.Logger {
	h := colog.NewHandler(io.Discard, &handler.Options{Level: slog.LevelDebug})
	return slog.New(h)
}

// newSlogLogger returns the stdlib text handler as the baseline.
func newSlogLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// newZapLogger returns a zap.Logger with a colored console encoder.
func newZapLogger() *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	enc := zapcore.NewConsoleEncoder(cfg)
	core := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel)
	return zap.New(core)
}

// newLogrusLogger returns a logrus.Logger with forced colors.
func newLogrusLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	l.SetLevel(logrus.DebugLevel)
	return l
}

// newZerologLogger returns a zerolog.Logger with the console writer.
func newZerologLogger() zerolog.Logger {
	w := zerolog.ConsoleWriter{Out: io.Discard, NoColor: false}
	return zerolog.New(w).Level(zerolog.DebugLevel)
}

// ---------------------------------------------------------------------------
// Scenario 1 – Info message, single line
// ---------------------------------------------------------------------------

func BenchmarkConsole_InfoSingleLine(b *testing.B) {
	b.Run("colog", func(b *testing.B) {
		l := newCologLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("slog-text", func(b *testing.B) {
		l := newSlogLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("zap-console", func(b *testing.B) {
		l := newZapLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("logrus-text", func(b *testing.B) {
		l := newLogrusLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("zerolog-console", func(b *testing.B) {
		l := newZerologLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msg("info message")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 2 – multi-line message (colog's continuation alignment path)
// ---------------------------------------------------------------------------

func BenchmarkConsole_InfoMultiLine(b *testing.B) {
	const msg = "more\nmulti\nline\nhere\nhere"

	b.Run("colog", func(b *testing.B) {
		l := newCologLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info(msg)
		}
	})

	b.Run("slog-text", func(b *testing.B) {
		l := newSlogLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info(msg)
		}
	})

	b.Run("zap-console", func(b *testing.B) {
		l := newZapLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info(msg)
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 3 – Error with a few attrs
// ---------------------------------------------------------------------------

func BenchmarkConsole_ErrorWithAttrs(b *testing.B) {
	b.Run("colog", func(b *testing.B) {
		l := newCologLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Error("request failed", "status", 502, "path", "/api/v1/items")
		}
	})

	b.Run("slog-text", func(b *testing.B) {
		l := newSlogLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Error("request failed", "status", 502, "path", "/api/v1/items")
		}
	})

	b.Run("zap-console", func(b *testing.B) {
		l := newZapLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Error("request failed", zap.Int("status", 502), zap.String("path", "/api/v1/items"))
		}
	})

	b.Run("zerolog-console", func(b *testing.B) {
		l := newZerologLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Error().Int("status", 502).Str("path", "/api/v1/items").Msg("request failed")
		}
	})
}
