// =============================================================================
// Work History Formatter - Logging
// =============================================================================
//
// Converter progress and skipped-row warnings go through the Logger
// interface. NewLogger backs it with a zerolog console writer on stderr;
// tests and library callers can pass NewNopLogger or their own Logger.
//
// LEVELS:
//   debug : per-step progress (enabled by --verbose)
//   info  : run summary
//   warn  : skipped malformed rows
//
// =============================================================================

package converter

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger is the logging interface used by the converter.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
}

// zerologLogger adapts a zerolog.Logger to Logger.
type zerologLogger struct {
	log zerolog.Logger
}

// NewLogger returns a console logger writing to w at the given level
// ("debug", "info", "warn", "error"). Unknown levels fall back to info.
func NewLogger(w io.Writer, level string) Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	out := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}

	return &zerologLogger{
		log: zerolog.New(out).Level(lvl).With().Timestamp().Logger(),
	}
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger {
	return &zerologLogger{log: zerolog.Nop()}
}

func (l *zerologLogger) Debug(msg string, args ...interface{}) {
	l.log.Debug().Msgf(msg, args...)
}

func (l *zerologLogger) Info(msg string, args ...interface{}) {
	l.log.Info().Msgf(msg, args...)
}

func (l *zerologLogger) Warn(msg string, args ...interface{}) {
	l.log.Warn().Msgf(msg, args...)
}
