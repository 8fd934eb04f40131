// Package logging wraps zerolog into the small structured-logging
// surface the engine's worker loop and dispatcher need: leveled,
// JSON-by-default output with per-event fields for connection IDs,
// thread indices, and error kinds (spec.md §7's error-kind taxonomy).
//
// Grounded on jhkimqd-chaos-utils's pkg/reporting.Logger: same
// Level/Format/Output configuration shape and JSON-vs-console output
// selection, narrowed to the fields this engine actually emits.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level mirrors zerolog's levels without leaking the zerolog import into
// every caller.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Format selects the wire shape of log lines.
type Format string

const (
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

// Config configures a Logger.
type Config struct {
	Level  Level
	Format Format
	Output io.Writer // defaults to os.Stderr
}

// Logger is a thin zerolog.Logger wrapper scoped to this engine's events.
type Logger struct {
	z zerolog.Logger
}

// New builds a Logger from cfg.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Format == FormatConsole {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	z := zerolog.New(out).With().Timestamp().Logger()
	switch cfg.Level {
	case LevelDebug:
		z = z.Level(zerolog.DebugLevel)
	case LevelWarn:
		z = z.Level(zerolog.WarnLevel)
	case LevelError:
		z = z.Level(zerolog.ErrorLevel)
	default:
		z = z.Level(zerolog.InfoLevel)
	}

	return &Logger{z: z}
}

// WithThread returns a child logger tagging every event with the worker
// shard index, so interleaved worker output stays attributable. Safe to
// call on a nil Logger (returns nil), since the dispatcher's logger is
// an optional side-channel (spec.md §6/§2.1).
func (l *Logger) WithThread(idx int) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{z: l.z.With().Int("thread", idx).Logger()}
}

// WithConnection tags events with the (source, sink, length) triple
// currently under analysis. Safe to call on a nil Logger.
func (l *Logger) WithConnection(source, sink, length int) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{z: l.z.With().Int("source", source).Int("sink", sink).Int("length", length).Logger()}
}

// WithFields tags events with an arbitrary set of named numeric fields,
// used for the dispatcher's final structured summary line (spec.md
// §2.1, §6). Safe to call on a nil Logger.
func (l *Logger) WithFields(fields map[string]float64) *Logger {
	if l == nil {
		return nil
	}
	ctx := l.z.With()
	for k, v := range fields {
		ctx = ctx.Float64(k, v)
	}
	return &Logger{z: ctx.Logger()}
}

// Debug, Info, Warn, and Error are no-ops on a nil Logger, so callers
// that treat logging as optional instrumentation never need a nil check
// of their own.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.z.Debug().Msg(msg)
}

func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.z.Info().Msg(msg)
}

func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.z.Warn().Msg(msg)
}

// Error logs err at error level. Per spec.md §7, every error kind this
// engine produces is fatal to its worker; Error does not itself abort —
// the caller still propagates err up to the dispatcher join.
func (l *Logger) Error(msg string, err error) {
	if l == nil {
		return
	}
	l.z.Error().Err(err).Msg(msg)
}
