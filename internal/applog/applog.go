// Package applog builds the application's slog logger. The UI owns the
// terminal, so records only ever go to a rotating file; with no file
// configured they are discarded.
package applog

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger construction.
type Options struct {
	Level  string // debug|info|warn|error
	Format string // json|text
	File   string // rotated log file; empty discards
}

// Logger wraps a slog.Logger together with the writer it owns.
type Logger struct {
	*slog.Logger
	Session string
	closer  io.Closer
}

// New builds a logger. Every record carries the app name and a per-run
// session id.
func New(opts Options) *Logger {
	var w io.Writer = io.Discard
	var closer io.Closer
	if strings.TrimSpace(opts.File) != "" {
		rot := &lj.Logger{Filename: opts.File, MaxSize: 5, MaxBackups: 3, MaxAge: 28, Compress: true}
		w, closer = rot, rot
	}
	return newWithWriter(opts, w, closer)
}

func newWithWriter(opts Options, w io.Writer, closer io.Closer) *Logger {
	ho := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}
	var h slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "text") {
		h = slog.NewTextHandler(w, ho)
	} else {
		h = slog.NewJSONHandler(w, ho)
	}
	session := uuid.NewString()
	l := slog.New(h).With(
		slog.String("app", "valentine"),
		slog.String("session", session),
	)
	return &Logger{Logger: l, Session: session, closer: closer}
}

// Close flushes and releases the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// WithComponent returns a logger with the component attribute pre-set.
func (l *Logger) WithComponent(name string) *slog.Logger {
	return l.With(slog.String("component", name))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// ParseLevel converts a string to slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
