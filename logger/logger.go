// Package logger provides the structured logger used by the loader, the
// scenario runner and the CLI.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the minimal logging surface the rest of the module depends on.
type Logger interface {
	Debugf(format string, args ...any)
	Debugw(msg string, fields map[string]any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no-op methods.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any)         {}
func (NopLogger) Debugw(string, map[string]any) {}
func (NopLogger) Infof(string, ...any)          {}
func (NopLogger) Warnf(string, ...any)          {}
func (NopLogger) Errorf(string, ...any)         {}

// ZerologLogger implements Logger using rs/zerolog.
type ZerologLogger struct {
	log zerolog.Logger
}

// New returns an info-level Logger for the given component. The output format
// is picked from the APP_ENV environment variable: "dev" gives a console
// writer, anything else JSON lines.
func New(component string) Logger {
	return NewWithLevel(component, "info")
}

// NewWithLevel is New with an explicit level name ("debug", "info", "warn",
// "error", ...). An unknown name falls back to info.
func NewWithLevel(component, level string) Logger {
	return NewWithWriter(os.Stderr, component, level)
}

// NewWithWriter builds a ZerologLogger writing to w, with the format taken
// from APP_ENV.
func NewWithWriter(w io.Writer, component, level string) *ZerologLogger {
	format := "json"
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		format = "console"
	}

	return NewFormatted(w, component, level, format)
}

// NewFormatted builds a ZerologLogger with an explicit format: "console" for
// human-readable lines, anything else for JSON.
func NewFormatted(w io.Writer, component, level, format string) *ZerologLogger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}
	z := zerolog.New(w).Level(lvl).With().Timestamp().Str("component", component).Logger()

	return &ZerologLogger{log: z}
}

func (l *ZerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *ZerologLogger) Debugw(msg string, fields map[string]any) {
	ev := l.log.Debug()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}

func (l *ZerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *ZerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *ZerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
