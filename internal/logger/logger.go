// Package logger provides a thin wrapper around zerolog.Logger used for the
// application's diagnostics.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger. It also
// implements the error-log sink the settings subsystem reports swallowed
// failures to, via Record.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label
// (e.g. "mmdl-config", "mmdl-settings") writing JSON lines to w.
//
// Every entry carries:
//   - a "role" field set to role;
//   - a "ts" timestamp;
//   - a "func" caller field with the fully-qualified function name.
func NewLogger(role string, w io.Writer) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
	zerolog.TimestampFieldName = "ts"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewFileLogger constructs a *Logger that appends to the file at path,
// creating it and its directory if needed.
//
// The returned close function releases the file. If the file cannot be
// opened the logger falls back to os.Stderr and close is a no-op.
func NewFileLogger(role, path string) (*Logger, func() error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err == nil {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			return NewLogger(role, f), f.Close
		}
	}

	return NewLogger(role, os.Stderr), func() error { return nil }
}

// Nop returns a *Logger that discards all log output.
// It is intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithLevel returns a child logger that only emits entries at or above level.
func (l *Logger) WithLevel(level zerolog.Level) *Logger {
	return &Logger{l.Level(level)}
}

// Record writes an error-level entry describing a failure that the caller
// handled (swallowed) instead of returning.
//
// event is a short human-readable description, context is optional extra
// detail such as a file path or key name, cause is the underlying error.
// The "func" field names the caller of Record.
func (l *Logger) Record(event, context string, cause error) {
	e := l.Error().CallerSkipFrame(1).Err(cause)
	if context != "" {
		e = e.Str("context", context)
	}
	e.Msg(event)
}
