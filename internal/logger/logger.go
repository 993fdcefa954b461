// Package logger wraps zerolog for the diagnostic output slacks prints
// with --debug.
//
// Diagnostics go to standard error in zerolog's console format so they
// never mix with the message text or the interactive prompts on stdout.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Logger embeds zerolog.Logger so the full zerolog API is available
type Logger struct {
	zerolog.Logger
}

// New creates a logger writing to w. Debug events are emitted only when
// debug is true; warnings and errors always are.
func New(w io.Writer, debug bool) *Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.TimeOnly,
	}

	l := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &Logger{l}
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
