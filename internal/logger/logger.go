// Package logger wraps zerolog so every component logs structured JSON with
// the same fields, and request handlers can pull a trace-scoped child logger
// out of the request context.
package logger

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so Info/Warn/Error/... are available directly.
type Logger struct {
	zerolog.Logger
}

// New builds a JSON logger writing to stdout. Unknown levels fall back to info.
func New(role, level string) *Logger {
	return NewWithWriter(os.Stdout, role, level)
}

func NewWithWriter(w io.Writer, role, level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	l := zerolog.New(w).Level(lvl).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{l}
}

// Nop discards everything; used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Child returns a copy that can be enriched without touching the parent.
func (l *Logger) Child() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext returns the logger stored by zerolog's WithContext. When none
// was attached zerolog hands back its disabled logger, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
