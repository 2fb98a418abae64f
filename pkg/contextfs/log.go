package contextfs

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LogFormat selects how log events are rendered.
type LogFormat string

const (
	// LogFormatConsole renders human-readable lines without color.
	LogFormatConsole LogFormat = "console"
	// LogFormatJSON renders one JSON object per event.
	LogFormatJSON LogFormat = "json"
)

// ParseLogFormat accepts "console" or "json", case-insensitively.
// An empty string means console.
func ParseLogFormat(s string) (LogFormat, error) {
	switch f := LogFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "", LogFormatConsole:
		return LogFormatConsole, nil
	case LogFormatJSON:
		return LogFormatJSON, nil
	default:
		return "", fmt.Errorf("unknown log format %q", s)
	}
}

// NewLogger creates a store logger writing to w at level in the given format.
func NewLogger(w io.Writer, level zerolog.Level, format LogFormat) zerolog.Logger {
	out := w
	if format != LogFormatJSON {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		}
	}
	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("lib", "contextfs").
		Logger()
}

// NewTestLogger creates a console logger for tests; higher verbosity logs more.
func NewTestLogger(w io.Writer, verbose int) zerolog.Logger {
	var level zerolog.Level
	switch verbose {
	case 0:
		level = zerolog.WarnLevel
	case 1:
		level = zerolog.InfoLevel
	case 2:
		level = zerolog.DebugLevel
	default:
		level = zerolog.TraceLevel
	}
	return NewLogger(w, level, LogFormatConsole)
}

// LogLevelFromString parses a string to a zerolog.Level.
func LogLevelFromString(levelStr string) (zerolog.Level, error) {
	return zerolog.ParseLevel(strings.ToLower(levelStr))
}

// DefaultLogger returns a console logger at warn level on stderr.
func DefaultLogger() zerolog.Logger {
	return NewLogger(os.Stderr, zerolog.WarnLevel, LogFormatConsole)
}

// entityLogger scopes l to one entity file. Empty fields are omitted so the
// same helper serves files whose type or id is not known yet.
func entityLogger(l zerolog.Logger, path string, entityType EntityType, id string) zerolog.Logger {
	ctx := l.With().Str("path", path)
	if entityType != "" {
		ctx = ctx.Str("entityType", string(entityType))
	}
	if id != "" {
		ctx = ctx.Str("entityId", id)
	}
	return ctx.Logger()
}
