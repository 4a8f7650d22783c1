// Package logger configures the process-wide slog logger.
package logger

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

const (
	// EnvVarLogLevel is the environment variable name for setting the log level.
	EnvVarLogLevel = "LOG_LEVEL"

	// FormatJSON selects slog's JSON handler, used when running as a service.
	FormatJSON = "json"

	// FormatText selects slog's text handler, easier to read in a terminal.
	FormatText = "text"
)

// Options configure a structured logger.
type Options struct {
	// Module and Version are attached to every record.
	Module  string
	Version string

	// Level is parsed with ParseLogLevel. Empty falls back to LOG_LEVEL.
	Level string

	// Format is FormatJSON (default) or FormatText.
	Format string

	// Writer defaults to os.Stderr.
	Writer io.Writer
}

// New creates a structured logger. AddSource is enabled for debug level logging only.
func New(opts Options) *slog.Logger {
	level := opts.Level
	if level == "" {
		level = os.Getenv(EnvVarLogLevel)
	}
	lev := ParseLogLevel(level)

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	ho := &slog.HandlerOptions{
		Level:     lev,
		AddSource: lev <= slog.LevelDebug,
	}

	var h slog.Handler
	if strings.EqualFold(opts.Format, FormatText) {
		h = slog.NewTextHandler(w, ho)
	} else {
		h = slog.NewJSONHandler(w, ho)
	}

	return slog.New(h).With("module", opts.Module, "version", opts.Version)
}

// NewLogLogger adapts slog to a standard library *log.Logger, e.g. for http.Server.ErrorLog.
func NewLogLogger(level slog.Level, withSource bool) *log.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: withSource,
	})

	return slog.NewLogLogger(handler, level)
}

// SetDefault builds a logger from opts and installs it as the slog default.
func SetDefault(opts Options) *slog.Logger {
	l := New(opts)
	slog.SetDefault(l)
	return l
}

// ParseLogLevel converts a string representation of a log level into a slog.Level.
// Unrecognized strings map to slog.LevelInfo.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
