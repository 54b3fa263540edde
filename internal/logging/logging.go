// Package logging configures the process-wide slog default and hands out
// component-scoped loggers.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Environment variables consulted by InitFromEnv.
const (
	EnvLevel  = "GLAZIER_LOG_LEVEL"
	EnvFormat = "GLAZIER_LOG_FORMAT"
)

// Init configures the global slog default with the given level and format.
// If w is nil, os.Stderr is used. Format must be "text" or "json".
func Init(level slog.Level, format string, w ...io.Writer) {
	var writer io.Writer = os.Stderr
	if len(w) > 0 && w[0] != nil {
		writer = w[0]
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(writer, opts)
	default:
		handler = slog.NewTextHandler(writer, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// InitFromEnv configures logging from GLAZIER_LOG_LEVEL (debug, info, warn,
// error; default info) and GLAZIER_LOG_FORMAT (text or json; default text).
// Unrecognized values fall back to the defaults rather than failing.
func InitFromEnv() {
	Init(ParseLevel(os.Getenv(EnvLevel)), strings.ToLower(os.Getenv(EnvFormat)))
}

// ParseLevel maps a level name to a slog.Level, defaulting to Info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
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

// New returns a logger with a "component" attribute for module-scoped logging.
func New(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}
