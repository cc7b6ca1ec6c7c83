package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel maps a configured level name to a zerolog level, defaulting
// to info.
func ParseLevel(name string) zerolog.Level {
	switch name {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger creates a logger writing to stdout.
func NewLogger(cfg LoggerConfig) zerolog.Logger {
	return NewLoggerTo(os.Stdout, cfg)
}

// NewLoggerTo creates a logger writing to w in the configured format.
func NewLoggerTo(w io.Writer, cfg LoggerConfig) zerolog.Logger {
	zerolog.SetGlobalLevel(ParseLevel(cfg.Level))

	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(w).With().Timestamp().Str("app", "crazy-coffee").Logger()
}
