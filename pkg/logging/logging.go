// Package logging configures the process-wide slog logger for the contact
// book. Logs go to stderr so they never interleave with REPL output on
// stdout.
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: warn, keeping
//	interactive sessions quiet)
package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs a colored handler at the level named by the LOG_LEVEL
// environment variable.
func Setup() {
	SetupWithLevel(levelFromEnv())
}

// SetupWithLevel installs a colored handler at the given level.
func SetupWithLevel(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
