// Package logging configures colored structured logging with tint.
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup configures logging at the level named by LOG_LEVEL.
func Setup() {
	SetupWithLevel(ParseLevel(os.Getenv("LOG_LEVEL")))
}

// SetupWithLevel installs a tint handler on stderr as the slog default.
func SetupWithLevel(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  level == slog.LevelDebug,
		}),
	))
}

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
