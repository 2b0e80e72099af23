// Package logging configures the global slog logger for the wayclip binary:
// human-readable tinted output on terminals, JSON when logs go to a file or
// journal.
package logging

import (
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pwntr/tinter"
)

// Setup configures the global slog logger. format is "auto", "text" or
// "json"; level is a slog level name, defaulting to info. Call once after
// flag/viper parsing.
func Setup(format, level string) {
	w := os.Stderr
	tty := isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd())

	var h slog.Handler
	if useText(format, tty) {
		h = tinter.NewHandler(w, &tinter.Options{
			Level:      ParseLevel(level),
			TimeFormat: "15:04:05",
		})
	} else {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: ParseLevel(level),
		})
	}
	slog.SetDefault(slog.New(h))
}

func useText(format string, tty bool) bool {
	switch strings.ToLower(format) {
	case "text", "tint", "human":
		return true
	case "json":
		return false
	default:
		return tty
	}
}

// ParseLevel converts a level name to a slog.Level, defaulting to Info for
// empty or unknown values.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if s == "" || l.UnmarshalText([]byte(s)) != nil {
		return slog.LevelInfo
	}
	return l
}
