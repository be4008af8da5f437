package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/Eofs791/tcdw-friends/config"
)

// newLogger creates the CLI logger. Logs go to w (stderr) so they never mix
// with the report on stdout.
func newLogger(w io.Writer, s config.LogSettings) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s.Level))); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if s.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
