package log

import (
	"io"
	"log/slog"
	"strings"
)

// New constructs a JSON slog.Logger writing to w at the provided level
func New(w io.Writer, service, version string, lvl slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: lvl,
	})

	return slog.New(handler).With(
		slog.String("service", service),
		slog.String("version", version))
}

// ParseLevel maps a configured level name (debug, info, warn, error) onto
// a slog.Level
func ParseLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, err
	}
	return lvl, nil
}
