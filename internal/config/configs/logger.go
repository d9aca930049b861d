package configs

import (
	"io"
	"log/slog"
	"strings"
)

// Logger configures the service's slog output. Level is one of "debug",
// "info", "warn" or "error"; Format is "text" or "json".
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
	// AddSource annotates records with the calling file and line.
	AddSource bool `env:"ADD_SOURCE" envDefault:"false"`
}

// SlogLevel maps Level onto a slog.Level, falling back to info.
func (c Logger) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.Level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SlogFormat returns "json" when requested and "text" otherwise.
func (c Logger) SlogFormat() string {
	if strings.EqualFold(strings.TrimSpace(c.Format), "json") {
		return "json"
	}
	return "text"
}

// New builds a logger writing to w.
func (c Logger) New(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel(), AddSource: c.AddSource}
	if c.SlogFormat() == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
