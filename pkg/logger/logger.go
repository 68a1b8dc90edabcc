// Package logger builds the application's slog loggers: leveled text or
// JSON output on stderr, optionally teed into a size-rotated log file.
package logger

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation defaults applied when FileOptions leaves them zero.
const (
	defaultMaxSizeMB  = 50
	defaultMaxBackups = 3
	defaultMaxAgeDays = 28
)

// FileOptions configures rotating file output. An empty Path disables it.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New returns a stderr logger at the given level ("debug", "info", "warn",
// "error") and format ("text" or "json"). Unknown values fall back to
// info-level text.
func New(level, format string) *slog.Logger {
	return NewWithWriter(os.Stderr, level, format)
}

// NewWithFile returns a logger writing to stderr and, when file.Path is
// set, to a rotated log file as well.
func NewWithFile(level, format string, file FileOptions) *slog.Logger {
	if file.Path == "" {
		return New(level, format)
	}

	rotated := &lumberjack.Logger{
		Filename:   file.Path,
		MaxSize:    orDefault(file.MaxSizeMB, defaultMaxSizeMB),
		MaxBackups: orDefault(file.MaxBackups, defaultMaxBackups),
		MaxAge:     orDefault(file.MaxAgeDays, defaultMaxAgeDays),
	}

	return NewWithWriter(io.MultiWriter(os.Stderr, rotated), level, format)
}

// NewWithWriter returns a logger writing to w. Tests use this to capture
// output.
func NewWithWriter(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel maps a level name to its slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func orDefault(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}
