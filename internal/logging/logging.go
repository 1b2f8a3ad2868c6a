// Package logging configures the process-wide slog logger.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

// ParseLevel maps a config level name to a slog level. Unknown names fall
// back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// NewRotatingFile returns a size-rotated log file writer.
func NewRotatingFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}
}

// New builds a JSON logger writing to w.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// Setup installs a logger writing to the rotating file at path as the
// default. The returned closer flushes the file.
func Setup(path, level string) io.Closer {
	file := NewRotatingFile(path)

	slog.SetDefault(New(file, level))

	return file
}

// Dump logs a detailed representation of v at debug level.
func Dump(l *slog.Logger, msg string, v any) {
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	l.Debug(msg, slog.String("value", spew.Sdump(v)))
}
