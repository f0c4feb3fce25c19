// Package telemetry gives the core's public operations structured
// logging and Prometheus metrics: slog with an optional
// lumberjack-rotated file sink, and a small set of Prometheus counter,
// histogram and gauge vectors for per-operation run counts and durations.
package telemetry

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/evroute/evroute/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds a slog.Logger from the resolved LogConfig: JSON or
// text handler, writing to stdout/stderr or a size/age-rotated file.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	writer := resolveWriter(cfg)
	opts := &slog.HandlerOptions{Level: level, AddSource: level == slog.LevelDebug}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(writer, opts)
	} else {
		handler = slog.NewJSONHandler(writer, opts)
	}
	return slog.New(handler)
}

func resolveWriter(cfg config.LogConfig) io.Writer {
	switch cfg.Output {
	case "stderr":
		return os.Stderr
	case "file":
		path := cfg.FilePath
		if path == "" {
			path = "logs/evroute.log"
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return os.Stdout
		}
		return &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
	default:
		return os.Stdout
	}
}

// WithOperation returns a logger scoped to a single public operation
// (dijkstra, fw, fw-history, cs-fw, cs-fw-final), used by cmd/evroute to
// tag every log line with the operation it came from.
func WithOperation(log *slog.Logger, op string) *slog.Logger {
	return log.With("operation", op)
}
