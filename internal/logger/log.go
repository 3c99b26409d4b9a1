// Package logger configures the process-wide slog logger. Services log
// through the package helpers with dotted event names ("intern.create.ok",
// "task.bulk.done") so log lines are grep-able per operation.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/lumberjack.v2"

	"ltg-admin/internal/config"
)

const appName = "ltg-admin"

// Init installs the JSON logger as the slog default. Console and rotating
// file writers combine per config; with neither configured, stdout.
func Init(cfg config.LogConfig) {
	h := slog.NewJSONHandler(writer(cfg), &slog.HandlerOptions{Level: parseLevel(cfg.Level)})
	slog.SetDefault(slog.New(h).With("app", appName))
	Info("logger.init", "level", cfg.Level, "file", cfg.File)
}

func writer(cfg config.LogConfig) io.Writer {
	var writers []io.Writer
	if cfg.Console {
		writers = append(writers, os.Stdout)
	}
	if cfg.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			LocalTime:  true,
		})
	}
	if len(writers) == 0 {
		return os.Stdout
	}
	return io.MultiWriter(writers...)
}

func Info(msg string, args ...any)  { slog.Info(msg, args...) }
func Warn(msg string, args ...any)  { slog.Warn(msg, args...) }
func Debug(msg string, args ...any) { slog.Debug(msg, args...) }

// Err logs a failed operation with the error attached as the "err" attribute.
func Err(msg string, err error, args ...any) {
	slog.Error(msg, append([]any{"err", err}, args...)...)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
