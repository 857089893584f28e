package logger

import (
	"io"
	"log/slog"
	"os"
)

var Logger *slog.Logger

func init() {
	SetOutput(os.Stdout, slog.LevelInfo)
}

// SetOutput replaces the package logger with a JSON logger writing to w.
func SetOutput(w io.Writer, level slog.Level) {
	Logger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}
