package logger

import (
	"log/slog"
	"os"
)

// InitJSONLogger sets the default slog logger to emit structured JSON,
// so every log line is machine-parseable.
func InitJSONLogger() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
