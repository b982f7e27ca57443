package logger

import (
	"log/slog"

	"github.com/MGTheTrain/rsa-vault/internal/pkg/config"
	"github.com/natefinch/lumberjack"
)

// NewFileLogger writes JSON records to settings.FilePath, rotated and compressed by lumberjack
// according to the size, backup and age limits in settings.
func NewFileLogger(settings *config.LoggerSettings) Logger {
	rotator := &lumberjack.Logger{
		Filename:   settings.FilePath,
		MaxSize:    settings.MaxSize,
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAge,
		Compress:   true,
	}
	return newSlogLogger(slog.NewJSONHandler(rotator, &slog.HandlerOptions{Level: parseLevel(settings.LogLevel)}))
}
