package logger

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/MGTheTrain/rsa-vault/internal/pkg/config"
)

// Logger defines the logging interface
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}

// slogLogger backs both sinks; only the handler differs.
type slogLogger struct {
	logger *slog.Logger
	exit   func(int)
}

func newSlogLogger(handler slog.Handler) *slogLogger {
	return &slogLogger{logger: slog.New(handler), exit: os.Exit}
}

func (l *slogLogger) Debug(args ...interface{}) { l.logger.Debug(formatArgs(args...)) }
func (l *slogLogger) Info(args ...interface{}) { l.logger.Info(formatArgs(args...)) }
func (l *slogLogger) Warn(args ...interface{}) { l.logger.Warn(formatArgs(args...)) }
func (l *slogLogger) Error(args ...interface{}) { l.logger.Error(formatArgs(args...)) }

// Fatal logs at error level and terminates the process with status 1.
func (l *slogLogger) Fatal(args ...interface{}) {
	l.logger.Error(formatArgs(args...), slog.Bool("fatal", true))
	l.exit(1)
}

// Panic logs at error level and panics with the formatted message.
func (l *slogLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.logger.Error(msg)
	panic(msg)
}

// parseLevel maps a configured level name onto slog; unknown names fall back to info.
func parseLevel(level string) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelWarning:
		return slog.LevelWarn
	case config.LogLevelError, config.LogLevelCritical:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func formatArgs(args ...interface{}) string {
	if len(args) == 0 {
		return ""
	}
	return fmt.Sprint(args...)
}
