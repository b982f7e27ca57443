package logger

import (
	"errors"
	"fmt"
	"sync"

	"github.com/MGTheTrain/rsa-vault/internal/pkg/config"
)

var (
	loggerInstance Logger
	loggerErr      error
	loggerOnce     sync.Once
)

// ErrNotInitialized is returned by GetLogger before a successful InitLogger.
var ErrNotInitialized = errors.New("logger not initialized: call InitLogger first")

// InitLogger builds the process-wide logger. Only the first call has any effect; later calls
// return the outcome of the first.
func InitLogger(settings *config.LoggerSettings) error {
	loggerOnce.Do(func() {
		loggerInstance, loggerErr = newLogger(settings)
	})
	return loggerErr
}

// GetLogger returns the logger built by InitLogger.
func GetLogger() (Logger, error) {
	if loggerInstance == nil {
		return nil, ErrNotInitialized
	}
	return loggerInstance, nil
}

func newLogger(settings *config.LoggerSettings) (Logger, error) {
	if settings == nil {
		return nil, errors.New("logger settings are nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger settings: %w", err)
	}

	switch settings.LogType {
	case config.LogTypeFile:
		return NewFileLogger(settings), nil
	default:
		return NewConsoleLogger(settings.LogLevel), nil
	}
}
