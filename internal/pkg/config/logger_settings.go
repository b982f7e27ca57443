package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Log levels, ordered from most to least verbose. Critical is logged as error.
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Log sinks
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// LoggerSettings selects the log level and sink. The rotation fields are required for
// the file sink and ignored for the console.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=debug info warning error critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path" validate:"required_if=LogType file"`
	MaxSize    int    `mapstructure:"max_size" validate:"required_if=LogType file,gte=0,lte=100"`
	MaxBackups int    `mapstructure:"max_backups" validate:"required_if=LogType file,gte=0,lte=10"`
	MaxAge     int    `mapstructure:"max_age" validate:"required_if=LogType file,gte=0,lte=365"`
}

// ConsoleLoggerSettings returns console settings at level
func ConsoleLoggerSettings(level string) *LoggerSettings {
	return &LoggerSettings{LogLevel: level, LogType: LogTypeConsole}
}

// Validate checks that all fields in LoggerSettings are valid
func (s *LoggerSettings) Validate() error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed for LoggerSettings: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}
