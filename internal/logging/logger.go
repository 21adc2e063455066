package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "EDITABLE_LOG_LEVEL"

// ParseLevel maps a level name to a zap level. Unknown names map to info,
// matching what an explicitly set but misspelled level should do.
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Initialize creates a new logger with the specified level writing to path.
// If level is empty, it checks EDITABLE_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
//
// An empty path writes to stderr. A TUI owns the terminal, so interactive
// commands should pass a file path.
func Initialize(level, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	output := "stderr"
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		output = path
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Silent until initialized so nothing leaks onto the TUI
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogTransition logs a field state change.
func LogTransition(fieldID, from, to, trigger string) {
	Debug("Field transition",
		zap.String("field", fieldID),
		zap.String("from", from),
		zap.String("to", to),
		zap.String("trigger", trigger),
	)
}

// LogRejectedCall logs a call that was not valid in the field's state.
func LogRejectedCall(fieldID, state, trigger string) {
	Debug("Field call ignored",
		zap.String("field", fieldID),
		zap.String("state", state),
		zap.String("trigger", trigger),
	)
}

// LogNotification logs an outward notification. value is empty for
// notifications without payload.
func LogNotification(fieldID, event, value string) {
	fields := []zap.Field{
		zap.String("field", fieldID),
		zap.String("event", event),
	}
	if value != "" {
		fields = append(fields, zap.String("value", value))
	}
	Info("Field notification", fields...)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
