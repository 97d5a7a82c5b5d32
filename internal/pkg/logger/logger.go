package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zonewatch/geofence/internal/pkg/models"
)

// AppLogger is our structured application logger built on logrus
type AppLogger struct {
	log      *logrus.Logger
	filePath string
	file     *os.File
}

// NewAppLogger creates a new application logger from configuration
func NewAppLogger(config models.LoggerConfig) (*AppLogger, error) {
	log := logrus.New()

	// Set log level
	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	// Set JSON formatter for structured logging
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	appLogger := &AppLogger{log: log}

	if config.Type == "file" && config.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(config.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		file, err := os.OpenFile(config.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}

		appLogger.filePath = config.FilePath
		appLogger.file = file
		log.SetOutput(io.MultiWriter(os.Stdout, file))
	} else {
		log.SetOutput(os.Stdout)
	}

	return appLogger, nil
}

// Logrus exposes the underlying logrus logger for middleware integration
func (l *AppLogger) Logrus() *logrus.Logger {
	return l.log
}

// Debug logs a debug message with structured fields
func (l *AppLogger) Debug(msg string, fields ...Field) {
	l.log.WithFields(toLogrusFields(fields)).Debug(msg)
}

// Info logs an info message with structured fields
func (l *AppLogger) Info(msg string, fields ...Field) {
	l.log.WithFields(toLogrusFields(fields)).Info(msg)
}

// Warn logs a warning message with structured fields
func (l *AppLogger) Warn(msg string, fields ...Field) {
	l.log.WithFields(toLogrusFields(fields)).Warn(msg)
}

// Error logs an error message with structured fields
func (l *AppLogger) Error(msg string, fields ...Field) {
	l.log.WithFields(toLogrusFields(fields)).Error(msg)
}

// Fatal logs a fatal message with structured fields and exits
func (l *AppLogger) Fatal(msg string, fields ...Field) {
	l.log.WithFields(toLogrusFields(fields)).Fatal(msg)
}

// Close releases the log file if one is open
func (l *AppLogger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
