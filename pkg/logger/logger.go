package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"pdf-extract-service/internal/domain"
)

// AppLogger implements the domain.Logger interface on top of logrus.
type AppLogger struct {
	log *logrus.Logger
}

// NewLogger creates a new logger instance
func NewLogger(levelStr string) domain.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return &AppLogger{log: log}
}

// Info logs an info message
func (l *AppLogger) Info(msg string, fields ...interface{}) {
	l.log.WithFields(toFields(fields)).Info(msg)
}

// Error logs an error message
func (l *AppLogger) Error(msg string, err error, fields ...interface{}) {
	l.log.WithFields(toFields(fields)).WithError(err).Error(msg)
}

// Debug logs a debug message
func (l *AppLogger) Debug(msg string, fields ...interface{}) {
	l.log.WithFields(toFields(fields)).Debug(msg)
}

// Warn logs a warning message
func (l *AppLogger) Warn(msg string, fields ...interface{}) {
	l.log.WithFields(toFields(fields)).Warn(msg)
}

// toFields converts variadic key-value pairs into logrus fields. Keys
// that are not strings are stringified; a trailing key without a value
// is dropped.
func toFields(fields []interface{}) logrus.Fields {
	out := make(logrus.Fields, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", fields[i])
		}
		out[key] = fields[i+1]
	}
	return out
}
