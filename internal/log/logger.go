// Package log is a thin facade over logrus used throughout shareview.
package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// SetDebug toggles debug-level output.
func SetDebug(debug bool) {
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

// SetOutput redirects log output; tests use this to capture messages.
func SetOutput(out *os.File) {
	logger.SetOutput(out)
}

// Field is a single structured logging field.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field for LogWithFields.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// LogWithFields returns an entry carrying the given structured fields.
func LogWithFields(fields ...Field) *logrus.Entry {
	lf := make(logrus.Fields, len(fields))
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return logger.WithFields(lf)
}

// Info logs a message at info level.
func Info(msg string, args ...interface{}) {
	if len(args) > 0 {
		logger.Infof(msg, args...)
		return
	}
	logger.Info(msg)
}

// Infof logs a formatted message at info level.
func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Debug logs a message with arguments at debug level.
func Debug(msg string, args ...interface{}) {
	if len(args) > 0 {
		logger.Debugf(msg+": %v", args)
		return
	}
	logger.Debug(msg)
}

// Debugf logs a formatted message at debug level.
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...interface{}) {
	if len(args) > 0 {
		logger.Warnf(msg+": %v", args)
		return
	}
	logger.Warn(msg)
}

// Warnf logs a formatted warning message.
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Error logs an error message.
func Error(msg string, args ...interface{}) {
	if len(args) > 0 {
		logger.Errorf(msg+": %v", args)
		return
	}
	logger.Error(msg)
}

// Errorf logs a formatted error message.
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}
