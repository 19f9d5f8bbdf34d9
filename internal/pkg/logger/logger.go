// Package logger provides the application logger, backed by log/slog with console output or
// rotated JSON files.
package logger

// Logger defines the logging interface
type Logger interface {
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
