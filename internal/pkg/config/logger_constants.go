package config

// Log levels accepted by LoggerSettings; critical maps to slog's error level
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log sinks
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// File logger defaults applied by LoggerSettings.ApplyFileDefaults
const (
	DefaultLogFilePath   = "/var/log/gost-vault/gost-vault.log"
	DefaultLogMaxSize    = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAge     = 28
)
