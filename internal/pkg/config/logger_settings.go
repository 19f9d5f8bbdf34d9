package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// LoggerSettings selects the log sink and level. Rotation fields only apply to the file sink.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=info debug error warning critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// ApplyFileDefaults fills unset file sink fields with the gost-vault defaults. Console settings are left alone.
func (s *LoggerSettings) ApplyFileDefaults() {
	if s.LogType != LogTypeFile {
		return
	}
	if s.FilePath == "" {
		s.FilePath = DefaultLogFilePath
	}
	if s.MaxSize == 0 {
		s.MaxSize = DefaultLogMaxSize
	}
	if s.MaxBackups == 0 {
		s.MaxBackups = DefaultLogMaxBackups
	}
	if s.MaxAge == 0 {
		s.MaxAge = DefaultLogMaxAge
	}
}

// Validate checks the level and sink, and the rotation bounds of the file sink
func (s *LoggerSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}
	if s.LogType != LogTypeFile {
		return nil
	}

	switch {
	case s.FilePath == "":
		return fmt.Errorf("file path is required for file logger")
	case s.MaxSize < 1 || s.MaxSize > 100:
		return fmt.Errorf("max size must be between 1 and 100 MB, got %d", s.MaxSize)
	case s.MaxBackups < 1 || s.MaxBackups > 10:
		return fmt.Errorf("max backups must be between 1 and 10, got %d", s.MaxBackups)
	case s.MaxAge < 1 || s.MaxAge > 365:
		return fmt.Errorf("max age must be between 1 and 365 days, got %d", s.MaxAge)
	}

	return nil
}
