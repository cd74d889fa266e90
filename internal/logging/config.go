package logging

import (
	"fmt"
	"io"
	"strings"
)

// Config holds logging-related configuration
type Config struct {
	Level       string    `json:"level" yaml:"level"`               // debug, info, warn, error
	File        string    `json:"file" yaml:"file"`                 // Path to log file, empty for console only
	MaxSize     int       `json:"max_size" yaml:"max_size"`         // Max size in MB
	MaxBackups  int       `json:"max_backups" yaml:"max_backups"`   // Number of backups to keep
	MaxAge      int       `json:"max_age" yaml:"max_age"`           // Max age in days
	LogRequests bool      `json:"log_requests" yaml:"log_requests"` // Emit one line per HTTP request
	Console     io.Writer `json:"-" yaml:"-"`                       // Defaults to stdout
}

// DefaultConfig returns a console-only info logger configuration.
func DefaultConfig() *Config {
	return &Config{
		Level:      LevelInfo,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
	}
}

// Validate checks if the configuration is valid
func (l *Config) Validate() error {
	if _, ok := levelRank[strings.ToLower(l.Level)]; !ok {
		return fmt.Errorf("invalid log level: %s", l.Level)
	}

	if l.File == "" {
		return nil
	}

	if l.MaxSize <= 0 {
		return fmt.Errorf("max_size must be positive")
	}

	if l.MaxBackups < 0 {
		return fmt.Errorf("max_backups must be non-negative")
	}

	if l.MaxAge < 0 {
		return fmt.Errorf("max_age must be non-negative")
	}

	return nil
}
