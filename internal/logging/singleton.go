package logging

import (
	"sync"
)

var (
	instance *Logger
	mu       sync.RWMutex
)

// InitLogger builds the process-wide logger from config and replaces any
// previous one.
func InitLogger(config *Config) error {
	logger, err := NewLogger(config)
	if err != nil {
		return err
	}

	mu.Lock()
	old := instance
	instance = logger
	mu.Unlock()

	if old != nil {
		_ = old.Close()
	}
	return nil
}

// GetGlobalLogger returns the process-wide logger. Before InitLogger has
// run it returns a console logger at info level.
func GetGlobalLogger() *Logger {
	mu.RLock()
	l := instance
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		instance, _ = NewLogger(DefaultConfig())
	}
	return instance
}
