package logger

import (
	"sync"
)

var (
	defaultRegistry *Registry
	defaultMu       sync.RWMutex
)

func init() {
	// Initialize default registry with a stdout console handler
	defaultRegistry = NewRegistry()
}

// Default returns the default registry
func Default() *Registry {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultRegistry
}

// SetDefault replaces the default registry. Loggers already handed out
// keep their original registry.
func SetDefault(r *Registry) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = r
}

// Package-level convenience functions using the default registry

// GetLogger returns a named logger from the default registry
func GetLogger(name string) *Logger {
	return Default().GetLogger(name)
}

// BreakOnLogsOfLevel configures the break level of the default registry
func BreakOnLogsOfLevel(levelName string) error {
	return Default().BreakOnLogsOfLevel(levelName)
}

// ThrewLogsOfBreakingLevel reports whether the default registry breached
func ThrewLogsOfBreakingLevel() bool {
	return Default().ThrewLogsOfBreakingLevel()
}
