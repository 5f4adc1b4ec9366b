package logger

import (
	"errors"
	"fmt"
)

// Break level configuration errors
var (
	// ErrAlreadyConfigured is returned when the break level was already set
	ErrAlreadyConfigured = errors.New("break level already configured")

	// ErrInvalidLevel is returned when the level name matches no level
	ErrInvalidLevel = errors.New("invalid log level")

	// ErrLevelTooLow is returned for break levels below WARN
	ErrLevelTooLow = errors.New("break level must be WARN or ERROR")
)

// ConfigError describes a rejected break level configuration
type ConfigError struct {
	Op    string
	Level string
	Err   error
}

// Error implements the error interface for ConfigError
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Level, e.Err)
}

// Unwrap returns the underlying sentinel
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsAlreadyConfigured checks if err is an already configured error
func IsAlreadyConfigured(err error) bool {
	return errors.Is(err, ErrAlreadyConfigured)
}

// IsInvalidLevel checks if err is an invalid level error
func IsInvalidLevel(err error) bool {
	return errors.Is(err, ErrInvalidLevel)
}

// IsLevelTooLow checks if err is a level too low error
func IsLevelTooLow(err error) bool {
	return errors.Is(err, ErrLevelTooLow)
}
