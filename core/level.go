package core

import (
	"errors"
	"fmt"
	"strings"
)

// Level represents the severity level of a log entry
type Level int8

const (
	// TraceLevel for very fine-grained diagnostic output
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
)

// ErrUnknownLevel is returned by ParseLevel for names that match no Level
var ErrUnknownLevel = errors.New("unknown log level")

var levelNames = [...]string{
	TraceLevel: "TRACE",
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
}

// Levels lists every level from least to most severe
var Levels = [...]Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel}

// String returns the string representation of the level
func (l Level) String() string {
	if l.Valid() {
		return levelNames[l]
	}
	return "UNKNOWN"
}

// Valid reports whether l is one of the defined levels
func (l Level) Valid() bool {
	return l >= TraceLevel && l <= ErrorLevel
}

// ParseLevel converts a level name to a Level. Matching ignores case and
// surrounding spaces.
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}
