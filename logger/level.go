package logger

import (
	"github.com/philipp01105/buildlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel = core.TraceLevel
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
)

// ParseLevel converts a level name to a Level, ignoring case
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
