package logger

import (
	"sync/atomic"

	"github.com/philipp01105/buildlog/core"
)

// BreakState records whether a log at or above a configured threshold
// was emitted. The threshold is set at most once and the breach flag
// only ever goes from false to true. A nil *BreakState tracks nothing.
type BreakState struct {
	threshold atomic.Pointer[core.Level] // nil until configured
	breached  atomic.Bool
}

// NewBreakState returns an unconfigured break state
func NewBreakState() *BreakState {
	return &BreakState{}
}

// Configure sets the threshold from a level name. Only WARN and ERROR
// are accepted and only the first successful call takes effect; a
// rejected call leaves the state untouched.
func (s *BreakState) Configure(levelName string) error {
	if s.threshold.Load() != nil {
		return &ConfigError{Op: "break on", Level: levelName, Err: ErrAlreadyConfigured}
	}

	level, err := core.ParseLevel(levelName)
	if err != nil {
		return &ConfigError{Op: "break on", Level: levelName, Err: ErrInvalidLevel}
	}
	if level < core.WarnLevel {
		return &ConfigError{Op: "break on", Level: levelName, Err: ErrLevelTooLow}
	}

	if !s.threshold.CompareAndSwap(nil, &level) {
		return &ConfigError{Op: "break on", Level: levelName, Err: ErrAlreadyConfigured}
	}
	return nil
}

// RecordIfBreaching marks the state as breached when level reaches the
// threshold. It returns true only for the one call that caused the
// first breach.
func (s *BreakState) RecordIfBreaching(level core.Level) bool {
	if s == nil {
		return false
	}
	threshold := s.threshold.Load()
	if threshold == nil || level < *threshold {
		return false
	}
	return s.breached.CompareAndSwap(false, true)
}

// HasBreached reports whether a breaching log was recorded
func (s *BreakState) HasBreached() bool {
	return s != nil && s.breached.Load()
}

// Threshold returns the configured threshold, if any
func (s *BreakState) Threshold() (core.Level, bool) {
	if s == nil {
		return core.InfoLevel, false
	}
	if t := s.threshold.Load(); t != nil {
		return *t, true
	}
	return core.InfoLevel, false
}
