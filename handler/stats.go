package handler

import (
	"sync/atomic"

	"github.com/philipp01105/buildlog/core"
)

// Stats tracks handler statistics
type Stats struct {
	processed   [len(core.Levels)]atomic.Uint64
	writeErrors atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically counts one written entry of level
func (s *Stats) IncrementProcessed(level core.Level) {
	if level.Valid() {
		s.processed[level].Add(1)
	}
}

// IncrementErrors atomically counts one failed write
func (s *Stats) IncrementErrors() {
	s.writeErrors.Add(1)
}

// GetProcessed returns the processed count for a level
func (s *Stats) GetProcessed(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.processed[level].Load()
}

// GetTotalProcessed returns the processed count across all levels
func (s *Stats) GetTotalProcessed() uint64 {
	var total uint64
	for i := range s.processed {
		total += s.processed[i].Load()
	}
	return total
}

// GetErrors returns the failed write count
func (s *Stats) GetErrors() uint64 {
	return s.writeErrors.Load()
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.processed {
		s.processed[i].Store(0)
	}
	s.writeErrors.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Processed      map[core.Level]uint64
	ProcessedTotal uint64
	WriteErrors    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Processed:   make(map[core.Level]uint64, len(core.Levels)),
		WriteErrors: s.GetErrors(),
	}
	for _, level := range core.Levels {
		n := s.GetProcessed(level)
		snap.Processed[level] = n
		snap.ProcessedTotal += n
	}
	return snap
}
