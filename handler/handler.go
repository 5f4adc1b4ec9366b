package handler

import (
	"errors"

	"github.com/philipp01105/buildlog/core"
)

// ErrClosed is returned by handlers that receive entries after Close
var ErrClosed = errors.New("handler closed")

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log entry. The entry is only valid for the
	// duration of the call.
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that count what they write
type StatsProvider interface {
	Stats() Snapshot
}
