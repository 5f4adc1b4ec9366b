// Package benchmark compares buildlog loggers with zap, zerolog, logrus
// and log/slog on identical discard sinks.
package benchmark

import (
	"sync/atomic"

	"github.com/philipp01105/buildlog/core"
	"github.com/philipp01105/buildlog/handler"
)

// noopHandler counts entries without formatting them, isolating the
// cost of the logger and its break state from the formatter.
type noopHandler struct {
	handled atomic.Uint64
}

func newNoopHandler() *noopHandler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	h.handled.Add(1)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}

var _ handler.Handler = (*noopHandler)(nil)
