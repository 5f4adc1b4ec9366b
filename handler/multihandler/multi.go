package multihandler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/buildlog/core"
	"github.com/philipp01105/buildlog/handler"
)

// MultiHandler sends log entries to multiple handlers
type MultiHandler struct {
	handlers []handler.Handler
}

// NewMultiHandler creates a new multi-handler. Nil handlers are skipped.
func NewMultiHandler(handlers ...handler.Handler) *MultiHandler {
	m := &MultiHandler{handlers: make([]handler.Handler, 0, len(handlers))}
	for _, h := range handlers {
		if h != nil {
			m.handlers = append(m.handlers, h)
		}
	}
	return m
}

// Handle sends the entry to every handler. A failing handler does not
// stop the others; all errors are combined.
func (m *MultiHandler) Handle(entry *core.Entry) error {
	var err error
	for _, h := range m.handlers {
		err = multierr.Append(err, h.Handle(entry))
	}
	return err
}

// Stats sums the snapshots of every child that reports statistics
func (m *MultiHandler) Stats() handler.Snapshot {
	total := handler.Snapshot{Processed: make(map[core.Level]uint64, len(core.Levels))}
	for _, h := range m.handlers {
		sp, ok := h.(handler.StatsProvider)
		if !ok {
			continue
		}
		snap := sp.Stats()
		for level, n := range snap.Processed {
			total.Processed[level] += n
		}
		total.ProcessedTotal += snap.ProcessedTotal
		total.WriteErrors += snap.WriteErrors
	}
	return total
}

// Close closes all handlers
func (m *MultiHandler) Close() error {
	var err error
	for _, h := range m.handlers {
		err = multierr.Append(err, h.Close())
	}
	return err
}
