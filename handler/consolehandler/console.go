package consolehandler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/philipp01105/buildlog/core"
	"github.com/philipp01105/buildlog/formatter"
	"github.com/philipp01105/buildlog/handler"
)

// lockedWriter wraps an io.Writer with the handler's mutex, acquiring
// the lock only for Write calls. Formatters prepare data in their own
// pooled buffers and call Write once.
type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	n, err = lw.w.Write(p)
	lw.mu.Unlock()
	return
}

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the handler to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// ConcurrentWriter indicates the Writer supports concurrent Write calls.
	// Automatically detected for io.Discard and *os.File.
	ConcurrentWriter bool
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
}

// ConsoleHandler writes formatted entries to a writer synchronously.
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	bufferFormatter formatter.BufferFormatter
	concurrentSafe  bool
	stats           *handler.Stats
	mu              sync.Mutex // protects syncBuf and writer
	lw              lockedWriter
	syncBuf         bytes.Buffer
	parBufPool      sync.Pool
	closeOnce       sync.Once
	closed          chan struct{}
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)

	h := &ConsoleHandler{
		writer:         cfg.Writer,
		formatter:      cfg.Formatter,
		concurrentSafe: cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Writer),
		stats:          handler.NewStats(),
		closed:         make(chan struct{}),
	}
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	h.lw = lockedWriter{mu: &h.mu, w: h.writer}

	if h.bufferFormatter != nil {
		h.syncBuf.Grow(256)
		h.parBufPool.New = func() interface{} {
			b := new(bytes.Buffer)
			b.Grow(256)
			return b
		}
	}
	return h
}

// Handle formats and writes an entry.
// Uses TryLock to format into the handler-owned buffer when uncontended.
// Under contention it formats into a pooled buffer outside the lock and
// only serializes the write.
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	select {
	case <-h.closed:
		return handler.ErrClosed
	default:
	}

	err := h.write(entry)
	if err != nil {
		h.stats.IncrementErrors()
		return err
	}
	h.stats.IncrementProcessed(entry.Level)
	return nil
}

func (h *ConsoleHandler) write(entry *core.Entry) error {
	if h.bufferFormatter != nil {
		if h.mu.TryLock() {
			h.syncBuf.Reset()
			h.bufferFormatter.FormatEntry(entry, &h.syncBuf)
			_, err := h.writer.Write(h.syncBuf.Bytes())
			h.mu.Unlock()
			return err
		}

		buf := h.parBufPool.Get().(*bytes.Buffer)
		buf.Reset()
		h.bufferFormatter.FormatEntry(entry, buf)
		var err error
		if h.concurrentSafe {
			_, err = h.writer.Write(buf.Bytes())
		} else {
			_, err = h.lw.Write(buf.Bytes())
		}
		h.parBufPool.Put(buf)
		return err
	}

	if h.writerFormatter != nil {
		if h.concurrentSafe {
			return h.writerFormatter.FormatTo(entry, h.writer)
		}
		return h.writerFormatter.FormatTo(entry, &h.lw)
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	if h.concurrentSafe {
		_, err = h.writer.Write(data)
		return err
	}
	_, err = h.lw.Write(data)
	return err
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close closes the handler. Further entries are rejected with
// handler.ErrClosed. The underlying writer is left open.
func (h *ConsoleHandler) Close() error {
	h.closeOnce.Do(func() { close(h.closed) })
	return nil
}
