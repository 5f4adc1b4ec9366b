package formatter

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/philipp01105/buildlog/core"
	"github.com/philipp01105/buildlog/style"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log entry into bytes
	Format(entry *core.Entry) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a log entry and writes it directly to the writer
	FormatTo(entry *core.Entry, w io.Writer) error
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatEntry formats a log entry into the given buffer.
	FormatEntry(entry *core.Entry, buf *bytes.Buffer)
}

// Config holds common formatter configuration
type Config struct {
	// IncludeCaller enables caller information in log output
	IncludeCaller bool
	// ShowDateTime prefixes text lines with the entry time
	ShowDateTime bool
	// TimestampFormat specifies the time format (text default "15:04:05.000",
	// JSON default RFC3339Nano)
	TimestampFormat string
	// ShowLogName adds the logger name before the message
	ShowLogName bool
	// ShortLogName keeps only the last segment of the logger name
	ShortLogName bool
	// BareLevel omits the brackets around the level label
	BareLevel bool
	// Palette styles level labels and error output (nil renders plain text)
	Palette *style.Palette
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// shortName returns the last dot or slash separated segment of name
func shortName(name string) string {
	if i := strings.LastIndexAny(name, "./"); i >= 0 && i < len(name)-1 {
		return name[i+1:]
	}
	return name
}
