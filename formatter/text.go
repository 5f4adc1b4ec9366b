package formatter

import (
	"bytes"
	"io"
	"strconv"

	"github.com/philipp01105/buildlog/core"
	"github.com/philipp01105/buildlog/style"
)

// TextFormatter formats log entries as build console lines:
//
//	[INFO] message key=value
//
// followed by the attached error and its causes, one frame per line.
type TextFormatter struct {
	Config
	labels [len(core.Levels)]string
}

// levelStyles pairs every level with its console label and style
var levelStyles = [...]struct {
	label string
	style style.Name
}{
	core.TraceLevel: {"TRACE", style.Debug},
	core.DebugLevel: {"DEBUG", style.Debug},
	core.InfoLevel:  {"INFO", style.Info},
	core.WarnLevel:  {"WARNING", style.Warning},
	core.ErrorLevel: {"ERROR", style.Error},
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = "15:04:05.000"
	}
	f := &TextFormatter{Config: cfg}
	// pre-render level labels so the hot path is a single WriteString
	for i, ls := range levelStyles {
		label := cfg.Palette.Render(ls.label, ls.style)
		if cfg.BareLevel {
			f.labels[i] = label + " "
		} else {
			f.labels[i] = "[" + label + "] "
		}
	}
	return f
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.FormatEntry(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry formats an entry as text into the given buffer (implements BufferFormatter).
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	if f.ShowDateTime {
		buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
		buf.WriteByte(' ')
	}

	if entry.Level.Valid() {
		buf.WriteString(f.labels[entry.Level])
	} else {
		buf.WriteString("[UNKNOWN] ")
	}

	if f.IncludeCaller && entry.Caller.Defined {
		buf.WriteByte('[')
		buf.WriteString(entry.Caller.ShortFile)
		buf.WriteByte(':')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Caller.Line), 10))
		buf.WriteString("] ")
	}

	if f.ShowLogName && entry.Logger != "" {
		if f.ShortLogName {
			buf.WriteString(shortName(entry.Logger))
		} else {
			buf.WriteString(entry.Logger)
		}
		buf.WriteString(" - ")
	}

	buf.WriteString(entry.Message)

	for _, field := range entry.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}

	buf.WriteByte('\n')

	writeErrorChain(buf, entry.Err, f.Palette)
}
