package formatter

import (
	"bytes"
	"io"
	"strconv"
	"time"

	"github.com/philipp01105/buildlog/core"
)

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	Config
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}
	return &JSONFormatter{Config: cfg}
}

// Format formats an entry as JSON
func (f *JSONFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatJSONToBuffer(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry as JSON and writes it directly to the writer
func (f *JSONFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatJSONToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry formats an entry as JSON into the given buffer (implements BufferFormatter).
func (f *JSONFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	f.formatJSONToBuffer(entry, buf)
}

// formatJSONToBuffer builds JSON manually into the buffer without allocations
func (f *JSONFormatter) formatJSONToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	buf.WriteString(`{"time":`)
	f.appendTime(buf, entry.Time)
	buf.WriteString(`,"level":"`)
	buf.WriteString(entry.Level.String())
	buf.WriteByte('"')

	if entry.Logger != "" {
		buf.WriteString(`,"logger":`)
		appendQuoted(buf, entry.Logger)
	}
	buf.WriteString(`,"message":`)
	appendQuoted(buf, entry.Message)

	if f.IncludeCaller && entry.Caller.Defined {
		buf.WriteString(`,"caller":{"file":`)
		appendQuoted(buf, entry.Caller.ShortFile)
		buf.WriteString(`,"line":`)
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Caller.Line), 10))
		if entry.Caller.Function != "" {
			buf.WriteString(`,"function":`)
			appendQuoted(buf, entry.Caller.Function)
		}
		buf.WriteByte('}')
	}

	for i := range entry.Fields {
		buf.WriteByte(',')
		appendQuoted(buf, entry.Fields[i].Key)
		buf.WriteByte(':')
		f.appendValue(buf, &entry.Fields[i])
	}

	if entry.Err != nil {
		buf.WriteString(`,"error":`)
		appendJSONError(buf, entry.Err, 0)
	}
	buf.WriteString("}\n")
}

func (f *JSONFormatter) appendTime(buf *bytes.Buffer, t time.Time) {
	buf.WriteByte('"')
	buf.Write(t.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteByte('"')
}

// appendValue writes numbers and bools bare and everything else quoted.
// Durations use their String form ("1.5s").
func (f *JSONFormatter) appendValue(buf *bytes.Buffer, field *core.Field) {
	switch field.Type {
	case core.IntType, core.Int64Type:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), field.Int64, 10))
	case core.Float64Type:
		buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), field.Float64, 'f', -1, 64))
	case core.BoolType:
		buf.Write(strconv.AppendBool(buf.AvailableBuffer(), field.Int64 == 1))
	case core.TimeType:
		f.appendTime(buf, time.Unix(0, field.Int64))
	case core.DurationType:
		appendQuoted(buf, time.Duration(field.Int64).String())
	case core.StringType, core.ErrorType:
		appendQuoted(buf, field.Str)
	default:
		appendQuoted(buf, field.StringValue())
	}
}

// appendJSONError writes err as an object with its frames and, nested
// under "cause", the rest of the chain
func appendJSONError(buf *bytes.Buffer, err error, depth int) {
	buf.WriteString(`{"type":`)
	appendQuoted(buf, core.TypeName(err))
	buf.WriteString(`,"message":`)
	appendQuoted(buf, err.Error())

	if frames := core.StackTrace(err); len(frames) > 0 {
		buf.WriteString(`,"stack":[`)
		for i, frame := range frames {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(`{"function":`)
			appendQuoted(buf, frame.Function)
			buf.WriteString(`,"location":`)
			appendQuoted(buf, frame.Location())
			buf.WriteByte('}')
		}
		buf.WriteByte(']')
	}

	if cause := nextCause(err); cause != nil && depth < maxCauseDepth {
		buf.WriteString(`,"cause":`)
		appendJSONError(buf, cause, depth+1)
	}
	buf.WriteByte('}')
}

const hexDigits = "0123456789abcdef"

// appendQuoted writes s as a quoted JSON string. Only the quote, the
// backslash and control bytes need escaping, so runs of plain bytes are
// copied in one write.
func appendQuoted(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	last := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= ' ' && c != '"' && c != '\\' {
			continue
		}
		buf.WriteString(s[last:i])
		last = i + 1
		buf.WriteByte('\\')
		switch c {
		case '"', '\\':
			buf.WriteByte(c)
		case '\n':
			buf.WriteByte('n')
		case '\r':
			buf.WriteByte('r')
		case '\t':
			buf.WriteByte('t')
		default:
			buf.WriteString("u00")
			buf.WriteByte(hexDigits[c>>4])
			buf.WriteByte(hexDigits[c&0xf])
		}
	}
	buf.WriteString(s[last:])
	buf.WriteByte('"')
}
