package logger

import (
	"context"
	"log/slog"

	"github.com/philipp01105/buildlog/core"
)

// SlogHandler implements slog.Handler on top of a Logger, so records
// logged through log/slog are written by the logger's handler and count
// towards its break state.
type SlogHandler struct {
	logger *Logger
	group  string
}

// NewSlogHandler creates a slog.Handler writing through l.
func NewSlogHandler(l *Logger) *SlogHandler {
	return &SlogHandler{logger: l}
}

// NewSlog returns a *slog.Logger writing through the named logger of r.
func (r *Registry) NewSlog(name string) *slog.Logger {
	return slog.New(NewSlogHandler(r.GetLogger(name)))
}

// Enabled reports whether the handler handles records at the given level.
// Levels that can breach are always handled while a break state is
// attached, even when the logger would not write them.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	lvl := slogLevelToCore(level)
	if s.logger.Enabled(lvl) {
		return true
	}
	return s.logger.state != nil && lvl >= core.WarnLevel
}

// Handle converts the record's attributes to fields and logs it.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var fields []core.Field
	if record.NumAttrs() > 0 {
		fields = make([]core.Field, 0, record.NumAttrs())
		record.Attrs(func(a slog.Attr) bool {
			fields = appendSlogAttr(fields, s.group, a)
			return true
		})
	}

	s.logger.logPC(slogLevelToCore(record.Level), record.Message, fields, record.PC)
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	fields := make([]core.Field, 0, len(attrs))
	for _, a := range attrs {
		fields = appendSlogAttr(fields, s.group, a)
	}
	return &SlogHandler{
		logger: s.logger.With(fields...),
		group:  s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		logger: s.logger,
		group:  newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
// Anything below slog.LevelDebug is TRACE.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendSlogAttr converts a slog.Attr to fields, prepending the group
// prefix if present. Groups are flattened into dotted keys.
func appendSlogAttr(fields []core.Field, group string, a slog.Attr) []core.Field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + a.Key
	} else if key == "" {
		key = group
	}

	switch a.Value.Kind() {
	case slog.KindString:
		return append(fields, String(key, a.Value.String()))
	case slog.KindInt64:
		return append(fields, Int64(key, a.Value.Int64()))
	case slog.KindUint64:
		return append(fields, Any(key, a.Value.Uint64()))
	case slog.KindFloat64:
		return append(fields, Float64(key, a.Value.Float64()))
	case slog.KindBool:
		return append(fields, Bool(key, a.Value.Bool()))
	case slog.KindTime:
		return append(fields, Time(key, a.Value.Time()))
	case slog.KindDuration:
		return append(fields, Duration(key, a.Value.Duration()))
	case slog.KindGroup:
		for _, ga := range a.Value.Group() {
			fields = appendSlogAttr(fields, key, ga)
		}
		return fields
	default:
		if err, ok := a.Value.Any().(error); ok {
			return append(fields, NamedErr(key, err))
		}
		return append(fields, Any(key, a.Value.Any()))
	}
}
