package logger

import (
	"fmt"
	"time"

	"github.com/philipp01105/buildlog/core"
	"github.com/philipp01105/buildlog/handler"
)

// BreakingLogMessage is logged at INFO once, when the first log at or
// above the break level is recorded.
const BreakingLogMessage = "Breaking log occurred"

// Logger is the main logging interface (immutable)
type Logger struct {
	name          string
	handler       handler.Handler
	level         core.Level
	fields        []core.Field
	includeCaller bool
	callerSkip    int
	coarseClock   bool
	state         *BreakState
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	name          string
	handler       handler.Handler
	level         core.Level
	fields        []core.Field
	includeCaller bool
	callerSkip    int
	coarseClock   bool
	state         *BreakState
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:      core.InfoLevel, // Default level
		callerSkip: 5,              // GetCaller <- emit <- logPC <- log <- Info <- caller
	}
}

// WithName sets the logger name
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithFields adds default fields to all log entries
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithCaller enables caller information
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// WithBreakState makes the logger record breaching logs in s.
// Without one the logger tracks nothing.
func (b *Builder) WithBreakState(s *BreakState) *Builder {
	b.state = s
	return b
}

// WithCoarseClock stamps entries with the millisecond coarse clock
// instead of time.Now.
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	b.coarseClock = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	if b.coarseClock {
		core.StartCoarseClock()
	}
	fields := make([]core.Field, len(b.fields))
	copy(fields, b.fields)
	return &Logger{
		name:          b.name,
		handler:       b.handler,
		level:         b.level,
		fields:        fields,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
		coarseClock:   b.coarseClock,
		state:         b.state,
	}
}

// With creates a new Logger with additional fields (immutable operation)
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	child := *l
	child.fields = newFields
	return &child
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// Level returns the minimum level written by the logger
func (l *Logger) Level() core.Level {
	return l.level
}

// Enabled reports whether entries at level are written
func (l *Logger) Enabled(level core.Level) bool {
	return level >= l.level
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	l.log(level, msg, fields)
}

func (l *Logger) log(level core.Level, msg string, fields []core.Field) {
	l.logPC(level, msg, fields, 0)
}

// logPC writes the entry if the level passes, then records a breach even
// when it did not. The first breach is announced at INFO through the
// same handler without being tracked itself. A non-zero pc is used as
// the caller instead of walking the stack.
func (l *Logger) logPC(level core.Level, msg string, fields []core.Field, pc uintptr) {
	if level >= l.level {
		l.emit(level, msg, fields, pc)
	}
	if l.state.RecordIfBreaching(level) && core.InfoLevel >= l.level {
		l.emit(core.InfoLevel, BreakingLogMessage, nil, pc)
	}
}

func (l *Logger) emit(level core.Level, msg string, fields []core.Field, pc uintptr) {
	// Handler check - exit if no handler (avoid any work)
	if l.handler == nil {
		return
	}

	entry := core.GetEntry()
	if l.coarseClock {
		entry.Time = core.CoarseNow()
	} else {
		entry.Time = time.Now()
	}
	entry.Level = level
	entry.Logger = l.name
	entry.Message = msg
	appendFields(entry, l.fields)
	appendFields(entry, fields)

	if l.includeCaller {
		if pc != 0 {
			entry.Caller = core.CallerFromPC(pc)
		} else {
			entry.Caller = core.GetCaller(l.callerSkip)
		}
	}

	// Write errors are counted by the handler; logging never fails
	_ = l.handler.Handle(entry)
	core.PutEntry(entry)
}

// appendFields copies fields into the entry. The first error field that
// holds an error becomes the entry's attached error.
func appendFields(entry *core.Entry, fields []core.Field) {
	for _, f := range fields {
		if entry.Err == nil && f.Type == core.ErrorType {
			if err := f.Error(); err != nil {
				entry.Err = err
				continue
			}
		}
		entry.Fields = append(entry.Fields, f)
	}
}

// TRACE, DEBUG and INFO can never reach a break level (WARN or above),
// so their methods return before any work when filtered.

// Trace logs a trace message
func (l *Logger) Trace(msg string, fields ...core.Field) {
	if core.TraceLevel < l.level {
		return
	}
	l.log(core.TraceLevel, msg, fields)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) {
	l.log(core.WarnLevel, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	l.log(core.ErrorLevel, msg, fields)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	if core.TraceLevel < l.level {
		return
	}
	l.log(core.TraceLevel, fmt.Sprintf(format, args...), nil)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log(core.WarnLevel, l.sprintf(core.WarnLevel, format, args), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log(core.ErrorLevel, l.sprintf(core.ErrorLevel, format, args), nil)
}

// sprintf skips formatting when the message would be dropped anyway;
// the call still counts towards the break state.
func (l *Logger) sprintf(level core.Level, format string, args []interface{}) string {
	if level < l.level {
		return ""
	}
	return fmt.Sprintf(format, args...)
}

// Close closes the logger's handler. Loggers from one Registry share
// their handler, so prefer Registry.Close.
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
