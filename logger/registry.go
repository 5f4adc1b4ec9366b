package logger

import (
	"os"
	"sort"
	"sync"

	"github.com/philipp01105/buildlog/core"
	"github.com/philipp01105/buildlog/formatter"
	"github.com/philipp01105/buildlog/handler"
	"github.com/philipp01105/buildlog/handler/consolehandler"
	"github.com/philipp01105/buildlog/style"
)

// Registry hands out named loggers that share one handler and one
// BreakState. A logger is created on first request and cached for the
// lifetime of the registry.
type Registry struct {
	loggers sync.Map // map[string]*Logger
	state   *BreakState

	handler       handler.Handler
	level         core.Level
	includeCaller bool
	coarseClock   bool
}

// Option configures the registry created by NewRegistry.
type Option func(*Registry)

// WithHandler sets the handler shared by every logger.
// The default writes colored text to os.Stdout when it is a terminal.
func WithHandler(h handler.Handler) Option {
	return func(r *Registry) {
		r.handler = h
	}
}

// WithLevel sets the minimum level of every logger.
// The default is InfoLevel.
func WithLevel(level core.Level) Option {
	return func(r *Registry) {
		r.level = level
	}
}

// WithCaller enables caller information on every logger.
func WithCaller(enabled bool) Option {
	return func(r *Registry) {
		r.includeCaller = enabled
	}
}

// WithCoarseClock stamps entries with the millisecond coarse clock.
func WithCoarseClock(enabled bool) Option {
	return func(r *Registry) {
		r.coarseClock = enabled
	}
}

// NewRegistry creates a registry with an unconfigured break state.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		state: NewBreakState(),
		level: core.InfoLevel,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.handler == nil {
		r.handler = newStdoutHandler()
	}
	return r
}

func newStdoutHandler() handler.Handler {
	palette, err := style.NewPalette(style.Detect(style.ModeAuto, os.Stdout), nil)
	if err != nil {
		palette = style.Plain()
	}
	// the handler skips write locking only when Output returns the file itself
	return consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    style.Output(os.Stdout),
		Formatter: formatter.NewTextFormatter(formatter.Config{Palette: palette}),
	})
}

// GetLogger returns the logger for name, creating it if necessary.
// Concurrent callers asking for the same name get the same instance.
func (r *Registry) GetLogger(name string) *Logger {
	// Fast path: check if logger exists
	if v, ok := r.loggers.Load(name); ok {
		return v.(*Logger)
	}

	// Slow path: create new logger
	l := NewBuilder().
		WithName(name).
		WithHandler(r.handler).
		WithLevel(r.level).
		WithCaller(r.includeCaller).
		WithCoarseClock(r.coarseClock).
		WithBreakState(r.state).
		Build()
	actual, _ := r.loggers.LoadOrStore(name, l)
	return actual.(*Logger)
}

// BreakOnLogsOfLevel makes logs at or above levelName count as breaking.
// It accepts "WARN" or "ERROR" and succeeds at most once.
func (r *Registry) BreakOnLogsOfLevel(levelName string) error {
	return r.state.Configure(levelName)
}

// ThrewLogsOfBreakingLevel reports whether any logger of the registry
// logged at or above the break level.
func (r *Registry) ThrewLogsOfBreakingLevel() bool {
	return r.state.HasBreached()
}

// BreakState returns the state shared by the registry's loggers
func (r *Registry) BreakState() *BreakState {
	return r.state
}

// Handler returns the handler shared by the registry's loggers
func (r *Registry) Handler() handler.Handler {
	return r.handler
}

// Names returns the names of all created loggers, sorted
func (r *Registry) Names() []string {
	var names []string
	r.loggers.Range(func(k, _ any) bool {
		names = append(names, k.(string))
		return true
	})
	sort.Strings(names)
	return names
}

// Close closes the shared handler
func (r *Registry) Close() error {
	return r.handler.Close()
}
