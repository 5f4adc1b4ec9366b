// Package setup builds a logger registry from configuration.
package setup

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/philipp01105/buildlog/config"
	"github.com/philipp01105/buildlog/core"
	"github.com/philipp01105/buildlog/formatter"
	"github.com/philipp01105/buildlog/handler"
	"github.com/philipp01105/buildlog/handler/consolehandler"
	"github.com/philipp01105/buildlog/handler/multihandler"
	"github.com/philipp01105/buildlog/handler/zaphandler"
	"github.com/philipp01105/buildlog/logger"
	"github.com/philipp01105/buildlog/style"
)

// Options holds the parts of setup that are not configuration
type Options struct {
	// Out receives console output (default os.Stdout)
	Out io.Writer
	// Zap is used for the zap backend instead of building one on os.Stderr
	Zap *zap.Logger
}

// NewRegistry builds the registry described by cfg. styles holds palette
// overrides keyed by style name. A configured fail level is applied with
// BreakOnLogsOfLevel and its error returned.
func NewRegistry(cfg config.LoggerConfig, styles map[string]string, out io.Writer) (*logger.Registry, error) {
	return NewRegistryWithOptions(cfg, styles, Options{Out: out})
}

// NewRegistryWithOptions is NewRegistry with an injectable zap logger.
func NewRegistryWithOptions(cfg config.LoggerConfig, styles map[string]string, opts Options) (*logger.Registry, error) {
	level, err := core.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logger.level: %w", err)
	}

	h, err := newHandler(cfg, styles, level, opts)
	if err != nil {
		return nil, err
	}

	r := logger.NewRegistry(
		logger.WithHandler(h),
		logger.WithLevel(level),
		logger.WithCaller(cfg.CallerInfo),
		logger.WithCoarseClock(cfg.CoarseClock),
	)

	if cfg.FailLevel != "" {
		if err := r.BreakOnLogsOfLevel(cfg.FailLevel); err != nil {
			_ = r.Close()
			return nil, err
		}
	}
	return r, nil
}

func newHandler(cfg config.LoggerConfig, styles map[string]string, level core.Level, opts Options) (handler.Handler, error) {
	backend := strings.ToLower(cfg.Backend)
	if backend == "" {
		backend = config.BackendConsole
	}

	var zh handler.Handler
	if backend == config.BackendZap || backend == config.BackendBoth {
		zl := opts.Zap
		if zl == nil {
			zl = zaphandler.NewLogger(strings.EqualFold(cfg.Format, config.FormatJSON), level, os.Stderr)
		}
		zh = zaphandler.New(zl)
	}

	switch backend {
	case config.BackendZap:
		return zh, nil
	case config.BackendConsole, config.BackendBoth:
		ch, err := newConsoleHandler(cfg, styles, opts.Out)
		if err != nil {
			return nil, err
		}
		if zh == nil {
			return ch, nil
		}
		return multihandler.NewMultiHandler(ch, zh), nil
	default:
		return nil, fmt.Errorf("logger.backend: unknown backend %q", cfg.Backend)
	}
}

func newConsoleHandler(cfg config.LoggerConfig, styles map[string]string, out io.Writer) (handler.Handler, error) {
	if out == nil {
		out = os.Stdout
	}

	mode, err := style.ParseMode(cfg.Color)
	if err != nil {
		return nil, fmt.Errorf("logger.color: %w", err)
	}
	palette, err := style.NewPalette(style.Detect(mode, out), styles)
	if err != nil {
		return nil, fmt.Errorf("styles: %w", err)
	}

	fcfg := formatter.Config{
		IncludeCaller:   cfg.CallerInfo,
		ShowDateTime:    cfg.ShowDateTime,
		TimestampFormat: cfg.DateTimeFormat,
		ShowLogName:     cfg.ShowLogName,
		ShortLogName:    cfg.ShortLogName,
		BareLevel:       !cfg.LevelInBrackets,
		Palette:         palette,
	}

	var f formatter.Formatter
	switch strings.ToLower(cfg.Format) {
	case config.FormatJSON:
		f = formatter.NewJSONFormatter(fcfg)
	case config.FormatText, "":
		f = formatter.NewTextFormatter(fcfg)
	default:
		return nil, fmt.Errorf("logger.format: unknown format %q", cfg.Format)
	}

	return consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    style.Output(out),
		Formatter: f,
	}), nil
}
