package zaphandler

import (
	"errors"
	"io"
	"os"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/buildlog/core"
	"github.com/philipp01105/buildlog/handler"
)

// Handler writes entries to a zap logger
type Handler struct {
	logger *zap.Logger
	stats  *handler.Stats
}

// New creates a handler around l. A nil logger becomes zap.NewNop().
func New(l *zap.Logger) *Handler {
	if l == nil {
		l = zap.NewNop()
	}
	return &Handler{logger: l, stats: handler.NewStats()}
}

// NewLogger builds a zap logger writing to w (default os.Stderr).
// Production loggers encode JSON with ISO8601 timestamps, development
// loggers use zap's console encoder.
func NewLogger(production bool, level core.Level, w io.Writer) *zap.Logger {
	var encCfg zapcore.EncoderConfig
	var enc zapcore.Encoder
	if production {
		encCfg = zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		encCfg = zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	encCfg.TimeKey = "timestamp"
	encCfg.MessageKey = "message"
	if production {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	if w == nil {
		w = os.Stderr
	}
	ws := zapcore.AddSync(w)
	if f, ok := w.(*os.File); ok {
		ws = zapcore.Lock(f)
	}
	return zap.New(zapcore.NewCore(enc, ws, zap.NewAtomicLevelAt(ToZapLevel(level))))
}

// ToZapLevel converts a level to the matching zap level
func ToZapLevel(level core.Level) zapcore.Level {
	switch level {
	case core.TraceLevel, core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Handle writes the entry if the zap core accepts its level
func (h *Handler) Handle(entry *core.Entry) error {
	ce := h.logger.Check(ToZapLevel(entry.Level), entry.Message)
	if ce == nil {
		return nil
	}
	if !entry.Time.IsZero() {
		ce.Time = entry.Time
	}
	if entry.Logger != "" {
		ce.LoggerName = entry.Logger
	}
	if entry.Caller.Defined {
		ce.Caller = zapcore.EntryCaller{
			Defined:  true,
			File:     entry.Caller.File,
			Line:     entry.Caller.Line,
			Function: entry.Caller.Function,
		}
	}

	fields := make([]zap.Field, 0, len(entry.Fields)+1)
	for _, f := range entry.Fields {
		fields = append(fields, toZapField(f))
	}
	if entry.Err != nil {
		fields = append(fields, zap.Error(entry.Err))
	}
	ce.Write(fields...)
	h.stats.IncrementProcessed(entry.Level)
	return nil
}

// toZapField converts a field keeping its type
func toZapField(f core.Field) zap.Field {
	switch f.Type {
	case core.StringType:
		return zap.String(f.Key, f.Str)
	case core.IntType, core.Int64Type:
		return zap.Int64(f.Key, f.Int64)
	case core.Float64Type:
		return zap.Float64(f.Key, f.Float64)
	case core.BoolType:
		return zap.Bool(f.Key, f.Int64 == 1)
	case core.TimeType:
		return zap.Time(f.Key, time.Unix(0, f.Int64))
	case core.DurationType:
		return zap.Duration(f.Key, time.Duration(f.Int64))
	case core.ErrorType:
		if err := f.Error(); err != nil {
			return zap.NamedError(f.Key, err)
		}
		return zap.String(f.Key, f.Str)
	default:
		return zap.Any(f.Key, f.Any)
	}
}

// Stats returns a snapshot of the entries accepted by zap
func (h *Handler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close flushes the zap logger. Sync errors from terminals and pipes,
// which cannot be fsynced, are ignored.
func (h *Handler) Close() error {
	err := h.logger.Sync()
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EBADF) {
		return nil
	}
	return err
}
