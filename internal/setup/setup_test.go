package setup

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/philipp01105/buildlog/config"
	"github.com/philipp01105/buildlog/logger"
)

func baseConfig() config.LoggerConfig {
	return config.LoggerConfig{
		Level:           "info",
		Format:          config.FormatText,
		Backend:         config.BackendConsole,
		Color:           "never",
		LevelInBrackets: true,
	}
}

func TestNewRegistry_Console(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := baseConfig()
	cfg.ShowLogName = true
	cfg.ShortLogName = true

	r, err := NewRegistry(cfg, nil, &buf)
	require.NoError(t, err)

	log := r.GetLogger("org.example.Compiler")
	log.Debug("hidden")
	log.Info("Compiling")
	log.Warn("Deprecated")

	assert.Equal(t, "[INFO] Compiler - Compiling\n[WARNING] Compiler - Deprecated\n", buf.String())
	assert.False(t, r.ThrewLogsOfBreakingLevel())
}

func TestNewRegistry_BareLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := baseConfig()
	cfg.LevelInBrackets = false

	r, err := NewRegistry(cfg, nil, &buf)
	require.NoError(t, err)

	r.GetLogger("x").Error("failed")
	assert.Equal(t, "ERROR failed\n", buf.String())
}

func TestNewRegistry_ColorAlways(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := baseConfig()
	cfg.Color = "always"

	r, err := NewRegistry(cfg, map[string]string{"warning": "bold,magenta"}, &buf)
	require.NoError(t, err)

	r.GetLogger("x").Warn("styled")
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "35")
	assert.Contains(t, buf.String(), "WARNING")
}

func TestNewRegistry_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := baseConfig()
	cfg.Format = config.FormatJSON

	r, err := NewRegistry(cfg, nil, &buf)
	require.NoError(t, err)

	r.GetLogger("deploy").Info("done", logger.Int("artifacts", 3))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "deploy", line["logger"])
	assert.Equal(t, "done", line["message"])
	assert.Equal(t, float64(3), line["artifacts"])

	_, err = time.Parse(time.RFC3339Nano, line["time"].(string))
	assert.NoError(t, err, "JSON time defaults to RFC3339Nano")
}

func TestNewRegistry_JSONKeepsExplicitTimeFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := baseConfig()
	cfg.Format = config.FormatJSON
	cfg.DateTimeFormat = "15:04:05.000"

	r, err := NewRegistry(cfg, nil, &buf)
	require.NoError(t, err)

	r.GetLogger("deploy").Info("done")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}\.\d{3}$`, line["time"])
}

func TestNewRegistry_FailLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := baseConfig()
	cfg.FailLevel = "warn"

	r, err := NewRegistry(cfg, nil, &buf)
	require.NoError(t, err)

	r.GetLogger("x").Warn("first")
	assert.True(t, r.ThrewLogsOfBreakingLevel())
	assert.Contains(t, buf.String(), "[INFO] "+logger.BreakingLogMessage)

	// the configured level cannot be changed afterwards
	assert.True(t, logger.IsAlreadyConfigured(r.BreakOnLogsOfLevel("ERROR")))
}

func TestNewRegistry_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.LoggerConfig)
		styles map[string]string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "fail level too low",
			mutate: func(c *config.LoggerConfig) { c.FailLevel = "info" },
			check:  func(t *testing.T, err error) { assert.True(t, logger.IsLevelTooLow(err)) },
		},
		{
			name:   "fail level unknown",
			mutate: func(c *config.LoggerConfig) { c.FailLevel = "severe" },
			check:  func(t *testing.T, err error) { assert.True(t, logger.IsInvalidLevel(err)) },
		},
		{
			name:   "bad level",
			mutate: func(c *config.LoggerConfig) { c.Level = "loud" },
			check:  func(t *testing.T, err error) { assert.Contains(t, err.Error(), "logger.level") },
		},
		{
			name:   "unknown style",
			mutate: func(*config.LoggerConfig) {},
			styles: map[string]string{"sparkle": "bold"},
			check:  func(t *testing.T, err error) { assert.Contains(t, err.Error(), "sparkle") },
		},
		{
			name:   "bad backend",
			mutate: func(c *config.LoggerConfig) { c.Backend = "syslog" },
			check:  func(t *testing.T, err error) { assert.Contains(t, err.Error(), "logger.backend") },
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := baseConfig()
			tt.mutate(&cfg)

			r, err := NewRegistry(cfg, tt.styles, &bytes.Buffer{})
			require.Error(t, err)
			assert.Nil(t, r)
			tt.check(t, err)
		})
	}
}

func TestNewRegistry_ZapBackend(t *testing.T) {
	t.Parallel()

	obs, logs := observer.New(zapcore.DebugLevel)
	var buf bytes.Buffer
	cfg := baseConfig()
	cfg.Backend = config.BackendZap

	r, err := NewRegistryWithOptions(cfg, nil, Options{Out: &buf, Zap: zap.New(obs)})
	require.NoError(t, err)

	r.GetLogger("zapped").Info("to zap")

	assert.Empty(t, buf.String())
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "zapped", logs.All()[0].LoggerName)
}

func TestNewRegistry_BothBackends(t *testing.T) {
	t.Parallel()

	obs, logs := observer.New(zapcore.DebugLevel)
	var buf bytes.Buffer
	cfg := baseConfig()
	cfg.Backend = config.BackendBoth
	cfg.FailLevel = "error"

	r, err := NewRegistryWithOptions(cfg, nil, Options{Out: &buf, Zap: zap.New(obs)})
	require.NoError(t, err)

	r.GetLogger("both").Error("everywhere")

	assert.Contains(t, buf.String(), "[ERROR] everywhere\n")
	assert.Contains(t, buf.String(), "[INFO] "+logger.BreakingLogMessage)
	assert.Equal(t, 1, logs.FilterMessage("everywhere").Len())
	assert.Equal(t, 1, logs.FilterMessage(logger.BreakingLogMessage).Len())
	assert.NoError(t, r.Close())
}
