package config

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Backends
const (
	BackendConsole = "console"
	BackendZap     = "zap"
	BackendBoth    = "both"
)

// Config holds all configuration for buildlog
type Config struct {
	Logger LoggerConfig      `mapstructure:"logger"`
	Styles map[string]string `mapstructure:"styles"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level        string `mapstructure:"level"`
	Format       string `mapstructure:"format"`
	Backend      string `mapstructure:"backend"`
	Color        string `mapstructure:"color"`
	ShowDateTime bool   `mapstructure:"showDateTime"`
	// DateTimeFormat is a Go time layout; empty keeps the formatter default
	DateTimeFormat  string `mapstructure:"dateTimeFormat"`
	ShowLogName     bool   `mapstructure:"showLogName"`
	ShortLogName    bool   `mapstructure:"shortLogName"`
	LevelInBrackets bool   `mapstructure:"levelInBrackets"`
	CallerInfo      bool   `mapstructure:"callerInfo"`
	CoarseClock     bool   `mapstructure:"coarseClock"`
	FailLevel       string `mapstructure:"failLevel"` // empty: never break
}

// StyleOverrides returns the configured style specs, skipping styles
// left at their default.
func (c *Config) StyleOverrides() map[string]string {
	overrides := make(map[string]string, len(c.Styles))
	for name, spec := range c.Styles {
		if spec != "" {
			overrides[name] = spec
		}
	}
	return overrides
}
