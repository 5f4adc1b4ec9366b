package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/philipp01105/buildlog/core"
	"github.com/philipp01105/buildlog/style"
)

// EnvPrefix prefixes every environment override, e.g. BUILDLOG_LOGGER_LEVEL
const EnvPrefix = "BUILDLOG"

// ConfigName is the config file looked up in ConfigPaths
const ConfigName = "buildlog"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	".",
	"./configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./configs/.env",
}

// Load reads configuration into a fresh viper instance.
// See LoadFrom.
func Load(configFile string) (*Config, error) {
	return LoadFrom(viper.New(), configFile)
}

// LoadFrom reads configuration into v, which may already carry bound
// flags. Sources in order of precedence: flags bound to v, BUILDLOG_*
// environment variables (including those from a .env file), the config
// file, defaults. An explicit configFile must exist; otherwise
// buildlog.yaml is optional.
func LoadFrom(v *viper.Viper, configFile string) (*Config, error) {
	// Variables from .env never override the real environment
	loadDotEnvFile()

	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		for _, path := range ConfigPaths {
			v.AddConfigPath(path)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadDotEnvFile loads the first .env file found in DotEnvPaths
func loadDotEnvFile() {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// SetDefaults sets the default value of every key
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", FormatText)
	v.SetDefault("logger.backend", BackendConsole)
	v.SetDefault("logger.color", string(style.ModeAuto))
	v.SetDefault("logger.showDateTime", false)
	v.SetDefault("logger.dateTimeFormat", "")
	v.SetDefault("logger.showLogName", false)
	v.SetDefault("logger.shortLogName", false)
	v.SetDefault("logger.levelInBrackets", true)
	v.SetDefault("logger.callerInfo", false)
	v.SetDefault("logger.coarseClock", false)
	v.SetDefault("logger.failLevel", "")

	// registered so BUILDLOG_STYLES_<NAME> is picked up
	for _, name := range style.Names() {
		v.SetDefault("styles."+string(name), "")
	}
}

// Validate checks enumerated values. The fail level is checked when it
// is applied to a registry.
func (c *Config) Validate() error {
	if _, err := core.ParseLevel(c.Logger.Level); err != nil {
		return fmt.Errorf("logger.level: %w", err)
	}

	switch strings.ToLower(c.Logger.Format) {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("logger.format: unknown format %q", c.Logger.Format)
	}

	switch strings.ToLower(c.Logger.Backend) {
	case BackendConsole, BackendZap, BackendBoth:
	default:
		return fmt.Errorf("logger.backend: unknown backend %q", c.Logger.Backend)
	}

	if _, err := style.ParseMode(c.Logger.Color); err != nil {
		return fmt.Errorf("logger.color: %w", err)
	}
	return nil
}
