package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config represents the effective CLI configuration.
type Config struct {
	Format        string            `mapstructure:"format"`
	LogLevel      string            `mapstructure:"log_level"`
	LogComponents map[string]string `mapstructure:"log_components"`
	LogTimestamps bool              `mapstructure:"log_timestamps"`
	Verbose       bool              `mapstructure:"verbose"`
	NoColor       bool              `mapstructure:"no_color"`

	// ShowRules and ShowVersion replace the report with a listing.
	ShowRules   bool `mapstructure:"show_rules"`
	ShowVersion bool `mapstructure:"show_version"`

	// Category restricts the rules listing to one category id.
	Category string `mapstructure:"category"`
}

// EffectiveLogLevel returns the log level to initialize logging with.
// --verbose wins over --log-level.
func (c *Config) EffectiveLogLevel() string {
	if c.Verbose {
		return VerboseLogLevel
	}
	if c.LogLevel == "" {
		return DefaultLogLevel
	}
	return c.LogLevel
}

// flagKeys maps flag names to their viper keys.
var flagKeys = map[string]string{
	"format":         "format",
	"log-level":      "log_level",
	"log-component":  "log_components",
	"log-timestamps": "log_timestamps",
	"verbose":        "verbose",
	"no-color":       "no_color",
	"rules":          "show_rules",
	"version":        "show_version",
	"category":       "category",
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_timestamps", false)
	v.SetDefault("verbose", false)
	v.SetDefault("no_color", false)
	v.SetDefault("show_rules", false)
	v.SetDefault("show_version", false)
	v.SetDefault("category", "")
}

// BindFlags binds every known flag present in flags to its viper key.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}

// Load unmarshals the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if len(cfg.LogComponents) == 0 {
		cfg.LogComponents = nil
	}
	return &cfg, nil
}
