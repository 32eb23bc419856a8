// Package config provides Viper-based configuration loading for the dice roller.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cory-johannsen/diceroller/internal/dice"
)

// EnvPrefix is prepended to every environment override, e.g. DICE_ROLLER_MERGE.
const EnvPrefix = "DICE"

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is a zap sink: "stderr", "stdout", or a file path.
	Output string `mapstructure:"output"`
}

// RollerConfig holds parsing and rolling settings.
type RollerConfig struct {
	// Merge decides how repeated side-counts combine: "replace" or "accumulate".
	Merge string `mapstructure:"merge"`
	// MaxDice caps the dice-count per side-count; 0 means dice.MaxDiceLimit.
	MaxDice int `mapstructure:"max_dice"`
	// Seed makes rolls reproducible when non-zero; 0 uses crypto/rand.
	Seed uint64 `mapstructure:"seed"`
}

// ConsoleConfig holds interactive console settings.
type ConsoleConfig struct {
	// Banner prints the ASCII-art banner at startup.
	Banner bool `mapstructure:"banner"`
	// Color enables ANSI styling of the report.
	Color bool `mapstructure:"color"`
	// Strict lists ignored terms after each report.
	Strict bool `mapstructure:"strict"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Roller  RollerConfig  `mapstructure:"roller"`
	Console ConsoleConfig `mapstructure:"console"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateRoller(c.Roller); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	var errs []string
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", l.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", l.Format))
	}
	if l.Output == "" {
		errs = append(errs, "logging.output must not be empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateRoller(r RollerConfig) error {
	var errs []string
	if _, err := dice.ParseMergePolicy(r.Merge); err != nil {
		errs = append(errs, fmt.Sprintf("roller.merge must be one of [replace, accumulate], got %q", r.Merge))
	}
	if r.MaxDice < 0 || r.MaxDice > dice.MaxDiceLimit {
		errs = append(errs, fmt.Sprintf("roller.max_dice must be 0-%d, got %d", dice.MaxDiceLimit, r.MaxDice))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus environment overrides only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with DICE_ prefix
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("roller.merge", "replace")
	v.SetDefault("roller.max_dice", 10000)
	v.SetDefault("roller.seed", 0)

	v.SetDefault("console.banner", true)
	v.SetDefault("console.color", false)
	v.SetDefault("console.strict", false)
}
