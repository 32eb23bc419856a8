package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/diceroller/internal/dice"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stderr",
		},
		Roller: RollerConfig{
			Merge:   "replace",
			MaxDice: 100,
		},
		Console: ConsoleConfig{
			Banner: true,
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, "replace", cfg.Roller.Merge)
	assert.Equal(t, 10000, cfg.Roller.MaxDice)
	assert.Zero(t, cfg.Roller.Seed)
	assert.True(t, cfg.Console.Banner)
	assert.False(t, cfg.Console.Color)
	assert.False(t, cfg.Console.Strict)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: json
roller:
  merge: accumulate
  max_dice: 50
  seed: 1234
console:
  banner: false
  strict: true
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output, "unset keys keep their defaults")
	assert.Equal(t, "accumulate", cfg.Roller.Merge)
	assert.Equal(t, 50, cfg.Roller.MaxDice)
	assert.Equal(t, uint64(1234), cfg.Roller.Seed)
	assert.False(t, cfg.Console.Banner)
	assert.True(t, cfg.Console.Strict)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DICE_ROLLER_MERGE", "accumulate")
	t.Setenv("DICE_CONSOLE_COLOR", "true")
	t.Setenv("DICE_LOGGING_LEVEL", "error")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "accumulate", cfg.Roller.Merge)
	assert.True(t, cfg.Console.Color)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.ErrorContains(t, err, "reading config file")
}

func TestLoadEnvMergeIsCaseInsensitive(t *testing.T) {
	t.Setenv("DICE_ROLLER_MERGE", " Accumulate ")

	cfg, err := Load("")
	require.NoError(t, err)

	merge, err := dice.ParseMergePolicy(cfg.Roller.Merge)
	require.NoError(t, err)
	assert.Equal(t, dice.MergeAccumulate, merge)
}

func TestValidateMaxDiceAboveLimit(t *testing.T) {
	cfg := validConfig()
	cfg.Roller.MaxDice = dice.MaxDiceLimit
	assert.NoError(t, cfg.Validate())

	cfg.Roller.MaxDice = dice.MaxDiceLimit + 1
	assert.ErrorContains(t, cfg.Validate(), "roller.max_dice")
}

func TestLoadInvalidValue(t *testing.T) {
	t.Setenv("DICE_ROLLER_MERGE", "sum")
	_, err := Load("")
	assert.ErrorContains(t, err, "roller.merge")
}

func TestLoadFromViper(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("roller.max_dice", 3)

	cfg, err := LoadFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Roller.MaxDice)
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingFormat(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := validConfig()
		cfg.Logging.Format = format
		assert.NoError(t, cfg.Validate(), "format %q should be valid", format)
	}
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingOutputEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Output = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateRollerMerge(t *testing.T) {
	for _, merge := range []string{"replace", "accumulate", "REPLACE"} {
		cfg := validConfig()
		cfg.Roller.Merge = merge
		assert.NoError(t, cfg.Validate(), "merge %q should be valid", merge)
	}
	cfg := validConfig()
	cfg.Roller.Merge = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateCollectsAllViolations(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "loud"
	cfg.Roller.MaxDice = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "roller.max_dice")
}

// Property-based tests

func TestPropertyMaxDiceNonNegativeAccepted(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		maxDice := rapid.IntRange(0, dice.MaxDiceLimit).Draw(t, "max_dice")
		cfg := validConfig()
		cfg.Roller.MaxDice = maxDice
		if err := cfg.Validate(); err != nil {
			t.Fatalf("valid max_dice %d rejected: %v", maxDice, err)
		}
	})
}

func TestPropertyMaxDiceNegativeRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		maxDice := rapid.IntRange(-1_000_000, -1).Draw(t, "max_dice")
		cfg := validConfig()
		cfg.Roller.MaxDice = maxDice
		if err := cfg.Validate(); err == nil {
			t.Fatalf("invalid max_dice %d accepted", maxDice)
		}
	})
}
