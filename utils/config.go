package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-grid/model"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Length         int           `json:"length" env:"GOL_LENGTH"`
	FrameRate      time.Duration `json:"frame_rate" env:"GOL_FRAME_RATE"`
	MaxGenerations int           `json:"max_generations" env:"GOL_MAX_GENERATIONS"`
	Pattern        string        `json:"pattern" env:"GOL_PATTERN"`
	RandomDensity  float64       `json:"random_density" env:"GOL_RANDOM_DENSITY"`
	Seed           int64         `json:"seed" env:"GOL_SEED"` // 0 picks a time based seed
	UseMemoryPool  bool          `json:"use_memory_pool" env:"GOL_USE_MEMORY_POOL"`
	UseBoundedGrid bool          `json:"use_bounded_grid" env:"GOL_USE_BOUNDED_GRID"`
	HistorySize    int           `json:"history_size" env:"GOL_HISTORY_SIZE"`
	ClearScreen    bool          `json:"clear_screen" env:"GOL_CLEAR_SCREEN"`
	BlockGlyphs    bool          `json:"block_glyphs" env:"GOL_BLOCK_GLYPHS"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Length:         10,
		FrameRate:      150 * time.Millisecond,
		MaxGenerations: 100,
		Pattern:        model.PatternGapLine,
		RandomDensity:  0.15,
		UseMemoryPool:  true,
		UseBoundedGrid: true, // Enable active region optimization
		HistorySize:    model.DefaultHistorySize,
		ClearScreen:    false,
		BlockGlyphs:    false,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// ApplyEnv overrides config fields from GOL_* environment variables
func ApplyEnv(config *Config) error {
	if err := env.Parse(config); err != nil {
		return errors.Wrap(err, "[ApplyEnv] failed to parse environment")
	}
	return nil
}

// Validate checks the config for values the game cannot run with
func (c Config) Validate() error {
	if err := model.ValidateLength(c.Length); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] %v", err)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random_density must be within [0,1], got %v", c.RandomDensity)
	}
	if c.MaxGenerations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	}
	if c.HistorySize < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] history_size must not be negative, got %d", c.HistorySize)
	}
	if c.FrameRate < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame_rate must not be negative, got %v", c.FrameRate)
	}
	for _, p := range model.Patterns() {
		if p == c.Pattern {
			return nil
		}
	}
	return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown pattern %q", c.Pattern)
}
