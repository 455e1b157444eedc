package utils

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{"length": 25, "pattern": "glider", "max_generations": 7}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Length != 25 || cfg.Pattern != "glider" || cfg.MaxGenerations != 7 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	// untouched fields keep their defaults
	if cfg.RandomDensity != DefaultConfig().RandomDensity {
		t.Fatalf("RandomDensity = %v, want default", cfg.RandomDensity)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("err = %v, want not-exist", err)
	}
	if cfg != DefaultConfig() {
		t.Fatal("missing file should still return defaults")
	}
}

func TestLoadConfigBadJSON(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, `{"length": `)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("GOL_LENGTH", "12")
	t.Setenv("GOL_FRAME_RATE", "20ms")
	t.Setenv("GOL_PATTERN", "blinker")
	t.Setenv("GOL_USE_MEMORY_POOL", "false")

	cfg := DefaultConfig()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv error: %v", err)
	}
	if cfg.Length != 12 || cfg.FrameRate != 20*time.Millisecond || cfg.Pattern != "blinker" || cfg.UseMemoryPool {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.MaxGenerations != DefaultConfig().MaxGenerations {
		t.Fatal("unset variables should leave fields alone")
	}
}

func TestApplyEnvBadValue(t *testing.T) {
	t.Setenv("GOL_LENGTH", "ten")
	cfg := DefaultConfig()
	if err := ApplyEnv(&cfg); err == nil {
		t.Fatal("expected error for non-numeric length")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative length", func(c *Config) { c.Length = -1 }},
		{"oversized length", func(c *Config) { c.Length = math.MaxInt }},
		{"density above one", func(c *Config) { c.RandomDensity = 1.5 }},
		{"negative density", func(c *Config) { c.RandomDensity = -0.1 }},
		{"negative budget", func(c *Config) { c.MaxGenerations = -3 }},
		{"negative history", func(c *Config) { c.HistorySize = -1 }},
		{"negative frame rate", func(c *Config) { c.FrameRate = -time.Second }},
		{"unknown pattern", func(c *Config) { c.Pattern = "spaceship" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}

	zero := DefaultConfig()
	zero.Length = 0
	if err := zero.Validate(); err != nil {
		t.Fatalf("zero length should be valid: %v", err)
	}
}
