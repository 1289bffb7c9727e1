package config

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/space-shooter/constants"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.TickInterval != constants.TickInterval {
		t.Errorf("expected tick %s, got %s", constants.TickInterval, cfg.TickInterval)
	}
	if cfg.Rates.EnemySpawn != constants.EnemySpawnRate {
		t.Errorf("expected enemy spawn %v, got %v", constants.EnemySpawnRate, cfg.Rates.EnemySpawn)
	}
}

func TestDecodeOverridesDefaults(t *testing.T) {
	src := `
tick_interval: 20ms
seed: 42
rates:
  boss_fire: 0.5
`
	cfg, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if cfg.TickInterval != 20*time.Millisecond {
		t.Errorf("expected 20ms, got %s", cfg.TickInterval)
	}
	if cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Seed)
	}
	if cfg.Rates.BossFire != 0.5 {
		t.Errorf("expected boss fire 0.5, got %v", cfg.Rates.BossFire)
	}
	// Untouched fields keep defaults
	if cfg.Rates.RewardSpawn != constants.RewardSpawnRate {
		t.Errorf("expected default reward spawn, got %v", cfg.Rates.RewardSpawn)
	}
	if cfg.KeyStep != Default().KeyStep {
		t.Errorf("expected default key step, got %v", cfg.KeyStep)
	}
}

func TestDecodeEmptyReturnsDefaults(t *testing.T) {
	cfg, err := Decode(strings.NewReader("  \n"))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestDecodeRejectsUnknownField(t *testing.T) {
	_, err := Decode(strings.NewReader("lives: 3\n"))
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tick", func(c *Config) { c.TickInterval = 0 }},
		{"negative key step", func(c *Config) { c.KeyStep = -1 }},
		{"spawn above one", func(c *Config) { c.Rates.EnemySpawn = 1.5 }},
		{"negative decay", func(c *Config) { c.Rates.ExplosionDecay = -0.1 }},
		{"nan key step", func(c *Config) { c.KeyStep = math.NaN() }},
		{"infinite key step", func(c *Config) { c.KeyStep = math.Inf(1) }},
		{"nan enemy spawn", func(c *Config) { c.Rates.EnemySpawn = math.NaN() }},
		{"nan reward spawn", func(c *Config) { c.Rates.RewardSpawn = math.NaN() }},
		{"nan boss fire", func(c *Config) { c.Rates.BossFire = math.NaN() }},
		{"nan decay", func(c *Config) { c.Rates.ExplosionDecay = math.NaN() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestDecodeRejectsNonFinite(t *testing.T) {
	inputs := []string{
		"key_step: .nan\n",
		"key_step: .inf\n",
		"rates: {enemy_spawn: .nan}\n",
		"rates: {explosion_decay: .nan}\n",
		"rates: {boss_fire: -.inf}\n",
	}
	for _, src := range inputs {
		if _, err := Decode(strings.NewReader(src)); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%q: expected ErrInvalidConfig, got %v", src, err)
		}
	}
}

func TestEncodeDecodeFile(t *testing.T) {
	cfg := Default()
	cfg.Seed = 7
	cfg.StartShielded = true

	var buf bytes.Buffer
	if err := Encode(&buf, cfg); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}
