// Package config holds runtime tuning for the game loop and input
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/space-shooter/constants"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the tunable subset of game parameters
// Field geometry and scoring are fixed in constants
type Config struct {
	// TickInterval is the fixed simulation step
	TickInterval time.Duration `yaml:"tick_interval"`

	// Seed for the simulation random source, 0 selects a time-based seed
	Seed int64 `yaml:"seed"`

	// KeyStep is the horizontal distance moved per arrow key press
	KeyStep float64 `yaml:"key_step"`

	Rates Rates `yaml:"rates"`

	// StartShielded grants the shield at round start, for practice runs
	StartShielded bool `yaml:"start_shielded"`

	// ShowStats draws the metric registry in the HUD
	ShowStats bool `yaml:"show_stats"`
}

// Rates are per-tick probabilities in [0, 1]
type Rates struct {
	EnemySpawn     float64 `yaml:"enemy_spawn"`
	RewardSpawn    float64 `yaml:"reward_spawn"`
	BossFire       float64 `yaml:"boss_fire"`
	ExplosionDecay float64 `yaml:"explosion_decay"`
}

// Default returns the stock game configuration
func Default() Config {
	return Config{
		TickInterval: constants.TickInterval,
		KeyStep:      10,
		Rates: Rates{
			EnemySpawn:     constants.EnemySpawnRate,
			RewardSpawn:    constants.RewardSpawnRate,
			BossFire:       constants.BossFireRate,
			ExplosionDecay: constants.ExplosionDecayChance,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses YAML from r over the defaults; unknown keys are rejected
func Decode(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("decode yaml: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes cfg as YAML
func Encode(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// Validate checks ranges
func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick_interval must be positive, got %s", ErrInvalidConfig, c.TickInterval)
	}
	if !finite(c.KeyStep) || c.KeyStep <= 0 {
		return fmt.Errorf("%w: key_step must be positive, got %v", ErrInvalidConfig, c.KeyStep)
	}

	probs := []struct {
		name string
		v    float64
	}{
		{"rates.enemy_spawn", c.Rates.EnemySpawn},
		{"rates.reward_spawn", c.Rates.RewardSpawn},
		{"rates.boss_fire", c.Rates.BossFire},
		{"rates.explosion_decay", c.Rates.ExplosionDecay},
	}
	for _, p := range probs {
		if !finite(p.v) || p.v < 0 || p.v > 1 {
			return fmt.Errorf("%w: %s must be in [0,1], got %v", ErrInvalidConfig, p.name, p.v)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
