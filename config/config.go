// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters. NEAT hyperparameters are
// not here; they live in the INI file consumed by the evolution engine
// (see Evolution.NeatConfig).
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Bird       BirdConfig       `yaml:"bird"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Pipes      PipesConfig      `yaml:"pipes"`
	Fitness    FitnessConfig    `yaml:"fitness"`
	Evolution  EvolutionConfig  `yaml:"evolution"`
	Background BackgroundConfig `yaml:"background"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// BirdConfig holds bird geometry and spawn position.
type BirdConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig holds per-tick physics constants.
// Units are pixels and pixels per tick; y grows downward.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // velocity gain per tick
	FlapImpulse  float64 `yaml:"flap_impulse"`   // upward velocity set on flap
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // terminal velocity clamp
}

// PipesConfig holds pipe generation parameters.
type PipesConfig struct {
	Speed         float64 `yaml:"speed"`           // leftward scroll per tick
	Width         float64 `yaml:"width"`
	Gap           float64 `yaml:"gap"`             // vertical opening height
	SpawnX        float64 `yaml:"spawn_x"`         // x where new pipes appear
	SpawnTriggerX float64 `yaml:"spawn_trigger_x"` // spawn next when last pipe reaches this x
	MarginTop     float64 `yaml:"margin_top"`      // min gap-top y
	MarginBottom  float64 `yaml:"margin_bottom"`   // min distance of gap bottom from ground
}

// FitnessConfig holds the reward schedule. Rewards only: fitness is
// non-decreasing while a bird is alive and frozen when it dies.
type FitnessConfig struct {
	SurvivalReward float64 `yaml:"survival_reward"` // per tick alive
	PipeReward     float64 `yaml:"pipe_reward"`     // per pipe traversed
}

// EvolutionConfig holds trainer settings that sit outside the engine's
// own INI configuration.
type EvolutionConfig struct {
	Generations        int    `yaml:"generations"`
	MaxEpisodeTicks    int    `yaml:"max_episode_ticks"`
	NeatConfig         string `yaml:"neat_config"`
	CheckpointInterval int    `yaml:"checkpoint_interval"` // generations between checkpoints (0 = disabled)
	CheckpointPrefix   string `yaml:"checkpoint_prefix"`
}

// BackgroundConfig holds procedural background parameters.
type BackgroundConfig struct {
	ScrollSpeed float64 `yaml:"scroll_speed"` // pixels per tick for nearest layer
	Layers      int     `yaml:"layers"`
	NoiseAlpha  float64 `yaml:"noise_alpha"`
	NoiseBeta   float64 `yaml:"noise_beta"`
	NoiseScale  float64 `yaml:"noise_scale"` // horizontal noise frequency
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	LogStats bool `yaml:"log_stats"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	GroundY    float64 // Screen.Height as float64
	GapTopMin  float64 // lowest permitted gap-top y
	GapTopMax  float64 // highest permitted gap-top y
	NumInputs  int     // sensor vector length
	NumOutputs int     // network output length
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects configurations the episode driver cannot run with.
func (c *Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("config: screen dimensions must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Pipes.Gap <= c.Bird.Height {
		return fmt.Errorf("config: pipe gap %.0f must exceed bird height %.0f", c.Pipes.Gap, c.Bird.Height)
	}
	gapTopMax := float64(c.Screen.Height) - c.Pipes.MarginBottom - c.Pipes.Gap
	if gapTopMax < c.Pipes.MarginTop {
		return fmt.Errorf("config: margins and gap leave no room for pipe placement (top margin %.0f, usable max %.0f)",
			c.Pipes.MarginTop, gapTopMax)
	}
	if c.Evolution.MaxEpisodeTicks <= 0 {
		return fmt.Errorf("config: max_episode_ticks must be positive")
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.GroundY = float64(c.Screen.Height)
	c.Derived.GapTopMin = c.Pipes.MarginTop
	c.Derived.GapTopMax = float64(c.Screen.Height) - c.Pipes.MarginBottom - c.Pipes.Gap
	c.Derived.NumInputs = 4 // bird y, distance to next pipe, gap top, gap bottom
	c.Derived.NumOutputs = 1
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
