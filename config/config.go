// Package config loads process-start tuning from VR_RANGE_* environment variables
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vr-range/audio"
	"github.com/lixenwraith/vr-range/projectile"
	"github.com/lixenwraith/vr-range/round"
	"github.com/lixenwraith/vr-range/target"
	"github.com/lixenwraith/vr-range/weapon"
)

// Prefix is prepended to every variable name
const Prefix = "VR_RANGE_"

var (
	ErrInvalidDuration    = errors.New("duration must be positive")
	ErrInvalidSensitivity = errors.New("trigger sensitivity must be within 0..1")
	ErrInvalidVolume      = errors.New("master volume must be within 0..1")
	ErrInvalidProjectile  = errors.New("projectile speed and radius must be positive")
	ErrInvalidScoring     = errors.New("points per hit must be positive")
)

// Preset is one difficulty's pacing
type Preset struct {
	SpawnInterval  time.Duration `env:"SPAWN_INTERVAL"`
	TargetLifetime time.Duration `env:"TARGET_LIFETIME"`
}

// Config is the full set of tunables
type Config struct {
	GameDuration time.Duration `env:"GAME_DURATION" envDefault:"60s"`
	SettleDelay  time.Duration `env:"SETTLE_DELAY"  envDefault:"2s"`
	PointsPerHit int           `env:"POINTS_PER_HIT" envDefault:"10"`

	Easy   Preset `envPrefix:"EASY_"`
	Medium Preset `envPrefix:"MEDIUM_"`
	Hard   Preset `envPrefix:"HARD_"`

	ProjectileSpeed    float64       `env:"PROJECTILE_SPEED"    envDefault:"20"`
	ProjectileLifetime time.Duration `env:"PROJECTILE_LIFETIME" envDefault:"5s"`
	ProjectileRadius   float64       `env:"PROJECTILE_RADIUS"   envDefault:"0.1"`

	ShootCooldown      time.Duration `env:"SHOOT_COOLDOWN"      envDefault:"150ms"`
	TriggerSensitivity float64       `env:"TRIGGER_SENSITIVITY" envDefault:"0.45"`
	LeftHanded         bool          `env:"LEFT_HANDED"`

	FrameInterval time.Duration `env:"FRAME_INTERVAL" envDefault:"16ms"`
	MaxTickDelta  time.Duration `env:"MAX_TICK_DELTA" envDefault:"100ms"`

	AudioEnabled bool    `env:"AUDIO"         envDefault:"true"`
	MasterVolume float64 `env:"MASTER_VOLUME" envDefault:"0.8"`

	Seed  uint64 `env:"SEED"` // 0 seeds from the clock
	Debug bool   `env:"DEBUG"`
}

// presetDefaults fill presets left unset by the environment
var presetDefaults = map[target.Difficulty]Preset{
	target.DifficultyEasy:   {SpawnInterval: 2 * time.Second, TargetLifetime: 5 * time.Second},
	target.DifficultyMedium: {SpawnInterval: time.Second, TargetLifetime: 3 * time.Second},
	target.DifficultyHard:   {SpawnInterval: 500 * time.Millisecond, TargetLifetime: time.Second},
}

// Load parses the environment over the defaults and validates the result
func Load() (*Config, error) {
	cfg, err := stock()
	if err != nil {
		return nil, err
	}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: Prefix}); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}
	return cfg, nil
}

// Default returns the stock tuning without reading the environment
// Panics if an envDefault tag is malformed
func Default() *Config {
	cfg, err := stock()
	if err != nil {
		panic(err)
	}
	return cfg
}

func stock() (*Config, error) {
	cfg := &Config{}
	if err := applyDefaults(cfg); err != nil {
		return nil, err
	}
	cfg.Easy = presetDefaults[target.DifficultyEasy]
	cfg.Medium = presetDefaults[target.DifficultyMedium]
	cfg.Hard = presetDefaults[target.DifficultyHard]
	return cfg, nil
}

// applyDefaults fills every envDefault tag of dst by parsing an empty environment
func applyDefaults(dst any) error {
	if err := env.ParseWithOptions(dst, env.Options{Environment: map[string]string{}}); err != nil {
		return errors.Wrap(err, "apply defaults")
	}
	return nil
}

// Validate rejects values the round and weapons cannot run with
func (c *Config) Validate() error {
	durations := map[string]time.Duration{
		"game duration":         c.GameDuration,
		"settle delay":          c.SettleDelay,
		"projectile lifetime":   c.ProjectileLifetime,
		"frame interval":        c.FrameInterval,
		"max tick delta":        c.MaxTickDelta,
		"easy spawn interval":   c.Easy.SpawnInterval,
		"easy lifetime":         c.Easy.TargetLifetime,
		"medium spawn interval": c.Medium.SpawnInterval,
		"medium lifetime":       c.Medium.TargetLifetime,
		"hard spawn interval":   c.Hard.SpawnInterval,
		"hard lifetime":         c.Hard.TargetLifetime,
	}
	for name, d := range durations {
		if d <= 0 {
			return errors.Wrapf(ErrInvalidDuration, "%s %v", name, d)
		}
	}
	if c.ShootCooldown < 0 {
		return errors.Wrapf(ErrInvalidDuration, "shoot cooldown %v", c.ShootCooldown)
	}
	if c.TriggerSensitivity < 0 || c.TriggerSensitivity > 1 {
		return errors.Wrapf(ErrInvalidSensitivity, "got %v", c.TriggerSensitivity)
	}
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return errors.Wrapf(ErrInvalidVolume, "got %v", c.MasterVolume)
	}
	if c.ProjectileSpeed <= 0 || c.ProjectileRadius <= 0 {
		return errors.Wrapf(ErrInvalidProjectile, "speed %v radius %v", c.ProjectileSpeed, c.ProjectileRadius)
	}
	if c.PointsPerHit <= 0 {
		return errors.Wrapf(ErrInvalidScoring, "got %d", c.PointsPerHit)
	}
	return nil
}

// Profiles returns the three presets keyed by difficulty
func (c *Config) Profiles() map[target.Difficulty]target.Profile {
	return map[target.Difficulty]target.Profile{
		target.DifficultyEasy:   {SpawnInterval: c.Easy.SpawnInterval, TargetLifetime: c.Easy.TargetLifetime},
		target.DifficultyMedium: {SpawnInterval: c.Medium.SpawnInterval, TargetLifetime: c.Medium.TargetLifetime},
		target.DifficultyHard:   {SpawnInterval: c.Hard.SpawnInterval, TargetLifetime: c.Hard.TargetLifetime},
	}
}

// Round returns round timing; collaborators are left for the caller to wire
func (c *Config) Round() round.Config {
	cfg := round.DefaultConfig()
	cfg.GameDuration = c.GameDuration
	cfg.SettleDelay = c.SettleDelay
	cfg.PointsPerHit = c.PointsPerHit
	cfg.Profiles = c.Profiles()
	return cfg
}

// Projectile returns the projectile tuning
func (c *Config) Projectile() projectile.Config {
	cfg := projectile.DefaultConfig()
	cfg.Speed = c.ProjectileSpeed
	cfg.Lifetime = c.ProjectileLifetime
	cfg.Radius = c.ProjectileRadius
	return cfg
}

// Rifle returns the rifle tuning
func (c *Config) Rifle() weapon.RifleConfig {
	cfg := weapon.DefaultRifleConfig()
	cfg.Cooldown = c.ShootCooldown
	cfg.Sensitivity = c.TriggerSensitivity
	cfg.RightHanded = !c.LeftHanded
	return cfg
}

// Audio returns the sound manager configuration
func (c *Config) Audio() *audio.Config {
	cfg := audio.DefaultConfig()
	cfg.Enabled = c.AudioEnabled
	cfg.MasterVolume = c.MasterVolume
	return cfg
}
