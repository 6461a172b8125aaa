// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// PassiveConfig contains every tunable of the simulation.
// Coordinates and radii are in normalized screen space ([-1,1] on both axes).
type PassiveConfig struct {
	Player    PlayerConfig    `yaml:"player"`
	Enemies   EnemyConfig     `yaml:"enemies"`
	Gates     GateConfig      `yaml:"gates"`
	Limits    LimitsConfig    `yaml:"limits"`
	Input     InputConfig     `yaml:"input"`
	Collision CollisionConfig `yaml:"collision"`
}

// PlayerConfig defines player movement and size.
type PlayerConfig struct {
	Speed  float32 `yaml:"speed"`  // Units per second
	Radius float32 `yaml:"radius"` // Collision radius
}

// EnemyConfig defines enemy pursuit and wave spawning.
type EnemyConfig struct {
	SpeedFactor float32 `yaml:"speed_factor"` // Fraction of player speed
	Radius      float32 `yaml:"radius"`       // Drawing radius
	SpawnFreq   float32 `yaml:"spawn_freq"`   // Seconds between waves
	Buffer      float32 `yaml:"buffer"`       // Half-width of a corner band
	InitialWave uint32  `yaml:"initial_wave"` // Size of the first wave
}

// GateConfig defines rotating gate hazards.
type GateConfig struct {
	Radius    float32 `yaml:"radius"`     // Circumradius of the triangle
	SpawnFreq float32 `yaml:"spawn_freq"` // Seconds between gates
	SpinMin   float32 `yaml:"spin_min"`   // Minimum |angular velocity|, rad/s
	SpinMax   float32 `yaml:"spin_max"`   // Maximum |angular velocity|, rad/s
}

// LimitsConfig bounds the entity collections. Zero means unbounded.
type LimitsConfig struct {
	MaxEnemies int `yaml:"max_enemies"`
	MaxGates   int `yaml:"max_gates"`
}

// InputConfig tunes the terminal key-hold emulation.
type InputConfig struct {
	HoldMillis int `yaml:"hold_ms"` // How long a key press counts as held
}

// CollisionConfig toggles the gate broad-phase check.
type CollisionConfig struct {
	BroadPhase bool `yaml:"broad_phase"`
}

// EnemySpeed returns the enemy speed in units per second.
func (c PassiveConfig) EnemySpeed() float32 {
	return c.Enemies.SpeedFactor * c.Player.Speed
}

// Validate checks that the configuration describes a playable game.
func (c PassiveConfig) Validate() error {
	var errs []error

	positive := []struct {
		name string
		val  float32
	}{
		{"player.speed", c.Player.Speed},
		{"player.radius", c.Player.Radius},
		{"enemies.speed_factor", c.Enemies.SpeedFactor},
		{"enemies.radius", c.Enemies.Radius},
		{"enemies.spawn_freq", c.Enemies.SpawnFreq},
		{"enemies.buffer", c.Enemies.Buffer},
		{"gates.radius", c.Gates.Radius},
		{"gates.spawn_freq", c.Gates.SpawnFreq},
	}
	for _, p := range positive {
		if !(p.val > 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", p.name, p.val))
		}
	}

	// Wider corner bands would overlap
	if c.Enemies.Buffer > 0.5 {
		errs = append(errs, fmt.Errorf("enemies.buffer must be at most 0.5, got %v", c.Enemies.Buffer))
	}
	if c.Enemies.InitialWave == 0 {
		errs = append(errs, errors.New("enemies.initial_wave must be at least 1"))
	}
	if c.Gates.SpinMin < 0 || c.Gates.SpinMax < c.Gates.SpinMin {
		errs = append(errs, fmt.Errorf("gates spin range [%v, %v] is invalid", c.Gates.SpinMin, c.Gates.SpinMax))
	}
	if c.Limits.MaxEnemies < 0 || c.Limits.MaxGates < 0 {
		errs = append(errs, errors.New("limits must not be negative"))
	}
	if c.Input.HoldMillis < 0 {
		errs = append(errs, fmt.Errorf("input.hold_ms must not be negative, got %d", c.Input.HoldMillis))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
