package config

import (
	_ "embed"
)

//go:embed defaults/passive.yaml
var defaultPassiveYAML []byte

// DefaultPassiveConfig returns the built-in configuration.
// It matches defaults/passive.yaml and is the fallback when the embedded
// file cannot be parsed.
func DefaultPassiveConfig() PassiveConfig {
	return PassiveConfig{
		Player: PlayerConfig{
			Speed:  0.54,
			Radius: 0.05,
		},
		Enemies: EnemyConfig{
			SpeedFactor: 0.65,
			Radius:      0.05,
			SpawnFreq:   3.0,
			Buffer:      0.25,
			InitialWave: 1,
		},
		Gates: GateConfig{
			Radius:    0.1,
			SpawnFreq: 4.5,
			SpinMin:   1.0,
			SpinMax:   2.5,
		},
		Limits: LimitsConfig{
			MaxEnemies: 0,
			MaxGates:   0,
		},
		Input: InputConfig{
			HoldMillis: 150,
		},
		Collision: CollisionConfig{
			BroadPhase: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPassiveYAML
}
