package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// presetScale holds the multipliers a preset applies to the base config.
type presetScale struct {
	enemySpeed float32 // Multiplies enemies.speed_factor
	enemyFreq  float32 // Multiplies enemies.spawn_freq (higher = slower waves)
	gateFreq   float32 // Multiplies gates.spawn_freq
	gateSpin   float32 // Multiplies the spin range
}

var presetScales = map[DifficultyPreset]presetScale{
	DifficultyEasy:   {enemySpeed: 0.75, enemyFreq: 1.5, gateFreq: 1.5, gateSpin: 0.75},
	DifficultyNormal: {enemySpeed: 1, enemyFreq: 1, gateFreq: 1, gateSpin: 1},
	DifficultyHard:   {enemySpeed: 1.25, enemyFreq: 0.7, gateFreq: 0.7, gateSpin: 1.5},
}

// ParsePreset converts a flag value into a preset.
// An empty string selects normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(s)
	if _, ok := presetScales[p]; !ok {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
	return p, nil
}

// ApplyPreset modifies the config based on a difficulty preset.
// Unknown presets leave the config untouched.
func ApplyPreset(cfg *PassiveConfig, preset DifficultyPreset) {
	scale, ok := presetScales[preset]
	if !ok {
		return
	}
	cfg.Enemies.SpeedFactor *= scale.enemySpeed
	cfg.Enemies.SpawnFreq *= scale.enemyFreq
	cfg.Gates.SpawnFreq *= scale.gateFreq
	cfg.Gates.SpinMin *= scale.gateSpin
	cfg.Gates.SpinMax *= scale.gateSpin
}
