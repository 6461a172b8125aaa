package passive

import (
	"github.com/vovakirdan/passive/internal/config"
	"github.com/vovakirdan/passive/internal/core"
)

// Rand is the random source used for spawning. *rand.Rand satisfies it.
type Rand interface {
	Float32() float32
	Intn(n int) int
}

// Band is a corner square of the play field where a wave appears.
type Band struct {
	Name       string
	XMin, XMax float32
	YMin, YMax float32
}

// Contains reports whether p lies inside the band (edges included).
func (b Band) Contains(p core.Vec2) bool {
	return p.X >= b.XMin && p.X <= b.XMax && p.Y >= b.YMin && p.Y <= b.YMax
}

// CornerBands returns the four corner squares of [-1,1]², each
// 2*buffer wide, in the order upper-right, upper-left, lower-left,
// lower-right.
func CornerBands(buffer float32) [4]Band {
	inner := 1 - 2*buffer
	return [4]Band{
		{Name: "upper-right", XMin: inner, XMax: 1, YMin: inner, YMax: 1},
		{Name: "upper-left", XMin: -1, XMax: -inner, YMin: inner, YMax: 1},
		{Name: "lower-left", XMin: -1, XMax: -inner, YMin: -1, YMax: -inner},
		{Name: "lower-right", XMin: inner, XMax: 1, YMin: -1, YMax: -inner},
	}
}

// Spawner places new enemies and gates.
type Spawner struct {
	rng   Rand
	bands [4]Band
	gates config.GateConfig
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng Rand, cfg config.PassiveConfig) *Spawner {
	return &Spawner{
		rng:   rng,
		bands: CornerBands(cfg.Enemies.Buffer),
		gates: cfg.Gates,
	}
}

// Wave picks one corner band uniformly at random and places size enemies
// uniformly inside it.
func (s *Spawner) Wave(size uint32) (Band, []Enemy) {
	band := s.bands[s.rng.Intn(len(s.bands))]

	enemies := make([]Enemy, 0, size)
	for i := uint32(0); i < size; i++ {
		x := s.uniform(band.XMin, band.XMax)
		y := s.uniform(band.YMin, band.YMax)
		enemies = append(enemies, NewEnemy(core.V2(x, y)))
	}
	return band, enemies
}

// Gate places one gate uniformly in [0,1]², the upper-right quadrant only.
// Its spin magnitude is uniform in [SpinMin, SpinMax] with a random direction.
func (s *Spawner) Gate() Gate {
	x := s.uniform(0, 1)
	y := s.uniform(0, 1)

	spin := s.uniform(s.gates.SpinMin, s.gates.SpinMax)
	if s.rng.Intn(2) == 0 {
		spin = -spin
	}
	return NewGate(core.V2(x, y), spin)
}

// uniform returns a value in [lo, hi).
func (s *Spawner) uniform(lo, hi float32) float32 {
	return lo + s.rng.Float32()*(hi-lo)
}
