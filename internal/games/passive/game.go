// Package passive implements the passive arcade game: the player dodges
// waves of pursuing enemies and rotating triangular gates. Touching a gate
// edge pauses the game.
//
// The simulation is single-threaded. The platform calls Advance once per
// frame and reads Snapshot between calls.
package passive

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/passive/internal/config"
	"github.com/vovakirdan/passive/internal/core"
)

// ID is the identifier used for the game in logs and file names.
const ID = "passive"

// Game owns all entities and advances the simulation.
type Game struct {
	cfg     config.PassiveConfig
	aspect  float32
	spawner *Spawner
	logger  *log.Logger

	player  Player
	enemies []Enemy
	gates   []Gate
	keys    map[core.Action]bool

	paused         bool
	crashed        bool    // Last pause came from a gate collision
	timer          float32 // Simulated seconds, advances only while running
	lastEnemyTime  float32
	lastGateTime   float32
	enemiesPerWave uint32

	ticks        int
	waves        int
	gatesSpawned int
}

// Option configures a Game.
type Option func(*Game)

// WithLogger routes game events to logger.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New creates a running game with the player at the origin.
// aspect is the viewport width/height and must be positive. A nil rng
// uses a time-seeded source.
func New(cfg config.PassiveConfig, aspect float32, rng Rand, opts ...Option) *Game {
	if !(aspect > 0) || !core.IsFinite(aspect) {
		panic(fmt.Sprintf("passive: aspect ratio must be positive, got %v", aspect))
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Game{
		cfg:            cfg,
		aspect:         aspect,
		spawner:        NewSpawner(rng, cfg),
		logger:         log.New(io.Discard),
		keys:           make(map[core.Action]bool),
		enemiesPerWave: cfg.Enemies.InitialWave,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Press marks a movement key as held. Non-movement actions are ignored.
func (g *Game) Press(a core.Action) {
	if a.IsMovement() {
		g.keys[a] = true
	}
}

// Release marks a movement key as no longer held.
func (g *Game) Release(a core.Action) {
	delete(g.keys, a)
}

// SetHeld replaces the held key set.
func (g *Game) SetHeld(actions ...core.Action) {
	clear(g.keys)
	for _, a := range actions {
		g.Press(a)
	}
}

// Held reports whether a movement key is currently held.
func (g *Game) Held(a core.Action) bool {
	return g.keys[a]
}

// TogglePause switches between running and paused. Resuming clears the
// crash flag.
func (g *Game) TogglePause() {
	g.paused = !g.paused
	if !g.paused {
		g.crashed = false
	}
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Advance runs one tick of dt seconds. Nothing changes while paused.
// dt is not clamped; a long stall produces a long step. A non-finite dt
// panics.
func (g *Game) Advance(dt float32) {
	if !core.IsFinite(dt) {
		panic(fmt.Sprintf("passive: non-finite dt %v", dt))
	}
	if g.paused {
		return
	}

	g.movePlayer(dt)
	g.moveEnemies(dt)
	for i := range g.gates {
		g.gates[i].Spin(dt)
	}

	g.checkCollisions()

	g.timer += dt
	g.ticks++

	if g.timer > g.lastEnemyTime+g.cfg.Enemies.SpawnFreq {
		g.spawnEnemies()
	}
	if g.timer > g.lastGateTime+g.cfg.Gates.SpawnFreq {
		g.spawnGate()
	}
}

// Step applies one input frame and advances by dt.
// Pause toggles before the tick; movement actions replace the held set.
func (g *Game) Step(in core.InputFrame, dt float32) core.StepResult {
	if in.Has(core.ActionPause) {
		g.TogglePause()
	}

	clear(g.keys)
	for _, a := range core.MovementActions {
		if in.Has(a) {
			g.keys[a] = true
		}
	}

	g.Advance(dt)
	return core.StepResult{State: g.State()}
}

// heldDirection sums the unit directions of the held movement keys.
func (g *Game) heldDirection() core.Vec2 {
	var d core.Vec2
	if g.keys[core.ActionUp] {
		d.Y++
	}
	if g.keys[core.ActionDown] {
		d.Y--
	}
	if g.keys[core.ActionLeft] {
		d.X--
	}
	if g.keys[core.ActionRight] {
		d.X++
	}
	return d
}

func (g *Game) movePlayer(dt float32) {
	step := g.heldDirection().Normalize(core.Epsilon).Scale(g.cfg.Player.Speed * dt)
	g.player.Coords = g.player.Coords.Add(step)
}

// moveEnemies steps every enemy straight toward the player.
func (g *Game) moveEnemies(dt float32) {
	speed := g.cfg.EnemySpeed() * dt
	target := g.player.Coords
	for i := range g.enemies {
		e := &g.enemies[i]
		step := target.Sub(e.Coords).Normalize(core.Epsilon).Scale(speed)
		e.Coords = e.Coords.Add(step)
	}
}

func (g *Game) spawnEnemies() {
	band, wave := g.spawner.Wave(g.enemiesPerWave)
	g.enemies = append(g.enemies, wave...)
	g.enemies = trimOldest(g.enemies, g.cfg.Limits.MaxEnemies)

	g.waves++
	g.logger.Debug("spawned wave",
		"wave", g.waves,
		"size", g.enemiesPerWave,
		"band", band.Name,
		"enemies", len(g.enemies),
	)

	g.enemiesPerWave++
	g.lastEnemyTime = g.timer
}

func (g *Game) spawnGate() {
	gate := g.spawner.Gate()
	g.gates = append(g.gates, gate)
	g.gates = trimOldest(g.gates, g.cfg.Limits.MaxGates)

	g.gatesSpawned++
	g.logger.Debug("spawned gate",
		"x", gate.Coords.X,
		"y", gate.Coords.Y,
		"spin", gate.SpinSpeed,
		"gates", len(g.gates),
	)

	g.lastGateTime = g.timer
}

// trimOldest drops entries from the front so at most limit remain.
// A limit of zero keeps everything.
func trimOldest[T any](items []T, limit int) []T {
	if limit <= 0 || len(items) <= limit {
		return items
	}
	n := copy(items, items[len(items)-limit:])
	return items[:n]
}

// Aspect returns the viewport aspect ratio the game was built for.
func (g *Game) Aspect() float32 {
	return g.aspect
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:   int(g.timer),
		Paused:  g.paused,
		Crashed: g.crashed,
	}
}

// GateView is the read-only view of a gate.
type GateView struct {
	Position core.Vec2
	Rotation float32
}

// Snapshot is a copy of the state the renderer needs for one frame.
type Snapshot struct {
	Player   core.Vec2
	Enemies  []core.Vec2
	Gates    []GateView
	Paused   bool
	Crashed  bool
	Timer    float32
	NextWave uint32 // Size of the next enemy wave
	Waves    int    // Enemy spawn events so far
	Ticks    int
}

// Snapshot copies the current state. The result shares no memory with the game.
func (g *Game) Snapshot() Snapshot {
	enemies := make([]core.Vec2, len(g.enemies))
	for i, e := range g.enemies {
		enemies[i] = e.Coords
	}
	gates := make([]GateView, len(g.gates))
	for i, gt := range g.gates {
		gates[i] = GateView{Position: gt.Coords, Rotation: gt.Rotation}
	}

	return Snapshot{
		Player:   g.player.Coords,
		Enemies:  enemies,
		Gates:    gates,
		Paused:   g.paused,
		Crashed:  g.crashed,
		Timer:    g.timer,
		NextWave: g.enemiesPerWave,
		Waves:    g.waves,
		Ticks:    g.ticks,
	}
}
