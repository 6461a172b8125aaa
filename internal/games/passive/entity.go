package passive

import "github.com/vovakirdan/passive/internal/core"

// GameObject is the positional state shared by every entity.
type GameObject struct {
	Coords core.Vec2
}

// Player is the circle steered by the keyboard.
type Player struct {
	GameObject
}

// Enemy chases the player. Enemies never collide with each other.
type Enemy struct {
	GameObject
}

// NewEnemy creates an enemy at the given position.
func NewEnemy(at core.Vec2) Enemy {
	return Enemy{GameObject{Coords: at}}
}

// Gate is a rotating triangle whose edges stop the game on contact.
type Gate struct {
	GameObject
	Rotation  float32 // Radians, unbounded
	SpinSpeed float32 // Radians per second
}

// NewGate creates a gate at the given position with zero rotation.
func NewGate(at core.Vec2, spin float32) Gate {
	return Gate{GameObject: GameObject{Coords: at}, SpinSpeed: spin}
}

// Spin advances the rotation by dt seconds.
// The angle is never wrapped; trig handles large values.
func (g *Gate) Spin(dt float32) {
	g.Rotation += dt * g.SpinSpeed
}

// Instance returns the gate's placement for drawing and collision.
func (g Gate) Instance() Instance {
	return Instance{Position: g.Coords, Rotation: g.Rotation}
}

// Vertices returns the triangle corners at rotation +0°, +120° and +240°,
// X-scaled by 1/aspect.
func (g Gate) Vertices(radius, aspect float32) []core.Vec2 {
	return Shape{Kind: ShapeGate, Radius: radius}.WorldVertices(g.Instance(), aspect)
}

// Edges returns the three triangle edges (v1,v2), (v2,v3), (v3,v1).
func (g Gate) Edges(radius, aspect float32) []Segment {
	return Edges(g.Vertices(radius, aspect))
}
