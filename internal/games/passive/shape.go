package passive

import (
	"math"

	"github.com/vovakirdan/passive/internal/core"
)

// ShapeKind enumerates the fixed set of drawable entity shapes.
type ShapeKind int

const (
	ShapePlayer ShapeKind = iota // Axis-aligned square
	ShapeEnemy                   // Diamond
	ShapeGate                    // Equilateral triangle
)

// String returns the entity name for the shape.
func (k ShapeKind) String() string {
	switch k {
	case ShapePlayer:
		return "player"
	case ShapeEnemy:
		return "enemy"
	case ShapeGate:
		return "gate"
	default:
		return "unknown"
	}
}

// Shape describes an entity silhouette as a regular polygon around its
// center. Every consumer switches on Kind, so adding a variant means
// touching each switch below.
type Shape struct {
	Kind   ShapeKind
	Radius float32 // Half-size for squares and diamonds, circumradius for triangles
}

// Instance places a shape in the world.
type Instance struct {
	Position core.Vec2 // Center, not aspect-corrected
	Rotation float32   // Radians
}

const (
	deg45  = math.Pi / 4
	deg120 = 2 * math.Pi / 3
)

// Vertex angles (radians, counter-clockwise from +x) at zero rotation.
// Player corners run A(-r,-r) B(r,-r) C(r,r) D(-r,r); enemy corners run
// A(-r,0) B(0,-r) C(r,0) D(0,r).
var (
	playerAngles = []float64{5 * deg45, 7 * deg45, deg45, 3 * deg45}
	enemyAngles  = []float64{math.Pi, 3 * math.Pi / 2, 0, math.Pi / 2}
	gateAngles   = []float64{0, deg120, 2 * deg120}
)

func (s Shape) angles() []float64 {
	switch s.Kind {
	case ShapePlayer:
		return playerAngles
	case ShapeEnemy:
		return enemyAngles
	default:
		return gateAngles
	}
}

// circumradius is the distance from the center to each vertex.
func (s Shape) circumradius() float64 {
	if s.Kind == ShapePlayer {
		return float64(s.Radius) * math.Sqrt2
	}
	return float64(s.Radius)
}

// Vertices returns the shape around the origin at zero rotation,
// X-scaled by 1/aspect.
func (s Shape) Vertices(aspect float32) []core.Vec2 {
	return s.WorldVertices(Instance{}, aspect)
}

// WorldVertices returns the vertices of the shape placed by inst,
// X-scaled by 1/aspect. Vertices are computed from the angle each time;
// rotation changes every tick, so nothing is cached.
func (s Shape) WorldVertices(inst Instance, aspect float32) []core.Vec2 {
	scale := 1 / aspect
	r := s.circumradius()
	theta := float64(inst.Rotation)

	angles := s.angles()
	out := make([]core.Vec2, len(angles))
	for i, a := range angles {
		offset := core.V2(
			float32(r*math.Cos(theta+a)),
			float32(r*math.Sin(theta+a)),
		)
		out[i] = inst.Position.Add(offset).ScaleX(scale)
	}
	return out
}

// Indices returns triangle-list indices into Vertices.
func (s Shape) Indices() []uint16 {
	if s.Kind == ShapeGate {
		return []uint16{0, 1, 2}
	}
	return []uint16{0, 1, 2, 0, 2, 3}
}

// Glyph is the character drawn at the shape's center.
func (s Shape) Glyph() rune {
	switch s.Kind {
	case ShapePlayer:
		return '●'
	case ShapeEnemy:
		return '◆'
	default:
		return '+'
	}
}

// EdgeRune is the character used to draw the outline.
func (s Shape) EdgeRune() rune {
	switch s.Kind {
	case ShapePlayer:
		return '░'
	case ShapeEnemy:
		return '·'
	default:
		return '#'
	}
}

// Color is the foreground color of the shape.
func (s Shape) Color() core.Color {
	switch s.Kind {
	case ShapePlayer:
		return core.ColorCyan
	case ShapeEnemy:
		return core.ColorMagenta
	default:
		return core.ColorOrange
	}
}

// Segment is a line segment between two points.
type Segment struct {
	A, B core.Vec2
}

// Edges returns the closed outline of the polygon through vertices.
func Edges(vertices []core.Vec2) []Segment {
	edges := make([]Segment, len(vertices))
	for i := range vertices {
		edges[i] = Segment{A: vertices[i], B: vertices[(i+1)%len(vertices)]}
	}
	return edges
}
