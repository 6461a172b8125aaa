package passive

import (
	"math"
	"testing"

	"github.com/vovakirdan/passive/internal/core"
)

func near(a, b core.Vec2) bool {
	return math.Abs(float64(a.X-b.X)) < 1e-5 && math.Abs(float64(a.Y-b.Y)) < 1e-5
}

func TestShapeVertices(t *testing.T) {
	r := float32(0.1)
	h := float32(0.1 * math.Sqrt(3) / 2)

	tests := []struct {
		name   string
		shape  Shape
		aspect float32
		want   []core.Vec2
	}{
		{
			name:   "player square",
			shape:  Shape{Kind: ShapePlayer, Radius: r},
			aspect: 1,
			want:   []core.Vec2{core.V2(-r, -r), core.V2(r, -r), core.V2(r, r), core.V2(-r, r)},
		},
		{
			name:   "enemy diamond on a wide screen",
			shape:  Shape{Kind: ShapeEnemy, Radius: r},
			aspect: 2,
			want:   []core.Vec2{core.V2(-r/2, 0), core.V2(0, -r), core.V2(r/2, 0), core.V2(0, r)},
		},
		{
			name:   "gate triangle",
			shape:  Shape{Kind: ShapeGate, Radius: r},
			aspect: 1,
			want:   []core.Vec2{core.V2(r, 0), core.V2(-r/2, h), core.V2(-r/2, -h)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.shape.Vertices(tc.aspect)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d vertices, expected %d", len(got), len(tc.want))
			}
			for i := range got {
				if !near(got[i], tc.want[i]) {
					t.Errorf("vertex %d = %v, expected %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestShapeIndices(t *testing.T) {
	for _, k := range []ShapeKind{ShapePlayer, ShapeEnemy, ShapeGate} {
		s := Shape{Kind: k, Radius: 0.05}
		n := len(s.Vertices(1))
		for _, idx := range s.Indices() {
			if int(idx) >= n {
				t.Errorf("%s: index %d out of range for %d vertices", k, idx, n)
			}
		}
		if len(s.Indices())%3 != 0 {
			t.Errorf("%s: indices do not form triangles", k)
		}
	}
}

func TestGateVerticesFollowRotationAndAspect(t *testing.T) {
	g := NewGate(core.V2(0.5, 0), 0)
	g.Rotation = math.Pi / 2

	v := g.Vertices(0.1, 2)
	// First vertex points straight up; X is halved by the aspect correction
	if !near(v[0], core.V2(0.25, 0.1)) {
		t.Errorf("first vertex = %v, expected (0.25, 0.1)", v[0])
	}

	// Large accumulated angles behave like their wrapped equivalents
	g.Rotation = math.Pi/2 + 20*math.Pi
	w := g.Vertices(0.1, 2)
	for i := range v {
		if math.Abs(float64(v[i].X-w[i].X)) > 1e-4 || math.Abs(float64(v[i].Y-w[i].Y)) > 1e-4 {
			t.Errorf("vertex %d differs after full turns: %v vs %v", i, v[i], w[i])
		}
	}
}

func TestEdgesCloseTheLoop(t *testing.T) {
	g := NewGate(core.V2(0, 0), 0)
	verts := g.Vertices(0.1, 1)
	edges := g.Edges(0.1, 1)

	if len(edges) != 3 {
		t.Fatalf("got %d edges, expected 3", len(edges))
	}
	for i, e := range edges {
		if e.A != verts[i] || e.B != verts[(i+1)%3] {
			t.Errorf("edge %d = %+v, expected (v%d, v%d)", i, e, i+1, (i+1)%3+1)
		}
	}
}

func TestGateSpin(t *testing.T) {
	g := NewGate(core.V2(0, 0), -2)
	g.Spin(0.5)
	g.Spin(0.5)
	if g.Rotation != -2 {
		t.Errorf("Rotation = %f, expected -2", g.Rotation)
	}
}
