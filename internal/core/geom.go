// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Epsilon is the single-precision machine epsilon. Normalize adds it to the
// vector length so a zero vector normalizes to zero instead of NaN.
const Epsilon float32 = 1.1920929e-07

// Vec2 is a 2D vector in normalized screen space ([-1,1] on both axes).
type Vec2 struct {
	X, Y float32
}

// V2 is shorthand for Vec2{X: x, Y: y}.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// ScaleX multiplies only the X component by s.
// Used for aspect-ratio correction of shapes drawn in normalized space.
func (v Vec2) ScaleX(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float32 {
	return v.Dot(v)
}

// Len returns the length of v.
func (v Vec2) Len() float32 {
	return sqrt32(v.LenSq())
}

// Normalize returns v / (|v| + eps). A zero vector stays zero.
func (v Vec2) Normalize(eps float32) Vec2 {
	return v.Scale(1 / (v.Len() + eps))
}

// IsFinite reports whether f is neither NaN nor infinite.
func IsFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

// CircleSegmentIntersects reports whether the segment AB touches the circle.
//
// The segment is parameterized as A + t*(B-A) with t in [0,1] and substituted
// into the circle equation, giving a quadratic in t. The segment intersects
// when a real root lies in [0,1]; both endpoints count.
//
// A and B must differ. A zero-length segment panics.
func CircleSegmentIntersects(center Vec2, radius float32, a, b Vec2) bool {
	d := b.Sub(a)
	f := a.Sub(center)

	qa := d.LenSq()
	if qa == 0 {
		panic("core: CircleSegmentIntersects called with a zero-length segment")
	}
	qb := 2 * f.Dot(d)
	qc := f.LenSq() - radius*radius

	discriminant := qb*qb - 4*qa*qc
	if discriminant < 0 {
		return false
	}

	root := sqrt32(discriminant)
	t1 := (-qb + root) / (2 * qa)
	t2 := (-qb - root) / (2 * qa)

	return inUnit(t1) || inUnit(t2)
}

// CirclePointIntersects reports whether p lies inside or on the circle.
func CirclePointIntersects(center Vec2, radius float32, p Vec2) bool {
	return p.Sub(center).LenSq() <= radius*radius
}

func inUnit(t float32) bool {
	return t >= 0 && t <= 1
}

func sqrt32(f float32) float32 {
	return float32(math.Sqrt(float64(f)))
}

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
