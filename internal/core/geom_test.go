package core

import (
	"math"
	"testing"
)

func TestCircleSegmentIntersects(t *testing.T) {
	tests := []struct {
		name     string
		center   Vec2
		radius   float32
		a, b     Vec2
		expected bool
	}{
		{
			name:     "horizontal segment through center",
			center:   V2(0, 0),
			radius:   0.5,
			a:        V2(-1, 0),
			b:        V2(1, 0),
			expected: true,
		},
		{
			name:     "segment entirely outside",
			center:   V2(0, 0),
			radius:   0.5,
			a:        V2(-1, 1),
			b:        V2(1, 1),
			expected: false,
		},
		{
			name:     "vertical segment crossing circle",
			center:   V2(0, 0),
			radius:   0.5,
			a:        V2(0.25, -1),
			b:        V2(0.25, 1),
			expected: true,
		},
		{
			name:     "vertical segment beside circle",
			center:   V2(0, 0),
			radius:   0.5,
			a:        V2(0.75, -1),
			b:        V2(0.75, 1),
			expected: false,
		},
		{
			name:     "line crosses circle but segment stops short",
			center:   V2(0, 0),
			radius:   0.5,
			a:        V2(1, 0),
			b:        V2(2, 0),
			expected: false,
		},
		{
			name:     "segment ends inside circle",
			center:   V2(0, 0),
			radius:   0.5,
			a:        V2(0.25, 0),
			b:        V2(2, 0),
			expected: true,
		},
		{
			name:     "segment fully inside circle",
			center:   V2(0, 0),
			radius:   1,
			a:        V2(-0.25, 0),
			b:        V2(0.25, 0),
			expected: false,
		},
		{
			name:     "endpoint exactly on circle",
			center:   V2(0, 0),
			radius:   0.5,
			a:        V2(0.5, 0),
			b:        V2(2, 0),
			expected: true,
		},
		{
			// Nearly identical x coordinates broke the slope formulation.
			name:     "distant near-vertical segment",
			center:   V2(-0.15033174, 0.33800787),
			radius:   0.05,
			a:        V2(0.19949819, 0.514558),
			b:        V2(0.1995106, 0.16814788),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := CircleSegmentIntersects(tc.center, tc.radius, tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("CircleSegmentIntersects() = %v, expected %v", result, tc.expected)
			}
			// Swapping the endpoints must not change the answer
			reversed := CircleSegmentIntersects(tc.center, tc.radius, tc.b, tc.a)
			if reversed != tc.expected {
				t.Errorf("CircleSegmentIntersects() (swapped) = %v, expected %v", reversed, tc.expected)
			}
		})
	}
}

func TestCircleSegmentIntersectsDegenerate(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("zero-length segment should panic")
		}
	}()

	c := V2(0.2, 0.2)
	CircleSegmentIntersects(c, 0.1, c, c)
}

func TestCirclePointIntersects(t *testing.T) {
	center := V2(0.5, -0.25)
	radius := float32(0.5)

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"center", center, true},
		{"inside", V2(0.6, -0.2), true},
		{"on boundary right", V2(1, -0.25), true},
		{"on boundary top", V2(0.5, 0.25), true},
		{"just outside", V2(1.01, -0.25), false},
		{"far away", V2(-1, 1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := CirclePointIntersects(center, radius, tc.p)
			if result != tc.expected {
				t.Errorf("CirclePointIntersects(%v) = %v, expected %v", tc.p, result, tc.expected)
			}
		})
	}
}

func TestCirclePointBoundaryOnUnitCircle(t *testing.T) {
	// Points at exactly radius 1 in axis directions are representable exactly
	for _, p := range []Vec2{V2(1, 0), V2(-1, 0), V2(0, 1), V2(0, -1)} {
		if !CirclePointIntersects(V2(0, 0), 1, p) {
			t.Errorf("point %v on the boundary should intersect", p)
		}
	}
}

func TestVec2Normalize(t *testing.T) {
	zero := V2(0, 0).Normalize(Epsilon)
	if zero != V2(0, 0) {
		t.Errorf("Normalize(zero) = %v, expected zero vector", zero)
	}

	diag := V2(1, 1).Normalize(Epsilon)
	if l := diag.Len(); math.Abs(float64(l-1)) > 1e-5 {
		t.Errorf("diagonal normalized length = %f, expected 1", l)
	}

	axis := V2(0, -3).Normalize(Epsilon)
	if math.Abs(float64(axis.Y+1)) > 1e-5 || axis.X != 0 {
		t.Errorf("Normalize(0,-3) = %v, expected (0,-1)", axis)
	}
}

func TestVec2Ops(t *testing.T) {
	a := V2(1, 2)
	b := V2(3, -1)

	if got := a.Add(b); got != V2(4, 1) {
		t.Errorf("Add() = %v", got)
	}
	if got := a.Sub(b); got != V2(-2, 3) {
		t.Errorf("Sub() = %v", got)
	}
	if got := a.Dot(b); got != 1 {
		t.Errorf("Dot() = %f, expected 1", got)
	}
	if got := a.ScaleX(0.5); got != V2(0.5, 2) {
		t.Errorf("ScaleX() = %v", got)
	}
	if got := V2(3, 4).Len(); got != 5 {
		t.Errorf("Len() = %f, expected 5", got)
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1.5) {
		t.Error("1.5 should be finite")
	}
	if IsFinite(float32(math.Inf(1))) {
		t.Error("+Inf should not be finite")
	}
	if IsFinite(float32(math.NaN())) {
		t.Error("NaN should not be finite")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
