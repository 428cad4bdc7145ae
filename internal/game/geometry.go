package game

import "math/rand"

// Vec2 is a point or a vector in field units
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Size is the playable field, in the same units as positions
type Size struct {
	W, H float64
}

// Center returns the middle of the field
func (s Size) Center() Vec2 {
	return Vec2{X: s.W / 2, Y: s.H / 2}
}

// Valid reports whether the field has a positive area
func (s Size) Valid() bool {
	return s.W > 0 && s.H > 0
}

// AABB is an axis-aligned box described by its center and half extents
type AABB struct {
	Center Vec2
	Half   Vec2
}

// Overlaps uses strict comparisons, so boxes that only touch do not overlap
func (b AABB) Overlaps(o AABB) bool {
	return b.Center.X-b.Half.X < o.Center.X+o.Half.X &&
		b.Center.X+b.Half.X > o.Center.X-o.Half.X &&
		b.Center.Y-b.Half.Y < o.Center.Y+o.Half.Y &&
		b.Center.Y+b.Half.Y > o.Center.Y-o.Half.Y
}

// Rect is a top-left anchored rectangle
type Rect struct {
	X, Y, W, H float64
}

func (b AABB) Rect() Rect {
	return Rect{
		X: b.Center.X - b.Half.X,
		Y: b.Center.Y - b.Half.Y,
		W: b.Half.X * 2,
		H: b.Half.Y * 2,
	}
}

// Clamp limits value to [low, high]
func Clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

// VectorSource produces a serve velocity with the given per-axis magnitudes
type VectorSource func(mx, my float64) Vec2

// RandomSignedVector returns (±mx, ±my), each sign a fair coin flip
func RandomSignedVector(mx, my float64, r *rand.Rand) Vec2 {
	v := Vec2{X: mx, Y: my}
	if r.Intn(2) == 0 {
		v.X = -mx
	}
	if r.Intn(2) == 0 {
		v.Y = -my
	}
	return v
}

// RandomVectors adapts r into a VectorSource
func RandomVectors(r *rand.Rand) VectorSource {
	return func(mx, my float64) Vec2 {
		return RandomSignedVector(mx, my, r)
	}
}
