package game

import "math"

type Ball struct {
	Pos Vec2
	Vel Vec2
}

// Move advances the ball by its velocity over dt seconds
func (b *Ball) Move(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// Reset places the ball at center with a fresh velocity
func (b *Ball) Reset(center, vel Vec2) {
	b.Pos = center
	b.Vel = vel
}

// BounceWalls snaps the ball back inside the top and bottom walls and
// points its vertical velocity away from the wall it touched.
// Returns true if either wall was hit.
func (b *Ball) BounceWalls(size, fieldHeight float64) bool {
	half := size / 2
	hit := false
	if b.Pos.Y-half < 0 {
		b.Pos.Y = half
		b.Vel.Y = math.Abs(b.Vel.Y)
		hit = true
	}
	if b.Pos.Y+half > fieldHeight {
		b.Pos.Y = fieldHeight - half
		b.Vel.Y = -math.Abs(b.Vel.Y)
		hit = true
	}
	return hit
}

// SendRight forces horizontal travel to the right, keeping speed
func (b *Ball) SendRight() {
	b.Vel.X = math.Abs(b.Vel.X)
}

// SendLeft forces horizontal travel to the left, keeping speed
func (b *Ball) SendLeft() {
	b.Vel.X = -math.Abs(b.Vel.X)
}

func (b *Ball) Bounds(size float64) AABB {
	half := size / 2
	return AABB{Center: b.Pos, Half: Vec2{X: half, Y: half}}
}
