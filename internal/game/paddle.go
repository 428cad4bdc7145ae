package game

// Paddle is a player's racket, positioned by its center
type Paddle struct {
	Pos Vec2
}

// Move applies held input for dt seconds. Up and down are not exclusive:
// holding both applies both offsets, which cancel out.
func (p *Paddle) Move(up, down bool, speed, dt float64) {
	if up {
		p.Pos.Y -= speed * dt
	}
	if down {
		p.Pos.Y += speed * dt
	}
}

// Confine keeps the paddle fully inside a field of the given height
func (p *Paddle) Confine(height, fieldHeight float64) {
	half := height / 2
	p.Pos.Y = Clamp(p.Pos.Y, half, fieldHeight-half)
}

func (p *Paddle) Bounds(width, height float64) AABB {
	return AABB{Center: p.Pos, Half: Vec2{X: width / 2, Y: height / 2}}
}
