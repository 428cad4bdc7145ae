package game

import "testing"

func TestPaddle_MoveUp(t *testing.T) {
	paddle := Paddle{Pos: Vec2{X: 50, Y: 300}}

	paddle.Move(true, false, 600, 0.5)

	if paddle.Pos.Y != 0 {
		t.Errorf("expected Y=0, got %f", paddle.Pos.Y)
	}
}

func TestPaddle_MoveDown(t *testing.T) {
	paddle := Paddle{Pos: Vec2{X: 50, Y: 300}}

	paddle.Move(false, true, 600, 0.25)

	if paddle.Pos.Y != 450 {
		t.Errorf("expected Y=450, got %f", paddle.Pos.Y)
	}
}

func TestPaddle_BothHeldCancel(t *testing.T) {
	paddle := Paddle{Pos: Vec2{X: 50, Y: 300}}

	paddle.Move(true, true, 600, 1)

	if paddle.Pos.Y != 300 {
		t.Errorf("expected Y unchanged at 300, got %f", paddle.Pos.Y)
	}
}

func TestPaddle_NoInput(t *testing.T) {
	paddle := Paddle{Pos: Vec2{X: 50, Y: 123}}

	paddle.Move(false, false, 600, 10)

	if paddle.Pos.Y != 123 {
		t.Errorf("expected Y unchanged at 123, got %f", paddle.Pos.Y)
	}
}

func TestPaddle_Confine(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		want float64
	}{
		{"above top", -200, 50},
		{"touching top", 50, 50},
		{"middle", 300, 300},
		{"below bottom", 900, 550},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paddle := Paddle{Pos: Vec2{X: 50, Y: tt.y}}
			paddle.Confine(100, 600)
			if paddle.Pos.Y != tt.want {
				t.Errorf("expected Y=%f, got %f", tt.want, paddle.Pos.Y)
			}
			b := paddle.Bounds(20, 100).Rect()
			if b.Y < 0 {
				t.Errorf("paddle top went above 0: top=%f", b.Y)
			}
			if b.Y+b.H > 600 {
				t.Errorf("paddle bottom went below field: bottom=%f", b.Y+b.H)
			}
		})
	}
}

func TestPaddle_Bounds(t *testing.T) {
	paddle := Paddle{Pos: Vec2{X: 50, Y: 300}}
	b := paddle.Bounds(20, 100)

	if b.Center != paddle.Pos {
		t.Errorf("expected center %v, got %v", paddle.Pos, b.Center)
	}
	if b.Half != (Vec2{X: 10, Y: 50}) {
		t.Errorf("expected half extents (10,50), got %v", b.Half)
	}
}
