// Package scene turns a match into an ordered list of draw primitives.
// It performs no drawing itself; hosts consume the list.
package scene

import (
	"fmt"

	"github.com/diegok/pong/internal/game"
)

// ScoreTop is the distance from the top of the field to the score label
const ScoreTop = 16.0

// ScoreGap separates the two scores in the label
const ScoreGap = "          "

type Kind int

const (
	KindRect Kind = iota
	KindText
)

// Role tells a backend what a primitive represents
type Role int

const (
	RoleLeftPaddle Role = iota
	RoleRightPaddle
	RoleBall
	RoleDivider
	RoleScore
)

// Primitive is a filled rectangle or a text label.
// Text is anchored at its top-center point.
type Primitive struct {
	Kind   Kind
	Role   Role
	Rect   game.Rect
	Text   string
	Anchor game.Vec2
}

// Build returns paddles, ball, divider and score, in draw order
func Build(m *game.MatchState, p game.Params, field game.Size) []Primitive {
	return []Primitive{
		{
			Kind: KindRect,
			Role: RoleLeftPaddle,
			Rect: m.Left.Bounds(p.PaddleWidth, p.PaddleHeight).Rect(),
		},
		{
			Kind: KindRect,
			Role: RoleRightPaddle,
			Rect: m.Right.Bounds(p.PaddleWidth, p.PaddleHeight).Rect(),
		},
		{
			Kind: KindRect,
			Role: RoleBall,
			Rect: m.Ball.Bounds(p.BallSize).Rect(),
		},
		{
			Kind: KindRect,
			Role: RoleDivider,
			Rect: game.Rect{X: field.W/2 - p.DividerWidth/2, Y: 0, W: p.DividerWidth, H: field.H},
		},
		{
			Kind:   KindText,
			Role:   RoleScore,
			Text:   ScoreText(m.LeftScore, m.RightScore),
			Anchor: game.Vec2{X: field.W / 2, Y: ScoreTop},
		},
	}
}

func ScoreText(left, right int) string {
	return fmt.Sprintf("%d%s%d", left, ScoreGap, right)
}

// ScoreTitle is a window title carrying the current score
func ScoreTitle(title string, left, right int) string {
	return fmt.Sprintf("%s  %d - %d", title, left, right)
}
