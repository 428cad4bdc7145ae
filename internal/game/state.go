package game

// Default tuning, in field units and seconds
const (
	DefaultPaddleSpeed  = 600.0
	DefaultBallSpeed    = 600.0
	DefaultPaddleWidth  = 20.0
	DefaultPaddleHeight = 100.0
	DefaultBallSize     = 30.0
	DefaultPadding      = 40.0 // Gap between a field edge and its paddle
	DefaultDividerWidth = 2.0
)

// Params holds the fixed dimensions and speeds of a match
type Params struct {
	PaddleSpeed  float64
	BallSpeed    float64
	PaddleWidth  float64
	PaddleHeight float64
	BallSize     float64
	Padding      float64
	DividerWidth float64
}

func DefaultParams() Params {
	return Params{
		PaddleSpeed:  DefaultPaddleSpeed,
		BallSpeed:    DefaultBallSpeed,
		PaddleWidth:  DefaultPaddleWidth,
		PaddleHeight: DefaultPaddleHeight,
		BallSize:     DefaultBallSize,
		Padding:      DefaultPadding,
		DividerWidth: DefaultDividerWidth,
	}
}

// Input is the held state of the four paddle keys for one tick
type Input struct {
	LeftUp, LeftDown   bool
	RightUp, RightDown bool
}

// Events reports what happened during a step
type Events uint8

const (
	EventLeftScored Events = 1 << iota
	EventRightScored
	EventWallBounce
	EventPaddleHit
)

func (e Events) Has(flag Events) bool {
	return e&flag != 0
}

// Scored reports whether either side scored
func (e Events) Scored() bool {
	return e.Has(EventLeftScored) || e.Has(EventRightScored)
}

// MatchState is the complete state of a match
type MatchState struct {
	Left       Paddle
	Right      Paddle
	Ball       Ball
	LeftScore  int
	RightScore int
}

// Simulation advances a MatchState. It holds no per-match state of its
// own, only tuning and the serve source.
type Simulation struct {
	Params Params
	Serve  VectorSource
}

func NewSimulation(params Params, serve VectorSource) *Simulation {
	return &Simulation{Params: params, Serve: serve}
}

// NewMatch creates a match with centered paddles and ball, scores at zero
func (s *Simulation) NewMatch(field Size) MatchState {
	center := field.Center()
	m := MatchState{
		Left:  Paddle{Pos: Vec2{Y: center.Y}},
		Right: Paddle{Pos: Vec2{Y: center.Y}},
	}
	s.anchorPaddles(&m, field)
	m.Ball.Reset(center, s.serve())
	return m
}

// anchorPaddles keeps each paddle at a fixed inset from its own edge
func (s *Simulation) anchorPaddles(m *MatchState, field Size) {
	inset := s.Params.Padding + s.Params.PaddleWidth/2
	m.Left.Pos.X = inset
	m.Right.Pos.X = field.W - inset
}

func (s *Simulation) serve() Vec2 {
	return s.Serve(s.Params.BallSpeed, s.Params.BallSpeed)
}

// Step runs one tick: paddles, ball, goals, walls, then paddle hits.
// Paddles follow the field edges if the field was resized.
// It is a no-op for a field without area.
func (s *Simulation) Step(m *MatchState, dt float64, in Input, field Size) Events {
	if !field.Valid() {
		return 0
	}
	if dt < 0 {
		dt = 0
	}
	p := s.Params
	var ev Events

	s.anchorPaddles(m, field)
	m.Left.Move(in.LeftUp, in.LeftDown, p.PaddleSpeed, dt)
	m.Left.Confine(p.PaddleHeight, field.H)
	m.Right.Move(in.RightUp, in.RightDown, p.PaddleSpeed, dt)
	m.Right.Confine(p.PaddleHeight, field.H)

	m.Ball.Move(dt)

	switch {
	case m.Ball.Pos.X < 0:
		m.RightScore++
		m.Ball.Reset(field.Center(), s.serve())
		ev |= EventRightScored
	case m.Ball.Pos.X > field.W:
		m.LeftScore++
		m.Ball.Reset(field.Center(), s.serve())
		ev |= EventLeftScored
	default:
		if m.Ball.BounceWalls(p.BallSize, field.H) {
			ev |= EventWallBounce
		}
	}

	ball := m.Ball.Bounds(p.BallSize)
	if ball.Overlaps(m.Left.Bounds(p.PaddleWidth, p.PaddleHeight)) {
		m.Ball.SendRight()
		ev |= EventPaddleHit
	}
	if ball.Overlaps(m.Right.Bounds(p.PaddleWidth, p.PaddleHeight)) {
		m.Ball.SendLeft()
		ev |= EventPaddleHit
	}

	return ev
}
