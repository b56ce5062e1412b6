// Package game implements the court state, ball kinematics, paddle control
// and the tempo-to-speed mapping. The loop owns a single State and calls
// into it once per frame; nothing in this package touches the terminal.
package game

import (
	"math/rand"
	"time"

	"github.com/mlaren/beatpong/internal/physics"
)

// Court is the fixed rectangular play area.
type Court struct {
	W, H float64
}

// Ball is the single ball. Speed is the scalar magnitude applied to each
// velocity component; DX and DY carry the direction signs.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Radius float64
	Speed  float64
}

// SetSpeed rescales the velocity to the given magnitude while preserving
// the direction signs of both components.
func (b *Ball) SetSpeed(speed float64) {
	b.Speed = speed
	b.DX = speed * physics.Sign(b.DX)
	b.DY = speed * physics.Sign(b.DY)
}

// Paddle is one of the two paddles, flush against a vertical court edge.
// Y is the top edge.
type Paddle struct {
	X, Y  float64
	W, H  float64
	Score int
}

// Center returns the vertical center of the paddle.
func (p Paddle) Center() float64 {
	return p.Y + p.H/2
}

// ScoreEvent reports the outcome of one frame advance.
type ScoreEvent int

const (
	NoScore ScoreEvent = iota
	HumanScored
	OpponentScored
)

// State is the complete mutable game state, owned by the update loop.
// The human paddle guards the left edge, the rule-controlled opponent the
// right edge.
type State struct {
	Court    Court
	Ball     Ball
	Human    Paddle
	Opponent Paddle

	cfg Config
	rng *rand.Rand
}

// NewState creates a fresh game: ball at court center moving down-right at
// base speed, both paddles centered, scores zero. A nil rng gets a
// time-seeded source; tests pass their own for determinism.
func NewState(cfg Config, rng *rand.Rand) *State {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &State{
		Court: Court{W: cfg.CourtWidth, H: cfg.CourtHeight},
		cfg:   cfg,
		rng:   rng,
	}
	s.Ball = Ball{
		X:      cfg.CourtWidth / 2,
		Y:      cfg.CourtHeight / 2,
		DX:     cfg.BallSpeed,
		DY:     cfg.BallSpeed,
		Radius: cfg.BallRadius,
		Speed:  cfg.BallSpeed,
	}
	centered := (cfg.CourtHeight - cfg.PaddleHeight) / 2
	s.Human = Paddle{X: 0, Y: centered, W: cfg.PaddleWidth, H: cfg.PaddleHeight}
	s.Opponent = Paddle{X: cfg.CourtWidth - cfg.PaddleWidth, Y: centered, W: cfg.PaddleWidth, H: cfg.PaddleHeight}
	return s
}

// Config returns the configuration the state was built with.
func (s *State) Config() Config {
	return s.cfg
}
