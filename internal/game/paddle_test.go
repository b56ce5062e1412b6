package game

import "testing"

// TestHumanPaddleMoves covers the held-intent movement and its bounds
// guard.
func TestHumanPaddleMoves(t *testing.T) {
	tests := []struct {
		name   string
		startY float64
		intent Intent
		wantY  float64
	}{
		{"up", 250, Intent{Up: true}, 243},
		{"down", 250, Intent{Down: true}, 257},
		{"both cancel out", 250, Intent{Up: true, Down: true}, 250},
		{"neither", 250, Intent{}, 250},
		{"up blocked at top", 0, Intent{Up: true}, 0},
		{"up blocked near top", 5, Intent{Up: true}, 5},
		{"down blocked at bottom", 500, Intent{Down: true}, 500},
		{"down blocked near bottom", 495, Intent{Down: true}, 495},
		{"both near top: only down applies", 5, Intent{Up: true, Down: true}, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState()
			s.Human.Y = tt.startY
			s.MoveHuman(tt.intent)
			if s.Human.Y != tt.wantY {
				t.Errorf("startY=%g intent=%+v: y=%g, want %g", tt.startY, tt.intent, s.Human.Y, tt.wantY)
			}
		})
	}
}

// TestOpponentTracksBall covers the proportional-band rule and its dead
// zone. The paddle at y=250 has its center at 300.
func TestOpponentTracksBall(t *testing.T) {
	tests := []struct {
		name  string
		ballY float64
		wantY float64
	}{
		{"ball far below: move down", 400, 255},
		{"ball just outside dead zone below", 336, 255},
		{"ball inside dead zone below", 334, 250},
		{"ball at center: hold", 300, 250},
		{"ball inside dead zone above", 266, 250},
		{"ball just outside dead zone above", 264, 245},
		{"ball far above: move up", 100, 245},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState()
			s.Opponent.Y = 250
			s.Ball.Y = tt.ballY
			s.MoveOpponent()
			if s.Opponent.Y != tt.wantY {
				t.Errorf("ballY=%g: paddle y=%g, want %g", tt.ballY, s.Opponent.Y, tt.wantY)
			}
		})
	}
}

// TestOpponentBoundsGuard keeps the rule paddle inside the court even
// when the ball sits past the bound.
func TestOpponentBoundsGuard(t *testing.T) {
	s := newTestState()

	s.Opponent.Y = 500 // bottom bound for a 100-high paddle on a 600 court
	s.Ball.Y = 599
	s.MoveOpponent()
	if s.Opponent.Y != 500 {
		t.Errorf("paddle left the court downward: y=%g", s.Opponent.Y)
	}

	s.Opponent.Y = 0
	s.Ball.Y = 1
	s.MoveOpponent()
	if s.Opponent.Y != 0 {
		t.Errorf("paddle left the court upward: y=%g", s.Opponent.Y)
	}
}
