package game

// Advance runs one fixed frame step: integrate the ball, reflect off the
// horizontal walls, resolve a paddle hit on the side the ball travels
// toward, then check for a score. At most one score event fires per frame.
//
// Reflections invert a velocity sign without correcting the position: the
// overshoot applied this frame stands and self-corrects on the next one.
func (s *State) Advance() ScoreEvent {
	b := &s.Ball

	b.X += b.DX
	b.Y += b.DY

	// Wall bounce, energy preserving.
	if b.Y+b.Radius > s.Court.H || b.Y-b.Radius < 0 {
		b.DY = -b.DY
	}

	// Only the paddle the ball moves toward is tested. The vertical band
	// test is strict on the ball center: grazing the exact paddle edge
	// does not register.
	switch {
	case b.DX < 0:
		if p := &s.Human; b.X-b.Radius < p.W && b.Y > p.Y && b.Y < p.Y+p.H {
			b.DX = -b.DX
		}
	case b.DX > 0:
		if p := &s.Opponent; b.X+b.Radius > s.Court.W-p.W && b.Y > p.Y && b.Y < p.Y+p.H {
			b.DX = -b.DX
		}
	}

	switch {
	case b.X+b.Radius > s.Court.W:
		s.Human.Score++
		s.resetBall()
		return HumanScored
	case b.X-b.Radius < 0:
		s.Opponent.Score++
		s.resetBall()
		return OpponentScored
	}
	return NoScore
}

// resetBall recenters the ball after a score. The horizontal direction is a
// coin flip at full speed; the vertical component is uniform in
// [-speed, speed]. The speed magnitude carries over from the last tempo
// mapping.
func (s *State) resetBall() {
	b := &s.Ball
	b.X = s.Court.W / 2
	b.Y = s.Court.H / 2

	dir := 1.0
	if s.rng.Intn(2) == 0 {
		dir = -1.0
	}
	b.DX = b.Speed * dir
	b.DY = b.Speed * (s.rng.Float64()*2 - 1)
}
