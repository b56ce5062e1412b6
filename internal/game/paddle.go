package game

// Intent is the human player's held movement state for one frame. Both
// directions may be held at once; the steps then cancel out.
type Intent struct {
	Up, Down bool
}

// MoveHuman applies the held intent to the human paddle. A step only
// applies when the paddle would stay fully inside the court, so the bounds
// invariant holds without a clamp.
func (s *State) MoveHuman(in Intent) {
	p := &s.Human
	if in.Up && p.Y-s.cfg.HumanStep >= 0 {
		p.Y -= s.cfg.HumanStep
	}
	if in.Down && p.Y+s.cfg.HumanStep <= s.Court.H-p.H {
		p.Y += s.cfg.HumanStep
	}
}

// MoveOpponent steps the rule-controlled paddle toward the ball. The dead
// zone around the ball keeps the tracking imperfect on purpose; without it
// the opponent would be unbeatable.
func (s *State) MoveOpponent() {
	p := &s.Opponent
	switch {
	case p.Center() < s.Ball.Y-s.cfg.DeadZone:
		if p.Y+s.cfg.RuleStep <= s.Court.H-p.H {
			p.Y += s.cfg.RuleStep
		}
	case p.Center() > s.Ball.Y+s.cfg.DeadZone:
		if p.Y-s.cfg.RuleStep >= 0 {
			p.Y -= s.cfg.RuleStep
		}
	}
}
