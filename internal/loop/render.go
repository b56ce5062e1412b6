package loop

import (
	"github.com/mlaren/beatpong/internal/draw"
)

// drawFrame clears the screen and draws the current phase.
func (s *session) drawFrame() error {
	draw.ClearScreen(s.cw)
	s.canvas.Clear()

	switch s.phase {
	case PhaseStart:
		s.drawStartScreen()
	case PhasePlaying:
		s.drawCourt()
		s.canvas.Render(s.cw)
		s.drawHUD()
	}

	if s.canvas.OffsetCol() > 0 || s.canvas.OffsetRow() > 0 {
		s.canvas.RenderBorder(s.cw)
	}

	if s.inactive {
		s.drawInactivityWarning()
	}

	return s.cw.Flush()
}

// drawCourt draws the center line, both paddles and the ball onto the
// canvas in logical court coordinates.
func (s *session) drawCourt() {
	st := s.state

	// Dashed center line
	midX := st.Court.W / 2
	dash := st.Court.H / 30
	for y := 0.0; y < st.Court.H; y += 2 * dash {
		s.canvas.DrawLine(
			draw.Point{X: midX, Y: y},
			draw.Point{X: midX, Y: y + dash},
		)
	}

	s.canvas.FillRect(st.Human.X, st.Human.Y, st.Human.W, st.Human.H)
	s.canvas.FillRect(st.Opponent.X, st.Opponent.Y, st.Opponent.W, st.Opponent.H)
	s.canvas.FillCircle(st.Ball.X, st.Ball.Y, st.Ball.Radius)
}
