package loop

import "fmt"

// drawStartScreen draws the title screen.
func (s *session) drawStartScreen() {
	centerX := s.canvas.TerminalWidth() / 2
	centerY := s.canvas.TerminalHeight() / 2

	title := "B E A T P O N G"
	s.cw.WriteAt(centerX-len(title)/2, centerY-3, title)

	subtitle := "Press SPACE to start"
	s.cw.WriteAt(centerX-len(subtitle)/2, centerY-1, subtitle)

	controls := "w/s or arrows: move   m: music   esc: menu   q: quit"
	s.cw.WriteAt(centerX-len(controls)/2, centerY+1, controls)

	note := "the music tempo drives the ball speed"
	s.cw.WriteAt(centerX-len(note)/2, centerY+3, note)
}

// drawHUD draws the score line and the music status on top of the court.
func (s *session) drawHUD() {
	termWidth := s.canvas.TerminalWidth()
	termHeight := s.canvas.TerminalHeight()
	centerX := termWidth / 2

	you := fmt.Sprintf("YOU %d", s.state.Human.Score)
	cpu := fmt.Sprintf("%d CPU", s.state.Opponent.Score)
	s.cw.WriteAt(centerX-len(you)-3, 1, you)
	s.cw.WriteAt(centerX+4, 1, cpu)

	s.cw.WriteAt(2, termHeight, s.musicStatus())
}

// musicStatus renders the playback state the audio collaborator reports.
// Audio failures show up here and nowhere else; the game itself is not
// affected.
func (s *session) musicStatus() string {
	switch {
	case s.player == nil || s.player.Silent():
		return "music: unavailable"
	case !s.player.Playing():
		return "music: paused [m]"
	default:
		if bpm, ok := s.player.Tempo(); ok {
			return fmt.Sprintf("music: playing ~%.0f bpm [m]", bpm)
		}
		return "music: playing [m]"
	}
}

// drawInactivityWarning overlays the idle-session warning.
func (s *session) drawInactivityWarning() {
	centerX := s.canvas.TerminalWidth() / 2
	msg := "still there? press any key"
	s.cw.WriteAt(centerX-len(msg)/2, 2, msg)
}
