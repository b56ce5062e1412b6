// Package loop provides the main game loop: a fixed-rate Input -> Update
// -> Draw cycle serving one game session over any terminal-ish reader and
// writer, local or SSH.
package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/mlaren/beatpong/internal/draw"
	"github.com/mlaren/beatpong/internal/game"
	"github.com/mlaren/beatpong/internal/input"
)

// Run starts the game loop and blocks until the player quits, the input
// stream closes, or the inactivity guard fires.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	cfg := opts.Config
	if cfg == (game.Config{}) {
		cfg = game.DefaultConfig()
	}
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}

	termWidth, termHeight, _ := termSizeFunc()
	renderW, renderH, offCol, offRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderW, renderH, cfg.CourtWidth, cfg.CourtHeight)
	canvas.SetOffset(offCol, offRow)

	s := &session{
		cfg:             cfg,
		state:           game.NewState(cfg, nil),
		phase:           PhaseStart,
		player:          opts.Player,
		canvas:          canvas,
		cw:              draw.NewChunkWriter(w, offCol, offRow),
		stream:          input.StartStream(r),
		termSizeFunc:    termSizeFunc,
		inactivityGuard: opts.InactivityGuard,
		lastInput:       time.Now(),
		running:         true,
	}

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	for s.running {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		s.processInput()

		// ===== UPDATE PHASE =====
		s.updateScreen()

		switch s.phase {
		case PhaseStart:
			s.updateStartPhase()
		case PhasePlaying:
			s.updatePlayingPhase()
		}

		// ===== DRAW PHASE =====
		if err := s.drawFrame(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// processInput reads the held key state and handles quit and inactivity.
func (s *session) processInput() {
	s.inp = input.ReadInput(s.stream)

	if len(s.inp.Pressed) > 0 {
		s.lastInput = time.Now()
		s.inactive = false
	} else if s.inactivityGuard {
		idle := time.Since(s.lastInput).Seconds()
		if idle > inactivityDisconnect {
			s.running = false
		} else if idle > inactivityWarn {
			s.inactive = true
		}
	}

	if s.inp.Quit {
		s.running = false
	}
}

// updateScreen checks for terminal resize and updates canvas scaling.
func (s *session) updateScreen() {
	termWidth, termHeight, err := s.termSizeFunc()
	if err != nil {
		return
	}
	renderW, renderH, offCol, offRow := clampTermSize(termWidth, termHeight)
	s.canvas.Resize(renderW, renderH)
	s.canvas.SetOffset(offCol, offRow)
	s.cw.SetOffset(offCol, offRow)
}

// updateStartPhase waits on the title screen.
func (s *session) updateStartPhase() {
	if s.inp.Space || s.inp.Enter {
		s.startGame()
	}
}

// startGame begins a fresh match.
func (s *session) startGame() {
	input.ResetKeyInput(s.stream)
	s.state = game.NewState(s.cfg, nil)
	s.lastBPM = 0
	s.phase = PhasePlaying
}

// updatePlayingPhase runs one frame of gameplay: paddles, ball, and the
// tempo poll.
func (s *session) updatePlayingPhase() {
	if s.inp.Escape {
		input.ResetKeyInput(s.stream)
		s.phase = PhaseStart
		return
	}

	// Playback toggle is edge triggered; a held key flips once.
	if s.inp.Music && !s.musicHeld && s.player != nil {
		s.player.Toggle()
	}
	s.musicHeld = s.inp.Music

	s.state.MoveHuman(game.Intent{Up: s.inp.Up, Down: s.inp.Down})
	s.state.MoveOpponent()
	s.state.Advance()

	// The estimate arrives asynchronously and far less often than frames;
	// remap the ball speed only when it actually changed.
	if s.player != nil {
		if bpm, ok := s.player.Tempo(); ok && bpm != s.lastBPM {
			s.state.ApplyTempo(bpm)
			s.lastBPM = bpm
		}
	}
}

// clampTermSize limits the render area to the max resolution and centers
// it in the terminal.
func clampTermSize(termWidth, termHeight int) (renderW, renderH, offCol, offRow int) {
	renderW, renderH = termWidth, termHeight
	if renderW > maxRenderWidth {
		renderW = maxRenderWidth
	}
	if renderH > maxRenderHeight {
		renderH = maxRenderHeight
	}
	offCol = (termWidth - renderW) / 2
	offRow = (termHeight - renderH) / 2
	return renderW, renderH, offCol, offRow
}
