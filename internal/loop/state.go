package loop

import (
	"time"

	"github.com/mlaren/beatpong/internal/audio"
	"github.com/mlaren/beatpong/internal/draw"
	"github.com/mlaren/beatpong/internal/game"
	"github.com/mlaren/beatpong/internal/input"
)

// Phase represents the current screen for a session.
type Phase int

const (
	PhaseStart   Phase = iota // Title screen
	PhasePlaying              // Active gameplay
)

// Options configures a game session.
type Options struct {
	// Config holds the game tunables. The zero value means defaults.
	Config game.Config

	// TermSizeFunc reports the terminal size each frame. Nil means the
	// local stdout terminal.
	TermSizeFunc draw.TermSizeFunc

	// Player is the optional audio collaborator. Nil or silent players
	// leave the game running at base speed with the status line showing
	// music as unavailable.
	Player *audio.Player

	// InactivityGuard disconnects idle sessions (for served sessions;
	// local play leaves it off).
	InactivityGuard bool
}

// session holds all state for one running game session. One session per
// connection; sessions share nothing but the optional audio player.
type session struct {
	cfg   game.Config
	state *game.State
	phase Phase

	player  *audio.Player
	lastBPM float64 // last estimate applied to the ball

	canvas *draw.Canvas
	cw     *draw.ChunkWriter
	stream *input.Stream
	inp    input.Input

	termSizeFunc draw.TermSizeFunc

	musicHeld bool // edge detection for the playback toggle

	inactivityGuard bool
	lastInput       time.Time
	inactive        bool

	running bool
}
