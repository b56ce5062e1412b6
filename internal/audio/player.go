// Package audio plays the procedurally generated background track and
// taps its energy for tempo estimation. The game never depends on it:
// when the speaker cannot initialize the player degrades to silent mode
// and the loop runs identically.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/mlaren/beatpong/internal/tempo"
)

const (
	sampleRate = beep.SampleRate(44100)
	blockSize  = 1024 // samples per energy block fed to the estimator
)

// BlockRate returns the energy blocks per second the tap produces. Use it
// to size estimators.
func BlockRate() float64 {
	return float64(sampleRate) / blockSize
}

// NewEstimator builds the tempo estimator named in the config. Unknown
// names fall back to the energy-threshold strategy.
func NewEstimator(name string, trackBPM float64) tempo.Estimator {
	if name == "fixed" {
		return tempo.NewFixed(trackBPM)
	}
	return tempo.NewEnergyThreshold(BlockRate())
}

// Player owns the speaker and the play/pause control for the track.
type Player struct {
	ctrl *beep.Ctrl
	cell *tempo.Cell

	mu      sync.Mutex
	started bool
	silent  bool
}

// NewPlayer wires the track through the energy tap into the estimator.
// Nothing plays until Start.
func NewPlayer(trackBPM float64, est tempo.Estimator) *Player {
	cell := &tempo.Cell{}
	track := NewTrack(sampleRate, trackBPM)
	tap := newEnergyTap(track, est, cell, blockSize)
	return &Player{
		ctrl: &beep.Ctrl{Streamer: tap, Paused: true},
		cell: cell,
	}
}

// Start initializes the speaker and begins playback. On failure the
// player switches to silent mode permanently and the error is for
// reporting only; callers keep running.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started || p.silent {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.silent = true
		return fmt.Errorf("init speaker: %w", err)
	}
	p.ctrl.Paused = false
	speaker.Play(p.ctrl)
	p.started = true
	return nil
}

// Toggle flips play/pause. Pausing also pauses the energy tap, so tempo
// estimation stops with the music. No effect in silent mode.
func (p *Player) Toggle() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = !p.ctrl.Paused
	speaker.Unlock()
}

// Playing reports whether the track is audibly playing.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return false
	}
	speaker.Lock()
	paused := p.ctrl.Paused
	speaker.Unlock()
	return !paused
}

// Silent reports whether the speaker failed to initialize.
func (p *Player) Silent() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.silent
}

// Tempo returns the most recent BPM estimate from the track tap. ok is
// false until a first estimate arrives.
func (p *Player) Tempo() (float64, bool) {
	return p.cell.Load()
}

// Close stops playback. Safe to call regardless of Start's outcome.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		speaker.Clear()
		p.started = false
	}
}
