package game

import (
	"math"

	"github.com/mlaren/beatpong/internal/physics"
)

// DefaultBPM substitutes for any tempo estimate outside the plausible
// range. The tempo signal is best-effort; a bad estimate silently falls
// back rather than surfacing an error.
const DefaultBPM = 120

const (
	minValidBPM = 40
	maxValidBPM = 200

	// Sub-linear exponent compressing tempo sensitivity: doubling the BPM
	// does not double the ball speed.
	tempoExponent = 0.7
)

// MapTempo converts a beats-per-minute estimate into a ball speed.
// The multiplier is (bpm/120)^0.7 clamped to [minScale, maxScale], so
// 120 BPM maps to exactly the base speed whenever the clamp admits 1.
// Invalid estimates (NaN, zero, negative, outside 40-200) map as 120.
func MapTempo(bpm, base, minScale, maxScale float64) float64 {
	if math.IsNaN(bpm) || bpm < minValidBPM || bpm > maxValidBPM {
		bpm = DefaultBPM
	}
	mult := physics.Clamp(math.Pow(bpm/DefaultBPM, tempoExponent), minScale, maxScale)
	return base * mult
}

// ApplyTempo rescales the ball speed from a tempo estimate, preserving the
// current direction. Calling it again with the same estimate is a no-op.
func (s *State) ApplyTempo(bpm float64) {
	s.Ball.SetSpeed(MapTempo(bpm, s.cfg.BallSpeed, s.cfg.MinSpeedScale, s.cfg.MaxSpeedScale))
}
