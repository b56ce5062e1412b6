package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// Track is an endless procedurally generated beat track: a decaying kick
// pulse on every beat and a quieter tick on the off-beat. It implements
// beep.Streamer and never ends.
type Track struct {
	sr      beep.SampleRate
	beatLen int // samples per beat
	pos     int // samples into the current beat
}

// NewTrack creates a track at the given tempo. Non-positive tempos fall
// back to 120 BPM.
func NewTrack(sr beep.SampleRate, bpm float64) *Track {
	if bpm <= 0 {
		bpm = 120
	}
	return &Track{
		sr:      sr,
		beatLen: int(float64(sr) * 60 / bpm),
	}
}

// Stream fills samples with the synthesized track, both channels equal.
func (t *Track) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := t.sample()
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		if t.pos >= t.beatLen {
			t.pos = 0
		}
	}
	return len(samples), true
}

// Err always returns nil; synthesis cannot fail.
func (t *Track) Err() error {
	return nil
}

func (t *Track) sample() float64 {
	sec := float64(t.pos) / float64(t.sr)
	v := kick(sec)
	if half := float64(t.beatLen) / float64(t.sr) / 2; sec >= half {
		v += 0.25 * kick(sec-half)
	}
	return v
}

// kick synthesizes a 60 Hz sine burst with an exponential decay, sec
// seconds after its onset.
func kick(sec float64) float64 {
	const (
		freq  = 60.0
		decay = 18.0
		gain  = 0.8
	)
	return gain * math.Sin(2*math.Pi*freq*sec) * math.Exp(-decay*sec)
}
