package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"github.com/mlaren/beatpong/internal/tempo"
)

// TestTrackBeatLength: the beat period follows the tempo.
func TestTrackBeatLength(t *testing.T) {
	tests := []struct {
		bpm  float64
		want int
	}{
		{120, 22050},
		{60, 44100},
		{0, 22050}, // falls back to 120
		{-3, 22050},
	}
	for _, tt := range tests {
		if got := NewTrack(beep.SampleRate(44100), tt.bpm).beatLen; got != tt.want {
			t.Errorf("bpm=%g: beatLen=%d, want %d", tt.bpm, got, tt.want)
		}
	}
}

// TestTrackStreamBoundedNonSilent: two seconds of synthesized track stay
// inside sane amplitude bounds, are audible, and both channels match.
func TestTrackStreamBoundedNonSilent(t *testing.T) {
	track := NewTrack(beep.SampleRate(44100), 120)
	buf := make([][2]float64, 512)

	peak := 0.0
	for streamed := 0; streamed < 2*44100; streamed += len(buf) {
		n, ok := track.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("Stream returned (%d, %v), want (%d, true)", n, ok, len(buf))
		}
		for i := 0; i < n; i++ {
			l, r := buf[i][0], buf[i][1]
			if l != r {
				t.Fatalf("channels differ: %g vs %g", l, r)
			}
			if math.Abs(l) > 1.5 {
				t.Fatalf("sample out of bounds: %g", l)
			}
			if math.Abs(l) > peak {
				peak = math.Abs(l)
			}
		}
	}
	if peak < 0.1 {
		t.Errorf("track is nearly silent: peak %g", peak)
	}
	if track.Err() != nil {
		t.Errorf("unexpected stream error: %v", track.Err())
	}
}

// recordingEstimator captures fed energies and emits a canned estimate on
// a chosen call.
type recordingEstimator struct {
	energies []float64
	emitOn   int
	emitBPM  float64
}

func (r *recordingEstimator) Feed(energy float64) (float64, bool) {
	r.energies = append(r.energies, energy)
	if len(r.energies) == r.emitOn {
		return r.emitBPM, true
	}
	return 0, false
}

// TestEnergyTapBlocks: the tap slices the stream into fixed blocks, feeds
// positive energies, and publishes fresh estimates to the cell.
func TestEnergyTapBlocks(t *testing.T) {
	est := &recordingEstimator{emitOn: 2, emitBPM: 99}
	cell := &tempo.Cell{}
	tap := newEnergyTap(NewTrack(beep.SampleRate(44100), 120), est, cell, 1024)

	buf := make([][2]float64, 512)
	for streamed := 0; streamed < 8*512; streamed += len(buf) {
		if n, ok := tap.Stream(buf); !ok || n != len(buf) {
			t.Fatalf("Stream returned (%d, %v)", n, ok)
		}
	}

	if len(est.energies) != 4 {
		t.Fatalf("expected 4 energy blocks from 4096 samples, got %d", len(est.energies))
	}
	for i, e := range est.energies {
		if e <= 0 {
			t.Errorf("block %d: energy %g, want > 0", i, e)
		}
	}

	bpm, ok := cell.Load()
	if !ok || bpm != 99 {
		t.Errorf("cell = (%g, %v), want (99, true)", bpm, ok)
	}
}

// TestEnergyTapForwardsStream: the tap must not alter the samples.
func TestEnergyTapForwardsStream(t *testing.T) {
	raw := NewTrack(beep.SampleRate(44100), 120)
	tapped := newEnergyTap(NewTrack(beep.SampleRate(44100), 120), tempo.NewFixed(120), &tempo.Cell{}, 1024)

	want := make([][2]float64, 2048)
	got := make([][2]float64, 2048)
	raw.Stream(want)
	tapped.Stream(got)

	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("sample %d differs: %v vs %v", i, want[i], got[i])
		}
	}
}
