package tempo

import (
	"math"
	"testing"
)

// feedPattern drives the estimator with a baseline energy and an impulse
// every period blocks, collecting all emitted estimates.
func feedPattern(e Estimator, blocks, period int, baseline, impulse float64) []float64 {
	var estimates []float64
	for i := 0; i < blocks; i++ {
		energy := baseline
		if i%period == 0 {
			energy = impulse
		}
		if bpm, ok := e.Feed(energy); ok {
			estimates = append(estimates, bpm)
		}
	}
	return estimates
}

// TestEnergyThresholdDetectsImpulseTrain: at 40 blocks/s an impulse every
// 20 blocks is a 2 Hz beat, i.e. 120 BPM. The first counting window is
// short a few beats while the sliding average warms up; after that the
// estimate lands exactly.
func TestEnergyThresholdDetectsImpulseTrain(t *testing.T) {
	est := NewEnergyThreshold(40)
	estimates := feedPattern(est, 640, 20, 1.0, 9.0)

	if len(estimates) < 2 {
		t.Fatalf("expected at least 2 estimates over 640 blocks, got %d", len(estimates))
	}
	last := estimates[len(estimates)-1]
	if math.Abs(last-120) > 0.001 {
		t.Errorf("settled estimate = %g BPM, want 120", last)
	}
}

// TestEnergyThresholdFasterTempo: impulses every 16 blocks at 40 blocks/s
// are 2.5 Hz, i.e. 150 BPM, comfortably inside the refractory cap.
func TestEnergyThresholdFasterTempo(t *testing.T) {
	est := NewEnergyThreshold(40)
	estimates := feedPattern(est, 640, 16, 1.0, 9.0)

	if len(estimates) == 0 {
		t.Fatal("expected estimates for a 150 BPM impulse train")
	}
	last := estimates[len(estimates)-1]
	if math.Abs(last-150) > 0.001 {
		t.Errorf("settled estimate = %g BPM, want 150", last)
	}
}

// TestEnergyThresholdSilenceReportsNothing: constant energy has no beats
// and must never produce an estimate.
func TestEnergyThresholdSilenceReportsNothing(t *testing.T) {
	est := NewEnergyThreshold(40)
	for i := 0; i < 640; i++ {
		if bpm, ok := est.Feed(1.0); ok {
			t.Fatalf("block %d: unexpected estimate %g from constant energy", i, bpm)
		}
	}
}

// TestEnergyThresholdZeroEnergy: a fully silent stream is equally quiet.
func TestEnergyThresholdZeroEnergy(t *testing.T) {
	est := NewEnergyThreshold(40)
	for i := 0; i < 640; i++ {
		if _, ok := est.Feed(0); ok {
			t.Fatalf("block %d: estimate from a silent stream", i)
		}
	}
}

// TestFixedReportsOnce: the fixed strategy reports its constant a single
// time, then stays quiet.
func TestFixedReportsOnce(t *testing.T) {
	est := NewFixed(96)

	bpm, ok := est.Feed(0)
	if !ok || bpm != 96 {
		t.Fatalf("first feed: got (%g, %v), want (96, true)", bpm, ok)
	}
	for i := 0; i < 100; i++ {
		if _, ok := est.Feed(123); ok {
			t.Fatalf("feed %d: fixed estimator reported twice", i)
		}
	}
}
