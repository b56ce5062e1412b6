package tempo

// Fixed reports a constant tempo once, then stays quiet. Useful when the
// track tempo is already known, and as the trivial baseline strategy.
type Fixed struct {
	bpm      float64
	reported bool
}

// NewFixed creates a Fixed estimator reporting bpm.
func NewFixed(bpm float64) *Fixed {
	return &Fixed{bpm: bpm}
}

// Feed ignores the energy signal entirely.
func (f *Fixed) Feed(float64) (float64, bool) {
	if f.reported {
		return 0, false
	}
	f.reported = true
	return f.bpm, true
}
