package tempo

// Tuning for the energy-threshold heuristic, in seconds. Converted to
// block counts against the block rate at construction.
const (
	historySeconds    = 1.0  // sliding average window
	refractorySeconds = 0.25 // minimum gap between beats (caps at 240 BPM)
	countSeconds      = 4.0  // beat-counting window per estimate

	defaultSensitivity = 1.4
)

// EnergyThreshold detects beats by comparing each block's energy against
// the recent average: a block whose energy exceeds sensitivity times the
// sliding mean counts as a beat, subject to a refractory gap. Beats are
// counted over a multi-second window and converted to BPM, so estimates
// arrive on a cadence far slower than the audio callback.
type EnergyThreshold struct {
	blockRate   float64
	sensitivity float64

	history []float64 // ring buffer of recent block energies
	histSum float64
	pos     int
	filled  int

	refractory int // blocks
	sinceBeat  int

	window  int // blocks per estimate
	elapsed int
	beats   int
}

// NewEnergyThreshold creates an estimator for a stream delivering
// blockRate energy blocks per second.
func NewEnergyThreshold(blockRate float64) *EnergyThreshold {
	histLen := int(historySeconds * blockRate)
	if histLen < 1 {
		histLen = 1
	}
	return &EnergyThreshold{
		blockRate:   blockRate,
		sensitivity: defaultSensitivity,
		history:     make([]float64, histLen),
		refractory:  int(refractorySeconds * blockRate),
		window:      int(countSeconds * blockRate),
		sinceBeat:   int(refractorySeconds * blockRate),
	}
}

// Feed consumes one block energy. Detection starts once the sliding
// average window has filled.
func (e *EnergyThreshold) Feed(energy float64) (float64, bool) {
	avg := 0.0
	if e.filled == len(e.history) {
		avg = e.histSum / float64(len(e.history))
	}

	e.histSum += energy - e.history[e.pos]
	e.history[e.pos] = energy
	e.pos = (e.pos + 1) % len(e.history)
	if e.filled < len(e.history) {
		e.filled++
	}

	e.sinceBeat++
	if avg > 0 && energy > e.sensitivity*avg && e.sinceBeat > e.refractory {
		e.beats++
		e.sinceBeat = 0
	}

	e.elapsed++
	if e.elapsed < e.window {
		return 0, false
	}
	bpm := float64(e.beats) * 60 * e.blockRate / float64(e.window)
	e.elapsed = 0
	e.beats = 0
	if bpm <= 0 {
		return 0, false
	}
	return bpm, true
}
