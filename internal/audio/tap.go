package audio

import (
	"github.com/gopxl/beep"

	"github.com/mlaren/beatpong/internal/tempo"
)

// energyTap forwards an underlying streamer unchanged while reporting the
// mean-square energy of fixed-size sample blocks to a tempo estimator.
// Fresh estimates are published to the cell; the game loop reads them on
// its own cadence.
type energyTap struct {
	inner     beep.Streamer
	est       tempo.Estimator
	cell      *tempo.Cell
	blockSize int

	sum float64
	n   int
}

func newEnergyTap(inner beep.Streamer, est tempo.Estimator, cell *tempo.Cell, blockSize int) *energyTap {
	return &energyTap{
		inner:     inner,
		est:       est,
		cell:      cell,
		blockSize: blockSize,
	}
}

func (t *energyTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.inner.Stream(samples)
	for i := 0; i < n; i++ {
		l, r := samples[i][0], samples[i][1]
		t.sum += (l*l + r*r) / 2
		t.n++
		if t.n == t.blockSize {
			if bpm, fresh := t.est.Feed(t.sum / float64(t.blockSize)); fresh {
				t.cell.Store(bpm)
			}
			t.sum = 0
			t.n = 0
		}
	}
	return n, ok
}

func (t *energyTap) Err() error {
	return t.inner.Err()
}
