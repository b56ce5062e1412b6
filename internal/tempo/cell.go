package tempo

import (
	"math"
	"sync/atomic"
)

// Cell is a lock-free, last-write-wins holder for the current BPM
// estimate. The audio goroutine stores, the game loop loads; under
// preemptive scheduling a single atomic word is all the coordination the
// shared scalar needs.
type Cell struct {
	bits atomic.Uint64
}

// Store publishes a new estimate. Non-positive values are dropped.
func (c *Cell) Store(bpm float64) {
	if bpm <= 0 {
		return
	}
	c.bits.Store(math.Float64bits(bpm))
}

// Load returns the latest estimate. ok is false until the first Store.
func (c *Cell) Load() (bpm float64, ok bool) {
	b := c.bits.Load()
	if b == 0 {
		return 0, false
	}
	return math.Float64frombits(b), true
}
