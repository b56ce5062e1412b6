// Package tempo estimates the tempo of an audio stream from per-block
// energy values. Estimates are heuristic and best-effort: consumers must
// stay playable when no estimate ever arrives.
package tempo

// Estimator consumes the energy of one fixed-size sample block at a time
// and occasionally reports an updated beats-per-minute estimate. Feed is
// called from the audio goroutine at the block rate, far more often than
// it reports.
type Estimator interface {
	// Feed consumes one block energy. ok reports whether bpm carries a
	// fresh estimate.
	Feed(energy float64) (bpm float64, ok bool)
}
