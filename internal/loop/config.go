package loop

import "time"

// Loop timing. Physics constants are in pixels per frame, so the loop must
// hold the frame rate it promises; Run paces every frame to this target.
const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// Max render resolution. Bigger terminals get a centered court with a
// border; the logical court size never changes.
const (
	maxRenderWidth  = 160
	maxRenderHeight = 50
)

// Inactivity handling for served sessions (seconds).
const (
	inactivityWarn       = 90
	inactivityDisconnect = 120
)
