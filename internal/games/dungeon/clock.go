package dungeon

import "time"

// processStart anchors the wall clock that gates blue doors.
var processStart = time.Now()

// Clock reports time elapsed since the game process started.
type Clock interface {
	SinceStart() time.Duration
}

// WallClock measures real time since process start.
type WallClock struct{}

// SinceStart returns the time since the process started.
func (WallClock) SinceStart() time.Duration {
	return time.Since(processStart)
}

// FixedClock always reports the same duration.
type FixedClock time.Duration

// SinceStart returns the fixed duration.
func (c FixedClock) SinceStart() time.Duration {
	return time.Duration(c)
}
