package metrics

import (
	"time"
)

// Timer measures the wall-clock duration of a region of code that cannot be wrapped in a single
// block, such as the full lifetime of the companion binary.
type Timer struct {
	start time.Time
}

// StartTimer creates and starts an execution timer.
func StartTimer() *Timer {
	return &Timer{
		start: time.Now(),
	}
}

// Elapsed returns the amount of time that has elapsed since the timer has started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}
