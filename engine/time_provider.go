package engine

import "time"

// TimeSource abstracts the wall clock so the frame clock and the
// lifecycle system can run against a controllable time in tests.
type TimeSource interface {
	Now() time.Time
}

// RealTime is the production TimeSource backed by the monotonic
// system clock.
type RealTime struct{}

// Now returns the current time with monotonic clock reading.
func (RealTime) Now() time.Time {
	return time.Now()
}
