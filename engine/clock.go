package engine

import (
	"time"

	"github.com/quantaterm/quantaterm/constant"
)

// Clock turns wall-clock progress into per-frame simulation deltas.
// It applies the slow-motion factor and maintains the monotonically
// increasing wave phase accumulator, which survives particle resets
// so the wave overlay never visibly jumps.
type Clock struct {
	source TimeSource
	last   time.Time

	slowMotion float64

	// phase is accumulated scaled time in seconds. Never reset.
	phase float64
}

// NewClock creates a frame clock over the given time source at normal
// speed.
func NewClock(source TimeSource) *Clock {
	return &Clock{
		source:     source,
		last:       source.Now(),
		slowMotion: 1,
	}
}

// SetSlowMotion sets the time-dilation multiplier. Values outside
// (0,1] are clamped into range.
func (c *Clock) SetSlowMotion(factor float64) {
	if factor <= 0 {
		factor = 0.01
	}
	if factor > 1 {
		factor = 1
	}
	c.slowMotion = factor
}

// SlowMotion returns the current time-dilation multiplier.
func (c *Clock) SlowMotion() float64 {
	return c.slowMotion
}

// Tick measures the wall time since the previous tick and returns the
// scaled simulation delta. The raw delta is capped so a stalled
// terminal cannot produce a teleporting frame.
func (c *Clock) Tick() time.Duration {
	now := c.source.Now()
	dt := now.Sub(c.last)
	c.last = now
	return c.Step(dt)
}

// Step applies slow-motion scaling and the frame cap to an externally
// supplied delta, advancing the wave phase. Headless drivers use this
// directly with synthetic deltas.
func (c *Clock) Step(dt time.Duration) time.Duration {
	if dt < 0 {
		dt = 0
	}
	if dt > constant.MaxFrameDelta {
		dt = constant.MaxFrameDelta
	}
	scaled := time.Duration(float64(dt) * c.slowMotion)
	c.phase += scaled.Seconds()
	return scaled
}

// WavePhase returns the accumulated scaled time in seconds. It is
// monotonically non-decreasing for the life of the clock.
func (c *Clock) WavePhase() float64 {
	return c.phase
}
