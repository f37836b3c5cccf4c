package engine

import (
	"math"
	"testing"
	"time"

	"github.com/quantaterm/quantaterm/constant"
)

// TestClockTickMeasuresElapsed verifies Tick returns the wall delta at
// normal speed.
func TestClockTickMeasuresElapsed(t *testing.T) {
	mock := NewMockTime(time.Unix(100, 0))
	c := NewClock(mock)

	mock.Advance(16 * time.Millisecond)
	if dt := c.Tick(); dt != 16*time.Millisecond {
		t.Errorf("expected 16ms, got %v", dt)
	}
}

// TestClockSlowMotionScalesDelta verifies the time-dilation factor is
// applied to the returned delta.
func TestClockSlowMotionScalesDelta(t *testing.T) {
	mock := NewMockTime(time.Unix(100, 0))
	c := NewClock(mock)
	c.SetSlowMotion(0.25)

	mock.Advance(40 * time.Millisecond)
	if dt := c.Tick(); dt != 10*time.Millisecond {
		t.Errorf("expected 10ms scaled delta, got %v", dt)
	}
}

// TestClockSlowMotionClamped verifies out-of-range factors are pulled
// into (0,1].
func TestClockSlowMotionClamped(t *testing.T) {
	c := NewClock(NewMockTime(time.Unix(0, 0)))

	c.SetSlowMotion(3)
	if c.SlowMotion() != 1 {
		t.Errorf("factor above 1 should clamp to 1, got %v", c.SlowMotion())
	}
	c.SetSlowMotion(-1)
	if c.SlowMotion() <= 0 {
		t.Errorf("factor must stay positive, got %v", c.SlowMotion())
	}
}

// TestClockFrameCap verifies a stalled frame cannot produce an
// oversized delta.
func TestClockFrameCap(t *testing.T) {
	mock := NewMockTime(time.Unix(100, 0))
	c := NewClock(mock)

	mock.Advance(3 * time.Second)
	if dt := c.Tick(); dt != constant.MaxFrameDelta {
		t.Errorf("expected capped delta %v, got %v", constant.MaxFrameDelta, dt)
	}
}

// TestWavePhaseMonotonic verifies the phase accumulator only grows,
// including across slow-motion changes.
func TestWavePhaseMonotonic(t *testing.T) {
	mock := NewMockTime(time.Unix(0, 0))
	c := NewClock(mock)

	prev := c.WavePhase()
	factors := []float64{1, 0.25, 0.5, 1}
	for _, f := range factors {
		c.SetSlowMotion(f)
		for i := 0; i < 10; i++ {
			mock.Advance(16 * time.Millisecond)
			c.Tick()
			if c.WavePhase() < prev {
				t.Fatalf("phase went backwards: %v < %v", c.WavePhase(), prev)
			}
			prev = c.WavePhase()
		}
	}
	if prev <= 0 {
		t.Error("phase never advanced")
	}
}

// TestClockStepSyntheticDelta verifies headless drivers can feed fixed
// deltas directly.
func TestClockStepSyntheticDelta(t *testing.T) {
	c := NewClock(NewMockTime(time.Unix(0, 0)))

	total := 0.0
	for i := 0; i < 100; i++ {
		total += c.Step(10 * time.Millisecond).Seconds()
	}
	if math.Abs(total-1.0) > 1e-9 {
		t.Errorf("expected 1s of accumulated delta, got %v", total)
	}
	if math.Abs(c.WavePhase()-1.0) > 1e-9 {
		t.Errorf("expected 1s of phase, got %v", c.WavePhase())
	}
}
