package system

import (
	"math"
	"testing"
)

// TestStatsCountingInvariant verifies tunneled + reflected always
// equals total.
func TestStatsCountingInvariant(t *testing.T) {
	s := NewStats(0.5)
	for i := 0; i < 100; i++ {
		if i%3 == 0 {
			s.RecordTunneled()
		} else {
			s.RecordReflected()
		}
		snap := s.Snapshot()
		if snap.TunneledCount+snap.ReflectedCount != snap.TotalParticles {
			t.Fatalf("invariant broken at i=%d: %d + %d != %d",
				i, snap.TunneledCount, snap.ReflectedCount, snap.TotalParticles)
		}
	}
}

// TestStatsExperimentalProbability verifies the ratio is recomputed
// after both counters update.
func TestStatsExperimentalProbability(t *testing.T) {
	s := NewStats(0.5)
	if got := s.Snapshot().ExperimentalProbability; got != 0 {
		t.Errorf("empty aggregator should report 0, got %v", got)
	}

	s.RecordTunneled()
	s.RecordTunneled()
	s.RecordReflected()
	s.RecordReflected()

	want := 0.5
	if got := s.Snapshot().ExperimentalProbability; math.Abs(got-want) > 1e-12 {
		t.Errorf("experimental probability: got %v, want %v", got, want)
	}

	// The reflected path must also use the fully updated total, not a
	// stale tunneled count against a new total.
	s.RecordReflected()
	want = 2.0 / 5.0
	if got := s.Snapshot().ExperimentalProbability; math.Abs(got-want) > 1e-12 {
		t.Errorf("after reflected: got %v, want %v", got, want)
	}
}

// TestStatsRecordTheory verifies theory updates leave counters alone.
func TestStatsRecordTheory(t *testing.T) {
	s := NewStats(0.3)
	s.RecordTunneled()
	s.RecordTheory(0.7)

	snap := s.Snapshot()
	if snap.TheoreticalProbability != 0.7 {
		t.Errorf("theory: got %v, want 0.7", snap.TheoreticalProbability)
	}
	if snap.TotalParticles != 1 || snap.TunneledCount != 1 {
		t.Errorf("counters changed by RecordTheory: %+v", snap)
	}
}

// TestStatsReset verifies a reset zeroes counters and adopts the new
// theory value.
func TestStatsReset(t *testing.T) {
	s := NewStats(0.3)
	s.RecordTunneled()
	s.RecordReflected()
	s.Reset(0.9)

	snap := s.Snapshot()
	if snap.TotalParticles != 0 || snap.TunneledCount != 0 || snap.ReflectedCount != 0 {
		t.Errorf("counters not zeroed: %+v", snap)
	}
	if snap.TheoreticalProbability != 0.9 {
		t.Errorf("theory after reset: got %v, want 0.9", snap.TheoreticalProbability)
	}
	if snap.ExperimentalProbability != 0 {
		t.Errorf("experimental after reset: got %v, want 0", snap.ExperimentalProbability)
	}
}
