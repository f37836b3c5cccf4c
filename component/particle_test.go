package component

import "testing"

// TestPushTrailBounded verifies the trail acts as a bounded FIFO:
// oldest points evicted first, newest appended last.
func TestPushTrailBounded(t *testing.T) {
	p := &Particle{}
	const limit = 4

	for i := 0; i < 10; i++ {
		p.X = float64(i)
		p.PushTrail(limit)
		if len(p.Trail) > limit {
			t.Fatalf("trail grew to %d, limit %d", len(p.Trail), limit)
		}
	}

	if len(p.Trail) != limit {
		t.Fatalf("expected full trail of %d, got %d", limit, len(p.Trail))
	}
	// After pushing positions 0..9 the FIFO should hold 6,7,8,9.
	for i, tp := range p.Trail {
		want := float64(6 + i)
		if tp.X != want {
			t.Errorf("trail[%d].X = %v, want %v", i, tp.X, want)
		}
	}
}

// TestPushTrailZeroLimit verifies a non-positive limit keeps the
// trail empty.
func TestPushTrailZeroLimit(t *testing.T) {
	p := &Particle{X: 1}
	p.PushTrail(0)
	if len(p.Trail) != 0 {
		t.Errorf("expected empty trail, got %d points", len(p.Trail))
	}
}

// TestPhaseNames verifies the diagnostic names.
func TestPhaseNames(t *testing.T) {
	cases := map[ParticlePhase]string{
		PhaseIncident:    "incident",
		PhaseInBarrier:   "in-barrier",
		PhaseTransmitted: "transmitted",
		PhaseReflected:   "reflected",
	}
	for phase, want := range cases {
		if got := phase.String(); got != want {
			t.Errorf("phase %d: got %q, want %q", phase, got, want)
		}
	}
}
