package quantum

import (
	"math"
	"math/rand"
	"testing"
)

func findState(t *testing.T, label string) OrbitalState {
	t.Helper()
	for _, s := range OrbitalCatalog {
		if s.Label == label {
			return s
		}
	}
	t.Fatalf("state %q not in catalog", label)
	return OrbitalState{}
}

// TestSampleOrbitalCount verifies the sampler produces exactly the
// requested number of points, all inside the bounding cube.
func TestSampleOrbitalCount(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, state := range OrbitalCatalog {
		pts := SampleOrbital(state, 500, rng)
		if len(pts) != 500 {
			t.Errorf("%s: expected 500 points, got %d", state.Label, len(pts))
		}
		extent := orbitalExtent(state.N)
		for _, p := range pts {
			if math.Abs(p.X) > extent || math.Abs(p.Y) > extent || math.Abs(p.Z) > extent {
				t.Errorf("%s: point outside bounding cube: %+v", state.Label, p)
			}
			if p.Density < 0 || p.Density > 1 {
				t.Errorf("%s: density out of range: %v", state.Label, p.Density)
			}
		}
	}
}

// TestGroundStateRadius verifies 1s samples cluster near the Bohr
// radius: the mean sampled radius for 1s is 3/2 in units of a0.
func TestGroundStateRadius(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	pts := SampleOrbital(findState(t, "1s"), 4000, rng)

	sum := 0.0
	for _, p := range pts {
		sum += math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
	}
	mean := sum / float64(len(pts))
	if math.Abs(mean-1.5) > 0.1 {
		t.Errorf("1s mean radius: got %v, want ~1.5", mean)
	}
}

// TestPOrbitalNodalPlane verifies the 2p (m=0) density vanishes on the
// z=0 plane.
func TestPOrbitalNodalPlane(t *testing.T) {
	state := findState(t, "2p")
	for _, x := range []float64{0.5, 1, 2, 5} {
		if d := Density(state, x, 0.3, 0); d != 0 {
			t.Errorf("2p density should vanish at z=0, got %v at x=%v", d, x)
		}
	}
}

// TestSOrbitalRadialNode verifies the 2s radial node at r = 2a0.
func TestSOrbitalRadialNode(t *testing.T) {
	state := findState(t, "2s")
	if d := Density(state, 2, 0, 0); d > 1e-15 {
		t.Errorf("2s density should vanish at r=2, got %v", d)
	}
}
