package quantum

import (
	"math"
	"testing"
)

func defaultSlits() SlitParams {
	return SlitParams{Separation: 6, SlitWidth: 1.2, Wavelength: 1}
}

// TestInterferenceCentralMaximum verifies the pattern peaks at the
// center with relative intensity 1.
func TestInterferenceCentralMaximum(t *testing.T) {
	if got := relativeIntensity(defaultSlits(), 0); math.Abs(got-1) > 1e-12 {
		t.Errorf("central intensity: got %v, want 1", got)
	}
}

// TestInterferenceSymmetry verifies the pattern is even in sin(theta).
func TestInterferenceSymmetry(t *testing.T) {
	p := defaultSlits()
	for s := 0.0; s <= 0.5; s += 0.013 {
		left := relativeIntensity(p, -s)
		right := relativeIntensity(p, s)
		if math.Abs(left-right) > 1e-12 {
			t.Errorf("asymmetry at sin(theta)=%v: %v vs %v", s, left, right)
		}
	}
}

// TestInterferenceBounded verifies samples stay in [0,1].
func TestInterferenceBounded(t *testing.T) {
	samples := InterferencePattern(defaultSlits(), 0.6, 301)
	if len(samples) != 301 {
		t.Fatalf("expected 301 samples, got %d", len(samples))
	}
	for i, v := range samples {
		if v < 0 || v > 1 || math.IsNaN(v) {
			t.Errorf("sample %d out of range: %v", i, v)
		}
	}
}

// TestInterferenceDarkFringes verifies zeros at the two-slit minima
// d*sin(theta) = (m + 1/2)*lambda.
func TestInterferenceDarkFringes(t *testing.T) {
	p := defaultSlits()
	for m := 0; m < 3; m++ {
		s := (float64(m) + 0.5) * p.Wavelength / p.Separation
		if got := relativeIntensity(p, s); got > 1e-12 {
			t.Errorf("expected dark fringe at order %d (sin=%v), got %v", m, s, got)
		}
	}
}

// TestInterferenceDegenerateWavelength verifies a non-physical
// wavelength produces a flat zero pattern instead of NaN.
func TestInterferenceDegenerateWavelength(t *testing.T) {
	p := SlitParams{Separation: 6, SlitWidth: 1.2, Wavelength: 0}
	for _, v := range InterferencePattern(p, 0.5, 11) {
		if v != 0 {
			t.Errorf("expected 0 for zero wavelength, got %v", v)
		}
	}
}
