package quantum

import (
	"math"
	"math/rand"
)

// OrbitalState identifies a hydrogen eigenstate by its quantum numbers.
// Only the real combinations used by the orbital catalog are supported.
type OrbitalState struct {
	N, L, M int
	Label   string
}

// OrbitalCatalog is the set of states the orbital experiment can
// display, in display order.
var OrbitalCatalog = []OrbitalState{
	{N: 1, L: 0, M: 0, Label: "1s"},
	{N: 2, L: 0, M: 0, Label: "2s"},
	{N: 2, L: 1, M: 0, Label: "2p"},
	{N: 3, L: 0, M: 0, Label: "3s"},
	{N: 3, L: 1, M: 0, Label: "3p"},
	{N: 3, L: 2, M: 0, Label: "3d"},
}

// OrbitalPoint is one accepted sample of the probability cloud, in
// Bohr radii, with the local density retained for brightness shading.
type OrbitalPoint struct {
	X, Y, Z float64
	Density float64
}

// SampleOrbital draws count points from |psi|^2 of the given state by
// rejection sampling inside a state-sized bounding cube. Density
// values are normalized to the peak found during sampling setup.
func SampleOrbital(state OrbitalState, count int, rng *rand.Rand) []OrbitalPoint {
	extent := orbitalExtent(state.N)
	peak := densityPeak(state, extent)
	if peak <= 0 {
		return nil
	}

	points := make([]OrbitalPoint, 0, count)
	for len(points) < count {
		x := (rng.Float64()*2 - 1) * extent
		y := (rng.Float64()*2 - 1) * extent
		z := (rng.Float64()*2 - 1) * extent

		d := Density(state, x, y, z)
		if rng.Float64()*peak < d {
			points = append(points, OrbitalPoint{X: x, Y: y, Z: z, Density: d / peak})
		}
	}
	return points
}

// Density evaluates the unnormalized |psi_nlm|^2 at a Cartesian point
// expressed in Bohr radii.
func Density(state OrbitalState, x, y, z float64) float64 {
	r := math.Sqrt(x*x + y*y + z*z)
	cosTheta := 0.0
	if r > 1e-12 {
		cosTheta = z / r
	}

	radial := radialPart(state.N, state.L, r)
	angular := angularPart(state.L, cosTheta)
	return radial * radial * angular * angular
}

// orbitalExtent is the bounding half-width, in Bohr radii, that
// contains essentially all of the cloud for principal number n.
func orbitalExtent(n int) float64 {
	return 4.0 * float64(n*n)
}

// densityPeak scans a coarse grid through the x-z plane for the
// maximum density, padded so rejection sampling stays correct. The
// m=0 states are axially symmetric, so the plane scan finds the true
// peak region.
func densityPeak(state OrbitalState, extent float64) float64 {
	const steps = 160
	peak := 0.0
	for i := 0; i <= steps; i++ {
		for j := 0; j <= steps; j++ {
			x := (float64(i)/steps*2 - 1) * extent
			z := (float64(j)/steps*2 - 1) * extent
			if d := Density(state, x, 0, z); d > peak {
				peak = d
			}
		}
	}
	return peak * 1.05
}

// radialPart is the hydrogen radial function R_nl (unnormalized,
// a0 = 1) for n up to 3.
func radialPart(n, l int, r float64) float64 {
	switch {
	case n == 1 && l == 0:
		return math.Exp(-r)
	case n == 2 && l == 0:
		return (2 - r) * math.Exp(-r/2)
	case n == 2 && l == 1:
		return r * math.Exp(-r/2)
	case n == 3 && l == 0:
		return (27 - 18*r + 2*r*r) * math.Exp(-r/3)
	case n == 3 && l == 1:
		return r * (6 - r) * math.Exp(-r/3)
	case n == 3 && l == 2:
		return r * r * math.Exp(-r/3)
	}
	return 0
}

// angularPart is the real m=0 spherical harmonic (unnormalized).
func angularPart(l int, cosTheta float64) float64 {
	switch l {
	case 0:
		return 1
	case 1:
		return cosTheta
	case 2:
		return 3*cosTheta*cosTheta - 1
	}
	return 0
}
