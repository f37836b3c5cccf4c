package quantum

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SlitParams describes the double-slit geometry in wavelength-scaled
// units: separation d between slit centers, width a of each slit, and
// wavelength lambda.
type SlitParams struct {
	Separation float64
	SlitWidth  float64
	Wavelength float64
}

// InterferencePattern samples the Fraunhofer double-slit relative
// intensity over sin(theta) in [-spread, spread], returning n samples
// in [0,1]. The pattern is the two-slit interference term modulated by
// the single-slit diffraction envelope.
func InterferencePattern(p SlitParams, spread float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	grid := make([]float64, n)
	if n == 1 {
		grid[0] = 0
	} else {
		floats.Span(grid, -spread, spread)
	}

	out := make([]float64, n)
	for i, s := range grid {
		out[i] = relativeIntensity(p, s)
	}
	return out
}

// relativeIntensity evaluates I(theta)/I0 at the given sin(theta).
func relativeIntensity(p SlitParams, sinTheta float64) float64 {
	if p.Wavelength <= 0 {
		return 0
	}
	beta := math.Pi * p.Separation * sinTheta / p.Wavelength
	alpha := math.Pi * p.SlitWidth * sinTheta / p.Wavelength

	cos := math.Cos(beta)
	return clampProbability(cos * cos * sinc(alpha) * sinc(alpha))
}

// sinc is sin(x)/x with the removable singularity filled in.
func sinc(x float64) float64 {
	if math.Abs(x) < 1e-9 {
		return 1
	}
	return math.Sin(x) / x
}
