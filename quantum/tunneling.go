package quantum

import (
	"math"
	"math/rand"

	"github.com/quantaterm/quantaterm/constant"
)

// TunnelingResult holds everything derived from one (E, V0, L, mass)
// configuration. It is recomputed whenever the configuration changes
// and treated as read-only afterwards.
type TunnelingResult struct {
	Energy        float64 // E, eV
	BarrierHeight float64 // V0, eV
	BarrierWidth  float64 // L, nm

	// IsClassical is true when E >= V0; the tie favors classical.
	IsClassical bool

	// WaveNumber is k = sqrt(E/C), 1/nm.
	WaveNumber float64

	// DecayConstant is kappa = sqrt((V0-E)/C); zero in the classical
	// regime.
	DecayConstant float64

	// Transmission is the WKB probability T = exp(-2*kappa*L), clamped
	// into [0,1]. Exactly 1 in the classical regime.
	Transmission float64

	// Reflection is 1 - Transmission.
	Reflection float64
}

// EvaluateTunneling computes the WKB transmission model for a particle
// of energy e (eV) meeting a barrier of height v0 (eV) and width l
// (nm). The mass multiplier scales the effective electron mass.
//
// Degenerate inputs (zero or negative height/width) are computed
// through, not rejected: the formulas stay finite and the probability
// outputs are clamped, so callers never see NaN or out-of-range values.
func EvaluateTunneling(e, v0, l, mass float64) TunnelingResult {
	c := constant.EnergyScale
	if mass > 0 {
		c = constant.EnergyScale / mass
	}

	r := TunnelingResult{
		Energy:        e,
		BarrierHeight: v0,
		BarrierWidth:  l,
		WaveNumber:    math.Sqrt(math.Max(e, 0) / c),
	}

	if e >= v0 {
		r.IsClassical = true
		r.Transmission = 1
		return r
	}

	r.DecayConstant = math.Sqrt((v0 - e) / c)
	r.Transmission = clampProbability(math.Exp(-2 * r.DecayConstant * l))
	r.Reflection = 1 - r.Transmission
	return r
}

// EvanescentDecay returns the wavefunction attenuation at a fractional
// depth into the barrier, exp(-kappa * progress * L). Constant 1 in the
// classical regime. Monotonically non-increasing in progress.
func (r TunnelingResult) EvanescentDecay(progress float64) float64 {
	if r.IsClassical {
		return 1
	}
	return math.Exp(-r.DecayConstant * progress * r.BarrierWidth)
}

// Sampler is the single stochastic primitive of the physics model. It
// owns its random source so simulation runs are reproducible under a
// fixed seed.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler around the given random source.
func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// WillTunnel draws the committed outcome for one particle: always true
// in the classical regime, otherwise true with probability T. Draws
// are independent across calls.
func (s *Sampler) WillTunnel(r TunnelingResult) bool {
	if r.IsClassical {
		return true
	}
	return s.rng.Float64() < r.Transmission
}

// Float64 exposes a uniform draw in [0,1) from the sampler's source,
// for callers that need jitter tied to the same seed.
func (s *Sampler) Float64() float64 {
	return s.rng.Float64()
}

// clampProbability forces a probability into [0,1] so exponential
// underflow or overflow never escapes the model.
func clampProbability(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
