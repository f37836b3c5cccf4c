package constant

import "time"

// --- Particle Lifecycle ---
const (
	// MaxParticles is the hard cap on live particles. Spawn attempts
	// while at the cap are dropped, not queued.
	MaxParticles = 80

	// ParticleBaseSpeed is the nominal particle speed in scene units
	// per second before the per-particle jitter band is applied.
	ParticleBaseSpeed = 3.2

	// ParticleSpeedJitter is the half-width of the multiplicative speed
	// band: each particle moves at base * (1 +/- jitter).
	ParticleSpeedJitter = 0.15

	// ParticleLateralSpread is the maximum lateral offset assigned at
	// spawn, in scene units, so the beam is not a single line.
	ParticleLateralSpread = 1.4

	// ParticleTrailLength is the bounded FIFO length of recent
	// positions kept per particle for trail rendering.
	ParticleTrailLength = 10

	// ParticleFadeDuration is how long a detected particle takes to
	// fade out before removal.
	ParticleFadeDuration = 400 * time.Millisecond
)

// --- Frame Loop ---
const (
	// FrameInterval is the render tick period (~60 FPS).
	FrameInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single frame's delta so a stalled terminal
	// does not teleport particles across the domain.
	MaxFrameDelta = 100 * time.Millisecond
)

// --- Orbital Point Cloud ---
const (
	// OrbitalPointCount is the number of accepted sample points per
	// orbital cloud.
	OrbitalPointCount = 2400

	// OrbitalRotationRate is the cloud rotation speed in radians per
	// second.
	OrbitalRotationRate = 0.35
)

// --- Double-Slit ---
const (
	// SlitDefaultSeparation is the default slit separation d, in the
	// same scaled units as the wavelength.
	SlitDefaultSeparation = 6.0

	// SlitDefaultWidth is the default single-slit width a.
	SlitDefaultWidth = 1.2

	// SlitDefaultWavelength is the default wavelength lambda.
	SlitDefaultWavelength = 1.0
)
