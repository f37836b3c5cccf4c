package constant

// Tunneling Physics Model
const (
	// EnergyScale is hbar^2/2m for an electron-like particle with mass
	// multiplier 1, in eV*nm^2. Dividing by the mass multiplier yields
	// the effective scale used by the wavenumber and decay formulas.
	EnergyScale = 0.0381

	// BarrierSpeedFactor is the fraction of nominal speed a particle
	// keeps while crossing the barrier region. Below 1 so the particle
	// visibly dwells inside the barrier.
	BarrierSpeedFactor = 0.7

	// ReflectedVisibilityThreshold gates the reflected wave overlay
	// segment. Below this reflection probability the segment is omitted.
	ReflectedVisibilityThreshold = 0.01

	// TransmittedVisibilityThreshold gates the transmitted wave overlay
	// segment.
	TransmittedVisibilityThreshold = 0.001
)

// Simulation Domain Geometry
// One spatial unit is one nanometer of the rendered scene. The barrier
// is centered at the origin so its edges sit at +/- width/2.
const (
	// DomainMin is the source-side boundary. A reflected particle
	// crossing it is destroyed.
	DomainMin = -6.0

	// DomainMax is the detector boundary. A transmitted particle
	// crossing it is detected, then fades out.
	DomainMax = 6.0

	// WaveAmplitude is the base amplitude A of the incident wave
	// overlay segment.
	WaveAmplitude = 1.0

	// WaveSamplesPerSegment is the sample-point count for each wave
	// overlay curve.
	WaveSamplesPerSegment = 96
)

// Default Simulation Parameters
const (
	DefaultParticleEnergy = 5.0 // eV
	DefaultBarrierHeight  = 8.0 // eV
	DefaultBarrierWidth   = 1.5 // nm
	DefaultParticleMass   = 1.0 // electron-mass multiplier
	DefaultSpawnIntensity = 6.0 // particles per second
)
