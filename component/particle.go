package component

import "time"

// ParticlePhase is the lifecycle state of one simulated particle.
// Transitions are monotonic; a particle never moves backwards through
// the phases.
type ParticlePhase int

const (
	// PhaseIncident is the approach flight toward the barrier.
	PhaseIncident ParticlePhase = iota
	// PhaseInBarrier is the slowed crossing of the barrier region,
	// entered only by particles whose committed outcome is to tunnel.
	PhaseInBarrier
	// PhaseTransmitted is the flight from barrier exit to detector.
	PhaseTransmitted
	// PhaseReflected is the flight back toward the source-side exit.
	PhaseReflected
)

// String returns the phase name for diagnostics and rendering labels.
func (p ParticlePhase) String() string {
	switch p {
	case PhaseIncident:
		return "incident"
	case PhaseInBarrier:
		return "in-barrier"
	case PhaseTransmitted:
		return "transmitted"
	case PhaseReflected:
		return "reflected"
	}
	return "unknown"
}

// TrailPoint is one recent position of a particle, kept for trail
// rendering.
type TrailPoint struct {
	X, Y float64
}

// Particle is the plain data record for one in-flight particle. The
// lifecycle system owns and mutates it; renderers only read it. No
// drawable state lives here, an external renderer maps records to
// glyphs.
type Particle struct {
	ID uint64

	// X is the 1D progress coordinate in scene units; Y is the fixed
	// lateral offset assigned at spawn.
	X, Y float64

	Phase ParticlePhase

	// WillTunnel is drawn exactly once at spawn from the physics
	// result current at that moment. Parameter changes mid-flight do
	// not re-draw it.
	WillTunnel bool

	// Speed is the particle's own speed in scene units per second,
	// randomized within a band at spawn.
	Speed float64

	SpawnedAt time.Time

	// Decay is the evanescent brightness factor, 1 outside the
	// barrier, exp(-kappa*progress*L) inside.
	Decay float64

	// Fade is the post-detection fade-out level: 1 while alive, then
	// falling to 0, at which point the particle is removed.
	Fade float64

	// Detected marks that the particle reached the detector and is
	// fading out.
	Detected bool

	// Trail is a bounded FIFO of recent positions, newest last.
	Trail []TrailPoint

	// remove marks the particle for end-of-frame compaction.
	remove bool
}

// PushTrail appends the particle's current position to the trail,
// evicting the oldest point once the FIFO is full.
func (p *Particle) PushTrail(limit int) {
	if limit <= 0 {
		return
	}
	if len(p.Trail) >= limit {
		copy(p.Trail, p.Trail[1:])
		p.Trail = p.Trail[:limit-1]
	}
	p.Trail = append(p.Trail, TrailPoint{X: p.X, Y: p.Y})
}

// MarkForRemoval flags the particle for the end-of-frame compaction
// pass.
func (p *Particle) MarkForRemoval() {
	p.remove = true
}

// MarkedForRemoval reports whether the particle is awaiting
// compaction.
func (p *Particle) MarkedForRemoval() bool {
	return p.remove
}
