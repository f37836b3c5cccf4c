package system

import (
	"time"

	"github.com/quantaterm/quantaterm/component"
	"github.com/quantaterm/quantaterm/constant"
	"github.com/quantaterm/quantaterm/engine"
	"github.com/quantaterm/quantaterm/quantum"
)

// Params is the externally supplied simulation configuration. It is
// immutable within a frame; the UI layer swaps it between frames via
// SetParams.
type Params struct {
	Energy         float64 // E, eV
	BarrierHeight  float64 // V0, eV
	BarrierWidth   float64 // L, nm
	Mass           float64 // electron-mass multiplier
	SpawnIntensity float64 // particles per second
}

// DefaultParams returns the startup configuration.
func DefaultParams() Params {
	return Params{
		Energy:         constant.DefaultParticleEnergy,
		BarrierHeight:  constant.DefaultBarrierHeight,
		BarrierWidth:   constant.DefaultBarrierWidth,
		Mass:           constant.DefaultParticleMass,
		SpawnIntensity: constant.DefaultSpawnIntensity,
	}
}

// physicsKey is the parameter triple whose change invalidates running
// statistics and in-flight particles.
func (p Params) physicsKey() [3]float64 {
	return [3]float64{p.Energy, p.BarrierHeight, p.BarrierWidth}
}

// Lifecycle owns the live particle set and advances it one frame at a
// time. Exclusivity is structural: only Update mutates particles, and
// consumers read snapshots between frames. Within a frame every
// particle is advanced before any is removed.
type Lifecycle struct {
	params  Params
	result  quantum.TunnelingResult
	sampler *quantum.Sampler
	stats   *Stats
	clock   engine.TimeSource

	onTunneled  func()
	onReflected func()

	particles  []*component.Particle
	nextID     uint64
	sinceSpawn float64 // scaled seconds since the last spawn attempt
}

// NewLifecycle creates the particle engine for the given starting
// parameters. The sampler provides the single stochastic outcome
// draw; the stats aggregator receives every resolved particle.
func NewLifecycle(params Params, sampler *quantum.Sampler, stats *Stats, clock engine.TimeSource) *Lifecycle {
	l := &Lifecycle{
		params:  params,
		result:  quantum.EvaluateTunneling(params.Energy, params.BarrierHeight, params.BarrierWidth, params.Mass),
		sampler: sampler,
		stats:   stats,
		clock:   clock,
	}
	l.stats.Reset(l.result.Transmission)
	return l
}

// OnTunneled installs the detector-hit callback, invoked synchronously
// from Update, exactly once per transmitted particle.
func (l *Lifecycle) OnTunneled(fn func()) {
	l.onTunneled = fn
}

// OnReflected installs the reflection callback, invoked synchronously
// from Update, exactly once per reflected particle.
func (l *Lifecycle) OnReflected(fn func()) {
	l.onReflected = fn
}

// Params returns the current configuration.
func (l *Lifecycle) Params() Params {
	return l.params
}

// Result returns the physics evaluation for the current parameters.
func (l *Lifecycle) Result() quantum.TunnelingResult {
	return l.result
}

// SetParams installs a new configuration. A change to the (E, V0, L)
// triple discards every in-flight particle and zeroes the statistics
// immediately, so results from different physical configurations are
// never mixed. Intensity and mass changes keep particles and counts;
// the physics result is still re-evaluated so new spawns see it.
func (l *Lifecycle) SetParams(p Params) {
	hardReset := p.physicsKey() != l.params.physicsKey()
	l.params = p
	l.result = quantum.EvaluateTunneling(p.Energy, p.BarrierHeight, p.BarrierWidth, p.Mass)

	if hardReset {
		l.particles = nil
		l.sinceSpawn = 0
		l.stats.Reset(l.result.Transmission)
		return
	}
	l.stats.RecordTheory(l.result.Transmission)
}

// LiveCount returns the number of in-flight particles.
func (l *Lifecycle) LiveCount() int {
	return len(l.particles)
}

// Particles returns a value-copy snapshot of the live set for
// rendering. Trail buffers are copied so the next frame's mutation
// cannot reach through the snapshot.
func (l *Lifecycle) Particles() []component.Particle {
	out := make([]component.Particle, len(l.particles))
	for i, p := range l.particles {
		out[i] = *p
		out[i].Trail = append([]component.TrailPoint(nil), p.Trail...)
	}
	return out
}

// Update advances the simulation by one frame. dt is the scaled frame
// delta. Order within the frame: spawn decision, advance every live
// particle (firing transition side effects), then compact removals.
func (l *Lifecycle) Update(dt time.Duration) {
	seconds := dt.Seconds()

	l.trySpawn(seconds)

	for _, p := range l.particles {
		l.advance(p, seconds)
	}

	l.compact()
}

// trySpawn admits at most one particle per elapsed spawn interval.
// An attempt made while at the particle cap is dropped, not queued:
// the interval timer restarts either way.
func (l *Lifecycle) trySpawn(seconds float64) {
	if l.params.SpawnIntensity <= 0 {
		return
	}
	l.sinceSpawn += seconds
	interval := 1.0 / l.params.SpawnIntensity
	if l.sinceSpawn < interval {
		return
	}
	l.sinceSpawn = 0

	if len(l.particles) >= constant.MaxParticles {
		return
	}

	l.nextID++
	jitter := 1 + constant.ParticleSpeedJitter*(l.sampler.Float64()*2-1)
	p := &component.Particle{
		ID:         l.nextID,
		X:          constant.DomainMin,
		Y:          (l.sampler.Float64()*2 - 1) * constant.ParticleLateralSpread,
		Phase:      component.PhaseIncident,
		WillTunnel: l.sampler.WillTunnel(l.result),
		Speed:      constant.ParticleBaseSpeed * jitter,
		SpawnedAt:  l.clock.Now(),
		Decay:      1,
		Fade:       1,
	}
	l.particles = append(l.particles, p)
}

// advance moves one particle and applies at most its next phase
// transition for this frame.
func (l *Lifecycle) advance(p *component.Particle, seconds float64) {
	barrierLeft := -l.params.BarrierWidth / 2
	barrierRight := l.params.BarrierWidth / 2

	switch p.Phase {
	case component.PhaseIncident:
		p.X += p.Speed * seconds
		if p.X >= barrierLeft {
			if p.WillTunnel {
				p.X = barrierLeft
				p.Phase = component.PhaseInBarrier
			} else {
				p.Phase = component.PhaseReflected
				l.stats.RecordReflected()
				if l.onReflected != nil {
					l.onReflected()
				}
			}
		}

	case component.PhaseInBarrier:
		p.X += p.Speed * constant.BarrierSpeedFactor * seconds
		progress := 0.0
		if l.params.BarrierWidth > 0 {
			progress = (p.X - barrierLeft) / l.params.BarrierWidth
		}
		if progress < 0 {
			progress = 0
		}
		if progress > 1 {
			progress = 1
		}
		p.Decay = l.result.EvanescentDecay(progress)
		if p.X >= barrierRight {
			p.X = barrierRight
			p.Phase = component.PhaseTransmitted
			p.Decay = 1
		}

	case component.PhaseTransmitted:
		p.X += p.Speed * seconds
		if !p.Detected && p.X >= constant.DomainMax {
			p.Detected = true
			l.stats.RecordTunneled()
			if l.onTunneled != nil {
				l.onTunneled()
			}
		}
		if p.Detected {
			p.Fade -= seconds / constant.ParticleFadeDuration.Seconds()
			if p.Fade <= 0 {
				p.Fade = 0
				p.MarkForRemoval()
			}
		}

	case component.PhaseReflected:
		p.X -= p.Speed * seconds
		if p.X <= constant.DomainMin {
			p.MarkForRemoval()
		}
	}

	p.PushTrail(constant.ParticleTrailLength)
}

// compact filters out particles marked during this frame. Filtering
// preserves the relative order of survivors, so particle identity is
// stable for observers.
func (l *Lifecycle) compact() {
	live := l.particles[:0]
	for _, p := range l.particles {
		if !p.MarkedForRemoval() {
			live = append(live, p)
		}
	}
	for i := len(live); i < len(l.particles); i++ {
		l.particles[i] = nil
	}
	l.particles = live
}
