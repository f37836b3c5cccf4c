package system

// StatsSnapshot is the read-only view of the running experiment
// statistics handed to renderers and reports. Probabilities are
// always in [0,1].
type StatsSnapshot struct {
	TotalParticles int
	TunneledCount  int
	ReflectedCount int

	// TheoreticalProbability is the WKB transmission for the current
	// parameters.
	TheoreticalProbability float64

	// ExperimentalProbability is TunneledCount / TotalParticles, 0
	// while no particle has resolved.
	ExperimentalProbability float64
}

// Stats accumulates resolved-particle counts and derives the running
// experimental probability. A particle is recorded exactly once, at
// the moment its outcome resolves, never at spawn.
type Stats struct {
	snap StatsSnapshot
}

// NewStats creates an aggregator with the given theoretical
// probability and zeroed counters.
func NewStats(theory float64) *Stats {
	return &Stats{snap: StatsSnapshot{TheoreticalProbability: theory}}
}

// RecordTunneled counts one tunneled particle and recomputes the
// experimental probability after both counters are consistent.
func (s *Stats) RecordTunneled() {
	s.snap.TunneledCount++
	s.snap.TotalParticles++
	s.recompute()
}

// RecordReflected counts one reflected particle and recomputes the
// experimental probability after both counters are consistent.
func (s *Stats) RecordReflected() {
	s.snap.ReflectedCount++
	s.snap.TotalParticles++
	s.recompute()
}

// RecordTheory overwrites the theoretical probability without
// touching the counters.
func (s *Stats) RecordTheory(t float64) {
	s.snap.TheoreticalProbability = t
}

// Reset zeroes every counter and adopts the given theoretical
// probability for the new configuration.
func (s *Stats) Reset(theory float64) {
	s.snap = StatsSnapshot{TheoreticalProbability: theory}
}

// Snapshot returns the current statistics by value.
func (s *Stats) Snapshot() StatsSnapshot {
	return s.snap
}

func (s *Stats) recompute() {
	if s.snap.TotalParticles == 0 {
		s.snap.ExperimentalProbability = 0
		return
	}
	s.snap.ExperimentalProbability = float64(s.snap.TunneledCount) / float64(s.snap.TotalParticles)
}
