package system

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/quantaterm/quantaterm/constant"
	"github.com/quantaterm/quantaterm/quantum"
)

// WavePoint is one sample of a wave overlay curve.
type WavePoint struct {
	X float64 // scene coordinate
	Y float64 // signed amplitude
}

// WaveSegment is one of the four overlay curves. Present is false
// when the segment is gated off for the current physics (e.g. no
// evanescent tail in the classical regime); renderers skip absent
// segments entirely.
type WaveSegment struct {
	Present bool
	Points  []WavePoint
}

// WaveFrame is the full overlay for one rendered frame.
type WaveFrame struct {
	Incident    WaveSegment
	Reflected   WaveSegment
	Evanescent  WaveSegment
	Transmitted WaveSegment
}

// SampleWaves evaluates the four overlay curves for the given physics
// result at the given accumulated phase time. Stateless: everything
// is derived from the arguments, so the overlay is trivially safe to
// recompute every frame.
//
// The angular frequency is fixed rather than derived from E, so slow
// parameter sweeps do not make the overlay strobe.
func SampleWaves(r quantum.TunnelingResult, phase float64) WaveFrame {
	const omega = 2 * math.Pi * 0.6

	barrierLeft := -r.BarrierWidth / 2
	barrierRight := r.BarrierWidth / 2
	k := r.WaveNumber
	t := omega * phase

	var f WaveFrame

	// Incident: always drawn, amplitude A, travelling toward the
	// barrier.
	f.Incident = WaveSegment{Present: true}
	f.Incident.Points = sampleSinusoid(constant.DomainMin, barrierLeft,
		constant.WaveAmplitude, k, -t)

	// Reflected: phase-reversed, amplitude A*sqrt(R), omitted when
	// reflection is negligible.
	if r.Reflection > constant.ReflectedVisibilityThreshold {
		f.Reflected = WaveSegment{Present: true}
		f.Reflected.Points = sampleSinusoid(constant.DomainMin, barrierLeft,
			-constant.WaveAmplitude*math.Sqrt(r.Reflection), k, t)
	}

	// Evanescent: decaying envelope inside the barrier, quantum
	// regime only.
	if !r.IsClassical && r.DecayConstant > 0 {
		f.Evanescent = WaveSegment{Present: true}
		f.Evanescent.Points = sampleEvanescent(r, barrierLeft, barrierRight, t)
	}

	// Transmitted: amplitude A*sqrt(T) past the barrier, omitted when
	// transmission is negligible.
	if r.Transmission > constant.TransmittedVisibilityThreshold {
		f.Transmitted = WaveSegment{Present: true}
		f.Transmitted.Points = sampleSinusoid(barrierRight, constant.DomainMax,
			constant.WaveAmplitude*math.Sqrt(r.Transmission), k, -t)
	}

	return f
}

// sampleSinusoid fills one segment with amp*sin(k*x + t) over
// [x0, x1].
func sampleSinusoid(x0, x1, amp, k, t float64) []WavePoint {
	xs := make([]float64, constant.WaveSamplesPerSegment)
	floats.Span(xs, x0, x1)

	pts := make([]WavePoint, len(xs))
	for i, x := range xs {
		pts[i] = WavePoint{X: x, Y: amp * math.Sin(k*x+t)}
	}
	return pts
}

// sampleEvanescent fills the in-barrier envelope: the incident
// amplitude attenuated by exp(-kappa*depth), with a slow carrier so
// the tail visibly belongs to the oscillating wave.
func sampleEvanescent(r quantum.TunnelingResult, x0, x1, t float64) []WavePoint {
	xs := make([]float64, constant.WaveSamplesPerSegment)
	floats.Span(xs, x0, x1)

	width := x1 - x0
	pts := make([]WavePoint, len(xs))
	for i, x := range xs {
		progress := 0.0
		if width > 0 {
			progress = (x - x0) / width
		}
		envelope := constant.WaveAmplitude * r.EvanescentDecay(progress)
		pts[i] = WavePoint{X: x, Y: envelope * math.Cos(t)}
	}
	return pts
}
