package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/quantaterm/quantaterm/audio"
	"github.com/quantaterm/quantaterm/constant"
	"github.com/quantaterm/quantaterm/engine"
	"github.com/quantaterm/quantaterm/quantum"
	"github.com/quantaterm/quantaterm/render"
	"github.com/quantaterm/quantaterm/system"
)

type experiment int

const (
	experimentTunneling experiment = iota
	experimentInterference
	experimentOrbital
)

// app owns the screen, the frame clock, and the per-experiment state.
// Everything runs on the frame loop goroutine; input events are
// pumped in over a channel, so simulation state is only ever touched
// from one place.
type app struct {
	screen tcell.Screen
	clock  *engine.Clock
	sound  *audio.Feedback

	current experiment
	paused  bool

	// Tunneling experiment
	lifecycle *system.Lifecycle
	stats     *system.Stats
	toggles   render.WaveToggles
	slowMo    bool

	// Double-slit experiment
	slit quantum.SlitParams

	// Orbital experiment
	rng           *rand.Rand
	orbitalIndex  int
	orbitalPoints []quantum.OrbitalPoint
	orbitalAngle  float64
}

func newApp(c *viewCmd) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	params := system.Params{
		Energy:         c.Energy,
		BarrierHeight:  c.Barrier,
		BarrierWidth:   c.Width,
		Mass:           c.Mass,
		SpawnIntensity: c.Intensity,
	}
	stats := system.NewStats(0)
	lifecycle := system.NewLifecycle(params, quantum.NewSampler(rng), stats, engine.RealTime{})

	a := &app{
		screen:    screen,
		clock:     engine.NewClock(engine.RealTime{}),
		lifecycle: lifecycle,
		stats:     stats,
		toggles:   render.AllWaves(),
		slit: quantum.SlitParams{
			Separation: constant.SlitDefaultSeparation,
			SlitWidth:  constant.SlitDefaultWidth,
			Wavelength: constant.SlitDefaultWavelength,
		},
		rng: rng,
	}
	a.resampleOrbital()

	sound, err := audio.NewFeedback()
	if err != nil {
		// Non-fatal, the visualizer runs silently.
		log.Printf("audio init failed: %v", err)
	}
	a.sound = sound
	lifecycle.OnTunneled(sound.Tunneled)
	lifecycle.OnReflected(sound.Reflected)

	return a, nil
}

func (a *app) run() {
	ticker := time.NewTicker(constant.FrameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			events <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			dt := a.clock.Tick()
			if !a.paused {
				a.update(dt)
			}
			a.draw()
		}
	}
}

func (a *app) update(dt time.Duration) {
	switch a.current {
	case experimentTunneling:
		a.lifecycle.Update(dt)
	case experimentOrbital:
		a.orbitalAngle += constant.OrbitalRotationRate * dt.Seconds()
	}
}

func (a *app) draw() {
	a.screen.Clear()

	switch a.current {
	case experimentTunneling:
		ctx := render.NewContext(a.screen, render.TunnelingFooterRows)
		render.DrawTunneling(ctx, render.TunnelingFrame{
			Particles:  a.lifecycle.Particles(),
			Waves:      system.SampleWaves(a.lifecycle.Result(), a.clock.WavePhase()),
			Stats:      a.stats.Snapshot(),
			Result:     a.lifecycle.Result(),
			Params:     a.lifecycle.Params(),
			Toggles:    a.toggles,
			Paused:     a.paused,
			SlowMotion: a.clock.SlowMotion(),
		})
	case experimentInterference:
		ctx := render.NewContext(a.screen, render.InterferenceFooterRows)
		render.DrawInterference(ctx, render.InterferenceFrame{
			Params: a.slit,
			Paused: a.paused,
		})
	case experimentOrbital:
		ctx := render.NewContext(a.screen, render.OrbitalFooterRows)
		render.DrawOrbital(ctx, render.OrbitalFrame{
			State:  quantum.OrbitalCatalog[a.orbitalIndex],
			Points: a.orbitalPoints,
			Angle:  a.orbitalAngle,
			Paused: a.paused,
		})
	}

	a.screen.Show()
}

// resampleOrbital rebuilds the point cloud for the selected state.
func (a *app) resampleOrbital() {
	state := quantum.OrbitalCatalog[a.orbitalIndex]
	a.orbitalPoints = quantum.SampleOrbital(state, constant.OrbitalPointCount, a.rng)
}

func (a *app) cleanup() {
	if a.sound != nil {
		a.sound.Close()
	}
	a.screen.Fini()
}
