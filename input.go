package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/quantaterm/quantaterm/quantum"
	"github.com/quantaterm/quantaterm/system"
)

// handleEvent processes one terminal event. Returns false to quit.
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}

	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'q':
			return false
		case '1':
			a.current = experimentTunneling
			return true
		case '2':
			a.current = experimentInterference
			return true
		case '3':
			a.current = experimentOrbital
			return true
		case ' ':
			a.paused = !a.paused
			return true
		case 'a':
			if a.sound != nil {
				a.sound.ToggleMute()
			}
			return true
		}
	}

	switch a.current {
	case experimentTunneling:
		a.handleTunnelingKey(ev)
	case experimentInterference:
		a.handleInterferenceKey(ev)
	case experimentOrbital:
		a.handleOrbitalKey(ev)
	}
	return true
}

func (a *app) handleTunnelingKey(ev *tcell.EventKey) {
	p := a.lifecycle.Params()

	switch ev.Key() {
	case tcell.KeyLeft:
		p.Energy = clampParam(p.Energy-0.5, 0.5, 12)
	case tcell.KeyRight:
		p.Energy = clampParam(p.Energy+0.5, 0.5, 12)
	case tcell.KeyUp:
		p.BarrierHeight = clampParam(p.BarrierHeight+0.5, 0.5, 12)
	case tcell.KeyDown:
		p.BarrierHeight = clampParam(p.BarrierHeight-0.5, 0.5, 12)
	case tcell.KeyRune:
		switch ev.Rune() {
		case '[':
			p.BarrierWidth = clampParam(p.BarrierWidth-0.25, 0.25, 5)
		case ']':
			p.BarrierWidth = clampParam(p.BarrierWidth+0.25, 0.25, 5)
		case '-':
			p.SpawnIntensity = clampParam(p.SpawnIntensity-1, 1, 60)
		case '+', '=':
			p.SpawnIntensity = clampParam(p.SpawnIntensity+1, 1, 60)
		case 'm':
			p.Mass = nextMass(p.Mass)
		case 's':
			a.slowMo = !a.slowMo
			if a.slowMo {
				a.clock.SetSlowMotion(0.25)
			} else {
				a.clock.SetSlowMotion(1)
			}
			return
		case 'i':
			a.toggles.Incident = !a.toggles.Incident
			return
		case 'r':
			a.toggles.Reflected = !a.toggles.Reflected
			return
		case 'e':
			a.toggles.Evanescent = !a.toggles.Evanescent
			return
		case 't':
			a.toggles.Transmitted = !a.toggles.Transmitted
			return
		default:
			return
		}
	default:
		return
	}

	a.applyParams(p)
}

// applyParams pushes edited parameters into the lifecycle engine,
// which decides whether the change is a hard reset.
func (a *app) applyParams(p system.Params) {
	a.lifecycle.SetParams(p)
}

func (a *app) handleInterferenceKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyLeft:
		a.slit.Separation = clampParam(a.slit.Separation-0.5, 1, 20)
	case tcell.KeyRight:
		a.slit.Separation = clampParam(a.slit.Separation+0.5, 1, 20)
	case tcell.KeyUp:
		a.slit.Wavelength = clampParam(a.slit.Wavelength+0.1, 0.2, 5)
	case tcell.KeyDown:
		a.slit.Wavelength = clampParam(a.slit.Wavelength-0.1, 0.2, 5)
	case tcell.KeyRune:
		switch ev.Rune() {
		case '[':
			a.slit.SlitWidth = clampParam(a.slit.SlitWidth-0.2, 0.2, 6)
		case ']':
			a.slit.SlitWidth = clampParam(a.slit.SlitWidth+0.2, 0.2, 6)
		}
	}
}

func (a *app) handleOrbitalKey(ev *tcell.EventKey) {
	n := len(quantum.OrbitalCatalog)
	switch ev.Key() {
	case tcell.KeyLeft:
		a.orbitalIndex = (a.orbitalIndex + n - 1) % n
		a.resampleOrbital()
	case tcell.KeyRight:
		a.orbitalIndex = (a.orbitalIndex + 1) % n
		a.resampleOrbital()
	}
}

// nextMass cycles through the mass presets.
func nextMass(m float64) float64 {
	switch {
	case m < 1:
		return 1
	case m < 2:
		return 2
	case m < 5:
		return 5
	}
	return 0.5
}

func clampParam(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
