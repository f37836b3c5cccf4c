package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/quantaterm/quantaterm/component"
	"github.com/quantaterm/quantaterm/quantum"
	"github.com/quantaterm/quantaterm/system"
)

// TunnelingFooterRows is the footer panel height of the tunneling
// scene.
const TunnelingFooterRows = 6

// energyDisplayMax is the top of the energy axis in eV; values above
// it clamp to the scene top.
const energyDisplayMax = 12.0

// WaveToggles selects which overlay segments the user wants drawn.
// A segment is rendered only when both the toggle and the physics
// gate allow it.
type WaveToggles struct {
	Incident    bool
	Reflected   bool
	Evanescent  bool
	Transmitted bool
}

// AllWaves returns toggles with every segment enabled.
func AllWaves() WaveToggles {
	return WaveToggles{Incident: true, Reflected: true, Evanescent: true, Transmitted: true}
}

// TunnelingFrame is everything the tunneling renderer needs for one
// frame, read-only.
type TunnelingFrame struct {
	Particles  []component.Particle
	Waves      system.WaveFrame
	Stats      system.StatsSnapshot
	Result     quantum.TunnelingResult
	Params     system.Params
	Toggles    WaveToggles
	Paused     bool
	SlowMotion float64
}

// DrawTunneling renders the full tunneling scene: barrier and energy
// plane, wave overlay, particles with trails, and the statistics
// panel.
func DrawTunneling(ctx Context, f TunnelingFrame) {
	drawHeader(ctx, "barrier tunneling", f.Paused)
	drawScene(ctx, f)
	drawWaves(ctx, f)
	drawParticles(ctx, f.Particles)
	drawStatsPanel(ctx, f)
}

// energyRow maps an energy in eV onto a scene row, zero at the scene
// bottom.
func energyRow(ctx Context, e float64) int {
	frac := e / energyDisplayMax
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	row := ctx.SceneBottom - int(frac*float64(ctx.SceneBottom-ctx.SceneTop))
	if row < ctx.SceneTop {
		row = ctx.SceneTop
	}
	return row
}

func drawHeader(ctx Context, title string, paused bool) {
	style := tcell.StyleDefault.Foreground(RgbHeader).Background(RgbBackground)
	ctx.DrawText(1, 0, "quantaterm :: "+title, style)
	if paused {
		ctx.DrawText(ctx.ScreenWidth-9, 0, "[paused]", style.Foreground(RgbMeasured))
	}
	ctx.DrawText(ctx.ScreenWidth-30, 0, "1:tunnel 2:slit 3:orbital q:quit",
		tcell.StyleDefault.Foreground(RgbDim).Background(RgbBackground))
}

func drawScene(ctx Context, f TunnelingFrame) {
	axisStyle := tcell.StyleDefault.Foreground(RgbAxis).Background(RgbBackground)

	// Beam axis.
	mid := ctx.SceneMidRow()
	ctx.DrawHLine(0, ctx.ScreenWidth-1, mid, '─', axisStyle)

	// Barrier block: columns of the barrier region, from the V0 row
	// down to the scene bottom.
	left := ctx.ColumnFor(-f.Params.BarrierWidth / 2)
	right := ctx.ColumnFor(f.Params.BarrierWidth / 2)
	top := energyRow(ctx, f.Params.BarrierHeight)
	barrierStyle := tcell.StyleDefault.Foreground(RgbBarrier).Background(RgbBackground)
	ctx.FillRect(left, top, right, ctx.SceneBottom, '▒', barrierStyle)
	ctx.DrawHLine(left, right, top, '▔', barrierStyle)

	// Energy plane: a dashed line at the particle energy level.
	eRow := energyRow(ctx, f.Params.Energy)
	eStyle := tcell.StyleDefault.Foreground(RgbEnergyLine).Background(RgbBackground)
	for x := 0; x < ctx.ScreenWidth; x += 2 {
		ctx.Screen.SetContent(x, eRow, '╌', nil, eStyle)
	}
	ctx.DrawText(1, eRow, fmt.Sprintf(" E=%.1f eV ", f.Params.Energy), eStyle)
	ctx.DrawText(right+2, top, fmt.Sprintf(" V₀=%.1f eV ", f.Params.BarrierHeight), barrierStyle)

	// Detector wall on the far boundary.
	det := tcell.StyleDefault.Foreground(RgbDetector).Background(RgbBackground)
	for y := ctx.SceneTop; y <= ctx.SceneBottom; y++ {
		ctx.Screen.SetContent(ctx.ScreenWidth-1, y, '▕', nil, det)
	}
}

func drawWaves(ctx Context, f TunnelingFrame) {
	plot := func(seg system.WaveSegment, enabled bool, color tcell.Color) {
		if !enabled || !seg.Present {
			return
		}
		style := tcell.StyleDefault.Foreground(color).Background(RgbBackground)
		for _, p := range seg.Points {
			col := ctx.ColumnFor(p.X)
			row := ctx.RowFor(p.Y)
			r := '·'
			if p.Y > 0.45 || p.Y < -0.45 {
				r = '•'
			}
			ctx.Screen.SetContent(col, row, r, nil, style)
		}
	}

	plot(f.Waves.Incident, f.Toggles.Incident, RgbWaveIncident)
	plot(f.Waves.Reflected, f.Toggles.Reflected, RgbWaveReflected)
	plot(f.Waves.Evanescent, f.Toggles.Evanescent, RgbWaveEvanescent)
	plot(f.Waves.Transmitted, f.Toggles.Transmitted, RgbWaveTransmitted)
}

func drawParticles(ctx Context, particles []component.Particle) {
	for _, p := range particles {
		color := phaseColor(p.Phase)

		// Trail first, oldest dimmest, so the head draws over it.
		for i, tp := range p.Trail {
			fade := float64(i+1) / float64(len(p.Trail)+1) * 0.5
			style := tcell.StyleDefault.
				Foreground(fadeColor(color, fade)).
				Background(RgbBackground)
			ctx.Screen.SetContent(ctx.ColumnFor(tp.X), ctx.RowFor(tp.Y), '·', nil, style)
		}

		brightness := p.Decay * p.Fade
		style := tcell.StyleDefault.
			Foreground(fadeColor(color, 0.25+0.75*brightness)).
			Background(RgbBackground)
		ctx.Screen.SetContent(ctx.ColumnFor(p.X), ctx.RowFor(p.Y), particleGlyph(p), nil, style)
	}
}

func particleGlyph(p component.Particle) rune {
	switch {
	case p.Detected:
		return '◉'
	case p.Phase == component.PhaseInBarrier:
		return '◐'
	case p.Phase == component.PhaseReflected:
		return '○'
	}
	return '●'
}

func phaseColor(phase component.ParticlePhase) tcell.Color {
	switch phase {
	case component.PhaseInBarrier:
		return RgbInBarrier
	case component.PhaseTransmitted:
		return RgbTransmitted
	case component.PhaseReflected:
		return RgbReflected
	}
	return RgbIncident
}

func drawStatsPanel(ctx Context, f TunnelingFrame) {
	label := tcell.StyleDefault.Foreground(RgbLabel).Background(RgbBackground)
	value := tcell.StyleDefault.Foreground(RgbValue).Background(RgbBackground)
	theory := tcell.StyleDefault.Foreground(RgbTheory).Background(RgbBackground)
	measured := tcell.StyleDefault.Foreground(RgbMeasured).Background(RgbBackground)

	y := ctx.SceneBottom + 1
	ctx.DrawHLine(0, ctx.ScreenWidth-1, y, '─', tcell.StyleDefault.Foreground(RgbAxis).Background(RgbBackground))

	regime := "quantum tunneling (E < V₀)"
	if f.Result.IsClassical {
		regime = "classical crossing (E ≥ V₀)"
	}
	ctx.DrawText(1, y+1, fmt.Sprintf("E %.1f eV   V₀ %.1f eV   L %.2f nm   m %.2g mₑ   %s",
		f.Params.Energy, f.Params.BarrierHeight, f.Params.BarrierWidth, f.Params.Mass, regime), value)

	snap := f.Stats
	ctx.DrawText(1, y+2, fmt.Sprintf("particles %d   tunneled %d   reflected %d   rate %.1f/s   slow ×%.2f",
		snap.TotalParticles, snap.TunneledCount, snap.ReflectedCount, f.Params.SpawnIntensity, f.SlowMotion), label)

	ctx.DrawText(1, y+3, fmt.Sprintf("T theory %s", formatProbability(snap.TheoreticalProbability)), theory)
	ctx.DrawText(28, y+3, fmt.Sprintf("P measured %s", formatProbability(snap.ExperimentalProbability)), measured)
	drawProbabilityBar(ctx, 58, y+3, snap.TheoreticalProbability, snap.ExperimentalProbability)

	ctx.DrawText(1, y+4, "←/→ energy  ↑/↓ barrier  [/] width  +/- rate  m mass  s slow-mo  i/r/e/t waves  space pause",
		tcell.StyleDefault.Foreground(RgbDim).Background(RgbBackground))
}

// drawProbabilityBar renders theory and measurement as tick marks on
// a shared 0..1 gauge.
func drawProbabilityBar(ctx Context, x, y int, theory, measured float64) {
	width := ctx.ScreenWidth - x - 2
	if width < 10 {
		return
	}
	dim := tcell.StyleDefault.Foreground(RgbDim).Background(RgbBackground)
	ctx.DrawHLine(x, x+width, y, '⎯', dim)

	tCol := x + int(theory*float64(width))
	mCol := x + int(measured*float64(width))
	ctx.Screen.SetContent(tCol, y, '┬', nil, tcell.StyleDefault.Foreground(RgbTheory).Background(RgbBackground))
	ctx.Screen.SetContent(mCol, y, '┴', nil, tcell.StyleDefault.Foreground(RgbMeasured).Background(RgbBackground))
}

// formatProbability keeps tiny tunneling probabilities legible by
// switching to scientific notation below a readable threshold.
func formatProbability(p float64) string {
	if p != 0 && p < 0.001 {
		return fmt.Sprintf("%.2e", p)
	}
	return fmt.Sprintf("%.4f", p)
}
