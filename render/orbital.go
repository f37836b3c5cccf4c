package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/quantaterm/quantaterm/quantum"
)

// OrbitalFooterRows is the footer panel height of the orbital scene.
const OrbitalFooterRows = 4

// OrbitalFrame carries the orbital scene state for one frame.
type OrbitalFrame struct {
	State  quantum.OrbitalState
	Points []quantum.OrbitalPoint

	// Angle is the current rotation around the vertical axis.
	Angle  float64
	Paused bool
}

// DrawOrbital renders the sampled probability cloud, rotated around
// the y axis and projected orthographically. Denser samples draw
// brighter and later, so cloud cores stay visible.
func DrawOrbital(ctx Context, f OrbitalFrame) {
	drawHeader(ctx, "hydrogen orbital "+f.State.Label, f.Paused)

	extent := 4.0 * float64(f.State.N*f.State.N)
	cx := ctx.ScreenWidth / 2
	cy := ctx.SceneMidRow()
	// Terminal cells are ~2x taller than wide; compensate so the
	// cloud reads as round.
	scaleX := float64(ctx.ScreenWidth) / (2.2 * extent)
	scaleY := float64(ctx.SceneBottom-ctx.SceneTop) / (2.2 * extent)

	sin, cos := math.Sin(f.Angle), math.Cos(f.Angle)

	for _, p := range f.Points {
		// Rotate around the vertical (z stays the vertical axis of
		// the m=0 states; screen-vertical maps to z).
		rx := p.X*cos + p.Y*sin

		col := cx + int(rx*scaleX)
		row := cy - int(p.Z*scaleY)
		if col < 0 || col >= ctx.ScreenWidth || row < ctx.SceneTop || row > ctx.SceneBottom {
			continue
		}

		style := tcell.StyleDefault.
			Foreground(fadeColor(densityColor(p.Density), 0.3+0.7*p.Density)).
			Background(RgbBackground)
		ctx.Screen.SetContent(col, row, densityGlyph(p.Density), nil, style)
	}

	y := ctx.SceneBottom + 1
	ctx.DrawHLine(0, ctx.ScreenWidth-1, y, '─', tcell.StyleDefault.Foreground(RgbAxis).Background(RgbBackground))
	ctx.DrawText(1, y+1, fmt.Sprintf("state %s   n=%d l=%d m=%d   %d sampled points",
		f.State.Label, f.State.N, f.State.L, f.State.M, len(f.Points)),
		tcell.StyleDefault.Foreground(RgbValue).Background(RgbBackground))
	ctx.DrawText(1, y+2, "←/→ previous/next orbital",
		tcell.StyleDefault.Foreground(RgbDim).Background(RgbBackground))
}

func densityGlyph(d float64) rune {
	switch {
	case d > 0.66:
		return '●'
	case d > 0.33:
		return '◦'
	}
	return '·'
}

// densityColor blends from the cool low-density tint to the warm
// core tint.
func densityColor(d float64) tcell.Color {
	lr, lg, lb := RgbOrbitLow.RGB()
	hr, hg, hb := RgbOrbitHigh.RGB()
	mix := func(a, b int32) int32 {
		return a + int32(float64(b-a)*d)
	}
	return tcell.NewRGBColor(mix(lr, hr), mix(lg, hg), mix(lb, hb))
}
