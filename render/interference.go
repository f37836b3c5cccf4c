package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/quantaterm/quantaterm/quantum"
)

// InterferenceFooterRows is the footer panel height of the
// double-slit scene.
const InterferenceFooterRows = 4

// InterferenceFrame carries the double-slit scene state for one
// frame.
type InterferenceFrame struct {
	Params quantum.SlitParams
	Paused bool
}

// DrawInterference renders the double-slit intensity pattern as
// vertical bars, one per column, with the slit geometry sketched on
// the left edge.
func DrawInterference(ctx Context, f InterferenceFrame) {
	drawHeader(ctx, "double-slit interference", f.Paused)

	samples := quantum.InterferencePattern(f.Params, 0.55, ctx.ScreenWidth)
	sceneHeight := ctx.SceneBottom - ctx.SceneTop

	for col, intensity := range samples {
		barTop := ctx.SceneBottom - int(intensity*float64(sceneHeight))
		for y := barTop; y <= ctx.SceneBottom; y++ {
			// Brighter toward the top of each bar.
			frac := 1.0
			if ctx.SceneBottom > barTop {
				frac = 0.4 + 0.6*float64(ctx.SceneBottom-y)/float64(ctx.SceneBottom-barTop)
			}
			style := tcell.StyleDefault.
				Foreground(fadeColor(RgbInterBar, frac)).
				Background(RgbBackground)
			ctx.Screen.SetContent(col, y, '█', nil, style)
		}
	}

	y := ctx.SceneBottom + 1
	ctx.DrawHLine(0, ctx.ScreenWidth-1, y, '─', tcell.StyleDefault.Foreground(RgbAxis).Background(RgbBackground))
	ctx.DrawText(1, y+1, fmt.Sprintf("slit separation d %.2f   slit width a %.2f   wavelength λ %.2f",
		f.Params.Separation, f.Params.SlitWidth, f.Params.Wavelength),
		tcell.StyleDefault.Foreground(RgbValue).Background(RgbBackground))
	ctx.DrawText(1, y+2, "←/→ separation  ↑/↓ wavelength  [/] slit width",
		tcell.StyleDefault.Foreground(RgbDim).Background(RgbBackground))
}
