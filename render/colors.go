package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions, grouped by scene element.
var (
	RgbBackground = tcell.NewRGBColor(16, 18, 28)

	// Particle phases
	RgbIncident    = tcell.NewRGBColor(120, 200, 255) // approach blue
	RgbInBarrier   = tcell.NewRGBColor(255, 200, 80)  // evanescent amber
	RgbTransmitted = tcell.NewRGBColor(80, 255, 120)  // detected green
	RgbReflected   = tcell.NewRGBColor(255, 110, 110) // bounced red

	// Scene furniture
	RgbBarrier    = tcell.NewRGBColor(130, 90, 200) // potential barrier block
	RgbEnergyLine = tcell.NewRGBColor(90, 220, 220) // E plane marker
	RgbAxis       = tcell.NewRGBColor(70, 75, 95)
	RgbDetector   = tcell.NewRGBColor(80, 255, 120)

	// Wave overlay
	RgbWaveIncident    = tcell.NewRGBColor(90, 160, 230)
	RgbWaveReflected   = tcell.NewRGBColor(210, 110, 110)
	RgbWaveEvanescent  = tcell.NewRGBColor(230, 190, 90)
	RgbWaveTransmitted = tcell.NewRGBColor(110, 220, 140)

	// Panels
	RgbHeader    = tcell.NewRGBColor(230, 230, 240)
	RgbLabel     = tcell.NewRGBColor(150, 155, 175)
	RgbValue     = tcell.NewRGBColor(250, 250, 255)
	RgbTheory    = tcell.NewRGBColor(90, 220, 220)
	RgbMeasured  = tcell.NewRGBColor(255, 200, 80)
	RgbDim       = tcell.NewRGBColor(110, 115, 135)
	RgbInterBar  = tcell.NewRGBColor(120, 200, 255)
	RgbOrbitHigh = tcell.NewRGBColor(255, 240, 180)
	RgbOrbitLow  = tcell.NewRGBColor(90, 70, 160)
)

// fadeColor scales a color toward the background by t in [0,1];
// t=1 returns the color unchanged.
func fadeColor(c tcell.Color, t float64) tcell.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	r, g, b := c.RGB()
	br, bg, bb := RgbBackground.RGB()
	mix := func(a, bk int32) int32 {
		return bk + int32(float64(a-bk)*t)
	}
	return tcell.NewRGBColor(mix(r, br), mix(g, bg), mix(b, bb))
}
