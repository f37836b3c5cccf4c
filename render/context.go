package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/quantaterm/quantaterm/constant"
)

// Context provides frame state for renderers, passed by value. It
// maps scene coordinates (nm on the horizontal axis, lateral offset
// on the vertical) onto the terminal cell grid.
type Context struct {
	Screen tcell.Screen

	ScreenWidth  int
	ScreenHeight int

	// Scene area: everything between the header row and the footer
	// panel.
	SceneTop    int
	SceneBottom int
}

// NewContext builds a context for the current screen size. The scene
// occupies the rows between the one-line header and the footer panel.
func NewContext(screen tcell.Screen, footerRows int) Context {
	w, h := screen.Size()
	bottom := h - footerRows - 1
	if bottom < 2 {
		bottom = 2
	}
	return Context{
		Screen:       screen,
		ScreenWidth:  w,
		ScreenHeight: h,
		SceneTop:     1,
		SceneBottom:  bottom,
	}
}

// SceneMidRow is the vertical center of the scene area, the beam
// axis.
func (c Context) SceneMidRow() int {
	return (c.SceneTop + c.SceneBottom) / 2
}

// verticalExtent is the scene offset mapped to the scene's half
// height: enough headroom for the wave amplitude and the lateral
// spread.
const verticalExtent = 2.2

// ColumnFor maps a scene x coordinate in [DomainMin, DomainMax] to a
// terminal column.
func (c Context) ColumnFor(x float64) int {
	span := constant.DomainMax - constant.DomainMin
	frac := (x - constant.DomainMin) / span
	col := int(frac * float64(c.ScreenWidth-1))
	if col < 0 {
		col = 0
	}
	if col >= c.ScreenWidth {
		col = c.ScreenWidth - 1
	}
	return col
}

// RowFor maps a vertical scene offset (0 is the beam axis, positive
// up) to a terminal row.
func (c Context) RowFor(offset float64) int {
	half := float64(c.SceneBottom-c.SceneTop) / 2
	row := c.SceneMidRow() - int(offset/verticalExtent*half)
	if row < c.SceneTop {
		row = c.SceneTop
	}
	if row > c.SceneBottom {
		row = c.SceneBottom
	}
	return row
}

// DrawText writes a string starting at (x, y), clipped to the screen.
func (c Context) DrawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		if x+i >= c.ScreenWidth {
			break
		}
		c.Screen.SetContent(x+i, y, r, nil, style)
	}
}

// DrawHLine fills a horizontal run of cells with one rune.
func (c Context) DrawHLine(x0, x1, y int, r rune, style tcell.Style) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1 && x < c.ScreenWidth; x++ {
		if x >= 0 {
			c.Screen.SetContent(x, y, r, nil, style)
		}
	}
}

// FillRect fills a rectangle with one rune, clipped to the screen.
func (c Context) FillRect(x0, y0, x1, y1 int, r rune, style tcell.Style) {
	for y := y0; y <= y1; y++ {
		if y < 0 || y >= c.ScreenHeight {
			continue
		}
		c.DrawHLine(x0, x1, y, r, style)
	}
}
