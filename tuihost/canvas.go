package tuihost

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/glide"
)

// Canvas is the drawing surface handed to renderers. The engine works in
// virtual pixels; each terminal cell covers CellW x CellH of them.
type Canvas struct {
	Screen       tcell.Screen
	CellW, CellH float64
}

// Cell converts a screen pixel position to the cell containing it.
func (c *Canvas) Cell(sx, sy float64) (col, row int) {
	return int(math.Floor(sx / c.CellW)), int(math.Floor(sy / c.CellH))
}

// Plot draws r at the cell under the world point (wx, wy). Points outside the
// screen are skipped.
func (c *Canvas) Plot(xf glide.Transform, wx, wy float64, r rune, style tcell.Style) {
	sx, sy := xf.WorldToScreen(wx, wy)
	col, row := c.Cell(sx, sy)
	w, h := c.Screen.Size()
	if col < 0 || row < 0 || col >= w || row >= h {
		return
	}
	c.Screen.SetContent(col, row, r, nil, style)
}

// FillWorld fills every cell whose center lies inside the world rectangle.
func (c *Canvas) FillWorld(xf glide.Transform, rect glide.Rect, r rune, style tcell.Style) {
	w, h := c.Screen.Size()
	x0, y0 := xf.WorldToScreen(rect.X, rect.Y)
	x1, y1 := xf.WorldToScreen(rect.X+rect.Width, rect.Y+rect.Height)
	c0, r0 := c.Cell(x0, y0)
	c1, r1 := c.Cell(x1, y1)
	for row := max(r0, 0); row <= min(r1, h-1); row++ {
		cy := (float64(row) + 0.5) * c.CellH
		if cy < y0 || cy > y1 {
			continue
		}
		for col := max(c0, 0); col <= min(c1, w-1); col++ {
			cx := (float64(col) + 0.5) * c.CellW
			if cx < x0 || cx > x1 {
				continue
			}
			c.Screen.SetContent(col, row, r, nil, style)
		}
	}
}

// Text writes s starting at the given cell, clipped to the screen.
func (c *Canvas) Text(col, row int, s string, style tcell.Style) {
	w, h := c.Screen.Size()
	if row < 0 || row >= h {
		return
	}
	for _, r := range s {
		if col >= w {
			return
		}
		if col >= 0 {
			c.Screen.SetContent(col, row, r, nil, style)
		}
		col++
	}
}
