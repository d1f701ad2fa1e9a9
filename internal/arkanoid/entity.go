package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Updater is implemented by entities that advance on their own each frame.
type Updater interface {
	Update()
}

// Drawable is implemented by entities that can render onto a Canvas.
type Drawable interface {
	Draw(c *Canvas)
}

// mortal is implemented by entities removed at the end of a pass.
type mortal interface {
	Dead() bool
}

// sweep compacts items in place, dropping dead entries and keeping order.
func sweep[T mortal](items []T) []T {
	kept := items[:0]
	for _, it := range items {
		if !it.Dead() {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}

// updateAll advances every entity.
func updateAll[T Updater](items []T) {
	for _, it := range items {
		it.Update()
	}
}

// drawAll renders every entity.
func drawAll[T Drawable](c *Canvas, items []T) {
	for _, it := range items {
		it.Draw(c)
	}
}

// Viewport maps world pixels onto terminal cells.
type Viewport struct {
	Cols, Rows     int
	WorldW, WorldH float64
}

// NewViewport creates a mapping from a worldW x worldH playfield onto cols x rows cells.
func NewViewport(cols, rows int, worldW, worldH float64) Viewport {
	return Viewport{Cols: cols, Rows: rows, WorldW: worldW, WorldH: worldH}
}

func (v Viewport) sx() float64 { return float64(v.Cols) / v.WorldW }
func (v Viewport) sy() float64 { return float64(v.Rows) / v.WorldH }

// ToCell returns the cell containing the world point.
func (v Viewport) ToCell(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx())), int(math.Floor(y * v.sy()))
}

// ToWorld returns the world point at the centre of a cell.
func (v Viewport) ToWorld(col, row int) (float64, float64) {
	return (float64(col) + 0.5) / v.sx(), (float64(row) + 0.5) / v.sy()
}

// CellRect returns the cells covered by a world box. Every non-empty box
// covers at least one cell.
func (v Viewport) CellRect(r core.RectF) core.Rect {
	x0, y0 := v.ToCell(r.Left(), r.Top())
	x1, y1 := v.ToCell(r.Right(), r.Bottom())
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Canvas draws world-space shapes onto a screen buffer.
type Canvas struct {
	Viewport
	screen *core.Screen
}

// NewCanvas creates a canvas covering the whole screen.
func NewCanvas(dst *core.Screen, worldW, worldH float64) *Canvas {
	return &Canvas{
		Viewport: NewViewport(dst.Width(), dst.Height(), worldW, worldH),
		screen:   dst,
	}
}

// Screen returns the underlying buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// FillRect fills the cells covered by a world box.
func (c *Canvas) FillRect(r core.RectF, glyph rune, color core.Color) {
	c.screen.DrawRect(c.CellRect(r), glyph, color)
}

// Plot sets the cell containing a world point.
func (c *Canvas) Plot(x, y float64, glyph rune, color core.Color) {
	col, row := c.ToCell(x, y)
	c.screen.SetColored(col, row, glyph, color)
}
