package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Brick is a static block destroyed by any hit.
type Brick struct {
	Rect  core.RectF
	Color core.Color
	dead  bool
}

// Dead reports whether the brick was hit this frame.
func (b *Brick) Dead() bool {
	return b.dead
}

// Draw renders the brick as a solid block.
func (b *Brick) Draw(c *Canvas) {
	c.FillRect(b.Rect, '█', b.Color)
}

// BuildWall lays out a centred wall of bricks row by row, top-left first.
// Each cell is skipped with probability gapChance.
func BuildWall(cfg config.BrickConfig, screenW float64, rows int, gapChance float64, rng *SimpleRNG) []*Brick {
	cols := cfg.Columns
	totalW := float64(cols)*(cfg.Width+cfg.Padding) - cfg.Padding
	startX := math.Floor((screenW - totalW) / 2)

	bricks := make([]*Brick, 0, rows*cols)
	for row := range rows {
		rgb := cfg.Colors[row%len(cfg.Colors)]
		color := core.RGB(rgb[0], rgb[1], rgb[2])
		for col := range cols {
			if gapChance > 0 && rng.Float64() < gapChance {
				continue
			}
			bricks = append(bricks, &Brick{
				Rect: core.NewRectF(
					startX+float64(col)*(cfg.Width+cfg.Padding),
					cfg.Top+float64(row)*(cfg.Height+cfg.Padding),
					cfg.Width,
					cfg.Height,
				),
				Color: color,
			})
		}
	}
	return bricks
}
