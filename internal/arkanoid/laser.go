package arkanoid

import (
	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Laser is a bolt fired upward by the paddle.
type Laser struct {
	Rect  core.RectF
	speed float64
	dead  bool
}

// NewLaser creates a bolt centred on x whose bottom sits at y.
func NewLaser(cfg config.LaserConfig, x, y float64) *Laser {
	l := &Laser{
		Rect:  core.NewRectF(0, 0, cfg.Width, cfg.Height),
		speed: cfg.Speed,
	}
	l.Rect.SetCenterX(x)
	l.Rect.SetBottom(y)
	return l
}

// Update moves the bolt.
func (l *Laser) Update() {
	l.Rect.Y += l.speed
}

// Dead reports whether the bolt hit a brick or left the screen.
func (l *Laser) Dead() bool {
	return l.dead
}

// Draw renders the bolt.
func (l *Laser) Draw(c *Canvas) {
	c.FillRect(l.Rect, '┃', core.ColorYellow)
}
