package arkanoid

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// ErrNotPaddleEffect is returned when a power-up that does not act on the
// paddle is passed to Paddle.ActivatePowerUp.
var ErrNotPaddleEffect = errors.New("power-up is not a paddle effect")

// paddleEffects are the timed effects owned by the paddle, in update order.
var paddleEffects = []PowerUpKind{KindGrow, KindLaser, KindGlue}

// Paddle is the player-controlled bat at the bottom of the playfield.
type Paddle struct {
	Rect     core.RectF
	HasLaser bool
	HasGlue  bool

	timers  map[PowerUpKind]int // Remaining frames per active effect
	cfg     config.PaddleConfig
	screenW float64
	screenH float64
}

// NewPaddle creates a paddle in its reset position.
func NewPaddle(cfg config.PaddleConfig, screenW, screenH float64) *Paddle {
	p := &Paddle{
		cfg:     cfg,
		screenW: screenW,
		screenH: screenH,
		timers:  make(map[PowerUpKind]int, len(paddleEffects)),
	}
	p.Reset()
	return p
}

// Reset restores width, position and flags and clears every effect timer.
func (p *Paddle) Reset() {
	p.Rect = core.NewRectF(0, p.screenH-p.cfg.BottomOffset, p.cfg.Width, p.cfg.Height)
	p.Rect.SetCenterX(p.screenW / 2)
	p.HasLaser = false
	p.HasGlue = false
	clear(p.timers)
}

// Update moves the paddle by move (-1, 0 or +1) times its speed, keeps it on
// screen, then ticks the effect timers.
func (p *Paddle) Update(move int) {
	p.Rect.X += float64(move) * p.cfg.Speed
	p.Rect.X = core.ClampF(p.Rect.X, 0, p.screenW-p.Rect.W)

	for _, kind := range paddleEffects {
		t := p.timers[kind]
		if t <= 0 {
			continue
		}
		t--
		p.timers[kind] = t
		if t == 0 {
			p.expire(kind)
		}
	}
}

func (p *Paddle) expire(kind PowerUpKind) {
	switch kind {
	case KindGrow:
		p.resize(p.cfg.Width)
	case KindLaser:
		p.HasLaser = false
	case KindGlue:
		p.HasGlue = false
	}
}

// resize changes the width around the current centre.
func (p *Paddle) resize(width float64) {
	cx := p.Rect.CenterX()
	p.Rect.W = width
	p.Rect.SetCenterX(cx)
}

// ActivatePowerUp starts or refreshes a timed paddle effect.
// Only grow, laser and glue act on the paddle.
func (p *Paddle) ActivatePowerUp(kind PowerUpKind) error {
	switch kind {
	case KindGrow:
		if p.timers[KindGrow] <= 0 {
			p.resize(p.cfg.GrownWidth)
		}
	case KindLaser:
		p.HasLaser = true
	case KindGlue:
		p.HasGlue = true
	default:
		return fmt.Errorf("%w: %s", ErrNotPaddleEffect, kind)
	}
	p.timers[kind] = p.cfg.EffectFrames
	return nil
}

// Timer returns the remaining frames of an effect, or 0 if inactive.
func (p *Paddle) Timer(kind PowerUpKind) int {
	return p.timers[kind]
}

// Grown reports whether the grow effect is active.
func (p *Paddle) Grown() bool {
	return p.timers[KindGrow] > 0
}

// Draw renders the paddle, tinted while an effect is active.
func (p *Paddle) Draw(c *Canvas) {
	color := core.ColorLightGray
	switch {
	case p.HasLaser:
		color = KindLaser.Info().Color
	case p.HasGlue:
		color = KindGlue.Info().Color
	}
	c.FillRect(p.Rect, '▀', color)
}
