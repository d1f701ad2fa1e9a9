package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// BallStatus tells the session whether a ball is still in play.
type BallStatus uint8

const (
	BallPlaying BallStatus = iota
	BallLost
)

// Collision reports what a ball bounced off during an update.
type Collision uint8

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionPaddle
)

// String returns a short name for logs.
func (c Collision) String() string {
	switch c {
	case CollisionWall:
		return "wall"
	case CollisionPaddle:
		return "paddle"
	default:
		return "none"
	}
}

// Ball is a single ball. Several may be in play at once.
type Ball struct {
	Rect      core.RectF
	VX, VY    float64
	BaseSpeed float64
	Glued     bool
	Slowed    bool

	slowFrames int
	cfg        config.BallConfig
	screenW    float64
	screenH    float64
	rng        *SimpleRNG
	dead       bool
}

// NewBall creates a glued ball with the given base speed.
func NewBall(cfg config.BallConfig, screenW, screenH, baseSpeed float64, rng *SimpleRNG) *Ball {
	b := &Ball{
		Rect:      core.NewRectF(0, 0, cfg.Size, cfg.Size),
		BaseSpeed: baseSpeed,
		Glued:     true,
		cfg:       cfg,
		screenW:   screenW,
		screenH:   screenH,
		rng:       rng,
	}
	b.Rect.SetCenter(screenW/2, screenH/2)
	b.launchVelocity()
	return b
}

// launchVelocity sets the upward launch vector with a random horizontal sign.
// A slowed ball launches at half speed so slow expiry restores BaseSpeed.
func (b *Ball) launchVelocity() {
	s := b.Speed()
	b.VX = s * b.rng.Sign()
	b.VY = -s
}

// follow sits the ball on top of the paddle centre.
func (b *Ball) follow(p *Paddle) {
	b.Rect.SetCenterX(p.Rect.CenterX())
	b.Rect.SetBottom(p.Rect.Top())
}

// Update advances the ball one frame.
func (b *Ball) Update(p *Paddle, launch bool) (BallStatus, Collision) {
	if b.Glued {
		b.follow(p)
		if launch {
			b.Glued = false
			b.launchVelocity()
		}
		return BallPlaying, CollisionNone
	}

	if b.Slowed {
		b.slowFrames--
		if b.slowFrames <= 0 {
			b.VX *= 2
			b.VY *= 2
			b.Slowed = false
			b.slowFrames = 0
		}
	}

	b.Rect.X += b.VX
	b.Rect.Y += b.VY

	hit := CollisionNone
	if b.Rect.Top() <= 0 {
		b.VY = -b.VY
		b.Rect.Y = 0
		hit = CollisionWall
	}
	if b.Rect.Left() <= 0 {
		b.VX = -b.VX
		b.Rect.X = 0
		hit = CollisionWall
	}
	if b.Rect.Right() >= b.screenW {
		b.VX = -b.VX
		b.Rect.X = b.screenW - b.Rect.W
		hit = CollisionWall
	}

	if b.VY > 0 && b.Rect.Intersects(p.Rect) {
		if p.HasGlue {
			b.Glued = true
		}
		b.bounceOff(p)
		hit = CollisionPaddle
	}

	if b.Rect.Top() > b.screenH {
		return BallLost, CollisionNone
	}
	return BallPlaying, hit
}

// bounceOff sends the ball back up at an angle proportional to where it hit
// the paddle, keeping the speed magnitude fixed.
func (b *Ball) bounceOff(p *Paddle) {
	offset := (b.Rect.CenterX() - p.Rect.CenterX()) / (p.Rect.W / 2)
	offset = core.ClampF(offset, -1, 1)
	angle := offset * b.cfg.MaxBounceAngle * math.Pi / 180

	speed := b.Speed()
	b.VX = speed * math.Sin(angle)
	b.VY = -speed * math.Cos(angle)
	b.Rect.SetBottom(p.Rect.Top())
}

// Speed returns the magnitude the ball should travel at right now.
func (b *Ball) Speed() float64 {
	if b.Slowed {
		return b.BaseSpeed / 2
	}
	return b.BaseSpeed
}

// ActivateSlow halves the velocity for a fixed number of frames.
// It does nothing while the ball is already slowed.
func (b *Ball) ActivateSlow() {
	if b.Slowed {
		return
	}
	b.VX /= 2
	b.VY /= 2
	b.Slowed = true
	b.slowFrames = b.cfg.SlowFrames
}

// SlowFrames returns the remaining slow frames.
func (b *Ball) SlowFrames() int {
	return b.slowFrames
}

// Dead reports whether the ball left the playfield.
func (b *Ball) Dead() bool {
	return b.dead
}

// Draw renders the ball at its centre.
func (b *Ball) Draw(c *Canvas) {
	c.Plot(b.Rect.CenterX(), b.Rect.CenterY(), '●', core.ColorLightGray)
}
