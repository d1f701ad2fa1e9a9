package arkanoid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
)

func newTestBall(speed float64) *Ball {
	cfg := config.DefaultArkanoidConfig()
	return NewBall(cfg.Ball, cfg.Screen.Width, cfg.Screen.Height, speed, NewSimpleRNG(7))
}

// dropOnPaddle positions a free ball so it lands on the paddle at the given
// horizontal offset from the paddle centre during its next update.
func dropOnPaddle(b *Ball, p *Paddle, offset float64) {
	b.Glued = false
	b.Rect.SetCenterX(p.Rect.CenterX() + offset)
	b.Rect.Y = p.Rect.Top() - b.Rect.H - 3
	b.VX = 0
	b.VY = 5
}

func TestBallGluedFollowsPaddle(t *testing.T) {
	p := newTestPaddle()
	b := newTestBall(6)
	p.Rect.X = 120

	status, hit := b.Update(p, false)

	assert.Equal(t, BallPlaying, status)
	assert.Equal(t, CollisionNone, hit)
	assert.True(t, b.Glued)
	assert.InDelta(t, p.Rect.CenterX(), b.Rect.CenterX(), 1e-9)
	assert.InDelta(t, p.Rect.Top(), b.Rect.Bottom(), 1e-9)
}

func TestBallLaunch(t *testing.T) {
	p := newTestPaddle()
	b := newTestBall(6)

	b.Update(p, true)

	assert.False(t, b.Glued)
	assert.InDelta(t, 6, math.Abs(b.VX), 1e-9)
	assert.InDelta(t, -6, b.VY, 1e-9)
}

func TestBallPaddleBounceKeepsSpeed(t *testing.T) {
	for _, offset := range []float64{-50, -37.5, -20, -5, 0, 3, 19, 33, 49.9} {
		p := newTestPaddle()
		b := newTestBall(6)
		dropOnPaddle(b, p, offset)

		status, hit := b.Update(p, false)

		assert.Equal(t, BallPlaying, status)
		assert.Equal(t, CollisionPaddle, hit, "offset %v", offset)
		assert.InDelta(t, 6, math.Hypot(b.VX, b.VY), 1e-9, "offset %v", offset)
		assert.Less(t, b.VY, 0.0)
		assert.InDelta(t, p.Rect.Top(), b.Rect.Bottom(), 1e-9)
		if offset != 0 {
			assert.Equal(t, math.Signbit(offset), math.Signbit(b.VX), "ball should leave towards the side it hit")
		}
	}
}

func TestBallPaddleBounceMaxAngle(t *testing.T) {
	p := newTestPaddle()
	b := newTestBall(6)
	dropOnPaddle(b, p, 50)

	b.Update(p, false)

	angle := math.Atan2(b.VX, -b.VY) * 180 / math.Pi
	assert.InDelta(t, 60, angle, 1e-6)
}

func TestBallGluePaddleCatches(t *testing.T) {
	p := newTestPaddle()
	_ = p.ActivatePowerUp(KindGlue)
	b := newTestBall(6)
	dropOnPaddle(b, p, 10)

	_, hit := b.Update(p, false)

	assert.Equal(t, CollisionPaddle, hit)
	assert.True(t, b.Glued)
}

func TestBallIgnoresPaddleWhileRising(t *testing.T) {
	p := newTestPaddle()
	b := newTestBall(6)
	dropOnPaddle(b, p, 0)
	b.VY = -1
	b.Rect.Y = p.Rect.Top() - 5

	_, hit := b.Update(p, false)
	assert.Equal(t, CollisionNone, hit)
	assert.Less(t, b.VY, 0.0)
}

func TestBallWallReflection(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		vx, vy float64
		wantVX float64
		wantVY float64
		wantX  float64
		wantY  float64
		checkX bool
		checkY bool
	}{
		{name: "left", x: 3, y: 300, vx: -6, vy: -6, wantVX: 6, wantVY: -6, wantX: 0, checkX: true},
		{name: "right", x: 777, y: 300, vx: 6, vy: -6, wantVX: -6, wantVY: -6, wantX: 780, checkX: true},
		{name: "top", x: 400, y: 2, vx: 6, vy: -6, wantVX: 6, wantVY: 6, wantY: 0, checkY: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPaddle()
			b := newTestBall(6)
			b.Glued = false
			b.Rect.X, b.Rect.Y = tt.x, tt.y
			b.VX, b.VY = tt.vx, tt.vy

			status, hit := b.Update(p, false)

			assert.Equal(t, BallPlaying, status)
			assert.Equal(t, CollisionWall, hit)
			assert.InDelta(t, tt.wantVX, b.VX, 1e-9)
			assert.InDelta(t, tt.wantVY, b.VY, 1e-9)
			if tt.checkX {
				assert.InDelta(t, tt.wantX, b.Rect.X, 1e-9)
			}
			if tt.checkY {
				assert.InDelta(t, tt.wantY, b.Rect.Y, 1e-9)
			}
		})
	}
}

func TestBallLostBelowBottom(t *testing.T) {
	p := newTestPaddle()
	b := newTestBall(6)
	b.Glued = false
	b.Rect.X, b.Rect.Y = 100, 598
	b.VX, b.VY = 0, 6

	status, hit := b.Update(p, false)

	assert.Equal(t, BallLost, status)
	assert.Equal(t, CollisionNone, hit)
}

func TestBallSlow(t *testing.T) {
	p := newTestPaddle()
	b := newTestBall(6)
	b.Glued = false
	b.Rect.SetCenter(400, 100)
	b.VX, b.VY = 6, 0

	b.ActivateSlow()
	assert.True(t, b.Slowed)
	assert.InDelta(t, 3, b.VX, 1e-9)
	assert.Equal(t, 600, b.SlowFrames())

	b.ActivateSlow()
	assert.InDelta(t, 3, b.VX, 1e-9, "slow must not stack")

	for range 599 {
		b.Update(p, false)
	}
	assert.True(t, b.Slowed)
	assert.InDelta(t, 3, math.Abs(b.VX), 1e-9)

	b.Update(p, false)
	assert.False(t, b.Slowed)
	assert.InDelta(t, 6, math.Abs(b.VX), 1e-9)
}

func TestSlowedBallBouncesAtHalfSpeed(t *testing.T) {
	p := newTestPaddle()
	b := newTestBall(6)
	b.ActivateSlow()
	dropOnPaddle(b, p, 25)

	_, hit := b.Update(p, false)

	assert.Equal(t, CollisionPaddle, hit)
	assert.True(t, b.Slowed)
	assert.InDelta(t, 3, math.Hypot(b.VX, b.VY), 1e-9)
}

func TestSlowedGluedBallLaunchesAtHalfSpeed(t *testing.T) {
	p := newTestPaddle()
	b := newTestBall(6)
	b.ActivateSlow()

	b.Update(p, true)
	require.False(t, b.Glued)
	assert.InDelta(t, 3, math.Abs(b.VX), 1e-9)
	assert.InDelta(t, -3, b.VY, 1e-9)

	// Keep the ball in open space until the slow effect runs out.
	for b.Slowed {
		b.Rect.SetCenter(400, 300)
		b.Update(p, false)
	}
	assert.InDelta(t, 6, math.Abs(b.VX), 1e-9)
	assert.InDelta(t, -6, b.VY, 1e-9)
}
