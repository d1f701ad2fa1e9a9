package arkanoid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
)

func newTestPaddle() *Paddle {
	cfg := config.DefaultArkanoidConfig()
	return NewPaddle(cfg.Paddle, cfg.Screen.Width, cfg.Screen.Height)
}

func TestPaddleReset(t *testing.T) {
	p := newTestPaddle()

	assert.InDelta(t, 400, p.Rect.CenterX(), 1e-9)
	assert.InDelta(t, 570, p.Rect.Top(), 1e-9)
	assert.InDelta(t, 100, p.Rect.W, 1e-9)
	assert.False(t, p.HasLaser)
	assert.False(t, p.HasGlue)
}

func TestPaddleMovementIsClamped(t *testing.T) {
	p := newTestPaddle()

	for range 200 {
		p.Update(-1)
	}
	assert.Zero(t, p.Rect.Left())

	for range 200 {
		p.Update(1)
	}
	assert.InDelta(t, 800, p.Rect.Right(), 1e-9)
}

func TestPaddleGrowExpiryPreservesCentre(t *testing.T) {
	p := newTestPaddle()
	p.Rect.SetCenterX(300)

	require.NoError(t, p.ActivatePowerUp(KindGrow))
	assert.InDelta(t, 150, p.Rect.W, 1e-9)
	assert.InDelta(t, 300, p.Rect.CenterX(), 1e-9)

	for range 599 {
		p.Update(0)
	}
	assert.True(t, p.Grown(), "grow should last 600 frames")

	p.Update(0)
	assert.False(t, p.Grown())
	assert.InDelta(t, 100, p.Rect.W, 1e-9)
	assert.InDelta(t, 300, p.Rect.CenterX(), 1e-9)
}

func TestPaddleGrowRefreshDoesNotResizeTwice(t *testing.T) {
	p := newTestPaddle()

	require.NoError(t, p.ActivatePowerUp(KindGrow))
	for range 100 {
		p.Update(0)
	}
	require.NoError(t, p.ActivatePowerUp(KindGrow))

	assert.InDelta(t, 150, p.Rect.W, 1e-9)
	assert.Equal(t, 600, p.Timer(KindGrow))
}

func TestPaddleLaserAndGlueExpire(t *testing.T) {
	p := newTestPaddle()

	require.NoError(t, p.ActivatePowerUp(KindLaser))
	require.NoError(t, p.ActivatePowerUp(KindGlue))
	assert.True(t, p.HasLaser)
	assert.True(t, p.HasGlue)

	for range 600 {
		p.Update(0)
	}
	assert.False(t, p.HasLaser)
	assert.False(t, p.HasGlue)
	assert.Zero(t, p.Timer(KindLaser))
}

func TestPaddleRejectsNonPaddleKinds(t *testing.T) {
	for _, kind := range []PowerUpKind{KindSlow, KindMultiBall, KindShield} {
		t.Run(kind.String(), func(t *testing.T) {
			p := newTestPaddle()
			before := *p

			err := p.ActivatePowerUp(kind)
			require.ErrorIs(t, err, ErrNotPaddleEffect)
			assert.Equal(t, before.Rect, p.Rect)
			assert.Zero(t, p.Timer(kind))
		})
	}
}
