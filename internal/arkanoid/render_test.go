package arkanoid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

func render(g *Game, w, h int) *core.Screen {
	s := core.NewScreen(w, h)
	g.Render(s)
	return s
}

func TestRenderTitle(t *testing.T) {
	g := newTestGame(t, 1)
	out := render(g, 80, 24).String()

	assert.Contains(t, out, "A R K A N O I D")
	assert.Contains(t, out, "Press SPACE to Start")
	assert.Contains(t, out, "[♪ ON]")
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, 1)
	out := render(g, 20, 8).String()

	assert.Contains(t, out, "Window too small")
}

func TestRenderPlaying(t *testing.T) {
	g := newTestGame(t, 1)
	startPlaying(t, g)
	g.score = 12345
	s := render(g, 80, 24)

	assert.Contains(t, s.Row(0), "SCORE: 12,345")
	assert.Contains(t, s.Row(0), "LEVEL: 1")
	assert.Contains(t, s.Row(0), "LIVES: 3")

	brick := s.GetCell(0, 2)
	assert.Equal(t, '█', brick.Rune)
	assert.Equal(t, core.RGB(178, 34, 34), brick.Color)

	assert.True(t, strings.ContainsRune(s.String(), '●'))
	assert.True(t, strings.ContainsRune(s.Row(22), '▀'))
}

func TestRenderIndicators(t *testing.T) {
	g := newTestGame(t, 1)
	startPlaying(t, g)
	_ = g.paddle.ActivatePowerUp(KindLaser)
	g.applyPowerUp(KindMultiBall)

	row := render(g, 80, 24).Row(1)
	assert.Contains(t, row, "BALLS: 3")
	assert.Contains(t, row, "LASER")
}

func TestRenderPausedAndMessages(t *testing.T) {
	g := newTestGame(t, 1)
	startPlaying(t, g)
	g.Step(core.NewInputFrame(core.ActionPause))
	g.showMessage("SLOW BALL")

	out := render(g, 80, 24).String()
	assert.Contains(t, out, "PAUSED")
	assert.Contains(t, out, "SLOW BALL")
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t, 1)
	startPlaying(t, g)
	for range 3 {
		loseAllBalls(g)
		g.Step(idle)
	}

	out := render(g, 80, 24).String()
	assert.Contains(t, out, "GAME OVER")
	assert.Contains(t, out, "Press SPACE to return to Title")
}

func TestMuteButtonCells(t *testing.T) {
	g := newTestGame(t, 1)
	r := g.MuteButtonCells(80, 24)

	assert.Equal(t, 1, r.X)
	assert.Equal(t, 22, r.Y)
	assert.True(t, r.Contains(3, 22))
	assert.False(t, r.Contains(40, 12))

	g.SetMuted(true)
	s := render(g, 80, 24)
	assert.Contains(t, s.Row(22), "[♪ OFF]")
	assert.Equal(t, core.ColorCrimson, s.GetCell(r.X, r.Y).Color)
}
