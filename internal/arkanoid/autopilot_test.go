package arkanoid

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

func TestAutopilotStartsGame(t *testing.T) {
	g := newTestGame(t, 1)
	in := NewAutopilot().Next(g.Snapshot())
	assert.True(t, in.Has(core.ActionLaunch))
}

func TestAutopilotLaunchesGluedBall(t *testing.T) {
	g := newTestGame(t, 1)
	startPlaying(t, g)

	in := NewAutopilot().Next(g.Snapshot())
	assert.True(t, in.Has(core.ActionLaunch))
	assert.Zero(t, in.Horizontal(), "paddle is already under the glued ball")
}

func TestAutopilotChasesDescendingBall(t *testing.T) {
	g := newTestGame(t, 1)
	startPlaying(t, g)
	b := g.balls[0]
	b.Glued = false
	b.Rect.SetCenter(100, 400)
	b.VX, b.VY = 0, 5

	in := NewAutopilot().Next(g.Snapshot())
	assert.True(t, in.Has(core.ActionLeft))
	assert.False(t, in.Has(core.ActionLaunch))

	b.Rect.SetCenter(700, 400)
	in = NewAutopilot().Next(g.Snapshot())
	assert.True(t, in.Has(core.ActionRight))
}

func TestAutopilotIdlesOnEndScreens(t *testing.T) {
	g := newTestGame(t, 1)
	startPlaying(t, g)
	for range 3 {
		loseAllBalls(g)
		g.Step(idle)
	}

	in := NewAutopilot().Next(g.Snapshot())
	assert.True(t, in.Empty())
}

func TestAutopilotScores(t *testing.T) {
	g := newTestGame(t, 77)
	ap := NewAutopilot()
	for range 2000 {
		g.Step(ap.Next(g.Snapshot()))
	}
	assert.Positive(t, g.State().Score)
}
