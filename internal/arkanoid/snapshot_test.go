package arkanoid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

func hashOf(t *testing.T, snap Snapshot) uint64 {
	t.Helper()
	h, err := snap.Hash()
	require.NoError(t, err)
	return h
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t, 2)
	snap := g.Snapshot()

	snap.Bricks[0].X = -100
	snap.Balls[0].Glued = false

	assert.InDelta(t, 2, g.bricks[0].Rect.X, 1e-9)
	assert.True(t, g.balls[0].Glued)
}

func TestSnapshotEncodeDecode(t *testing.T) {
	g := newTestGame(t, 2)
	startPlaying(t, g)
	g.Step(core.NewInputFrame(core.ActionLaunch))
	for range 20 {
		g.Step(idle)
	}
	snap := g.Snapshot()

	data, err := snap.Encode()
	require.NoError(t, err)

	got, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, snap.Tick, got.Tick)
	assert.Equal(t, snap.Paddle, got.Paddle)
	assert.Equal(t, snap.Balls, got.Balls)
	assert.Equal(t, snap.Bricks, got.Bricks)
	assert.Equal(t, snap.RNGState, got.RNGState)
	assert.Equal(t, hashOf(t, snap), hashOf(t, got))
}

func TestDecodeSnapshotRejectsGarbage(t *testing.T) {
	_, err := DecodeSnapshot([]byte{0xc1})
	require.Error(t, err)
}

func TestSnapshotHashTracksState(t *testing.T) {
	g := newTestGame(t, 2)
	before := g.Snapshot()
	again := g.Snapshot()
	assert.Equal(t, hashOf(t, before), hashOf(t, again))

	startPlaying(t, g)
	after := g.Snapshot()
	assert.NotEqual(t, hashOf(t, before), hashOf(t, after))
}
