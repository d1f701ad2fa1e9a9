package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Removal during these passes is mark-and-sweep: entities are flagged dead
// while iterating and the caller compacts the collections afterwards.

// firstBrickHit returns the first live brick overlapping r, in wall order.
func (g *Game) firstBrickHit(r core.RectF) *Brick {
	for _, br := range g.bricks {
		if !br.dead && r.Intersects(br.Rect) {
			return br
		}
	}
	return nil
}

// resolveBallBricks lets every ball break at most one brick per frame.
func (g *Game) resolveBallBricks() {
	for _, b := range g.balls {
		br := g.firstBrickHit(b.Rect)
		if br == nil {
			continue
		}
		b.VY = -b.VY
		g.breakBrick(br, g.cfg.Effects.BrickBurst)
		g.rollDrop(br)
	}
}

// resolveLasers moves the bolts and lets each one break a single brick.
func (g *Game) resolveLasers() {
	for _, l := range g.lasers {
		l.Update()
		if l.Rect.Bottom() < 0 {
			l.dead = true
			continue
		}
		br := g.firstBrickHit(l.Rect)
		if br == nil {
			continue
		}
		l.dead = true
		g.breakBrick(br, g.cfg.Effects.LaserBurst)
	}
}

func (g *Game) breakBrick(br *Brick, burst config.BurstConfig) {
	br.dead = true
	g.score += g.cfg.Gameplay.BrickPoints * g.level
	g.spawnParticles(br.Rect.CenterX(), br.Rect.CenterY(), br.Color, burst)
	g.emit(core.EventBrickBreak)
}

// rollDrop may release a power-up whose top-left corner is the brick centre.
func (g *Game) rollDrop(br *Brick) {
	if g.rng.Float64() >= g.difficulty.DropChance(g.level) {
		return
	}
	pool := g.pools[min(g.level, len(g.pools)-1)]
	if len(pool) == 0 {
		return
	}
	kind := pool[g.rng.Intn(len(pool))]
	g.powerUps = append(g.powerUps, NewPowerUp(g.cfg.PowerUps, kind, br.Rect.CenterX(), br.Rect.CenterY()))
}

// resolvePowerUps moves the capsules and applies the ones the paddle catches.
func (g *Game) resolvePowerUps() {
	for _, p := range g.powerUps {
		p.Update()
		switch {
		case p.Rect.Top() > g.screenH:
			p.dead = true
		case p.Rect.Intersects(g.paddle.Rect):
			g.applyPowerUp(p.Kind)
			p.dead = true
		}
	}
}

// applyPowerUp applies a caught capsule and shows its message.
func (g *Game) applyPowerUp(kind PowerUpKind) {
	g.showMessage(kind.Info().Message)

	switch kind {
	case KindGrow, KindLaser, KindGlue:
		// Only paddle kinds reach this branch.
		_ = g.paddle.ActivatePowerUp(kind)
	case KindSlow:
		for _, b := range g.balls {
			b.ActivateSlow()
		}
	case KindMultiBall:
		g.spawnMultiBall()
	case KindShield:
		g.lives = min(g.lives+1, g.cfg.Gameplay.MaxLives)
	}
}

// spawnMultiBall adds two free balls at the first ball's position, one
// heading up-left and one up-right at the level's base speed.
func (g *Game) spawnMultiBall() {
	if len(g.balls) == 0 {
		return
	}
	src := g.balls[0]
	speed := g.difficulty.BallSpeed(g.level)
	diag := speed * math.Sqrt2 / 2

	for _, dir := range []float64{-1, 1} {
		b := NewBall(g.cfg.Ball, g.screenW, g.screenH, speed, g.rng)
		b.Rect.SetCenter(src.Rect.CenterX(), src.Rect.CenterY())
		b.Glued = false
		b.VX = dir * diag
		b.VY = -diag
		g.balls = append(g.balls, b)
	}
}
