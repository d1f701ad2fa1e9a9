// Package arkanoid implements the brick-breaking simulation: paddle, balls,
// bricks, power-ups, lasers and particles, driven by a five-phase state
// machine at a fixed tick.
package arkanoid

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Phase is a state of the game state machine.
type Phase uint8

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhaseLevelComplete
	PhaseWin
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePlaying:
		return "playing"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseWin:
		return "win"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game is a single play session. It owns every entity exclusively.
type Game struct {
	cfg        config.ArkanoidConfig
	difficulty *config.DifficultyManager
	pools      [][]PowerUpKind // Drop pool per level, index 0 unused
	runtime    core.RuntimeConfig
	rng        *SimpleRNG
	screenW    float64
	screenH    float64

	paddle    *Paddle
	balls     []*Ball
	bricks    []*Brick
	powerUps  []*PowerUp
	lasers    []*Laser
	particles []*Particle
	fireworks []*Firework

	phase              Phase
	score              int
	lives              int
	level              int
	completedLevel     int // Level shown on the level-complete overlay
	message            string
	messageTimer       int
	levelCompleteTimer int
	fireworkTimer      int
	paused             bool
	muted              bool
	tick               uint64

	events []core.Event
}

// New creates a game from a validated constants table. The power-up pools
// are resolved here, so an unknown kind name is reported as ErrUnknownKind.
func New(cfg config.ArkanoidConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("arkanoid: %w", err)
	}

	d := config.NewDifficultyManager(cfg)
	pools := make([][]PowerUpKind, d.MaxLevel()+1)
	for level := 1; level <= d.MaxLevel(); level++ {
		for _, name := range d.Pool(level) {
			kind, err := ParseKind(name)
			if err != nil {
				return nil, fmt.Errorf("arkanoid: level %d power-up pool: %w", level, err)
			}
			pools[level] = append(pools[level], kind)
		}
	}

	g := &Game{
		cfg:        cfg,
		difficulty: d,
		pools:      pools,
		screenW:    cfg.Screen.Width,
		screenH:    cfg.Screen.Height,
	}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "arkanoid"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Arkanoid"
}

// Reset reseeds the RNG and returns to the title screen with a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = NewSimpleRNG(runtime.Seed)
	g.paddle = NewPaddle(g.cfg.Paddle, g.screenW, g.screenH)
	g.tick = 0
	g.paused = false
	g.newSession()
	g.phase = PhaseTitle
}

// newSession restores score, lives, level, wall and entities to a new game.
func (g *Game) newSession() {
	g.score = 0
	g.lives = g.cfg.Gameplay.StartLives
	g.level = 1
	g.completedLevel = 0
	g.paddle.Reset()
	g.balls = []*Ball{g.newGluedBall()}
	g.bricks = g.buildWall()
	g.powerUps = nil
	g.lasers = nil
	g.particles = nil
	g.fireworks = nil
	g.message = ""
	g.messageTimer = 0
	g.levelCompleteTimer = 0
	g.fireworkTimer = 0
}

func (g *Game) buildWall() []*Brick {
	return BuildWall(g.cfg.Bricks, g.screenW, g.difficulty.Rows(g.level), g.difficulty.GapChance(g.level), g.rng)
}

// newGluedBall creates a ball for the current level resting on the paddle.
func (g *Game) newGluedBall() *Ball {
	b := NewBall(g.cfg.Ball, g.screenW, g.screenH, g.difficulty.BallSpeed(g.level), g.rng)
	b.follow(g.paddle)
	return b
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if in.Has(core.ActionMute) {
		g.muted = !g.muted
	}

	if in.Has(core.ActionPause) && g.phase == PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.tick++
	launch := in.Has(core.ActionLaunch)

	switch g.phase {
	case PhaseTitle:
		if launch {
			g.newSession()
			g.phase = PhasePlaying
		}

	case PhasePlaying:
		if in.Has(core.ActionFire) {
			g.fireLasers()
		}
		g.stepPlaying(in.Horizontal(), launch)

	case PhaseLevelComplete:
		g.levelCompleteTimer--
		if launch || g.levelCompleteTimer <= 0 {
			g.levelCompleteTimer = 0
			g.phase = PhasePlaying
		}

	case PhaseGameOver, PhaseWin:
		if launch {
			g.newSession()
			g.phase = PhaseTitle
		}
	}

	if g.messageTimer > 0 {
		g.messageTimer--
	}

	updateAll(g.particles)
	g.particles = sweep(g.particles)

	if g.phase == PhaseWin {
		g.stepFireworks()
	}

	return g.result()
}

// stepPlaying runs one frame of play in a fixed order: paddle, balls, life
// check, ball-brick hits, power-ups, lasers, level-clear check.
func (g *Game) stepPlaying(move int, launch bool) {
	g.paddle.Update(move)

	for _, b := range g.balls {
		status, hit := b.Update(g.paddle, launch)
		if status == BallLost {
			b.dead = true
			continue
		}
		if hit != CollisionNone {
			g.emit(core.EventBounce)
			g.spawnParticles(b.Rect.CenterX(), b.Rect.CenterY(), core.ColorYellow, g.cfg.Effects.BounceSparks)
		}
	}
	g.balls = sweep(g.balls)

	if len(g.balls) == 0 {
		if g.loseLife() {
			return
		}
	}

	g.resolveBallBricks()
	g.resolvePowerUps()
	g.resolveLasers()

	g.bricks = sweep(g.bricks)
	g.powerUps = sweep(g.powerUps)
	g.lasers = sweep(g.lasers)

	if len(g.bricks) == 0 {
		g.nextLevel()
	}
}

// loseLife takes a life after the last ball is gone. It reports whether the
// game is over.
func (g *Game) loseLife() bool {
	g.lives = max(g.lives-1, 0)
	if g.lives == 0 {
		g.phase = PhaseGameOver
		g.emit(core.EventGameOver)
		return true
	}
	g.paddle.Reset()
	g.balls = []*Ball{g.newGluedBall()}
	return false
}

// nextLevel adds the level bonus of 100 x completed level to the score and
// sets up the next wall, or ends the game with a win after the last level.
// The bonus is credited, not only shown on the level-complete overlay.
func (g *Game) nextLevel() {
	g.completedLevel = g.level
	g.score += g.cfg.Gameplay.LevelBonus * g.completedLevel
	g.powerUps = nil
	g.lasers = nil

	if g.level >= g.difficulty.MaxLevel() {
		g.phase = PhaseWin
		g.fireworkTimer = 0
		return
	}

	g.level++
	g.phase = PhaseLevelComplete
	g.levelCompleteTimer = g.cfg.Gameplay.LevelCompleteFrames
	g.paddle.Reset()
	g.balls = []*Ball{g.newGluedBall()}
	g.bricks = g.buildWall()
}

// fireLasers shoots a pair of bolts from the paddle cannons.
func (g *Game) fireLasers() {
	if !g.paddle.HasLaser {
		return
	}
	cx, top := g.paddle.Rect.CenterX(), g.paddle.Rect.Top()
	g.lasers = append(g.lasers,
		NewLaser(g.cfg.Lasers, cx-g.cfg.Lasers.Offset, top),
		NewLaser(g.cfg.Lasers, cx+g.cfg.Lasers.Offset, top),
	)
	g.emit(core.EventLaserFire)
}

func (g *Game) stepFireworks() {
	g.fireworkTimer--
	if g.fireworkTimer <= 0 {
		fw := g.cfg.Effects.Fireworks
		g.fireworks = append(g.fireworks, NewFirework(fw, g.cfg.Effects.ParticleShrink, g.screenW, g.screenH, g.rng))
		g.fireworkTimer = g.rng.IntRange(fw.MinDelay, fw.MaxDelay)
	}
	updateAll(g.fireworks)
	g.fireworks = sweep(g.fireworks)
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

func (g *Game) showMessage(msg string) {
	g.message = msg
	g.messageTimer = g.cfg.PowerUps.MessageFrames
}

func (g *Game) spawnParticles(x, y float64, color core.Color, burst config.BurstConfig) {
	g.particles = append(g.particles, Burst(x, y, color, burst, g.cfg.Effects.ParticleShrink, g.rng)...)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{
		State:  g.State(),
		Events: slices.Clone(g.events),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.level,
		Phase:    g.phase.String(),
		GameOver: g.phase == PhaseGameOver || g.phase == PhaseWin,
		Paused:   g.paused,
	}
}

// Phase returns the current state machine phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Muted reports whether the player has switched sound off.
func (g *Game) Muted() bool {
	return g.muted
}

// SetMuted sets the mute flag without going through input.
func (g *Game) SetMuted(muted bool) {
	g.muted = muted
}

// MuteButton returns the world rectangle of the clickable mute toggle.
func (g *Game) MuteButton() core.RectF {
	return core.NewRectF(10, g.screenH-40, 80, 30)
}

// WorldSize returns the playfield dimensions in world pixels.
func (g *Game) WorldSize() (float64, float64) {
	return g.screenW, g.screenH
}
