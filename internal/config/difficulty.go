package config

import "math"

// LevelParams is the resolved set of level-dependent parameters.
type LevelParams struct {
	Level      int
	Rows       int
	GapChance  float64
	DropChance float64
	BallSpeed  float64
	Pool       []string
}

// DifficultyManager derives level-dependent game parameters.
type DifficultyManager struct {
	cfg  DifficultyConfig
	ball BallConfig
	pool PowerUpConfig
	max  int
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg ArkanoidConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:  cfg.Difficulty,
		ball: cfg.Ball,
		pool: cfg.PowerUps,
		max:  cfg.Gameplay.MaxLevel,
	}
}

// MaxLevel returns the last playable level.
func (d *DifficultyManager) MaxLevel() int {
	return d.max
}

// Rows returns the number of brick rows for a level.
func (d *DifficultyManager) Rows(level int) int {
	return min(d.cfg.BaseRows+level/d.cfg.RowEvery, d.cfg.MaxRows)
}

// GapChance returns the probability that a wall cell is left empty.
func (d *DifficultyManager) GapChance(level int) float64 {
	if level < d.cfg.GapFromLevel {
		return 0
	}
	return d.cfg.GapChance
}

// DropChance returns the probability that a destroyed brick drops a power-up.
func (d *DifficultyManager) DropChance(level int) float64 {
	return math.Min(d.cfg.BaseDropChance+d.cfg.DropPerLevel*float64(level), d.cfg.MaxDropChance)
}

// BallSpeed returns the base speed of balls created at the given level.
// The first level keeps the configured base speed.
func (d *DifficultyManager) BallSpeed(level int) float64 {
	if level <= 1 {
		return d.ball.BaseSpeed
	}
	return math.Min(d.ball.BaseSpeed+d.cfg.SpeedPerLevel*float64(level), d.ball.MaxSpeed)
}

// Pool returns the power-up kind names that may drop at the given level.
func (d *DifficultyManager) Pool(level int) []string {
	pool := make([]string, 0, len(d.pool.BasePool)+len(d.pool.AdvancedPool))
	pool = append(pool, d.pool.BasePool...)
	if level >= d.cfg.AdvancedPoolFrom {
		pool = append(pool, d.pool.AdvancedPool...)
	}
	return pool
}

// Params resolves every level-dependent parameter at once.
func (d *DifficultyManager) Params(level int) LevelParams {
	return LevelParams{
		Level:      level,
		Rows:       d.Rows(level),
		GapChance:  d.GapChance(level),
		DropChance: d.DropChance(level),
		BallSpeed:  d.BallSpeed(level),
		Pool:       d.Pool(level),
	}
}
