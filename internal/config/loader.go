package config

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Load decodes and validates the embedded constants table.
// If the embedded document cannot be decoded, the hard-coded defaults are used.
func Load() (ArkanoidConfig, error) {
	cfg, err := decode(defaultArkanoidYAML)
	if err != nil {
		cfg = DefaultArkanoidConfig() // Fallback to hardcoded if embed fails
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: embedded defaults: %w", err)
	}
	return cfg, nil
}

// Parse decodes a constants document and validates it. Unknown keys are rejected.
func Parse(data []byte) (ArkanoidConfig, error) {
	cfg, err := decode(data)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func decode(data []byte) (ArkanoidConfig, error) {
	var cfg ArkanoidConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse: %w", err)
	}
	return cfg, nil
}

// Validate checks the structural sanity of the table. Power-up names are
// checked by the engine, which owns the closed set of kinds.
func (c ArkanoidConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen: size must be positive, got %vx%v", c.Screen.Width, c.Screen.Height)

	check(c.Paddle.Width > 0 && c.Paddle.Height > 0, "paddle: size must be positive")
	check(c.Paddle.GrownWidth >= c.Paddle.Width, "paddle: grown_width %v is below width %v", c.Paddle.GrownWidth, c.Paddle.Width)
	check(c.Paddle.Speed > 0, "paddle: speed must be positive")
	check(c.Paddle.EffectFrames > 0, "paddle: effect_frames must be positive")

	check(c.Ball.Size > 0, "ball: size must be positive")
	check(c.Ball.BaseSpeed > 0 && c.Ball.BaseSpeed <= c.Ball.MaxSpeed, "ball: base_speed %v must be in (0, max_speed %v]", c.Ball.BaseSpeed, c.Ball.MaxSpeed)
	check(c.Ball.MaxBounceAngle > 0 && c.Ball.MaxBounceAngle < 90, "ball: max_bounce_angle %v must be in (0, 90)", c.Ball.MaxBounceAngle)
	check(c.Ball.SlowFrames > 0, "ball: slow_frames must be positive")

	check(c.Bricks.Width > 0 && c.Bricks.Height > 0, "bricks: size must be positive")
	check(c.Bricks.Columns > 0, "bricks: columns must be positive")
	check(len(c.Bricks.Colors) > 0, "bricks: at least one colour is required")

	check(c.PowerUps.Width > 0 && c.PowerUps.Height > 0, "powerups: size must be positive")
	check(c.PowerUps.FallSpeed > 0, "powerups: fall_speed must be positive")
	check(len(c.PowerUps.BasePool) > 0, "powerups: base_pool is empty")

	check(c.Lasers.Speed < 0, "lasers: speed must be negative (upward), got %v", c.Lasers.Speed)

	check(c.Gameplay.MaxLevel >= 1, "gameplay: max_level must be at least 1")
	check(c.Gameplay.StartLives >= 1 && c.Gameplay.StartLives <= c.Gameplay.MaxLives,
		"gameplay: start_lives %d must be in [1, max_lives %d]", c.Gameplay.StartLives, c.Gameplay.MaxLives)
	check(c.Gameplay.LevelCompleteFrames > 0, "gameplay: level_complete_frames must be positive")

	for name, b := range map[string]BurstConfig{
		"brick_burst":     c.Effects.BrickBurst,
		"laser_burst":     c.Effects.LaserBurst,
		"bounce_sparks":   c.Effects.BounceSparks,
		"fireworks.burst": c.Effects.Fireworks.Burst,
	} {
		check(b.Count >= 0 && b.MinSize <= b.MaxSize && b.MinSpeed <= b.MaxSpeed, "effects: %s has an inverted range", name)
	}
	check(c.Effects.ParticleShrink > 0, "effects: particle_shrink must be positive")
	fw := c.Effects.Fireworks
	check(fw.MinDelay > 0 && fw.MinDelay <= fw.MaxDelay, "effects: fireworks delay range is invalid")
	check(fw.MinBurstAt >= 0 && fw.MinBurstAt <= fw.MaxBurstAt && fw.MaxBurstAt <= 1, "effects: fireworks burst height range is invalid")

	d := c.Difficulty
	check(d.BaseRows > 0 && d.BaseRows <= d.MaxRows, "difficulty: base_rows %d must be in [1, max_rows %d]", d.BaseRows, d.MaxRows)
	check(d.RowEvery > 0, "difficulty: row_every must be positive")
	check(d.GapChance >= 0 && d.GapChance < 1, "difficulty: gap_chance must be in [0, 1)")
	check(d.BaseDropChance >= 0 && d.MaxDropChance <= 1 && d.BaseDropChance <= d.MaxDropChance, "difficulty: drop chance range is invalid")

	return errors.Join(errs...)
}
