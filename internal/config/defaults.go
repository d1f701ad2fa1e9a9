package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultArkanoidConfig returns the hard-coded fallback used when the
// embedded table cannot be decoded. It mirrors defaults/arkanoid.yaml.
func DefaultArkanoidConfig() ArkanoidConfig {
	return ArkanoidConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:        100,
			GrownWidth:   150,
			Height:       10,
			Speed:        7,
			BottomOffset: 30,
			EffectFrames: 600,
		},
		Ball: BallConfig{
			Size:           20,
			BaseSpeed:      6,
			MaxSpeed:       10,
			MaxBounceAngle: 60,
			SlowFrames:     600,
		},
		Bricks: BrickConfig{
			Width:   75,
			Height:  20,
			Padding: 5,
			Columns: 10,
			Top:     50,
			Colors: []RGB{
				{178, 34, 34},
				{255, 165, 0},
				{255, 215, 0},
				{50, 205, 50},
			},
		},
		PowerUps: PowerUpConfig{
			Width:         30,
			Height:        15,
			FallSpeed:     3,
			MessageFrames: 120,
			BasePool:      []string{"grow", "laser", "glue", "slow"},
			AdvancedPool:  []string{"multi_ball", "shield"},
		},
		Lasers: LaserConfig{
			Width:  5,
			Height: 15,
			Speed:  -8,
			Offset: 30,
		},
		Gameplay: GameplayConfig{
			StartLives:          3,
			MaxLives:            5,
			MaxLevel:            5,
			BrickPoints:         10,
			LevelBonus:          100,
			LevelCompleteFrames: 180,
		},
		Effects: EffectsConfig{
			ParticleShrink: 0.1,
			BrickBurst:     BurstConfig{Count: 15, MinSize: 1, MaxSize: 4, MinSpeed: 1, MaxSpeed: 4, Gravity: 0.05},
			LaserBurst:     BurstConfig{Count: 10, MinSize: 1, MaxSize: 3, MinSpeed: 1, MaxSpeed: 3, Gravity: 0.05},
			BounceSparks:   BurstConfig{Count: 5, MinSize: 1, MaxSize: 3, MinSpeed: 1, MaxSpeed: 3},
			Fireworks: FireworkConfig{
				MinRise:      8,
				MaxRise:      12,
				MinBurstAt:   0.2,
				MaxBurstAt:   0.5,
				MinDelay:     20,
				MaxDelay:     50,
				MinChannel:   50,
				RocketLength: 10,
				Burst:        BurstConfig{Count: 50, MinSize: 2, MaxSize: 4, MinSpeed: 1, MaxSpeed: 4, Gravity: 0.1},
			},
		},
		Difficulty: DifficultyConfig{
			BaseRows:         4,
			RowEvery:         2,
			MaxRows:          8,
			GapChance:        0.1,
			GapFromLevel:     3,
			BaseDropChance:   0.3,
			DropPerLevel:     0.05,
			MaxDropChance:    0.6,
			SpeedPerLevel:    0.5,
			AdvancedPoolFrom: 3,
		},
	}
}

// DefaultYAML returns the embedded constants document.
func DefaultYAML() []byte {
	return defaultArkanoidYAML
}
