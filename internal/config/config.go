// Package config provides the embedded Arkanoid constants table and the
// per-level scaling rules derived from it.
package config

// ArkanoidConfig contains every tunable constant of the game. The values are
// compiled into the binary; there is no override path.
type ArkanoidConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Ball       BallConfig       `yaml:"ball"`
	Bricks     BrickConfig      `yaml:"bricks"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Lasers     LaserConfig      `yaml:"lasers"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Effects    EffectsConfig    `yaml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ScreenConfig defines the playfield in world pixels.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines paddle geometry and effect duration.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	GrownWidth   float64 `yaml:"grown_width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from paddle top to screen bottom
	EffectFrames int     `yaml:"effect_frames"`
}

// BallConfig defines ball geometry and speed limits.
type BallConfig struct {
	Size           float64 `yaml:"size"`
	BaseSpeed      float64 `yaml:"base_speed"`
	MaxSpeed       float64 `yaml:"max_speed"`
	MaxBounceAngle float64 `yaml:"max_bounce_angle"` // Degrees either side of vertical
	SlowFrames     int     `yaml:"slow_frames"`
}

// RGB is a colour triple as written in the YAML table.
type RGB [3]uint8

// BrickConfig defines the brick wall layout.
type BrickConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Padding float64 `yaml:"padding"`
	Columns int     `yaml:"columns"`
	Top     float64 `yaml:"top"`
	Colors  []RGB   `yaml:"colors"` // Cycled per row
}

// PowerUpConfig defines falling power-up capsules.
type PowerUpConfig struct {
	Width         float64  `yaml:"width"`
	Height        float64  `yaml:"height"`
	FallSpeed     float64  `yaml:"fall_speed"`
	MessageFrames int      `yaml:"message_frames"`
	BasePool      []string `yaml:"base_pool"`
	AdvancedPool  []string `yaml:"advanced_pool"` // Added from Difficulty.AdvancedPoolFrom
}

// LaserConfig defines laser bolts fired by the paddle.
type LaserConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`  // Negative is upward
	Offset float64 `yaml:"offset"` // Horizontal distance of each cannon from paddle centre
}

// GameplayConfig defines lives, scoring and level flow.
type GameplayConfig struct {
	StartLives          int `yaml:"start_lives"`
	MaxLives            int `yaml:"max_lives"`
	MaxLevel            int `yaml:"max_level"`
	BrickPoints         int `yaml:"brick_points"` // Multiplied by level
	LevelBonus          int `yaml:"level_bonus"`  // Multiplied by completed level
	LevelCompleteFrames int `yaml:"level_complete_frames"`
}

// BurstConfig describes a spray of particles.
type BurstConfig struct {
	Count    int     `yaml:"count"`
	MinSize  int     `yaml:"min_size"`
	MaxSize  int     `yaml:"max_size"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	Gravity  float64 `yaml:"gravity"`
}

// FireworkConfig describes the victory fireworks.
type FireworkConfig struct {
	MinRise      float64     `yaml:"min_rise"`
	MaxRise      float64     `yaml:"max_rise"`
	MinBurstAt   float64     `yaml:"min_burst_at"` // Fraction of screen height
	MaxBurstAt   float64     `yaml:"max_burst_at"`
	MinDelay     int         `yaml:"min_delay"`
	MaxDelay     int         `yaml:"max_delay"`
	MinChannel   uint8       `yaml:"min_channel"`
	Burst        BurstConfig `yaml:"burst"`
	RocketLength float64     `yaml:"rocket_length"`
}

// EffectsConfig groups the particle effects.
type EffectsConfig struct {
	ParticleShrink float64        `yaml:"particle_shrink"`
	BrickBurst     BurstConfig    `yaml:"brick_burst"`
	LaserBurst     BurstConfig    `yaml:"laser_burst"`
	BounceSparks   BurstConfig    `yaml:"bounce_sparks"`
	Fireworks      FireworkConfig `yaml:"fireworks"`
}

// DifficultyConfig defines how the game scales with the level number.
type DifficultyConfig struct {
	BaseRows         int     `yaml:"base_rows"`
	RowEvery         int     `yaml:"row_every"` // Levels per extra row
	MaxRows          int     `yaml:"max_rows"`
	GapChance        float64 `yaml:"gap_chance"`
	GapFromLevel     int     `yaml:"gap_from_level"`
	BaseDropChance   float64 `yaml:"base_drop_chance"`
	DropPerLevel     float64 `yaml:"drop_per_level"`
	MaxDropChance    float64 `yaml:"max_drop_chance"`
	SpeedPerLevel    float64 `yaml:"speed_per_level"`
	AdvancedPoolFrom int     `yaml:"advanced_pool_from"`
}
