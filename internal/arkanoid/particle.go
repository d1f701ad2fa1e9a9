package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Particle is a short-lived spark that flies out, falls and shrinks away.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Color   core.Color
	gravity float64
	shrink  float64
}

// NewParticle creates a particle flying in a random direction.
func NewParticle(x, y float64, color core.Color, burst config.BurstConfig, shrink float64, rng *SimpleRNG) *Particle {
	size := float64(rng.IntRange(burst.MinSize, burst.MaxSize))
	angle := rng.Uniform(0, 360) * math.Pi / 180
	speed := rng.Uniform(burst.MinSpeed, burst.MaxSpeed)
	return &Particle{
		X:       x,
		Y:       y,
		VX:      speed * math.Cos(angle),
		VY:      speed * math.Sin(angle),
		Size:    size,
		Color:   color,
		gravity: burst.Gravity,
		shrink:  shrink,
	}
}

// Burst creates burst.Count particles at (x, y).
func Burst(x, y float64, color core.Color, burst config.BurstConfig, shrink float64, rng *SimpleRNG) []*Particle {
	out := make([]*Particle, 0, burst.Count)
	for range burst.Count {
		out = append(out, NewParticle(x, y, color, burst, shrink, rng))
	}
	return out
}

// Update moves the particle, applies gravity and shrinks it.
func (p *Particle) Update() {
	p.X += p.VX
	p.Y += p.VY
	p.VY += p.gravity
	p.Size -= p.shrink
}

// Dead reports whether the particle has shrunk away.
func (p *Particle) Dead() bool {
	return p.Size <= 0
}

// Draw renders the particle with a glyph matching its size.
func (p *Particle) Draw(c *Canvas) {
	if p.Size <= 0 {
		return
	}
	glyph := '·'
	switch {
	case p.Size >= 3:
		glyph = '*'
	case p.Size >= 1.5:
		glyph = '+'
	}
	c.Plot(p.X, p.Y, glyph, p.Color)
}

// Firework is a rocket that rises from the bottom and bursts into particles.
type Firework struct {
	X, Y      float64
	VY        float64
	BurstAt   float64
	Exploded  bool
	Particles []*Particle

	cfg    config.FireworkConfig
	shrink float64
	rng    *SimpleRNG
}

// NewFirework launches a rocket from a random point on the bottom edge.
func NewFirework(cfg config.FireworkConfig, shrink, screenW, screenH float64, rng *SimpleRNG) *Firework {
	return &Firework{
		X:       float64(rng.IntRange(0, int(screenW))),
		Y:       screenH,
		VY:      -rng.Uniform(cfg.MinRise, cfg.MaxRise),
		BurstAt: rng.Uniform(screenH*cfg.MinBurstAt, screenH*cfg.MaxBurstAt),
		cfg:     cfg,
		shrink:  shrink,
		rng:     rng,
	}
}

// Update rises the rocket or advances the explosion.
func (f *Firework) Update() {
	if !f.Exploded {
		f.Y += f.VY
		if f.Y <= f.BurstAt {
			f.explode()
		}
		return
	}
	for _, p := range f.Particles {
		p.Update()
	}
	f.Particles = sweep(f.Particles)
}

func (f *Firework) explode() {
	f.Exploded = true
	lo, hi := int(f.cfg.MinChannel), 255
	color := core.RGB(
		uint8(f.rng.IntRange(lo, hi)), //#nosec G115 -- bounded by 255
		uint8(f.rng.IntRange(lo, hi)), //#nosec G115 -- bounded by 255
		uint8(f.rng.IntRange(lo, hi)), //#nosec G115 -- bounded by 255
	)
	f.Particles = Burst(f.X, f.Y, color, f.cfg.Burst, f.shrink, f.rng)
}

// Dead reports whether the firework exploded and every particle is gone.
func (f *Firework) Dead() bool {
	return f.Exploded && len(f.Particles) == 0
}

// Draw renders the rocket trail or the explosion.
func (f *Firework) Draw(c *Canvas) {
	if !f.Exploded {
		c.Plot(f.X, f.Y, '^', core.ColorWhite)
		c.Plot(f.X, f.Y+f.cfg.RocketLength, '|', core.ColorGold)
		return
	}
	for _, p := range f.Particles {
		p.Draw(c)
	}
}
