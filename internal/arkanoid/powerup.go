package arkanoid

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// ErrUnknownKind is returned when a power-up name is not one of the known kinds.
var ErrUnknownKind = errors.New("unknown power-up kind")

// PowerUpKind represents the closed set of power-up capsules.
type PowerUpKind uint8

const (
	KindGrow      PowerUpKind = iota // Widen paddle
	KindLaser                        // Paddle lasers
	KindGlue                         // Catch paddle
	KindSlow                         // Halve ball speed
	KindMultiBall                    // Two extra balls
	KindShield                       // Extra life
	kindCount                        // Sentinel for counting kinds
)

// KindInfo holds the fixed presentation of a power-up kind.
type KindInfo struct {
	Name    string
	Glyph   rune
	Color   core.Color
	Message string
}

var kindTable = [kindCount]KindInfo{
	KindGrow:      {Name: "grow", Glyph: 'G', Color: core.RGB(60, 60, 255), Message: "PADDLE GROW"},
	KindLaser:     {Name: "laser", Glyph: 'L', Color: core.RGB(255, 60, 60), Message: "LASER CANNONS"},
	KindGlue:      {Name: "glue", Glyph: 'C', Color: core.RGB(60, 255, 60), Message: "CATCH PADDLE"},
	KindSlow:      {Name: "slow", Glyph: 'S', Color: core.RGB(255, 165, 0), Message: "SLOW BALL"},
	KindMultiBall: {Name: "multi_ball", Glyph: 'M', Color: core.RGB(255, 60, 255), Message: "MULTI BALL!"},
	KindShield:    {Name: "shield", Glyph: 'H', Color: core.RGB(60, 255, 255), Message: "SHIELD ACTIVATED!"},
}

// Kinds lists every power-up kind in declaration order.
func Kinds() []PowerUpKind {
	kinds := make([]PowerUpKind, 0, kindCount)
	for k := range kindCount {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind converts a name such as "multi_ball" into a kind.
func ParseKind(name string) (PowerUpKind, error) {
	for k, info := range kindTable {
		if info.Name == name {
			return PowerUpKind(k), nil //#nosec G115 -- table index fits in uint8
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Info returns the fixed presentation of the kind.
func (k PowerUpKind) Info() KindInfo {
	if k >= kindCount {
		return KindInfo{Name: "unknown", Glyph: '?', Color: core.ColorWhite}
	}
	return kindTable[k]
}

// String returns the kind's name.
func (k PowerUpKind) String() string {
	return k.Info().Name
}

// PowerUp is a falling capsule dropped by a destroyed brick.
type PowerUp struct {
	Rect  core.RectF
	Kind  PowerUpKind
	speed float64
	dead  bool
}

// NewPowerUp creates a capsule with its top-left corner at (x, y).
func NewPowerUp(cfg config.PowerUpConfig, kind PowerUpKind, x, y float64) *PowerUp {
	return &PowerUp{
		Rect:  core.NewRectF(x, y, cfg.Width, cfg.Height),
		Kind:  kind,
		speed: cfg.FallSpeed,
	}
}

// Update moves the capsule down.
func (p *PowerUp) Update() {
	p.Rect.Y += p.speed
}

// Dead reports whether the capsule was caught or fell off.
func (p *PowerUp) Dead() bool {
	return p.dead
}

// Draw renders the capsule as a coloured block with its glyph in the middle.
func (p *PowerUp) Draw(c *Canvas) {
	info := p.Kind.Info()
	c.FillRect(p.Rect, '▒', info.Color)
	c.Plot(p.Rect.CenterX(), p.Rect.CenterY(), info.Glyph, core.ColorWhite)
}
