package arkanoid

import (
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Autopilot plays the game from snapshots alone. It tracks the lowest
// descending ball, launches whenever a ball is glued and fires lasers
// whenever it has them.
type Autopilot struct {
	deadZone float64 // Horizontal slack before the paddle moves, in pixels
	fireGap  uint64  // Ticks between laser volleys
}

// NewAutopilot creates an autopilot with sensible defaults.
func NewAutopilot() *Autopilot {
	return &Autopilot{deadZone: 8, fireGap: 15}
}

// Next returns the input for the next tick.
func (a *Autopilot) Next(s Snapshot) core.InputFrame {
	var in core.InputFrame

	switch s.Phase {
	case PhaseTitle.String(), PhaseLevelComplete.String():
		in.Set(core.ActionLaunch)
		return in
	case PhasePlaying.String():
	default:
		return in
	}

	target, ok := a.target(s)
	if !ok {
		return in
	}

	paddleX := s.Paddle.X + s.Paddle.W/2
	switch {
	case target < paddleX-a.deadZone:
		in.Set(core.ActionLeft)
	case target > paddleX+a.deadZone:
		in.Set(core.ActionRight)
	}

	for _, b := range s.Balls {
		if b.Glued {
			in.Set(core.ActionLaunch)
			break
		}
	}
	if s.Paddle.HasLaser && s.Tick%a.fireGap == 0 {
		in.Set(core.ActionFire)
	}
	return in
}

// target returns the x the paddle should centre on: the lowest ball moving
// down, or the first ball if none is descending.
func (a *Autopilot) target(s Snapshot) (float64, bool) {
	if len(s.Balls) == 0 {
		return 0, false
	}
	best := -1
	for i, b := range s.Balls {
		if b.VY <= 0 || b.Glued {
			continue
		}
		if best < 0 || b.Y > s.Balls[best].Y {
			best = i
		}
	}
	if best < 0 {
		best = 0
	}
	b := s.Balls[best]
	return b.X + b.W/2, true
}
