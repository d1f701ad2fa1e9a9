package arkanoid

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is a read-only copy of the game state for renderers, bots and
// determinism checks. It shares no memory with the live game.
type Snapshot struct {
	Tick               uint64 `msgpack:"tick"`
	Phase              string `msgpack:"phase"`
	Score              int    `msgpack:"score"`
	Lives              int    `msgpack:"lives"`
	Level              int    `msgpack:"level"`
	Paused             bool   `msgpack:"paused"`
	Message            string `msgpack:"message"`
	MessageTimer       int    `msgpack:"message_timer"`
	LevelCompleteTimer int    `msgpack:"level_complete_timer"`
	FireworkTimer      int    `msgpack:"firework_timer"`

	Paddle   PaddleView    `msgpack:"paddle"`
	Balls    []BallView    `msgpack:"balls"`
	Bricks   []BrickView   `msgpack:"bricks"`
	PowerUps []PowerUpView `msgpack:"power_ups"`
	Lasers   []BoxView     `msgpack:"lasers"`

	ParticleCount int `msgpack:"particles"`
	FireworkCount int `msgpack:"fireworks"`

	RNGState uint64 `msgpack:"rng"`
}

// BoxView is a world rectangle.
type BoxView struct {
	X float64 `msgpack:"x"`
	Y float64 `msgpack:"y"`
	W float64 `msgpack:"w"`
	H float64 `msgpack:"h"`
}

// PaddleView is the paddle part of a snapshot.
type PaddleView struct {
	BoxView
	HasLaser   bool `msgpack:"laser"`
	HasGlue    bool `msgpack:"glue"`
	GrowTimer  int  `msgpack:"grow_timer"`
	LaserTimer int  `msgpack:"laser_timer"`
	GlueTimer  int  `msgpack:"glue_timer"`
}

// BallView is one ball of a snapshot.
type BallView struct {
	BoxView
	VX         float64 `msgpack:"vx"`
	VY         float64 `msgpack:"vy"`
	BaseSpeed  float64 `msgpack:"base_speed"`
	Glued      bool    `msgpack:"glued"`
	Slowed     bool    `msgpack:"slowed"`
	SlowFrames int     `msgpack:"slow_frames"`
}

// BrickView is one brick of a snapshot.
type BrickView struct {
	BoxView
	Color uint32 `msgpack:"color"`
}

// PowerUpView is one falling capsule of a snapshot.
type PowerUpView struct {
	BoxView
	Kind string `msgpack:"kind"`
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	p := g.paddle
	snap := Snapshot{
		Tick:               g.tick,
		Phase:              g.phase.String(),
		Score:              g.score,
		Lives:              g.lives,
		Level:              g.level,
		Paused:             g.paused,
		Message:            g.message,
		MessageTimer:       g.messageTimer,
		LevelCompleteTimer: g.levelCompleteTimer,
		FireworkTimer:      g.fireworkTimer,
		Paddle: PaddleView{
			BoxView:    BoxView(p.Rect),
			HasLaser:   p.HasLaser,
			HasGlue:    p.HasGlue,
			GrowTimer:  p.Timer(KindGrow),
			LaserTimer: p.Timer(KindLaser),
			GlueTimer:  p.Timer(KindGlue),
		},
		Balls:         make([]BallView, 0, len(g.balls)),
		Bricks:        make([]BrickView, 0, len(g.bricks)),
		PowerUps:      make([]PowerUpView, 0, len(g.powerUps)),
		Lasers:        make([]BoxView, 0, len(g.lasers)),
		ParticleCount: len(g.particles),
		FireworkCount: len(g.fireworks),
		RNGState:      g.rng.State(),
	}

	for _, b := range g.balls {
		snap.Balls = append(snap.Balls, BallView{
			BoxView:    BoxView(b.Rect),
			VX:         b.VX,
			VY:         b.VY,
			BaseSpeed:  b.BaseSpeed,
			Glued:      b.Glued,
			Slowed:     b.Slowed,
			SlowFrames: b.slowFrames,
		})
	}
	for _, br := range g.bricks {
		snap.Bricks = append(snap.Bricks, BrickView{BoxView: BoxView(br.Rect), Color: uint32(br.Color)})
	}
	for _, pu := range g.powerUps {
		snap.PowerUps = append(snap.PowerUps, PowerUpView{BoxView: BoxView(pu.Rect), Kind: pu.Kind.String()})
	}
	for _, l := range g.lasers {
		snap.Lasers = append(snap.Lasers, BoxView(l.Rect))
	}
	return snap
}

// Encode serializes the snapshot with MessagePack. Field order is fixed by
// the struct, so equal snapshots encode to equal bytes.
func (snap *Snapshot) Encode() ([]byte, error) {
	b, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("arkanoid: encode snapshot: %w", err)
	}
	return b, nil
}

// DecodeSnapshot parses bytes produced by Snapshot.Encode.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("arkanoid: decode snapshot: %w", err)
	}
	return snap, nil
}

// Hash returns the xxhash of the encoded snapshot, for determinism testing.
func (snap *Snapshot) Hash() (uint64, error) {
	d := xxhash.New()
	if err := msgpack.NewEncoder(d).Encode(snap); err != nil {
		return 0, fmt.Errorf("arkanoid: hash snapshot: %w", err)
	}
	return d.Sum64(), nil
}
