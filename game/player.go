package game

import (
	"github.com/lguibr/volleygo/utils"
)

// Input is the sampled key state for one tick: held/not-held booleans only.
type Input struct {
	Left  bool `json:"left"`
	Right bool `json:"right"`
	Jump  bool `json:"jump"`
}

// Body is a circular player or opponent. Both are owned by the Simulation and
// mutated in place every tick; identity is stable across serves.
type Body struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Vx       float64 `json:"vx"`
	Vy       float64 `json:"vy"`
	Radius   float64 `json:"radius"`
	Speed    float64 `json:"speed"`
	OnGround bool    `json:"onGround"`
	Side     Side    `json:"side"`
}

// NewBody creates a grounded body at its home position. The opponent moves at
// a fraction of the player's speed.
func NewBody(cfg utils.Config, side Side) *Body {
	speed := cfg.PlayerSpeed
	homeX := cfg.PlayerHomeX
	if side == SideRight {
		speed = cfg.PlayerSpeed * cfg.OpponentSpeedFactor
		homeX = cfg.OpponentHomeX
	}
	return &Body{
		X:        homeX,
		Y:        cfg.FloorY - cfg.PlayerRadius,
		Radius:   cfg.PlayerRadius,
		Speed:    speed,
		OnGround: true,
		Side:     side,
	}
}

// Move advances the body one tick from the held key state: horizontal intent,
// jump gated on OnGround, gravity, then explicit Euler position update.
func (b *Body) Move(cfg utils.Config, in Input) {
	b.Vx = 0
	if in.Left {
		b.Vx -= b.Speed
	}
	if in.Right {
		b.Vx += b.Speed
	}
	if in.Jump && b.OnGround {
		b.Vy = cfg.JumpImpulse
		b.OnGround = false
	}
	b.Vy += cfg.Gravity
	b.X += b.Vx
	b.Y += b.Vy
	utils.AssertFinite("body position", b.X, b.Y)
}

// Rehome puts the body back at its serve position, grounded and at rest.
func (b *Body) Rehome(cfg utils.Config) {
	if b.Side == SideLeft {
		b.X = cfg.PlayerHomeX
	} else {
		b.X = cfg.OpponentHomeX
	}
	b.Y = cfg.FloorY - b.Radius
	b.Vx = 0
	b.Vy = 0
	b.OnGround = true
}
