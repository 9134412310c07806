package game

import (
	"github.com/lguibr/volleygo/utils"
)

// Ball is the single ball in play. It is owned by the Simulation and mutated
// in place every tick; identity is stable across serves.
type Ball struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Vx     float64 `json:"vx"`
	Vy     float64 `json:"vy"`
	Radius float64 `json:"radius"`
}

// NewBall creates a ball at rest with the configured radius.
func NewBall(cfg utils.Config) *Ball {
	return &Ball{
		X:      cfg.PlayerHomeX,
		Y:      cfg.ServeHeight,
		Radius: cfg.BallRadius,
	}
}

// Move advances the ball one tick: reduced gravity, air drag on both axes,
// then explicit Euler position update.
func (b *Ball) Move(cfg utils.Config) {
	b.Vy += cfg.Gravity * cfg.BallGravityFactor
	b.Vx *= cfg.BallAirDrag
	b.Vy *= cfg.BallAirDrag
	b.X += b.Vx
	b.Y += b.Vy
	utils.AssertFinite("ball position", b.X, b.Y)
}

// Serve places the ball above the serving side with the fixed serve velocity.
func (b *Ball) Serve(cfg utils.Config, server Side) {
	if server == SideLeft {
		b.X = cfg.PlayerHomeX
	} else {
		b.X = cfg.OpponentHomeX
	}
	b.Y = cfg.ServeHeight
	b.Vx = 0
	b.Vy = cfg.ServeSpeed
}

// OnFloor reports whether the ball has reached the floor line.
func (b *Ball) OnFloor(court Court) bool {
	return b.Y+b.Radius >= court.FloorY
}
