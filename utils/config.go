// File: utils/config.go
package utils

import "time"

// Config holds all configurable simulation parameters.
type Config struct {
	// Timing
	SimTickPeriod time.Duration `json:"simTickPeriod"` // Time between simulation steps (one integration per tick, no sub-stepping)
	PointPause    time.Duration `json:"pointPause"`    // Pause between a point being scored and the next rally

	// Court geometry
	CourtWidth   float64 `json:"courtWidth"`   // Horizontal extent of the court in world units
	FloorY       float64 `json:"floorY"`       // Vertical position of the floor line (Y grows downward)
	NetX         float64 `json:"netX"`         // Horizontal position of the net
	NetHeight    float64 `json:"netHeight"`    // Height of the net above the floor
	NetHalfWidth float64 `json:"netHalfWidth"` // Half thickness of the net face; also the net post radius

	// Physics
	Gravity           float64 `json:"gravity"`           // Per-tick vertical acceleration for bodies
	BallGravityFactor float64 `json:"ballGravityFactor"` // Reduced gravity multiplier for the ball
	BallAirDrag       float64 `json:"ballAirDrag"`       // Multiplicative per-tick damping on both ball velocity axes
	Bounce            float64 `json:"bounce"`            // Restitution for wall/ceiling/net bounces

	// Bodies
	PlayerSpeed         float64 `json:"playerSpeed"`         // Horizontal movement speed of the human player
	OpponentSpeedFactor float64 `json:"opponentSpeedFactor"` // Fraction of PlayerSpeed the opponent moves at
	JumpImpulse         float64 `json:"jumpImpulse"`         // Vertical velocity applied on jump (negative is up)
	PlayerRadius        float64 `json:"playerRadius"`        // Radius of player and opponent bodies
	BallRadius          float64 `json:"ballRadius"`          // Radius of the ball

	// Hit response
	MinHitForce    float64 `json:"minHitForce"`    // Minimum pop force on any body-ball contact
	HitSpeedFactor float64 `json:"hitSpeedFactor"` // Multiplier on body speed when above the minimum force
	HitCarryFactor float64 `json:"hitCarryFactor"` // Fraction of body velocity carried into the ball
	HitUpwardBias  float64 `json:"hitUpwardBias"`  // Constant vertical offset added on hit (negative is up)

	// Serve
	PlayerHomeX   float64 `json:"playerHomeX"`   // Player reset position (center of the left half)
	OpponentHomeX float64 `json:"opponentHomeX"` // Opponent reset position (center of the right half)
	ServeHeight   float64 `json:"serveHeight"`   // Ball Y at serve
	ServeSpeed    float64 `json:"serveSpeed"`    // Ball Vy at serve (negative is up)

	// Opponent policy
	AIReactZone      float64 `json:"aiReactZone"`      // Distance from the net at which the opponent starts chasing the ball
	AIOffset         float64 `json:"aiOffset"`         // Horizontal bias past the ball so hits are driven toward the net
	AIDeadband       float64 `json:"aiDeadband"`       // Positional gap below which the opponent stops
	AIJumpRange      float64 `json:"aiJumpRange"`      // Max horizontal distance to the ball for a jump
	AIJumpBandTop    float64 `json:"aiJumpBandTop"`    // Ball must be below this Y to trigger a jump
	AIJumpBandBottom float64 `json:"aiJumpBandBottom"` // Ball must be above this Y to trigger a jump

	// Commentary gateway
	CommentaryTimeout time.Duration `json:"commentaryTimeout"` // Single-attempt request timeout
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	courtWidth := 800.0
	floorY := 400.0

	return Config{
		// Timing
		SimTickPeriod: 16 * time.Millisecond,
		PointPause:    2000 * time.Millisecond,

		// Court geometry
		CourtWidth:   courtWidth,
		FloorY:       floorY,
		NetX:         courtWidth / 2, // 400
		NetHeight:    100,
		NetHalfWidth: 5,

		// Physics
		Gravity:           0.6,
		BallGravityFactor: 0.8,
		BallAirDrag:       0.995,
		Bounce:            0.7,

		// Bodies
		PlayerSpeed:         6,
		OpponentSpeedFactor: 0.85,
		JumpImpulse:         -12,
		PlayerRadius:        30,
		BallRadius:          15,

		// Hit response
		MinHitForce:    14,
		HitSpeedFactor: 1.1,
		HitCarryFactor: 0.5,
		HitUpwardBias:  -4,

		// Serve
		PlayerHomeX:   courtWidth / 4,     // 200
		OpponentHomeX: courtWidth * 3 / 4, // 600
		ServeHeight:   250,
		ServeSpeed:    -9,

		// Opponent policy
		AIReactZone:      100,
		AIOffset:         20,
		AIDeadband:       5,
		AIJumpRange:      50,
		AIJumpBandTop:    150,
		AIJumpBandBottom: 350,

		// Commentary gateway
		CommentaryTimeout: 3 * time.Second,
	}
}
