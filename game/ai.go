package game

import (
	"math"

	"github.com/lguibr/volleygo/utils"
)

// OpponentIntent is the scripted opponent's reactive policy: a pure function
// of the current ball and opponent positions, re-evaluated every tick with no
// memory and no prediction beyond the current frame.
//
// The opponent idles at its home point until the ball is near or past the net
// line, then tracks a point slightly beyond the ball so its hits are driven
// back toward the net. Movement stops inside a small deadband. A jump fires
// only when the ball is past the net, close horizontally, inside the vertical
// band, and the opponent is grounded.
func OpponentIntent(cfg utils.Config, ball *Ball, opponent *Body) Input {
	target := cfg.OpponentHomeX
	if ball.X > cfg.NetX-cfg.AIReactZone {
		target = ball.X + cfg.AIOffset
	}

	var in Input
	if math.Abs(target-opponent.X) > cfg.AIDeadband {
		if target < opponent.X {
			in.Left = true
		} else {
			in.Right = true
		}
	}

	if ball.X > cfg.NetX &&
		math.Abs(ball.X-opponent.X) < cfg.AIJumpRange &&
		ball.Y > cfg.AIJumpBandTop &&
		ball.Y < cfg.AIJumpBandBottom &&
		opponent.OnGround {
		in.Jump = true
	}

	return in
}
