package game

import (
	"math"

	"github.com/lguibr/volleygo/utils"
)

// Collision resolution runs after integration, every tick, in a fixed order:
// bodies against floor, walls and net barrier, then ball against walls,
// ceiling, net post, net face, and finally each body. Later resolutions can
// reintroduce earlier violations within a tick; the order is part of the
// gameplay feel and must not be rearranged.

// CollideFloor clamps the body to the floor line and restores jump
// availability.
func (b *Body) CollideFloor(court Court) {
	if b.Y+b.Radius >= court.FloorY {
		b.Y = court.FloorY - b.Radius
		b.Vy = 0
		b.OnGround = true
	}
}

// CollideWalls keeps the body inside the side walls.
func (b *Body) CollideWalls(court Court) {
	b.X = utils.Clamp(b.X, b.Radius, court.Width-b.Radius)
}

// CollideNetBarrier keeps the body on its own half. The net is a
// one-directional horizontal barrier per side, not a circular obstacle.
func (b *Body) CollideNetBarrier(court Court) {
	if b.Side == SideLeft {
		if b.X > court.NetX-b.Radius {
			b.X = court.NetX - b.Radius
		}
	} else {
		if b.X < court.NetX+b.Radius {
			b.X = court.NetX + b.Radius
		}
	}
}

// CollideWalls reflects the ball off the side walls with restitution and
// clamps it back inside.
func (b *Ball) CollideWalls(cfg utils.Config, court Court) {
	if b.X-b.Radius <= 0 {
		b.X = b.Radius
		b.Vx = -b.Vx * cfg.Bounce
	}
	if b.X+b.Radius >= court.Width {
		b.X = court.Width - b.Radius
		b.Vx = -b.Vx * cfg.Bounce
	}
}

// CollideCeiling reflects the ball off the top of the court.
func (b *Ball) CollideCeiling(cfg utils.Config) {
	if b.Y-b.Radius <= 0 {
		b.Y = b.Radius
		b.Vy = -b.Vy * cfg.Bounce
	}
}

// CollideNetPost treats the net's top endpoint as a virtual circle and, on
// contact, reflects the ball's velocity across the collision normal
// (v' = (v - 2(v.n)n) * restitution) and pushes it out by the penetration
// depth. Reports whether a contact was resolved so the net face check can be
// skipped this tick.
func (b *Ball) CollideNetPost(cfg utils.Config, court Court) bool {
	nx, ny, dist := utils.Normalize(b.X-court.NetX, b.Y-court.NetTop)
	reach := b.Radius + court.NetHalfWidth
	if dist >= reach {
		return false
	}
	if dist == 0 {
		// Concentric centers: fall back to a straight-up normal.
		nx, ny = 0, -1
	}

	dot := b.Vx*nx + b.Vy*ny
	b.Vx = (b.Vx - 2*dot*nx) * cfg.Bounce
	b.Vy = (b.Vy - 2*dot*ny) * cfg.Bounce

	penetration := reach - dist
	b.X += nx * penetration
	b.Y += ny * penetration
	return true
}

// CollideNetFace reflects the ball off the net's vertical face. Only
// evaluated when the post check did not already resolve a contact and the
// ball's center is below the net top.
func (b *Ball) CollideNetFace(cfg utils.Config, court Court) {
	if b.Y <= court.NetTop {
		return
	}
	if math.Abs(b.X-court.NetX) >= b.Radius+court.NetHalfWidth {
		return
	}
	b.Vx = -b.Vx * cfg.Bounce
	if b.X < court.NetX {
		b.X = court.NetX - court.NetHalfWidth - b.Radius
	} else {
		b.X = court.NetX + court.NetHalfWidth + b.Radius
	}
}

// CollideBody resolves a circle-circle contact between the ball and a body.
// The ball leaves along the body-to-ball direction with at least the minimum
// pop force, carries half the body's velocity, and gets a constant upward
// bias. The ball is pushed out of overlap to prevent sticking. A concentric
// contact falls back to a straight-up escape direction.
func (b *Ball) CollideBody(cfg utils.Config, body *Body) bool {
	nx, ny, dist := utils.Normalize(b.X-body.X, b.Y-body.Y)
	reach := b.Radius + body.Radius
	if dist >= reach {
		return false
	}
	if dist == 0 {
		nx, ny = 0, -1
	}

	speed := math.Hypot(body.Vx, body.Vy)
	force := math.Max(cfg.MinHitForce, speed*cfg.HitSpeedFactor)

	b.Vx = nx*force + body.Vx*cfg.HitCarryFactor
	b.Vy = ny*force + body.Vy*cfg.HitCarryFactor + cfg.HitUpwardBias

	penetration := reach - dist
	b.X += nx * penetration
	b.Y += ny * penetration
	return true
}
