package game

import (
	"github.com/lguibr/volleygo/utils"
)

// Side identifies one half of the court.
type Side int

const (
	SideLeft  Side = iota // human player
	SideRight             // scripted opponent
)

// String returns the side name used in event descriptions and JSON.
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Court holds the derived geometry of the playing field. Y grows downward;
// the ceiling is at Y=0 and the floor line at FloorY.
type Court struct {
	Width        float64 `json:"width"`
	FloorY       float64 `json:"floorY"`
	NetX         float64 `json:"netX"`
	NetTop       float64 `json:"netTop"`
	NetHalfWidth float64 `json:"netHalfWidth"`
}

// NewCourt derives the court geometry from the configuration.
func NewCourt(cfg utils.Config) Court {
	return Court{
		Width:        cfg.CourtWidth,
		FloorY:       cfg.FloorY,
		NetX:         cfg.NetX,
		NetTop:       cfg.FloorY - cfg.NetHeight,
		NetHalfWidth: cfg.NetHalfWidth,
	}
}

// SideOf returns which half of the court the given X position falls on.
// The net line itself counts as the right half.
func (c Court) SideOf(x float64) Side {
	if x < c.NetX {
		return SideLeft
	}
	return SideRight
}
