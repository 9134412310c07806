package game

import (
	"testing"

	"github.com/lguibr/volleygo/utils"
)

func TestNewCourt(t *testing.T) {
	cfg := utils.DefaultConfig()
	court := NewCourt(cfg)
	if court.Width != cfg.CourtWidth || court.FloorY != cfg.FloorY {
		t.Errorf("Unexpected court bounds: Width=%v FloorY=%v", court.Width, court.FloorY)
	}
	if court.NetTop != cfg.FloorY-cfg.NetHeight {
		t.Errorf("Expected NetTop %v, got %v", cfg.FloorY-cfg.NetHeight, court.NetTop)
	}
}

func TestCourt_SideOf(t *testing.T) {
	court := NewCourt(utils.DefaultConfig())
	testCases := []struct {
		name     string
		x        float64
		expected Side
	}{
		{"left half", 100, SideLeft},
		{"just left of the net", 399.999, SideLeft},
		{"the net line counts as right", 400, SideRight},
		{"right half", 700, SideRight},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := court.SideOf(tc.x); got != tc.expected {
				t.Errorf("SideOf(%v) = %v, want %v", tc.x, got, tc.expected)
			}
		})
	}
}

func TestSide_String(t *testing.T) {
	if SideLeft.String() != "left" || SideRight.String() != "right" {
		t.Errorf("Unexpected side names: %q, %q", SideLeft.String(), SideRight.String())
	}
}
