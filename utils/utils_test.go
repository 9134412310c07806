package utils

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	testCases := []struct {
		name       string
		v, lo, hi  float64
		expected   float64
	}{
		{"below range", -5, 0, 10, 0},
		{"above range", 15, 0, 10, 10},
		{"inside range", 5, 0, 10, 5},
		{"at lower bound", 0, 0, 10, 0},
		{"at upper bound", 10, 0, 10, 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.expected {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tc.v, tc.lo, tc.hi, got, tc.expected)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	testCases := []struct {
		name           string
		x1, y1, x2, y2 float64
		expected       float64
	}{
		{"horizontal", 0, 0, 3, 0, 3},
		{"vertical", 0, 0, 0, 4, 4},
		{"diagonal", 0, 0, 3, 4, 5},
		{"same point", 7, 7, 7, 7, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Distance(tc.x1, tc.y1, tc.x2, tc.y2); got != tc.expected {
				t.Errorf("Distance = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	nx, ny, length := Normalize(3, 4)
	if length != 5 {
		t.Errorf("Expected length 5, got %v", length)
	}
	if nx != 0.6 || ny != 0.8 {
		t.Errorf("Expected unit vector (0.6, 0.8), got (%v, %v)", nx, ny)
	}

	nx, ny, length = Normalize(0, 0)
	if nx != 0 || ny != 0 || length != 0 {
		t.Errorf("Expected zero vector for zero input, got (%v, %v) len %v", nx, ny, length)
	}
}

func TestAssertFinite(t *testing.T) {
	AssertFinite("position", 1, -2.5, 0) // must not panic

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected AssertFinite to panic on NaN")
		}
	}()
	AssertFinite("position", math.NaN())
}
