package utils

import (
	"math"
	"testing"
)

func TestDeltaAngleShortestPath(t *testing.T) {
	tests := []struct {
		from, to, want float64
	}{
		{0, 90, 90},
		{350, 10, 20},
		{10, 350, -20},
		{-170, 170, -20},
		{0, 180, 180},
	}
	for _, tt := range tests {
		if got := DeltaAngle(tt.from, tt.to); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("DeltaAngle(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestLerpAngleClampsT(t *testing.T) {
	if got := LerpAngle(170, -170, 0.5); math.Abs(math.Abs(got)-180) > 1e-9 {
		t.Errorf("Expected to cross the 180 seam, got %v", got)
	}
	if got := LerpAngle(0, 90, 5); math.Abs(got-90) > 1e-9 {
		t.Errorf("Expected t to clamp at 1, got %v", got)
	}
	if got := LerpAngle(0, 90, -1); got != 0 {
		t.Errorf("Expected t to clamp at 0, got %v", got)
	}
}

func TestPRNGIsDeterministicForSeed(t *testing.T) {
	a, b := NewPRNGService(42), NewPRNGService(42)
	for i := 0; i < 5; i++ {
		ax, ay := a.UnitVector()
		bx, by := b.UnitVector()
		if ax != bx || ay != by {
			t.Fatal("Expected identical sequences for identical seeds")
		}
		if math.Abs(math.Hypot(ax, ay)-1) > 1e-9 {
			t.Errorf("Expected unit length, got %v", math.Hypot(ax, ay))
		}
	}
}
