package core

import (
	"math"
	"testing"
)

func TestVec2Distance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec2
		expected float64
	}{
		{"same point", V(1, 1), V(1, 1), 0},
		{"horizontal", V(0, 0), V(50, 0), 50},
		{"vertical", V(0, 10), V(0, -40), 50},
		{"diagonal 3-4-5", V(0, 0), V(3, 4), 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.Distance(tc.b)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Distance() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if back := tc.b.Distance(tc.a); math.Abs(back-got) > 1e-9 {
				t.Errorf("Distance() (reversed) = %v, expected %v", back, got)
			}
		})
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := V(2, 3)
	b := V(-1, 5)

	if got := a.Add(b); got != V(1, 8) {
		t.Errorf("Add() = %v, expected (1, 8)", got)
	}
	if got := a.Sub(b); got != V(3, -2) {
		t.Errorf("Sub() = %v, expected (3, -2)", got)
	}
	if got := a.Scale(2); got != V(4, 6) {
		t.Errorf("Scale() = %v, expected (4, 6)", got)
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
	if AbsF(-2.5) != 2.5 {
		t.Error("AbsF(-2.5) should be 2.5")
	}
}
