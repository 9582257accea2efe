package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	if !r.Contains(10, 10) || r.Contains(30, 25) {
		t.Error("Contains should include top-left and exclude bottom-right")
	}
	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("Right, Bottom = %d, %d, expected 30, 25", r.Right(), r.Bottom())
	}
}

func TestVecDist(t *testing.T) {
	if d := V(0, 0).Dist(V(3, 4)); d != 5 {
		t.Errorf("Dist = %f, expected 5", d)
	}
	if p := V(1, 2).Add(V(-1, 0.5)); p != V(0, 2.5) {
		t.Errorf("Add = %+v", p)
	}
}

func TestVecIsFinite(t *testing.T) {
	tests := []struct {
		v        Vec
		expected bool
	}{
		{V(1, 2), true},
		{V(math.NaN(), 0), false},
		{V(0, math.Inf(1)), false},
		{V(math.Inf(-1), math.NaN()), false},
	}
	for _, tc := range tests {
		if got := tc.v.IsFinite(); got != tc.expected {
			t.Errorf("IsFinite(%v) = %v, expected %v", tc.v, got, tc.expected)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 9},
		{10, 0, 10, 0},
		{25, 0, 10, 5},
		{-25, 0, 10, 5},
		{1.5, -2, 2, 1.5},
		{3, 4, 4, 4}, // empty range collapses to min
	}
	for _, tc := range tests {
		if got := Wrap(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Wrap(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
	if ClampF(-0.5, 0, 1) != 0 || ClampF(1.5, 0, 1) != 1 {
		t.Error("ClampF did not clamp")
	}
}
