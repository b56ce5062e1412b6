package physics

import "testing"

// TestSign covers the three sign cases.
func TestSign(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{5, 1},
		{-5, -1},
		{0.0001, 1},
		{-0.0001, -1},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Sign(tt.in); got != tt.want {
			t.Errorf("Sign(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
}

// TestClamp checks both bounds and the pass-through case.
func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%g, %g, %g) = %g, want %g", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

// TestAbs checks the absolute value helper.
func TestAbs(t *testing.T) {
	if got := Abs(-3.5); got != 3.5 {
		t.Errorf("Abs(-3.5) = %g", got)
	}
	if got := Abs(3.5); got != 3.5 {
		t.Errorf("Abs(3.5) = %g", got)
	}
	if got := Abs(0); got != 0 {
		t.Errorf("Abs(0) = %g", got)
	}
}
