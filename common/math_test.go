package common

import "testing"

func TestMoveToward(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		step float64
		want float64
	}{
		{"positive_partial", 10, 3, 7},
		{"positive_clamps_at_zero", 2, 3, 0},
		{"negative_partial", -10, 4, -6},
		{"negative_clamps_at_zero", -1, 4, 0},
		{"zero_stays", 0, 5, 0},
		{"no_step", 5, 0, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MoveToward(tc.v, tc.step); got != tc.want {
				t.Fatalf("MoveToward(%v, %v) = %v, want %v", tc.v, tc.step, got, tc.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
	if got := Clamp(-1, 0, 3); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := Clamp(2, 5, 1); got != 5 {
		t.Fatalf("inverted bounds should return lo, got %v", got)
	}
}
