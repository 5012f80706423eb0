package main

import "testing"

func TestDispatchPriority(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{2, 2},
		{2.5, 3},
		{2.4, 2},
		{-1.5, -2},
		{0, 0},
	}
	for _, tt := range tests {
		if got := dispatchPriority(tt.in); got != tt.want {
			t.Errorf("dispatchPriority(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
