package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.value, tt.min, tt.max); got != tt.expected {
				t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", tt.value, tt.min, tt.max, got, tt.expected)
			}
		})
	}
}

func TestCloseEnough(t *testing.T) {
	tests := []struct {
		x, y float64
		want bool
	}{
		{1, 1, true},
		{1, 1 + 4*epsilon, true},
		{1, 1 + 1e-10, false},
		{0, 0, true},
		{0, 1e-12, false},
	}

	for _, tt := range tests {
		if got := CloseEnough(tt.x, tt.y); got != tt.want {
			t.Errorf("CloseEnough(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestUndefined(t *testing.T) {
	if !IsUndefined(Undefined()) {
		t.Fatal("Undefined() is not undefined")
	}

	for _, v := range []float64{0, math.Inf(1)} {
		if IsUndefined(v) {
			t.Fatalf("IsUndefined(%v) = true, want false", v)
		}
	}
}
