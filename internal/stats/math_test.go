package stats

import (
	"math"
	"testing"
)

func TestCalculateMedianContinuous(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"Empty", []float64{}, 0},
		{"SingleItem", []float64{5.5}, 5.5},
		{"OddCount", []float64{1.1, 3.3, 2.2, 4.4, 5.5}, 3.3},
		{"EvenCount", []float64{1.1, 2.2, 3.3, 4.4}, 2.75},
		{"Unsorted", []float64{10.5, 2.5, 8.5, 4.5, 6.5}, 6.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateMedianContinuous(tt.values); got != tt.expected {
				t.Errorf("CalculateMedianContinuous() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCalculateMedianContinuous_DoesNotMutate(t *testing.T) {
	values := []float64{3, 1, 2}
	CalculateMedianContinuous(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input was reordered: %v", values)
	}
}

func TestErf(t *testing.T) {
	for _, x := range []float64{-3, -1.5, -0.5, 0, 0.25, 1, 2, 4} {
		if got, want := Erf(x), math.Erf(x); math.Abs(got-want) > 2e-7 {
			t.Errorf("Erf(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestNormalCDF(t *testing.T) {
	tests := []struct {
		x        float64
		expected float64
	}{
		{0, 0.5},
		{1, 0.8413447},
		{-1, 0.1586553},
		{1.959964, 0.975},
	}
	for _, tt := range tests {
		if got := NormalCDF(tt.x); math.Abs(got-tt.expected) > 1e-6 {
			t.Errorf("NormalCDF(%v) = %v, want %v", tt.x, got, tt.expected)
		}
	}
}
