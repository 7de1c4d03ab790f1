package report

import "testing"

func TestKelvinToFahrenheit(t *testing.T) {
	tests := []struct {
		k    float64
		want float64
	}{
		{0, -459.67},
		{255.372, 0},
		{273.15, 32},
		{294.261, 70},
		{373.15, 212},
	}

	for _, tt := range tests {
		if got := KelvinToFahrenheit(tt.k); got != tt.want {
			t.Errorf("KelvinToFahrenheit(%v) = %v, want %v", tt.k, got, tt.want)
		}
	}
}

func TestMetersPerSecondToMph(t *testing.T) {
	tests := []struct {
		mps  float64
		want float64
	}{
		{0, 0},
		{1, 2.24},
		{100, 223.7},
	}

	for _, tt := range tests {
		if got := MetersPerSecondToMph(tt.mps); got != tt.want {
			t.Errorf("MetersPerSecondToMph(%v) = %v, want %v", tt.mps, got, tt.want)
		}
	}
}
