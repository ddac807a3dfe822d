package geo

import (
	"math"
	"testing"
)

type point struct {
	lat, lon float64
}

var samples = []point{
	{52.5200, 13.4050},
	{52.5300, 13.4050},
	{48.1351, 11.5820},
	{-33.8688, 151.2093},
	{0, 0},
	{0, 180},
	{90, 0},
	{-90, -180},
	{40.7128, -74.0060},
}

func TestDistanceKmSamePointIsZero(t *testing.T) {
	t.Parallel()

	for _, p := range samples {
		if got := DistanceKm(p.lat, p.lon, p.lat, p.lon); got != 0 {
			t.Fatalf("expected 0 for %v, got %v", p, got)
		}
	}
}

func TestDistanceKmIsSymmetric(t *testing.T) {
	t.Parallel()

	for _, a := range samples {
		for _, b := range samples {
			ab := DistanceKm(a.lat, a.lon, b.lat, b.lon)
			ba := DistanceKm(b.lat, b.lon, a.lat, a.lon)
			if ab != ba {
				t.Fatalf("expected symmetric distance for %v and %v, got %v and %v", a, b, ab, ba)
			}
			if ab < 0 {
				t.Fatalf("expected non-negative distance, got %v", ab)
			}
		}
	}
}

func TestDistanceKmKnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		a, b      point
		want      float64
		tolerance float64
	}{
		{
			name:      "berlin hundredth degree north",
			a:         point{52.52, 13.405},
			b:         point{52.53, 13.405},
			want:      1.11,
			tolerance: 0.05,
		},
		{
			name:      "berlin to munich",
			a:         point{52.5200, 13.4050},
			b:         point{48.1351, 11.5820},
			want:      504,
			tolerance: 2,
		},
		{
			name:      "half circumference",
			a:         point{0, 0},
			b:         point{0, 180},
			want:      math.Pi * EarthRadiusKm,
			tolerance: 1e-6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := DistanceKm(tt.a.lat, tt.a.lon, tt.b.lat, tt.b.lon)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Fatalf("expected %v±%v km, got %v", tt.want, tt.tolerance, got)
			}
		})
	}
}
