package donation_test

import (
	"math"
	"testing"

	"Flux/internal/domain/donation"
)

func TestEstimateImpact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		charityAmount float64
		impactRate    float64
		want          int
	}{
		{
			name:          "meals at two per dollar",
			charityAmount: 9.50,
			impactRate:    2,
			want:          19,
		},
		{
			name:          "fractional result rounds half up",
			charityAmount: 9.50,
			impactRate:    0.5,
			want:          5,
		},
		{
			name:          "zero rate means no estimate",
			charityAmount: 9.50,
			impactRate:    0,
			want:          0,
		},
		{
			name:          "negative rate means no estimate",
			charityAmount: 9.50,
			impactRate:    -1,
			want:          0,
		},
		{
			name:          "NaN rate means no estimate",
			charityAmount: 9.50,
			impactRate:    math.NaN(),
			want:          0,
		},
		{
			name:          "infinite rate means no estimate",
			charityAmount: 9.50,
			impactRate:    math.Inf(1),
			want:          0,
		},
		{
			name:          "negative product clamps to zero",
			charityAmount: -5,
			impactRate:    2,
			want:          0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := donation.EstimateImpact(tt.charityAmount, tt.impactRate)
			if got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
