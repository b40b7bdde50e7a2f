package services_test

import (
	"math"
	"testing"

	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFareCalculator_Calculate(t *testing.T) {
	calculator := services.NewFareCalculator()

	tests := []struct {
		name       string
		distanceKm float64
		total      int
		commission int
		earnings   int
	}{
		{"zero distance is base fare only", 0, 30, 5, 25},
		{"tiny distance is base fare only", 0.3, 30, 5, 25},
		{"base tier boundary", 2, 30, 5, 25},
		{"mid second tier", 3.5, 38, 6, 32},
		{"second tier boundary", 8, 63, 9, 54},
		{"third tier", 10, 75, 11, 64},
		{"third tier boundary", 15, 105, 16, 89},
		{"fourth tier drops commission to 12 percent", 20, 138, 17, 121},
		{"fourth tier boundary", 25, 170, 20, 150},
		{"fifth tier boundary", 40, 275, 33, 242},
		{"sixth tier drops commission to 10 percent", 65, 425, 43, 382},
		{"beyond the last breakpoint", 100, 635, 64, 571},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fare, err := calculator.Calculate(tt.distanceKm)

			require.NoError(t, err)
			assert.Equal(t, tt.total, fare.TotalPrice())
			assert.Equal(t, tt.commission, fare.Commission())
			assert.Equal(t, tt.earnings, fare.RiderEarnings())
		})
	}

	t.Run("parts always sum to the total", func(t *testing.T) {
		for d := 0.0; d <= 120; d += 0.7 {
			fare, err := calculator.Calculate(d)
			require.NoError(t, err)
			assert.Equal(t, fare.TotalPrice(), fare.Commission()+fare.RiderEarnings(), "distance %f", d)
			assert.GreaterOrEqual(t, fare.Commission(), 0)
		}
	})

	t.Run("rejects invalid distances", func(t *testing.T) {
		for _, d := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := calculator.Calculate(d)
			require.Error(t, err, "distance %f", d)
		}
	})
}
