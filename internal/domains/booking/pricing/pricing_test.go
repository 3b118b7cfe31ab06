package pricing_test

import (
	"testing"

	"flavours/internal/domains/booking/model"
	"flavours/internal/domains/booking/pricing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name         string
		partySize    int
		mealBudget   float64
		wineIncluded bool
		wineBudget   *float64
		want         model.Totals
	}{
		{
			name:       "two guests without wine",
			partySize:  2,
			mealBudget: 80,
			want: model.Totals{
				PerPersonFood:  80,
				PerPersonWine:  0,
				PerPersonTotal: 80,
				EstimatedTotal: 160,
				DepositDue:     75,
				BalanceDue:     85,
			},
		},
		{
			name:         "wine included with explicit budget",
			partySize:    2,
			mealBudget:   80,
			wineIncluded: true,
			wineBudget:   floatPtr(90),
			want: model.Totals{
				PerPersonFood:  80,
				PerPersonWine:  90,
				PerPersonTotal: 170,
				EstimatedTotal: 340,
				DepositDue:     75,
				BalanceDue:     265,
			},
		},
		{
			name:         "wine included without budget falls back to the wine minimum",
			partySize:    4,
			mealBudget:   100,
			wineIncluded: true,
			want: model.Totals{
				PerPersonFood:  100,
				PerPersonWine:  75,
				PerPersonTotal: 175,
				EstimatedTotal: 700,
				DepositDue:     75,
				BalanceDue:     625,
			},
		},
		{
			name:         "budgets below the minimums are clamped",
			partySize:    2,
			mealBudget:   30,
			wineIncluded: true,
			wineBudget:   floatPtr(60),
			want: model.Totals{
				PerPersonFood:  50,
				PerPersonWine:  75,
				PerPersonTotal: 125,
				EstimatedTotal: 250,
				DepositDue:     75,
				BalanceDue:     175,
			},
		},
		{
			name:       "balance due never goes negative",
			partySize:  1,
			mealBudget: 50,
			want: model.Totals{
				PerPersonFood:  50,
				PerPersonWine:  0,
				PerPersonTotal: 50,
				EstimatedTotal: 50,
				DepositDue:     75,
				BalanceDue:     0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.ComputeTotals(tt.partySize, tt.mealBudget, tt.wineIncluded, tt.wineBudget)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeTotalsIsPure(t *testing.T) {
	first := pricing.ComputeTotals(3, 85, true, floatPtr(80))
	second := pricing.ComputeTotals(3, 85, true, floatPtr(80))

	assert.Equal(t, first, second)
}
