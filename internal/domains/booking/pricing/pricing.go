// Package pricing turns validated budget and party-size inputs into the
// totals breakdown stored on a booking. Pure functions only; inputs are
// pre-validated and no error conditions exist.
package pricing

import (
	"flavours/internal/domains/booking/model"
	"flavours/shared/constant"
)

// ComputeTotals calculates the per-guest and whole-party estimate. Budgets are
// clamped to the published minimums, the deposit is fixed, and the balance due
// is floored at zero. wineBudget may be nil; when wine is included a nil
// budget falls back to the wine minimum.
func ComputeTotals(partySize int, mealBudgetPerGuest float64, wineIncluded bool, wineBudgetPerGuest *float64) model.Totals {
	foodPerGuest := max(mealBudgetPerGuest, constant.MinMealBudget)

	winePerGuest := 0.0
	if wineIncluded {
		winePerGuest = constant.MinWineBudget
		if wineBudgetPerGuest != nil {
			winePerGuest = max(*wineBudgetPerGuest, constant.MinWineBudget)
		}
	}

	perGuestTotal := foodPerGuest + winePerGuest
	estimatedTotal := perGuestTotal * float64(partySize)

	return model.Totals{
		PerPersonFood:  foodPerGuest,
		PerPersonWine:  winePerGuest,
		PerPersonTotal: perGuestTotal,
		EstimatedTotal: estimatedTotal,
		DepositDue:     constant.Deposit,
		BalanceDue:     max(estimatedTotal-constant.Deposit, 0),
	}
}
