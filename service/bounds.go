package service

import (
	"math"

	"amortizer/finance"
)

// PaymentBounds returns the range of payments accepted when solving for the
// number of months: above the first month's interest and no more than a
// single payoff.
func PaymentBounds(principal, annualRate float64) (low, high float64) {
	r := finance.MonthlyRate(annualRate)
	low = finance.RoundToNearestCent(principal * r)
	high = finance.RoundToNearestCent(principal * (1 + r))
	return low, high
}

// MinimumMonths is the shortest term over which payment can repay principal.
func MinimumMonths(principal, payment float64) int {
	if payment <= 0 {
		return 0
	}
	return int(math.Ceil(principal / payment))
}
