package finance

import (
	"fmt"
	"math"
)

// Payment returns the monthly payment that retires principal in months at
// monthlyRate. The result is rounded up to the cent so the lender is never underpaid.
func Payment(months int, principal, monthlyRate float64) float64 {
	if monthlyRate == 0 {
		return RoundUpToCent(principal / float64(months))
	}
	growth := math.Pow(1+monthlyRate, float64(months))
	return RoundUpToCent(principal * monthlyRate * growth / (growth - 1))
}

// Principal returns the loan size that payment retires in months at monthlyRate.
func Principal(months int, payment, monthlyRate float64) float64 {
	if monthlyRate == 0 {
		return RoundToNearestCent(payment * float64(months))
	}
	growth := math.Pow(1+monthlyRate, float64(months))
	return RoundToNearestCent(payment * (growth - 1) / (monthlyRate * growth))
}

// Months returns the number of payments needed to retire principal.
// Payments that do not exceed the monthly interest yield ErrInfeasibleTerms.
func Months(principal, payment, monthlyRate float64) (int, error) {
	if payment <= 0 {
		return 0, fmt.Errorf("payment %.2f: %w", payment, ErrInfeasibleTerms)
	}
	if monthlyRate == 0 {
		return int(math.Ceil(principal / payment)), nil
	}

	interest := principal * monthlyRate
	if payment <= interest {
		return 0, fmt.Errorf("payment %.2f does not cover interest %.2f: %w",
			payment, interest, ErrInfeasibleTerms)
	}

	n := (math.Log(payment) - math.Log(payment-interest)) / math.Log(1+monthlyRate)
	return int(math.Ceil(n)), nil
}
