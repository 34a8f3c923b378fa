// Package finance holds the amortization math: rounding policies, the closed-form
// solvers for payment, principal and term, the interest-rate root finder and the
// schedule generator. Every function is pure.
package finance

import "math"

const (
	CentsPerDollar      = 100
	EighthsPerPoint     = 8
	AnnualPercentFactor = 1200
)

// RoundUpToCent returns the smallest multiple of 0.01 not below x.
func RoundUpToCent(x float64) float64 {
	return math.Ceil(x*CentsPerDollar) / CentsPerDollar
}

// RoundToNearestCent rounds half up to the nearest cent.
func RoundToNearestCent(x float64) float64 {
	return math.Floor(x*CentsPerDollar+0.5) / CentsPerDollar
}

// RoundToNearestEighth rounds an APR to the nearest 1/8 point. Exact ties go up.
func RoundToNearestEighth(x float64) float64 {
	up := math.Ceil(x*EighthsPerPoint) / EighthsPerPoint
	down := math.Floor(x*EighthsPerPoint) / EighthsPerPoint
	if math.Abs(up-x) <= math.Abs(down-x) {
		return up
	}
	return down
}

// MonthlyRate converts an APR in percent to a per-month fraction.
func MonthlyRate(apr float64) float64 {
	return apr / AnnualPercentFactor
}

// AnnualRate converts a per-month fraction to an APR in percent.
func AnnualRate(monthlyRate float64) float64 {
	return monthlyRate * AnnualPercentFactor
}
