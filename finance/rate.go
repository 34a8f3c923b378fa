package finance

import "math"

const (
	DefaultIterations     = 20
	DefaultDerivativeStep = 0.001
)

// RateSolver recovers the monthly rate of a loan with Newton-Raphson using a
// forward-difference slope. The zero value is not usable; use NewRateSolver.
type RateSolver struct {
	// Iterations is the number of Newton steps taken.
	Iterations int
	// Step is the forward-difference distance used for the slope.
	Step float64
	// Tolerance stops the iteration early once a step moves the rate by less
	// than it. Zero disables early exit.
	Tolerance float64
}

func NewRateSolver() RateSolver {
	return RateSolver{
		Iterations: DefaultIterations,
		Step:       DefaultDerivativeStep,
	}
}

// AnnualRate returns the APR in percent, rounded to the nearest 1/8 point,
// at which payment retires principal in months. Loans repaid with no more than
// the principal have rate 0. A flat residual yields NaN.
func (s RateSolver) AnnualRate(principal, payment float64, months int) float64 {
	return RoundToNearestEighth(AnnualRate(s.MonthlyRate(principal, payment, months)))
}

// MonthlyRate is AnnualRate without the conversion and rounding.
func (s RateSolver) MonthlyRate(principal, payment float64, months int) float64 {
	n := float64(months)
	if payment*n <= principal {
		return 0
	}

	f := func(r float64) float64 {
		return rateResidual(principal, payment, r, n)
	}

	r := (payment*n - principal) / principal
	for i := 0; i < s.Iterations; i++ {
		fr := f(r)
		slope := (f(r+s.Step) - fr) / s.Step
		next := r - fr/slope
		if s.Tolerance > 0 && math.Abs(next-r) < s.Tolerance {
			r = next
			break
		}
		r = next
	}
	return r
}

// rateResidual is zero when r is the monthly rate for the payment.
func rateResidual(principal, payment, r, n float64) float64 {
	growth := math.Pow(1+r, n)
	return payment/principal - r*growth/(growth-1)
}

// SolveAnnualRate solves for the APR with the default solver: 20 Newton steps, no early exit.
func SolveAnnualRate(principal, payment float64, months int) float64 {
	return NewRateSolver().AnnualRate(principal, payment, months)
}
