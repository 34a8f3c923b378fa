package service

import (
	"fmt"
	"math"
)

type check func() error

func validate(checks ...check) error {
	for _, c := range checks {
		if err := c(); err != nil {
			return err
		}
	}
	return nil
}

func principalCheck(principal float64) check {
	return func() error {
		if principal <= 0 || !finite(principal) {
			return fmt.Errorf("%w: must be greater than 0", ErrInvalidPrincipal)
		}
		if principal > MaxLoanAmount {
			return fmt.Errorf("%w: exceeds the maximum of $%.2f", ErrInvalidPrincipal, MaxLoanAmount)
		}
		return nil
	}
}

func paymentCheck(payment float64) check {
	return func() error {
		if payment <= 0 || !finite(payment) {
			return fmt.Errorf("%w: must be greater than 0", ErrInvalidPayment)
		}
		return nil
	}
}

func monthsCheck(months int) check {
	return func() error {
		if months < MinTermMonths || months > MaxTermMonths {
			return fmt.Errorf("%w: must be between %d and %d", ErrInvalidMonths, MinTermMonths, MaxTermMonths)
		}
		return nil
	}
}

func rateCheck(apr float64) check {
	return func() error {
		if apr < 0 || !finite(apr) {
			return fmt.Errorf("%w: must be a non-negative number", ErrInvalidRate)
		}
		if apr > MaxInterestRate {
			return fmt.Errorf("%w: exceeds the maximum of %.2f%%", ErrInvalidRate, MaxInterestRate)
		}
		return nil
	}
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
