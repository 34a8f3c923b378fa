package service

const (
	MaxLoanAmount   = 1_000_000_000.0
	MaxInterestRate = 1000.0 // percent per year
	MaxTermMonths   = 360
	MinTermMonths   = 1

	DefaultRecentLimit = 20
)
