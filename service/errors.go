package service

import "errors"

var (
	ErrInvalidPrincipal = errors.New("invalid principal")
	ErrInvalidPayment   = errors.New("invalid payment")
	ErrInvalidMonths    = errors.New("invalid number of months")
	ErrInvalidRate      = errors.New("invalid interest rate")
)
