package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"amortizer/domain"
	"amortizer/finance"
	"amortizer/logger"
	"amortizer/metrics"
	"amortizer/repository"
)

type LoanService struct {
	repo   repository.LoanRepository
	cache  repository.CacheRepository
	solver finance.RateSolver
}

// NewLoanService creates a new LoanService with the given repository and cache.
func NewLoanService(repo repository.LoanRepository,
	cache repository.CacheRepository,
) *LoanService {
	return &LoanService{repo: repo, cache: cache, solver: finance.NewRateSolver()}
}

// WithRateSolver replaces the solver used for interest-rate recovery.
func (s *LoanService) WithRateSolver(solver finance.RateSolver) *LoanService {
	s.solver = solver
	return s
}

// CalculatePayment solves for the monthly payment.
func (s *LoanService) CalculatePayment(
	ctx context.Context,
	input domain.PaymentInput,
) (domain.Calculation, error) {
	principal := finance.RoundToNearestCent(input.Principal)
	apr := finance.RoundToNearestEighth(input.AnnualRate)
	if err := validate(principalCheck(principal), rateCheck(apr), monthsCheck(input.Months)); err != nil {
		return domain.Calculation{}, err
	}

	key := fmt.Sprintf("payment:%.2f:%.3f:%d", principal, apr, input.Months)
	return s.calculate(ctx, domain.UnknownPayment, key, func() (domain.Calculation, error) {
		payment := finance.Payment(input.Months, principal, finance.MonthlyRate(apr))
		return domain.Calculation{
			Principal:  principal,
			Payment:    payment,
			Months:     input.Months,
			AnnualRate: apr,
		}, nil
	})
}

// CalculatePrincipal solves for the loan size.
func (s *LoanService) CalculatePrincipal(
	ctx context.Context,
	input domain.PrincipalInput,
) (domain.Calculation, error) {
	payment := finance.RoundToNearestCent(input.Payment)
	apr := finance.RoundToNearestEighth(input.AnnualRate)
	if err := validate(paymentCheck(payment), rateCheck(apr), monthsCheck(input.Months)); err != nil {
		return domain.Calculation{}, err
	}

	key := fmt.Sprintf("principal:%.2f:%.3f:%d", payment, apr, input.Months)
	return s.calculate(ctx, domain.UnknownPrincipal, key, func() (domain.Calculation, error) {
		principal := finance.Principal(input.Months, payment, finance.MonthlyRate(apr))
		if principal > MaxLoanAmount {
			return domain.Calculation{}, fmt.Errorf("%w: %.2f exceeds the maximum of %.2f",
				ErrInvalidPrincipal, principal, MaxLoanAmount)
		}
		return domain.Calculation{
			Principal:  principal,
			Payment:    payment,
			Months:     input.Months,
			AnnualRate: apr,
		}, nil
	})
}

// CalculateMonths solves for the number of payments.
func (s *LoanService) CalculateMonths(
	ctx context.Context,
	input domain.MonthsInput,
) (domain.Calculation, error) {
	principal := finance.RoundToNearestCent(input.Principal)
	payment := finance.RoundToNearestCent(input.Payment)
	apr := finance.RoundToNearestEighth(input.AnnualRate)
	if err := validate(principalCheck(principal), paymentCheck(payment), rateCheck(apr)); err != nil {
		return domain.Calculation{}, err
	}

	key := fmt.Sprintf("months:%.2f:%.2f:%.3f", principal, payment, apr)
	return s.calculate(ctx, domain.UnknownMonths, key, func() (domain.Calculation, error) {
		months, err := finance.Months(principal, payment, finance.MonthlyRate(apr))
		if err != nil {
			return domain.Calculation{}, err
		}
		if months > MaxTermMonths {
			return domain.Calculation{}, fmt.Errorf("%w: payment %.2f needs %d months, more than the maximum of %d",
				ErrInvalidMonths, payment, months, MaxTermMonths)
		}
		return domain.Calculation{
			Principal:  principal,
			Payment:    payment,
			Months:     months,
			AnnualRate: apr,
		}, nil
	})
}

// CalculateRate solves for the APR. Payments that total no more than the
// principal give a rate of zero.
func (s *LoanService) CalculateRate(
	ctx context.Context,
	input domain.RateInput,
) (domain.Calculation, error) {
	principal := finance.RoundToNearestCent(input.Principal)
	payment := finance.RoundToNearestCent(input.Payment)
	if err := validate(principalCheck(principal), paymentCheck(payment), monthsCheck(input.Months)); err != nil {
		return domain.Calculation{}, err
	}

	key := fmt.Sprintf("rate:%.2f:%.2f:%d", principal, payment, input.Months)
	return s.calculate(ctx, domain.UnknownRate, key, func() (domain.Calculation, error) {
		apr := s.solver.AnnualRate(principal, payment, input.Months)
		if math.IsNaN(apr) || math.IsInf(apr, 0) || apr < 0 {
			return domain.Calculation{}, fmt.Errorf("rate for payment %.2f over %d months: %w",
				payment, input.Months, finance.ErrInfeasibleTerms)
		}
		return domain.Calculation{
			Principal:  principal,
			Payment:    payment,
			Months:     input.Months,
			AnnualRate: apr,
		}, nil
	})
}

// GenerateSchedule returns the month-by-month breakdown of fully resolved terms.
func (s *LoanService) GenerateSchedule(
	ctx context.Context,
	input domain.ScheduleInput,
) (domain.ScheduleResult, error) {
	principal := finance.RoundToNearestCent(input.Principal)
	payment := finance.RoundToNearestCent(input.Payment)
	apr := finance.RoundToNearestEighth(input.AnnualRate)
	if err := validate(principalCheck(principal), paymentCheck(payment), rateCheck(apr), monthsCheck(input.Months)); err != nil {
		return domain.ScheduleResult{}, err
	}

	calc := domain.Calculation{
		Principal:  principal,
		Payment:    payment,
		Months:     input.Months,
		AnnualRate: apr,
	}
	rows := finance.GenerateSchedule(calc.Terms())
	calc.TotalPayment, calc.TotalInterest = totals(principal, rows)

	metrics.ScheduleRowsTotal.Add(float64(len(rows)))
	logger.FromContext(ctx).Debug("schedule generated", "months", input.Months, "rows", len(rows))

	return domain.ScheduleResult{Terms: calc, Rows: rows}, nil
}

// Recent returns the latest calculations, newest first.
func (s *LoanService) Recent(ctx context.Context, limit int) ([]domain.Calculation, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return s.repo.Recent(ctx, limit)
}

func (s *LoanService) calculate(
	ctx context.Context,
	op domain.Unknown,
	key string,
	solve func() (domain.Calculation, error),
) (domain.Calculation, error) {
	log := logger.FromContext(ctx)

	if cached, ok := s.lookup(ctx, key); ok {
		metrics.CacheLookupsTotal.WithLabelValues(metrics.CacheHit).Inc()
		return cached, nil
	}
	metrics.CacheLookupsTotal.WithLabelValues(metrics.CacheMiss).Inc()

	calc, err := solve()
	if err != nil {
		metrics.InfeasibleTotal.WithLabelValues(string(op)).Inc()
		return domain.Calculation{}, err
	}
	calc.Solved = op
	calc.TotalPayment, calc.TotalInterest = totals(calc.Principal,
		finance.GenerateSchedule(calc.Terms()))
	metrics.CalculationsTotal.WithLabelValues(string(op)).Inc()

	if encoded, err := json.Marshal(calc); err == nil {
		if err := s.cache.Set(ctx, key, string(encoded)); err != nil {
			log.Warn("failed to cache loan calculation", "key", key, "error", err)
		}
	}

	// not critical if this fails
	if err := s.repo.Save(ctx, calc); err != nil {
		log.Warn("failed to save loan calculation", "error", err)
	}

	log.Debug("loan calculated", "solved", op, "principal", calc.Principal,
		"payment", calc.Payment, "months", calc.Months, "apr", calc.AnnualRate)
	return calc, nil
}

func (s *LoanService) lookup(ctx context.Context, key string) (domain.Calculation, bool) {
	val, ok := s.cache.Get(ctx, key)
	if !ok {
		return domain.Calculation{}, false
	}
	var calc domain.Calculation
	if err := json.Unmarshal([]byte(val), &calc); err != nil {
		logger.FromContext(ctx).Warn("discarding unreadable cache entry", "key", key, "error", err)
		return domain.Calculation{}, false
	}
	return calc, true
}

// totals sums what the borrower actually pays over the schedule.
func totals(principal float64, rows []domain.ScheduleRow) (paid, interest float64) {
	for _, row := range rows {
		paid += row.Payment
	}
	paid = finance.RoundToNearestCent(paid)
	return paid, finance.RoundToNearestCent(paid - principal)
}
