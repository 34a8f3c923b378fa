package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amortizer/domain"
	"amortizer/finance"
)

type MockLoanRepository struct {
	Saved      []domain.Calculation
	ForceError bool
}

func (m *MockLoanRepository) Save(_ context.Context, calc domain.Calculation) error {
	if m.ForceError {
		return errors.New("save error")
	}
	m.Saved = append(m.Saved, calc)
	return nil
}

func (m *MockLoanRepository) Recent(_ context.Context, limit int) ([]domain.Calculation, error) {
	if limit > len(m.Saved) {
		limit = len(m.Saved)
	}
	return m.Saved[:limit], nil
}

type MockCache struct {
	Data       map[string]string
	ForceError bool
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string]string)}
}

func (m *MockCache) Get(_ context.Context, key string) (string, bool) {
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(_ context.Context, key string, value string) error {
	if m.ForceError {
		return errors.New("cache error")
	}
	m.Data[key] = value
	return nil
}

func newTestService() (*LoanService, *MockLoanRepository, *MockCache) {
	repo := &MockLoanRepository{}
	cache := NewMockCache()
	return NewLoanService(repo, cache), repo, cache
}

func TestCalculatePayment_WithInterest(t *testing.T) {
	svc, repo, _ := newTestService()

	result, err := svc.CalculatePayment(context.Background(), domain.PaymentInput{
		Principal:  10000,
		AnnualRate: 6,
		Months:     36,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.UnknownPayment, result.Solved)
	assert.InDelta(t, 304.22, result.Payment, 1e-9)
	assert.InDelta(t, 10951.90, result.TotalPayment, 1e-9)
	assert.InDelta(t, 951.90, result.TotalInterest, 1e-9)
	require.Len(t, repo.Saved, 1)
}

func TestCalculatePayment_ZeroInterest(t *testing.T) {
	svc, _, _ := newTestService()

	result, err := svc.CalculatePayment(context.Background(), domain.PaymentInput{
		Principal: 1200,
		Months:    12,
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.Payment)
	assert.Equal(t, 1200.0, result.TotalPayment)
	assert.Zero(t, result.TotalInterest)
}

func TestCalculatePayment_RoundsAPRToEighth(t *testing.T) {
	svc, _, _ := newTestService()

	result, err := svc.CalculatePayment(context.Background(), domain.PaymentInput{
		Principal:  10000,
		AnnualRate: 6.05,
		Months:     36,
	})
	require.NoError(t, err)
	assert.Equal(t, 6.0, result.AnnualRate)
	assert.InDelta(t, 304.22, result.Payment, 1e-9)
}

func TestCalculatePayment_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input domain.PaymentInput
		err   error
	}{
		{"zero principal", domain.PaymentInput{Principal: 0, AnnualRate: 10, Months: 12}, ErrInvalidPrincipal},
		{"principal above maximum", domain.PaymentInput{Principal: MaxLoanAmount * 2, AnnualRate: 10, Months: 12}, ErrInvalidPrincipal},
		{"negative rate", domain.PaymentInput{Principal: 1000, AnnualRate: -1, Months: 12}, ErrInvalidRate},
		{"zero months", domain.PaymentInput{Principal: 1000, AnnualRate: 10, Months: 0}, ErrInvalidMonths},
		{"too many months", domain.PaymentInput{Principal: 1000, AnnualRate: 10, Months: 361}, ErrInvalidMonths},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestService()

			_, err := svc.CalculatePayment(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.err)
			assert.Empty(t, repo.Saved, "repository Save should NOT be called")
		})
	}
}

func TestCalculatePayment_UsesCache(t *testing.T) {
	svc, repo, cache := newTestService()
	input := domain.PaymentInput{Principal: 10000, AnnualRate: 6, Months: 36}

	first, err := svc.CalculatePayment(context.Background(), input)
	require.NoError(t, err)
	assert.Len(t, cache.Data, 1)

	second, err := svc.CalculatePayment(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, repo.Saved, 1, "cached results are not saved again")
}

func TestCalculatePayment_IgnoresUnreadableCacheEntry(t *testing.T) {
	svc, _, cache := newTestService()
	cache.Data["payment:10000.00:6.000:36"] = "{not json"

	result, err := svc.CalculatePayment(context.Background(), domain.PaymentInput{
		Principal: 10000, AnnualRate: 6, Months: 36,
	})
	require.NoError(t, err)
	assert.InDelta(t, 304.22, result.Payment, 1e-9)
}

func TestCalculatePayment_StoreFailuresAreNotFatal(t *testing.T) {
	repo := &MockLoanRepository{ForceError: true}
	cache := NewMockCache()
	cache.ForceError = true
	svc := NewLoanService(repo, cache)

	result, err := svc.CalculatePayment(context.Background(), domain.PaymentInput{
		Principal: 1200, Months: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.Payment)
}

func TestCalculatePrincipal(t *testing.T) {
	svc, _, _ := newTestService()

	result, err := svc.CalculatePrincipal(context.Background(), domain.PrincipalInput{
		Payment:    304.22,
		AnnualRate: 6,
		Months:     36,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.UnknownPrincipal, result.Solved)
	assert.InDelta(t, 10000.02, result.Principal, 1e-9)

	_, err = svc.CalculatePrincipal(context.Background(), domain.PrincipalInput{Payment: 0, Months: 12})
	assert.ErrorIs(t, err, ErrInvalidPayment)
}

func TestCalculateMonths(t *testing.T) {
	svc, _, _ := newTestService()

	t.Run("single payoff at zero rate", func(t *testing.T) {
		result, err := svc.CalculateMonths(context.Background(), domain.MonthsInput{
			Principal: 1000,
			Payment:   1000,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.UnknownMonths, result.Solved)
		assert.Equal(t, 1, result.Months)
	})

	t.Run("recovers computed term", func(t *testing.T) {
		result, err := svc.CalculateMonths(context.Background(), domain.MonthsInput{
			Principal:  10000,
			Payment:    304.22,
			AnnualRate: 6,
		})
		require.NoError(t, err)
		assert.Equal(t, 36, result.Months)
	})

	t.Run("payment equal to interest is infeasible", func(t *testing.T) {
		_, err := svc.CalculateMonths(context.Background(), domain.MonthsInput{
			Principal:  10000,
			Payment:    50,
			AnnualRate: 6,
		})
		assert.ErrorIs(t, err, finance.ErrInfeasibleTerms)
	})

	t.Run("term beyond maximum is rejected", func(t *testing.T) {
		_, err := svc.CalculateMonths(context.Background(), domain.MonthsInput{
			Principal: 10000,
			Payment:   10,
		})
		assert.ErrorIs(t, err, ErrInvalidMonths)
	})
}

func TestCalculateRate(t *testing.T) {
	svc, _, _ := newTestService()

	result, err := svc.CalculateRate(context.Background(), domain.RateInput{
		Principal: 10000,
		Payment:   304.22,
		Months:    36,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.UnknownRate, result.Solved)
	assert.Equal(t, 6.0, result.AnnualRate)
}

func TestCalculateRate_PaymentsBelowPrincipal(t *testing.T) {
	svc, _, _ := newTestService()

	result, err := svc.CalculateRate(context.Background(), domain.RateInput{
		Principal: 5000,
		Payment:   100,
		Months:    10,
	})
	require.NoError(t, err)
	assert.Zero(t, result.AnnualRate)
}

func TestCalculateRate_DivergentSolverIsInfeasible(t *testing.T) {
	svc, _, _ := newTestService()
	svc.WithRateSolver(finance.RateSolver{Iterations: 1, Step: 0})

	_, err := svc.CalculateRate(context.Background(), domain.RateInput{
		Principal: 10000,
		Payment:   304.22,
		Months:    36,
	})
	assert.ErrorIs(t, err, finance.ErrInfeasibleTerms)
}

func TestGenerateSchedule(t *testing.T) {
	svc, _, _ := newTestService()

	result, err := svc.GenerateSchedule(context.Background(), domain.ScheduleInput{
		Principal:  10000,
		Payment:    304.22,
		AnnualRate: 6,
		Months:     36,
	})
	require.NoError(t, err)
	require.Len(t, result.Rows, 36)
	assert.Equal(t, 0.0, result.Rows[35].Balance)
	assert.InDelta(t, 50.0, result.Rows[0].InterestPaid, 1e-9)
	assert.InDelta(t, 951.90, result.Terms.TotalInterest, 1e-9)

	_, err = svc.GenerateSchedule(context.Background(), domain.ScheduleInput{Principal: 1000, Payment: 100})
	assert.ErrorIs(t, err, ErrInvalidMonths)
}

func TestRecent(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CalculatePayment(ctx, domain.PaymentInput{Principal: 1200, Months: 12})
	require.NoError(t, err)
	_, err = svc.CalculateRate(ctx, domain.RateInput{Principal: 5000, Payment: 100, Months: 10})
	require.NoError(t, err)

	recent, err := svc.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}

func TestPaymentBounds(t *testing.T) {
	low, high := PaymentBounds(10000, 6)
	assert.InDelta(t, 50.0, low, 1e-9)
	assert.InDelta(t, 10050.0, high, 1e-9)

	low, high = PaymentBounds(1000, 0)
	assert.Zero(t, low)
	assert.InDelta(t, 1000.0, high, 1e-9)
}

func TestMinimumMonths(t *testing.T) {
	assert.Equal(t, 4, MinimumMonths(1000, 300))
	assert.Equal(t, 1, MinimumMonths(1000, 1000))
	assert.Zero(t, MinimumMonths(1000, 0))
}
