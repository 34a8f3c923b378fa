package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amortizer/domain"
)

func TestGenerateSchedule_PositiveRate(t *testing.T) {
	terms := domain.LoanTerms{Principal: 10000, MonthlyRate: 0.005, Months: 36, Payment: 304.22}

	rows := GenerateSchedule(terms)
	require.Len(t, rows, 36)

	first := rows[0]
	assert.Equal(t, 1, first.Period)
	assert.InDelta(t, 304.22, first.Payment, 1e-9)
	assert.InDelta(t, 50.0, first.InterestPaid, 1e-9)
	assert.InDelta(t, 254.22, first.PrincipalPaid, 1e-9)
	assert.InDelta(t, 9745.78, first.Balance, 1e-9)

	last := rows[35]
	assert.Equal(t, 36, last.Period)
	assert.Equal(t, 0.0, last.Balance)
	assert.InDelta(t, 304.21, last.Payment, 1e-9)

	var principalPaid float64
	for i, row := range rows {
		assert.Equal(t, i+1, row.Period)
		principalPaid += row.PrincipalPaid
	}
	assert.InDelta(t, 10000, principalPaid, 1e-6)
}

func TestGenerateSchedule_LongTermEndsAtZero(t *testing.T) {
	r := MonthlyRate(5)
	terms := domain.LoanTerms{Principal: 200000, MonthlyRate: r, Months: 360, Payment: Payment(360, 200000, r)}

	rows := GenerateSchedule(terms)
	require.Len(t, rows, 360)
	assert.Equal(t, 0.0, rows[359].Balance)
	assert.InDelta(t, 833.33, rows[0].InterestPaid, 0.005)
}

func TestGenerateSchedule_ZeroRate(t *testing.T) {
	terms := domain.LoanTerms{Principal: 1000, Months: 3, Payment: Payment(3, 1000, 0)}

	rows := GenerateSchedule(terms)
	require.Len(t, rows, 3)

	for _, row := range rows {
		assert.Zero(t, row.InterestPaid)
	}
	assert.InDelta(t, 333.34, rows[0].Payment, 1e-9)
	assert.InDelta(t, 666.66, rows[0].Balance, 1e-9)
	assert.InDelta(t, 333.32, rows[2].Payment, 1e-9)
	assert.InDelta(t, rows[2].Payment, rows[2].PrincipalPaid, 1e-12)
	assert.Equal(t, 0.0, rows[2].Balance)
}

func TestGenerateSchedule_SingleMonth(t *testing.T) {
	rows := GenerateSchedule(domain.LoanTerms{Principal: 10000, MonthlyRate: 0.005, Months: 1, Payment: 10050})
	require.Len(t, rows, 1)
	assert.InDelta(t, 10050.0, rows[0].Payment, 1e-9)
	assert.InDelta(t, 10000.0, rows[0].PrincipalPaid, 1e-9)
	assert.Equal(t, 0.0, rows[0].Balance)
}

func TestSchedule_ConsumedOnce(t *testing.T) {
	s := NewSchedule(domain.LoanTerms{Principal: 1200, Months: 12, Payment: 100})

	row, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, 1, row.Period)

	rest := s.Rows()
	assert.Len(t, rest, 11)
	assert.Equal(t, 12, rest[10].Period)

	_, ok = s.Next()
	assert.False(t, ok)
	assert.Empty(t, s.Rows())
}

func TestSchedule_NoMonths(t *testing.T) {
	assert.Empty(t, GenerateSchedule(domain.LoanTerms{Principal: 1000}))
}
