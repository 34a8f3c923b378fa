package finance

import "amortizer/domain"

// Schedule produces the amortization rows of a loan one month at a time.
// It is consumed once; Next reports false after the last month.
type Schedule struct {
	terms   domain.LoanTerms
	period  int
	balance float64
}

func NewSchedule(terms domain.LoanTerms) *Schedule {
	return &Schedule{terms: terms, balance: terms.Principal}
}

// Next returns the row for the following month.
func (s *Schedule) Next() (domain.ScheduleRow, bool) {
	if s.period >= s.terms.Months {
		return domain.ScheduleRow{}, false
	}
	s.period++

	remaining := s.terms.Months - s.period + 1
	var row domain.ScheduleRow
	if s.terms.MonthlyRate == 0 {
		row = s.zeroRateRow(remaining)
	} else {
		row = s.compoundRow(remaining)
	}
	row.Period = s.period
	return row, true
}

// Rows drains the schedule into a slice.
func (s *Schedule) Rows() []domain.ScheduleRow {
	rows := make([]domain.ScheduleRow, 0, max(0, s.terms.Months-s.period))
	for {
		row, ok := s.Next()
		if !ok {
			return rows
		}
		rows = append(rows, row)
	}
}

func (s *Schedule) zeroRateRow(remaining int) domain.ScheduleRow {
	if remaining > 1 {
		s.balance -= s.terms.Payment
		return domain.ScheduleRow{
			Payment:       s.terms.Payment,
			PrincipalPaid: s.terms.Payment,
			Balance:       s.balance,
		}
	}

	// last month absorbs whatever rounding left over
	residual := s.balance
	s.balance = 0
	return domain.ScheduleRow{
		Payment:       residual,
		PrincipalPaid: residual,
	}
}

func (s *Schedule) compoundRow(remaining int) domain.ScheduleRow {
	r := s.terms.MonthlyRate
	interest := s.balance * r

	if remaining > 1 {
		// re-derive the payment for the remaining sub-loan so drift self-corrects
		payment := Payment(remaining, s.balance, r)
		principal := payment - interest
		s.balance -= principal
		return domain.ScheduleRow{
			Payment:       payment,
			PrincipalPaid: principal,
			InterestPaid:  interest,
			Balance:       s.balance,
		}
	}

	principal := s.balance
	s.balance = 0
	return domain.ScheduleRow{
		Payment:       RoundUpToCent(principal + interest),
		PrincipalPaid: principal,
		InterestPaid:  interest,
	}
}

// GenerateSchedule returns every row of the schedule for terms.
func GenerateSchedule(terms domain.LoanTerms) []domain.ScheduleRow {
	return NewSchedule(terms).Rows()
}
