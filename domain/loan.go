package domain

// LoanTerms is a fully resolved loan: all four quantities are known.
type LoanTerms struct {
	Principal   float64
	MonthlyRate float64
	Months      int
	Payment     float64
}

// AnnualRate returns the APR in percent for the monthly rate.
func (t LoanTerms) AnnualRate() float64 {
	return t.MonthlyRate * 1200
}

type ScheduleRow struct {
	Period        int     `json:"period"`
	Payment       float64 `json:"payment"`
	PrincipalPaid float64 `json:"principal_paid"`
	InterestPaid  float64 `json:"interest_paid"`
	Balance       float64 `json:"balance"`
}

// Unknown names the quantity solved by a calculation.
type Unknown string

const (
	UnknownPayment   Unknown = "payment"
	UnknownPrincipal Unknown = "principal"
	UnknownMonths    Unknown = "months"
	UnknownRate      Unknown = "rate"
)

type Calculation struct {
	Solved        Unknown `json:"solved"`
	Principal     float64 `json:"principal"`
	Payment       float64 `json:"payment"`
	Months        int     `json:"months"`
	AnnualRate    float64 `json:"annual_rate"`
	TotalPayment  float64 `json:"total_payment"`
	TotalInterest float64 `json:"total_interest"`
}

// Terms converts the calculation back into the quadruple used by the schedule.
func (c Calculation) Terms() LoanTerms {
	return LoanTerms{
		Principal:   c.Principal,
		MonthlyRate: c.AnnualRate / 1200,
		Months:      c.Months,
		Payment:     c.Payment,
	}
}
