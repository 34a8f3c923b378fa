package domain

type PaymentInput struct {
	Principal  float64 `json:"principal" validate:"gt=0"`
	AnnualRate float64 `json:"annual_rate" validate:"gte=0"`
	Months     int     `json:"months" validate:"gte=1,lte=360"`
}

type PrincipalInput struct {
	Payment    float64 `json:"payment" validate:"gt=0"`
	AnnualRate float64 `json:"annual_rate" validate:"gte=0"`
	Months     int     `json:"months" validate:"gte=1,lte=360"`
}

type MonthsInput struct {
	Principal  float64 `json:"principal" validate:"gt=0"`
	Payment    float64 `json:"payment" validate:"gt=0"`
	AnnualRate float64 `json:"annual_rate" validate:"gte=0"`
}

type RateInput struct {
	Principal float64 `json:"principal" validate:"gt=0"`
	Payment   float64 `json:"payment" validate:"gt=0"`
	Months    int     `json:"months" validate:"gte=1,lte=360"`
}

type ScheduleInput struct {
	Principal  float64 `json:"principal" validate:"gt=0"`
	Payment    float64 `json:"payment" validate:"gt=0"`
	AnnualRate float64 `json:"annual_rate" validate:"gte=0"`
	Months     int     `json:"months" validate:"gte=1,lte=360"`
}

type ScheduleResult struct {
	Terms Calculation   `json:"terms"`
	Rows  []ScheduleRow `json:"rows"`
}
