package models

// Requests for analysis HTTP endpoints. Defined in domain for consistency and reuse.

type ProfileRequest struct {
	AnnualIncome       float64 `json:"annual_income" validate:"required,gte=0"`
	AdditionalIncome   float64 `json:"additional_income" validate:"gte=0"`
	MonthlyDebts       float64 `json:"monthly_debts" validate:"gte=0"`
	DownPaymentSavings float64 `json:"down_payment_savings" validate:"gte=0"`
	AdditionalSavings  float64 `json:"additional_savings" validate:"gte=0"`
	CreditScore        int     `json:"credit_score" validate:"required,gte=300,lte=850"`
	MonthlyExpenses    float64 `json:"monthly_expenses" validate:"gte=0"`
	CurrentRent        float64 `json:"current_rent" validate:"gte=0"`
	LoanTermYears      int     `json:"loan_term_years" default:"30" validate:"oneof=15 20 30"`
	LoanType           string  `json:"loan_type" default:"conventional" validate:"oneof=conventional fha va"`
}

// ToModel converts the request into a domain profile.
func (r *ProfileRequest) ToModel() *BorrowerProfile {
	return &BorrowerProfile{
		AnnualIncome:       r.AnnualIncome,
		AdditionalIncome:   r.AdditionalIncome,
		MonthlyDebts:       r.MonthlyDebts,
		DownPaymentSavings: r.DownPaymentSavings,
		AdditionalSavings:  r.AdditionalSavings,
		CreditScore:        r.CreditScore,
		MonthlyExpenses:    r.MonthlyExpenses,
		CurrentRent:        r.CurrentRent,
		LoanTermYears:      r.LoanTermYears,
		LoanType:           r.LoanType,
	}
}

type MarketRequest struct {
	Rate30Year    float64 `json:"rate_30_year" validate:"required,gt=0,lte=25"`
	Rate15Year    float64 `json:"rate_15_year" validate:"required,gt=0,lte=25"`
	InflationRate float64 `json:"inflation_rate" validate:"gte=0,lte=50"`
	AsOf          string  `json:"as_of,omitempty"`
}

// ToModel converts the request into a domain snapshot. AsOf parsing is
// handled by the caller so transport stays out of the domain type.
func (r *MarketRequest) ToModel() *MarketSnapshot {
	return &MarketSnapshot{
		Rate30Year:    r.Rate30Year,
		Rate15Year:    r.Rate15Year,
		InflationRate: r.InflationRate,
	}
}

type AnalysisRequest struct {
	Profile ProfileRequest `json:"profile" validate:"required"`
	Market  MarketRequest  `json:"market" validate:"required"`
}

type AffordabilityRequest struct {
	Profile ProfileRequest `json:"profile" validate:"required"`
	Market  MarketRequest  `json:"market" validate:"required"`
}

type StressRequest struct {
	Profile    ProfileRequest `json:"profile" validate:"required"`
	Market     MarketRequest  `json:"market" validate:"required"`
	RateDeltas []float64      `json:"rate_deltas,omitempty" validate:"omitempty,max=10,dive,gt=0,lte=10"`
	IncomeCuts []float64      `json:"income_cuts,omitempty" validate:"omitempty,max=10,dive,gt=0,lt=100"`
}

type RentVsBuyRequest struct {
	Profile ProfileRequest `json:"profile" validate:"required"`
	Market  MarketRequest  `json:"market" validate:"required"`
}

type InvestmentRequest struct {
	Profile       ProfileRequest `json:"profile" validate:"required"`
	Market        MarketRequest  `json:"market" validate:"required"`
	PurchasePrice float64        `json:"purchase_price" validate:"required,gt=0"`
	DownPayment   float64        `json:"down_payment" validate:"gte=0"`
	MonthlyRent   float64        `json:"monthly_rent" validate:"gte=0"`
	MonthlyHOA    float64        `json:"monthly_hoa" validate:"gte=0"`
}

type ReadinessRequest struct {
	Profile ProfileRequest `json:"profile" validate:"required"`
	Market  MarketRequest  `json:"market" validate:"required"`
}
