package models

import "time"

// PaymentBreakdown is a full monthly housing payment split into its parts.
// TotalMonthly is the sum of the five components.
type PaymentBreakdown struct {
	Principal     float64 `json:"principal"`
	Interest      float64 `json:"interest"`
	PropertyTax   float64 `json:"property_tax"`
	HomeInsurance float64 `json:"home_insurance"`
	PMI           float64 `json:"pmi"`
	TotalMonthly  float64 `json:"total_monthly"`
}

// DTIAnalysis classifies debt-to-income ratios against policy bands.
type DTIAnalysis struct {
	FrontEndRatio  float64 `json:"front_end_ratio"`
	BackEndRatio   float64 `json:"back_end_ratio"`
	FrontEndStatus string  `json:"front_end_status"`
	BackEndStatus  string  `json:"back_end_status"`
}

// AffordabilityResult is the solver output for one profile/market pair.
type AffordabilityResult struct {
	MaxHomePrice         float64            `json:"max_home_price"`
	RecommendedHomePrice float64            `json:"recommended_home_price"`
	DownPaymentAmount    float64            `json:"down_payment_amount"`
	DownPaymentPercent   float64            `json:"down_payment_percent"`
	LoanAmount           float64            `json:"loan_amount"`
	LimitingFactor       string             `json:"limiting_factor"`
	Payment              *PaymentBreakdown  `json:"payment"`
	DTI                  *DTIAnalysis       `json:"dti"`
	Amortization         []AmortizationYear `json:"amortization"`
}

// AmortizationYear is one year of a loan amortization schedule.
type AmortizationYear struct {
	Year             int     `json:"year"`
	PrincipalPaid    float64 `json:"principal_paid"`
	InterestPaid     float64 `json:"interest_paid"`
	RemainingBalance float64 `json:"remaining_balance"`
	EquityPercent    float64 `json:"equity_percent"`
}

// StressTestResult is one scenario outcome. Rate-hike and income-loss
// scenarios share this shape so callers can merge them into one risk report.
type StressTestResult struct {
	Scenario       string  `json:"scenario"`
	Description    string  `json:"description"`
	NewPayment     float64 `json:"new_payment,omitempty"`
	NewDTI         float64 `json:"new_dti"`
	MonthsOfRunway int     `json:"months_of_runway,omitempty"`
	CanAfford      bool    `json:"can_afford"`
	Severity       string  `json:"severity"`
}

// EmergencyFundAnalysis reports post-purchase liquidity runway.
type EmergencyFundAnalysis struct {
	PostPurchaseSavings float64 `json:"post_purchase_savings"`
	MonthlyNeed         float64 `json:"monthly_need"`
	MonthsCovered       int     `json:"months_covered"`
	Adequate            bool    `json:"adequate"`
	Recommendation      string  `json:"recommendation"`
}

// RentVsBuyYear is one year-boundary snapshot of the rent-vs-buy simulation.
type RentVsBuyYear struct {
	Year         int     `json:"year"`
	RentPaid     float64 `json:"rent_paid"`
	NetBuyCost   float64 `json:"net_buy_cost"`
	EquityBuilt  float64 `json:"equity_built"`
	NetAdvantage float64 `json:"net_advantage"`
}

// RentVsBuyReport compares cumulative renting cost against net owning cost.
type RentVsBuyReport struct {
	Years          []RentVsBuyYear `json:"years"`
	BreakEvenMonth int             `json:"break_even_month,omitempty"`
	BreakEvenYear  int             `json:"break_even_year,omitempty"`
	NetAdvantage5y float64         `json:"net_advantage_5y"`
	Verdict        string          `json:"verdict"`
}

// InvestmentProjectionYear is one year of the rental return projection.
type InvestmentProjectionYear struct {
	Year               int     `json:"year"`
	PropertyValue      float64 `json:"property_value"`
	Equity             float64 `json:"equity"`
	AnnualCashFlow     float64 `json:"annual_cash_flow"`
	CumulativeCashFlow float64 `json:"cumulative_cash_flow"`
	TotalReturn        float64 `json:"total_return"`
	TotalReturnPercent float64 `json:"total_return_percent"`
	AnnualizedReturn   float64 `json:"annualized_return"`
}

// InvestmentAnalysis holds the rental-property return math for one purchase.
type InvestmentAnalysis struct {
	MonthlyRent         float64                    `json:"monthly_rent"`
	RentBasis           string                     `json:"rent_basis"`
	OperatingExpenses   float64                    `json:"operating_expenses"`
	ManagementFee       float64                    `json:"management_fee"`
	VacancyReserve      float64                    `json:"vacancy_reserve"`
	CapExReserve        float64                    `json:"capex_reserve"`
	NOI                 float64                    `json:"noi"`
	MonthlyCashFlow     float64                    `json:"monthly_cash_flow"`
	AnnualCashFlow      float64                    `json:"annual_cash_flow"`
	CapRate             float64                    `json:"cap_rate"`
	CashOnCashReturn    float64                    `json:"cash_on_cash_return"`
	GrossRentMultiplier float64                    `json:"gross_rent_multiplier"`
	RentToPrice         float64                    `json:"rent_to_price"`
	TotalCashInvested   float64                    `json:"total_cash_invested"`
	Projections         []InvestmentProjectionYear `json:"projections"`
	Verdict             string                     `json:"verdict"`
}

// ActionItem is one prioritized readiness recommendation.
type ActionItem struct {
	Category string `json:"category"`
	Priority string `json:"priority"`
	Action   string `json:"action"`
	Impact   string `json:"impact"`
}

// ReadinessScore is the composite 0-100 pre-approval readiness measure.
type ReadinessScore struct {
	DTIScore         int          `json:"dti_score"`
	CreditScore      int          `json:"credit_score"`
	DownPaymentScore int          `json:"down_payment_score"`
	DebtHealthScore  int          `json:"debt_health_score"`
	Overall          int          `json:"overall"`
	Level            string       `json:"level"`
	ActionItems      []ActionItem `json:"action_items"`
}

// AnalysisReport is the full bundle one analysis run produces.
type AnalysisReport struct {
	Profile       *BorrowerProfile       `json:"profile"`
	Market        *MarketSnapshot        `json:"market"`
	Affordability *AffordabilityResult   `json:"affordability"`
	StressTests   []StressTestResult     `json:"stress_tests"`
	EmergencyFund *EmergencyFundAnalysis `json:"emergency_fund"`
	RentVsBuy     *RentVsBuyReport       `json:"rent_vs_buy"`
	Investment    *InvestmentAnalysis    `json:"investment"`
	Readiness     *ReadinessScore        `json:"readiness"`
	GeneratedAt   time.Time              `json:"generated_at"`
}
