package models

import (
	"fmt"
	"time"
)

// BorrowerProfile is the immutable financial profile an analysis runs on.
type BorrowerProfile struct {
	AnnualIncome       float64 `json:"annual_income"`
	AdditionalIncome   float64 `json:"additional_income"`
	MonthlyDebts       float64 `json:"monthly_debts"`
	DownPaymentSavings float64 `json:"down_payment_savings"`
	AdditionalSavings  float64 `json:"additional_savings"`
	CreditScore        int     `json:"credit_score"`
	MonthlyExpenses    float64 `json:"monthly_expenses"`
	CurrentRent        float64 `json:"current_rent"`
	LoanTermYears      int     `json:"loan_term_years"`
	LoanType           string  `json:"loan_type"`
}

// TotalIncome returns gross annual income including additional sources.
func (p *BorrowerProfile) TotalIncome() float64 {
	return p.AnnualIncome + p.AdditionalIncome
}

// TotalSavings returns all liquid savings.
func (p *BorrowerProfile) TotalSavings() float64 {
	return p.DownPaymentSavings + p.AdditionalSavings
}

// Validate rejects financially meaningless profiles. Inputs are never clamped.
func (p *BorrowerProfile) Validate() error {
	if p.AnnualIncome < 0 {
		return fmt.Errorf("annual income must not be negative, got %.2f", p.AnnualIncome)
	}
	if p.AdditionalIncome < 0 {
		return fmt.Errorf("additional income must not be negative, got %.2f", p.AdditionalIncome)
	}
	if p.MonthlyDebts < 0 {
		return fmt.Errorf("monthly debts must not be negative, got %.2f", p.MonthlyDebts)
	}
	if p.DownPaymentSavings < 0 || p.AdditionalSavings < 0 {
		return fmt.Errorf("savings must not be negative")
	}
	if p.CreditScore < 300 || p.CreditScore > 850 {
		return fmt.Errorf("credit score must be within [300, 850], got %d", p.CreditScore)
	}
	if p.MonthlyExpenses < 0 {
		return fmt.Errorf("monthly expenses must not be negative, got %.2f", p.MonthlyExpenses)
	}
	if p.CurrentRent < 0 {
		return fmt.Errorf("current rent must not be negative, got %.2f", p.CurrentRent)
	}
	return nil
}

// MarketSnapshot carries the rate environment an analysis runs against.
// Rates are percentages (6.5 means 6.5%).
type MarketSnapshot struct {
	Rate30Year    float64   `json:"rate_30_year"`
	Rate15Year    float64   `json:"rate_15_year"`
	InflationRate float64   `json:"inflation_rate"`
	AsOf          time.Time `json:"as_of,omitempty"`
}

// RateForTerm returns the annual rate (as a decimal) for a loan term in years.
func (m *MarketSnapshot) RateForTerm(years int) float64 {
	if years <= 15 {
		return m.Rate15Year / 100
	}
	return m.Rate30Year / 100
}

// Validate rejects rate snapshots the payment math cannot run on.
func (m *MarketSnapshot) Validate() error {
	if m.Rate30Year <= 0 {
		return fmt.Errorf("30-year rate must be positive, got %.3f", m.Rate30Year)
	}
	if m.Rate15Year <= 0 {
		return fmt.Errorf("15-year rate must be positive, got %.3f", m.Rate15Year)
	}
	return nil
}
