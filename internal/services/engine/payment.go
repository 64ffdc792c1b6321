package engine

import (
	"math"

	"NestWorth/internal/domain/models"
	"NestWorth/pkg/util"
)

// PaymentParams are the inputs to the payment primitive. AnnualRate is a
// decimal (0.065 means 6.5%).
type PaymentParams struct {
	HomePrice       float64
	DownPayment     float64
	AnnualRate      float64
	TermYears       int
	PropertyTaxRate float64
	AnnualInsurance float64
	AnnualPMIRate   float64
}

// monthlyPI computes the principal-and-interest payment for a fixed-rate
// loan. A zero loan resolves to 0 so "no loan needed" is a valid state,
// and a zero rate degrades to straight-line repayment instead of dividing
// by zero.
func monthlyPI(loanAmount, annualRate float64, termYears int) float64 {
	if loanAmount <= 0 || termYears <= 0 {
		return 0
	}
	n := float64(termYears * 12)
	if annualRate == 0 {
		return loanAmount / n
	}
	r := annualRate / 12
	factor := math.Pow(1+r, n)
	return loanAmount * r * factor / (factor - 1)
}

// CalculatePayment computes the full PITI+PMI monthly breakdown for a
// purchase. This is the single payment primitive every other component
// reuses; it runs many times inside the solver so it stays allocation-free
// apart from the result record.
func CalculatePayment(p PaymentParams) *models.PaymentBreakdown {
	loanAmount := p.HomePrice - p.DownPayment
	if loanAmount < 0 {
		loanAmount = 0
	}

	pi := monthlyPI(loanAmount, p.AnnualRate, p.TermYears)

	// Split the level payment into its first-month interest/principal parts
	// so the breakdown components stay individually meaningful.
	interest := 0.0
	if loanAmount > 0 {
		interest = loanAmount * p.AnnualRate / 12
		if interest > pi {
			interest = pi
		}
	}
	principal := pi - interest

	tax := p.HomePrice * p.PropertyTaxRate / 12
	insurance := p.AnnualInsurance / 12

	pmi := 0.0
	if p.HomePrice > 0 && p.DownPayment/p.HomePrice < PMIDownPaymentCutoff {
		pmi = loanAmount * p.AnnualPMIRate / 12
	}

	principal = util.RoundCents(principal)
	interest = util.RoundCents(interest)
	tax = util.RoundCents(tax)
	insurance = util.RoundCents(insurance)
	pmi = util.RoundCents(pmi)

	return &models.PaymentBreakdown{
		Principal:     principal,
		Interest:      interest,
		PropertyTax:   tax,
		HomeInsurance: insurance,
		PMI:           pmi,
		TotalMonthly:  util.RoundCents(principal + interest + tax + insurance + pmi),
	}
}

// totalMonthlyPayment is the unrounded payment used inside the solver
// bracket loop, where rounding would blur convergence.
func totalMonthlyPayment(p PaymentParams) float64 {
	loanAmount := p.HomePrice - p.DownPayment
	if loanAmount < 0 {
		loanAmount = 0
	}

	total := monthlyPI(loanAmount, p.AnnualRate, p.TermYears)
	total += p.HomePrice * p.PropertyTaxRate / 12
	total += p.AnnualInsurance / 12
	if p.HomePrice > 0 && p.DownPayment/p.HomePrice < PMIDownPaymentCutoff {
		total += loanAmount * p.AnnualPMIRate / 12
	}
	return total
}
