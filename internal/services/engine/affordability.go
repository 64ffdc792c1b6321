package engine

import (
	"math"

	"NestWorth/internal/domain/models"
	"NestWorth/pkg/util"
)

// SolverParams are the affordability search inputs. AnnualRate is a decimal.
// MaxFrontEndDTI/MaxBackEndDTI are fractions; zero values fall back to the
// default policy bands.
type SolverParams struct {
	AnnualIncome    float64
	MonthlyDebts    float64
	DownPayment     float64
	AnnualRate      float64
	TermYears       int
	PropertyTaxRate float64
	AnnualInsurance float64
	AnnualPMIRate   float64
	MaxFrontEndDTI  float64
	MaxBackEndDTI   float64
}

// Limiting factor labels.
const (
	LimitFrontEnd = "front-end DTI"
	LimitBackEnd  = "back-end DTI"
)

// SolveAffordability binary-searches the maximum home price whose total
// monthly payment satisfies both DTI constraints. Payment is monotonic
// non-decreasing in price, so bisection converges without a closed-form
// inverse that would have to handle the PMI step. A max price of 0 means
// the borrower cannot qualify, not an error.
func SolveAffordability(p SolverParams) *models.AffordabilityResult {
	maxFront := p.MaxFrontEndDTI
	if maxFront <= 0 {
		maxFront = DefaultMaxFrontEndDTI
	}
	maxBack := p.MaxBackEndDTI
	if maxBack <= 0 {
		maxBack = DefaultMaxBackEndDTI
	}

	monthlyIncome := p.AnnualIncome / 12
	frontCeiling := monthlyIncome * maxFront
	backCeiling := monthlyIncome*maxBack - p.MonthlyDebts

	ceiling := frontCeiling
	limitingFactor := LimitFrontEnd
	if backCeiling < frontCeiling {
		ceiling = backCeiling
		limitingFactor = LimitBackEnd
	}

	maxPrice := 0.0
	if ceiling > 0 {
		lo, hi := 0.0, SolverPriceCeiling
		params := PaymentParams{
			DownPayment:     p.DownPayment,
			AnnualRate:      p.AnnualRate,
			TermYears:       p.TermYears,
			PropertyTaxRate: p.PropertyTaxRate,
			AnnualInsurance: p.AnnualInsurance,
			AnnualPMIRate:   p.AnnualPMIRate,
		}
		for i := 0; i < SolverIterations; i++ {
			mid := (lo + hi) / 2
			params.HomePrice = mid
			if totalMonthlyPayment(params) <= ceiling {
				lo = mid
			} else {
				hi = mid
			}
		}
		maxPrice = math.Floor(lo)
	}

	recommended := math.Floor(maxPrice * RecommendedPriceFactor)

	loanAmount := recommended - p.DownPayment
	if loanAmount < 0 {
		loanAmount = 0
	}

	// Breakdown, DTI and amortization preview are quoted at the
	// recommended price, the figure a borrower would actually shop at.
	payment := CalculatePayment(PaymentParams{
		HomePrice:       recommended,
		DownPayment:     p.DownPayment,
		AnnualRate:      p.AnnualRate,
		TermYears:       p.TermYears,
		PropertyTaxRate: p.PropertyTaxRate,
		AnnualInsurance: p.AnnualInsurance,
		AnnualPMIRate:   p.AnnualPMIRate,
	})

	dti := EvaluateDTI(monthlyIncome, payment.TotalMonthly, p.MonthlyDebts)

	downPercent := 0.0
	if recommended > 0 {
		downPercent = util.RoundRatio(p.DownPayment / recommended * 100)
	}

	return &models.AffordabilityResult{
		MaxHomePrice:         maxPrice,
		RecommendedHomePrice: recommended,
		DownPaymentAmount:    p.DownPayment,
		DownPaymentPercent:   downPercent,
		LoanAmount:           util.RoundCents(loanAmount),
		LimitingFactor:       limitingFactor,
		Payment:              payment,
		DTI:                  dti,
		Amortization:         ProjectAmortization(loanAmount, p.AnnualRate, p.TermYears),
	}
}
