package engine

import (
	"math"

	"NestWorth/internal/domain/models"
	"NestWorth/pkg/util"
)

// InvestmentParams describe a candidate rental purchase. MonthlyRent of 0
// triggers estimation from the rent-to-price ratio, with the basis
// recorded in the result. Zero-valued landlord-expense rates fall back to
// the defaults.
type InvestmentParams struct {
	PurchasePrice     float64
	DownPayment       float64
	ClosingCostRate   float64
	MonthlyRent       float64
	RentToPriceRatio  float64
	MortgagePI        float64
	MonthlyPMI        float64
	AnnualPropertyTax float64
	AnnualInsurance   float64
	MonthlyHOA        float64
	MaintenanceRate   float64
	ManagementRate    float64
	VacancyRate       float64
	CapExRate         float64
	AnnualRate        float64
	TermYears         int
	GrowthRate        float64
	ProjectionYears   int
}

func (p *InvestmentParams) applyDefaults() {
	if p.ClosingCostRate == 0 {
		p.ClosingCostRate = DefaultClosingCostRate
	}
	if p.RentToPriceRatio == 0 {
		p.RentToPriceRatio = DefaultRentToPriceRatio
	}
	if p.MaintenanceRate == 0 {
		p.MaintenanceRate = DefaultMaintenanceRate
	}
	if p.ManagementRate == 0 {
		p.ManagementRate = DefaultManagementRate
	}
	if p.VacancyRate == 0 {
		p.VacancyRate = DefaultVacancyRate
	}
	if p.CapExRate == 0 {
		p.CapExRate = DefaultCapExRate
	}
	if p.GrowthRate == 0 {
		p.GrowthRate = DefaultInvestmentGrowthRate
	}
	if p.ProjectionYears == 0 {
		p.ProjectionYears = DefaultProjectionYears
	}
}

// AnalyzeInvestment computes operating expenses, NOI, cash flow and the
// standard rental return ratios, then projects equity and cumulative cash
// flow year by year.
func AnalyzeInvestment(p InvestmentParams) *models.InvestmentAnalysis {
	p.applyDefaults()
	if p.PurchasePrice <= 0 {
		return &models.InvestmentAnalysis{Verdict: InvestmentNegative}
	}

	rent := p.MonthlyRent
	basis := RentBasisProvided
	if rent <= 0 {
		rent = p.PurchasePrice * p.RentToPriceRatio
		basis = RentBasisEstimated
	}

	management := rent * p.ManagementRate
	vacancy := rent * p.VacancyRate
	capex := rent * p.CapExRate
	operating := management + vacancy + capex +
		p.AnnualPropertyTax/12 + p.AnnualInsurance/12 + p.MonthlyHOA +
		p.PurchasePrice*p.MaintenanceRate/12

	noi := rent - operating
	cashFlow := noi - p.MortgagePI - p.MonthlyPMI

	annualNOI := noi * 12
	annualCashFlow := cashFlow * 12
	totalCash := p.DownPayment + p.PurchasePrice*p.ClosingCostRate

	capRate := annualNOI / p.PurchasePrice * 100

	cashOnCash := 0.0
	if totalCash > 0 {
		cashOnCash = annualCashFlow / totalCash * 100
	}

	grm := 0.0
	if rent > 0 {
		grm = p.PurchasePrice / (rent * 12)
	}

	verdict := InvestmentNegative
	switch {
	case cashFlow > 0 && capRate >= StrongCapRate && cashOnCash >= StrongCashOnCash:
		verdict = InvestmentStrong
	case cashFlow > 0 && capRate >= ModerateCapRate:
		verdict = InvestmentModerate
	case cashFlow >= 0:
		verdict = InvestmentMarginal
	}

	return &models.InvestmentAnalysis{
		MonthlyRent:         util.RoundCents(rent),
		RentBasis:           basis,
		OperatingExpenses:   util.RoundCents(operating),
		ManagementFee:       util.RoundCents(management),
		VacancyReserve:      util.RoundCents(vacancy),
		CapExReserve:        util.RoundCents(capex),
		NOI:                 util.RoundCents(noi),
		MonthlyCashFlow:     util.RoundCents(cashFlow),
		AnnualCashFlow:      util.RoundCents(annualCashFlow),
		CapRate:             util.RoundRatio(capRate),
		CashOnCashReturn:    util.RoundRatio(cashOnCash),
		GrossRentMultiplier: util.RoundRatio(grm),
		RentToPrice:         util.RoundRatio(rent / p.PurchasePrice * 100),
		TotalCashInvested:   util.RoundCents(totalCash),
		Projections:         projectReturns(p, annualCashFlow, totalCash),
		Verdict:             verdict,
	}
}

// projectReturns amortizes the loan and compounds value and cash flow one
// year at a time, reporting total and geometric annualized return against
// the cash invested.
func projectReturns(p InvestmentParams, annualCashFlow, totalCash float64) []models.InvestmentProjectionYear {
	loan := p.PurchasePrice - p.DownPayment
	if loan < 0 {
		loan = 0
	}
	payment := monthlyPI(loan, p.AnnualRate, p.TermYears)
	monthlyRate := p.AnnualRate / 12

	balance := loan
	value := p.PurchasePrice
	cumulative := 0.0
	yearCashFlow := annualCashFlow

	out := make([]models.InvestmentProjectionYear, 0, p.ProjectionYears)
	for y := 1; y <= p.ProjectionYears; y++ {
		for m := 0; m < 12; m++ {
			interest := balance * monthlyRate
			principal := payment - interest
			if principal > balance {
				principal = balance
			}
			balance -= principal
		}

		value *= 1 + p.GrowthRate
		cumulative += yearCashFlow

		equity := value - balance
		totalReturn := equity + cumulative - totalCash

		returnPercent := 0.0
		annualized := 0.0
		if totalCash > 0 {
			returnPercent = totalReturn / totalCash * 100
			base := (totalCash + totalReturn) / totalCash
			if base > 0 {
				annualized = (math.Pow(base, 1/float64(y)) - 1) * 100
			}
		}

		out = append(out, models.InvestmentProjectionYear{
			Year:               y,
			PropertyValue:      util.RoundCents(value),
			Equity:             util.RoundCents(equity),
			AnnualCashFlow:     util.RoundCents(yearCashFlow),
			CumulativeCashFlow: util.RoundCents(cumulative),
			TotalReturn:        util.RoundCents(totalReturn),
			TotalReturnPercent: util.RoundRatio(returnPercent),
			AnnualizedReturn:   util.RoundRatio(annualized),
		})

		yearCashFlow *= 1 + p.GrowthRate
	}
	return out
}
