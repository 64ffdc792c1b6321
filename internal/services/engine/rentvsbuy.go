package engine

import (
	"NestWorth/internal/domain/models"
	"NestWorth/pkg/util"
)

// RentVsBuyParams drive the month-by-month comparison. FixedMonthly is the
// tax+insurance+PMI portion of the payment, held at its purchase-time
// figure for the whole horizon; maintenance is the only cost indexed to
// the appreciating home value. Zero-valued assumption rates fall back to
// the defaults.
type RentVsBuyParams struct {
	HomePrice        float64
	DownPayment      float64
	AnnualRate       float64
	TermYears        int
	MonthlyRent      float64
	FixedMonthly     float64
	AppreciationRate float64
	RentGrowthRate   float64
	MaintenanceRate  float64
	ClosingCostRate  float64
	OpportunityRate  float64
}

func (p *RentVsBuyParams) applyDefaults() {
	if p.AppreciationRate == 0 {
		p.AppreciationRate = DefaultAppreciationRate
	}
	if p.RentGrowthRate == 0 {
		p.RentGrowthRate = DefaultRentGrowthRate
	}
	if p.MaintenanceRate == 0 {
		p.MaintenanceRate = DefaultMaintenanceRate
	}
	if p.ClosingCostRate == 0 {
		p.ClosingCostRate = DefaultClosingCostRate
	}
	if p.OpportunityRate == 0 {
		p.OpportunityRate = DefaultOpportunityRate
	}
}

// SimulateRentVsBuy runs the comparison month by month up to the loan term
// (capped at 30 years). Three compounding processes advance on their own
// time bases inside one loop: the loan amortizes monthly, while home
// value, rent and the invested-instead counterfactual compound at each
// 12-month boundary, after the yearly snapshot is taken. The break-even
// month is latched the first time cumulative rent exceeds net buy cost and
// never re-triggers.
func SimulateRentVsBuy(p RentVsBuyParams) *models.RentVsBuyReport {
	p.applyDefaults()

	months := p.TermYears * 12
	if months > MaxSimulationMonths {
		months = MaxSimulationMonths
	}
	if months <= 0 || p.HomePrice <= 0 {
		return &models.RentVsBuyReport{Verdict: VerdictTossUp}
	}

	loan := p.HomePrice - p.DownPayment
	if loan < 0 {
		loan = 0
	}
	pi := monthlyPI(loan, p.AnnualRate, p.TermYears)
	monthlyRate := p.AnnualRate / 12

	closingCosts := p.HomePrice * p.ClosingCostRate
	upfront := p.DownPayment + closingCosts

	balance := loan
	value := p.HomePrice
	rent := p.MonthlyRent
	rentPaid := 0.0
	buyOutlay := upfront
	oppValue := upfront

	breakEvenMonth := 0
	years := make([]models.RentVsBuyYear, 0, months/12)

	for m := 1; m <= months; m++ {
		rentPaid += rent

		interest := balance * monthlyRate
		principal := pi - interest
		if principal > balance {
			principal = balance
		}
		balance -= principal

		maintenance := value * p.MaintenanceRate / 12
		buyOutlay += pi + p.FixedMonthly + maintenance

		equity := value - balance
		opportunityCost := oppValue - upfront
		netBuyCost := buyOutlay - equity + opportunityCost

		if breakEvenMonth == 0 && rentPaid > netBuyCost {
			breakEvenMonth = m
		}

		if m%12 == 0 {
			years = append(years, models.RentVsBuyYear{
				Year:         m / 12,
				RentPaid:     util.RoundCents(rentPaid),
				NetBuyCost:   util.RoundCents(netBuyCost),
				EquityBuilt:  util.RoundCents(equity),
				NetAdvantage: util.RoundCents(rentPaid - netBuyCost),
			})

			value *= 1 + p.AppreciationRate
			rent *= 1 + p.RentGrowthRate
			oppValue *= 1 + p.OpportunityRate
		}
	}

	advantage5y := 0.0
	if len(years) > 0 {
		idx := len(years) - 1
		if idx > 4 {
			idx = 4
		}
		advantage5y = years[idx].NetAdvantage
	}

	verdict := VerdictRentBetter
	switch {
	case advantage5y > BuyClearlyAdvantage:
		verdict = VerdictBuyClearly
	case advantage5y > 0:
		verdict = VerdictBuySlight
	case advantage5y > TossUpFloor:
		verdict = VerdictTossUp
	}

	report := &models.RentVsBuyReport{
		Years:          years,
		NetAdvantage5y: advantage5y,
		Verdict:        verdict,
	}
	if breakEvenMonth > 0 {
		report.BreakEvenMonth = breakEvenMonth
		report.BreakEvenYear = (breakEvenMonth + 11) / 12
	}
	return report
}
