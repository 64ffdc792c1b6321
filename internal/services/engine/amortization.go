package engine

import (
	"NestWorth/internal/domain/models"
	"NestWorth/pkg/util"
)

// ProjectAmortization simulates the loan month by month and emits one
// record per year for the first five years (or fewer for shorter terms).
// It reuses the same payment primitive as the calculator so the quoted
// payment and the schedule it implies never drift apart.
func ProjectAmortization(loanAmount, annualRate float64, termYears int) []models.AmortizationYear {
	if loanAmount <= 0 || termYears <= 0 {
		return nil
	}

	years := 5
	if termYears < years {
		years = termYears
	}

	payment := monthlyPI(loanAmount, annualRate, termYears)
	monthlyRate := annualRate / 12
	balance := loanAmount

	out := make([]models.AmortizationYear, 0, years)
	for y := 1; y <= years; y++ {
		principalPaid := 0.0
		interestPaid := 0.0
		for m := 0; m < 12; m++ {
			interest := balance * monthlyRate
			principal := payment - interest
			if principal > balance {
				principal = balance
			}
			principalPaid += principal
			interestPaid += interest
			balance -= principal
		}

		equity := (loanAmount - balance) / loanAmount * 100
		out = append(out, models.AmortizationYear{
			Year:             y,
			PrincipalPaid:    util.RoundCents(principalPaid),
			InterestPaid:     util.RoundCents(interestPaid),
			RemainingBalance: util.RoundCents(balance),
			EquityPercent:    util.RoundRatio(util.Clamp(equity, 0, 100)),
		})
	}
	return out
}
