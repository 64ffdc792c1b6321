package engine

import (
	"fmt"
	"math"

	"NestWorth/internal/domain/models"
	"NestWorth/pkg/util"
)

// EvaluateEmergencyFund checks the liquidity runway left after the
// purchase drains savings by the down payment and closing costs.
func EvaluateEmergencyFund(savings, downPayment, closingCosts, monthlyExpenses, housingPayment float64) *models.EmergencyFundAnalysis {
	postPurchase := savings - downPayment - closingCosts
	monthlyNeed := monthlyExpenses + housingPayment

	months := 0
	if monthlyNeed > 0 {
		months = int(math.Floor(math.Max(0, postPurchase) / monthlyNeed))
		if months > RunwayCap {
			months = RunwayCap
		}
	}

	adequate := months >= AdequateFundMonths

	var recommendation string
	switch {
	case adequate:
		recommendation = fmt.Sprintf(
			"Your emergency fund covers %d months of expenses after the purchase, which meets the %d-month target.",
			months, AdequateFundMonths)
	case months >= MinimumFundMonths:
		recommendation = fmt.Sprintf(
			"Your emergency fund covers %d months after the purchase. Build it toward %d months before stretching your budget further.",
			months, AdequateFundMonths)
	default:
		recommendation = fmt.Sprintf(
			"Your emergency fund would cover only %d months after the purchase. Delay buying until you hold at least %d months of expenses in reserve.",
			months, MinimumFundMonths)
	}

	return &models.EmergencyFundAnalysis{
		PostPurchaseSavings: util.RoundCents(postPurchase),
		MonthlyNeed:         util.RoundCents(monthlyNeed),
		MonthsCovered:       months,
		Adequate:            adequate,
		Recommendation:      recommendation,
	}
}
