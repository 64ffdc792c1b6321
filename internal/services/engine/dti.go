package engine

import (
	"NestWorth/internal/domain/models"
	"NestWorth/pkg/util"
)

// EvaluateDTI classifies front-end and back-end debt-to-income ratios for a
// proposed housing payment. Ratios are percentages rounded to 2dp.
func EvaluateDTI(monthlyIncome, housingPayment, monthlyDebts float64) *models.DTIAnalysis {
	if monthlyIncome <= 0 {
		return &models.DTIAnalysis{
			FrontEndRatio:  0,
			BackEndRatio:   0,
			FrontEndStatus: StatusRisky,
			BackEndStatus:  StatusRisky,
		}
	}

	frontEnd := util.RoundRatio(housingPayment / monthlyIncome * 100)
	backEnd := util.RoundRatio((housingPayment + monthlyDebts) / monthlyIncome * 100)

	return &models.DTIAnalysis{
		FrontEndRatio:  frontEnd,
		BackEndRatio:   backEnd,
		FrontEndStatus: frontEndStatus(frontEnd),
		BackEndStatus:  backEndStatus(backEnd),
	}
}

func frontEndStatus(ratio float64) string {
	switch {
	case ratio <= FrontEndSafeMax:
		return StatusSafe
	case ratio <= FrontEndModerateMax:
		return StatusModerate
	default:
		return StatusRisky
	}
}

func backEndStatus(ratio float64) string {
	switch {
	case ratio <= BackEndSafeMax:
		return StatusSafe
	case ratio <= BackEndModerateMax:
		return StatusModerate
	default:
		return StatusRisky
	}
}
