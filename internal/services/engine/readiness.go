package engine

import (
	"fmt"
	"sort"

	"NestWorth/internal/domain/models"
)

// ReadinessParams feed the composite scorer. BackEndDTI is a percentage,
// EmergencyMonths comes from the emergency fund evaluator, and
// DownPayment/MaxHomePrice pair gives the down-payment dimension.
type ReadinessParams struct {
	BackEndDTI      float64
	CreditScore     int
	DownPayment     float64
	MaxHomePrice    float64
	EmergencyMonths int
}

// Sub-score maximum per dimension.
const dimensionMax = 25

// ScoreReadiness combines four 0-25 sub-scores into a 0-100 readiness
// score with a qualitative level and prioritized action items. The
// breakpoints reuse the DTI and emergency-fund policy bands so a borrower
// never sees contradictory classifications across components.
func ScoreReadiness(p ReadinessParams) *models.ReadinessScore {
	dtiScore := scoreDTI(p.BackEndDTI)
	creditScore := scoreCredit(p.CreditScore)
	downScore := scoreDownPayment(p.DownPayment, p.MaxHomePrice)
	debtScore := scoreDebtHealth(p.EmergencyMonths, p.BackEndDTI)

	overall := dtiScore + creditScore + downScore + debtScore

	level := LevelNotReady
	switch {
	case overall >= 85:
		level = LevelReady
	case overall >= 65:
		level = LevelNearlyReady
	case overall >= 45:
		level = LevelNeedsPrep
	}

	return &models.ReadinessScore{
		DTIScore:         dtiScore,
		CreditScore:      creditScore,
		DownPaymentScore: downScore,
		DebtHealthScore:  debtScore,
		Overall:          overall,
		Level:            level,
		ActionItems:      buildActionItems(p, dtiScore, creditScore, downScore, debtScore),
	}
}

func scoreDTI(backEnd float64) int {
	switch {
	case backEnd <= FrontEndSafeMax:
		return 25
	case backEnd <= BackEndSafeMax:
		return 20
	case backEnd <= BackEndModerateMax:
		return 12
	case backEnd <= IncomeLossUnsustainableDTI:
		return 5
	default:
		return 0
	}
}

func scoreCredit(score int) int {
	switch {
	case score >= 780:
		return 25
	case score >= 740:
		return 22
	case score >= 700:
		return 18
	case score >= 660:
		return 12
	case score >= 620:
		return 6
	default:
		return 2
	}
}

func scoreDownPayment(downPayment, maxPrice float64) int {
	if maxPrice <= 0 {
		return 0
	}
	percent := downPayment / maxPrice * 100
	switch {
	case percent >= 20:
		return 25
	case percent >= 15:
		return 20
	case percent >= 10:
		return 15
	case percent >= 5:
		return 8
	default:
		return 3
	}
}

// scoreDebtHealth blends emergency-fund months (up to 13 points) with the
// back-end ratio (up to 12 points).
func scoreDebtHealth(fundMonths int, backEnd float64) int {
	months := 0
	switch {
	case fundMonths >= AdequateFundMonths:
		months = 13
	case fundMonths >= MinimumFundMonths:
		months = 8
	case fundMonths >= 1:
		months = 4
	}

	dti := 0
	switch {
	case backEnd <= BackEndSafeMax:
		dti = 12
	case backEnd <= BackEndModerateMax:
		dti = 8
	case backEnd <= IncomeLossUnsustainableDTI:
		dti = 4
	}

	return months + dti
}

func buildActionItems(p ReadinessParams, dtiScore, creditScore, downScore, debtScore int) []models.ActionItem {
	items := make([]models.ActionItem, 0, 4)

	if dtiScore < dimensionMax {
		items = append(items, models.ActionItem{
			Category: "debt-to-income",
			Priority: itemPriority(dtiScore),
			Action: fmt.Sprintf(
				"Pay down monthly obligations to bring your back-end ratio (%.2f%%) under %.0f%%.",
				p.BackEndDTI, BackEndSafeMax),
			Impact: impactText(dtiScore),
		})
	}
	if creditScore < dimensionMax {
		items = append(items, models.ActionItem{
			Category: "credit",
			Priority: itemPriority(creditScore),
			Action: fmt.Sprintf(
				"Raise your credit score (currently %d) above 780 for the best pricing tier.",
				p.CreditScore),
			Impact: impactText(creditScore),
		})
	}
	if downScore < dimensionMax {
		items = append(items, models.ActionItem{
			Category: "down payment",
			Priority: itemPriority(downScore),
			Action: fmt.Sprintf(
				"Grow your down payment toward 20%% of your target price to avoid PMI (currently $%.0f saved).",
				p.DownPayment),
			Impact: impactText(downScore),
		})
	}
	if debtScore < dimensionMax {
		items = append(items, models.ActionItem{
			Category: "financial cushion",
			Priority: itemPriority(debtScore),
			Action: fmt.Sprintf(
				"Build your emergency fund (currently %d months) to %d months of expenses.",
				p.EmergencyMonths, AdequateFundMonths),
			Impact: impactText(debtScore),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return priorityRank(items[i].Priority) < priorityRank(items[j].Priority)
	})
	return items
}

func itemPriority(score int) string {
	switch {
	case score < 10:
		return "high"
	case score < 18:
		return "medium"
	default:
		return "low"
	}
}

func impactText(score int) string {
	return fmt.Sprintf("up to +%d points", dimensionMax-score)
}

func priorityRank(p string) int {
	switch p {
	case "high":
		return 0
	case "medium":
		return 1
	default:
		return 2
	}
}
