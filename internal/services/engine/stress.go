package engine

import (
	"fmt"
	"math"

	"NestWorth/internal/domain/models"
	"NestWorth/pkg/util"
)

// StressParams carry the already-computed affordability figures a stress
// scenario perturbs. FixedMonthly is the tax+insurance+PMI portion of the
// payment, which rate hikes leave unchanged.
type StressParams struct {
	MonthlyIncome   float64
	MonthlyDebts    float64
	MonthlyExpenses float64
	HousingPayment  float64
	FixedMonthly    float64
	LoanAmount      float64
	AnnualRate      float64
	TermYears       int
	Savings         float64
}

// DefaultRateDeltas are the rate-hike scenarios in percentage points.
var DefaultRateDeltas = []float64{1, 2, 3}

// DefaultIncomeCuts are the income-loss scenarios in percent.
var DefaultIncomeCuts = []float64{20, 50}

// RateHikeScenarios recomputes the payment and back-end DTI at the base
// rate plus each delta. Tax, insurance and PMI stay fixed; only the P&I
// portion moves with the rate.
func RateHikeScenarios(p StressParams, deltas []float64) []models.StressTestResult {
	if len(deltas) == 0 {
		deltas = DefaultRateDeltas
	}

	out := make([]models.StressTestResult, 0, len(deltas))
	for _, delta := range deltas {
		newRate := p.AnnualRate + delta/100
		newPayment := monthlyPI(p.LoanAmount, newRate, p.TermYears) + p.FixedMonthly

		newDTI := 0.0
		if p.MonthlyIncome > 0 {
			newDTI = util.RoundRatio((newPayment + p.MonthlyDebts) / p.MonthlyIncome * 100)
		}

		severity := SeverityManageable
		if newDTI > BackEndSafeMax {
			severity = SeverityStrained
		}
		if newDTI > BackEndModerateMax {
			severity = SeverityUnsustainable
		}

		out = append(out, models.StressTestResult{
			Scenario:    fmt.Sprintf("rate +%.0f%%", delta),
			Description: fmt.Sprintf("Mortgage rate rises to %.2f%%", newRate*100),
			NewPayment:  util.RoundCents(newPayment),
			NewDTI:      newDTI,
			CanAfford:   newDTI <= BackEndModerateMax,
			Severity:    severity,
		})
	}
	return out
}

// IncomeLossScenarios recomputes the back-end DTI against the unchanged
// housing payment after cutting gross income, and estimates how many
// months of savings cover any monthly deficit. Runway is capped so a
// surplus never produces an unbounded figure.
func IncomeLossScenarios(p StressParams, cuts []float64) []models.StressTestResult {
	if len(cuts) == 0 {
		cuts = DefaultIncomeCuts
	}

	obligations := p.HousingPayment + p.MonthlyDebts + p.MonthlyExpenses

	out := make([]models.StressTestResult, 0, len(cuts))
	for _, cut := range cuts {
		reducedIncome := p.MonthlyIncome * (1 - cut/100)

		newDTI := 0.0
		if reducedIncome > 0 {
			newDTI = util.RoundRatio((p.HousingPayment + p.MonthlyDebts) / reducedIncome * 100)
		} else {
			newDTI = 100
		}

		runway := RunwayCap
		surplus := reducedIncome - obligations
		if surplus < 0 {
			runway = int(math.Floor(p.Savings / -surplus))
			if runway > RunwayCap {
				runway = RunwayCap
			}
		}

		severity := SeverityManageable
		if newDTI > BackEndSafeMax {
			severity = SeverityStrained
		}
		if newDTI > IncomeLossUnsustainableDTI {
			severity = SeverityUnsustainable
		}

		out = append(out, models.StressTestResult{
			Scenario:       fmt.Sprintf("income -%.0f%%", cut),
			Description:    fmt.Sprintf("Gross income falls to $%.0f/month", reducedIncome),
			NewDTI:         newDTI,
			MonthsOfRunway: runway,
			CanAfford:      newDTI <= IncomeLossUnsustainableDTI,
			Severity:       severity,
		})
	}
	return out
}
