package engine

import "testing"

func baseStressParams() StressParams {
	return StressParams{
		MonthlyIncome:   8_333.33,
		MonthlyDebts:    500,
		MonthlyExpenses: 3_000,
		HousingPayment:  2_300,
		FixedMonthly:    525,
		LoanAmount:      280_000,
		AnnualRate:      0.065,
		TermYears:       30,
		Savings:         30_000,
	}
}

func TestRateHikeScenarios(t *testing.T) {
	results := RateHikeScenarios(baseStressParams(), nil)
	if len(results) != len(DefaultRateDeltas) {
		t.Fatalf("got %d scenarios, want %d", len(results), len(DefaultRateDeltas))
	}

	prevPayment := 0.0
	prevDTI := 0.0
	for _, r := range results {
		if r.NewPayment <= prevPayment {
			t.Errorf("%s: payment %.2f did not rise above %.2f", r.Scenario, r.NewPayment, prevPayment)
		}
		if r.NewDTI < prevDTI {
			t.Errorf("%s: DTI %.2f fell below %.2f", r.Scenario, r.NewDTI, prevDTI)
		}
		if r.CanAfford != (r.NewDTI <= BackEndModerateMax) {
			t.Errorf("%s: CanAfford=%v inconsistent with DTI %.2f", r.Scenario, r.CanAfford, r.NewDTI)
		}
		switch {
		case r.NewDTI <= BackEndSafeMax && r.Severity != SeverityManageable:
			t.Errorf("%s: severity %q, want manageable at DTI %.2f", r.Scenario, r.Severity, r.NewDTI)
		case r.NewDTI > BackEndModerateMax && r.Severity != SeverityUnsustainable:
			t.Errorf("%s: severity %q, want unsustainable at DTI %.2f", r.Scenario, r.Severity, r.NewDTI)
		}
		prevPayment = r.NewPayment
		prevDTI = r.NewDTI
	}
}

func TestIncomeLossScenarios(t *testing.T) {
	results := IncomeLossScenarios(baseStressParams(), nil)
	if len(results) != len(DefaultIncomeCuts) {
		t.Fatalf("got %d scenarios, want %d", len(results), len(DefaultIncomeCuts))
	}

	for _, r := range results {
		if r.MonthsOfRunway < 0 || r.MonthsOfRunway > RunwayCap {
			t.Errorf("%s: runway %d out of [0, %d]", r.Scenario, r.MonthsOfRunway, RunwayCap)
		}
		if r.CanAfford != (r.NewDTI <= IncomeLossUnsustainableDTI) {
			t.Errorf("%s: CanAfford=%v inconsistent with DTI %.2f", r.Scenario, r.CanAfford, r.NewDTI)
		}
	}

	// A 20% cut raises DTI less than a 50% cut.
	if results[0].NewDTI >= results[1].NewDTI {
		t.Errorf("20%% cut DTI %.2f should be below 50%% cut DTI %.2f", results[0].NewDTI, results[1].NewDTI)
	}
}

func TestIncomeLossRunwayCappedWithoutDeficit(t *testing.T) {
	p := baseStressParams()
	p.MonthlyIncome = 50_000
	results := IncomeLossScenarios(p, []float64{10})
	if results[0].MonthsOfRunway != RunwayCap {
		t.Errorf("runway = %d, want sentinel %d when income still covers obligations", results[0].MonthsOfRunway, RunwayCap)
	}
}

func TestIncomeLossDeficitRunway(t *testing.T) {
	p := baseStressParams()
	p.MonthlyIncome = 6_000
	p.Savings = 12_000
	results := IncomeLossScenarios(p, []float64{50})

	// At half income (3000) obligations of 5800 leave a 2800 deficit,
	// so 12000 of savings covers floor(12000/2800) = 4 months.
	if results[0].MonthsOfRunway != 4 {
		t.Errorf("runway = %d, want 4", results[0].MonthsOfRunway)
	}
}
