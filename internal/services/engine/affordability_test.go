package engine

import "testing"

func baseSolverParams() SolverParams {
	return SolverParams{
		AnnualIncome:    100_000,
		MonthlyDebts:    500,
		DownPayment:     50_000,
		AnnualRate:      0.065,
		TermYears:       30,
		PropertyTaxRate: 0.012,
		AnnualInsurance: 1500,
		AnnualPMIRate:   0.0085,
	}
}

func TestSolveAffordabilityEndToEnd(t *testing.T) {
	got := SolveAffordability(baseSolverParams())

	if got.MaxHomePrice <= 200_000 || got.MaxHomePrice >= 600_000 {
		t.Fatalf("MaxHomePrice = %.0f, want strictly between 200000 and 600000", got.MaxHomePrice)
	}
	if got.LimitingFactor != LimitFrontEnd && got.LimitingFactor != LimitBackEnd {
		t.Errorf("LimitingFactor = %q, want front-end or back-end DTI", got.LimitingFactor)
	}
	if got.RecommendedHomePrice >= got.MaxHomePrice {
		t.Errorf("recommended %.0f not below max %.0f", got.RecommendedHomePrice, got.MaxHomePrice)
	}
	if want := got.RecommendedHomePrice - got.DownPaymentAmount; !almostEqual(got.LoanAmount, want, 0.01) {
		t.Errorf("LoanAmount = %.2f, want %.2f", got.LoanAmount, want)
	}
	if got.Payment == nil || got.DTI == nil || len(got.Amortization) == 0 {
		t.Fatalf("result missing embedded payment/dti/amortization")
	}
}

func TestSolveAffordabilityDownPaymentMonotonic(t *testing.T) {
	params := baseSolverParams()
	prev := -1.0
	for _, down := range []float64{0, 20_000, 50_000, 100_000, 200_000} {
		params.DownPayment = down
		got := SolveAffordability(params)
		if got.MaxHomePrice < prev {
			t.Fatalf("MaxHomePrice decreased from %.0f to %.0f when down payment rose to %.0f", prev, got.MaxHomePrice, down)
		}
		prev = got.MaxHomePrice
	}
}

func TestSolveAffordabilityDebtMonotonic(t *testing.T) {
	params := baseSolverParams()
	prev := -1.0
	for _, debts := range []float64{3000, 2000, 1000, 500, 0} {
		params.MonthlyDebts = debts
		got := SolveAffordability(params)
		if got.MaxHomePrice < prev {
			t.Fatalf("MaxHomePrice decreased from %.0f to %.0f when debts fell to %.0f", prev, got.MaxHomePrice, debts)
		}
		prev = got.MaxHomePrice
	}
}

func TestSolveAffordabilityCannotQualify(t *testing.T) {
	params := baseSolverParams()
	params.AnnualIncome = 10_000
	params.MonthlyDebts = 5_000
	got := SolveAffordability(params)
	if got.MaxHomePrice != 0 {
		t.Errorf("MaxHomePrice = %.0f, want 0 when debts exhaust the ceiling", got.MaxHomePrice)
	}
}

func TestSolveAffordabilityBackEndBinds(t *testing.T) {
	params := baseSolverParams()
	params.MonthlyDebts = 2_500
	got := SolveAffordability(params)
	if got.LimitingFactor != LimitBackEnd {
		t.Errorf("LimitingFactor = %q, want %q with heavy debts", got.LimitingFactor, LimitBackEnd)
	}
}
