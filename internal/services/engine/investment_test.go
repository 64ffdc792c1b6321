package engine

import "testing"

func baseInvestmentParams() InvestmentParams {
	return InvestmentParams{
		PurchasePrice:     300_000,
		DownPayment:       60_000,
		MonthlyRent:       2_400,
		MortgagePI:        1_517,
		AnnualPropertyTax: 3_600,
		AnnualInsurance:   1_500,
		AnnualRate:        0.065,
		TermYears:         30,
	}
}

func TestAnalyzeInvestmentCapRateExact(t *testing.T) {
	got := AnalyzeInvestment(baseInvestmentParams())

	annualNOI := got.NOI * 12
	want := annualNOI / 300_000 * 100
	if !almostEqual(got.CapRate, want, 0.01) {
		t.Errorf("CapRate = %.2f, want %.2f from annual NOI %.2f", got.CapRate, want, annualNOI)
	}
}

func TestAnalyzeInvestmentExpenseBreakdown(t *testing.T) {
	got := AnalyzeInvestment(baseInvestmentParams())

	if !almostEqual(got.ManagementFee, 2400*DefaultManagementRate, 0.01) {
		t.Errorf("ManagementFee = %.2f", got.ManagementFee)
	}
	if !almostEqual(got.VacancyReserve, 2400*DefaultVacancyRate, 0.01) {
		t.Errorf("VacancyReserve = %.2f", got.VacancyReserve)
	}
	if !almostEqual(got.CapExReserve, 2400*DefaultCapExRate, 0.01) {
		t.Errorf("CapExReserve = %.2f", got.CapExReserve)
	}

	// rent - operating expenses = NOI; NOI - debt service = cash flow
	if !almostEqual(got.NOI, got.MonthlyRent-got.OperatingExpenses, 0.02) {
		t.Errorf("NOI = %.2f, want rent %.2f - expenses %.2f", got.NOI, got.MonthlyRent, got.OperatingExpenses)
	}
	if !almostEqual(got.MonthlyCashFlow, got.NOI-1517, 0.02) {
		t.Errorf("MonthlyCashFlow = %.2f, want NOI %.2f - PI", got.MonthlyCashFlow, got.NOI)
	}
}

func TestAnalyzeInvestmentRentEstimation(t *testing.T) {
	p := baseInvestmentParams()
	p.MonthlyRent = 0
	got := AnalyzeInvestment(p)

	if got.RentBasis != RentBasisEstimated {
		t.Errorf("RentBasis = %q, want %q", got.RentBasis, RentBasisEstimated)
	}
	if !almostEqual(got.MonthlyRent, 300_000*DefaultRentToPriceRatio, 0.01) {
		t.Errorf("estimated rent = %.2f, want %.2f", got.MonthlyRent, 300_000*DefaultRentToPriceRatio)
	}

	provided := AnalyzeInvestment(baseInvestmentParams())
	if provided.RentBasis != RentBasisProvided {
		t.Errorf("RentBasis = %q, want %q", provided.RentBasis, RentBasisProvided)
	}
}

func TestAnalyzeInvestmentRatios(t *testing.T) {
	got := AnalyzeInvestment(baseInvestmentParams())

	if wantGRM := 300_000.0 / (2400 * 12); !almostEqual(got.GrossRentMultiplier, wantGRM, 0.01) {
		t.Errorf("GrossRentMultiplier = %.2f, want %.2f", got.GrossRentMultiplier, wantGRM)
	}
	if wantRTP := 2400.0 / 300_000 * 100; !almostEqual(got.RentToPrice, wantRTP, 0.01) {
		t.Errorf("RentToPrice = %.2f, want %.2f", got.RentToPrice, wantRTP)
	}
	if wantCash := 60_000 + 300_000*DefaultClosingCostRate; !almostEqual(got.TotalCashInvested, wantCash, 0.01) {
		t.Errorf("TotalCashInvested = %.2f, want %.2f", got.TotalCashInvested, wantCash)
	}
}

func TestAnalyzeInvestmentProjections(t *testing.T) {
	got := AnalyzeInvestment(baseInvestmentParams())
	if len(got.Projections) != DefaultProjectionYears {
		t.Fatalf("got %d projection years, want %d", len(got.Projections), DefaultProjectionYears)
	}

	prevValue := 300_000.0
	prevCumulative := 0.0
	for _, y := range got.Projections {
		if y.PropertyValue <= prevValue {
			t.Errorf("year %d: value %.2f did not appreciate past %.2f", y.Year, y.PropertyValue, prevValue)
		}
		if got.AnnualCashFlow > 0 && y.CumulativeCashFlow <= prevCumulative {
			t.Errorf("year %d: cumulative cash flow %.2f did not grow", y.Year, y.CumulativeCashFlow)
		}
		prevValue = y.PropertyValue
		prevCumulative = y.CumulativeCashFlow
	}
}

func TestAnalyzeInvestmentVerdictConsistent(t *testing.T) {
	got := AnalyzeInvestment(baseInvestmentParams())

	var want string
	switch {
	case got.MonthlyCashFlow > 0 && got.CapRate >= StrongCapRate && got.CashOnCashReturn >= StrongCashOnCash:
		want = InvestmentStrong
	case got.MonthlyCashFlow > 0 && got.CapRate >= ModerateCapRate:
		want = InvestmentModerate
	case got.MonthlyCashFlow >= 0:
		want = InvestmentMarginal
	default:
		want = InvestmentNegative
	}
	if got.Verdict != want {
		t.Errorf("Verdict = %q, want %q (cash flow %.2f, cap %.2f, CoC %.2f)",
			got.Verdict, want, got.MonthlyCashFlow, got.CapRate, got.CashOnCashReturn)
	}
}
