package usecase

import (
	"context"
	"testing"
	"time"

	"NestWorth/internal/domain/models"
	"NestWorth/internal/services/engine"
	"NestWorth/pkg/cache"
	"NestWorth/pkg/config"
	"NestWorth/pkg/logger"
)

type noopMetrics struct{}

func (noopMetrics) RecordAnalysis(string)           {}
func (noopMetrics) RecordError(string)              {}
func (noopMetrics) RecordReadiness(string, float64) {}
func (noopMetrics) RecordLatency(string, float64)   {}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.ReportTTL = 15 * time.Minute
	e := &cfg.Engine
	e.MaxFrontEndDTI = 0.28
	e.MaxBackEndDTI = 0.36
	e.PropertyTaxRate = 0.012
	e.AnnualInsurance = 1500
	e.PMIRate = 0.0085
	e.AppreciationRate = 0.03
	e.RentGrowthRate = 0.035
	e.MaintenanceRate = 0.01
	e.ClosingCostRate = 0.03
	e.OpportunityRate = 0.06
	e.Investment.ManagementRate = 0.08
	e.Investment.VacancyRate = 0.05
	e.Investment.CapExRate = 0.05
	e.Investment.Years = 5
	return cfg
}

func testAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	lgr, err := logger.New(&logger.Config{Level: "error", Format: "console", Output: "stdout"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	mem := cache.NewMemoryCache()
	t.Cleanup(func() { _ = mem.Close() })
	return NewAnalyzer(testConfig(), mem, noopMetrics{}, lgr)
}

func testProfile() *models.BorrowerProfile {
	return &models.BorrowerProfile{
		AnnualIncome:       100_000,
		MonthlyDebts:       500,
		DownPaymentSavings: 50_000,
		AdditionalSavings:  30_000,
		CreditScore:        740,
		MonthlyExpenses:    3_000,
		CurrentRent:        2_200,
		LoanTermYears:      30,
		LoanType:           "conventional",
	}
}

func testMarket() *models.MarketSnapshot {
	return &models.MarketSnapshot{Rate30Year: 6.5, Rate15Year: 5.9, InflationRate: 3.1}
}

func TestAnalyzeAssemblesFullReport(t *testing.T) {
	a := testAnalyzer(t)
	report, err := a.Analyze(context.Background(), testProfile(), testMarket())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if report.Affordability == nil || report.EmergencyFund == nil ||
		report.RentVsBuy == nil || report.Investment == nil || report.Readiness == nil {
		t.Fatal("report missing sections")
	}
	if len(report.StressTests) != len(engine.DefaultRateDeltas)+len(engine.DefaultIncomeCuts) {
		t.Errorf("got %d stress scenarios, want %d",
			len(report.StressTests), len(engine.DefaultRateDeltas)+len(engine.DefaultIncomeCuts))
	}
	if report.Affordability.MaxHomePrice <= 200_000 || report.Affordability.MaxHomePrice >= 600_000 {
		t.Errorf("MaxHomePrice = %.0f out of expected range", report.Affordability.MaxHomePrice)
	}
	if report.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not stamped")
	}
}

func TestAnalyzeMemoizesIdenticalInputs(t *testing.T) {
	a := testAnalyzer(t)
	ctx := context.Background()

	first, err := a.Analyze(ctx, testProfile(), testMarket())
	if err != nil {
		t.Fatalf("first Analyze: %v", err)
	}
	second, err := a.Analyze(ctx, testProfile(), testMarket())
	if err != nil {
		t.Fatalf("second Analyze: %v", err)
	}

	// The memoized report carries the original timestamp.
	if !second.GeneratedAt.Equal(first.GeneratedAt) {
		t.Errorf("second run recomputed: %v vs %v", second.GeneratedAt, first.GeneratedAt)
	}
	if second.Affordability.MaxHomePrice != first.Affordability.MaxHomePrice {
		t.Errorf("cached MaxHomePrice %.0f != %.0f", second.Affordability.MaxHomePrice, first.Affordability.MaxHomePrice)
	}
}

func TestAnalyzeRejectsInvalidInput(t *testing.T) {
	a := testAnalyzer(t)
	ctx := context.Background()

	bad := testProfile()
	bad.CreditScore = 200
	if _, err := a.Analyze(ctx, bad, testMarket()); err == nil {
		t.Error("credit score below 300 accepted")
	}

	negative := testProfile()
	negative.AnnualIncome = -1
	if _, err := a.Analyze(ctx, negative, testMarket()); err == nil {
		t.Error("negative income accepted")
	}

	badMarket := &models.MarketSnapshot{Rate30Year: 0, Rate15Year: 5.9}
	if _, err := a.Analyze(ctx, testProfile(), badMarket); err == nil {
		t.Error("zero rate accepted")
	}

	if _, err := a.Analyze(ctx, nil, testMarket()); err == nil {
		t.Error("nil profile accepted")
	}
}

func TestStressCustomScenarios(t *testing.T) {
	a := testAnalyzer(t)
	results, err := a.Stress(context.Background(), testProfile(), testMarket(), []float64{0.5}, []float64{30})
	if err != nil {
		t.Fatalf("Stress: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d scenarios, want 2", len(results))
	}
}

func TestInvestmentUsesProfileDownPayment(t *testing.T) {
	a := testAnalyzer(t)
	got, err := a.Investment(context.Background(), testProfile(), testMarket(), 300_000, 0, 2_400, 0)
	if err != nil {
		t.Fatalf("Investment: %v", err)
	}
	want := 50_000 + 300_000*0.03
	if got.TotalCashInvested != want {
		t.Errorf("TotalCashInvested = %.2f, want %.2f", got.TotalCashInvested, want)
	}
	if got.RentBasis != engine.RentBasisProvided {
		t.Errorf("RentBasis = %q", got.RentBasis)
	}
}

func TestInvestmentRejectsZeroPrice(t *testing.T) {
	a := testAnalyzer(t)
	if _, err := a.Investment(context.Background(), testProfile(), testMarket(), 0, 0, 0, 0); err == nil {
		t.Error("zero purchase price accepted")
	}
}

func TestReadinessConsistentWithAnalyze(t *testing.T) {
	a := testAnalyzer(t)
	ctx := context.Background()

	report, err := a.Analyze(ctx, testProfile(), testMarket())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	score, err := a.Readiness(ctx, testProfile(), testMarket())
	if err != nil {
		t.Fatalf("Readiness: %v", err)
	}
	if score.Overall != report.Readiness.Overall {
		t.Errorf("standalone readiness %d != report readiness %d", score.Overall, report.Readiness.Overall)
	}
}
