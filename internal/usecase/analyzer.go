package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"NestWorth/internal/domain/models"
	domrepo "NestWorth/internal/domain/repository"
	"NestWorth/internal/services/engine"
	"NestWorth/pkg/cache"
	"NestWorth/pkg/config"
	"NestWorth/pkg/logger"
)

// Analyzer runs the engine components in dependency order over one
// profile/market pair and assembles the full report. Reports are memoized
// in the injected cache keyed by a hash of the inputs, so identical
// profiles never recompute inside the TTL window.
type Analyzer struct {
	cfg     *config.Config
	cache   cache.Service
	metrics domrepo.Metrics
	logger  *logger.Logger
}

func NewAnalyzer(cfg *config.Config, c cache.Service, m domrepo.Metrics, lgr *logger.Logger) *Analyzer {
	return &Analyzer{cfg: cfg, cache: c, metrics: m, logger: lgr}
}

// Analyze produces the full analysis report for one borrower.
func (a *Analyzer) Analyze(ctx context.Context, profile *models.BorrowerProfile, market *models.MarketSnapshot) (*models.AnalysisReport, error) {
	if err := a.validate(profile, market); err != nil {
		return nil, err
	}

	key, keyErr := a.reportKey(profile, market)
	if keyErr == nil && a.cache != nil {
		var cached models.AnalysisReport
		if err := a.cache.Get(ctx, key, &cached); err == nil {
			a.metrics.RecordAnalysis("cached")
			return &cached, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			a.logger.Warn("report cache read failed", logger.Error(err))
		}
	}

	start := time.Now()
	report := a.compute(profile, market)
	a.metrics.RecordLatency("analysis", time.Since(start).Seconds())
	a.metrics.RecordAnalysis("computed")
	a.metrics.RecordReadiness(report.Readiness.Level, float64(report.Readiness.Overall))

	if keyErr == nil && a.cache != nil {
		if err := a.cache.Set(ctx, key, report, a.cfg.Cache.ReportTTL); err != nil {
			a.logger.Warn("report cache write failed", logger.Error(err))
		}
	}

	a.logger.Info("analysis completed",
		logger.Float64("max_home_price", report.Affordability.MaxHomePrice),
		logger.String("readiness", report.Readiness.Level),
		logger.Int64("elapsed_ms", time.Since(start).Milliseconds()))

	return report, nil
}

// compute runs components 1-9 in dependency order. It is pure apart from
// the GeneratedAt stamp.
func (a *Analyzer) compute(profile *models.BorrowerProfile, market *models.MarketSnapshot) *models.AnalysisReport {
	affordability := engine.SolveAffordability(a.solverParams(profile, market))

	monthlyIncome := profile.TotalIncome() / 12
	payment := affordability.Payment
	fixedMonthly := payment.PropertyTax + payment.HomeInsurance + payment.PMI

	stressParams := engine.StressParams{
		MonthlyIncome:   monthlyIncome,
		MonthlyDebts:    profile.MonthlyDebts,
		MonthlyExpenses: profile.MonthlyExpenses,
		HousingPayment:  payment.TotalMonthly,
		FixedMonthly:    fixedMonthly,
		LoanAmount:      affordability.LoanAmount,
		AnnualRate:      market.RateForTerm(profile.LoanTermYears),
		TermYears:       normalizedTerm(profile),
		Savings:         profile.AdditionalSavings,
	}
	stress := engine.RateHikeScenarios(stressParams, nil)
	stress = append(stress, engine.IncomeLossScenarios(stressParams, nil)...)

	closingCosts := affordability.RecommendedHomePrice * a.cfg.Engine.ClosingCostRate
	fund := engine.EvaluateEmergencyFund(
		profile.TotalSavings(),
		profile.DownPaymentSavings,
		closingCosts,
		profile.MonthlyExpenses,
		payment.TotalMonthly,
	)

	rentVsBuy := engine.SimulateRentVsBuy(engine.RentVsBuyParams{
		HomePrice:        affordability.RecommendedHomePrice,
		DownPayment:      profile.DownPaymentSavings,
		AnnualRate:       market.RateForTerm(profile.LoanTermYears),
		TermYears:        normalizedTerm(profile),
		MonthlyRent:      profile.CurrentRent,
		FixedMonthly:     fixedMonthly,
		AppreciationRate: a.cfg.Engine.AppreciationRate,
		RentGrowthRate:   a.cfg.Engine.RentGrowthRate,
		MaintenanceRate:  a.cfg.Engine.MaintenanceRate,
		ClosingCostRate:  a.cfg.Engine.ClosingCostRate,
		OpportunityRate:  a.cfg.Engine.OpportunityRate,
	})

	investment := engine.AnalyzeInvestment(engine.InvestmentParams{
		PurchasePrice:     affordability.RecommendedHomePrice,
		DownPayment:       profile.DownPaymentSavings,
		ClosingCostRate:   a.cfg.Engine.ClosingCostRate,
		MortgagePI:        payment.Principal + payment.Interest,
		MonthlyPMI:        payment.PMI,
		AnnualPropertyTax: payment.PropertyTax * 12,
		AnnualInsurance:   a.cfg.Engine.AnnualInsurance,
		MaintenanceRate:   a.cfg.Engine.MaintenanceRate,
		ManagementRate:    a.cfg.Engine.Investment.ManagementRate,
		VacancyRate:       a.cfg.Engine.Investment.VacancyRate,
		CapExRate:         a.cfg.Engine.Investment.CapExRate,
		AnnualRate:        market.RateForTerm(profile.LoanTermYears),
		TermYears:         normalizedTerm(profile),
		ProjectionYears:   a.cfg.Engine.Investment.Years,
	})

	readiness := engine.ScoreReadiness(engine.ReadinessParams{
		BackEndDTI:      affordability.DTI.BackEndRatio,
		CreditScore:     profile.CreditScore,
		DownPayment:     profile.DownPaymentSavings,
		MaxHomePrice:    affordability.MaxHomePrice,
		EmergencyMonths: fund.MonthsCovered,
	})

	return &models.AnalysisReport{
		Profile:       profile,
		Market:        market,
		Affordability: affordability,
		StressTests:   stress,
		EmergencyFund: fund,
		RentVsBuy:     rentVsBuy,
		Investment:    investment,
		Readiness:     readiness,
		GeneratedAt:   time.Now().UTC(),
	}
}

// Affordability runs the solver alone.
func (a *Analyzer) Affordability(ctx context.Context, profile *models.BorrowerProfile, market *models.MarketSnapshot) (*models.AffordabilityResult, error) {
	if err := a.validate(profile, market); err != nil {
		return nil, err
	}
	start := time.Now()
	result := engine.SolveAffordability(a.solverParams(profile, market))
	a.metrics.RecordLatency("affordability", time.Since(start).Seconds())
	return result, nil
}

// Stress runs rate-hike and income-loss scenarios. Empty deltas/cuts fall
// back to the default scenario sets.
func (a *Analyzer) Stress(ctx context.Context, profile *models.BorrowerProfile, market *models.MarketSnapshot, deltas, cuts []float64) ([]models.StressTestResult, error) {
	if err := a.validate(profile, market); err != nil {
		return nil, err
	}

	affordability := engine.SolveAffordability(a.solverParams(profile, market))
	payment := affordability.Payment

	params := engine.StressParams{
		MonthlyIncome:   profile.TotalIncome() / 12,
		MonthlyDebts:    profile.MonthlyDebts,
		MonthlyExpenses: profile.MonthlyExpenses,
		HousingPayment:  payment.TotalMonthly,
		FixedMonthly:    payment.PropertyTax + payment.HomeInsurance + payment.PMI,
		LoanAmount:      affordability.LoanAmount,
		AnnualRate:      market.RateForTerm(profile.LoanTermYears),
		TermYears:       normalizedTerm(profile),
		Savings:         profile.AdditionalSavings,
	}

	results := engine.RateHikeScenarios(params, deltas)
	return append(results, engine.IncomeLossScenarios(params, cuts)...), nil
}

// RentVsBuy runs the rent-vs-buy simulation at the recommended price.
func (a *Analyzer) RentVsBuy(ctx context.Context, profile *models.BorrowerProfile, market *models.MarketSnapshot) (*models.RentVsBuyReport, error) {
	if err := a.validate(profile, market); err != nil {
		return nil, err
	}

	affordability := engine.SolveAffordability(a.solverParams(profile, market))
	payment := affordability.Payment

	return engine.SimulateRentVsBuy(engine.RentVsBuyParams{
		HomePrice:        affordability.RecommendedHomePrice,
		DownPayment:      profile.DownPaymentSavings,
		AnnualRate:       market.RateForTerm(profile.LoanTermYears),
		TermYears:        normalizedTerm(profile),
		MonthlyRent:      profile.CurrentRent,
		FixedMonthly:     payment.PropertyTax + payment.HomeInsurance + payment.PMI,
		AppreciationRate: a.cfg.Engine.AppreciationRate,
		RentGrowthRate:   a.cfg.Engine.RentGrowthRate,
		MaintenanceRate:  a.cfg.Engine.MaintenanceRate,
		ClosingCostRate:  a.cfg.Engine.ClosingCostRate,
		OpportunityRate:  a.cfg.Engine.OpportunityRate,
	}), nil
}

// Investment analyzes a caller-chosen purchase as a rental. A zero down
// payment falls back to the profile's saved amount; a zero rent triggers
// estimation.
func (a *Analyzer) Investment(ctx context.Context, profile *models.BorrowerProfile, market *models.MarketSnapshot, price, down, rent, hoa float64) (*models.InvestmentAnalysis, error) {
	if err := a.validate(profile, market); err != nil {
		return nil, err
	}
	if price <= 0 {
		return nil, fmt.Errorf("purchase price must be positive, got %.2f", price)
	}
	if down == 0 {
		down = profile.DownPaymentSavings
	}

	rate := market.RateForTerm(profile.LoanTermYears)
	term := normalizedTerm(profile)
	payment := engine.CalculatePayment(engine.PaymentParams{
		HomePrice:       price,
		DownPayment:     down,
		AnnualRate:      rate,
		TermYears:       term,
		PropertyTaxRate: a.cfg.Engine.PropertyTaxRate,
		AnnualInsurance: a.cfg.Engine.AnnualInsurance,
		AnnualPMIRate:   a.cfg.Engine.PMIRate,
	})

	return engine.AnalyzeInvestment(engine.InvestmentParams{
		PurchasePrice:     price,
		DownPayment:       down,
		ClosingCostRate:   a.cfg.Engine.ClosingCostRate,
		MonthlyRent:       rent,
		MortgagePI:        payment.Principal + payment.Interest,
		MonthlyPMI:        payment.PMI,
		AnnualPropertyTax: price * a.cfg.Engine.PropertyTaxRate,
		AnnualInsurance:   a.cfg.Engine.AnnualInsurance,
		MonthlyHOA:        hoa,
		MaintenanceRate:   a.cfg.Engine.MaintenanceRate,
		ManagementRate:    a.cfg.Engine.Investment.ManagementRate,
		VacancyRate:       a.cfg.Engine.Investment.VacancyRate,
		CapExRate:         a.cfg.Engine.Investment.CapExRate,
		AnnualRate:        rate,
		TermYears:         term,
		ProjectionYears:   a.cfg.Engine.Investment.Years,
	}), nil
}

// Readiness computes the composite score with its supporting components.
func (a *Analyzer) Readiness(ctx context.Context, profile *models.BorrowerProfile, market *models.MarketSnapshot) (*models.ReadinessScore, error) {
	if err := a.validate(profile, market); err != nil {
		return nil, err
	}

	affordability := engine.SolveAffordability(a.solverParams(profile, market))
	payment := affordability.Payment

	closingCosts := affordability.RecommendedHomePrice * a.cfg.Engine.ClosingCostRate
	fund := engine.EvaluateEmergencyFund(
		profile.TotalSavings(),
		profile.DownPaymentSavings,
		closingCosts,
		profile.MonthlyExpenses,
		payment.TotalMonthly,
	)

	score := engine.ScoreReadiness(engine.ReadinessParams{
		BackEndDTI:      affordability.DTI.BackEndRatio,
		CreditScore:     profile.CreditScore,
		DownPayment:     profile.DownPaymentSavings,
		MaxHomePrice:    affordability.MaxHomePrice,
		EmergencyMonths: fund.MonthsCovered,
	})
	a.metrics.RecordReadiness(score.Level, float64(score.Overall))
	return score, nil
}

func (a *Analyzer) validate(profile *models.BorrowerProfile, market *models.MarketSnapshot) error {
	if profile == nil || market == nil {
		a.metrics.RecordError("nil_input")
		return fmt.Errorf("profile and market are required")
	}
	if err := profile.Validate(); err != nil {
		a.metrics.RecordError("invalid_profile")
		return fmt.Errorf("invalid profile: %w", err)
	}
	if err := market.Validate(); err != nil {
		a.metrics.RecordError("invalid_market")
		return fmt.Errorf("invalid market: %w", err)
	}
	return nil
}

func (a *Analyzer) solverParams(profile *models.BorrowerProfile, market *models.MarketSnapshot) engine.SolverParams {
	return engine.SolverParams{
		AnnualIncome:    profile.TotalIncome(),
		MonthlyDebts:    profile.MonthlyDebts,
		DownPayment:     profile.DownPaymentSavings,
		AnnualRate:      market.RateForTerm(profile.LoanTermYears),
		TermYears:       normalizedTerm(profile),
		PropertyTaxRate: a.cfg.Engine.PropertyTaxRate,
		AnnualInsurance: a.cfg.Engine.AnnualInsurance,
		AnnualPMIRate:   a.cfg.Engine.PMIRate,
		MaxFrontEndDTI:  a.cfg.Engine.MaxFrontEndDTI,
		MaxBackEndDTI:   a.cfg.Engine.MaxBackEndDTI,
	}
}

func (a *Analyzer) reportKey(profile *models.BorrowerProfile, market *models.MarketSnapshot) (string, error) {
	b, err := json.Marshal(struct {
		P *models.BorrowerProfile `json:"p"`
		M *models.MarketSnapshot  `json:"m"`
	}{profile, market})
	if err != nil {
		return "", err
	}
	return cache.GenerateKey("analysis", cache.HashKey(string(b))), nil
}

func normalizedTerm(profile *models.BorrowerProfile) int {
	return int(domrepo.NormalizeTerm(profile.LoanTermYears))
}
