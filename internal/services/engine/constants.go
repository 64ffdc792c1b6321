package engine

// Policy thresholds shared across the components. One source of truth
// governs every band so the same borrower numbers never contradict
// between the DTI evaluator, the stress tester and the readiness scorer.

// DTI bands (percent).
const (
	FrontEndSafeMax     = 28.0
	FrontEndModerateMax = 32.0
	BackEndSafeMax      = 36.0
	BackEndModerateMax  = 43.0
)

// DTI status labels.
const (
	StatusSafe     = "safe"
	StatusModerate = "moderate"
	StatusRisky    = "risky"
)

// Stress severity tiers.
const (
	SeverityManageable    = "manageable"
	SeverityStrained      = "strained"
	SeverityUnsustainable = "unsustainable"

	// Income-loss scenarios tolerate a higher back-end ratio before the
	// unsustainable tier because the cut is assumed temporary.
	IncomeLossUnsustainableDTI = 50.0
)

// Solver bounds.
const (
	SolverPriceCeiling = 3_000_000.0
	SolverIterations   = 60

	DefaultMaxFrontEndDTI = 0.28
	DefaultMaxBackEndDTI  = 0.36

	// RecommendedPriceFactor leaves a buffer below the absolute maximum.
	RecommendedPriceFactor = 0.90
)

// PMI applies below this down-payment fraction of price.
const PMIDownPaymentCutoff = 0.20

// Emergency fund policy.
const (
	AdequateFundMonths = 6
	MinimumFundMonths  = 3

	// RunwayCap bounds months-of-runway when there is no deficit,
	// keeping the output numeric and JSON-safe.
	RunwayCap = 999
)

// Rent-vs-buy economic assumptions (annual rates unless noted).
const (
	DefaultAppreciationRate = 0.03
	DefaultRentGrowthRate   = 0.035
	DefaultMaintenanceRate  = 0.01
	DefaultClosingCostRate  = 0.03
	DefaultOpportunityRate  = 0.06

	// Verdict bands on the 5-year net advantage (dollars).
	BuyClearlyAdvantage = 20_000.0
	TossUpFloor         = -15_000.0

	MaxSimulationMonths = 360
)

// Rent-vs-buy verdicts.
const (
	VerdictBuyClearly = "buy clearly"
	VerdictBuySlight  = "buy slightly"
	VerdictTossUp     = "toss-up"
	VerdictRentBetter = "rent better"
)

// Investment assumptions and verdicts.
const (
	DefaultManagementRate = 0.08
	DefaultVacancyRate    = 0.05
	DefaultCapExRate      = 0.05

	// Monthly rent estimate as a fraction of price when rent is not supplied.
	DefaultRentToPriceRatio = 0.008

	DefaultProjectionYears      = 5
	DefaultInvestmentGrowthRate = 0.03

	StrongCapRate     = 6.0
	StrongCashOnCash  = 8.0
	ModerateCapRate   = 4.5
)

const (
	InvestmentStrong   = "strong"
	InvestmentModerate = "moderate"
	InvestmentMarginal = "marginal"
	InvestmentNegative = "negative"
)

// Rent basis labels record how the investment rent figure was obtained.
const (
	RentBasisProvided  = "provided"
	RentBasisEstimated = "estimated"
)

// Readiness levels.
const (
	LevelReady       = "ready"
	LevelNearlyReady = "nearly ready"
	LevelNeedsPrep   = "needs preparation"
	LevelNotReady    = "not ready"
)
