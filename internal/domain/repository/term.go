package repository

// LoanTerm is a supported mortgage term in years.
type LoanTerm int

const (
	Term15 LoanTerm = 15
	Term20 LoanTerm = 20
	Term30 LoanTerm = 30
)

// IsValidTerm returns true if t is a supported loan term.
func IsValidTerm(t LoanTerm) bool {
	switch t {
	case Term15, Term20, Term30:
		return true
	default:
		return false
	}
}

// DefaultTerm returns the default loan term.
func DefaultTerm() LoanTerm { return Term30 }

// NormalizeTerm converts raw years to a valid term (or default).
func NormalizeTerm(years int) LoanTerm {
	if years == 0 {
		return DefaultTerm()
	}
	t := LoanTerm(years)
	if IsValidTerm(t) {
		return t
	}
	return DefaultTerm()
}
