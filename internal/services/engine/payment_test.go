package engine

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestCalculatePaymentTotalIsSumOfComponents(t *testing.T) {
	cases := []struct {
		name   string
		params PaymentParams
	}{
		{"typical", PaymentParams{HomePrice: 400_000, DownPayment: 40_000, AnnualRate: 0.065, TermYears: 30, PropertyTaxRate: 0.012, AnnualInsurance: 1500, AnnualPMIRate: 0.0085}},
		{"twenty percent down", PaymentParams{HomePrice: 400_000, DownPayment: 80_000, AnnualRate: 0.065, TermYears: 30, PropertyTaxRate: 0.012, AnnualInsurance: 1500, AnnualPMIRate: 0.0085}},
		{"short term", PaymentParams{HomePrice: 250_000, DownPayment: 25_000, AnnualRate: 0.055, TermYears: 15, PropertyTaxRate: 0.01, AnnualInsurance: 1200, AnnualPMIRate: 0.0085}},
		{"no loan", PaymentParams{HomePrice: 200_000, DownPayment: 250_000, AnnualRate: 0.065, TermYears: 30, PropertyTaxRate: 0.012, AnnualInsurance: 1500, AnnualPMIRate: 0.0085}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := CalculatePayment(tc.params)
			sum := b.Principal + b.Interest + b.PropertyTax + b.HomeInsurance + b.PMI
			if !almostEqual(b.TotalMonthly, sum, 0.01) {
				t.Errorf("TotalMonthly = %.2f, sum of components = %.2f", b.TotalMonthly, sum)
			}
		})
	}
}

func TestCalculatePaymentPMIBoundary(t *testing.T) {
	base := PaymentParams{
		HomePrice:       400_000,
		AnnualRate:      0.065,
		TermYears:       30,
		PropertyTaxRate: 0.012,
		AnnualInsurance: 1500,
		AnnualPMIRate:   0.0085,
	}

	base.DownPayment = 80_000 // exactly 20%
	if b := CalculatePayment(base); b.PMI != 0 {
		t.Errorf("PMI at 20%% down = %.2f, want 0", b.PMI)
	}

	base.DownPayment = 40_000 // 10%
	if b := CalculatePayment(base); b.PMI <= 0 {
		t.Errorf("PMI at 10%% down = %.2f, want > 0", b.PMI)
	}
}

func TestCalculatePaymentKnownFigures(t *testing.T) {
	// 320k loan at 6.5% over 30 years amortizes at about $2022.62/month.
	b := CalculatePayment(PaymentParams{
		HomePrice:       400_000,
		DownPayment:     80_000,
		AnnualRate:      0.065,
		TermYears:       30,
		PropertyTaxRate: 0.012,
		AnnualInsurance: 1500,
		AnnualPMIRate:   0.0085,
	})
	pi := b.Principal + b.Interest
	if !almostEqual(pi, 2022.62, 1.0) {
		t.Errorf("P&I = %.2f, want about 2022.62", pi)
	}
	if !almostEqual(b.PropertyTax, 400.00, 0.01) {
		t.Errorf("PropertyTax = %.2f, want 400.00", b.PropertyTax)
	}
	if !almostEqual(b.HomeInsurance, 125.00, 0.01) {
		t.Errorf("HomeInsurance = %.2f, want 125.00", b.HomeInsurance)
	}
}

func TestMonthlyPIZeroRate(t *testing.T) {
	got := monthlyPI(120_000, 0, 10)
	if !almostEqual(got, 1000, 0.001) {
		t.Errorf("zero-rate PI = %.4f, want 1000", got)
	}
}

func TestCalculatePaymentDownPaymentCoversPrice(t *testing.T) {
	b := CalculatePayment(PaymentParams{
		HomePrice:       200_000,
		DownPayment:     250_000,
		AnnualRate:      0.065,
		TermYears:       30,
		PropertyTaxRate: 0.012,
		AnnualInsurance: 1500,
		AnnualPMIRate:   0.0085,
	})
	if b.Principal != 0 || b.Interest != 0 || b.PMI != 0 {
		t.Errorf("no-loan breakdown has P=%.2f I=%.2f PMI=%.2f, want zeros", b.Principal, b.Interest, b.PMI)
	}
	if b.TotalMonthly <= 0 {
		t.Errorf("tax and insurance still apply, TotalMonthly = %.2f", b.TotalMonthly)
	}
}
