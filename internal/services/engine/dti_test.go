package engine

import "testing"

func TestEvaluateDTI(t *testing.T) {
	cases := []struct {
		name        string
		income      float64
		payment     float64
		debts       float64
		wantFront   float64
		wantBack    float64
		frontStatus string
		backStatus  string
	}{
		{"typical safe", 8000, 2000, 500, 25.00, 31.25, StatusSafe, StatusSafe},
		{"front-end boundary safe", 10000, 2800, 0, 28.00, 28.00, StatusSafe, StatusSafe},
		{"front-end just over", 10000, 2801, 0, 28.01, 28.01, StatusModerate, StatusSafe},
		{"back-end boundary safe", 10000, 2800, 800, 28.00, 36.00, StatusSafe, StatusSafe},
		{"back-end just over", 10000, 2800, 801, 28.00, 36.01, StatusSafe, StatusModerate},
		{"risky both", 5000, 2500, 1000, 50.00, 70.00, StatusRisky, StatusRisky},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EvaluateDTI(tc.income, tc.payment, tc.debts)
			if got.FrontEndRatio != tc.wantFront {
				t.Errorf("FrontEndRatio = %.2f, want %.2f", got.FrontEndRatio, tc.wantFront)
			}
			if got.BackEndRatio != tc.wantBack {
				t.Errorf("BackEndRatio = %.2f, want %.2f", got.BackEndRatio, tc.wantBack)
			}
			if got.FrontEndStatus != tc.frontStatus {
				t.Errorf("FrontEndStatus = %q, want %q", got.FrontEndStatus, tc.frontStatus)
			}
			if got.BackEndStatus != tc.backStatus {
				t.Errorf("BackEndStatus = %q, want %q", got.BackEndStatus, tc.backStatus)
			}
		})
	}
}

func TestEvaluateDTIBackEndAtLeastFrontEnd(t *testing.T) {
	got := EvaluateDTI(7500, 1800, 650)
	if got.BackEndRatio < got.FrontEndRatio {
		t.Errorf("back-end %.2f < front-end %.2f with non-negative debts", got.BackEndRatio, got.FrontEndRatio)
	}
}

func TestEvaluateDTIZeroIncome(t *testing.T) {
	got := EvaluateDTI(0, 2000, 500)
	if got.FrontEndStatus != StatusRisky || got.BackEndStatus != StatusRisky {
		t.Errorf("zero income should classify risky, got %q/%q", got.FrontEndStatus, got.BackEndStatus)
	}
}
