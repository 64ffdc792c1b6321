package util

import "testing"

func TestRoundCents(t *testing.T) {
	if got := RoundCents(1234.5678); got != 1234.57 {
		t.Fatalf("unexpected %v", got)
	}
	if got := RoundCents(-0.005); got != -0.0 && got != 0.0 {
		t.Fatalf("unexpected %v", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(150, 0, 100); got != 100 {
		t.Fatalf("unexpected %v", got)
	}
	if got := Clamp(-5, 0, 100); got != 0 {
		t.Fatalf("unexpected %v", got)
	}
	if got := Clamp(42, 0, 100); got != 42 {
		t.Fatalf("unexpected %v", got)
	}
}
