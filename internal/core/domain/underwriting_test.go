package domain

import (
	"math"
	"testing"
)

func TestRequiredScore_Bands(t *testing.T) {
	cases := []struct {
		salary float64
		want   int
	}{
		{0, 400},
		{1500, 400},
		{2000, 400},
		{2000.01, 500},
		{4000, 500},
		{5000, 600},
		{8000, 600},
		{10000, 700},
		{12000, 700},
		{50000, 700},
	}

	for _, c := range cases {
		if got := RequiredScore(c.salary); got != c.want {
			t.Errorf("RequiredScore(%.2f) = %d, want %d", c.salary, got, c.want)
		}
	}
}

func TestRequiredScore_NonDecreasing(t *testing.T) {
	prev := 0
	for salary := 0.0; salary <= 20000; salary += 50 {
		score := RequiredScore(salary)
		if score < prev {
			t.Fatalf("RequiredScore decreased at salary %.2f: %d < %d", salary, score, prev)
		}
		switch score {
		case 400, 500, 600, 700:
		default:
			t.Fatalf("RequiredScore(%.2f) = %d, not a known band score", salary, score)
		}
		prev = score
	}
}

func TestCreditMargin(t *testing.T) {
	if got := CreditMargin(5000); got != 1750 {
		t.Errorf("CreditMargin(5000) = %.2f, want 1750.00", got)
	}
	if got := CreditMargin(0); got != 0 {
		t.Errorf("CreditMargin(0) = %.2f, want 0", got)
	}
}

func TestInstallmentOptions(t *testing.T) {
	options := InstallmentOptions(1000)

	if len(options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(options))
	}

	want := []InstallmentOption{
		{Count: 1, Value: 1000},
		{Count: 2, Value: 500},
		{Count: 3, Value: 333.33},
		{Count: 4, Value: 250},
	}

	for i, w := range want {
		if options[i] != w {
			t.Errorf("option[%d] = %+v, want %+v", i, options[i], w)
		}
	}
}

func TestInstallmentOptions_RoundedHalfUp(t *testing.T) {
	// 101.25 / 2 = 50.625 (exact in binary) -> 50.63 with half-up rounding
	options := InstallmentOptions(101.25)
	if options[1].Value != 50.63 {
		t.Errorf("expected half-up rounding 50.63, got %.4f", options[1].Value)
	}

	// every entry matches round(p/count, 2)
	for _, p := range []float64{100, 250.75, 999.99, 1234.56} {
		for i, opt := range InstallmentOptions(p) {
			count := i + 1
			if opt.Count != count {
				t.Fatalf("option %d has count %d", i, opt.Count)
			}
			want := math.Round(p/float64(count)*100) / 100
			if opt.Value != want {
				t.Errorf("breakdown(%.2f)[%d] = %.4f, want %.4f", p, count, opt.Value, want)
			}
		}
	}
}

func TestRound2(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{333.333333, 333.33},
		{50.625, 50.63},
		{249.994, 249.99},
		{100, 100},
	}
	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Errorf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
