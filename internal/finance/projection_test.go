package finance

import (
	"math"
	"testing"
)

func TestFutureValue(t *testing.T) {
	t.Run("zero_rate_is_simple_accumulation", func(t *testing.T) {
		fv, err := FutureValue(0, 10000, 0, 120)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fv != 10000*120 {
			t.Errorf("expected exactly %.0f at zero rate, got %.2f", 10000.0*120, fv)
		}
	})

	t.Run("zero_rate_keeps_current_value", func(t *testing.T) {
		fv, err := FutureValue(50000, 0, 0, 60)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fv != 50000 {
			t.Errorf("expected 50000, got %.2f", fv)
		}
	})

	t.Run("strictly_increasing_in_months", func(t *testing.T) {
		prev := 0.0
		for _, months := range []int{12, 24, 60, 120, 240} {
			fv, err := FutureValue(100000, 5000, 12, months)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if fv <= prev {
				t.Fatalf("future value not increasing at %d months: %.2f <= %.2f", months, fv, prev)
			}
			prev = fv
		}
	})

	t.Run("strictly_increasing_in_rate", func(t *testing.T) {
		prev := 0.0
		for _, rate := range []float64{1, 5, 8, 12, 15} {
			fv, err := FutureValue(100000, 5000, rate, 120)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if fv <= prev {
				t.Fatalf("future value not increasing at rate %.0f%%: %.2f <= %.2f", rate, fv, prev)
			}
			prev = fv
		}
	})

	t.Run("negative_inputs", func(t *testing.T) {
		_, err := FutureValue(-1, 5000, 12, 120)
		assertAppError(t, err, "INVALID_PROJECTION")

		_, err = FutureValue(100000, -1, 12, 120)
		assertAppError(t, err, "INVALID_PROJECTION")
	})
}

func TestProjectPortfolio(t *testing.T) {
	t.Run("single_holding_matches_formula", func(t *testing.T) {
		holdings := []Holding{{CurrentValue: 200000, MonthlyAmount: 10000, AnnualRate: 12}}
		result, err := ProjectPortfolio(holdings, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		r := 12.0 / 100 / 12
		growth := math.Pow(1+r, 120)
		want := math.Round(200000*growth + 10000*((growth-1)/r))
		if result.ProjectedValue != want {
			t.Errorf("expected projected value %.0f, got %.0f", want, result.ProjectedValue)
		}

		wantGains := math.Round(200000*growth + 10000*((growth-1)/r) - 200000 - 10000*12*10)
		if result.ExpectedGains != wantGains {
			t.Errorf("expected gains %.0f, got %.0f", wantGains, result.ExpectedGains)
		}
		if result.CurrentPortfolioValue != 200000 {
			t.Errorf("expected current value 200000, got %.0f", result.CurrentPortfolioValue)
		}
		if result.MonthlyInvestment != 10000 {
			t.Errorf("expected monthly investment 10000, got %.0f", result.MonthlyInvestment)
		}
	})

	t.Run("aggregates_multiple_holdings", func(t *testing.T) {
		holdings := []Holding{
			{CurrentValue: 100000, MonthlyAmount: 5000, AnnualRate: 12},
			{CurrentValue: 50000, MonthlyAmount: 3000, AnnualRate: 8},
		}
		result, err := ProjectPortfolio(holdings, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.CurrentPortfolioValue != 150000 {
			t.Errorf("expected current value 150000, got %.0f", result.CurrentPortfolioValue)
		}
		if result.MonthlyInvestment != 8000 {
			t.Errorf("expected monthly investment 8000, got %.0f", result.MonthlyInvestment)
		}
		if result.TotalInvested != 8000*12*10 {
			t.Errorf("expected total invested %.0f, got %.0f", 8000.0*12*10, result.TotalInvested)
		}
	})

	t.Run("empty_portfolio", func(t *testing.T) {
		result, err := ProjectPortfolio(nil, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.ProjectedValue != 0 || result.ExpectedGains != 0 {
			t.Errorf("expected zero projection for empty portfolio, got %+v", result)
		}
	})

	t.Run("rounded_to_whole_units", func(t *testing.T) {
		holdings := []Holding{{CurrentValue: 123456.78, MonthlyAmount: 987.65, AnnualRate: 11}}
		result, err := ProjectPortfolio(holdings, 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.ProjectedValue != math.Trunc(result.ProjectedValue) {
			t.Errorf("expected whole-unit projected value, got %f", result.ProjectedValue)
		}
		if result.ExpectedGains != math.Trunc(result.ExpectedGains) {
			t.Errorf("expected whole-unit gains, got %f", result.ExpectedGains)
		}
	})

	t.Run("invalid_years", func(t *testing.T) {
		_, err := ProjectPortfolio([]Holding{{CurrentValue: 1000}}, 0)
		assertAppError(t, err, "INVALID_INPUT")
	})
}
