package services

import (
	"testing"
	"time"

	"arthika/internal/finance"
	"arthika/internal/models"
	"arthika/internal/testutil"
)

func TestSaveSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	svc := NewSummaryService(db)

	input := SummaryInput{
		Month:            3,
		Year:             2025,
		TotalIncome:      100000,
		FixedExpenses:    40000,
		VariableExpenses: 20000,
		TotalInvestments: 15000,
		EmergencyFund:    600000,
		Insurance:        2000,
	}

	t.Run("derives_rates_and_score", func(t *testing.T) {
		summary, err := svc.SaveSummary(user.ID, input)
		testutil.AssertNoError(t, err)

		// (100000-40000-20000)/100000 = 40% savings, 15% investment,
		// 6 months of emergency cover: 30+25+40 = 95 -> EXCELLENT.
		if summary.SavingsRate != 40 {
			t.Errorf("expected savings rate 40, got %.2f", summary.SavingsRate)
		}
		if summary.InvestmentRate != 15 {
			t.Errorf("expected investment rate 15, got %.2f", summary.InvestmentRate)
		}
		if summary.HealthScore != finance.HealthExcellent {
			t.Errorf("expected EXCELLENT, got %s", summary.HealthScore)
		}
	})

	t.Run("upserts_same_period", func(t *testing.T) {
		changed := input
		changed.VariableExpenses = 50000
		_, err := svc.SaveSummary(user.ID, changed)
		testutil.AssertNoError(t, err)

		var count int64
		db.Model(&models.FinancialSummary{}).
			Where("user_id = ? AND month = ? AND year = ?", user.ID, 3, 2025).
			Count(&count)
		if count != 1 {
			t.Fatalf("expected one row per period, got %d", count)
		}

		summary, err := svc.GetSummary(user.ID, 3, 2025)
		testutil.AssertNoError(t, err)
		if summary.VariableExpenses != 50000 {
			t.Errorf("expected updated variable expenses 50000, got %.2f", summary.VariableExpenses)
		}
	})

	t.Run("zero_income_yields_zero_rates", func(t *testing.T) {
		zero := SummaryInput{Month: 4, Year: 2025, FixedExpenses: 10000}
		summary, err := svc.SaveSummary(user.ID, zero)
		testutil.AssertNoError(t, err)
		if summary.SavingsRate != 0 || summary.InvestmentRate != 0 {
			t.Errorf("expected zero rates at zero income, got %.2f / %.2f", summary.SavingsRate, summary.InvestmentRate)
		}
		if summary.HealthScore != finance.HealthPoor {
			t.Errorf("expected POOR at zero income with no emergency fund, got %s", summary.HealthScore)
		}
	})

	t.Run("rejects_negative_figures", func(t *testing.T) {
		bad := input
		bad.TotalIncome = -1
		_, err := svc.SaveSummary(user.ID, bad)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGenerateSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	svc := NewSummaryService(db)
	expenses := NewExpenseService(db)

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err := expenses.CreateExpense(user.ID, 12000, "rent", "", date, true)
	testutil.AssertNoError(t, err)
	_, err = expenses.CreateExpense(user.ID, 8000, "food", "", date, false)
	testutil.AssertNoError(t, err)

	testutil.CreateTestLoan(t, db, user.ID) // EMI 25000
	sip := testutil.CreateTestSip(t, db, user.ID)

	// Only contributions actually recorded in the month count as
	// investments; the SIP's nominal monthly amount does not.
	testutil.CreateTestMonthlyInvestment(t, db, user.ID, sip.ID, 5000, date)
	testutil.CreateTestMonthlyInvestment(t, db, user.ID, sip.ID, 7000,
		time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC))

	summary, err := svc.GenerateSummary(user.ID, 3, 2025)
	testutil.AssertNoError(t, err)

	if summary.TotalIncome != user.MonthlyIncome {
		t.Errorf("expected income %.2f, got %.2f", user.MonthlyIncome, summary.TotalIncome)
	}
	// Fixed = 12000 recorded + 25000 loan EMI.
	if summary.FixedExpenses != 37000 {
		t.Errorf("expected fixed expenses 37000, got %.2f", summary.FixedExpenses)
	}
	if summary.VariableExpenses != 8000 {
		t.Errorf("expected variable expenses 8000, got %.2f", summary.VariableExpenses)
	}
	if summary.TotalInvestments != 5000 {
		t.Errorf("expected investments 5000 (March contribution only), got %.2f", summary.TotalInvestments)
	}
	if summary.Insurance != 2000 {
		t.Errorf("expected default insurance 2000, got %.2f", summary.Insurance)
	}
	if summary.EmergencyFund != user.EmergencyFund {
		t.Errorf("expected emergency fund %.2f, got %.2f", user.EmergencyFund, summary.EmergencyFund)
	}
}

func TestGetSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	svc := NewSummaryService(db)

	t.Run("not_found_for_unsaved_period", func(t *testing.T) {
		_, err := svc.GetSummary(user.ID, 5, 2025)
		testutil.AssertAppError(t, err, "SUMMARY_NOT_FOUND")

		var count int64
		db.Model(&models.FinancialSummary{}).
			Where("user_id = ? AND month = ? AND year = ?", user.ID, 5, 2025).
			Count(&count)
		if count != 0 {
			t.Errorf("expected no summary row from a plain read, got %d", count)
		}
	})

	t.Run("returns_stored_summary", func(t *testing.T) {
		generated, err := svc.GenerateSummary(user.ID, 5, 2025)
		testutil.AssertNoError(t, err)
		stored, err := svc.GetSummary(user.ID, 5, 2025)
		testutil.AssertNoError(t, err)
		if stored.ID != generated.ID {
			t.Errorf("expected the stored row, got %d and %d", stored.ID, generated.ID)
		}
	})

	t.Run("invalid_month", func(t *testing.T) {
		_, err := svc.GetSummary(user.ID, 0, 2025)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetCurrentSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	svc := NewSummaryService(db)

	// The current read generates and persists on first access.
	first, err := svc.GetCurrentSummary(user.ID)
	testutil.AssertNoError(t, err)
	if first.ID == 0 {
		t.Fatal("expected generated summary to be persisted")
	}

	second, err := svc.GetCurrentSummary(user.ID)
	testutil.AssertNoError(t, err)
	if second.ID != first.ID {
		t.Errorf("expected the same stored row, got %d and %d", first.ID, second.ID)
	}
}

func TestGetUserSummaries(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	svc := NewSummaryService(db)

	for _, period := range []struct{ m, y int }{{1, 2025}, {12, 2024}, {3, 2025}} {
		_, err := svc.GenerateSummary(user.ID, period.m, period.y)
		testutil.AssertNoError(t, err)
	}

	summaries, err := svc.GetUserSummaries(user.ID)
	testutil.AssertNoError(t, err)
	if len(summaries) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(summaries))
	}
	if summaries[0].Month != 3 || summaries[0].Year != 2025 {
		t.Errorf("expected newest period first, got %d/%d", summaries[0].Month, summaries[0].Year)
	}
	if summaries[2].Month != 12 || summaries[2].Year != 2024 {
		t.Errorf("expected oldest period last, got %d/%d", summaries[2].Month, summaries[2].Year)
	}
}
