package services

import (
	"testing"
	"time"

	"arthika/internal/models"
	"arthika/internal/testutil"
)

func TestCreateSip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	svc := NewSipService(db)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("creates_active_sip", func(t *testing.T) {
		sip, err := svc.CreateSip(user.ID, "Index Fund", models.SipCategoryLargeCap, 10000, 0, 40, 12, start)
		testutil.AssertNoError(t, err)
		if !sip.IsActive {
			t.Error("expected new SIP to be active")
		}
	})

	t.Run("rejects_unknown_category", func(t *testing.T) {
		_, err := svc.CreateSip(user.ID, "Fund", models.SipCategory("CRYPTO"), 10000, 0, 40, 12, start)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("rejects_allocation_over_100", func(t *testing.T) {
		_, err := svc.CreateSip(user.ID, "Fund", models.SipCategoryDebt, 10000, 0, 101, 12, start)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestRecordMonthlyInvestment(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	svc := NewSipService(db)
	sip := testutil.CreateTestSip(t, db, user.ID)
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("appends_to_ledger", func(t *testing.T) {
		investment, err := svc.RecordMonthlyInvestment(user.ID, sip.ID, 10000, date)
		testutil.AssertNoError(t, err)
		if investment.SipID != sip.ID {
			t.Errorf("expected investment against SIP %d, got %d", sip.ID, investment.SipID)
		}
	})

	t.Run("does_not_touch_current_value", func(t *testing.T) {
		_, err := svc.RecordMonthlyInvestment(user.ID, sip.ID, 5000, date)
		testutil.AssertNoError(t, err)

		stored, err := svc.GetSipByID(user.ID, sip.ID)
		testutil.AssertNoError(t, err)
		if stored.CurrentValue != sip.CurrentValue {
			t.Errorf("expected current value unchanged at %.2f, got %.2f", sip.CurrentValue, stored.CurrentValue)
		}
	})

	t.Run("rejects_nonpositive_amount", func(t *testing.T) {
		_, err := svc.RecordMonthlyInvestment(user.ID, sip.ID, 0, date)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("other_users_sip_is_invisible", func(t *testing.T) {
		other := testutil.CreateTestUser(t, db)
		_, err := svc.RecordMonthlyInvestment(other.ID, sip.ID, 10000, date)
		testutil.AssertAppError(t, err, "SIP_NOT_FOUND")
	})
}

func TestGetMonthlyInvestments(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	svc := NewSipService(db)
	sip := testutil.CreateTestSip(t, db, user.ID)

	testutil.CreateTestMonthlyInvestment(t, db, user.ID, sip.ID, 10000, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	testutil.CreateTestMonthlyInvestment(t, db, user.ID, sip.ID, 10000, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))

	investments, err := svc.GetMonthlyInvestments(user.ID, sip.ID)
	testutil.AssertNoError(t, err)
	if len(investments) != 2 {
		t.Fatalf("expected 2 investments, got %d", len(investments))
	}
	if !investments[0].InvestmentDate.After(investments[1].InvestmentDate) {
		t.Error("expected newest investment first")
	}
}

func TestProjectPortfolio(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	svc := NewSipService(db)

	active := testutil.CreateTestSip(t, db, user.ID)

	inactive := testutil.CreateTestSip(t, db, user.ID)
	db.Model(inactive).UpdateColumn("is_active", false)

	result, err := svc.ProjectPortfolio(user.ID, 10)
	testutil.AssertNoError(t, err)

	if result.CurrentPortfolioValue != active.CurrentValue {
		t.Errorf("expected inactive SIPs excluded: current value %.2f, got %.2f", active.CurrentValue, result.CurrentPortfolioValue)
	}
	if result.MonthlyInvestment != active.MonthlyAmount {
		t.Errorf("expected monthly investment %.2f, got %.2f", active.MonthlyAmount, result.MonthlyInvestment)
	}
	if result.ProjectedValue <= result.CurrentPortfolioValue {
		t.Errorf("expected growth over 10 years, got %.2f from %.2f", result.ProjectedValue, result.CurrentPortfolioValue)
	}
	if result.ProjectionYears != 10 {
		t.Errorf("expected 10 projection years, got %d", result.ProjectionYears)
	}
}
