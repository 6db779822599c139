package services

import (
	"testing"

	"arthika/internal/models"
	"arthika/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := NewUserService(db)

	t.Run("creates_user_with_hashed_password", func(t *testing.T) {
		user, err := svc.CreateUser("alice@example.com", "secret123", "Alice")
		testutil.AssertNoError(t, err)

		if user.Password == "secret123" {
			t.Error("password must not be stored in plaintext")
		}
		if !svc.VerifyPassword(user, "secret123") {
			t.Error("expected password to verify")
		}
		if svc.VerifyPassword(user, "wrong") {
			t.Error("expected wrong password to fail")
		}
		if user.IsOnboardingComplete {
			t.Error("expected onboarding incomplete for new user")
		}
	})

	t.Run("duplicate_email_conflicts", func(t *testing.T) {
		_, err := svc.CreateUser("alice@example.com", "other", "Alice Again")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})
}

func TestGetUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := NewUserService(db)
	user, err := svc.CreateUser("bob@example.com", "secret123", "Bob")
	testutil.AssertNoError(t, err)

	t.Run("by_email", func(t *testing.T) {
		found, err := svc.GetUserByEmail("bob@example.com")
		testutil.AssertNoError(t, err)
		if found.ID != user.ID {
			t.Errorf("expected user %d, got %d", user.ID, found.ID)
		}
	})

	t.Run("by_id", func(t *testing.T) {
		found, err := svc.GetUserByID(user.ID)
		testutil.AssertNoError(t, err)
		if found.Email != "bob@example.com" {
			t.Errorf("unexpected email %s", found.Email)
		}
	})

	t.Run("unknown_email", func(t *testing.T) {
		_, err := svc.GetUserByEmail("nobody@example.com")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestCompleteOnboarding(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := NewUserService(db)
	user, err := svc.CreateUser("carol@example.com", "secret123", "Carol")
	testutil.AssertNoError(t, err)

	updated, err := svc.CompleteOnboarding(user.ID, 100000, 600000, models.RiskToleranceHigh, []string{"retirement", "house"})
	testutil.AssertNoError(t, err)

	if !updated.IsOnboardingComplete {
		t.Error("expected onboarding to be complete")
	}
	if updated.MonthlyIncome != 100000 || updated.EmergencyFund != 600000 {
		t.Errorf("unexpected profile figures: %.2f / %.2f", updated.MonthlyIncome, updated.EmergencyFund)
	}
	if updated.FinancialGoals != "retirement,house" {
		t.Errorf("unexpected goals %q", updated.FinancialGoals)
	}

	t.Run("rejects_negative_income", func(t *testing.T) {
		_, err := svc.CompleteOnboarding(user.ID, -1, 0, models.RiskToleranceLow, nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestUpdateProfile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := NewUserService(db)
	user, err := svc.CreateUser("dave@example.com", "secret123", "Dave")
	testutil.AssertNoError(t, err)

	income := 120000.0
	name := "David"
	updated, err := svc.UpdateProfile(user.ID, ProfileUpdateFields{Name: &name, MonthlyIncome: &income})
	testutil.AssertNoError(t, err)

	if updated.Name != "David" || updated.MonthlyIncome != 120000 {
		t.Errorf("unexpected profile: %s %.2f", updated.Name, updated.MonthlyIncome)
	}

	t.Run("not_found", func(t *testing.T) {
		_, err := svc.UpdateProfile(99999, ProfileUpdateFields{})
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}
