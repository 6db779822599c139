package services

import (
	"testing"
	"time"

	"arthika/internal/models"
	"arthika/internal/testutil"
)

func TestCreateBudget(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	svc := NewBudgetService(db)

	t.Run("creates_budget", func(t *testing.T) {
		budget, err := svc.CreateBudget(user.ID, "food", 8000, 3, 2025)
		testutil.AssertNoError(t, err)
		if budget.CurrentSpent != 0 {
			t.Errorf("expected fresh budget to have zero spent, got %.2f", budget.CurrentSpent)
		}
	})

	t.Run("duplicate_period_conflicts", func(t *testing.T) {
		_, err := svc.CreateBudget(user.ID, "food", 9000, 3, 2025)
		testutil.AssertAppError(t, err, "DUPLICATE_BUDGET")
	})

	t.Run("same_category_other_period_is_fine", func(t *testing.T) {
		_, err := svc.CreateBudget(user.ID, "food", 8000, 4, 2025)
		testutil.AssertNoError(t, err)
	})

	t.Run("validates_inputs", func(t *testing.T) {
		_, err := svc.CreateBudget(user.ID, "", 8000, 3, 2025)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateBudget(user.ID, "travel", -1, 3, 2025)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateBudget(user.ID, "travel", 8000, 13, 2025)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserBudgets(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	svc := NewBudgetService(db)

	testutil.CreateTestBudget(t, db, user.ID, "food", 8000, 3, 2025)
	testutil.CreateTestBudget(t, db, user.ID, "shopping", 5000, 3, 2025)
	testutil.CreateTestBudget(t, db, user.ID, "food", 8500, 4, 2025)

	t.Run("all_budgets", func(t *testing.T) {
		budgets, err := svc.GetUserBudgets(user.ID, nil, nil)
		testutil.AssertNoError(t, err)
		if len(budgets) != 3 {
			t.Errorf("expected 3 budgets, got %d", len(budgets))
		}
	})

	t.Run("filtered_by_period", func(t *testing.T) {
		month, year := 3, 2025
		budgets, err := svc.GetUserBudgets(user.ID, &month, &year)
		testutil.AssertNoError(t, err)
		if len(budgets) != 2 {
			t.Errorf("expected 2 budgets in March, got %d", len(budgets))
		}
	})
}

func TestUpdateBudget(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	svc := NewBudgetService(db)
	budget := testutil.CreateTestBudget(t, db, user.ID, "food", 8000, 3, 2025)

	limit := 10000.0
	updated, err := svc.UpdateBudget(user.ID, budget.ID, &limit, nil)
	testutil.AssertNoError(t, err)
	if updated.MonthlyLimit != 10000 {
		t.Errorf("expected limit 10000, got %.2f", updated.MonthlyLimit)
	}

	spent := 1234.0
	updated, err = svc.UpdateBudget(user.ID, budget.ID, nil, &spent)
	testutil.AssertNoError(t, err)
	if updated.CurrentSpent != 1234 {
		t.Errorf("expected spent 1234, got %.2f", updated.CurrentSpent)
	}

	negative := -1.0
	_, err = svc.UpdateBudget(user.ID, budget.ID, &negative, nil)
	testutil.AssertAppError(t, err, "INVALID_INPUT")
}

func TestDeleteBudget(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	svc := NewBudgetService(db)
	budget := testutil.CreateTestBudget(t, db, user.ID, "food", 8000, 3, 2025)

	testutil.AssertNoError(t, svc.DeleteBudget(user.ID, budget.ID))

	_, err := svc.GetBudgetByID(user.ID, budget.ID)
	testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
}

func TestInitializeDefaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	svc := NewBudgetService(db)

	budgets, err := svc.InitializeDefaults(user.ID)
	testutil.AssertNoError(t, err)
	if len(budgets) != 8 {
		t.Fatalf("expected 8 default budgets, got %d", len(budgets))
	}

	var total *models.Budget
	var sum float64
	for i := range budgets {
		if budgets[i].Category == models.TotalBudgetCategory {
			total = &budgets[i]
		} else {
			sum += budgets[i].MonthlyLimit
		}
	}
	if total == nil {
		t.Fatal("expected a total budget row")
	}
	if total.MonthlyLimit != 30000 {
		t.Errorf("expected total limit 30000, got %.2f", total.MonthlyLimit)
	}
	if sum != 30000 {
		t.Errorf("expected category limits to sum to 30000, got %.2f", sum)
	}

	t.Run("second_initialization_conflicts", func(t *testing.T) {
		_, err := svc.InitializeDefaults(user.ID)
		testutil.AssertAppError(t, err, "BUDGETS_EXIST")
	})
}

func TestGetCurrentOverview(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	svc := NewBudgetService(db)

	now := time.Now()
	month, year := int(now.Month()), now.Year()
	testutil.CreateTestBudget(t, db, user.ID, models.TotalBudgetCategory, 30000, month, year)
	testutil.CreateTestBudget(t, db, user.ID, "food", 8000, month, year)
	testutil.CreateTestBudget(t, db, user.ID, "shopping", 5000, month, year)

	overview, err := svc.GetCurrentOverview(user.ID)
	testutil.AssertNoError(t, err)

	if overview.TotalBudget == nil || overview.TotalBudget.MonthlyLimit != 30000 {
		t.Errorf("expected total budget 30000, got %+v", overview.TotalBudget)
	}
	if len(overview.CategoryBudgets) != 2 {
		t.Errorf("expected 2 category budgets, got %d", len(overview.CategoryBudgets))
	}
	if overview.Month != month || overview.Year != year {
		t.Errorf("expected period %d/%d, got %d/%d", month, year, overview.Month, overview.Year)
	}
}
