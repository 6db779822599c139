package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "arthika/internal/errors"
	"arthika/internal/models"
)

// defaultBudgets is the preset seeded by InitializeDefaults for a fresh
// month. The "total" row aggregates spending across all categories.
var defaultBudgets = []struct {
	Category     string
	MonthlyLimit float64
}{
	{models.TotalBudgetCategory, 30000},
	{"food", 8000},
	{"transportation", 3000},
	{"entertainment", 2000},
	{"utilities", 2000},
	{"shopping", 5000},
	{"healthcare", 2000},
	{"miscellaneous", 8000},
}

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// CreateBudget creates a budget for a (category, month, year) period.
// At most one budget may exist per period and category.
func (s *budgetService) CreateBudget(userID uint, category string, monthlyLimit float64, month, year int) (*models.Budget, error) {
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if monthlyLimit < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "monthly limit must not be negative")
	}
	if month < 1 || month > 12 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}
	if year < 2020 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "year must be 2020 or later")
	}

	var count int64
	if err := s.db.Model(&models.Budget{}).
		Where("user_id = ? AND category = ? AND month = ? AND year = ?", userID, category, month, year).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateBudget
	}

	budget := &models.Budget{
		UserID:       userID,
		Category:     category,
		MonthlyLimit: monthlyLimit,
		Month:        month,
		Year:         year,
	}

	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return budget, nil
}

// GetUserBudgets returns the user's budgets, optionally restricted to one
// period, ordered newest period first.
func (s *budgetService) GetUserBudgets(userID uint, month, year *int) ([]models.Budget, error) {
	q := s.db.Where("user_id = ?", userID)
	if month != nil && year != nil {
		q = q.Where("month = ? AND year = ?", *month, *year)
	}

	var budgets []models.Budget
	if err := q.Order("year DESC, month DESC, category ASC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// GetBudgetByID returns a budget by ID if it belongs to the user.
func (s *budgetService) GetBudgetByID(userID, budgetID uint) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// UpdateBudget updates the limit and, when explicitly supplied, the spent
// total of a budget. The spent override exists for manual corrections only;
// normal maintenance happens through expense mutations.
func (s *budgetService) UpdateBudget(userID, budgetID uint, monthlyLimit, currentSpent *float64) (*models.Budget, error) {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if monthlyLimit != nil {
		if *monthlyLimit < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "monthly limit must not be negative")
		}
		updates["monthly_limit"] = *monthlyLimit
	}
	if currentSpent != nil {
		if *currentSpent < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current spent must not be negative")
		}
		updates["current_spent"] = *currentSpent
	}

	if len(updates) > 0 {
		if err := s.db.Model(budget).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return budget, nil
}

// DeleteBudget soft-deletes a budget.
func (s *budgetService) DeleteBudget(userID, budgetID uint) error {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(budget).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetCurrentOverview returns the current month's budgets with the total
// row split out from the per-category rows.
func (s *budgetService) GetCurrentOverview(userID uint) (*BudgetOverview, error) {
	now := time.Now()
	month, year := int(now.Month()), now.Year()

	budgets, err := s.GetUserBudgets(userID, &month, &year)
	if err != nil {
		return nil, err
	}

	overview := &BudgetOverview{CategoryBudgets: []models.Budget{}, Month: month, Year: year}
	for i := range budgets {
		if budgets[i].Category == models.TotalBudgetCategory {
			b := budgets[i]
			overview.TotalBudget = &b
		} else {
			overview.CategoryBudgets = append(overview.CategoryBudgets, budgets[i])
		}
	}
	return overview, nil
}

// InitializeDefaults seeds the default budget set for the current month.
// Fails with a conflict if any budget already exists for the period.
func (s *budgetService) InitializeDefaults(userID uint) ([]models.Budget, error) {
	now := time.Now()
	month, year := int(now.Month()), now.Year()

	var count int64
	if err := s.db.Model(&models.Budget{}).
		Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrBudgetsExist
	}

	budgets := make([]models.Budget, 0, len(defaultBudgets))
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, d := range defaultBudgets {
			budget := models.Budget{
				UserID:       userID,
				Category:     d.Category,
				MonthlyLimit: d.MonthlyLimit,
				Month:        month,
				Year:         year,
			}
			if err := tx.Create(&budget).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			budgets = append(budgets, budget)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return budgets, nil
}

// applyBudgetDeltas adjusts currentSpent on the category row and the
// period's total row for each delta. The adjustment is a single SQL
// increment against the stored value, so concurrent expense writes for
// the same period land correctly in any order. Missing budget rows are a
// no-op: budgets are opt-in and absence is not an error.
func applyBudgetDeltas(tx *gorm.DB, userID uint, deltas []budgetDelta) error {
	for _, d := range deltas {
		for _, category := range []string{d.Key.Category, models.TotalBudgetCategory} {
			err := tx.Model(&models.Budget{}).
				Where("user_id = ? AND category = ? AND month = ? AND year = ?",
					userID, category, d.Key.Month, d.Key.Year).
				UpdateColumn("current_spent", gorm.Expr("current_spent + ?", d.Delta)).Error
			if err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
	}
	return nil
}
