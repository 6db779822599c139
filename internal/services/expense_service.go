package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "arthika/internal/errors"
	"arthika/internal/models"
	"arthika/internal/pagination"
)

// expenseService handles expense-related business logic. All mutations run
// the expense write and the matching budget ledger adjustments in one
// transaction, so the stored currentSpent totals always equal the sum of
// live expense rows for the period.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// CreateExpense records an expense and increments the matching budget rows.
func (s *expenseService) CreateExpense(userID uint, amount float64, category, description string, expenseDate time.Time, isFixed bool) (*models.Expense, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if category == models.TotalBudgetCategory {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is reserved")
	}
	if expenseDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "expense date is required")
	}

	expense := &models.Expense{
		UserID:      userID,
		Amount:      amount,
		Category:    category,
		Description: description,
		ExpenseDate: expenseDate,
		IsFixed:     isFixed,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(expense).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return applyBudgetDeltas(tx, userID, createDeltas(expense))
	})
	if err != nil {
		return nil, err
	}

	return expense, nil
}

// GetUserExpenses returns a page of the user's expenses, newest first,
// optionally filtered by period and category.
func (s *expenseService) GetUserExpenses(userID uint, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	q := s.db.Model(&models.Expense{}).Where("user_id = ?", userID)
	if filter.Month != nil && filter.Year != nil {
		start := time.Date(*filter.Year, time.Month(*filter.Month), 1, 0, 0, 0, 0, time.UTC)
		q = q.Where("expense_date >= ? AND expense_date < ?", start, start.AddDate(0, 1, 0))
	}
	if filter.Category != nil {
		q = q.Where("category = ?", *filter.Category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := q.Order("expense_date DESC, id DESC").Scopes(pagination.Paginate(page)).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(expenses, page.Page, page.PageSize, total)
	return &resp, nil
}

// GetExpenseByID returns an expense by ID if it belongs to the user.
func (s *expenseService) GetExpenseByID(userID, expenseID uint) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Where("id = ? AND user_id = ?", expenseID, userID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// UpdateExpense applies partial updates to an expense and reconciles the
// budget ledger against the old and new amounts in the same transaction.
func (s *expenseService) UpdateExpense(userID, expenseID uint, fields ExpenseUpdateFields) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return nil, err
	}
	old := *expense

	if fields.Amount != nil {
		if *fields.Amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
		}
		expense.Amount = *fields.Amount
	}
	if fields.Category != nil {
		if *fields.Category == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category must not be empty")
		}
		if *fields.Category == models.TotalBudgetCategory {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is reserved")
		}
		expense.Category = *fields.Category
	}
	if fields.Description != nil {
		expense.Description = *fields.Description
	}
	if fields.ExpenseDate != nil {
		if fields.ExpenseDate.IsZero() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "expense date must not be zero")
		}
		expense.ExpenseDate = *fields.ExpenseDate
	}
	if fields.IsFixed != nil {
		expense.IsFixed = *fields.IsFixed
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(expense).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return applyBudgetDeltas(tx, userID, updateDeltas(&old, expense))
	})
	if err != nil {
		return nil, err
	}

	return expense, nil
}

// DeleteExpense soft-deletes an expense and backs its amount out of the
// budget ledger.
func (s *expenseService) DeleteExpense(userID, expenseID uint) error {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(expense).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return applyBudgetDeltas(tx, userID, deleteDeltas(expense))
	})
}

// GetExpenseCategories returns the distinct categories the user has
// recorded expenses under.
func (s *expenseService) GetExpenseCategories(userID uint) ([]string, error) {
	var categories []string
	err := s.db.Model(&models.Expense{}).
		Where("user_id = ?", userID).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// GetMonthSummary aggregates one month's expenses: totals, the fixed and
// variable split, and per-category subtotals.
func (s *expenseService) GetMonthSummary(userID uint, month, year int) (*ExpenseMonthSummary, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)

	var expenses []models.Expense
	err := s.db.Where("user_id = ? AND expense_date >= ? AND expense_date < ?",
		userID, start, start.AddDate(0, 1, 0)).Find(&expenses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := &ExpenseMonthSummary{CategoryTotals: make(map[string]float64)}
	for _, e := range expenses {
		summary.TotalExpenses += e.Amount
		if e.IsFixed {
			summary.FixedExpenses += e.Amount
		} else {
			summary.VariableExpenses += e.Amount
		}
		summary.CategoryTotals[e.Category] += e.Amount
	}
	summary.ExpenseCount = len(expenses)

	return summary, nil
}
