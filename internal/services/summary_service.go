package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "arthika/internal/errors"
	"arthika/internal/finance"
	"arthika/internal/models"
)

// defaultInsurance is the assumed monthly insurance outlay used when a
// summary is generated rather than explicitly saved.
const defaultInsurance = 2000

// summaryService handles the monthly financial summary rollup.
type summaryService struct {
	db *gorm.DB
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(db *gorm.DB) SummaryServicer {
	return &summaryService{db: db}
}

// GetSummary returns the stored summary for a period. A period that was
// never saved or generated is a not-found, never an implicit generation.
func (s *summaryService) GetSummary(userID uint, month, year int) (*models.FinancialSummary, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}

	var summary models.FinancialSummary
	err := s.db.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).First(&summary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSummaryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &summary, nil
}

// GetCurrentSummary returns the summary for the current month, generating
// and persisting it on first access.
func (s *summaryService) GetCurrentSummary(userID uint) (*models.FinancialSummary, error) {
	now := time.Now()
	summary, err := s.GetSummary(userID, int(now.Month()), now.Year())
	if errors.Is(err, apperrors.ErrSummaryNotFound) {
		return s.GenerateSummary(userID, int(now.Month()), now.Year())
	}
	return summary, err
}

// SaveSummary upserts a summary from caller-supplied figures. The savings
// rate, investment rate, and health score are always recomputed here; they
// are never accepted from the caller.
func (s *summaryService) SaveSummary(userID uint, input SummaryInput) (*models.FinancialSummary, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}
	if input.TotalIncome < 0 || input.FixedExpenses < 0 || input.VariableExpenses < 0 ||
		input.TotalInvestments < 0 || input.EmergencyFund < 0 || input.Insurance < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "summary figures must not be negative")
	}

	summary := s.derive(userID, input)

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "month"}, {Name: "year"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_income", "fixed_expenses", "variable_expenses", "total_investments",
			"emergency_fund", "insurance", "savings_rate", "investment_rate", "health_score", "updated_at",
		}),
	}).Create(summary).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return summary, nil
}

// GenerateSummary derives a summary for the period from live records:
// the month's expenses and SIP contributions, the user's loans, and the
// profile's income and emergency fund. The result is persisted via upsert.
func (s *summaryService) GenerateSummary(userID uint, month, year int) (*models.FinancialSummary, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)

	var expenses []models.Expense
	err := s.db.Where("user_id = ? AND expense_date >= ? AND expense_date < ?",
		userID, start, start.AddDate(0, 1, 0)).Find(&expenses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var fixed, variable float64
	for _, e := range expenses {
		if e.IsFixed {
			fixed += e.Amount
		} else {
			variable += e.Amount
		}
	}

	// Loan EMIs are fixed monthly obligations regardless of whether an
	// expense row was recorded for them.
	var loans []models.Loan
	if err := s.db.Where("user_id = ?", userID).Find(&loans).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, l := range loans {
		fixed += l.EmiAmount
	}

	// Investments are the contributions actually recorded in the month,
	// not the SIPs' nominal monthly amounts.
	var contributions []models.MonthlyInvestment
	err = s.db.Where("user_id = ? AND investment_date >= ? AND investment_date < ?",
		userID, start, start.AddDate(0, 1, 0)).Find(&contributions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var investments float64
	for _, c := range contributions {
		investments += c.Amount
	}

	return s.SaveSummary(userID, SummaryInput{
		Month:            month,
		Year:             year,
		TotalIncome:      user.MonthlyIncome,
		FixedExpenses:    fixed,
		VariableExpenses: variable,
		TotalInvestments: investments,
		EmergencyFund:    user.EmergencyFund,
		Insurance:        defaultInsurance,
	})
}

// GetUserSummaries returns all stored summaries for the user, newest
// period first.
func (s *summaryService) GetUserSummaries(userID uint) ([]models.FinancialSummary, error) {
	var summaries []models.FinancialSummary
	err := s.db.Where("user_id = ?", userID).Order("year DESC, month DESC").Find(&summaries).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return summaries, nil
}

// derive builds the full summary row from raw figures, computing the
// derived rates and health score.
func (s *summaryService) derive(userID uint, input SummaryInput) *models.FinancialSummary {
	savingsRate := finance.SavingsRate(input.TotalIncome, input.FixedExpenses, input.VariableExpenses)
	investmentRate := finance.InvestmentRate(input.TotalIncome, input.TotalInvestments)
	healthScore := finance.CalculateHealthScore(savingsRate, investmentRate, input.EmergencyFund, input.TotalIncome)

	return &models.FinancialSummary{
		UserID:           userID,
		Month:            input.Month,
		Year:             input.Year,
		TotalIncome:      input.TotalIncome,
		FixedExpenses:    input.FixedExpenses,
		VariableExpenses: input.VariableExpenses,
		TotalInvestments: input.TotalInvestments,
		EmergencyFund:    input.EmergencyFund,
		Insurance:        input.Insurance,
		SavingsRate:      savingsRate,
		InvestmentRate:   investmentRate,
		HealthScore:      healthScore,
	}
}
