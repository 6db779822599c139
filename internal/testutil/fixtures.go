package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"arthika/internal/models"
)

var userCounter atomic.Int64

// CreateTestUser inserts a user with a unique email and a completed
// financial profile.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:                fmt.Sprintf("user%d@example.com", userCounter.Add(1)),
		Password:             string(hashed),
		Name:                 "Test User",
		MonthlyIncome:        100000,
		EmergencyFund:        600000,
		RiskTolerance:        models.RiskToleranceMedium,
		IsOnboardingComplete: true,
		IsActive:             true,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestExpense inserts an expense for the user.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID uint, amount float64, category string, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:      userID,
		Amount:      amount,
		Category:    category,
		Description: "test expense",
		ExpenseDate: date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestBudget inserts a budget row for the user.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID uint, category string, limit float64, month, year int) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:       userID,
		Category:     category,
		MonthlyLimit: limit,
		Month:        month,
		Year:         year,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestLoan inserts an amortizing loan for the user.
func CreateTestLoan(t *testing.T, db *gorm.DB, userID uint) *models.Loan {
	t.Helper()

	loan := &models.Loan{
		UserID:            userID,
		LoanName:          "Home Loan",
		PrincipalAmount:   2500000,
		OutstandingAmount: 2000000,
		InterestRate:      8.5,
		EmiAmount:         25000,
		TenureMonths:      240,
		StartDate:         time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := db.Create(loan).Error; err != nil {
		t.Fatalf("failed to create test loan: %v", err)
	}
	return loan
}

// CreateTestSip inserts an active SIP for the user.
func CreateTestSip(t *testing.T, db *gorm.DB, userID uint) *models.SipInvestment {
	t.Helper()

	sip := &models.SipInvestment{
		UserID:             userID,
		SipName:            "Index Fund",
		Category:           models.SipCategoryLargeCap,
		MonthlyAmount:      10000,
		CurrentValue:       200000,
		ExpectedReturnRate: 12,
		StartDate:          time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:           true,
	}
	if err := db.Create(sip).Error; err != nil {
		t.Fatalf("failed to create test sip: %v", err)
	}
	return sip
}

// CreateTestMonthlyInvestment inserts a contribution record for the SIP.
func CreateTestMonthlyInvestment(t *testing.T, db *gorm.DB, userID, sipID uint, amount float64, date time.Time) *models.MonthlyInvestment {
	t.Helper()

	investment := &models.MonthlyInvestment{
		UserID:         userID,
		SipID:          sipID,
		Amount:         amount,
		InvestmentDate: date,
	}
	if err := db.Create(investment).Error; err != nil {
		t.Fatalf("failed to create test monthly investment: %v", err)
	}
	return investment
}
