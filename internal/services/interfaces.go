package services

import (
	"time"

	"arthika/internal/finance"
	"arthika/internal/models"
	"arthika/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, name string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	CompleteOnboarding(userID uint, monthlyIncome, emergencyFund float64, riskTolerance models.RiskTolerance, financialGoals []string) (*models.User, error)
	UpdateProfile(userID uint, fields ProfileUpdateFields) (*models.User, error)
}

// ProfileUpdateFields holds optional profile fields for partial updates.
type ProfileUpdateFields struct {
	Name           *string
	MonthlyIncome  *float64
	EmergencyFund  *float64
	RiskTolerance  *models.RiskTolerance
	FinancialGoals []string
}

// ExpenseFilter holds optional filter parameters for listing expenses.
type ExpenseFilter struct {
	Month    *int
	Year     *int
	Category *string
}

// ExpenseMonthSummary aggregates one month's expenses by category.
type ExpenseMonthSummary struct {
	TotalExpenses    float64            `json:"total_expenses"`
	FixedExpenses    float64            `json:"fixed_expenses"`
	VariableExpenses float64            `json:"variable_expenses"`
	CategoryTotals   map[string]float64 `json:"category_totals"`
	ExpenseCount     int                `json:"expense_count"`
}

// ExpenseUpdateFields holds optional expense fields for partial updates.
type ExpenseUpdateFields struct {
	Amount      *float64
	Category    *string
	Description *string
	ExpenseDate *time.Time
	IsFixed     *bool
}

// ExpenseServicer defines the contract for expense-related business logic.
// Every mutation keeps the budget ledger's currentSpent totals in step with
// the expense records, inside a single database transaction.
type ExpenseServicer interface {
	CreateExpense(userID uint, amount float64, category, description string, expenseDate time.Time, isFixed bool) (*models.Expense, error)
	GetUserExpenses(userID uint, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(userID, expenseID uint) (*models.Expense, error)
	UpdateExpense(userID, expenseID uint, fields ExpenseUpdateFields) (*models.Expense, error)
	DeleteExpense(userID, expenseID uint) error
	GetExpenseCategories(userID uint) ([]string, error)
	GetMonthSummary(userID uint, month, year int) (*ExpenseMonthSummary, error)
}

// BudgetOverview is the current-month budget snapshot: the synthetic total
// row separated from the per-category rows.
type BudgetOverview struct {
	TotalBudget     *models.Budget  `json:"total_budget"`
	CategoryBudgets []models.Budget `json:"category_budgets"`
	Month           int             `json:"month"`
	Year            int             `json:"year"`
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(userID uint, category string, monthlyLimit float64, month, year int) (*models.Budget, error)
	GetUserBudgets(userID uint, month, year *int) ([]models.Budget, error)
	GetBudgetByID(userID, budgetID uint) (*models.Budget, error)
	UpdateBudget(userID, budgetID uint, monthlyLimit, currentSpent *float64) (*models.Budget, error)
	DeleteBudget(userID, budgetID uint) error
	GetCurrentOverview(userID uint) (*BudgetOverview, error)
	InitializeDefaults(userID uint) ([]models.Budget, error)
}

// LoanServicer defines the contract for loan-related business logic.
type LoanServicer interface {
	CreateLoan(userID uint, loanName string, principal, outstanding, interestRate, emi float64, tenureMonths int, startDate time.Time) (*models.Loan, error)
	GetUserLoans(userID uint) ([]models.Loan, error)
	GetLoanByID(userID, loanID uint) (*models.Loan, error)
	UpdateLoan(userID, loanID uint, fields LoanUpdateFields) (*models.Loan, error)
	DeleteLoan(userID, loanID uint) error
	SimulatePrepayment(userID, loanID uint, prepaymentAmount float64) (*finance.PrepaymentResult, error)
}

// LoanUpdateFields holds optional loan fields for partial updates.
type LoanUpdateFields struct {
	LoanName          *string
	PrincipalAmount   *float64
	OutstandingAmount *float64
	InterestRate      *float64
	EmiAmount         *float64
	TenureMonths      *int
	StartDate         *time.Time
}

// SipUpdateFields holds optional SIP fields for partial updates.
type SipUpdateFields struct {
	SipName              *string
	Category             *models.SipCategory
	MonthlyAmount        *float64
	CurrentValue         *float64
	AllocationPercentage *float64
	ExpectedReturnRate   *float64
	IsActive             *bool
}

// SipServicer defines the contract for SIP investment business logic.
type SipServicer interface {
	CreateSip(userID uint, sipName string, category models.SipCategory, monthlyAmount, currentValue, allocationPercentage, expectedReturnRate float64, startDate time.Time) (*models.SipInvestment, error)
	GetUserSips(userID uint) ([]models.SipInvestment, error)
	GetSipByID(userID, sipID uint) (*models.SipInvestment, error)
	UpdateSip(userID, sipID uint, fields SipUpdateFields) (*models.SipInvestment, error)
	DeleteSip(userID, sipID uint) error
	RecordMonthlyInvestment(userID, sipID uint, amount float64, investmentDate time.Time) (*models.MonthlyInvestment, error)
	GetMonthlyInvestments(userID, sipID uint) ([]models.MonthlyInvestment, error)
	ProjectPortfolio(userID uint, years int) (*finance.PortfolioProjection, error)
}

// SummaryInput holds the caller-supplied figures for an explicit summary
// save; rates and the health score are always derived, never accepted.
type SummaryInput struct {
	Month            int
	Year             int
	TotalIncome      float64
	FixedExpenses    float64
	VariableExpenses float64
	TotalInvestments float64
	EmergencyFund    float64
	Insurance        float64
}

// SummaryServicer defines the contract for the monthly financial summary.
type SummaryServicer interface {
	GetSummary(userID uint, month, year int) (*models.FinancialSummary, error)
	GetCurrentSummary(userID uint) (*models.FinancialSummary, error)
	SaveSummary(userID uint, input SummaryInput) (*models.FinancialSummary, error)
	GenerateSummary(userID uint, month, year int) (*models.FinancialSummary, error)
	GetUserSummaries(userID uint) ([]models.FinancialSummary, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
