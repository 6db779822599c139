package models

// RiskTolerance represents a user's self-declared appetite for investment risk
type RiskTolerance string

const (
	RiskToleranceLow    RiskTolerance = "low"
	RiskToleranceMedium RiskTolerance = "medium"
	RiskToleranceHigh   RiskTolerance = "high"
)

// User represents the user model in the database
type User struct {
	Base
	Email                string        `gorm:"uniqueIndex;not null" json:"email"`
	Password             string        `gorm:"not null" json:"-"`
	Name                 string        `json:"name"`
	MonthlyIncome        float64       `gorm:"default:0" json:"monthly_income"`
	EmergencyFund        float64       `gorm:"default:0" json:"emergency_fund"`
	RiskTolerance        RiskTolerance `gorm:"default:medium" json:"risk_tolerance"`
	FinancialGoals       string        `json:"financial_goals"` // comma-separated list
	IsOnboardingComplete bool          `gorm:"default:false" json:"is_onboarding_complete"`
	IsActive             bool          `gorm:"default:true" json:"is_active"`

	Expenses  []Expense          `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
	Budgets   []Budget           `gorm:"foreignKey:UserID" json:"budgets,omitempty"`
	Loans     []Loan             `gorm:"foreignKey:UserID" json:"loans,omitempty"`
	Sips      []SipInvestment    `gorm:"foreignKey:UserID" json:"sips,omitempty"`
	Summaries []FinancialSummary `gorm:"foreignKey:UserID" json:"summaries,omitempty"`
}
