package models

import "arthika/internal/finance"

// FinancialSummary is the derived monthly rollup for one user. Exactly one
// row exists per (user, month, year); writes go through an upsert.
type FinancialSummary struct {
	Base
	UserID           uint                `gorm:"not null;uniqueIndex:idx_summary_period" json:"user_id"`
	Month            int                 `gorm:"not null;uniqueIndex:idx_summary_period" json:"month"`
	Year             int                 `gorm:"not null;uniqueIndex:idx_summary_period" json:"year"`
	TotalIncome      float64             `gorm:"not null" json:"total_income"`
	FixedExpenses    float64             `gorm:"not null" json:"fixed_expenses"`
	VariableExpenses float64             `gorm:"not null" json:"variable_expenses"`
	TotalInvestments float64             `gorm:"not null" json:"total_investments"`
	EmergencyFund    float64             `gorm:"not null" json:"emergency_fund"`
	Insurance        float64             `gorm:"not null" json:"insurance"`
	SavingsRate      float64             `gorm:"not null" json:"savings_rate"`
	InvestmentRate   float64             `gorm:"not null" json:"investment_rate"`
	HealthScore      finance.HealthScore `gorm:"not null" json:"health_score"`
}
