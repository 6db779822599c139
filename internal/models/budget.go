package models

// TotalBudgetCategory is the reserved category name of the synthetic
// aggregate budget row that tracks spending across all categories.
const TotalBudgetCategory = "total"

// Budget represents a monthly spending limit for one category.
// CurrentSpent is a derived running total maintained by the expense
// services; it always equals the sum of non-deleted expenses matching
// (user, category, month, year).
type Budget struct {
	Base
	UserID       uint    `gorm:"not null;uniqueIndex:idx_budget_period" json:"user_id"`
	Category     string  `gorm:"not null;uniqueIndex:idx_budget_period" json:"category"`
	MonthlyLimit float64 `gorm:"not null" json:"monthly_limit"`
	CurrentSpent float64 `gorm:"not null;default:0" json:"current_spent"`
	Month        int     `gorm:"not null;uniqueIndex:idx_budget_period" json:"month"`
	Year         int     `gorm:"not null;uniqueIndex:idx_budget_period" json:"year"`
}
