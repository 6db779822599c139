package models

import "time"

// Expense represents a single spend record. Fixed expenses (rent, EMI-like
// recurring costs) are distinguished from variable spending for the monthly
// summary split.
type Expense struct {
	Base
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Category    string    `gorm:"not null" json:"category"`
	Description string    `json:"description"`
	ExpenseDate time.Time `gorm:"not null;index" json:"expense_date"`
	IsFixed     bool      `gorm:"default:false" json:"is_fixed"`
}
