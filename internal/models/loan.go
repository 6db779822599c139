package models

import "time"

// Loan represents a fixed-EMI reducing-balance loan. OutstandingAmount is
// only changed through explicit updates or recorded prepayments, never
// amortized automatically by the passage of time.
type Loan struct {
	Base
	UserID            uint      `gorm:"not null;index" json:"user_id"`
	LoanName          string    `gorm:"not null" json:"loan_name"`
	PrincipalAmount   float64   `gorm:"not null" json:"principal_amount"`
	OutstandingAmount float64   `gorm:"not null" json:"outstanding_amount"`
	InterestRate      float64   `gorm:"not null" json:"interest_rate"` // annual %
	EmiAmount         float64   `gorm:"not null" json:"emi_amount"`
	TenureMonths      int       `gorm:"not null" json:"tenure_months"`
	StartDate         time.Time `gorm:"not null" json:"start_date"`
}
