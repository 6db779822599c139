package models

import "time"

// SipCategory represents the asset class of a SIP investment
type SipCategory string

const (
	SipCategoryLargeCap SipCategory = "LARGE_CAP"
	SipCategoryMidCap   SipCategory = "MID_CAP"
	SipCategorySmallCap SipCategory = "SMALL_CAP"
	SipCategoryDebt     SipCategory = "DEBT"
	SipCategoryHybrid   SipCategory = "HYBRID"
)

// Valid reports whether c is one of the known SIP categories.
func (c SipCategory) Valid() bool {
	switch c {
	case SipCategoryLargeCap, SipCategoryMidCap, SipCategorySmallCap, SipCategoryDebt, SipCategoryHybrid:
		return true
	}
	return false
}

// SipInvestment represents a recurring investment plan. CurrentValue tracks
// the holding's market value and is maintained externally; the contribution
// ledger never mutates it.
type SipInvestment struct {
	Base
	UserID               uint        `gorm:"not null;index" json:"user_id"`
	SipName              string      `gorm:"not null" json:"sip_name"`
	Category             SipCategory `gorm:"not null" json:"category"`
	MonthlyAmount        float64     `gorm:"not null" json:"monthly_amount"`
	CurrentValue         float64     `gorm:"not null;default:0" json:"current_value"`
	AllocationPercentage float64     `gorm:"not null;default:0" json:"allocation_percentage"`
	ExpectedReturnRate   float64     `gorm:"not null" json:"expected_return_rate"` // annual %
	StartDate            time.Time   `gorm:"not null" json:"start_date"`
	IsActive             bool        `gorm:"default:true" json:"is_active"`

	// Relationships
	MonthlyInvestments []MonthlyInvestment `gorm:"foreignKey:SipID" json:"monthly_investments,omitempty"`
}

// MonthlyInvestment is an append-only record of an actual contribution
// made into a SIP.
type MonthlyInvestment struct {
	Base
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	SipID          uint      `gorm:"not null;index" json:"sip_id"`
	Amount         float64   `gorm:"not null" json:"amount"`
	InvestmentDate time.Time `gorm:"not null" json:"investment_date"`

	// Relationships
	Sip SipInvestment `gorm:"foreignKey:SipID" json:"sip,omitempty"`
}
