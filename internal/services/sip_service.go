package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "arthika/internal/errors"
	"arthika/internal/finance"
	"arthika/internal/models"
)

// sipService handles SIP investment business logic.
type sipService struct {
	db *gorm.DB
}

// NewSipService creates a new SipServicer.
func NewSipService(db *gorm.DB) SipServicer {
	return &sipService{db: db}
}

// CreateSip records a new SIP investment.
func (s *sipService) CreateSip(userID uint, sipName string, category models.SipCategory, monthlyAmount, currentValue, allocationPercentage, expectedReturnRate float64, startDate time.Time) (*models.SipInvestment, error) {
	if sipName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "SIP name is required")
	}
	if !category.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid SIP category")
	}
	if monthlyAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "monthly amount must be positive")
	}
	if currentValue < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current value must not be negative")
	}
	if allocationPercentage < 0 || allocationPercentage > 100 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "allocation must be between 0 and 100")
	}
	if expectedReturnRate < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "expected return rate must not be negative")
	}

	sip := &models.SipInvestment{
		UserID:               userID,
		SipName:              sipName,
		Category:             category,
		MonthlyAmount:        monthlyAmount,
		CurrentValue:         currentValue,
		AllocationPercentage: allocationPercentage,
		ExpectedReturnRate:   expectedReturnRate,
		StartDate:            startDate,
		IsActive:             true,
	}

	if err := s.db.Create(sip).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return sip, nil
}

// GetUserSips returns all of the user's SIPs, newest first.
func (s *sipService) GetUserSips(userID uint) ([]models.SipInvestment, error) {
	var sips []models.SipInvestment
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&sips).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return sips, nil
}

// GetSipByID returns a SIP by ID if it belongs to the user.
func (s *sipService) GetSipByID(userID, sipID uint) (*models.SipInvestment, error) {
	var sip models.SipInvestment
	if err := s.db.Where("id = ? AND user_id = ?", sipID, userID).First(&sip).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSipNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &sip, nil
}

// UpdateSip applies partial updates to a SIP.
func (s *sipService) UpdateSip(userID, sipID uint, fields SipUpdateFields) (*models.SipInvestment, error) {
	sip, err := s.GetSipByID(userID, sipID)
	if err != nil {
		return nil, err
	}

	if fields.SipName != nil {
		if *fields.SipName == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "SIP name must not be empty")
		}
		sip.SipName = *fields.SipName
	}
	if fields.Category != nil {
		if !fields.Category.Valid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid SIP category")
		}
		sip.Category = *fields.Category
	}
	if fields.MonthlyAmount != nil {
		if *fields.MonthlyAmount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "monthly amount must be positive")
		}
		sip.MonthlyAmount = *fields.MonthlyAmount
	}
	if fields.CurrentValue != nil {
		if *fields.CurrentValue < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current value must not be negative")
		}
		sip.CurrentValue = *fields.CurrentValue
	}
	if fields.AllocationPercentage != nil {
		if *fields.AllocationPercentage < 0 || *fields.AllocationPercentage > 100 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "allocation must be between 0 and 100")
		}
		sip.AllocationPercentage = *fields.AllocationPercentage
	}
	if fields.ExpectedReturnRate != nil {
		if *fields.ExpectedReturnRate < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "expected return rate must not be negative")
		}
		sip.ExpectedReturnRate = *fields.ExpectedReturnRate
	}
	if fields.IsActive != nil {
		sip.IsActive = *fields.IsActive
	}

	if err := s.db.Save(sip).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return sip, nil
}

// DeleteSip soft-deletes a SIP.
func (s *sipService) DeleteSip(userID, sipID uint) error {
	sip, err := s.GetSipByID(userID, sipID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(sip).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// RecordMonthlyInvestment appends a contribution to the SIP's ledger. The
// SIP's current value is not touched; it tracks market value and is updated
// explicitly through UpdateSip.
func (s *sipService) RecordMonthlyInvestment(userID, sipID uint, amount float64, investmentDate time.Time) (*models.MonthlyInvestment, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}

	sip, err := s.GetSipByID(userID, sipID)
	if err != nil {
		return nil, err
	}

	investment := &models.MonthlyInvestment{
		UserID:         userID,
		SipID:          sip.ID,
		Amount:         amount,
		InvestmentDate: investmentDate,
	}

	if err := s.db.Create(investment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return investment, nil
}

// GetMonthlyInvestments returns the contribution history for one SIP,
// newest first.
func (s *sipService) GetMonthlyInvestments(userID, sipID uint) ([]models.MonthlyInvestment, error) {
	if _, err := s.GetSipByID(userID, sipID); err != nil {
		return nil, err
	}

	var investments []models.MonthlyInvestment
	err := s.db.Where("user_id = ? AND sip_id = ?", userID, sipID).
		Order("investment_date DESC, id DESC").
		Find(&investments).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return investments, nil
}

// ProjectPortfolio projects the user's active SIPs forward. Inactive SIPs
// are excluded entirely; they contribute neither current value nor future
// monthly amounts.
func (s *sipService) ProjectPortfolio(userID uint, years int) (*finance.PortfolioProjection, error) {
	var sips []models.SipInvestment
	if err := s.db.Where("user_id = ? AND is_active = ?", userID, true).Find(&sips).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	holdings := make([]finance.Holding, 0, len(sips))
	for _, sip := range sips {
		holdings = append(holdings, finance.Holding{
			CurrentValue:  sip.CurrentValue,
			MonthlyAmount: sip.MonthlyAmount,
			AnnualRate:    sip.ExpectedReturnRate,
		})
	}

	return finance.ProjectPortfolio(holdings, years)
}
