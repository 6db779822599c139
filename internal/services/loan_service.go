package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "arthika/internal/errors"
	"arthika/internal/finance"
	"arthika/internal/models"
)

// loanService handles loan-related business logic.
type loanService struct {
	db *gorm.DB
}

// NewLoanService creates a new LoanServicer.
func NewLoanService(db *gorm.DB) LoanServicer {
	return &loanService{db: db}
}

// CreateLoan records a loan. The EMI must exceed the first month's interest
// on the outstanding balance, otherwise the loan never amortizes and every
// tenure calculation on it would be undefined.
func (s *loanService) CreateLoan(userID uint, loanName string, principal, outstanding, interestRate, emi float64, tenureMonths int, startDate time.Time) (*models.Loan, error) {
	if loanName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "loan name is required")
	}
	if principal <= 0 || emi <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "principal and EMI must be positive")
	}
	if outstanding < 0 || outstanding > principal {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "outstanding must be between 0 and the principal")
	}
	if interestRate < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "interest rate must not be negative")
	}
	if tenureMonths <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "tenure must be positive")
	}

	if _, err := finance.RemainingTenure(outstanding, emi, interestRate); err != nil {
		return nil, err
	}

	loan := &models.Loan{
		UserID:            userID,
		LoanName:          loanName,
		PrincipalAmount:   principal,
		OutstandingAmount: outstanding,
		InterestRate:      interestRate,
		EmiAmount:         emi,
		TenureMonths:      tenureMonths,
		StartDate:         startDate,
	}

	if err := s.db.Create(loan).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return loan, nil
}

// GetUserLoans returns all of the user's loans, newest first.
func (s *loanService) GetUserLoans(userID uint) ([]models.Loan, error) {
	var loans []models.Loan
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&loans).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return loans, nil
}

// GetLoanByID returns a loan by ID if it belongs to the user.
func (s *loanService) GetLoanByID(userID, loanID uint) (*models.Loan, error) {
	var loan models.Loan
	if err := s.db.Where("id = ? AND user_id = ?", loanID, userID).First(&loan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLoanNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &loan, nil
}

// UpdateLoan applies partial updates to a loan. Rate, EMI and outstanding
// changes are re-checked against the amortization requirement.
func (s *loanService) UpdateLoan(userID, loanID uint, fields LoanUpdateFields) (*models.Loan, error) {
	loan, err := s.GetLoanByID(userID, loanID)
	if err != nil {
		return nil, err
	}

	if fields.LoanName != nil {
		if *fields.LoanName == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "loan name must not be empty")
		}
		loan.LoanName = *fields.LoanName
	}
	if fields.PrincipalAmount != nil {
		if *fields.PrincipalAmount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "principal must be positive")
		}
		loan.PrincipalAmount = *fields.PrincipalAmount
	}
	if fields.OutstandingAmount != nil {
		if *fields.OutstandingAmount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "outstanding must not be negative")
		}
		loan.OutstandingAmount = *fields.OutstandingAmount
	}
	if fields.InterestRate != nil {
		if *fields.InterestRate < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "interest rate must not be negative")
		}
		loan.InterestRate = *fields.InterestRate
	}
	if fields.EmiAmount != nil {
		if *fields.EmiAmount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "EMI must be positive")
		}
		loan.EmiAmount = *fields.EmiAmount
	}
	if fields.TenureMonths != nil {
		if *fields.TenureMonths <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "tenure must be positive")
		}
		loan.TenureMonths = *fields.TenureMonths
	}
	if fields.StartDate != nil {
		loan.StartDate = *fields.StartDate
	}

	if loan.OutstandingAmount > loan.PrincipalAmount {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "outstanding must not exceed the principal")
	}
	if _, err := finance.RemainingTenure(loan.OutstandingAmount, loan.EmiAmount, loan.InterestRate); err != nil {
		return nil, err
	}

	if err := s.db.Save(loan).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return loan, nil
}

// DeleteLoan soft-deletes a loan.
func (s *loanService) DeleteLoan(userID, loanID uint) error {
	loan, err := s.GetLoanByID(userID, loanID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(loan).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// SimulatePrepayment computes the effect of a lump-sum prepayment on the
// loan's remaining tenure and total interest. The loan itself is not
// modified.
func (s *loanService) SimulatePrepayment(userID, loanID uint, prepaymentAmount float64) (*finance.PrepaymentResult, error) {
	loan, err := s.GetLoanByID(userID, loanID)
	if err != nil {
		return nil, err
	}

	return finance.PrepaymentImpact(loan.OutstandingAmount, loan.EmiAmount, loan.InterestRate, prepaymentAmount)
}
