package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "arthika/internal/errors"
	"arthika/internal/models"
)

// userService handles user-related business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// CreateUser registers a new user with a bcrypt-hashed password.
func (s *userService) CreateUser(email, password, name string) (*models.User, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hashed),
		Name:     name,
		IsActive: true,
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return user, nil
}

// GetUserByEmail returns a user by email address.
func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// GetUserByID returns a user by ID.
func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// VerifyPassword checks a plaintext password against the stored hash.
func (s *userService) VerifyPassword(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}

// CompleteOnboarding stores the user's financial profile and marks
// onboarding as done.
func (s *userService) CompleteOnboarding(userID uint, monthlyIncome, emergencyFund float64, riskTolerance models.RiskTolerance, financialGoals []string) (*models.User, error) {
	if monthlyIncome < 0 || emergencyFund < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "income and emergency fund must not be negative")
	}

	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	user.MonthlyIncome = monthlyIncome
	user.EmergencyFund = emergencyFund
	user.RiskTolerance = riskTolerance
	user.FinancialGoals = strings.Join(financialGoals, ",")
	user.IsOnboardingComplete = true

	if err := s.db.Save(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return user, nil
}

// UpdateProfile applies partial updates to the user's profile.
func (s *userService) UpdateProfile(userID uint, fields ProfileUpdateFields) (*models.User, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if fields.Name != nil {
		user.Name = *fields.Name
	}
	if fields.MonthlyIncome != nil {
		if *fields.MonthlyIncome < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "monthly income must not be negative")
		}
		user.MonthlyIncome = *fields.MonthlyIncome
	}
	if fields.EmergencyFund != nil {
		if *fields.EmergencyFund < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "emergency fund must not be negative")
		}
		user.EmergencyFund = *fields.EmergencyFund
	}
	if fields.RiskTolerance != nil {
		user.RiskTolerance = *fields.RiskTolerance
	}
	if fields.FinancialGoals != nil {
		user.FinancialGoals = strings.Join(fields.FinancialGoals, ",")
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return user, nil
}
