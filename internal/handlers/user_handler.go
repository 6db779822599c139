package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "arthika/internal/errors"
	"arthika/internal/models"
	"arthika/internal/services"
)

// UserHandler handles user profile requests.
type UserHandler struct {
	userService services.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService services.UserServicer) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateProfileRequest represents the request payload for updating a profile.
type UpdateProfileRequest struct {
	Name           *string  `json:"name" binding:"omitempty,min=1,max=100"`
	MonthlyIncome  *float64 `json:"monthly_income" binding:"omitempty,gte=0"`
	EmergencyFund  *float64 `json:"emergency_fund" binding:"omitempty,gte=0"`
	RiskTolerance  *string  `json:"risk_tolerance" binding:"omitempty,risk_tolerance"`
	FinancialGoals []string `json:"financial_goals" binding:"omitempty,max=10"`
}

// GetProfile returns the user's profile
// @Summary     Get user profile
// @Description Get the authenticated user's profile information
// @Tags        user
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} UserResponse "User profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userResponse(user)})
}

// UpdateProfile handles partial updates to the user's profile
// @Summary     Update user profile
// @Description Update the authenticated user's profile fields
// @Tags        user
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateProfileRequest true "Profile fields"
// @Success     200 {object} UserResponse "Updated profile"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	fields := services.ProfileUpdateFields{
		Name:           req.Name,
		MonthlyIncome:  req.MonthlyIncome,
		EmergencyFund:  req.EmergencyFund,
		FinancialGoals: req.FinancialGoals,
	}
	if req.RiskTolerance != nil {
		rt := models.RiskTolerance(*req.RiskTolerance)
		fields.RiskTolerance = &rt
	}

	user, err := h.userService.UpdateProfile(userID, fields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userResponse(user)})
}
