package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "arthika/internal/errors"
	"arthika/internal/finance"
	"arthika/internal/models"
	"arthika/internal/services"
)

// SipHandler handles SIP investment requests.
type SipHandler struct {
	sipService   services.SipServicer
	auditService services.AuditServicer
}

// NewSipHandler creates a new SipHandler.
func NewSipHandler(sipService services.SipServicer, auditService services.AuditServicer) *SipHandler {
	return &SipHandler{sipService: sipService, auditService: auditService}
}

// CreateSipRequest represents the request payload for creating a SIP.
type CreateSipRequest struct {
	SipName              string    `json:"sip_name" binding:"required,min=1,max=100"`
	Category             string    `json:"category" binding:"required,sip_category"`
	MonthlyAmount        float64   `json:"monthly_amount" binding:"required,gt=0"`
	CurrentValue         float64   `json:"current_value" binding:"gte=0"`
	AllocationPercentage float64   `json:"allocation_percentage" binding:"gte=0,lte=100"`
	ExpectedReturnRate   float64   `json:"expected_return_rate" binding:"gte=0,lte=100"`
	StartDate            time.Time `json:"start_date" binding:"required"`
}

// UpdateSipRequest represents the request payload for updating a SIP.
type UpdateSipRequest struct {
	SipName              *string  `json:"sip_name" binding:"omitempty,min=1,max=100"`
	Category             *string  `json:"category" binding:"omitempty,sip_category"`
	MonthlyAmount        *float64 `json:"monthly_amount" binding:"omitempty,gt=0"`
	CurrentValue         *float64 `json:"current_value" binding:"omitempty,gte=0"`
	AllocationPercentage *float64 `json:"allocation_percentage" binding:"omitempty,gte=0,lte=100"`
	ExpectedReturnRate   *float64 `json:"expected_return_rate" binding:"omitempty,gte=0,lte=100"`
	IsActive             *bool    `json:"is_active"`
}

// RecordInvestmentRequest represents the request payload for recording a contribution.
type RecordInvestmentRequest struct {
	Amount         float64   `json:"amount" binding:"required,gt=0"`
	InvestmentDate time.Time `json:"investment_date" binding:"required"`
}

// CreateSip handles the creation of a new SIP.
// @Summary     Create a SIP
// @Description Record a new SIP investment
// @Tags        sips
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateSipRequest true "SIP details"
// @Success     201 {object} models.SipInvestment "SIP created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sips [post]
func (h *SipHandler) CreateSip(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateSipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	sip, err := h.sipService.CreateSip(
		userID, req.SipName, models.SipCategory(req.Category), req.MonthlyAmount,
		req.CurrentValue, req.AllocationPercentage, req.ExpectedReturnRate, req.StartDate,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_SIP", "sip", sip.ID, c.ClientIP(),
		map[string]interface{}{"sip_name": req.SipName, "monthly_amount": req.MonthlyAmount})

	c.JSON(http.StatusCreated, gin.H{"sip": sip})
}

// GetSips handles listing SIPs for the authenticated user.
// @Summary     Get SIPs
// @Description Get all SIP investments for the authenticated user
// @Tags        sips
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]models.SipInvestment "SIPs"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sips [get]
func (h *SipHandler) GetSips(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	sips, err := h.sipService.GetUserSips(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sips": sips})
}

// GetSip handles retrieving a specific SIP.
// @Summary     Get SIP by ID
// @Description Get a specific SIP by ID
// @Tags        sips
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "SIP ID"
// @Success     200 {object} models.SipInvestment "SIP details"
// @Failure     400 {object} ErrorResponse "Invalid SIP ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "SIP not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sips/{id} [get]
func (h *SipHandler) GetSip(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	sipID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	sip, err := h.sipService.GetSipByID(userID, sipID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sip": sip})
}

// UpdateSip handles updating an existing SIP.
// @Summary     Update SIP
// @Description Update an existing SIP investment
// @Tags        sips
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int              true "SIP ID"
// @Param       request body UpdateSipRequest true "Updated SIP details"
// @Success     200 {object} models.SipInvestment "Updated SIP"
// @Failure     400 {object} ErrorResponse "Invalid input or SIP ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "SIP not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sips/{id} [put]
func (h *SipHandler) UpdateSip(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	sipID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	fields := services.SipUpdateFields{
		SipName:              req.SipName,
		MonthlyAmount:        req.MonthlyAmount,
		CurrentValue:         req.CurrentValue,
		AllocationPercentage: req.AllocationPercentage,
		ExpectedReturnRate:   req.ExpectedReturnRate,
		IsActive:             req.IsActive,
	}
	if req.Category != nil {
		cat := models.SipCategory(*req.Category)
		fields.Category = &cat
	}

	sip, err := h.sipService.UpdateSip(userID, sipID, fields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_SIP", "sip", sipID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"sip": sip})
}

// DeleteSip handles deleting a SIP.
// @Summary     Delete SIP
// @Description Delete a SIP by ID (soft delete)
// @Tags        sips
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "SIP ID"
// @Success     200 {object} MessageResponse "SIP deleted"
// @Failure     400 {object} ErrorResponse "Invalid SIP ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "SIP not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sips/{id} [delete]
func (h *SipHandler) DeleteSip(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	sipID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.sipService.DeleteSip(userID, sipID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_SIP", "sip", sipID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "SIP deleted successfully"})
}

// RecordInvestment handles recording a monthly contribution.
// @Summary     Record monthly investment
// @Description Record a contribution against a SIP's append-only ledger
// @Tags        sips
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                     true "SIP ID"
// @Param       request body RecordInvestmentRequest true "Contribution details"
// @Success     201 {object} models.MonthlyInvestment "Contribution recorded"
// @Failure     400 {object} ErrorResponse "Invalid input or SIP ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "SIP not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sips/{id}/investments [post]
func (h *SipHandler) RecordInvestment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	sipID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RecordInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	investment, err := h.sipService.RecordMonthlyInvestment(userID, sipID, req.Amount, req.InvestmentDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "RECORD_INVESTMENT", "sip", sipID, c.ClientIP(),
		map[string]interface{}{"amount": req.Amount})

	c.JSON(http.StatusCreated, gin.H{"investment": investment})
}

// GetInvestments handles listing contributions for a SIP.
// @Summary     Get monthly investments
// @Description Get the contribution history for a SIP, newest first
// @Tags        sips
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "SIP ID"
// @Success     200 {object} map[string][]models.MonthlyInvestment "Contributions"
// @Failure     400 {object} ErrorResponse "Invalid SIP ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "SIP not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sips/{id}/investments [get]
func (h *SipHandler) GetInvestments(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	sipID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	investments, err := h.sipService.GetMonthlyInvestments(userID, sipID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"investments": investments})
}

// GetProjection handles the portfolio projection calculation.
// @Summary     Project portfolio
// @Description Project the value of all active SIPs forward at their expected return rates
// @Tags        sips
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       years query int false "Projection horizon in years (1-50, default 10)"
// @Success     200 {object} finance.PortfolioProjection "Portfolio projection"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     422 {object} ErrorResponse "Projection inputs out of range"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sips/projection [get]
func (h *SipHandler) GetProjection(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	years := finance.DefaultProjectionYears
	if v, err := parseQueryInt(c, "years"); err != nil {
		respondWithError(c, err)
		return
	} else if v != nil {
		years = *v
	}

	projection, err := h.sipService.ProjectPortfolio(userID, years)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projection": projection})
}
