package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "arthika/internal/errors"
	"arthika/internal/services"
)

// SummaryHandler handles financial summary requests.
type SummaryHandler struct {
	summaryService services.SummaryServicer
	auditService   services.AuditServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer, auditService services.AuditServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService, auditService: auditService}
}

// SaveSummaryRequest represents the request payload for saving a summary.
// Rates and the health score are always derived server-side.
type SaveSummaryRequest struct {
	Month            int     `json:"month" binding:"required,min=1,max=12"`
	Year             int     `json:"year" binding:"required,min=2020"`
	TotalIncome      float64 `json:"total_income" binding:"gte=0"`
	FixedExpenses    float64 `json:"fixed_expenses" binding:"gte=0"`
	VariableExpenses float64 `json:"variable_expenses" binding:"gte=0"`
	TotalInvestments float64 `json:"total_investments" binding:"gte=0"`
	EmergencyFund    float64 `json:"emergency_fund" binding:"gte=0"`
	Insurance        float64 `json:"insurance" binding:"gte=0"`
}

// GetCurrentSummary handles retrieving the current month's summary.
// @Summary     Get current summary
// @Description Get the current month's financial summary, generating it on first access
// @Tags        summary
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.FinancialSummary "Financial summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary/current [get]
func (h *SummaryHandler) GetCurrentSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.summaryService.GetCurrentSummary(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetSummary handles retrieving a specific period's summary.
// @Summary     Get summary for a period
// @Description Get the stored financial summary for a month
// @Tags        summary
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month query int true "Month (1-12)"
// @Param       year  query int true "Year"
// @Success     200 {object} models.FinancialSummary "Financial summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Summary not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month, err := parseQueryInt(c, "month")
	if err != nil {
		respondWithError(c, err)
		return
	}
	year, err := parseQueryInt(c, "year")
	if err != nil {
		respondWithError(c, err)
		return
	}
	if month == nil || year == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "month and year are required"))
		return
	}

	summary, err := h.summaryService.GetSummary(userID, *month, *year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// SaveSummary handles an explicit summary save.
// @Summary     Save summary
// @Description Upsert the summary for a period from caller-supplied figures; rates and score are derived
// @Tags        summary
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SaveSummaryRequest true "Summary figures"
// @Success     200 {object} models.FinancialSummary "Saved summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary [post]
func (h *SummaryHandler) SaveSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SaveSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	summary, err := h.summaryService.SaveSummary(userID, services.SummaryInput{
		Month:            req.Month,
		Year:             req.Year,
		TotalIncome:      req.TotalIncome,
		FixedExpenses:    req.FixedExpenses,
		VariableExpenses: req.VariableExpenses,
		TotalInvestments: req.TotalInvestments,
		EmergencyFund:    req.EmergencyFund,
		Insurance:        req.Insurance,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SAVE_SUMMARY", "summary", summary.ID, c.ClientIP(),
		map[string]interface{}{"month": req.Month, "year": req.Year})

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GenerateSummary handles regenerating a summary from live records.
// @Summary     Generate summary
// @Description Recompute the summary for a period from expenses, loans, SIPs, and the profile
// @Tags        summary
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month query int true "Month (1-12)"
// @Param       year  query int true "Year"
// @Success     200 {object} models.FinancialSummary "Generated summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary/generate [post]
func (h *SummaryHandler) GenerateSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month, err := parseQueryInt(c, "month")
	if err != nil {
		respondWithError(c, err)
		return
	}
	year, err := parseQueryInt(c, "year")
	if err != nil {
		respondWithError(c, err)
		return
	}
	if month == nil || year == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "month and year are required"))
		return
	}

	summary, err := h.summaryService.GenerateSummary(userID, *month, *year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "GENERATE_SUMMARY", "summary", summary.ID, c.ClientIP(),
		map[string]interface{}{"month": *month, "year": *year})

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetHistory handles listing all stored summaries.
// @Summary     Get summary history
// @Description Get all stored summaries for the user, newest period first
// @Tags        summary
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]models.FinancialSummary "Summaries"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary/history [get]
func (h *SummaryHandler) GetHistory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summaries, err := h.summaryService.GetUserSummaries(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summaries": summaries})
}
