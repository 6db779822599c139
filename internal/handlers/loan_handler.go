package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "arthika/internal/errors"
	"arthika/internal/services"
)

// LoanHandler handles loan-related requests.
type LoanHandler struct {
	loanService  services.LoanServicer
	auditService services.AuditServicer
}

// NewLoanHandler creates a new LoanHandler.
func NewLoanHandler(loanService services.LoanServicer, auditService services.AuditServicer) *LoanHandler {
	return &LoanHandler{loanService: loanService, auditService: auditService}
}

// CreateLoanRequest represents the request payload for creating a loan.
type CreateLoanRequest struct {
	LoanName          string    `json:"loan_name" binding:"required,min=1,max=100"`
	PrincipalAmount   float64   `json:"principal_amount" binding:"required,gt=0"`
	OutstandingAmount float64   `json:"outstanding_amount" binding:"gte=0"`
	InterestRate      float64   `json:"interest_rate" binding:"gte=0,lte=100"`
	EmiAmount         float64   `json:"emi_amount" binding:"required,gt=0"`
	TenureMonths      int       `json:"tenure_months" binding:"required,gt=0"`
	StartDate         time.Time `json:"start_date" binding:"required"`
}

// UpdateLoanRequest represents the request payload for updating a loan.
type UpdateLoanRequest struct {
	LoanName          *string    `json:"loan_name" binding:"omitempty,min=1,max=100"`
	PrincipalAmount   *float64   `json:"principal_amount" binding:"omitempty,gt=0"`
	OutstandingAmount *float64   `json:"outstanding_amount" binding:"omitempty,gte=0"`
	InterestRate      *float64   `json:"interest_rate" binding:"omitempty,gte=0,lte=100"`
	EmiAmount         *float64   `json:"emi_amount" binding:"omitempty,gt=0"`
	TenureMonths      *int       `json:"tenure_months" binding:"omitempty,gt=0"`
	StartDate         *time.Time `json:"start_date"`
}

// PrepaymentRequest represents the request payload for a prepayment simulation.
type PrepaymentRequest struct {
	PrepaymentAmount float64 `json:"prepayment_amount" binding:"required,gt=0"`
}

// CreateLoan handles the creation of a new loan.
// @Summary     Create a loan
// @Description Record a new loan; the EMI must amortize the outstanding balance
// @Tags        loans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateLoanRequest true "Loan details"
// @Success     201 {object} models.Loan "Loan created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     422 {object} ErrorResponse "EMI too low to repay the loan"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /loans [post]
func (h *LoanHandler) CreateLoan(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	loan, err := h.loanService.CreateLoan(
		userID, req.LoanName, req.PrincipalAmount, req.OutstandingAmount,
		req.InterestRate, req.EmiAmount, req.TenureMonths, req.StartDate,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_LOAN", "loan", loan.ID, c.ClientIP(),
		map[string]interface{}{"loan_name": req.LoanName, "principal": req.PrincipalAmount})

	c.JSON(http.StatusCreated, gin.H{"loan": loan})
}

// GetLoans handles listing loans for the authenticated user.
// @Summary     Get loans
// @Description Get all loans for the authenticated user
// @Tags        loans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]models.Loan "Loans"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /loans [get]
func (h *LoanHandler) GetLoans(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	loans, err := h.loanService.GetUserLoans(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"loans": loans})
}

// GetLoan handles retrieving a specific loan.
// @Summary     Get loan by ID
// @Description Get a specific loan by ID
// @Tags        loans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Loan ID"
// @Success     200 {object} models.Loan "Loan details"
// @Failure     400 {object} ErrorResponse "Invalid loan ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Loan not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /loans/{id} [get]
func (h *LoanHandler) GetLoan(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	loanID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	loan, err := h.loanService.GetLoanByID(userID, loanID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"loan": loan})
}

// UpdateLoan handles updating an existing loan.
// @Summary     Update loan
// @Description Update an existing loan; changes must keep it amortizing
// @Tags        loans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int               true "Loan ID"
// @Param       request body UpdateLoanRequest true "Updated loan details"
// @Success     200 {object} models.Loan "Updated loan"
// @Failure     400 {object} ErrorResponse "Invalid input or loan ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Loan not found"
// @Failure     422 {object} ErrorResponse "EMI too low to repay the loan"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /loans/{id} [put]
func (h *LoanHandler) UpdateLoan(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	loanID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	loan, err := h.loanService.UpdateLoan(userID, loanID, services.LoanUpdateFields{
		LoanName:          req.LoanName,
		PrincipalAmount:   req.PrincipalAmount,
		OutstandingAmount: req.OutstandingAmount,
		InterestRate:      req.InterestRate,
		EmiAmount:         req.EmiAmount,
		TenureMonths:      req.TenureMonths,
		StartDate:         req.StartDate,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_LOAN", "loan", loanID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"loan": loan})
}

// DeleteLoan handles deleting a loan.
// @Summary     Delete loan
// @Description Delete a loan by ID (soft delete)
// @Tags        loans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Loan ID"
// @Success     200 {object} MessageResponse "Loan deleted"
// @Failure     400 {object} ErrorResponse "Invalid loan ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Loan not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /loans/{id} [delete]
func (h *LoanHandler) DeleteLoan(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	loanID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.loanService.DeleteLoan(userID, loanID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_LOAN", "loan", loanID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Loan deleted successfully"})
}

// SimulatePrepayment handles a prepayment what-if calculation.
// @Summary     Simulate prepayment
// @Description Compute the tenure reduction and interest saved by a lump-sum prepayment
// @Tags        loans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int               true "Loan ID"
// @Param       request body PrepaymentRequest true "Prepayment amount"
// @Success     200 {object} finance.PrepaymentResult "Prepayment impact"
// @Failure     400 {object} ErrorResponse "Invalid input or loan ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Loan not found"
// @Failure     422 {object} ErrorResponse "Loan does not amortize"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /loans/{id}/prepayment [post]
func (h *LoanHandler) SimulatePrepayment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	loanID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PrepaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.loanService.SimulatePrepayment(userID, loanID, req.PrepaymentAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"prepayment": result})
}
