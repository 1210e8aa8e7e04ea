package handlers

import (
	"net/http"

	"github.com/SscSPs/banking_portal/internal/apperrors"
	portssvc "github.com/SscSPs/banking_portal/internal/core/ports/services"
	"github.com/SscSPs/banking_portal/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// loanHandler handles HTTP requests for the loan lifecycle.
type loanHandler struct {
	loanService portssvc.LoanSvcFacade
}

func newLoanHandler(ls portssvc.LoanSvcFacade) *loanHandler {
	return &loanHandler{loanService: ls}
}

// registerLoanRoutes registers routes related to loans.
func registerLoanRoutes(rg *gin.RouterGroup, loanService portssvc.LoanSvcFacade) {
	h := newLoanHandler(loanService)

	loans := rg.Group("/loans")
	{
		loans.POST("/apply", h.applyForLoan)
		loans.POST("/approve/:loanID", h.approveLoan)
		loans.POST("/repay/:loanID", h.repayLoan)
		loans.GET("/account/:accountNumber", h.listLoans)
	}
}

// applyForLoan godoc
// @Summary Apply for a loan
// @Description Creates a PENDING loan. The amount may not exceed twice the account balance.
// @Tags loans
// @Accept json
// @Produce json
// @Param request body dto.LoanApplicationRequest true "Loan application"
// @Success 201 {object} dto.LoanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans/apply [post]
func (h *loanHandler) applyForLoan(c *gin.Context) {
	var req dto.LoanApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "ApplyForLoan")
		return
	}

	loan, err := h.loanService.ApplyForLoan(c.Request.Context(), req.AccountNumber, req.Amount, req.Description)
	if err != nil {
		respondWithError(c, err, "Failed to apply for loan")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLoanResponse(loan))
}

// approveLoan godoc
// @Summary Approve a loan
// @Description Approves a PENDING loan and credits the principal to its account.
// @Tags loans
// @Produce json
// @Param loanID path string true "Loan ID"
// @Success 200 {object} dto.LoanResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Loan is not PENDING"
// @Security BearerAuth
// @Router /loans/approve/{loanID} [post]
func (h *loanHandler) approveLoan(c *gin.Context) {
	loan, err := h.loanService.ApproveLoan(c.Request.Context(), c.Param("loanID"))
	if err != nil {
		respondWithError(c, err, "Failed to approve loan")
		return
	}
	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

// repayLoan godoc
// @Summary Repay a loan
// @Description Applies a repayment to an APPROVED loan. The loan becomes REPAID when nothing is outstanding.
// @Tags loans
// @Produce json
// @Param loanID path string true "Loan ID"
// @Param amount query string true "Repayment amount"
// @Success 200 {object} dto.LoanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Loan is not APPROVED"
// @Security BearerAuth
// @Router /loans/repay/{loanID} [post]
func (h *loanHandler) repayLoan(c *gin.Context) {
	var params dto.LoanRepaymentParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "RepayLoan")
		return
	}
	amount, err := decimal.NewFromString(params.Amount)
	if err != nil {
		respondWithError(c, apperrors.ErrInvalidAmount, "Failed to repay loan")
		return
	}

	loan, err := h.loanService.RepayLoan(c.Request.Context(), c.Param("loanID"), amount)
	if err != nil {
		respondWithError(c, err, "Failed to repay loan")
		return
	}
	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

// listLoans godoc
// @Summary List loans of an account
// @Tags loans
// @Produce json
// @Param accountNumber path string true "Account number"
// @Success 200 {array} dto.LoanResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans/account/{accountNumber} [get]
func (h *loanHandler) listLoans(c *gin.Context) {
	loans, err := h.loanService.GetLoansByAccountNumber(c.Request.Context(), c.Param("accountNumber"))
	if err != nil {
		respondWithError(c, err, "Failed to list loans")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLoanResponse(loans))
}
