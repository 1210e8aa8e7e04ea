package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/banking_portal/internal/core/ports/services"
	"github.com/SscSPs/banking_portal/internal/dto"
	"github.com/SscSPs/banking_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests for the authenticated account.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// registerAccountRoutes registers routes related to the caller's account.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	account := rg.Group("/account")
	{
		account.GET("", h.getAccount)
		account.GET("/pin/check", h.checkPin)
		account.POST("/pin/create", h.createPin)
		account.POST("/pin/update", h.updatePin)
		account.POST("/deposit", h.deposit)
		account.POST("/withdraw", h.withdraw)
		account.POST("/fund-transfer", h.fundTransfer)
		account.GET("/transactions", h.listTransactions)
	}
}

// getAccount godoc
// @Summary Get account details
// @Description Returns the authenticated caller's account.
// @Tags account
// @Produce json
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /account [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	accountNumber, ok := requireAccountNumber(c)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccount(c.Request.Context(), accountNumber)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// checkPin godoc
// @Summary Check PIN status
// @Description Reports whether the caller's account has a PIN.
// @Tags account
// @Produce json
// @Success 200 {object} dto.PinStatusResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /account/pin/check [get]
func (h *accountHandler) checkPin(c *gin.Context) {
	accountNumber, ok := requireAccountNumber(c)
	if !ok {
		return
	}

	hasPin, err := h.accountService.IsPinCreated(c.Request.Context(), accountNumber)
	if err != nil {
		respondWithError(c, err, "Failed to check PIN status")
		return
	}
	c.JSON(http.StatusOK, dto.PinStatusResponse{HasPin: hasPin})
}

// createPin godoc
// @Summary Create PIN
// @Description Creates the account PIN after verifying the owner's password.
// @Tags account
// @Accept json
// @Produce json
// @Param request body dto.PinCreateRequest true "Password and new PIN"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid PIN or PIN already exists"
// @Failure 401 {object} ErrorResponse "Invalid password"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /account/pin/create [post]
func (h *accountHandler) createPin(c *gin.Context) {
	accountNumber, ok := requireAccountNumber(c)
	if !ok {
		return
	}
	var req dto.PinCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "CreatePin")
		return
	}

	if err := h.accountService.CreatePin(c.Request.Context(), accountNumber, req.Password, req.Pin); err != nil {
		respondWithError(c, err, "Failed to create PIN")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Msg: "PIN created successfully"})
}

// updatePin godoc
// @Summary Update PIN
// @Description Replaces the account PIN after verifying the old PIN and the owner's password.
// @Tags account
// @Accept json
// @Produce json
// @Param request body dto.PinUpdateRequest true "Old PIN, password and new PIN"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /account/pin/update [post]
func (h *accountHandler) updatePin(c *gin.Context) {
	accountNumber, ok := requireAccountNumber(c)
	if !ok {
		return
	}
	var req dto.PinUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "UpdatePin")
		return
	}

	if err := h.accountService.UpdatePin(c.Request.Context(), accountNumber, req.OldPin, req.Password, req.NewPin); err != nil {
		respondWithError(c, err, "Failed to update PIN")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Msg: "PIN updated successfully"})
}

// deposit godoc
// @Summary Cash deposit
// @Description Deposits a positive multiple of 100, at most 100000, into the caller's account.
// @Tags account
// @Accept json
// @Produce json
// @Param request body dto.AmountRequest true "PIN and amount"
// @Success 200 {object} dto.LedgerOperationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /account/deposit [post]
func (h *accountHandler) deposit(c *gin.Context) {
	accountNumber, ok := requireAccountNumber(c)
	if !ok {
		return
	}
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "CashDeposit")
		return
	}

	txn, err := h.accountService.CashDeposit(c.Request.Context(), accountNumber, req.Pin, req.Amount)
	if err != nil {
		respondWithError(c, err, "Failed to deposit cash")
		return
	}
	c.JSON(http.StatusOK, dto.LedgerOperationResponse{Msg: "Cash deposited successfully", TransactionID: txn.TransactionID})
}

// withdraw godoc
// @Summary Cash withdrawal
// @Description Withdraws a positive multiple of 100, at most 100000, from the caller's account.
// @Tags account
// @Accept json
// @Produce json
// @Param request body dto.AmountRequest true "PIN and amount"
// @Success 200 {object} dto.LedgerOperationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /account/withdraw [post]
func (h *accountHandler) withdraw(c *gin.Context) {
	accountNumber, ok := requireAccountNumber(c)
	if !ok {
		return
	}
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "CashWithdrawal")
		return
	}

	txn, err := h.accountService.CashWithdrawal(c.Request.Context(), accountNumber, req.Pin, req.Amount)
	if err != nil {
		respondWithError(c, err, "Failed to withdraw cash")
		return
	}
	c.JSON(http.StatusOK, dto.LedgerOperationResponse{Msg: "Cash withdrawn successfully", TransactionID: txn.TransactionID})
}

// fundTransfer godoc
// @Summary Fund transfer
// @Description Moves money from the caller's account to another account.
// @Tags account
// @Accept json
// @Produce json
// @Param request body dto.FundTransferRequest true "Target account, PIN and amount"
// @Success 200 {object} dto.LedgerOperationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /account/fund-transfer [post]
func (h *accountHandler) fundTransfer(c *gin.Context) {
	accountNumber, ok := requireAccountNumber(c)
	if !ok {
		return
	}
	var req dto.FundTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "FundTransfer")
		return
	}

	txn, err := h.accountService.FundTransfer(c.Request.Context(), accountNumber, req.TargetAccountNumber, req.Pin, req.Amount)
	if err != nil {
		respondWithError(c, err, "Failed to transfer funds")
		return
	}
	c.JSON(http.StatusOK, dto.LedgerOperationResponse{Msg: "Fund transferred successfully", TransactionID: txn.TransactionID})
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions touching the caller's account, newest first.
// @Tags account
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /account/transactions [get]
func (h *accountHandler) listTransactions(c *gin.Context) {
	accountNumber, ok := requireAccountNumber(c)
	if !ok {
		return
	}
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "ListTransactions")
		return
	}

	txns, err := h.accountService.ListTransactions(c.Request.Context(), accountNumber, params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, err, "Failed to list transactions")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Debug("Transactions listed", slog.Int("count", len(txns)))
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns, accountNumber))
}
