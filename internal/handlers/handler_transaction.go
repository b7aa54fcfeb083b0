package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/invoice_finance_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_finance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type transactionHandler struct {
	transactionService portssvc.TransactionRecorderSvc
}

func newTransactionHandler(ts portssvc.TransactionRecorderSvc) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// RegisterTransactionRoutes registers routes for standalone business transactions.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionRecorderSvc) {
	h := newTransactionHandler(transactionService)

	txns := rg.Group("/transactions")
	{
		txns.POST("/fees", h.recordFee)
		txns.POST("/treasury-funding", h.recordTreasuryFunding)
	}
	rg.GET("/organizations/:orgID/transactions", h.listForOrganization)
}

// recordFee godoc
// @Summary Charge a fee to a customer
// @Tags transactions
// @Accept json
// @Produce json
// @Param fee body dto.RecordFeeRequest true "Fee"
// @Success 201 {object} domain.Transaction
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /transactions/fees [post]
func (h *transactionHandler) recordFee(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	var req dto.RecordFeeRequest
	if !bindJSON(c, &req) {
		return
	}
	txn, err := h.transactionService.RecordFeeCharge(c.Request.Context(), req, userID)
	if err != nil {
		writeError(c, err, "Failed to record fee")
		return
	}
	c.JSON(http.StatusCreated, txn)
}

// recordTreasuryFunding godoc
// @Summary Record treasury funding placed with the bank
// @Tags transactions
// @Accept json
// @Produce json
// @Param funding body dto.RecordTreasuryFundingRequest true "Treasury funding"
// @Success 201 {object} domain.Transaction
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /transactions/treasury-funding [post]
func (h *transactionHandler) recordTreasuryFunding(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	var req dto.RecordTreasuryFundingRequest
	if !bindJSON(c, &req) {
		return
	}
	txn, err := h.transactionService.RecordTreasuryFunding(c.Request.Context(), req, userID)
	if err != nil {
		writeError(c, err, "Failed to record treasury funding")
		return
	}
	c.JSON(http.StatusCreated, txn)
}

// listForOrganization godoc
// @Summary List an organization's transactions
// @Tags transactions
// @Produce json
// @Param orgID path string true "Organization ID"
// @Success 200 {array} domain.Transaction
// @Security BearerAuth
// @Router /organizations/{orgID}/transactions [get]
func (h *transactionHandler) listForOrganization(c *gin.Context) {
	txns, err := h.transactionService.ListTransactionsForOrganization(c.Request.Context(), c.Param("orgID"))
	if err != nil {
		writeError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, txns)
}
