package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/invoice_finance_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_finance_app/internal/dto"
	"github.com/SscSPs/invoice_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles HTTP requests related to the invoice lifecycle.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

// newInvoiceHandler creates a new invoiceHandler.
func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{
		invoiceService: is,
	}
}

// RegisterInvoiceRoutes registers routes related to invoices.
func RegisterInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	rg.POST("/buyer-invoices", h.uploadBuyerInvoice)
	rg.GET("/organizations/:orgID/invoices", h.listInvoices)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.uploadInvoice)
		invoices.GET("/:id", h.getInvoice)
		invoices.GET("/:id/relationship", h.getRelationship)
		invoices.POST("/:id/validate", h.validateInvoice)
		invoices.POST("/:id/approve", h.approveInvoice)
		invoices.POST("/:id/reject", h.rejectInvoice)
		invoices.POST("/:id/buyer-approval/request", h.requestBuyerApproval)
		invoices.POST("/:id/buyer-approval/approve", h.buyerApprove)
		invoices.POST("/:id/buyer-approval/reject", h.buyerReject)
		invoices.POST("/:id/seller-acceptance/request", h.requestSellerAcceptance)
		invoices.POST("/:id/seller-acceptance/accept", h.sellerAccept)
		invoices.POST("/:id/seller-acceptance/reject", h.sellerReject)
		invoices.POST("/:id/fund", h.fundInvoice)
		invoices.POST("/:id/payments", h.processPayment)
	}
}

// uploadInvoice godoc
// @Summary Upload a seller invoice
// @Description Registers an invoice uploaded on behalf of a seller organization
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.UploadInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.ResultResponse
// @Failure 400 {object} dto.ResultResponse "Invalid input"
// @Failure 404 {object} dto.ResultResponse "Seller or buyer not found"
// @Failure 500 {object} dto.ResultResponse
// @Security BearerAuth
// @Router /invoices [post]
func (h *invoiceHandler) uploadInvoice(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	var req dto.UploadInvoiceRequest
	if !bindJSON(c, &req) {
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Received invoice upload", slog.String("invoice_number", req.InvoiceNumber))
	writeResult(c, h.invoiceService.UploadInvoice(c.Request.Context(), req, userID), http.StatusCreated)
}

// uploadBuyerInvoice godoc
// @Summary Upload a buyer invoice
// @Description Registers an invoice uploaded by the buyer organization
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.UploadInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.ResultResponse
// @Failure 400 {object} dto.ResultResponse "Invalid input"
// @Failure 404 {object} dto.ResultResponse "Buyer or seller not found"
// @Failure 500 {object} dto.ResultResponse
// @Security BearerAuth
// @Router /buyer-invoices [post]
func (h *invoiceHandler) uploadBuyerInvoice(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	var req dto.UploadInvoiceRequest
	if !bindJSON(c, &req) {
		return
	}
	writeResult(c, h.invoiceService.UploadBuyerInvoice(c.Request.Context(), req, userID), http.StatusCreated)
}

// getInvoice godoc
// @Summary Get an invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} domain.Invoice
// @Failure 404 {object} map[string]string "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	inv, err := h.invoiceService.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "Failed to retrieve invoice")
		return
	}
	c.JSON(http.StatusOK, inv)
}

// listInvoices godoc
// @Summary List invoices of an organization
// @Description Lists invoices where the organization is seller or buyer
// @Tags invoices
// @Produce json
// @Param orgID path string true "Organization ID"
// @Success 200 {array} domain.Invoice
// @Security BearerAuth
// @Router /organizations/{orgID}/invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	invoices, err := h.invoiceService.ListInvoicesForOrganization(c.Request.Context(), c.Param("orgID"))
	if err != nil {
		writeError(c, err, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// getRelationship godoc
// @Summary Determine the customer relationship of an invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.CustomerRelationshipResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id}/relationship [get]
func (h *invoiceHandler) getRelationship(c *gin.Context) {
	invoiceID := c.Param("id")
	rel, err := h.invoiceService.DetermineCustomerRelationship(c.Request.Context(), invoiceID)
	if err != nil {
		writeError(c, err, "Failed to determine customer relationship")
		return
	}
	c.JSON(http.StatusOK, dto.CustomerRelationshipResponse{InvoiceID: invoiceID, Relationship: string(rel)})
}

// validateInvoice godoc
// @Summary Validate an uploaded invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} dto.ResultResponse "Transition not allowed"
// @Failure 404 {object} dto.ResultResponse "Invoice not found"
// @Failure 403 {object} dto.ResultResponse "Not a bank user"
// @Security BearerAuth
// @Router /invoices/{id}/validate [post]
func (h *invoiceHandler) validateInvoice(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	writeResult(c, h.invoiceService.ValidateInvoice(c.Request.Context(), c.Param("id"), userID), http.StatusOK)
}

// approveInvoice godoc
// @Summary Approve a validated invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} dto.ResultResponse "Transition not allowed"
// @Failure 403 {object} dto.ResultResponse "Not a bank user"
// @Security BearerAuth
// @Router /invoices/{id}/approve [post]
func (h *invoiceHandler) approveInvoice(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	writeResult(c, h.invoiceService.ApproveInvoice(c.Request.Context(), c.Param("id"), userID), http.StatusOK)
}

// rejectInvoice godoc
// @Summary Reject an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param reason body dto.ReasonRequest true "Rejection reason"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} dto.ResultResponse "Transition not allowed"
// @Failure 403 {object} dto.ResultResponse "Not a bank user"
// @Security BearerAuth
// @Router /invoices/{id}/reject [post]
func (h *invoiceHandler) rejectInvoice(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	var req dto.ReasonRequest
	if !bindJSON(c, &req) {
		return
	}
	writeResult(c, h.invoiceService.RejectInvoice(c.Request.Context(), c.Param("id"), req.Reason, userID), http.StatusOK)
}

// requestBuyerApproval godoc
// @Summary Ask the buyer to approve an invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.ResultResponse
// @Failure 403 {object} dto.ResultResponse "Not a bank user"
// @Security BearerAuth
// @Router /invoices/{id}/buyer-approval/request [post]
func (h *invoiceHandler) requestBuyerApproval(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	writeResult(c, h.invoiceService.RequestBuyerApproval(c.Request.Context(), c.Param("id"), userID), http.StatusOK)
}

// buyerApprove godoc
// @Summary Buyer approves an invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.ResultResponse
// @Failure 403 {object} dto.ResultResponse "User does not belong to the buyer"
// @Security BearerAuth
// @Router /invoices/{id}/buyer-approval/approve [post]
func (h *invoiceHandler) buyerApprove(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	writeResult(c, h.invoiceService.BuyerApproveInvoice(c.Request.Context(), c.Param("id"), userID), http.StatusOK)
}

// buyerReject godoc
// @Summary Buyer rejects an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param reason body dto.ReasonRequest true "Rejection reason"
// @Success 200 {object} dto.ResultResponse
// @Failure 403 {object} dto.ResultResponse "User does not belong to the buyer"
// @Security BearerAuth
// @Router /invoices/{id}/buyer-approval/reject [post]
func (h *invoiceHandler) buyerReject(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	var req dto.ReasonRequest
	if !bindJSON(c, &req) {
		return
	}
	writeResult(c, h.invoiceService.BuyerRejectInvoice(c.Request.Context(), c.Param("id"), req.Reason, userID), http.StatusOK)
}

// requestSellerAcceptance godoc
// @Summary Offer a discount rate to the seller
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param offer body dto.SellerAcceptanceRequest true "Offered discount rate"
// @Success 200 {object} dto.ResultResponse
// @Failure 403 {object} dto.ResultResponse "Not a bank user"
// @Security BearerAuth
// @Router /invoices/{id}/seller-acceptance/request [post]
func (h *invoiceHandler) requestSellerAcceptance(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	var req dto.SellerAcceptanceRequest
	if !bindJSON(c, &req) {
		return
	}
	writeResult(c, h.invoiceService.RequestSellerAcceptance(c.Request.Context(), c.Param("id"), req.DiscountRate, userID), http.StatusOK)
}

// sellerAccept godoc
// @Summary Seller accepts the offered rate
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.ResultResponse
// @Failure 403 {object} dto.ResultResponse "User does not belong to the seller"
// @Security BearerAuth
// @Router /invoices/{id}/seller-acceptance/accept [post]
func (h *invoiceHandler) sellerAccept(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	writeResult(c, h.invoiceService.SellerAcceptOffer(c.Request.Context(), c.Param("id"), userID), http.StatusOK)
}

// sellerReject godoc
// @Summary Seller rejects the offered rate
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param reason body dto.ReasonRequest true "Rejection reason"
// @Success 200 {object} dto.ResultResponse
// @Failure 403 {object} dto.ResultResponse "User does not belong to the seller"
// @Security BearerAuth
// @Router /invoices/{id}/seller-acceptance/reject [post]
func (h *invoiceHandler) sellerReject(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	var req dto.ReasonRequest
	if !bindJSON(c, &req) {
		return
	}
	writeResult(c, h.invoiceService.SellerRejectOffer(c.Request.Context(), c.Param("id"), req.Reason, userID), http.StatusOK)
}

// fundInvoice godoc
// @Summary Fund an approved invoice
// @Description Discounts the invoice, draws the financed party's facility and posts the funding entry
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param terms body dto.FundInvoiceRequest true "Funding terms"
// @Success 200 {object} dto.ResultResponse
// @Failure 409 {object} dto.ResultResponse "Insufficient facility capacity"
// @Failure 403 {object} dto.ResultResponse "Not a bank user"
// @Security BearerAuth
// @Router /invoices/{id}/fund [post]
func (h *invoiceHandler) fundInvoice(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	var req dto.FundInvoiceRequest
	if !bindJSON(c, &req) {
		return
	}
	writeResult(c, h.invoiceService.FundInvoice(c.Request.Context(), c.Param("id"), req, userID), http.StatusOK)
}

// processPayment godoc
// @Summary Record a payment against a funded invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param payment body dto.PaymentRequest true "Payment"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} dto.ResultResponse "Overpayment or invoice not funded"
// @Security BearerAuth
// @Router /invoices/{id}/payments [post]
func (h *invoiceHandler) processPayment(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	var req dto.PaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	writeResult(c, h.invoiceService.ProcessPayment(c.Request.Context(), c.Param("id"), req, userID), http.StatusOK)
}
