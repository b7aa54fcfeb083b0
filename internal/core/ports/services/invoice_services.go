package services

import (
	"context"

	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	"github.com/SscSPs/invoice_finance_app/internal/dto"
	"github.com/shopspring/decimal"
)

// InvoiceUploaderSvc defines how invoices enter the system
type InvoiceUploaderSvc interface {
	UploadInvoice(ctx context.Context, req dto.UploadInvoiceRequest, userID string) domain.Result
	UploadBuyerInvoice(ctx context.Context, req dto.UploadInvoiceRequest, userID string) domain.Result
}

// InvoiceLifecycleSvc defines the bank-driven transitions
type InvoiceLifecycleSvc interface {
	ValidateInvoice(ctx context.Context, invoiceID string, userID string) domain.Result
	ApproveInvoice(ctx context.Context, invoiceID string, userID string) domain.Result
	RejectInvoice(ctx context.Context, invoiceID string, reason string, userID string) domain.Result
	FundInvoice(ctx context.Context, invoiceID string, details dto.FundInvoiceRequest, userID string) domain.Result
	ProcessPayment(ctx context.Context, invoiceID string, req dto.PaymentRequest, userID string) domain.Result
}

// InvoiceNegotiationSvc defines the buyer approval and seller acceptance sub-protocol
type InvoiceNegotiationSvc interface {
	RequestBuyerApproval(ctx context.Context, invoiceID string, userID string) domain.Result
	BuyerApproveInvoice(ctx context.Context, invoiceID string, userID string) domain.Result
	BuyerRejectInvoice(ctx context.Context, invoiceID string, reason string, userID string) domain.Result
	RequestSellerAcceptance(ctx context.Context, invoiceID string, discountRate decimal.Decimal, userID string) domain.Result
	SellerAcceptOffer(ctx context.Context, invoiceID string, userID string) domain.Result
	SellerRejectOffer(ctx context.Context, invoiceID string, reason string, userID string) domain.Result
}

// InvoiceReaderSvc defines read operations for invoices
type InvoiceReaderSvc interface {
	GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoicesForOrganization(ctx context.Context, organizationID string) ([]domain.Invoice, error)

	// DetermineCustomerRelationship recomputes which invoice parties hold a credit limit.
	DetermineCustomerRelationship(ctx context.Context, invoiceID string) (domain.CustomerRelationship, error)
}

// InvoiceSvcFacade combines all invoice interfaces
type InvoiceSvcFacade interface {
	InvoiceUploaderSvc
	InvoiceLifecycleSvc
	InvoiceNegotiationSvc
	InvoiceReaderSvc
}
