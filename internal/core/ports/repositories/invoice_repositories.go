package repositories

import (
	"context"

	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
)

// InvoiceReader defines read operations for invoices
type InvoiceReader interface {
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// FindInvoiceByIDForUpdate locks the invoice row until the unit of work ends.
	FindInvoiceByIDForUpdate(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoicesByOrganization retrieves invoices where the organization is seller or buyer.
	ListInvoicesByOrganization(ctx context.Context, organizationID string) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoices
type InvoiceWriter interface {
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error
}

// InvoiceRepositoryFacade combines all invoice repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}

// CounterpartyRepository stores non-customer invoice parties.
type CounterpartyRepository interface {
	FindCounterpartyByNameAndTaxID(ctx context.Context, name, taxID string) (*domain.Counterparty, error)
	SaveCounterparty(ctx context.Context, counterparty domain.Counterparty) error
}
