package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/invoice_finance_app/internal/apperrors"
	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/invoice_finance_app/internal/models"
	"github.com/SscSPs/invoice_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoices.
func newPgxInvoiceRepository(db DBTX) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, invoice_number, seller_id, buyer_id, counterparty_id, amount, currency,
	issue_date, due_date, description, status, funded_amount, discount_rate, funding_date,
	financed_organization_id, paid_amount, payment_date, buyer_approval, seller_acceptance,
	rejection_reason, uploaded_by, created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row pgx.Row) (domain.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.InvoiceNumber,
		&m.SellerID,
		&m.BuyerID,
		&m.CounterpartyID,
		&m.Amount,
		&m.Currency,
		&m.IssueDate,
		&m.DueDate,
		&m.Description,
		&m.Status,
		&m.FundedAmount,
		&m.DiscountRate,
		&m.FundingDate,
		&m.FinancedOrganizationID,
		&m.PaidAmount,
		&m.PaymentDate,
		&m.BuyerApproval,
		&m.SellerAcceptance,
		&m.RejectionReason,
		&m.UploadedBy,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return domain.Invoice{}, err
	}
	return mapping.ToDomainInvoice(m)
}

func (r *PgxInvoiceRepository) findOne(ctx context.Context, invoiceID string, lock bool) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1`
	if lock {
		query += ` FOR UPDATE`
	}
	inv, err := scanInvoice(r.DB.QueryRow(ctx, query, invoiceID))
	if err != nil {
		return nil, mapNotFound(err, "invoice "+invoiceID)
	}
	return &inv, nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return r.findOne(ctx, invoiceID, false)
}

func (r *PgxInvoiceRepository) FindInvoiceByIDForUpdate(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return r.findOne(ctx, invoiceID, true)
}

func (r *PgxInvoiceRepository) ListInvoicesByOrganization(ctx context.Context, organizationID string) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices
		WHERE seller_id = $1 OR buyer_id = $1 ORDER BY created_at`
	rows, err := r.DB.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	var out []domain.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		out = append(out, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}
	return out, nil
}

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m, err := mapping.ToModelInvoice(invoice)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25);
	`
	_, err = r.DB.Exec(ctx, query,
		m.InvoiceID,
		m.InvoiceNumber,
		m.SellerID,
		m.BuyerID,
		m.CounterpartyID,
		m.Amount,
		m.Currency,
		m.IssueDate,
		m.DueDate,
		m.Description,
		m.Status,
		m.FundedAmount,
		m.DiscountRate,
		m.FundingDate,
		m.FinancedOrganizationID,
		m.PaidAmount,
		m.PaymentDate,
		m.BuyerApproval,
		m.SellerAcceptance,
		m.RejectionReason,
		m.UploadedBy,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapInsertError(err, "invoice "+m.InvoiceID)
	}
	return nil
}

// UpdateInvoice rewrites the mutable lifecycle columns of an invoice.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	m, err := mapping.ToModelInvoice(invoice)
	if err != nil {
		return err
	}
	query := `
		UPDATE invoices
		SET buyer_id = $2, counterparty_id = $3, status = $4, funded_amount = $5, discount_rate = $6,
		    funding_date = $7, financed_organization_id = $8, paid_amount = $9, payment_date = $10,
		    buyer_approval = $11, seller_acceptance = $12, rejection_reason = $13,
		    last_updated_at = $14, last_updated_by = $15
		WHERE invoice_id = $1;
	`
	ct, err := r.DB.Exec(ctx, query,
		m.InvoiceID,
		m.BuyerID,
		m.CounterpartyID,
		m.Status,
		m.FundedAmount,
		m.DiscountRate,
		m.FundingDate,
		m.FinancedOrganizationID,
		m.PaidAmount,
		m.PaymentDate,
		m.BuyerApproval,
		m.SellerAcceptance,
		m.RejectionReason,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update invoice "+m.InvoiceID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, m.InvoiceID)
	}
	return nil
}

type PgxCounterpartyRepository struct {
	BaseRepository
}

// newPgxCounterpartyRepository creates a new repository for counterparties.
func newPgxCounterpartyRepository(db DBTX) portsrepo.CounterpartyRepository {
	return &PgxCounterpartyRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.CounterpartyRepository = (*PgxCounterpartyRepository)(nil)

const counterpartyColumns = `counterparty_id, name, tax_id, address, contact_person, email, phone,
	created_at, created_by, last_updated_at, last_updated_by`

// FindCounterpartyByNameAndTaxID matches the name case-insensitively.
func (r *PgxCounterpartyRepository) FindCounterpartyByNameAndTaxID(ctx context.Context, name, taxID string) (*domain.Counterparty, error) {
	query := `SELECT ` + counterpartyColumns + ` FROM counterparties WHERE lower(name) = lower($1) AND tax_id = $2 LIMIT 1`
	var m models.Counterparty
	err := r.DB.QueryRow(ctx, query, name, taxID).Scan(
		&m.CounterpartyID,
		&m.Name,
		&m.TaxID,
		&m.Address,
		&m.ContactPerson,
		&m.Email,
		&m.Phone,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, mapNotFound(err, "counterparty "+name)
	}
	cp := mapping.ToDomainCounterparty(m)
	return &cp, nil
}

func (r *PgxCounterpartyRepository) SaveCounterparty(ctx context.Context, counterparty domain.Counterparty) error {
	m := mapping.ToModelCounterparty(counterparty)
	query := `
		INSERT INTO counterparties (` + counterpartyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.DB.Exec(ctx, query,
		m.CounterpartyID,
		m.Name,
		m.TaxID,
		m.Address,
		m.ContactPerson,
		m.Email,
		m.Phone,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapInsertError(err, "counterparty "+m.Name)
	}
	return nil
}
