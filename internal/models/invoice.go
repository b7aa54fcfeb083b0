package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a row of the invoices table. The approval rounds are stored as jsonb.
type Invoice struct {
	InvoiceID              string              `db:"invoice_id"`
	InvoiceNumber          string              `db:"invoice_number"`
	SellerID               *string             `db:"seller_id"`
	BuyerID                *string             `db:"buyer_id"`
	CounterpartyID         *string             `db:"counterparty_id"`
	Amount                 decimal.Decimal     `db:"amount"`
	Currency               string              `db:"currency"`
	IssueDate              time.Time           `db:"issue_date"`
	DueDate                time.Time           `db:"due_date"`
	Description            string              `db:"description"`
	Status                 string              `db:"status"`
	FundedAmount           decimal.NullDecimal `db:"funded_amount"`
	DiscountRate           decimal.NullDecimal `db:"discount_rate"`
	FundingDate            *time.Time          `db:"funding_date"`
	FinancedOrganizationID *string             `db:"financed_organization_id"`
	PaidAmount             decimal.Decimal     `db:"paid_amount"`
	PaymentDate            *time.Time          `db:"payment_date"`
	BuyerApproval          []byte              `db:"buyer_approval"`
	SellerAcceptance       []byte              `db:"seller_acceptance"`
	RejectionReason        *string             `db:"rejection_reason"`
	UploadedBy             string              `db:"uploaded_by"`
	AuditFields
}

// Counterparty is a row of the counterparties table.
type Counterparty struct {
	CounterpartyID string `db:"counterparty_id"`
	Name           string `db:"name"`
	TaxID          string `db:"tax_id"`
	Address        string `db:"address"`
	ContactPerson  string `db:"contact_person"`
	Email          string `db:"email"`
	Phone          string `db:"phone"`
	AuditFields
}
