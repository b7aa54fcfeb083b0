package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table.
type Transaction struct {
	TransactionID          string              `db:"transaction_id"`
	TransactionType        string              `db:"transaction_type"`
	FacilityType           string              `db:"facility_type"`
	OrganizationID         string              `db:"organization_id"`
	InvoiceID              *string             `db:"invoice_id"`
	Description            string              `db:"description"`
	Amount                 decimal.Decimal     `db:"amount"`
	InterestOrDiscountRate decimal.NullDecimal `db:"interest_or_discount_rate"`
	TransactionDate        time.Time           `db:"transaction_date"`
	MaturityDate           time.Time           `db:"maturity_date"`
	IsPaid                 bool                `db:"is_paid"`
	PaymentDate            *time.Time          `db:"payment_date"`
	AuditFields
}
