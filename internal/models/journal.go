package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a row of the journal_entries table.
type JournalEntry struct {
	JournalEntryID string     `db:"journal_entry_id"`
	Reference      string     `db:"reference"`
	EntryDate      time.Time  `db:"entry_date"`
	Description    string     `db:"description"`
	Status         string     `db:"status"`
	OrganizationID *string    `db:"organization_id"`
	InvoiceID      *string    `db:"invoice_id"`
	TransactionID  *string    `db:"transaction_id"`
	PostedDate     *time.Time `db:"posted_date"`
	PostedBy       *string    `db:"posted_by"`
	AuditFields
}

// JournalEntryLine is a row of the journal_entry_lines table.
type JournalEntryLine struct {
	LineID         string          `db:"line_id"`
	JournalEntryID string          `db:"journal_entry_id"`
	LineNumber     int             `db:"line_number"`
	AccountID      string          `db:"account_id"`
	Debit          decimal.Decimal `db:"debit"`
	Credit         decimal.Decimal `db:"credit"`
	Description    string          `db:"description"`
	OrganizationID *string         `db:"organization_id"`
}
