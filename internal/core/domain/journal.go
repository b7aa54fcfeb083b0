package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	JournalPending JournalStatus = "PENDING"
	JournalPosted  JournalStatus = "POSTED"
)

// JournalEntry is a set of debit/credit lines recording one financial event.
// Posted entries are frozen.
type JournalEntry struct {
	JournalEntryID string             `json:"journalEntryID"`
	Reference      string             `json:"reference"`
	EntryDate      time.Time          `json:"entryDate"`
	Description    string             `json:"description"`
	Status         JournalStatus      `json:"status"`
	Lines          []JournalEntryLine `json:"lines"`
	OrganizationID *string            `json:"organizationID,omitempty"`
	InvoiceID      *string            `json:"invoiceID,omitempty"`
	TransactionID  *string            `json:"transactionID,omitempty"`
	PostedDate     *time.Time         `json:"postedDate,omitempty"`
	PostedBy       *string            `json:"postedBy,omitempty"`
	AuditFields
}

// JournalEntryLine hits a single account with either a debit or a credit.
type JournalEntryLine struct {
	LineID         string          `json:"lineID"`
	JournalEntryID string          `json:"journalEntryID"`
	AccountID      string          `json:"accountID"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	Description    string          `json:"description"`
	OrganizationID *string         `json:"organizationID,omitempty"`
}

// TotalDebits sums the debit side.
func (e JournalEntry) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredits sums the credit side.
func (e JournalEntry) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Credit)
	}
	return total
}

// IsBalanced reports whether debits equal credits.
func (e JournalEntry) IsBalanced() bool {
	return e.TotalDebits().Equal(e.TotalCredits())
}

// IsPosted reports whether the entry has been applied to account balances.
func (e JournalEntry) IsPosted() bool {
	return e.Status == JournalPosted
}

// HasSingleSide reports whether exactly one of debit/credit is non-zero and neither is negative.
func (l JournalEntryLine) HasSingleSide() bool {
	if l.Debit.IsNegative() || l.Credit.IsNegative() {
		return false
	}
	return l.Debit.IsZero() != l.Credit.IsZero()
}

// Amount is the non-zero side of the line.
func (l JournalEntryLine) Amount() decimal.Decimal {
	if l.Debit.IsZero() {
		return l.Credit
	}
	return l.Debit
}
