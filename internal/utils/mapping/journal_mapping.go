package mapping

import (
	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	"github.com/SscSPs/invoice_finance_app/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry header to a model JournalEntry.
// Lines are converted separately with ToModelJournalLines.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		JournalEntryID: d.JournalEntryID,
		Reference:      d.Reference,
		EntryDate:      d.EntryDate,
		Description:    d.Description,
		Status:         string(d.Status),
		OrganizationID: d.OrganizationID,
		InvoiceID:      d.InvoiceID,
		TransactionID:  d.TransactionID,
		PostedDate:     d.PostedDate,
		PostedBy:       d.PostedBy,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry and its lines to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry, lines []models.JournalEntryLine) domain.JournalEntry {
	d := domain.JournalEntry{
		JournalEntryID: m.JournalEntryID,
		Reference:      m.Reference,
		EntryDate:      m.EntryDate,
		Description:    m.Description,
		Status:         domain.JournalStatus(m.Status),
		OrganizationID: m.OrganizationID,
		InvoiceID:      m.InvoiceID,
		TransactionID:  m.TransactionID,
		PostedDate:     m.PostedDate,
		PostedBy:       m.PostedBy,
		Lines:          make([]domain.JournalEntryLine, 0, len(lines)),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
	for _, l := range lines {
		d.Lines = append(d.Lines, ToDomainJournalLine(l))
	}
	return d
}

// ToModelJournalLines numbers the entry's lines in order
func ToModelJournalLines(d domain.JournalEntry) []models.JournalEntryLine {
	ms := make([]models.JournalEntryLine, len(d.Lines))
	for i, l := range d.Lines {
		ms[i] = models.JournalEntryLine{
			LineID:         l.LineID,
			JournalEntryID: d.JournalEntryID,
			LineNumber:     i + 1,
			AccountID:      l.AccountID,
			Debit:          l.Debit,
			Credit:         l.Credit,
			Description:    l.Description,
			OrganizationID: l.OrganizationID,
		}
	}
	return ms
}

// ToDomainJournalLine converts a model JournalEntryLine to a domain JournalEntryLine
func ToDomainJournalLine(m models.JournalEntryLine) domain.JournalEntryLine {
	return domain.JournalEntryLine{
		LineID:         m.LineID,
		JournalEntryID: m.JournalEntryID,
		AccountID:      m.AccountID,
		Debit:          m.Debit,
		Credit:         m.Credit,
		Description:    m.Description,
		OrganizationID: m.OrganizationID,
	}
}
