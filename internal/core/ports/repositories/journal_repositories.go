package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
)

// JournalReader defines read operations for journal entries
type JournalReader interface {
	// FindJournalEntryByID retrieves an entry with its lines.
	FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindJournalEntryByIDForUpdate retrieves an entry with its lines and locks it.
	FindJournalEntryByIDForUpdate(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListJournalEntriesByOrganization retrieves entries tagged with the organization, newest first.
	ListJournalEntriesByOrganization(ctx context.Context, organizationID string) ([]domain.JournalEntry, error)

	// ListJournalEntriesByStatus retrieves entries in the given status, oldest first.
	ListJournalEntriesByStatus(ctx context.Context, status domain.JournalStatus) ([]domain.JournalEntry, error)
}

// JournalWriter defines write operations for journal entries
type JournalWriter interface {
	// SaveJournalEntry persists a new entry and its lines.
	SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error

	// MarkJournalEntryPosted freezes an entry as posted.
	MarkJournalEntryPosted(ctx context.Context, entryID string, postedBy string, postedAt time.Time) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
