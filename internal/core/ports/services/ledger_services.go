package services

import (
	"context"
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	"github.com/SscSPs/invoice_finance_app/internal/dto"
)

// AccountReaderSvc defines read operations for the chart of accounts
type AccountReaderSvc interface {
	GetAllAccounts(ctx context.Context) ([]domain.Account, error)
	GetAccountBalances(ctx context.Context) ([]domain.AccountBalance, error)
}

// JournalReaderSvc defines read operations for journal entries
type JournalReaderSvc interface {
	GetJournalEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	GetJournalEntriesForOrganization(ctx context.Context, organizationID string) ([]domain.JournalEntry, error)
	GetUnpostedJournalEntries(ctx context.Context) ([]domain.JournalEntry, error)
}

// JournalWriterSvc defines write operations for journal entries
type JournalWriterSvc interface {
	// CreateJournalEntry stores a balanced manual entry as Pending.
	CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error)

	// PostJournalEntry applies a pending, balanced entry to account balances and freezes it.
	PostJournalEntry(ctx context.Context, entryID string, userID string) error
}

// TransactionJournalSvc turns recorded transactions into posted journal entries
type TransactionJournalSvc interface {
	// RecordTransactionEntry builds, saves and posts the entry for txn in one unit of work.
	// It returns nil without error for transaction types that carry no entry.
	RecordTransactionEntry(ctx context.Context, txn domain.Transaction, event domain.TransactionEvent, userID string) (*domain.JournalEntry, error)
}

// TrialBalanceSvc computes trial balances
type TrialBalanceSvc interface {
	GenerateTrialBalance(ctx context.Context, asOf time.Time, userID string) (*domain.TrialBalance, error)
}

// LedgerSvcFacade combines all journal engine interfaces
type LedgerSvcFacade interface {
	AccountReaderSvc
	JournalReaderSvc
	JournalWriterSvc
	TransactionJournalSvc
	TrialBalanceSvc
}
