package services

import (
	"context"

	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/invoice_finance_app/internal/dto"
)

// TransactionRecorderSvc records business events and drives their journal entries
type TransactionRecorderSvc interface {
	// RecordTransaction persists the event in its own unit of work, then posts its
	// journal entry. Posting failures are logged and never returned.
	RecordTransaction(ctx context.Context, event domain.TransactionEvent, userID string) (*domain.Transaction, error)

	// StageTransaction persists the event inside the caller's unit of work.
	StageTransaction(ctx context.Context, repos portsrepo.RepositoryProvider, event domain.TransactionEvent, userID string) (*domain.Transaction, error)

	// PostTransactionJournal posts the entry of an already committed transaction.
	PostTransactionJournal(ctx context.Context, txn domain.Transaction, event domain.TransactionEvent)

	RecordFeeCharge(ctx context.Context, req dto.RecordFeeRequest, userID string) (*domain.Transaction, error)
	RecordTreasuryFunding(ctx context.Context, req dto.RecordTreasuryFundingRequest, userID string) (*domain.Transaction, error)
	ListTransactionsForOrganization(ctx context.Context, organizationID string) ([]domain.Transaction, error)
}
