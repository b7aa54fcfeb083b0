package repositories

import (
	"context"

	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
)

// TransactionRepositoryFacade stores recorded business events.
type TransactionRepositoryFacade interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByOrganization retrieves the organization's transactions ordered by date.
	ListTransactionsByOrganization(ctx context.Context, organizationID string) ([]domain.Transaction, error)
}
