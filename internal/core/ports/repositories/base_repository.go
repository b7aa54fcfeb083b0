package repositories

import (
	"context"
)

// UnitOfWork is executed atomically by a TransactionManager. Returning an error
// discards every write made through repos.
type UnitOfWork func(ctx context.Context, repos RepositoryProvider) error

// TransactionManager runs units of work against the ledger store.
type TransactionManager interface {
	// WithinTx runs fn in one atomic transaction. Rows read through a ForUpdate
	// method stay locked until fn returns.
	WithinTx(ctx context.Context, fn UnitOfWork) error
}
