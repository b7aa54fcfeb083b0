package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/invoice_finance_app/internal/apperrors"
	portsrepo "github.com/SscSPs/invoice_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager runs units of work inside PostgreSQL transactions.
type TxManager struct {
	Pool *pgxpool.Pool
}

var _ portsrepo.TransactionManager = (*TxManager)(nil)

// NewTxManager creates a TxManager over pool.
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{Pool: pool}
}

// Begin starts a new database transaction
func (m *TxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := m.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (m *TxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (m *TxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// WithinTx runs fn with repositories bound to one transaction, committing only if fn succeeds.
func (m *TxManager) WithinTx(ctx context.Context, fn portsrepo.UnitOfWork) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}
	defer m.Rollback(ctx, tx)

	if err := fn(ctx, NewRepositoryProvider(tx)); err != nil {
		return err
	}
	return m.Commit(ctx, tx)
}
