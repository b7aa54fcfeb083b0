// Package pgsql implements the ledger store on PostgreSQL through pgx.
package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/invoice_finance_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the query surface shared by pgx.Tx and *pgxpool.Pool.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB DBTX
}

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// mapNotFound turns pgx.ErrNoRows into apperrors.ErrNotFound, naming what was missing.
func mapNotFound(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, what)
	}
	return err
}

// mapInsertError turns a unique violation into apperrors.ErrDuplicate and a
// dangling reference into apperrors.ErrNotFound.
func mapInsertError(err error, what string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, what)
		case foreignKeyViolation:
			return fmt.Errorf("%w: %s references %s", apperrors.ErrNotFound, what, pgErr.ConstraintName)
		}
	}
	return apperrors.NewAppError(500, "failed to insert "+what, err)
}

// execBatch sends b and reports the first failing statement.
func execBatch(ctx context.Context, db DBTX, b *pgx.Batch, what string) error {
	if b.Len() == 0 {
		return nil
	}
	br := db.SendBatch(ctx, b)
	for i := 0; i < b.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return mapInsertError(err, what)
		}
	}
	return br.Close()
}
