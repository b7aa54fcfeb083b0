package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
)

// ReportingRepository defines operations for retrieving financial report data
type ReportingRepository interface {
	// GetPostedLineTotals sums debits and credits of posted lines per active account,
	// counting only entries posted on or before asOf. Accounts are ordered by code.
	GetPostedLineTotals(ctx context.Context, asOf time.Time) ([]domain.AccountLineTotals, error)
}
