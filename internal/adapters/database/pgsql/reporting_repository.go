package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/invoice_finance_app/internal/models"
	"github.com/SscSPs/invoice_finance_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db DBTX) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetPostedLineTotals aggregates posted lines per active account that has any.
func (r *reportingRepository) GetPostedLineTotals(ctx context.Context, asOf time.Time) ([]domain.AccountLineTotals, error) {
	query := `
		SELECT a.account_id, a.code, a.name, a.account_type, a.category, a.balance, a.is_active,
		       a.created_at, a.created_by, a.last_updated_at, a.last_updated_by,
		       SUM(l.debit), SUM(l.credit)
		FROM accounts a
		JOIN journal_entry_lines l ON l.account_id = a.account_id
		JOIN journal_entries e ON e.journal_entry_id = l.journal_entry_id
		WHERE a.is_active
		  AND e.status = $1
		  AND e.posted_date <= $2
		GROUP BY a.account_id
		ORDER BY a.code;
	`
	rows, err := r.DB.Query(ctx, query, string(domain.JournalPosted), asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to query posted line totals: %w", err)
	}
	defer rows.Close()

	var out []domain.AccountLineTotals
	for rows.Next() {
		var m models.Account
		var debits, credits decimal.Decimal
		if err := rows.Scan(
			&m.AccountID,
			&m.Code,
			&m.Name,
			&m.AccountType,
			&m.Category,
			&m.Balance,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&debits,
			&credits,
		); err != nil {
			return nil, fmt.Errorf("failed to scan line totals: %w", err)
		}
		out = append(out, domain.AccountLineTotals{
			Account:      mapping.ToDomainAccount(m),
			TotalDebits:  debits,
			TotalCredits: credits,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line totals: %w", err)
	}
	return out, nil
}
