package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/apperrors"
	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/invoice_finance_app/internal/models"
	"github.com/SscSPs/invoice_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entries and their lines.
func newPgxJournalRepository(db DBTX) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const journalColumns = `journal_entry_id, reference, entry_date, description, status,
	organization_id, invoice_id, transaction_id, posted_date, posted_by,
	created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `line_id, journal_entry_id, line_number, account_id, debit, credit, description, organization_id`

func scanJournalEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.JournalEntryID,
		&m.Reference,
		&m.EntryDate,
		&m.Description,
		&m.Status,
		&m.OrganizationID,
		&m.InvoiceID,
		&m.TransactionID,
		&m.PostedDate,
		&m.PostedBy,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// linesFor loads the lines of the given entries keyed by entry ID.
func (r *PgxJournalRepository) linesFor(ctx context.Context, entryIDs []string) (map[string][]models.JournalEntryLine, error) {
	out := make(map[string][]models.JournalEntryLine, len(entryIDs))
	if len(entryIDs) == 0 {
		return out, nil
	}
	query := `SELECT ` + lineColumns + ` FROM journal_entry_lines
		WHERE journal_entry_id = ANY($1) ORDER BY journal_entry_id, line_number`
	rows, err := r.DB.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l models.JournalEntryLine
		if err := rows.Scan(
			&l.LineID,
			&l.JournalEntryID,
			&l.LineNumber,
			&l.AccountID,
			&l.Debit,
			&l.Credit,
			&l.Description,
			&l.OrganizationID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal line: %w", err)
		}
		out[l.JournalEntryID] = append(out[l.JournalEntryID], l)
	}
	return out, rows.Err()
}

func (r *PgxJournalRepository) findOne(ctx context.Context, entryID string, lock bool) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalColumns + ` FROM journal_entries WHERE journal_entry_id = $1`
	if lock {
		query += ` FOR UPDATE`
	}
	m, err := scanJournalEntry(r.DB.QueryRow(ctx, query, entryID))
	if err != nil {
		return nil, mapNotFound(err, "journal entry "+entryID)
	}
	lines, err := r.linesFor(ctx, []string{entryID})
	if err != nil {
		return nil, err
	}
	entry := mapping.ToDomainJournalEntry(m, lines[entryID])
	return &entry, nil
}

func (r *PgxJournalRepository) FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	return r.findOne(ctx, entryID, false)
}

func (r *PgxJournalRepository) FindJournalEntryByIDForUpdate(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	return r.findOne(ctx, entryID, true)
}

func (r *PgxJournalRepository) list(ctx context.Context, where, order string, arg any) ([]domain.JournalEntry, error) {
	query := `SELECT ` + journalColumns + ` FROM journal_entries WHERE ` + where + ` ORDER BY ` + order
	rows, err := r.DB.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	var headers []models.JournalEntry
	for rows.Next() {
		m, err := scanJournalEntry(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		headers = append(headers, m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entries: %w", err)
	}

	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.JournalEntryID
	}
	lines, err := r.linesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.JournalEntry, len(headers))
	for i, h := range headers {
		entries[i] = mapping.ToDomainJournalEntry(h, lines[h.JournalEntryID])
	}
	return entries, nil
}

func (r *PgxJournalRepository) ListJournalEntriesByOrganization(ctx context.Context, organizationID string) ([]domain.JournalEntry, error) {
	return r.list(ctx, "organization_id = $1", "entry_date DESC", organizationID)
}

func (r *PgxJournalRepository) ListJournalEntriesByStatus(ctx context.Context, status domain.JournalStatus) ([]domain.JournalEntry, error) {
	return r.list(ctx, "status = $1", "entry_date ASC", string(status))
}

// SaveJournalEntry inserts the header and queues every line in one batch.
func (r *PgxJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(entry)
	headerQuery := `
		INSERT INTO journal_entries (` + journalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.DB.Exec(ctx, headerQuery,
		m.JournalEntryID,
		m.Reference,
		m.EntryDate,
		m.Description,
		m.Status,
		m.OrganizationID,
		m.InvoiceID,
		m.TransactionID,
		m.PostedDate,
		m.PostedBy,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapInsertError(err, "journal entry "+m.JournalEntryID)
	}

	lineQuery := `
		INSERT INTO journal_entry_lines (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	batch := &pgx.Batch{}
	for _, l := range mapping.ToModelJournalLines(entry) {
		batch.Queue(lineQuery,
			l.LineID,
			l.JournalEntryID,
			l.LineNumber,
			l.AccountID,
			l.Debit,
			l.Credit,
			l.Description,
			l.OrganizationID,
		)
	}
	return execBatch(ctx, r.DB, batch, "lines of journal entry "+m.JournalEntryID)
}

func (r *PgxJournalRepository) MarkJournalEntryPosted(ctx context.Context, entryID string, postedBy string, postedAt time.Time) error {
	query := `
		UPDATE journal_entries
		SET status = $2, posted_date = $3, posted_by = $4, last_updated_at = $3, last_updated_by = $4
		WHERE journal_entry_id = $1 AND status <> $2;
	`
	ct, err := r.DB.Exec(ctx, query, entryID, string(domain.JournalPosted), postedAt, postedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark journal entry "+entryID+" posted", err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal entry %s is missing or already posted", apperrors.ErrConflict, entryID)
	}
	return nil
}
