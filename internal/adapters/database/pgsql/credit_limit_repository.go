package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/invoice_finance_app/internal/apperrors"
	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/invoice_finance_app/internal/models"
	"github.com/SscSPs/invoice_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxCreditLimitRepository struct {
	BaseRepository
}

// newPgxCreditLimitRepository creates a new repository for credit limits and their facilities.
func newPgxCreditLimitRepository(db DBTX) portsrepo.CreditLimitRepositoryFacade {
	return &PgxCreditLimitRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.CreditLimitRepositoryFacade = (*PgxCreditLimitRepository)(nil)

const creditLimitColumns = `credit_limit_info_id, organization_id, master_limit, last_review_date, next_review_date,
	created_at, created_by, last_updated_at, last_updated_by`

const facilityColumns = `facility_id, credit_limit_info_id, facility_type, total_limit, allocated_limit,
	current_utilization, related_party_id, review_end_date, grace_period_days,
	created_at, created_by, last_updated_at, last_updated_by`

func scanCreditLimit(row pgx.Row) (models.CreditLimit, error) {
	var m models.CreditLimit
	err := row.Scan(
		&m.CreditLimitInfoID,
		&m.OrganizationID,
		&m.MasterLimit,
		&m.LastReviewDate,
		&m.NextReviewDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanFacility(row pgx.Row) (models.Facility, error) {
	var m models.Facility
	err := row.Scan(
		&m.FacilityID,
		&m.CreditLimitInfoID,
		&m.FacilityType,
		&m.TotalLimit,
		&m.AllocatedLimit,
		&m.CurrentUtilization,
		&m.RelatedPartyID,
		&m.ReviewEndDate,
		&m.GracePeriodDays,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxCreditLimitRepository) queryFacilities(ctx context.Context, query string, args ...any) ([]models.Facility, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query facilities: %w", err)
	}
	defer rows.Close()

	var out []models.Facility
	for rows.Next() {
		m, err := scanFacility(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan facility row: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// load reads one credit limit and its facility rows, optionally locking both.
func (r *PgxCreditLimitRepository) load(ctx context.Context, what, where, arg string, lock bool) (*domain.CreditLimitInfo, error) {
	suffix := ""
	if lock {
		suffix = " FOR UPDATE"
	}
	m, err := scanCreditLimit(r.DB.QueryRow(ctx, `SELECT `+creditLimitColumns+` FROM credit_limits WHERE `+where+suffix, arg))
	if err != nil {
		return nil, mapNotFound(err, what)
	}
	facilities, err := r.queryFacilities(ctx,
		`SELECT `+facilityColumns+` FROM facilities WHERE credit_limit_info_id = $1 ORDER BY created_at, facility_id`+suffix,
		m.CreditLimitInfoID)
	if err != nil {
		return nil, err
	}
	info := mapping.ToDomainCreditLimit(m, facilities)
	return &info, nil
}

func (r *PgxCreditLimitRepository) FindCreditLimitByOrganization(ctx context.Context, organizationID string) (*domain.CreditLimitInfo, error) {
	return r.load(ctx, "credit limit for organization "+organizationID, "organization_id = $1", organizationID, false)
}

func (r *PgxCreditLimitRepository) FindCreditLimitByOrganizationForUpdate(ctx context.Context, organizationID string) (*domain.CreditLimitInfo, error) {
	return r.load(ctx, "credit limit for organization "+organizationID, "organization_id = $1", organizationID, true)
}

func (r *PgxCreditLimitRepository) FindCreditLimitByID(ctx context.Context, creditLimitInfoID string) (*domain.CreditLimitInfo, error) {
	return r.load(ctx, "credit limit "+creditLimitInfoID, "credit_limit_info_id = $1", creditLimitInfoID, false)
}

func (r *PgxCreditLimitRepository) ListCreditLimits(ctx context.Context) ([]domain.CreditLimitInfo, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+creditLimitColumns+` FROM credit_limits ORDER BY organization_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query credit limits: %w", err)
	}
	var headers []models.CreditLimit
	for rows.Next() {
		m, err := scanCreditLimit(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan credit limit row: %w", err)
		}
		headers = append(headers, m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating credit limits: %w", err)
	}

	facilities, err := r.queryFacilities(ctx, `SELECT `+facilityColumns+` FROM facilities ORDER BY created_at, facility_id`)
	if err != nil {
		return nil, err
	}
	byLimit := make(map[string][]models.Facility, len(headers))
	for _, f := range facilities {
		byLimit[f.CreditLimitInfoID] = append(byLimit[f.CreditLimitInfoID], f)
	}

	out := make([]domain.CreditLimitInfo, len(headers))
	for i, h := range headers {
		out[i] = mapping.ToDomainCreditLimit(h, byLimit[h.CreditLimitInfoID])
	}
	return out, nil
}

func (r *PgxCreditLimitRepository) ListFacilitiesByRelatedParty(ctx context.Context, partyID string) ([]domain.Facility, error) {
	ms, err := r.queryFacilities(ctx,
		`SELECT `+facilityColumns+` FROM facilities WHERE related_party_id = $1 ORDER BY facility_id`, partyID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainFacilitySlice(ms), nil
}

func (r *PgxCreditLimitRepository) SaveCreditLimit(ctx context.Context, info domain.CreditLimitInfo) error {
	m := mapping.ToModelCreditLimit(info)
	query := `
		INSERT INTO credit_limits (` + creditLimitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.DB.Exec(ctx, query,
		m.CreditLimitInfoID,
		m.OrganizationID,
		m.MasterLimit,
		m.LastReviewDate,
		m.NextReviewDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapInsertError(err, "credit limit for organization "+m.OrganizationID)
	}

	batch := &pgx.Batch{}
	for _, f := range info.Facilities {
		f.CreditLimitInfoID = info.CreditLimitInfoID
		queueFacilityInsert(batch, mapping.ToModelFacility(f))
	}
	return execBatch(ctx, r.DB, batch, "facilities of credit limit "+m.CreditLimitInfoID)
}

const facilityInsert = `
	INSERT INTO facilities (` + facilityColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
`

func facilityArgs(m models.Facility) []any {
	return []any{
		m.FacilityID,
		m.CreditLimitInfoID,
		m.FacilityType,
		m.TotalLimit,
		m.AllocatedLimit,
		m.CurrentUtilization,
		m.RelatedPartyID,
		m.ReviewEndDate,
		m.GracePeriodDays,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

func queueFacilityInsert(b *pgx.Batch, m models.Facility) {
	b.Queue(facilityInsert, facilityArgs(m)...)
}

func (r *PgxCreditLimitRepository) SaveFacility(ctx context.Context, facility domain.Facility) error {
	m := mapping.ToModelFacility(facility)
	if _, err := r.DB.Exec(ctx, facilityInsert, facilityArgs(m)...); err != nil {
		return mapInsertError(err, "facility "+m.FacilityID)
	}
	return nil
}

func (r *PgxCreditLimitRepository) UpdateFacility(ctx context.Context, facility domain.Facility) error {
	m := mapping.ToModelFacility(facility)
	query := `
		UPDATE facilities
		SET total_limit = $2, allocated_limit = $3, current_utilization = $4,
		    review_end_date = $5, grace_period_days = $6, last_updated_at = $7, last_updated_by = $8
		WHERE facility_id = $1;
	`
	ct, err := r.DB.Exec(ctx, query,
		m.FacilityID,
		m.TotalLimit,
		m.AllocatedLimit,
		m.CurrentUtilization,
		m.ReviewEndDate,
		m.GracePeriodDays,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update facility "+m.FacilityID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: facility %s", apperrors.ErrNotFound, m.FacilityID)
	}
	return nil
}
