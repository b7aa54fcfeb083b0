package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/invoice_finance_app/internal/core/ports/services"
)

// Directory reads organizations and users maintained by the surrounding platform.
type Directory struct {
	BaseRepository
}

var _ portssvc.OrganizationDirectory = (*Directory)(nil)

// NewDirectory creates a Directory reading through db, normally the pool.
func NewDirectory(db DBTX) *Directory {
	return &Directory{BaseRepository: BaseRepository{DB: db}}
}

func (d *Directory) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	var org domain.Organization
	err := d.DB.QueryRow(ctx, `
		SELECT organization_id, name, tax_id, is_bank, is_buyer, is_seller
		FROM organizations WHERE organization_id = $1`, organizationID).Scan(
		&org.OrganizationID,
		&org.Name,
		&org.TaxID,
		&org.IsBank,
		&org.IsBuyer,
		&org.IsSeller,
	)
	if err != nil {
		return nil, mapNotFound(err, "organization "+organizationID)
	}
	return &org, nil
}

func (d *Directory) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	var user domain.User
	var role string
	err := d.DB.QueryRow(ctx, `
		SELECT user_id, organization_id, name, role
		FROM users WHERE user_id = $1`, userID).Scan(
		&user.UserID,
		&user.OrganizationID,
		&user.Name,
		&role,
	)
	if err != nil {
		return nil, mapNotFound(err, "user "+userID)
	}
	user.Role = domain.UserRole(role)
	return &user, nil
}

func (d *Directory) listIDs(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := d.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query user ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (d *Directory) ListUserIDsByOrganization(ctx context.Context, organizationID string) ([]string, error) {
	return d.listIDs(ctx, `SELECT user_id FROM users WHERE organization_id = $1 ORDER BY user_id`, organizationID)
}

func (d *Directory) ListBankUserIDs(ctx context.Context) ([]string, error) {
	return d.listIDs(ctx, `
		SELECT u.user_id FROM users u
		JOIN organizations o ON o.organization_id = u.organization_id
		WHERE o.is_bank ORDER BY u.user_id`)
}
