package services

import (
	"context"

	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
)

// OrganizationDirectory resolves organizations and users owned by the surrounding system
type OrganizationDirectory interface {
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUserIDsByOrganization(ctx context.Context, organizationID string) ([]string, error)
	ListBankUserIDs(ctx context.Context) ([]string, error)
}

// Notifier delivers fire-and-forget messages keyed by user ID
type Notifier interface {
	Notify(ctx context.Context, notification domain.Notification) error
}
