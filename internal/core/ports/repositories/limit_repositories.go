package repositories

import (
	"context"

	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
)

// CreditLimitReader defines read operations for credit limits and facilities
type CreditLimitReader interface {
	// FindCreditLimitByOrganization retrieves an organization's credit limit with all facility rows.
	FindCreditLimitByOrganization(ctx context.Context, organizationID string) (*domain.CreditLimitInfo, error)

	// FindCreditLimitByOrganizationForUpdate is FindCreditLimitByOrganization with the
	// credit limit and its facilities locked for the rest of the unit of work.
	FindCreditLimitByOrganizationForUpdate(ctx context.Context, organizationID string) (*domain.CreditLimitInfo, error)

	// FindCreditLimitByID retrieves a credit limit by its identifier.
	FindCreditLimitByID(ctx context.Context, creditLimitInfoID string) (*domain.CreditLimitInfo, error)

	// ListCreditLimits retrieves every credit limit with its facilities.
	ListCreditLimits(ctx context.Context) ([]domain.CreditLimitInfo, error)

	// ListFacilitiesByRelatedParty retrieves sub-allocations granted to partyID.
	ListFacilitiesByRelatedParty(ctx context.Context, partyID string) ([]domain.Facility, error)
}

// CreditLimitWriter defines write operations for credit limits and facilities
type CreditLimitWriter interface {
	// SaveCreditLimit persists a new credit limit together with its facilities.
	SaveCreditLimit(ctx context.Context, info domain.CreditLimitInfo) error

	// SaveFacility persists a new facility under an existing credit limit.
	SaveFacility(ctx context.Context, facility domain.Facility) error

	// UpdateFacility persists limits and utilization of an existing facility.
	UpdateFacility(ctx context.Context, facility domain.Facility) error
}

// CreditLimitRepositoryFacade combines all credit-limit repository interfaces
type CreditLimitRepositoryFacade interface {
	CreditLimitReader
	CreditLimitWriter
}
