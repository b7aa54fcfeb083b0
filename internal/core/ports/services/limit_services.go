package services

import (
	"context"

	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	"github.com/SscSPs/invoice_finance_app/internal/dto"
	"github.com/shopspring/decimal"
)

// LimitCheckerSvc defines utilization checks and updates on an organization's own facility
type LimitCheckerSvc interface {
	// CheckFacilityLimit is a pure precondition check; it never mutates.
	CheckFacilityLimit(ctx context.Context, organizationID string, facilityType domain.FacilityType, amount decimal.Decimal) domain.Result

	// UpdateFacilityUtilization adds amount without re-checking capacity. Callers that
	// need the guarantee run CheckFacilityLimit first and serialize on the facility.
	UpdateFacilityUtilization(ctx context.Context, organizationID string, facilityType domain.FacilityType, amount decimal.Decimal) domain.Result

	// ReleaseFacilityUtilization subtracts amount, flooring utilization at zero.
	ReleaseFacilityUtilization(ctx context.Context, organizationID string, facilityType domain.FacilityType, amount decimal.Decimal) domain.Result
}

// LimitManagerSvc defines operations that grant credit
type LimitManagerSvc interface {
	CreateCreditLimitWithFacilities(ctx context.Context, req dto.CreateCreditLimitRequest, userID string) domain.Result
	AddFacilityToOrganization(ctx context.Context, organizationID string, req dto.FacilityRequest, userID string) domain.Result
	AllocateBuyerLimit(ctx context.Context, req dto.AllocateBuyerLimitRequest, userID string) domain.Result
}

// LimitReaderSvc defines read operations honouring the visibility rule
type LimitReaderSvc interface {
	GetCreditLimitInfo(ctx context.Context, organizationID string) (*domain.CreditLimitInfo, error)

	// GetVisibleFacilities returns the organization's own facilities plus allocations granted to it.
	GetVisibleFacilities(ctx context.Context, organizationID string) ([]domain.Facility, error)
}

// LimitSvcFacade combines all facility/limit interfaces
type LimitSvcFacade interface {
	LimitCheckerSvc
	LimitManagerSvc
	LimitReaderSvc
}
