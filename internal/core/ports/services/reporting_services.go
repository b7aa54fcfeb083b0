package services

import (
	"context"
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
)

// ReportingSvcFacade defines read-only report generators for the presentation layer
type ReportingSvcFacade interface {
	// GenerateLimitReport returns the organization's own credit position and its allocations.
	GenerateLimitReport(ctx context.Context, organizationID string) (*domain.LimitReport, error)

	// GenerateLimitInquiry applies the visibility rule: a pure buyer sees only its allocations.
	GenerateLimitInquiry(ctx context.Context, organizationID string) (*domain.LimitReport, error)

	// GenerateAllLimitsReport returns a limit report for every organization with a credit limit.
	GenerateAllLimitsReport(ctx context.Context) ([]domain.LimitReport, error)

	// GenerateLimitTree returns owner facilities with the sub-allocations drawn from them.
	GenerateLimitTree(ctx context.Context) ([]domain.LimitTreeNode, error)

	// GenerateAccountStatement lists an organization's transactions in [from, to].
	GenerateAccountStatement(ctx context.Context, organizationID string, from, to time.Time) (*domain.AccountStatement, error)
}
