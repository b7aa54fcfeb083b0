package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/apperrors"
	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoice_finance_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingSvcFacade interface
type reportingService struct {
	BaseService
	tm        portsrepo.TransactionManager
	directory portssvc.OrganizationDirectory
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingClock overrides the clock used to evaluate facility status.
func WithReportingClock(clock func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.Clock = clock
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(tm portsrepo.TransactionManager, directory portssvc.OrganizationDirectory, options ...ReportingServiceOption) portssvc.ReportingSvcFacade {
	svc := &reportingService{
		tm:        tm,
		directory: directory,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func facilityLine(f domain.Facility, now time.Time) domain.FacilityReportLine {
	return domain.FacilityReportLine{
		FacilityID:            f.FacilityID,
		Type:                  f.Type,
		TotalLimit:            f.TotalLimit,
		AllocatedLimit:        f.AllocatedLimit,
		CurrentUtilization:    f.CurrentUtilization,
		AvailableLimit:        f.AvailableLimit(),
		UtilizationPercentage: f.UtilizationPercentage(),
		Status:                f.StatusAt(now),
		ReviewEndDate:         f.ReviewEndDate,
		GraceDaysRemaining:    f.GraceDaysRemainingAt(now),
		InExcess:              f.InExcessAt(now),
		AllocatedTo:           f.RelatedPartyID,
	}
}

func (s *reportingService) organizationName(ctx context.Context, organizationID string) string {
	org, err := s.directory.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		s.LogDebug(ctx, "Organization name unavailable", slog.String("organization_id", organizationID))
		return ""
	}
	return org.Name
}

// ownReport fills the master figures and own facilities of info into report.
func ownReport(report *domain.LimitReport, info *domain.CreditLimitInfo, now time.Time) {
	master := info.MasterLimit
	total := info.TotalUtilization()
	pct := info.UtilizationPercentage()
	available := info.AvailableMasterLimit()
	report.MasterLimit = &master
	report.TotalUtilization = &total
	report.UtilizationPercentage = &pct
	report.AvailableMasterLimit = &available
	for _, f := range info.Facilities {
		report.Facilities = append(report.Facilities, facilityLine(f, now))
	}
}

// grantedLines returns the allocations granted to organizationID, tagged with the grantor.
func grantedLines(ctx context.Context, repos portsrepo.RepositoryProvider, organizationID string, now time.Time) ([]domain.FacilityReportLine, error) {
	granted, err := repos.CreditLimitRepo.ListFacilitiesByRelatedParty(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	lines := make([]domain.FacilityReportLine, 0, len(granted))
	for _, f := range granted {
		line := facilityLine(f, now)
		grantor, err := repos.CreditLimitRepo.FindCreditLimitByID(ctx, f.CreditLimitInfoID)
		if err != nil {
			return nil, err
		}
		grantorID := grantor.OrganizationID
		line.GrantedBy = &grantorID
		line.AllocatedTo = nil
		lines = append(lines, line)
	}
	return lines, nil
}

// activeFundings lists funding transactions whose invoice has not been fully paid.
func activeFundings(ctx context.Context, repos portsrepo.RepositoryProvider, organizationID string) ([]domain.Transaction, error) {
	txns, err := repos.TransactionRepo.ListTransactionsByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	var active []domain.Transaction
	for _, t := range txns {
		if t.Type != domain.TxnInvoiceFunding || t.InvoiceID == nil {
			continue
		}
		inv, err := repos.InvoiceRepo.FindInvoiceByID(ctx, *t.InvoiceID)
		if err != nil {
			return nil, err
		}
		if inv.Status != domain.InvoiceFullyPaid {
			active = append(active, t)
		}
	}
	return active, nil
}

func (s *reportingService) buildReport(ctx context.Context, repos portsrepo.RepositoryProvider, organizationID string, requireOwn bool) (*domain.LimitReport, error) {
	now := s.Now()
	report := &domain.LimitReport{
		OrganizationID:   organizationID,
		OrganizationName: s.organizationName(ctx, organizationID),
		GeneratedAt:      now,
		Facilities:       []domain.FacilityReportLine{},
	}

	info, err := repos.CreditLimitRepo.FindCreditLimitByOrganization(ctx, organizationID)
	switch {
	case err == nil:
		ownReport(report, info, now)
	case errors.Is(err, apperrors.ErrNotFound) && !requireOwn:
	default:
		return nil, err
	}

	granted, err := grantedLines(ctx, repos, organizationID, now)
	if err != nil {
		return nil, err
	}
	report.Facilities = append(report.Facilities, granted...)

	if info != nil {
		report.ActiveTransactions, err = activeFundings(ctx, repos, organizationID)
		if err != nil {
			return nil, err
		}
	}
	return report, nil
}

// GenerateLimitReport requires the organization to hold a credit limit of its own.
func (s *reportingService) GenerateLimitReport(ctx context.Context, organizationID string) (*domain.LimitReport, error) {
	var report *domain.LimitReport
	err := s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		report, err = s.buildReport(ctx, repos, organizationID, true)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to generate limit report", slog.String("organization_id", organizationID))
		return nil, err
	}
	return report, nil
}

func (s *reportingService) GenerateLimitInquiry(ctx context.Context, organizationID string) (*domain.LimitReport, error) {
	if _, err := s.directory.FindOrganizationByID(ctx, organizationID); err != nil {
		return nil, fmt.Errorf("organization %s: %w", organizationID, err)
	}
	var report *domain.LimitReport
	err := s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		report, err = s.buildReport(ctx, repos, organizationID, false)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to generate limit inquiry", slog.String("organization_id", organizationID))
		return nil, err
	}
	return report, nil
}

func (s *reportingService) GenerateAllLimitsReport(ctx context.Context) ([]domain.LimitReport, error) {
	var reports []domain.LimitReport
	err := s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		infos, err := repos.CreditLimitRepo.ListCreditLimits(ctx)
		if err != nil {
			return err
		}
		reports = make([]domain.LimitReport, 0, len(infos))
		for _, info := range infos {
			report, err := s.buildReport(ctx, repos, info.OrganizationID, true)
			if err != nil {
				return err
			}
			reports = append(reports, *report)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to generate limits report")
		return nil, err
	}
	return reports, nil
}

func (s *reportingService) GenerateLimitTree(ctx context.Context) ([]domain.LimitTreeNode, error) {
	now := s.Now()
	var tree []domain.LimitTreeNode
	err := s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		infos, err := repos.CreditLimitRepo.ListCreditLimits(ctx)
		if err != nil {
			return err
		}
		for _, info := range infos {
			name := s.organizationName(ctx, info.OrganizationID)
			for _, f := range info.Facilities {
				if f.IsSubAllocation() {
					continue
				}
				node := domain.LimitTreeNode{
					OrganizationID:   info.OrganizationID,
					OrganizationName: name,
					MasterLimit:      info.MasterLimit,
					Facility:         facilityLine(f, now),
					SubAllocations:   []domain.FacilityReportLine{},
				}
				for _, sub := range info.Facilities {
					if sub.IsSubAllocation() && sub.Type == f.Type {
						node.SubAllocations = append(node.SubAllocations, facilityLine(sub, now))
					}
				}
				tree = append(tree, node)
			}
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to generate limit tree")
		return nil, err
	}
	return tree, nil
}

// statementEffect is the signed effect of a transaction on the customer's statement
// balance: funding and fees draw it down, payments restore it.
func statementEffect(t domain.Transaction) decimal.Decimal {
	switch t.Type {
	case domain.TxnInvoiceFunding, domain.TxnFeeCharge:
		return t.Amount.Neg()
	case domain.TxnPayment:
		return t.Amount
	default:
		return decimal.Zero
	}
}

func (s *reportingService) GenerateAccountStatement(ctx context.Context, organizationID string, from, to time.Time) (*domain.AccountStatement, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: statement end date is before start date", apperrors.ErrValidation)
	}

	var txns []domain.Transaction
	err := s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		txns, err = repos.TransactionRepo.ListTransactionsByOrganization(ctx, organizationID)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to load statement transactions", slog.String("organization_id", organizationID))
		return nil, err
	}
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].TransactionDate.Before(txns[j].TransactionDate)
	})

	now := s.Now()
	stmt := &domain.AccountStatement{
		StatementNumber: fmt.Sprintf("STMT-%s-%s", now.Format("200601"), organizationID),
		OrganizationID:  organizationID,
		StartDate:       from,
		EndDate:         to,
		OpeningBalance:  decimal.Zero,
		Lines:           []domain.StatementLine{},
		GeneratedAt:     now,
	}
	balance := decimal.Zero
	for _, t := range txns {
		if t.TransactionDate.Before(from) {
			balance = balance.Add(statementEffect(t))
			continue
		}
		if t.TransactionDate.After(to) {
			continue
		}
		if len(stmt.Lines) == 0 {
			stmt.OpeningBalance = balance
		}
		effect := statementEffect(t)
		balance = balance.Add(effect)
		stmt.Lines = append(stmt.Lines, domain.StatementLine{
			TransactionID:   t.TransactionID,
			Type:            t.Type,
			Description:     t.Description,
			TransactionDate: t.TransactionDate,
			Amount:          effect,
			Balance:         balance,
		})
	}
	if len(stmt.Lines) == 0 {
		stmt.OpeningBalance = balance
	}
	stmt.ClosingBalance = balance
	return stmt, nil
}
