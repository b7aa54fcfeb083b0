package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/apperrors"
	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoice_finance_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_finance_app/internal/dto"
	"github.com/SscSPs/invoice_finance_app/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

// limitService implements the facility and limit engine.
type limitService struct {
	BaseService
	tm        portsrepo.TransactionManager
	directory portssvc.OrganizationDirectory
	recorder  portssvc.TransactionRecorderSvc
}

// LimitServiceOption is a functional option for configuring the limit service
type LimitServiceOption func(*limitService)

// WithLimitMetrics sets the metrics sink.
func WithLimitMetrics(m *metrics.Metrics) LimitServiceOption {
	return func(s *limitService) {
		s.Metrics = m
	}
}

// WithLimitClock overrides the clock used for expiry checks.
func WithLimitClock(clock func() time.Time) LimitServiceOption {
	return func(s *limitService) {
		s.Clock = clock
	}
}

// NewLimitService creates a new limit service.
func NewLimitService(tm portsrepo.TransactionManager, directory portssvc.OrganizationDirectory, recorder portssvc.TransactionRecorderSvc, options ...LimitServiceOption) portssvc.LimitSvcFacade {
	svc := &limitService{
		tm:        tm,
		directory: directory,
		recorder:  recorder,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure limitService implements the portssvc.LimitSvcFacade interface
var _ portssvc.LimitSvcFacade = (*limitService)(nil)

// drawFacility checks and then draws amount from the organization's own facility. It
// must run inside a unit of work; the credit limit stays locked until that unit ends.
func drawFacility(ctx context.Context, repos portsrepo.RepositoryProvider, organizationID string, facilityType domain.FacilityType, amount decimal.Decimal, now time.Time) (*domain.Facility, error) {
	info, err := repos.CreditLimitRepo.FindCreditLimitByOrganizationForUpdate(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	if err := info.CheckCapacity(facilityType, amount, now); err != nil {
		return nil, err
	}
	facility, err := info.Draw(facilityType, amount)
	if err != nil {
		return nil, err
	}
	facility.LastUpdatedAt = now
	if err := repos.CreditLimitRepo.UpdateFacility(ctx, *facility); err != nil {
		return nil, err
	}
	return facility, nil
}

// releaseFacility returns amount to the organization's own facility inside a unit of work.
func releaseFacility(ctx context.Context, repos portsrepo.RepositoryProvider, organizationID string, facilityType domain.FacilityType, amount decimal.Decimal, now time.Time) (*domain.Facility, error) {
	info, err := repos.CreditLimitRepo.FindCreditLimitByOrganizationForUpdate(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	facility, err := info.Release(facilityType, amount)
	if err != nil {
		return nil, err
	}
	facility.LastUpdatedAt = now
	if err := repos.CreditLimitRepo.UpdateFacility(ctx, *facility); err != nil {
		return nil, err
	}
	return facility, nil
}

// fail logs and converts err into a failed result, counting capacity rejections.
func (s *limitService) fail(ctx context.Context, err error, msg string, facilityType domain.FacilityType, keyvals ...any) domain.Result {
	if errors.Is(err, apperrors.ErrCapacity) {
		s.Metrics.CapacityRejected(string(facilityType))
	}
	s.LogWarn(ctx, err, msg, keyvals...)
	return domain.Failed(err)
}

func (s *limitService) CheckFacilityLimit(ctx context.Context, organizationID string, facilityType domain.FacilityType, amount decimal.Decimal) domain.Result {
	var facilityID string
	err := s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		info, err := repos.CreditLimitRepo.FindCreditLimitByOrganization(ctx, organizationID)
		if err != nil {
			return err
		}
		if err := info.CheckCapacity(facilityType, amount, s.Now()); err != nil {
			return err
		}
		idx, _ := info.OwnFacility(facilityType)
		facilityID = info.Facilities[idx].FacilityID
		return nil
	})
	if err != nil {
		return s.fail(ctx, err, "Facility limit check failed", facilityType,
			slog.String("organization_id", organizationID),
			slog.String("facility_type", string(facilityType)),
			slog.String("amount", amount.String()))
	}
	return domain.Succeeded("Facility has sufficient capacity", facilityID)
}

// UpdateFacilityUtilization adds amount to the facility without checking capacity.
func (s *limitService) UpdateFacilityUtilization(ctx context.Context, organizationID string, facilityType domain.FacilityType, amount decimal.Decimal) domain.Result {
	if !amount.IsPositive() {
		return domain.Failed(fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation))
	}
	var facility *domain.Facility
	err := s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		info, err := repos.CreditLimitRepo.FindCreditLimitByOrganizationForUpdate(ctx, organizationID)
		if err != nil {
			return err
		}
		facility, err = info.Draw(facilityType, amount)
		if err != nil {
			return err
		}
		facility.LastUpdatedAt = s.Now()
		return repos.CreditLimitRepo.UpdateFacility(ctx, *facility)
	})
	if err != nil {
		return s.fail(ctx, err, "Failed to update facility utilization", facilityType,
			slog.String("organization_id", organizationID))
	}
	s.LogInfo(ctx, "Facility utilization updated",
		slog.String("facility_id", facility.FacilityID),
		slog.String("utilization", facility.CurrentUtilization.String()))
	return domain.Succeeded(fmt.Sprintf("Utilization is now %s", facility.CurrentUtilization.StringFixed(2)), facility.FacilityID)
}

func (s *limitService) ReleaseFacilityUtilization(ctx context.Context, organizationID string, facilityType domain.FacilityType, amount decimal.Decimal) domain.Result {
	if !amount.IsPositive() {
		return domain.Failed(fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation))
	}
	var facility *domain.Facility
	err := s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		facility, err = releaseFacility(ctx, repos, organizationID, facilityType, amount, s.Now())
		return err
	})
	if err != nil {
		return s.fail(ctx, err, "Failed to release facility utilization", facilityType,
			slog.String("organization_id", organizationID))
	}
	return domain.Succeeded(fmt.Sprintf("Utilization is now %s", facility.CurrentUtilization.StringFixed(2)), facility.FacilityID)
}

func newFacility(id, creditLimitInfoID string, req dto.FacilityRequest, by string, now time.Time) domain.Facility {
	return domain.Facility{
		FacilityID:         id,
		CreditLimitInfoID:  creditLimitInfoID,
		Type:               req.Type,
		TotalLimit:         req.TotalLimit,
		AllocatedLimit:     decimal.Zero,
		CurrentUtilization: decimal.Zero,
		ReviewEndDate:      req.ReviewEndDate,
		GracePeriodDays:    req.GracePeriodDays,
		AuditFields:        domain.NewAuditFields(by, now),
	}
}

func validateFacilityRequest(req dto.FacilityRequest) error {
	if !req.Type.IsValid() {
		return fmt.Errorf("%w: unknown facility type %q", apperrors.ErrValidation, req.Type)
	}
	if !req.TotalLimit.IsPositive() {
		return fmt.Errorf("%w: %s facility limit must be positive", apperrors.ErrValidation, req.Type)
	}
	if req.GracePeriodDays < 0 {
		return fmt.Errorf("%w: grace period days must not be negative", apperrors.ErrValidation)
	}
	return nil
}

func (s *limitService) requireOrganization(ctx context.Context, organizationID string) (*domain.Organization, error) {
	org, err := s.directory.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("organization %s: %w", organizationID, err)
	}
	return org, nil
}

// limitAdjustment builds the audit event for a change of granted credit.
func limitAdjustment(organizationID string, facilityType domain.FacilityType, amount decimal.Decimal, description string) domain.LimitAdjustmentEvent {
	return domain.LimitAdjustmentEvent{EventHeader: domain.EventHeader{
		OrganizationID: organizationID,
		FacilityType:   facilityType,
		Amount:         amount,
		Description:    description,
		IsPaid:         true,
	}}
}

func (s *limitService) CreateCreditLimitWithFacilities(ctx context.Context, req dto.CreateCreditLimitRequest, userID string) domain.Result {
	logAttrs := []any{slog.String("organization_id", req.OrganizationID), slog.String("user_id", userID)}

	if !req.MasterLimit.IsPositive() {
		return domain.Failed(fmt.Errorf("%w: master limit must be positive", apperrors.ErrValidation))
	}
	sum := decimal.Zero
	seen := make(map[domain.FacilityType]struct{}, len(req.Facilities))
	for _, f := range req.Facilities {
		if err := validateFacilityRequest(f); err != nil {
			return domain.Failed(err)
		}
		if _, dup := seen[f.Type]; dup {
			return domain.Failed(fmt.Errorf("%w: facility type %s listed twice", apperrors.ErrValidation, f.Type))
		}
		seen[f.Type] = struct{}{}
		sum = sum.Add(f.TotalLimit)
	}
	if sum.GreaterThan(req.MasterLimit) {
		return domain.Failed(fmt.Errorf("%w: facility limits %s exceed master limit %s",
			apperrors.ErrValidation, sum.StringFixed(2), req.MasterLimit.StringFixed(2)))
	}
	if _, err := s.requireOrganization(ctx, req.OrganizationID); err != nil {
		return s.fail(ctx, err, "Cannot create credit limit", "", logAttrs...)
	}

	now := s.Now()
	nextReview := req.NextReviewDate
	if nextReview.IsZero() {
		nextReview = now.AddDate(1, 0, 0)
	}
	info := domain.CreditLimitInfo{
		CreditLimitInfoID: s.NewID(),
		OrganizationID:    req.OrganizationID,
		MasterLimit:       req.MasterLimit,
		LastReviewDate:    now,
		NextReviewDate:    nextReview,
		AuditFields:       domain.NewAuditFields(userID, now),
	}
	for _, f := range req.Facilities {
		info.Facilities = append(info.Facilities, newFacility(s.NewID(), info.CreditLimitInfoID, f, userID, now))
	}

	var txn *domain.Transaction
	event := limitAdjustment(req.OrganizationID, "", req.MasterLimit, "Credit limit created")
	err := s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		_, err := repos.CreditLimitRepo.FindCreditLimitByOrganization(ctx, req.OrganizationID)
		switch {
		case err == nil:
			return fmt.Errorf("%w: organization %s already has a credit limit", apperrors.ErrDuplicate, req.OrganizationID)
		case !errors.Is(err, apperrors.ErrNotFound):
			return err
		}
		if err := repos.CreditLimitRepo.SaveCreditLimit(ctx, info); err != nil {
			return err
		}
		txn, err = s.recorder.StageTransaction(ctx, repos, event, userID)
		return err
	})
	if err != nil {
		return s.fail(ctx, err, "Failed to create credit limit", "", logAttrs...)
	}
	s.recorder.PostTransactionJournal(ctx, *txn, event)

	s.LogInfo(ctx, "Credit limit created", append(logAttrs,
		slog.String("credit_limit_info_id", info.CreditLimitInfoID),
		slog.Int("facilities", len(info.Facilities)))...)
	return domain.Succeeded("Credit limit with facilities created successfully", info.CreditLimitInfoID)
}

func (s *limitService) AddFacilityToOrganization(ctx context.Context, organizationID string, req dto.FacilityRequest, userID string) domain.Result {
	logAttrs := []any{slog.String("organization_id", organizationID), slog.String("facility_type", string(req.Type))}

	if err := validateFacilityRequest(req); err != nil {
		return domain.Failed(err)
	}
	if _, err := s.requireOrganization(ctx, organizationID); err != nil {
		return s.fail(ctx, err, "Cannot add facility", req.Type, logAttrs...)
	}

	now := s.Now()
	var (
		facility domain.Facility
		txn      *domain.Transaction
	)
	event := limitAdjustment(organizationID, req.Type, req.TotalLimit, fmt.Sprintf("%s facility added", req.Type))
	err := s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		info, err := repos.CreditLimitRepo.FindCreditLimitByOrganizationForUpdate(ctx, organizationID)
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			info = &domain.CreditLimitInfo{
				CreditLimitInfoID: s.NewID(),
				OrganizationID:    organizationID,
				MasterLimit:       req.TotalLimit,
				LastReviewDate:    now,
				NextReviewDate:    now.AddDate(1, 0, 0),
				AuditFields:       domain.NewAuditFields(userID, now),
			}
			if err := repos.CreditLimitRepo.SaveCreditLimit(ctx, *info); err != nil {
				return err
			}
		case err != nil:
			return err
		}

		if _, exists := info.OwnFacility(req.Type); exists {
			return fmt.Errorf("%w: organization already has a %s facility", apperrors.ErrDuplicate, req.Type)
		}
		if available := info.AvailableMasterLimit(); req.TotalLimit.GreaterThan(available) {
			return apperrors.NewCapacityError("facility limit exceeds available master limit", req.TotalLimit, available)
		}

		facility = newFacility(s.NewID(), info.CreditLimitInfoID, req, userID, now)
		if err := repos.CreditLimitRepo.SaveFacility(ctx, facility); err != nil {
			return err
		}
		txn, err = s.recorder.StageTransaction(ctx, repos, event, userID)
		return err
	})
	if err != nil {
		return s.fail(ctx, err, "Failed to add facility", req.Type, logAttrs...)
	}
	s.recorder.PostTransactionJournal(ctx, *txn, event)

	s.LogInfo(ctx, "Facility added", append(logAttrs, slog.String("facility_id", facility.FacilityID))...)
	return domain.Succeeded(fmt.Sprintf("Facility added successfully: %s with limit %s", req.Type, req.TotalLimit.StringFixed(2)), facility.FacilityID)
}

// AllocateBuyerLimit shares part of a seller's own facility with a buyer. The
// sub-allocation draws on the seller's capacity and adds none of its own.
func (s *limitService) AllocateBuyerLimit(ctx context.Context, req dto.AllocateBuyerLimitRequest, userID string) domain.Result {
	logAttrs := []any{
		slog.String("seller_id", req.SellerID),
		slog.String("buyer_id", req.BuyerID),
		slog.String("facility_type", string(req.FacilityType)),
		slog.String("amount", req.Amount.String()),
	}

	if !req.Amount.IsPositive() {
		return domain.Failed(fmt.Errorf("%w: allocation amount must be positive", apperrors.ErrValidation))
	}
	if req.SellerID == req.BuyerID {
		return domain.Failed(fmt.Errorf("%w: seller and buyer must differ", apperrors.ErrValidation))
	}
	seller, err := s.requireOrganization(ctx, req.SellerID)
	if err != nil {
		return s.fail(ctx, err, "Seller lookup failed", req.FacilityType, logAttrs...)
	}
	buyer, err := s.requireOrganization(ctx, req.BuyerID)
	if err != nil {
		return s.fail(ctx, err, "Buyer lookup failed", req.FacilityType, logAttrs...)
	}
	if !seller.IsSeller {
		return domain.Failed(fmt.Errorf("%w: %s is not a seller", apperrors.ErrValidation, seller.Name))
	}
	if !buyer.IsBuyer {
		return domain.Failed(fmt.Errorf("%w: %s is not a buyer", apperrors.ErrValidation, buyer.Name))
	}

	now := s.Now()
	var (
		allocation domain.Facility
		message    string
		txn        *domain.Transaction
	)
	event := limitAdjustment(req.SellerID, req.FacilityType, req.Amount,
		fmt.Sprintf("Allocated %s of %s to %s", req.Amount.StringFixed(2), req.FacilityType, buyer.Name))
	err = s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		info, err := repos.CreditLimitRepo.FindCreditLimitByOrganizationForUpdate(ctx, req.SellerID)
		if err != nil {
			return fmt.Errorf("seller has no credit facilities: %w", err)
		}
		idx, ok := info.OwnFacility(req.FacilityType)
		if !ok {
			return fmt.Errorf("%w: seller has no %s facility", apperrors.ErrNotFound, req.FacilityType)
		}
		parent := info.Facilities[idx]
		if parent.IsExpiredAt(now) {
			return apperrors.NewCapacityError("seller facility has expired", req.Amount, decimal.Zero)
		}
		if available := parent.AvailableLimit(); available.LessThan(req.Amount) {
			return apperrors.NewCapacityError("seller does not have enough available limit", req.Amount, available)
		}

		if subIdx, exists := info.SubAllocation(req.FacilityType, req.BuyerID); exists {
			allocation = info.Facilities[subIdx]
			allocation.AllocatedLimit = allocation.AllocatedLimit.Add(req.Amount)
			allocation.TotalLimit = allocation.TotalLimit.Add(req.Amount)
			allocation.LastUpdatedAt = now
			allocation.LastUpdatedBy = userID
			if err := repos.CreditLimitRepo.UpdateFacility(ctx, allocation); err != nil {
				return err
			}
			message = fmt.Sprintf("Added %s to buyer's existing allocation. New allocation: %s",
				req.Amount.StringFixed(2), allocation.AllocatedLimit.StringFixed(2))
		} else {
			buyerID := req.BuyerID
			allocation = domain.Facility{
				FacilityID:         s.NewID(),
				CreditLimitInfoID:  info.CreditLimitInfoID,
				Type:               req.FacilityType,
				TotalLimit:         req.Amount,
				AllocatedLimit:     req.Amount,
				CurrentUtilization: decimal.Zero,
				RelatedPartyID:     &buyerID,
				ReviewEndDate:      parent.ReviewEndDate,
				GracePeriodDays:    parent.GracePeriodDays,
				AuditFields:        domain.NewAuditFields(userID, now),
			}
			if err := repos.CreditLimitRepo.SaveFacility(ctx, allocation); err != nil {
				return err
			}
			message = fmt.Sprintf("Allocated %s limit from %s to %s for %s",
				req.Amount.StringFixed(2), seller.Name, buyer.Name, req.FacilityType)
		}

		txn, err = s.recorder.StageTransaction(ctx, repos, event, userID)
		return err
	})
	if err != nil {
		return s.fail(ctx, err, "Buyer limit allocation failed", req.FacilityType, logAttrs...)
	}
	s.recorder.PostTransactionJournal(ctx, *txn, event)

	s.LogInfo(ctx, "Buyer limit allocated", append(logAttrs, slog.String("facility_id", allocation.FacilityID))...)
	return domain.Succeeded(message, allocation.FacilityID)
}

func (s *limitService) GetCreditLimitInfo(ctx context.Context, organizationID string) (*domain.CreditLimitInfo, error) {
	var info *domain.CreditLimitInfo
	err := s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		info, err = repos.CreditLimitRepo.FindCreditLimitByOrganization(ctx, organizationID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

// GetVisibleFacilities returns the facilities on the organization's own credit limit
// and the sub-allocations granted to it. Nothing else of a grantor is exposed.
func (s *limitService) GetVisibleFacilities(ctx context.Context, organizationID string) ([]domain.Facility, error) {
	var visible []domain.Facility
	err := s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		visible, err = visibleFacilities(ctx, repos, organizationID)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to load visible facilities", slog.String("organization_id", organizationID))
		return nil, err
	}
	return visible, nil
}

func visibleFacilities(ctx context.Context, repos portsrepo.RepositoryProvider, organizationID string) ([]domain.Facility, error) {
	var visible []domain.Facility
	info, err := repos.CreditLimitRepo.FindCreditLimitByOrganization(ctx, organizationID)
	switch {
	case err == nil:
		visible = append(visible, info.Facilities...)
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, err
	}
	granted, err := repos.CreditLimitRepo.ListFacilitiesByRelatedParty(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	return append(visible, granted...), nil
}
