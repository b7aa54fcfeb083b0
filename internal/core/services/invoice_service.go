package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/apperrors"
	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoice_finance_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_finance_app/internal/dto"
	"github.com/SscSPs/invoice_finance_app/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

const defaultCurrency = "USD"

// invoiceService drives the invoice state machine.
type invoiceService struct {
	BaseService
	tm        portsrepo.TransactionManager
	directory portssvc.OrganizationDirectory
	recorder  portssvc.TransactionRecorderSvc
	notifier  portssvc.Notifier
}

// InvoiceServiceOption is a functional option for configuring the invoice service
type InvoiceServiceOption func(*invoiceService)

// WithInvoiceMetrics sets the metrics sink.
func WithInvoiceMetrics(m *metrics.Metrics) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.Metrics = m
	}
}

// WithInvoiceClock overrides the clock used for transition timestamps.
func WithInvoiceClock(clock func() time.Time) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.Clock = clock
	}
}

// WithNotifier sets the sink for party notifications.
func WithNotifier(n portssvc.Notifier) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.notifier = n
	}
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(tm portsrepo.TransactionManager, directory portssvc.OrganizationDirectory, recorder portssvc.TransactionRecorderSvc, options ...InvoiceServiceOption) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{
		tm:        tm,
		directory: directory,
		recorder:  recorder,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure invoiceService implements the portssvc.InvoiceSvcFacade interface
var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// invoiceStep mutates a locked invoice and optionally returns the event to record
// with it. Returning an error discards the whole unit of work.
type invoiceStep func(ctx context.Context, repos portsrepo.RepositoryProvider, inv *domain.Invoice, now time.Time) (domain.TransactionEvent, error)

// transition loads the invoice under lock, applies step, persists the result together
// with its transaction row, and posts the journal entry once the unit has committed.
func (s *invoiceService) transition(ctx context.Context, invoiceID string, step invoiceStep) (*domain.Invoice, error) {
	var (
		updated *domain.Invoice
		event   domain.TransactionEvent
		txn     *domain.Transaction
	)
	err := s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		inv, err := repos.InvoiceRepo.FindInvoiceByIDForUpdate(ctx, invoiceID)
		if err != nil {
			return err
		}
		event, err = step(ctx, repos, inv, s.Now())
		if err != nil {
			return err
		}
		if err := repos.InvoiceRepo.UpdateInvoice(ctx, *inv); err != nil {
			return err
		}
		if event != nil {
			txn, err = s.recorder.StageTransaction(ctx, repos, event, inv.LastUpdatedBy)
			if err != nil {
				return err
			}
		}
		updated = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	if txn != nil {
		s.recorder.PostTransactionJournal(ctx, *txn, event)
	}
	return updated, nil
}

// outcome converts the result of a transition into a domain.Result.
func (s *invoiceService) outcome(ctx context.Context, action domain.InvoiceAction, invoiceID string, err error, message string) domain.Result {
	if err != nil {
		s.Metrics.InvoiceTransition(string(action), "failure")
		if errors.Is(err, apperrors.ErrCapacity) {
			s.Metrics.CapacityRejected(string(domain.FacilityInvoiceFinancing))
		}
		s.LogWarn(ctx, err, "Invoice transition failed",
			slog.String("action", string(action)),
			slog.String("invoice_id", invoiceID))
		return domain.Failed(err)
	}
	s.Metrics.InvoiceTransition(string(action), "success")
	s.LogInfo(ctx, "Invoice transition applied",
		slog.String("action", string(action)),
		slog.String("invoice_id", invoiceID))
	return domain.Succeeded(message, invoiceID)
}

// actingUser resolves the user performing a party-restricted step.
func (s *invoiceService) actingUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.directory.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown user %s", apperrors.ErrForbidden, userID)
		}
		return nil, err
	}
	return user, nil
}

// requireBank resolves the acting user and rejects anyone outside a bank organization.
func (s *invoiceService) requireBank(ctx context.Context, userID string) error {
	user, err := s.actingUser(ctx, userID)
	if err != nil {
		return err
	}
	org, err := s.directory.FindOrganizationByID(ctx, user.OrganizationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: user %s has no organization", apperrors.ErrForbidden, userID)
		}
		return err
	}
	if !org.IsBank {
		return fmt.Errorf("%w: user %s is not a bank user", apperrors.ErrForbidden, userID)
	}
	return nil
}

func requireParty(user *domain.User, partyID *string, side string) error {
	if partyID == nil || user.OrganizationID != *partyID {
		return fmt.Errorf("%w: user %s does not belong to the invoice %s", apperrors.ErrForbidden, user.UserID, side)
	}
	return nil
}

// audience selects which parties of an invoice receive a notification.
type audience int

const (
	toSeller audience = 1 << iota
	toBuyer
	toBank
)

// notify delivers a message to every user of the selected parties. Failures are
// logged and never reach the caller.
func (s *invoiceService) notify(ctx context.Context, inv *domain.Invoice, to audience, title, message string, requiresAction bool) {
	if s.notifier == nil || inv == nil {
		return
	}
	var userIDs []string
	collect := func(ids []string, err error, party string) {
		if err != nil {
			s.LogWarn(ctx, err, "Failed to resolve notification recipients", slog.String("party", party))
			return
		}
		userIDs = append(userIDs, ids...)
	}
	if to&toSeller != 0 && inv.SellerID != nil {
		ids, err := s.directory.ListUserIDsByOrganization(ctx, *inv.SellerID)
		collect(ids, err, "seller")
	}
	if to&toBuyer != 0 && inv.BuyerID != nil {
		ids, err := s.directory.ListUserIDsByOrganization(ctx, *inv.BuyerID)
		collect(ids, err, "buyer")
	}
	if to&toBank != 0 {
		ids, err := s.directory.ListBankUserIDs(ctx)
		collect(ids, err, "bank")
	}

	invoiceID := inv.InvoiceID
	for _, userID := range userIDs {
		n := domain.Notification{
			UserID:         userID,
			Title:          title,
			Message:        message,
			Type:           "INVOICE",
			InvoiceID:      &invoiceID,
			RequiresAction: requiresAction,
		}
		if err := s.notifier.Notify(ctx, n); err != nil {
			s.LogWarn(ctx, err, "Notification delivery failed",
				slog.String("user_id", userID),
				slog.String("invoice_id", invoiceID))
		}
	}
}

// --- upload ---

func validateUpload(req dto.UploadInvoiceRequest) error {
	if strings.TrimSpace(req.InvoiceNumber) == "" {
		return fmt.Errorf("%w: invoice number is required", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return fmt.Errorf("%w: invoice amount must be positive", apperrors.ErrValidation)
	}
	if !req.IssueDate.IsZero() && !req.DueDate.IsZero() && req.DueDate.Before(req.IssueDate) {
		return fmt.Errorf("%w: due date is before issue date", apperrors.ErrValidation)
	}
	return nil
}

func (s *invoiceService) newInvoice(req dto.UploadInvoiceRequest, status domain.InvoiceStatus, userID string, now time.Time) domain.Invoice {
	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = defaultCurrency
	}
	return domain.Invoice{
		InvoiceID:     s.NewID(),
		InvoiceNumber: req.InvoiceNumber,
		SellerID:      domain.StringPtr(req.SellerID),
		BuyerID:       domain.StringPtr(req.BuyerID),
		Amount:        req.Amount,
		Currency:      currency,
		IssueDate:     req.IssueDate,
		DueDate:       req.DueDate,
		Description:   req.Description,
		Status:        status,
		PaidAmount:    decimal.Zero,
		UploadedBy:    userID,
		AuditFields:   domain.NewAuditFields(userID, now),
	}
}

// findOrCreateCounterparty must run inside a unit of work.
func (s *invoiceService) findOrCreateCounterparty(ctx context.Context, repos portsrepo.RepositoryProvider, req *dto.CounterpartyRequest, userID string, now time.Time) (string, error) {
	existing, err := repos.CounterpartyRepo.FindCounterpartyByNameAndTaxID(ctx, req.Name, req.TaxID)
	if err == nil {
		return existing.CounterpartyID, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return "", err
	}
	cp := domain.Counterparty{
		CounterpartyID: s.NewID(),
		Name:           req.Name,
		TaxID:          req.TaxID,
		Address:        req.Address,
		ContactPerson:  req.ContactPerson,
		Email:          req.Email,
		Phone:          req.Phone,
		AuditFields:    domain.NewAuditFields(userID, now),
	}
	if err := repos.CounterpartyRepo.SaveCounterparty(ctx, cp); err != nil {
		return "", err
	}
	return cp.CounterpartyID, nil
}

// trackCounterpartyRisk adds a sub-allocation on the seller's invoice financing
// facility for a non-customer buyer, sized to the invoice.
func (s *invoiceService) trackCounterpartyRisk(ctx context.Context, repos portsrepo.RepositoryProvider, sellerID, counterpartyID string, amount decimal.Decimal, userID string, now time.Time) error {
	info, err := repos.CreditLimitRepo.FindCreditLimitByOrganizationForUpdate(ctx, sellerID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	idx, ok := info.OwnFacility(domain.FacilityInvoiceFinancing)
	if !ok {
		return nil
	}
	if _, exists := info.SubAllocation(domain.FacilityInvoiceFinancing, counterpartyID); exists {
		return nil
	}
	parent := info.Facilities[idx]
	cpID := counterpartyID
	return repos.CreditLimitRepo.SaveFacility(ctx, domain.Facility{
		FacilityID:         s.NewID(),
		CreditLimitInfoID:  info.CreditLimitInfoID,
		Type:               domain.FacilityInvoiceFinancing,
		TotalLimit:         amount,
		AllocatedLimit:     amount,
		CurrentUtilization: decimal.Zero,
		RelatedPartyID:     &cpID,
		ReviewEndDate:      parent.ReviewEndDate,
		GracePeriodDays:    parent.GracePeriodDays,
		AuditFields:        domain.NewAuditFields(userID, now),
	})
}

// optionalOrganization resolves an organization ID that may be empty.
func (s *invoiceService) optionalOrganization(ctx context.Context, organizationID string) (*domain.Organization, error) {
	if organizationID == "" {
		return nil, nil
	}
	return s.directory.FindOrganizationByID(ctx, organizationID)
}

func (s *invoiceService) UploadInvoice(ctx context.Context, req dto.UploadInvoiceRequest, userID string) domain.Result {
	if err := validateUpload(req); err != nil {
		return s.outcome(ctx, "upload", "", err, "")
	}
	if req.SellerID == "" {
		return s.outcome(ctx, "upload", "", fmt.Errorf("%w: seller is required", apperrors.ErrValidation), "")
	}
	seller, err := s.directory.FindOrganizationByID(ctx, req.SellerID)
	if err != nil {
		return s.outcome(ctx, "upload", "", fmt.Errorf("seller %s: %w", req.SellerID, err), "")
	}
	if !seller.IsSeller {
		return s.outcome(ctx, "upload", "", fmt.Errorf("%w: %s is not a seller", apperrors.ErrValidation, seller.Name), "")
	}
	buyer, err := s.optionalOrganization(ctx, req.BuyerID)
	if err != nil {
		return s.outcome(ctx, "upload", "", fmt.Errorf("buyer %s: %w", req.BuyerID, err), "")
	}

	now := s.Now()
	inv := s.newInvoice(req, domain.InvoiceUploaded, userID, now)
	event := domain.InvoiceUploadEvent{
		EventHeader: domain.EventHeader{
			OrganizationID: seller.OrganizationID,
			InvoiceID:      &inv.InvoiceID,
			FacilityType:   domain.FacilityInvoiceFinancing,
			Amount:         inv.Amount,
			Description:    fmt.Sprintf("Invoice %s uploaded", inv.InvoiceNumber),
			MaturityDate:   inv.DueDate,
		},
		InvoiceNumber: inv.InvoiceNumber,
	}

	var txn *domain.Transaction
	err = s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if buyer == nil && req.Counterparty != nil {
			cpID, err := s.findOrCreateCounterparty(ctx, repos, req.Counterparty, userID, now)
			if err != nil {
				return err
			}
			inv.CounterpartyID = &cpID
		}
		if err := repos.InvoiceRepo.SaveInvoice(ctx, inv); err != nil {
			return err
		}
		if inv.CounterpartyID != nil {
			if err := s.trackCounterpartyRisk(ctx, repos, seller.OrganizationID, *inv.CounterpartyID, inv.Amount, userID, now); err != nil {
				return err
			}
		}
		var err error
		txn, err = s.recorder.StageTransaction(ctx, repos, event, userID)
		return err
	})
	if err != nil {
		return s.outcome(ctx, "upload", inv.InvoiceID, err, "")
	}
	s.recorder.PostTransactionJournal(ctx, *txn, event)

	s.notify(ctx, &inv, toBank, "New invoice uploaded",
		fmt.Sprintf("Invoice %s from %s requires validation", inv.InvoiceNumber, seller.Name), true)
	return s.outcome(ctx, "upload", inv.InvoiceID, nil, fmt.Sprintf("Invoice %s uploaded successfully", inv.InvoiceNumber))
}

func (s *invoiceService) UploadBuyerInvoice(ctx context.Context, req dto.UploadInvoiceRequest, userID string) domain.Result {
	if err := validateUpload(req); err != nil {
		return s.outcome(ctx, "buyer upload", "", err, "")
	}
	if req.BuyerID == "" {
		return s.outcome(ctx, "buyer upload", "", fmt.Errorf("%w: buyer is required", apperrors.ErrValidation), "")
	}
	buyer, err := s.directory.FindOrganizationByID(ctx, req.BuyerID)
	if err != nil {
		return s.outcome(ctx, "buyer upload", "", fmt.Errorf("buyer %s: %w", req.BuyerID, err), "")
	}
	if !buyer.IsBuyer {
		return s.outcome(ctx, "buyer upload", "", fmt.Errorf("%w: %s is not a buyer", apperrors.ErrValidation, buyer.Name), "")
	}
	seller, err := s.optionalOrganization(ctx, req.SellerID)
	if err != nil {
		return s.outcome(ctx, "buyer upload", "", fmt.Errorf("seller %s: %w", req.SellerID, err), "")
	}

	now := s.Now()
	inv := s.newInvoice(req, domain.InvoiceBuyerUploaded, userID, now)
	event := domain.InvoiceUploadEvent{
		EventHeader: domain.EventHeader{
			OrganizationID: buyer.OrganizationID,
			InvoiceID:      &inv.InvoiceID,
			FacilityType:   domain.FacilityInvoiceFinancing,
			Amount:         inv.Amount,
			Description:    fmt.Sprintf("Invoice %s uploaded by buyer", inv.InvoiceNumber),
			MaturityDate:   inv.DueDate,
		},
		InvoiceNumber: inv.InvoiceNumber,
	}

	var txn *domain.Transaction
	err = s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if seller == nil && req.Counterparty != nil {
			cpID, err := s.findOrCreateCounterparty(ctx, repos, req.Counterparty, userID, now)
			if err != nil {
				return err
			}
			inv.CounterpartyID = &cpID
		}
		if err := repos.InvoiceRepo.SaveInvoice(ctx, inv); err != nil {
			return err
		}
		var err error
		txn, err = s.recorder.StageTransaction(ctx, repos, event, userID)
		return err
	})
	if err != nil {
		return s.outcome(ctx, "buyer upload", inv.InvoiceID, err, "")
	}
	s.recorder.PostTransactionJournal(ctx, *txn, event)

	s.notify(ctx, &inv, toSeller|toBank, "Invoice uploaded by buyer",
		fmt.Sprintf("Invoice %s was uploaded by %s", inv.InvoiceNumber, buyer.Name), false)
	return s.outcome(ctx, "buyer upload", inv.InvoiceID, nil, fmt.Sprintf("Invoice %s uploaded successfully", inv.InvoiceNumber))
}

// --- bank lifecycle ---

func (s *invoiceService) ValidateInvoice(ctx context.Context, invoiceID string, userID string) domain.Result {
	if err := s.requireBank(ctx, userID); err != nil {
		return s.outcome(ctx, domain.ActionValidate, invoiceID, err, "")
	}
	inv, err := s.transition(ctx, invoiceID, func(_ context.Context, _ portsrepo.RepositoryProvider, inv *domain.Invoice, now time.Time) (domain.TransactionEvent, error) {
		return nil, inv.Validate(userID, now)
	})
	if err != nil {
		return s.outcome(ctx, domain.ActionValidate, invoiceID, err, "")
	}
	s.notify(ctx, inv, toSeller|toBuyer, "Invoice validated",
		fmt.Sprintf("Invoice %s has been validated by the bank", inv.InvoiceNumber), false)
	return s.outcome(ctx, domain.ActionValidate, invoiceID, nil, fmt.Sprintf("Invoice %s validated successfully", inv.InvoiceNumber))
}

func (s *invoiceService) ApproveInvoice(ctx context.Context, invoiceID string, userID string) domain.Result {
	if err := s.requireBank(ctx, userID); err != nil {
		return s.outcome(ctx, domain.ActionApprove, invoiceID, err, "")
	}
	inv, err := s.transition(ctx, invoiceID, func(_ context.Context, _ portsrepo.RepositoryProvider, inv *domain.Invoice, now time.Time) (domain.TransactionEvent, error) {
		return nil, inv.Approve(userID, now)
	})
	if err != nil {
		return s.outcome(ctx, domain.ActionApprove, invoiceID, err, "")
	}
	s.notify(ctx, inv, toSeller|toBuyer, "Invoice approved",
		fmt.Sprintf("Invoice %s has been approved for financing", inv.InvoiceNumber), false)
	return s.outcome(ctx, domain.ActionApprove, invoiceID, nil, fmt.Sprintf("Invoice %s approved successfully", inv.InvoiceNumber))
}

func (s *invoiceService) RejectInvoice(ctx context.Context, invoiceID string, reason string, userID string) domain.Result {
	if err := s.requireBank(ctx, userID); err != nil {
		return s.outcome(ctx, domain.ActionReject, invoiceID, err, "")
	}
	inv, err := s.transition(ctx, invoiceID, func(_ context.Context, _ portsrepo.RepositoryProvider, inv *domain.Invoice, now time.Time) (domain.TransactionEvent, error) {
		return nil, inv.Reject(reason, userID, now)
	})
	if err != nil {
		return s.outcome(ctx, domain.ActionReject, invoiceID, err, "")
	}
	s.notify(ctx, inv, toSeller|toBuyer, "Invoice rejected",
		fmt.Sprintf("Invoice %s has been rejected: %s", inv.InvoiceNumber, reason), false)
	return s.outcome(ctx, domain.ActionReject, invoiceID, nil, fmt.Sprintf("Invoice %s rejected", inv.InvoiceNumber))
}

// resolveDiscountRate picks the funding rate: an explicit final rate, else the rate
// the seller accepted, else base plus margin, else zero. Negative rates are rejected.
func resolveDiscountRate(details dto.FundInvoiceRequest, inv *domain.Invoice) (decimal.Decimal, error) {
	if details.FinalDiscountRate.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: final discount rate %s is negative", apperrors.ErrValidation, details.FinalDiscountRate.String())
	}
	if details.BaseRate.IsNegative() || details.MarginRate.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: base and margin rates must not be negative", apperrors.ErrValidation)
	}
	if details.FinalDiscountRate.IsPositive() {
		return details.FinalDiscountRate, nil
	}
	if accepted, ok := inv.AcceptedOfferRate(); ok {
		return accepted, nil
	}
	if derived := details.BaseRate.Add(details.MarginRate); derived.IsPositive() {
		return derived, nil
	}
	return decimal.Zero, nil
}

// financedParty is the organization whose invoice financing facility backs the
// invoice: the buyer when it holds one of its own, otherwise the seller.
func financedParty(ctx context.Context, repos portsrepo.RepositoryProvider, inv *domain.Invoice) (string, error) {
	if inv.BuyerID != nil {
		info, err := repos.CreditLimitRepo.FindCreditLimitByOrganization(ctx, *inv.BuyerID)
		switch {
		case err == nil:
			if _, ok := info.OwnFacility(domain.FacilityInvoiceFinancing); ok {
				return *inv.BuyerID, nil
			}
		case !errors.Is(err, apperrors.ErrNotFound):
			return "", err
		}
	}
	if inv.SellerID == nil {
		return "", fmt.Errorf("%w: invoice %s has no customer party to finance", apperrors.ErrValidation, inv.InvoiceNumber)
	}
	return *inv.SellerID, nil
}

// FundInvoice advances the discounted amount. The facility of the financed party is
// checked and drawn by the invoice face amount in the same unit of work as the
// status change.
func (s *invoiceService) FundInvoice(ctx context.Context, invoiceID string, details dto.FundInvoiceRequest, userID string) domain.Result {
	if err := s.requireBank(ctx, userID); err != nil {
		return s.outcome(ctx, domain.ActionFund, invoiceID, err, "")
	}
	var split domain.FundingAmounts
	inv, err := s.transition(ctx, invoiceID, func(ctx context.Context, repos portsrepo.RepositoryProvider, inv *domain.Invoice, now time.Time) (domain.TransactionEvent, error) {
		if err := inv.CanApply(domain.ActionFund); err != nil {
			return nil, err
		}
		fundedAt := now
		if details.FundingDate != nil {
			fundedAt = *details.FundingDate
		}
		financedOrgID, err := financedParty(ctx, repos, inv)
		if err != nil {
			return nil, err
		}
		discountRate, err := resolveDiscountRate(details, inv)
		if err != nil {
			return nil, err
		}
		split, err = inv.Fund(discountRate, financedOrgID, userID, fundedAt)
		if err != nil {
			return nil, err
		}
		if _, err := drawFacility(ctx, repos, financedOrgID, domain.FacilityInvoiceFinancing, inv.Amount, now); err != nil {
			return nil, err
		}

		orgID := financedOrgID
		if inv.SellerID != nil {
			orgID = *inv.SellerID
		}
		return domain.InvoiceFundingEvent{
			EventHeader: domain.EventHeader{
				OrganizationID:  orgID,
				InvoiceID:       &inv.InvoiceID,
				FacilityType:    domain.FacilityInvoiceFinancing,
				Amount:          split.Funded,
				Description:     fmt.Sprintf("Invoice %s funded", inv.InvoiceNumber),
				TransactionDate: fundedAt,
				MaturityDate:    inv.DueDate,
			},
			InvoiceNumber: inv.InvoiceNumber,
			SellerID:      inv.SellerID,
			InvoiceAmount: inv.Amount,
			Discount:      split.Discount,
			Rate:          split.Rate,
		}, nil
	})
	if err != nil {
		return s.outcome(ctx, domain.ActionFund, invoiceID, err, "")
	}

	s.notify(ctx, inv, toSeller|toBuyer, "Invoice funded",
		fmt.Sprintf("Invoice %s has been funded: %s advanced at %s%% discount",
			inv.InvoiceNumber, split.Funded.StringFixed(2), split.Rate.String()), false)
	return s.outcome(ctx, domain.ActionFund, invoiceID, nil,
		fmt.Sprintf("Invoice %s funded: %s advanced, discount %s", inv.InvoiceNumber, split.Funded.StringFixed(2), split.Discount.StringFixed(2)))
}

// ProcessPayment applies a buyer payment. Full settlement releases the utilization
// drawn at funding.
func (s *invoiceService) ProcessPayment(ctx context.Context, invoiceID string, req dto.PaymentRequest, userID string) domain.Result {
	var paid domain.PaymentOutcome
	inv, err := s.transition(ctx, invoiceID, func(ctx context.Context, repos portsrepo.RepositoryProvider, inv *domain.Invoice, now time.Time) (domain.TransactionEvent, error) {
		paidAt := now
		if req.PaymentDate != nil {
			paidAt = *req.PaymentDate
		}
		var err error
		paid, err = inv.ApplyPayment(req.Amount, userID, paidAt)
		if err != nil {
			return nil, err
		}
		if paid.FullyPaid && inv.FinancedOrganizationID != nil {
			if _, err := releaseFacility(ctx, repos, *inv.FinancedOrganizationID, domain.FacilityInvoiceFinancing, inv.Amount, now); err != nil {
				return nil, err
			}
		}

		var orgID string
		switch {
		case inv.BuyerID != nil:
			orgID = *inv.BuyerID
		case inv.SellerID != nil:
			orgID = *inv.SellerID
		case inv.FinancedOrganizationID != nil:
			orgID = *inv.FinancedOrganizationID
		}
		return domain.PaymentEvent{
			EventHeader: domain.EventHeader{
				OrganizationID:  orgID,
				InvoiceID:       &inv.InvoiceID,
				FacilityType:    domain.FacilityInvoiceFinancing,
				Amount:          req.Amount,
				Description:     fmt.Sprintf("Payment for invoice %s", inv.InvoiceNumber),
				TransactionDate: paidAt,
				MaturityDate:    inv.DueDate,
				IsPaid:          true,
			},
			InvoiceNumber: inv.InvoiceNumber,
			BuyerID:       inv.BuyerID,
		}, nil
	})
	if err != nil {
		return s.outcome(ctx, domain.ActionPay, invoiceID, err, "")
	}

	message := fmt.Sprintf("Payment of %s received for invoice %s, remaining %s",
		paid.Amount.StringFixed(2), inv.InvoiceNumber, paid.Remaining.StringFixed(2))
	if paid.FullyPaid {
		message = fmt.Sprintf("Invoice %s fully paid", inv.InvoiceNumber)
	}
	s.notify(ctx, inv, toSeller|toBuyer|toBank, "Invoice payment", message, false)
	return s.outcome(ctx, domain.ActionPay, invoiceID, nil, message)
}

// --- negotiation ---

func (s *invoiceService) RequestBuyerApproval(ctx context.Context, invoiceID string, userID string) domain.Result {
	if err := s.requireBank(ctx, userID); err != nil {
		return s.outcome(ctx, domain.ActionRequestBuyerApproval, invoiceID, err, "")
	}
	inv, err := s.transition(ctx, invoiceID, func(_ context.Context, _ portsrepo.RepositoryProvider, inv *domain.Invoice, now time.Time) (domain.TransactionEvent, error) {
		return nil, inv.RequestBuyerApproval(userID, now)
	})
	if err != nil {
		return s.outcome(ctx, domain.ActionRequestBuyerApproval, invoiceID, err, "")
	}
	s.notify(ctx, inv, toBuyer, "Invoice approval required",
		fmt.Sprintf("Please review and approve invoice %s for %s", inv.InvoiceNumber, inv.Amount.StringFixed(2)), true)
	return s.outcome(ctx, domain.ActionRequestBuyerApproval, invoiceID, nil,
		fmt.Sprintf("Buyer approval requested for invoice %s", inv.InvoiceNumber))
}

func (s *invoiceService) decideBuyer(ctx context.Context, invoiceID string, approve bool, reason, userID string) domain.Result {
	action := domain.ActionBuyerApprove
	if !approve {
		action = domain.ActionBuyerReject
	}
	user, err := s.actingUser(ctx, userID)
	if err != nil {
		return s.outcome(ctx, action, invoiceID, err, "")
	}
	inv, err := s.transition(ctx, invoiceID, func(_ context.Context, _ portsrepo.RepositoryProvider, inv *domain.Invoice, now time.Time) (domain.TransactionEvent, error) {
		if err := requireParty(user, inv.BuyerID, "buyer"); err != nil {
			return nil, err
		}
		return nil, inv.DecideBuyerApproval(approve, reason, userID, now)
	})
	if err != nil {
		return s.outcome(ctx, action, invoiceID, err, "")
	}

	if approve {
		s.notify(ctx, inv, toSeller|toBank, "Invoice approved by buyer",
			fmt.Sprintf("Invoice %s has been approved by the buyer", inv.InvoiceNumber), false)
		return s.outcome(ctx, action, invoiceID, nil, fmt.Sprintf("Invoice %s approved by buyer", inv.InvoiceNumber))
	}
	s.notify(ctx, inv, toSeller|toBank, "Invoice rejected by buyer",
		fmt.Sprintf("Invoice %s has been rejected by the buyer: %s", inv.InvoiceNumber, reason), false)
	return s.outcome(ctx, action, invoiceID, nil, fmt.Sprintf("Invoice %s rejected by buyer", inv.InvoiceNumber))
}

func (s *invoiceService) BuyerApproveInvoice(ctx context.Context, invoiceID string, userID string) domain.Result {
	return s.decideBuyer(ctx, invoiceID, true, "", userID)
}

func (s *invoiceService) BuyerRejectInvoice(ctx context.Context, invoiceID string, reason string, userID string) domain.Result {
	return s.decideBuyer(ctx, invoiceID, false, reason, userID)
}

func (s *invoiceService) RequestSellerAcceptance(ctx context.Context, invoiceID string, discountRate decimal.Decimal, userID string) domain.Result {
	if err := s.requireBank(ctx, userID); err != nil {
		return s.outcome(ctx, domain.ActionRequestSellerAcceptance, invoiceID, err, "")
	}
	inv, err := s.transition(ctx, invoiceID, func(_ context.Context, _ portsrepo.RepositoryProvider, inv *domain.Invoice, now time.Time) (domain.TransactionEvent, error) {
		return nil, inv.RequestSellerAcceptance(discountRate, userID, now)
	})
	if err != nil {
		return s.outcome(ctx, domain.ActionRequestSellerAcceptance, invoiceID, err, "")
	}
	s.notify(ctx, inv, toSeller, "Funding offer",
		fmt.Sprintf("The bank offers to fund invoice %s at a %s%% discount rate", inv.InvoiceNumber, discountRate.String()), true)
	return s.outcome(ctx, domain.ActionRequestSellerAcceptance, invoiceID, nil,
		fmt.Sprintf("Seller acceptance requested for invoice %s at %s%%", inv.InvoiceNumber, discountRate.String()))
}

func (s *invoiceService) decideSeller(ctx context.Context, invoiceID string, accept bool, reason, userID string) domain.Result {
	action := domain.ActionSellerAccept
	if !accept {
		action = domain.ActionSellerReject
	}
	user, err := s.actingUser(ctx, userID)
	if err != nil {
		return s.outcome(ctx, action, invoiceID, err, "")
	}
	inv, err := s.transition(ctx, invoiceID, func(_ context.Context, _ portsrepo.RepositoryProvider, inv *domain.Invoice, now time.Time) (domain.TransactionEvent, error) {
		if err := requireParty(user, inv.SellerID, "seller"); err != nil {
			return nil, err
		}
		return nil, inv.DecideSellerAcceptance(accept, reason, userID, now)
	})
	if err != nil {
		return s.outcome(ctx, action, invoiceID, err, "")
	}

	if accept {
		s.notify(ctx, inv, toBank, "Funding offer accepted",
			fmt.Sprintf("The seller accepted the funding offer for invoice %s", inv.InvoiceNumber), true)
		return s.outcome(ctx, action, invoiceID, nil, fmt.Sprintf("Offer accepted for invoice %s", inv.InvoiceNumber))
	}
	s.notify(ctx, inv, toBank, "Funding offer rejected",
		fmt.Sprintf("The seller rejected the funding offer for invoice %s", inv.InvoiceNumber), false)
	return s.outcome(ctx, action, invoiceID, nil, fmt.Sprintf("Offer rejected for invoice %s", inv.InvoiceNumber))
}

func (s *invoiceService) SellerAcceptOffer(ctx context.Context, invoiceID string, userID string) domain.Result {
	return s.decideSeller(ctx, invoiceID, true, "", userID)
}

func (s *invoiceService) SellerRejectOffer(ctx context.Context, invoiceID string, reason string, userID string) domain.Result {
	return s.decideSeller(ctx, invoiceID, false, reason, userID)
}

// --- queries ---

func (s *invoiceService) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	var inv *domain.Invoice
	err := s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		inv, err = repos.InvoiceRepo.FindInvoiceByID(ctx, invoiceID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *invoiceService) ListInvoicesForOrganization(ctx context.Context, organizationID string) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		invoices, err = repos.InvoiceRepo.ListInvoicesByOrganization(ctx, organizationID)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices", slog.String("organization_id", organizationID))
		return nil, err
	}
	return invoices, nil
}

func (s *invoiceService) DetermineCustomerRelationship(ctx context.Context, invoiceID string) (domain.CustomerRelationship, error) {
	var relationship domain.CustomerRelationship
	err := s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		inv, err := repos.InvoiceRepo.FindInvoiceByID(ctx, invoiceID)
		if err != nil {
			return err
		}
		sellerIsCustomer, err := holdsCreditLimit(ctx, repos, inv.SellerID)
		if err != nil {
			return err
		}
		buyerIsCustomer, err := holdsCreditLimit(ctx, repos, inv.BuyerID)
		if err != nil {
			return err
		}
		relationship = domain.ResolveCustomerRelationship(sellerIsCustomer, buyerIsCustomer)
		return nil
	})
	if err != nil {
		return "", err
	}
	return relationship, nil
}

func holdsCreditLimit(ctx context.Context, repos portsrepo.RepositoryProvider, organizationID *string) (bool, error) {
	if organizationID == nil {
		return false, nil
	}
	_, err := repos.CreditLimitRepo.FindCreditLimitByOrganization(ctx, *organizationID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, apperrors.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}
