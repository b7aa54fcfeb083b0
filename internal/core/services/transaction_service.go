package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/apperrors"
	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoice_finance_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_finance_app/internal/dto"
	"github.com/SscSPs/invoice_finance_app/internal/platform/metrics"
)

// SystemUserID stamps journal entries posted on behalf of recorded transactions.
const SystemUserID = "system"

// transactionService records business events and drives their journal entries.
type transactionService struct {
	BaseService
	tm           portsrepo.TransactionManager
	journal      portssvc.TransactionJournalSvc
	systemUserID string
}

// TransactionServiceOption is a functional option for configuring the transaction recorder
type TransactionServiceOption func(*transactionService)

// WithTransactionMetrics sets the metrics sink.
func WithTransactionMetrics(m *metrics.Metrics) TransactionServiceOption {
	return func(s *transactionService) {
		s.Metrics = m
	}
}

// WithTransactionClock overrides the clock used for transaction dates.
func WithTransactionClock(clock func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.Clock = clock
	}
}

// WithSystemUser overrides the user stamped on automated journal entries.
func WithSystemUser(userID string) TransactionServiceOption {
	return func(s *transactionService) {
		s.systemUserID = userID
	}
}

// NewTransactionService creates the transaction recorder.
func NewTransactionService(tm portsrepo.TransactionManager, journal portssvc.TransactionJournalSvc, options ...TransactionServiceOption) portssvc.TransactionRecorderSvc {
	svc := &transactionService{
		tm:           tm,
		journal:      journal,
		systemUserID: SystemUserID,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure transactionService implements the portssvc.TransactionRecorderSvc interface
var _ portssvc.TransactionRecorderSvc = (*transactionService)(nil)

func (s *transactionService) RecordTransaction(ctx context.Context, event domain.TransactionEvent, userID string) (*domain.Transaction, error) {
	var txn *domain.Transaction
	err := s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		txn, err = s.StageTransaction(ctx, repos, event, userID)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record transaction", slog.String("type", string(event.Type())))
		return nil, err
	}
	s.PostTransactionJournal(ctx, *txn, event)
	return txn, nil
}

func (s *transactionService) StageTransaction(ctx context.Context, repos portsrepo.RepositoryProvider, event domain.TransactionEvent, userID string) (*domain.Transaction, error) {
	h := event.Header()
	if h.OrganizationID == "" {
		return nil, fmt.Errorf("%w: transaction organization is required", apperrors.ErrValidation)
	}
	if h.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: transaction amount must not be negative", apperrors.ErrValidation)
	}

	txn := domain.NewTransaction(s.NewID(), event, userID, s.Now())
	if err := repos.TransactionRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to save %s transaction: %w", txn.Type, err)
	}
	return &txn, nil
}

// PostTransactionJournal never fails the caller. The transaction stays recorded even
// when its entry cannot be posted; the failure is logged and counted.
func (s *transactionService) PostTransactionJournal(ctx context.Context, txn domain.Transaction, event domain.TransactionEvent) {
	s.Metrics.TransactionRecorded(string(txn.Type))

	entry, err := s.journal.RecordTransactionEntry(ctx, txn, event, s.systemUserID)
	if err != nil {
		s.Metrics.PostingFailed(string(txn.Type))
		s.LogError(ctx, err, "Journal posting failed for recorded transaction",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("type", string(txn.Type)))
		return
	}
	if entry != nil {
		s.LogInfo(ctx, "Transaction recorded",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("type", string(txn.Type)),
			slog.String("journal_entry_id", entry.JournalEntryID))
	}
}

func (s *transactionService) RecordFeeCharge(ctx context.Context, req dto.RecordFeeRequest, userID string) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: fee amount must be positive", apperrors.ErrValidation)
	}
	description := req.Description
	if description == "" {
		description = "Bank fee charge"
	}
	var chargeDate time.Time
	if req.ChargeDate != nil {
		chargeDate = *req.ChargeDate
	}
	event := domain.FeeChargeEvent{EventHeader: domain.EventHeader{
		OrganizationID:  req.OrganizationID,
		InvoiceID:       domain.StringPtr(req.InvoiceID),
		FacilityType:    req.FacilityType,
		Amount:          req.Amount,
		Description:     description,
		TransactionDate: chargeDate,
		IsPaid:          true,
	}}
	return s.RecordTransaction(ctx, event, userID)
}

func (s *transactionService) RecordTreasuryFunding(ctx context.Context, req dto.RecordTreasuryFundingRequest, userID string) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: treasury amount must be positive", apperrors.ErrValidation)
	}
	description := req.Description
	if description == "" {
		description = "Treasury funding"
	}
	var maturity time.Time
	if req.MaturityDate != nil {
		maturity = *req.MaturityDate
	}
	event := domain.TreasuryFundingEvent{EventHeader: domain.EventHeader{
		OrganizationID: req.OrganizationID,
		Amount:         req.Amount,
		Description:    description,
		MaturityDate:   maturity,
	}}
	return s.RecordTransaction(ctx, event, userID)
}

func (s *transactionService) ListTransactionsForOrganization(ctx context.Context, organizationID string) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	err := s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		txns, err = repos.TransactionRepo.ListTransactionsByOrganization(ctx, organizationID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return txns, nil
}
