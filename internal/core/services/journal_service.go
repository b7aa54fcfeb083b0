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
	"github.com/SscSPs/invoice_finance_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

var (
	ErrJournalAlreadyPosted = errors.New("journal entry is already posted")
	ErrJournalUnbalanced    = errors.New("journal entry debits do not equal credits")
	ErrDescriptionMissing   = errors.New("journal description is required")
)

// journalService provides the double-entry journal engine.
type journalService struct {
	BaseService
	tm    portsrepo.TransactionManager
	chart *ChartOfAccounts
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithJournalMetrics sets the metrics sink.
func WithJournalMetrics(m *metrics.Metrics) JournalServiceOption {
	return func(s *journalService) {
		s.Metrics = m
	}
}

// WithJournalClock overrides the clock used for posting dates.
func WithJournalClock(clock func() time.Time) JournalServiceOption {
	return func(s *journalService) {
		s.Clock = clock
	}
}

// NewJournalService creates a new journal service over the given unit of work.
func NewJournalService(tm portsrepo.TransactionManager, chart *ChartOfAccounts, options ...JournalServiceOption) portssvc.LedgerSvcFacade {
	svc := &journalService{tm: tm, chart: chart}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure journalService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*journalService)(nil)

func (s *journalService) GetAllAccounts(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	err := s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		accounts, err = repos.AccountRepo.ListAccounts(ctx)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	return accounts, nil
}

func (s *journalService) GetAccountBalances(ctx context.Context) ([]domain.AccountBalance, error) {
	accounts, err := s.GetAllAccounts(ctx)
	if err != nil {
		return nil, err
	}
	balances := make([]domain.AccountBalance, 0, len(accounts))
	for _, acc := range accounts {
		balances = append(balances, domain.AccountBalance{
			AccountID:   acc.AccountID,
			Code:        acc.Code,
			Name:        acc.Name,
			AccountType: acc.AccountType,
			Balance:     acc.Balance,
		})
	}
	return balances, nil
}

func (s *journalService) GetJournalEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	var entry *domain.JournalEntry
	err := s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		entry, err = repos.JournalRepo.FindJournalEntryByID(ctx, entryID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *journalService) GetJournalEntriesForOrganization(ctx context.Context, organizationID string) ([]domain.JournalEntry, error) {
	var entries []domain.JournalEntry
	err := s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		entries, err = repos.JournalRepo.ListJournalEntriesByOrganization(ctx, organizationID)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries", slog.String("organization_id", organizationID))
		return nil, err
	}
	return entries, nil
}

func (s *journalService) GetUnpostedJournalEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	var entries []domain.JournalEntry
	err := s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		entries, err = repos.JournalRepo.ListJournalEntriesByStatus(ctx, domain.JournalPending)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// CreateJournalEntry validates and stores a manual entry. The entry stays Pending
// until PostJournalEntry is called.
func (s *journalService) CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrDescriptionMissing)
	}

	now := s.Now()
	entryID := s.NewID()
	entryDate := req.EntryDate
	if entryDate.IsZero() {
		entryDate = now
	}
	reference := req.Reference
	if reference == "" {
		reference = "MANUAL-" + entryID[:8]
	}

	entry := domain.JournalEntry{
		JournalEntryID: entryID,
		Reference:      reference,
		EntryDate:      entryDate,
		Description:    req.Description,
		Status:         domain.JournalPending,
		OrganizationID: domain.StringPtr(req.OrganizationID),
		InvoiceID:      domain.StringPtr(req.InvoiceID),
		AuditFields:    domain.NewAuditFields(creatorUserID, now),
	}

	err := s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		lines := make([]domain.JournalEntryLine, 0, len(req.Lines))
		for i, l := range req.Lines {
			accountID, err := s.resolveAccount(ctx, repos, l)
			if err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			lines = append(lines, domain.JournalEntryLine{
				LineID:         s.NewID(),
				JournalEntryID: entryID,
				AccountID:      accountID,
				Debit:          l.Debit,
				Credit:         l.Credit,
				Description:    l.Description,
				OrganizationID: domain.StringPtr(l.OrganizationID),
			})
		}
		if err := accounting.ValidateJournalBalance(lines); err != nil {
			return err
		}
		entry.Lines = lines
		return repos.JournalRepo.SaveJournalEntry(ctx, entry)
	})
	if err != nil {
		s.LogWarn(ctx, err, "Failed to create journal entry", slog.String("reference", reference))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry created",
		slog.String("journal_entry_id", entryID),
		slog.String("reference", reference),
		slog.String("user_id", creatorUserID))
	return &entry, nil
}

func (s *journalService) resolveAccount(ctx context.Context, repos portsrepo.RepositoryProvider, line dto.JournalLineRequest) (string, error) {
	var (
		acc *domain.Account
		err error
	)
	switch {
	case line.AccountID != "":
		acc, err = repos.AccountRepo.FindAccountByID(ctx, line.AccountID)
	case line.AccountCode != "":
		acc, err = repos.AccountRepo.FindAccountByCode(ctx, line.AccountCode)
	default:
		return "", fmt.Errorf("%w: account id or code is required", apperrors.ErrValidation)
	}
	if err != nil {
		return "", err
	}
	if !acc.IsActive {
		return "", fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, acc.Code)
	}
	return acc.AccountID, nil
}

// PostJournalEntry applies a pending entry to account balances.
func (s *journalService) PostJournalEntry(ctx context.Context, entryID string, userID string) error {
	err := s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		return s.postEntry(ctx, repos, entryID, userID)
	})
	if err != nil {
		s.LogWarn(ctx, err, "Failed to post journal entry", slog.String("journal_entry_id", entryID))
		return err
	}
	s.Metrics.JournalEntryPosted()
	s.LogInfo(ctx, "Journal entry posted", slog.String("journal_entry_id", entryID), slog.String("user_id", userID))
	return nil
}

// postEntry must run inside a unit of work. The entry row and every touched account
// are locked before any balance moves.
func (s *journalService) postEntry(ctx context.Context, repos portsrepo.RepositoryProvider, entryID, userID string) error {
	entry, err := repos.JournalRepo.FindJournalEntryByIDForUpdate(ctx, entryID)
	if err != nil {
		return err
	}
	if entry.IsPosted() {
		return fmt.Errorf("%w: %w", apperrors.ErrConflict, ErrJournalAlreadyPosted)
	}
	if !entry.IsBalanced() {
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrJournalUnbalanced)
	}

	ids := make([]string, 0, len(entry.Lines))
	seen := make(map[string]struct{}, len(entry.Lines))
	for _, l := range entry.Lines {
		if _, ok := seen[l.AccountID]; ok {
			continue
		}
		seen[l.AccountID] = struct{}{}
		ids = append(ids, l.AccountID)
	}
	accounts, err := repos.AccountRepo.FindAccountsByIDsForUpdate(ctx, ids)
	if err != nil {
		return err
	}

	changes := make(map[string]decimal.Decimal, len(accounts))
	for _, l := range entry.Lines {
		acc, ok := accounts[l.AccountID]
		if !ok {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, l.AccountID)
		}
		signed, err := accounting.CalculateSignedAmount(l, acc.AccountType)
		if err != nil {
			return err
		}
		changes[l.AccountID] = changes[l.AccountID].Add(signed)
	}

	now := s.Now()
	if err := repos.AccountRepo.UpdateAccountBalances(ctx, changes, userID, now); err != nil {
		return err
	}
	return repos.JournalRepo.MarkJournalEntryPosted(ctx, entryID, userID, now)
}

// RecordTransactionEntry builds the entry for a committed transaction and posts it in
// a single unit of work, so a failure leaves neither the entry nor any balance change.
func (s *journalService) RecordTransactionEntry(ctx context.Context, txn domain.Transaction, event domain.TransactionEvent, userID string) (*domain.JournalEntry, error) {
	entry, err := buildTransactionEntry(s.chart, txn, event, userID, s.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrPosting, err)
	}
	if entry == nil {
		return nil, nil
	}
	if err := accounting.ValidateJournalBalance(entry.Lines); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrPosting, err)
	}

	err = s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if err := repos.JournalRepo.SaveJournalEntry(ctx, *entry); err != nil {
			return err
		}
		return s.postEntry(ctx, repos, entry.JournalEntryID, userID)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: transaction %s: %w", apperrors.ErrPosting, txn.TransactionID, err)
	}

	s.Metrics.JournalEntryPosted()
	posted := *entry
	postedAt := s.Now()
	posted.Status = domain.JournalPosted
	posted.PostedDate = &postedAt
	posted.PostedBy = &userID
	s.LogDebug(ctx, "Transaction journal entry posted",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("journal_entry_id", entry.JournalEntryID),
		slog.Int("lines", len(entry.Lines)))
	return &posted, nil
}

// GenerateTrialBalance lists every active account with a non-zero balance over
// posted lines dated on or before asOf.
func (s *journalService) GenerateTrialBalance(ctx context.Context, asOf time.Time, userID string) (*domain.TrialBalance, error) {
	var totals []domain.AccountLineTotals
	err := s.tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		totals, err = repos.ReportingRepo.GetPostedLineTotals(ctx, asOf)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to load posted line totals", slog.Time("as_of", asOf))
		return nil, err
	}

	tb := &domain.TrialBalance{
		AsOfDate:     asOf,
		GeneratedAt:  s.Now(),
		GeneratedBy:  userID,
		Rows:         make([]domain.TrialBalanceRow, 0, len(totals)),
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
	}
	for _, t := range totals {
		debit, credit := accounting.SplitNetBalance(t.TotalDebits, t.TotalCredits)
		if debit.IsZero() && credit.IsZero() {
			continue
		}
		tb.Rows = append(tb.Rows, domain.TrialBalanceRow{
			AccountID:     t.Account.AccountID,
			AccountCode:   t.Account.Code,
			AccountName:   t.Account.Name,
			AccountType:   t.Account.AccountType,
			DebitBalance:  debit,
			CreditBalance: credit,
		})
		tb.TotalDebits = tb.TotalDebits.Add(debit)
		tb.TotalCredits = tb.TotalCredits.Add(credit)
	}
	tb.IsBalanced = tb.TotalDebits.Equal(tb.TotalCredits)

	s.LogInfo(ctx, "Trial balance generated",
		slog.Time("as_of", asOf),
		slog.Int("rows", len(tb.Rows)),
		slog.Bool("balanced", tb.IsBalanced))
	return tb, nil
}
