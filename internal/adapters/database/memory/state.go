package memory

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/apperrors"
	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_finance_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// table names one map of the state for copy-on-write bookkeeping.
type table uint8

const (
	tableAccounts table = 1 << iota
	tableJournals
	tableCreditLimits
	tableFacilities
	tableInvoices
	tableCounterparties
	tableTransactions

	allTables = tableAccounts | tableJournals | tableCreditLimits | tableFacilities |
		tableInvoices | tableCounterparties | tableTransactions
)

// state is the full ledger held by the store. A *state implements every
// repository interface. A unit of work starts from a clone that shares every
// table with the published state and copies a table only before writing to it.
// Stored values are replaced on write and never mutated in place.
type state struct {
	accounts       map[string]domain.Account
	journals       map[string]domain.JournalEntry
	creditLimits   map[string]domain.CreditLimitInfo
	facilities     map[string]domain.Facility
	invoices       map[string]domain.Invoice
	counterparties map[string]domain.Counterparty
	transactions   map[string]domain.Transaction

	shared table
	dirty  bool
}

var (
	_ portsrepo.AccountRepositoryFacade     = (*state)(nil)
	_ portsrepo.JournalRepositoryFacade     = (*state)(nil)
	_ portsrepo.ReportingRepository         = (*state)(nil)
	_ portsrepo.CreditLimitRepositoryFacade = (*state)(nil)
	_ portsrepo.InvoiceRepositoryFacade     = (*state)(nil)
	_ portsrepo.CounterpartyRepository      = (*state)(nil)
	_ portsrepo.TransactionRepositoryFacade = (*state)(nil)
)

func newState() *state {
	return &state{
		accounts:       make(map[string]domain.Account),
		journals:       make(map[string]domain.JournalEntry),
		creditLimits:   make(map[string]domain.CreditLimitInfo),
		facilities:     make(map[string]domain.Facility),
		invoices:       make(map[string]domain.Invoice),
		counterparties: make(map[string]domain.Counterparty),
		transactions:   make(map[string]domain.Transaction),
	}
}

// clone is O(1): every table stays shared until own is called for it.
func (s *state) clone() *state {
	c := *s
	c.shared = allTables
	c.dirty = false
	return &c
}

// own gives the unit of work a private copy of the tables it is about to write.
func (s *state) own(tables table) {
	s.dirty = true
	copied := s.shared & tables
	if copied == 0 {
		return
	}
	s.shared &^= copied
	if copied&tableAccounts != 0 {
		s.accounts = maps.Clone(s.accounts)
	}
	if copied&tableJournals != 0 {
		s.journals = maps.Clone(s.journals)
	}
	if copied&tableCreditLimits != 0 {
		s.creditLimits = maps.Clone(s.creditLimits)
	}
	if copied&tableFacilities != 0 {
		s.facilities = maps.Clone(s.facilities)
	}
	if copied&tableInvoices != 0 {
		s.invoices = maps.Clone(s.invoices)
	}
	if copied&tableCounterparties != 0 {
		s.counterparties = maps.Clone(s.counterparties)
	}
	if copied&tableTransactions != 0 {
		s.transactions = maps.Clone(s.transactions)
	}
}

func (s *state) repositories() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:      s,
		JournalRepo:      s,
		ReportingRepo:    s,
		CreditLimitRepo:  s,
		InvoiceRepo:      s,
		CounterpartyRepo: s,
		TransactionRepo:  s,
	}
}

func copyJournalEntry(e domain.JournalEntry) domain.JournalEntry {
	lines := make([]domain.JournalEntryLine, len(e.Lines))
	copy(lines, e.Lines)
	e.Lines = lines
	return e
}

func copyInvoice(inv domain.Invoice) domain.Invoice {
	if inv.BuyerApproval != nil {
		ba := *inv.BuyerApproval
		inv.BuyerApproval = &ba
	}
	if inv.SellerAcceptance != nil {
		sa := *inv.SellerAcceptance
		inv.SellerAcceptance = &sa
	}
	return inv
}

// --- accounts ---

func (s *state) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	acc, ok := s.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return &acc, nil
}

func (s *state) FindAccountByCode(_ context.Context, code domain.AccountCode) (*domain.Account, error) {
	for _, acc := range s.accounts {
		if acc.Code == code {
			found := acc
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: account code %s", apperrors.ErrNotFound, code)
}

func (s *state) ListAccounts(_ context.Context) ([]domain.Account, error) {
	out := make([]domain.Account, 0, len(s.accounts))
	for _, acc := range s.accounts {
		out = append(out, acc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (s *state) SaveAccount(_ context.Context, account domain.Account) error {
	if _, ok := s.accounts[account.AccountID]; ok {
		return fmt.Errorf("%w: account %s", apperrors.ErrDuplicate, account.AccountID)
	}
	for _, existing := range s.accounts {
		if existing.Code == account.Code {
			return fmt.Errorf("%w: account code %s", apperrors.ErrDuplicate, account.Code)
		}
	}
	s.own(tableAccounts)
	s.accounts[account.AccountID] = account
	return nil
}

func (s *state) FindAccountsByIDsForUpdate(_ context.Context, accountIDs []string) (map[string]domain.Account, error) {
	out := make(map[string]domain.Account, len(accountIDs))
	for _, id := range accountIDs {
		acc, ok := s.accounts[id]
		if !ok {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
		out[id] = acc
	}
	return out, nil
}

func (s *state) UpdateAccountBalances(_ context.Context, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	for id, change := range balanceChanges {
		acc, ok := s.accounts[id]
		if !ok {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
		acc.Balance = acc.Balance.Add(change)
		acc.LastUpdatedAt = now
		acc.LastUpdatedBy = userID
		s.own(tableAccounts)
		s.accounts[id] = acc
	}
	return nil
}

// --- journal entries ---

func (s *state) FindJournalEntryByID(_ context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, ok := s.journals[entryID]
	if !ok {
		return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
	}
	out := copyJournalEntry(entry)
	return &out, nil
}

func (s *state) FindJournalEntryByIDForUpdate(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	return s.FindJournalEntryByID(ctx, entryID)
}

func (s *state) ListJournalEntriesByOrganization(_ context.Context, organizationID string) ([]domain.JournalEntry, error) {
	var out []domain.JournalEntry
	for _, e := range s.journals {
		if e.OrganizationID != nil && *e.OrganizationID == organizationID {
			out = append(out, copyJournalEntry(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EntryDate.After(out[j].EntryDate) })
	return out, nil
}

func (s *state) ListJournalEntriesByStatus(_ context.Context, status domain.JournalStatus) ([]domain.JournalEntry, error) {
	var out []domain.JournalEntry
	for _, e := range s.journals {
		if e.Status == status {
			out = append(out, copyJournalEntry(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EntryDate.Before(out[j].EntryDate) })
	return out, nil
}

func (s *state) SaveJournalEntry(_ context.Context, entry domain.JournalEntry) error {
	if _, ok := s.journals[entry.JournalEntryID]; ok {
		return fmt.Errorf("%w: journal entry %s", apperrors.ErrDuplicate, entry.JournalEntryID)
	}
	for _, line := range entry.Lines {
		if _, ok := s.accounts[line.AccountID]; !ok {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, line.AccountID)
		}
	}
	s.own(tableJournals)
	s.journals[entry.JournalEntryID] = copyJournalEntry(entry)
	return nil
}

func (s *state) MarkJournalEntryPosted(_ context.Context, entryID string, postedBy string, postedAt time.Time) error {
	entry, ok := s.journals[entryID]
	if !ok {
		return fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
	}
	entry.Status = domain.JournalPosted
	entry.PostedBy = &postedBy
	entry.PostedDate = &postedAt
	entry.LastUpdatedAt = postedAt
	entry.LastUpdatedBy = postedBy
	s.own(tableJournals)
	s.journals[entryID] = entry
	return nil
}

// --- reporting ---

func (s *state) GetPostedLineTotals(_ context.Context, asOf time.Time) ([]domain.AccountLineTotals, error) {
	totals := make(map[string]*domain.AccountLineTotals)
	for _, e := range s.journals {
		if e.Status != domain.JournalPosted || e.PostedDate == nil || e.PostedDate.After(asOf) {
			continue
		}
		for _, line := range e.Lines {
			acc, ok := s.accounts[line.AccountID]
			if !ok || !acc.IsActive {
				continue
			}
			t, ok := totals[acc.AccountID]
			if !ok {
				t = &domain.AccountLineTotals{Account: acc, TotalDebits: decimal.Zero, TotalCredits: decimal.Zero}
				totals[acc.AccountID] = t
			}
			t.TotalDebits = t.TotalDebits.Add(line.Debit)
			t.TotalCredits = t.TotalCredits.Add(line.Credit)
		}
	}
	out := make([]domain.AccountLineTotals, 0, len(totals))
	for _, t := range totals {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Account.Code < out[j].Account.Code })
	return out, nil
}

// --- credit limits ---

func (s *state) assemble(info domain.CreditLimitInfo) domain.CreditLimitInfo {
	info.Facilities = nil
	for _, f := range s.facilities {
		if f.CreditLimitInfoID == info.CreditLimitInfoID {
			info.Facilities = append(info.Facilities, f)
		}
	}
	sort.Slice(info.Facilities, func(i, j int) bool {
		a, b := info.Facilities[i], info.Facilities[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.FacilityID < b.FacilityID
	})
	return info
}

func (s *state) FindCreditLimitByOrganization(_ context.Context, organizationID string) (*domain.CreditLimitInfo, error) {
	for _, info := range s.creditLimits {
		if info.OrganizationID == organizationID {
			out := s.assemble(info)
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: credit limit for organization %s", apperrors.ErrNotFound, organizationID)
}

func (s *state) FindCreditLimitByOrganizationForUpdate(ctx context.Context, organizationID string) (*domain.CreditLimitInfo, error) {
	return s.FindCreditLimitByOrganization(ctx, organizationID)
}

func (s *state) FindCreditLimitByID(_ context.Context, creditLimitInfoID string) (*domain.CreditLimitInfo, error) {
	info, ok := s.creditLimits[creditLimitInfoID]
	if !ok {
		return nil, fmt.Errorf("%w: credit limit %s", apperrors.ErrNotFound, creditLimitInfoID)
	}
	out := s.assemble(info)
	return &out, nil
}

func (s *state) ListCreditLimits(_ context.Context) ([]domain.CreditLimitInfo, error) {
	out := make([]domain.CreditLimitInfo, 0, len(s.creditLimits))
	for _, info := range s.creditLimits {
		out = append(out, s.assemble(info))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrganizationID < out[j].OrganizationID })
	return out, nil
}

func (s *state) ListFacilitiesByRelatedParty(_ context.Context, partyID string) ([]domain.Facility, error) {
	var out []domain.Facility
	for _, f := range s.facilities {
		if f.RelatedPartyID != nil && *f.RelatedPartyID == partyID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FacilityID < out[j].FacilityID })
	return out, nil
}

func (s *state) SaveCreditLimit(_ context.Context, info domain.CreditLimitInfo) error {
	for _, existing := range s.creditLimits {
		if existing.OrganizationID == info.OrganizationID {
			return fmt.Errorf("%w: credit limit for organization %s", apperrors.ErrDuplicate, info.OrganizationID)
		}
	}
	facilities := info.Facilities
	info.Facilities = nil
	s.own(tableCreditLimits | tableFacilities)
	s.creditLimits[info.CreditLimitInfoID] = info
	for _, f := range facilities {
		f.CreditLimitInfoID = info.CreditLimitInfoID
		s.facilities[f.FacilityID] = f
	}
	return nil
}

func (s *state) SaveFacility(_ context.Context, facility domain.Facility) error {
	if _, ok := s.creditLimits[facility.CreditLimitInfoID]; !ok {
		return fmt.Errorf("%w: credit limit %s", apperrors.ErrNotFound, facility.CreditLimitInfoID)
	}
	if _, ok := s.facilities[facility.FacilityID]; ok {
		return fmt.Errorf("%w: facility %s", apperrors.ErrDuplicate, facility.FacilityID)
	}
	s.own(tableFacilities)
	s.facilities[facility.FacilityID] = facility
	return nil
}

func (s *state) UpdateFacility(_ context.Context, facility domain.Facility) error {
	if _, ok := s.facilities[facility.FacilityID]; !ok {
		return fmt.Errorf("%w: facility %s", apperrors.ErrNotFound, facility.FacilityID)
	}
	s.own(tableFacilities)
	s.facilities[facility.FacilityID] = facility
	return nil
}

// --- invoices ---

func (s *state) FindInvoiceByID(_ context.Context, invoiceID string) (*domain.Invoice, error) {
	inv, ok := s.invoices[invoiceID]
	if !ok {
		return nil, fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, invoiceID)
	}
	out := copyInvoice(inv)
	return &out, nil
}

func (s *state) FindInvoiceByIDForUpdate(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return s.FindInvoiceByID(ctx, invoiceID)
}

func (s *state) ListInvoicesByOrganization(_ context.Context, organizationID string) ([]domain.Invoice, error) {
	var out []domain.Invoice
	for _, inv := range s.invoices {
		seller := inv.SellerID != nil && *inv.SellerID == organizationID
		buyer := inv.BuyerID != nil && *inv.BuyerID == organizationID
		if seller || buyer {
			out = append(out, copyInvoice(inv))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *state) SaveInvoice(_ context.Context, invoice domain.Invoice) error {
	if _, ok := s.invoices[invoice.InvoiceID]; ok {
		return fmt.Errorf("%w: invoice %s", apperrors.ErrDuplicate, invoice.InvoiceID)
	}
	s.own(tableInvoices)
	s.invoices[invoice.InvoiceID] = copyInvoice(invoice)
	return nil
}

func (s *state) UpdateInvoice(_ context.Context, invoice domain.Invoice) error {
	if _, ok := s.invoices[invoice.InvoiceID]; !ok {
		return fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, invoice.InvoiceID)
	}
	s.own(tableInvoices)
	s.invoices[invoice.InvoiceID] = copyInvoice(invoice)
	return nil
}

// --- counterparties ---

func (s *state) FindCounterpartyByNameAndTaxID(_ context.Context, name, taxID string) (*domain.Counterparty, error) {
	for _, cp := range s.counterparties {
		if strings.EqualFold(cp.Name, name) && cp.TaxID == taxID {
			found := cp
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: counterparty %s", apperrors.ErrNotFound, name)
}

func (s *state) SaveCounterparty(_ context.Context, counterparty domain.Counterparty) error {
	if _, ok := s.counterparties[counterparty.CounterpartyID]; ok {
		return fmt.Errorf("%w: counterparty %s", apperrors.ErrDuplicate, counterparty.CounterpartyID)
	}
	s.own(tableCounterparties)
	s.counterparties[counterparty.CounterpartyID] = counterparty
	return nil
}

// --- transactions ---

func (s *state) SaveTransaction(_ context.Context, txn domain.Transaction) error {
	if _, ok := s.transactions[txn.TransactionID]; ok {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrDuplicate, txn.TransactionID)
	}
	s.own(tableTransactions)
	s.transactions[txn.TransactionID] = txn
	return nil
}

func (s *state) FindTransactionByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	txn, ok := s.transactions[transactionID]
	if !ok {
		return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}
	return &txn, nil
}

func (s *state) ListTransactionsByOrganization(_ context.Context, organizationID string) ([]domain.Transaction, error) {
	var out []domain.Transaction
	for _, txn := range s.transactions {
		if txn.OrganizationID == organizationID {
			out = append(out, txn)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].TransactionDate.Equal(out[j].TransactionDate) {
			return out[i].TransactionDate.Before(out[j].TransactionDate)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
