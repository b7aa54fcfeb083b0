package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/apperrors"
	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/invoice_finance_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_finance_app/internal/dto"
	"github.com/SscSPs/invoice_finance_app/internal/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetAllAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockLedgerService) GetAccountBalances(ctx context.Context) ([]domain.AccountBalance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBalance), args.Error(1)
}
func (m *MockLedgerService) GetJournalEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockLedgerService) GetJournalEntriesForOrganization(ctx context.Context, organizationID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}
func (m *MockLedgerService) GetUnpostedJournalEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}
func (m *MockLedgerService) CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockLedgerService) PostJournalEntry(ctx context.Context, entryID string, userID string) error {
	args := m.Called(ctx, entryID, userID)
	return args.Error(0)
}
func (m *MockLedgerService) RecordTransactionEntry(ctx context.Context, txn domain.Transaction, event domain.TransactionEvent, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, txn, event, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockLedgerService) GenerateTrialBalance(ctx context.Context, asOf time.Time, userID string) (*domain.TrialBalance, error) {
	args := m.Called(ctx, asOf, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalance), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite ---
type LedgerHandlerTestSuite struct {
	handlerSuite
	mockLedger *MockLedgerService
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	v1 := suite.newAPI()
	suite.mockLedger = new(MockLedgerService)
	handlers.RegisterLedgerRoutes(v1, suite.mockLedger)
}

const balancedEntry = `{"description":"Accrual","lines":[
	{"accountCode":"1100","debit":"100"},
	{"accountCode":"4200","credit":"100"}]}`

// --- Test Cases ---

func (suite *LedgerHandlerTestSuite) TestCreateJournalEntry_Created() {
	suite.mockLedger.On("CreateJournalEntry", mock.Anything,
		mock.MatchedBy(func(r dto.CreateJournalEntryRequest) bool { return len(r.Lines) == 2 && r.Description == "Accrual" }),
		suite.userID,
	).Return(&domain.JournalEntry{JournalEntryID: "je-1", Status: domain.JournalPending}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/ledger/journal-entries", balancedEntry)

	suite.Equal(http.StatusCreated, w.Code)
	var entry domain.JournalEntry
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &entry))
	suite.Equal("je-1", entry.JournalEntryID)
	suite.Equal(domain.JournalPending, entry.Status)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestCreateJournalEntry_SingleLineIsBadRequest() {
	w := suite.do(http.MethodPost, "/api/v1/ledger/journal-entries",
		`{"description":"Half","lines":[{"accountCode":"1100","debit":"100"}]}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedger.AssertNotCalled(suite.T(), "CreateJournalEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestCreateJournalEntry_UnbalancedIsBadRequest() {
	suite.mockLedger.On("CreateJournalEntry", mock.Anything, mock.Anything, suite.userID).
		Return(nil, fmt.Errorf("%w: journal entry is unbalanced", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPost, "/api/v1/ledger/journal-entries", balancedEntry)

	suite.Equal(http.StatusBadRequest, w.Code)
	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Contains(body["error"], "unbalanced")
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestPostJournalEntry_ErrorsMapToStatus() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"posted", nil, http.StatusNoContent},
		{"already posted", fmt.Errorf("%w: journal entry je-1 is already posted", apperrors.ErrConflict), http.StatusConflict},
		{"missing", fmt.Errorf("%w: journal entry je-1", apperrors.ErrNotFound), http.StatusNotFound},
		{"unbalanced", fmt.Errorf("%w: journal entry je-1 is unbalanced", apperrors.ErrValidation), http.StatusBadRequest},
		{"storage", fmt.Errorf("%w: deadlock", apperrors.ErrPosting), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			suite.mockLedger.On("PostJournalEntry", mock.Anything, "je-1", suite.userID).Return(tt.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/ledger/journal-entries/je-1/post", "")

			suite.Equal(tt.status, w.Code)
			suite.mockLedger.AssertExpectations(suite.T())
		})
	}
}

func (suite *LedgerHandlerTestSuite) TestTrialBalance_AsOfCoversWholeDay() {
	asOf := time.Date(2024, 12, 31, 23, 59, 59, 999999999, time.UTC)
	suite.mockLedger.On("GenerateTrialBalance", mock.Anything,
		mock.MatchedBy(func(t time.Time) bool { return t.Equal(asOf) }),
		suite.userID,
	).Return(&domain.TrialBalance{
		AsOfDate:     asOf,
		TotalDebits:  decimal.NewFromInt(100),
		TotalCredits: decimal.NewFromInt(100),
		IsBalanced:   true,
		Rows: []domain.TrialBalanceRow{
			{AccountCode: domain.AccountCash, AccountName: "Cash", AccountType: domain.Asset, DebitBalance: decimal.NewFromInt(100), CreditBalance: decimal.Zero},
		},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/ledger/trial-balance?asOf=2024-12-31", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TrialBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2024-12-31", resp.AsOf)
	suite.True(resp.IsBalanced)
	suite.Require().Len(resp.Rows, 1)
	suite.True(decimal.NewFromInt(100).Equal(resp.Totals.Debit))
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestTrialBalance_InvalidDate() {
	w := suite.do(http.MethodGet, "/api/v1/ledger/trial-balance?asOf=31-12-2024", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedger.AssertNotCalled(suite.T(), "GenerateTrialBalance", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestGetJournalEntry_NotFound() {
	suite.mockLedger.On("GetJournalEntry", mock.Anything, "je-404").
		Return(nil, fmt.Errorf("%w: journal entry je-404", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/ledger/journal-entries/je-404", "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestListUnposted_InternalErrorHidesCause() {
	suite.mockLedger.On("GetUnpostedJournalEntries", mock.Anything).
		Return(nil, fmt.Errorf("pq: relation does not exist")).Once()

	w := suite.do(http.MethodGet, "/api/v1/ledger/unposted-entries", "")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "pq:")
	suite.mockLedger.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestLedgerHandler(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
