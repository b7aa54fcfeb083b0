package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/adapters/database/memory"
	"github.com/SscSPs/invoice_finance_app/internal/apperrors"
	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_finance_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

func account(id string, code domain.AccountCode, accType domain.AccountType) domain.Account {
	return domain.Account{
		AccountID:   id,
		Code:        code,
		Name:        string(code),
		AccountType: accType,
		Balance:     decimal.Zero,
		IsActive:    true,
		AuditFields: domain.NewAuditFields("system", now),
	}
}

func TestStore_WithinTxPublishesOnSuccess(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	err := store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		return repos.AccountRepo.SaveAccount(ctx, account("cash", domain.AccountCash, domain.Asset))
	})
	require.NoError(t, err)

	err = store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		acc, err := repos.AccountRepo.FindAccountByCode(ctx, domain.AccountCash)
		require.NoError(t, err)
		assert.Equal(t, "cash", acc.AccountID)
		return nil
	})
	require.NoError(t, err)
}

func TestStore_WithinTxDiscardsOnError(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		require.NoError(t, repos.AccountRepo.SaveAccount(ctx, account("cash", domain.AccountCash, domain.Asset)))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	err = store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		_, err := repos.AccountRepo.FindAccountByID(ctx, "cash")
		return err
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStore_WithinTxHonoursCancelledContext(t *testing.T) {
	store := memory.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := store.WithinTx(ctx, func(context.Context, portsrepo.RepositoryProvider) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestStore_AccountCodesAreUnique(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	err := store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		require.NoError(t, repos.AccountRepo.SaveAccount(ctx, account("a", domain.AccountCash, domain.Asset)))
		return repos.AccountRepo.SaveAccount(ctx, account("b", domain.AccountCash, domain.Asset))
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestStore_ReadsReturnCopies(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	entry := domain.JournalEntry{
		JournalEntryID: "je-1",
		Status:         domain.JournalPending,
		EntryDate:      now,
		Lines: []domain.JournalEntryLine{
			{LineID: "l1", AccountID: "cash", Debit: decimal.NewFromInt(10), Credit: decimal.Zero},
			{LineID: "l2", AccountID: "income", Debit: decimal.Zero, Credit: decimal.NewFromInt(10)},
		},
	}

	err := store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		require.NoError(t, repos.AccountRepo.SaveAccount(ctx, account("cash", domain.AccountCash, domain.Asset)))
		require.NoError(t, repos.AccountRepo.SaveAccount(ctx, account("income", domain.AccountFeeIncome, domain.Revenue)))
		return repos.JournalRepo.SaveJournalEntry(ctx, entry)
	})
	require.NoError(t, err)

	err = store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		found, err := repos.JournalRepo.FindJournalEntryByID(ctx, "je-1")
		require.NoError(t, err)
		found.Lines[0].Debit = decimal.NewFromInt(999)

		again, err := repos.JournalRepo.FindJournalEntryByID(ctx, "je-1")
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(10).Equal(again.Lines[0].Debit))
		return nil
	})
	require.NoError(t, err)
}

func TestStore_SaveJournalEntryRejectsUnknownAccount(t *testing.T) {
	store := memory.New()
	err := store.WithinTx(context.Background(), func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		return repos.JournalRepo.SaveJournalEntry(ctx, domain.JournalEntry{
			JournalEntryID: "je-1",
			Lines:          []domain.JournalEntryLine{{AccountID: "missing", Debit: decimal.NewFromInt(1)}},
		})
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStore_PostedLineTotalsRespectAsOf(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	postedAt := now.Add(time.Hour)

	err := store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		require.NoError(t, repos.AccountRepo.SaveAccount(ctx, account("cash", domain.AccountCash, domain.Asset)))
		require.NoError(t, repos.AccountRepo.SaveAccount(ctx, account("treasury", domain.AccountDueToTreasury, domain.Liability)))
		require.NoError(t, repos.JournalRepo.SaveJournalEntry(ctx, domain.JournalEntry{
			JournalEntryID: "je-1",
			Status:         domain.JournalPending,
			Lines: []domain.JournalEntryLine{
				{LineID: "l1", AccountID: "cash", Debit: decimal.NewFromInt(500), Credit: decimal.Zero},
				{LineID: "l2", AccountID: "treasury", Debit: decimal.Zero, Credit: decimal.NewFromInt(500)},
			},
		}))
		return repos.JournalRepo.MarkJournalEntryPosted(ctx, "je-1", "system", postedAt)
	})
	require.NoError(t, err)

	err = store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		before, err := repos.ReportingRepo.GetPostedLineTotals(ctx, now)
		require.NoError(t, err)
		assert.Empty(t, before)

		after, err := repos.ReportingRepo.GetPostedLineTotals(ctx, postedAt)
		require.NoError(t, err)
		require.Len(t, after, 2)
		assert.Equal(t, domain.AccountCash, after[0].Account.Code)
		assert.True(t, decimal.NewFromInt(500).Equal(after[0].TotalDebits))
		assert.True(t, decimal.NewFromInt(500).Equal(after[1].TotalCredits))
		return nil
	})
	require.NoError(t, err)
}

func TestStore_CreditLimitAssemblesFacilities(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	buyer := "buyer"

	err := store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		require.NoError(t, repos.CreditLimitRepo.SaveCreditLimit(ctx, domain.CreditLimitInfo{
			CreditLimitInfoID: "cli-1",
			OrganizationID:    "seller",
			MasterLimit:       decimal.NewFromInt(5000),
			AuditFields:       domain.NewAuditFields("bank", now),
			Facilities: []domain.Facility{{
				FacilityID:  "own",
				Type:        domain.FacilityInvoiceFinancing,
				TotalLimit:  decimal.NewFromInt(5000),
				AuditFields: domain.NewAuditFields("bank", now),
			}},
		}))
		return repos.CreditLimitRepo.SaveFacility(ctx, domain.Facility{
			FacilityID:        "sub",
			CreditLimitInfoID: "cli-1",
			Type:              domain.FacilityInvoiceFinancing,
			TotalLimit:        decimal.NewFromInt(2000),
			AllocatedLimit:    decimal.NewFromInt(2000),
			RelatedPartyID:    &buyer,
			AuditFields:       domain.NewAuditFields("bank", now.Add(time.Minute)),
		})
	})
	require.NoError(t, err)

	err = store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		info, err := repos.CreditLimitRepo.FindCreditLimitByOrganization(ctx, "seller")
		require.NoError(t, err)
		require.Len(t, info.Facilities, 2)
		assert.Equal(t, "own", info.Facilities[0].FacilityID)
		assert.Equal(t, "cli-1", info.Facilities[0].CreditLimitInfoID)

		granted, err := repos.CreditLimitRepo.ListFacilitiesByRelatedParty(ctx, "buyer")
		require.NoError(t, err)
		require.Len(t, granted, 1)
		assert.Equal(t, "sub", granted[0].FacilityID)

		err = repos.CreditLimitRepo.SaveCreditLimit(ctx, domain.CreditLimitInfo{CreditLimitInfoID: "cli-2", OrganizationID: "seller"})
		assert.ErrorIs(t, err, apperrors.ErrDuplicate)
		return nil
	})
	require.NoError(t, err)
}

func TestStore_Directory(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	store.AddOrganization(domain.Organization{OrganizationID: "bank", Name: "Bank", IsBank: true})
	store.AddOrganization(domain.Organization{OrganizationID: "seller", Name: "Seller", IsSeller: true})
	store.AddUser(domain.User{UserID: "u2", OrganizationID: "bank"})
	store.AddUser(domain.User{UserID: "u1", OrganizationID: "bank"})
	store.AddUser(domain.User{UserID: "u3", OrganizationID: "seller"})

	org, err := store.FindOrganizationByID(ctx, "seller")
	require.NoError(t, err)
	assert.True(t, org.IsSeller)

	_, err = store.FindOrganizationByID(ctx, "nobody")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = store.FindUserByID(ctx, "nobody")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	bankUsers, err := store.ListBankUserIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, bankUsers)

	sellerUsers, err := store.ListUserIDsByOrganization(ctx, "seller")
	require.NoError(t, err)
	assert.Equal(t, []string{"u3"}, sellerUsers)
}
