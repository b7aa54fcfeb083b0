package memory

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_finance_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapPtr(m any) uintptr { return reflect.ValueOf(m).Pointer() }

func TestState_CloneSharesTablesUntilWritten(t *testing.T) {
	ctx := context.Background()
	base := newState()
	base.accounts["cash"] = domain.Account{AccountID: "cash", Code: domain.AccountCash, Balance: decimal.Zero, IsActive: true}

	work := base.clone()
	_, err := work.FindAccountByID(ctx, "cash")
	require.NoError(t, err)
	_, err = work.ListAccounts(ctx)
	require.NoError(t, err)
	assert.False(t, work.dirty)
	assert.Equal(t, mapPtr(base.accounts), mapPtr(work.accounts), "reads leave tables shared")
	assert.Equal(t, mapPtr(base.invoices), mapPtr(work.invoices))

	require.NoError(t, work.UpdateAccountBalances(ctx, map[string]decimal.Decimal{"cash": decimal.NewFromInt(10)}, "u", time.Now()))
	assert.True(t, work.dirty)
	assert.NotEqual(t, mapPtr(base.accounts), mapPtr(work.accounts), "written table is copied")
	assert.Equal(t, mapPtr(base.journals), mapPtr(work.journals), "untouched tables stay shared")
	assert.True(t, base.accounts["cash"].Balance.IsZero(), "published state is not mutated")
	assert.True(t, decimal.NewFromInt(10).Equal(work.accounts["cash"].Balance))

	copied := mapPtr(work.accounts)
	require.NoError(t, work.UpdateAccountBalances(ctx, map[string]decimal.Decimal{"cash": decimal.NewFromInt(5)}, "u", time.Now()))
	assert.Equal(t, copied, mapPtr(work.accounts), "a table is copied once per unit of work")
}

func TestStore_ReadOnlyUnitOfWorkKeepsPublishedState(t *testing.T) {
	ctx := context.Background()
	store := New()
	require.NoError(t, store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		return repos.AccountRepo.SaveAccount(ctx, domain.Account{AccountID: "cash", Code: domain.AccountCash, Balance: decimal.Zero})
	}))
	published := store.st

	require.NoError(t, store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		_, err := repos.AccountRepo.ListAccounts(ctx)
		return err
	}))
	assert.Same(t, published, store.st)

	require.NoError(t, store.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		return repos.TransactionRepo.SaveTransaction(ctx, domain.Transaction{TransactionID: "t1", OrganizationID: "org"})
	}))
	assert.NotSame(t, published, store.st)
	assert.Equal(t, mapPtr(published.accounts), mapPtr(store.st.accounts), "accounts were never copied")
	assert.Len(t, published.transactions, 0)
	assert.Len(t, store.st.transactions, 1)
}
