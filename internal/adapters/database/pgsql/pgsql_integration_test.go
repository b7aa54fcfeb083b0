package pgsql_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/adapters/database/pgsql"
	"github.com/SscSPs/invoice_finance_app/internal/adapters/notification"
	"github.com/SscSPs/invoice_finance_app/internal/apperrors"
	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/invoice_finance_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_finance_app/internal/core/services"
	"github.com/SscSPs/invoice_finance_app/internal/dto"
	"github.com/SscSPs/invoice_finance_app/internal/platform/config"
	"github.com/SscSPs/invoice_finance_app/internal/platform/metrics"
	"github.com/SscSPs/invoice_finance_app/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newTestPool starts a PostgreSQL container, applies the migrations and seeds
// a bank, a seller and a buyer with one user each.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if os.Getenv("IFA_INTEGRATION") != "1" {
		t.Skip("set IFA_INTEGRATION=1 to run PostgreSQL integration tests")
	}
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("ifa_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	_, err = database.RunMigrations(dsn, "file://../../../../migrations")
	require.NoError(t, err, "Failed to run migrations")

	pool, err := database.NewPgxPool(ctx, dsn, true)
	require.NoError(t, err)
	t.Cleanup(func() { database.ClosePgxPool(pool) })

	_, err = pool.Exec(ctx, `
		INSERT INTO organizations (organization_id, name, is_bank, is_buyer, is_seller) VALUES
			('bank', 'Trade Bank', TRUE, FALSE, FALSE),
			('seller', 'Acme Exports', FALSE, FALSE, TRUE),
			('buyer', 'Globex Retail', FALSE, TRUE, FALSE)`)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `
		INSERT INTO users (user_id, organization_id, name, role) VALUES
			('bank-user', 'bank', 'Bank Officer', $1),
			('seller-user', 'seller', 'Seller Clerk', $2),
			('buyer-user', 'buyer', 'Buyer Clerk', $2)`,
		string(domain.RoleBankAdmin), string(domain.RoleClientUser))
	require.NoError(t, err)
	return pool
}

func newContainer(t *testing.T, pool *pgxpool.Pool) *portssvc.ServiceContainer {
	t.Helper()
	tm := pgsql.NewTxManager(pool)
	chart, err := services.EnsureChartOfAccounts(context.Background(), tm, "system")
	require.NoError(t, err)
	return services.NewServiceContainer(&config.Config{SystemUserID: "system"}, services.Dependencies{
		TxManager: tm,
		Directory: pgsql.NewDirectory(pool),
		Notifier:  notification.LogNotifier{},
		Chart:     chart,
		Metrics:   metrics.New(),
	})
}

func TestPostgres_FundingLifecycle(t *testing.T) {
	pool := newTestPool(t)
	svc := newContainer(t, pool)
	ctx := context.Background()

	res := svc.Limit.CreateCreditLimitWithFacilities(ctx, dto.CreateCreditLimitRequest{
		OrganizationID: "seller",
		MasterLimit:    decimal.NewFromInt(10000),
		Facilities: []dto.FacilityRequest{{
			Type:            domain.FacilityInvoiceFinancing,
			TotalLimit:      decimal.NewFromInt(10000),
			ReviewEndDate:   time.Now().AddDate(1, 0, 0),
			GracePeriodDays: 30,
		}},
	}, "bank-user")
	require.True(t, res.Success, res.Message)

	issued := time.Now().AddDate(0, 0, -1)
	res = svc.Invoice.UploadInvoice(ctx, dto.UploadInvoiceRequest{
		InvoiceNumber: "INV-PG-1",
		SellerID:      "seller",
		BuyerID:       "buyer",
		Amount:        decimal.NewFromInt(1000),
		Currency:      "USD",
		IssueDate:     issued,
		DueDate:       issued.AddDate(0, 0, 30),
	}, "seller-user")
	require.True(t, res.Success, res.Message)
	invoiceID := res.EntityID

	require.True(t, svc.Invoice.ValidateInvoice(ctx, invoiceID, "bank-user").Success)
	require.True(t, svc.Invoice.ApproveInvoice(ctx, invoiceID, "bank-user").Success)

	// concurrent funding must serialize on the invoice row
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := svc.Invoice.FundInvoice(ctx, invoiceID, dto.FundInvoiceRequest{FinalDiscountRate: decimal.NewFromInt(5)}, "bank-user")
			if r.Success {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, successes)

	inv, err := svc.Invoice.GetInvoice(ctx, invoiceID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceFunded, inv.Status)
	require.NotNil(t, inv.FundedAmount)
	assert.True(t, decimal.NewFromInt(950).Equal(*inv.FundedAmount))

	info, err := svc.Limit.GetCreditLimitInfo(ctx, "seller")
	require.NoError(t, err)
	idx, ok := info.OwnFacility(domain.FacilityInvoiceFinancing)
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(1000).Equal(info.Facilities[idx].CurrentUtilization))

	entries, err := svc.Ledger.GetJournalEntriesForOrganization(ctx, "seller")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Len(t, entries[0].Lines, 6)
	assert.True(t, entries[0].IsPosted())
	assert.True(t, decimal.NewFromInt(2000).Equal(entries[0].TotalDebits()))

	err = svc.Ledger.PostJournalEntry(ctx, entries[0].JournalEntryID, "bank-user")
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	res = svc.Invoice.ProcessPayment(ctx, invoiceID, dto.PaymentRequest{Amount: decimal.NewFromInt(1000)}, "bank-user")
	require.True(t, res.Success, res.Message)

	tb, err := svc.Ledger.GenerateTrialBalance(ctx, time.Now().Add(time.Minute), "bank-user")
	require.NoError(t, err)
	assert.True(t, tb.IsBalanced)

	info, err = svc.Limit.GetCreditLimitInfo(ctx, "seller")
	require.NoError(t, err)
	assert.True(t, info.TotalUtilization().IsZero())
}

func TestPostgres_UnitOfWorkRollsBack(t *testing.T) {
	pool := newTestPool(t)
	svc := newContainer(t, pool)
	ctx := context.Background()

	_, err := svc.Ledger.CreateJournalEntry(ctx, dto.CreateJournalEntryRequest{
		Description: "Half valid",
		Lines: []dto.JournalLineRequest{
			{AccountCode: domain.AccountCash, Debit: decimal.NewFromInt(10)},
			{AccountID: "missing", Credit: decimal.NewFromInt(10)},
		},
	}, "bank-user")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	unposted, err := svc.Ledger.GetUnpostedJournalEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, unposted)

	res := svc.Limit.CheckFacilityLimit(ctx, "seller", domain.FacilityInvoiceFinancing, decimal.NewFromInt(1))
	assert.ErrorIs(t, res.Err, apperrors.ErrNotFound)
}
