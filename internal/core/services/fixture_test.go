package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/adapters/database/memory"
	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/invoice_finance_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_finance_app/internal/core/services"
	"github.com/SscSPs/invoice_finance_app/internal/dto"
	"github.com/SscSPs/invoice_finance_app/internal/platform/config"
	"github.com/SscSPs/invoice_finance_app/internal/platform/metrics"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const (
	bankOrg    = "bank"
	sellerOrg  = "seller"
	buyerOrg   = "buyer"
	bankUser   = "bank-user"
	sellerUser = "seller-user"
	buyerUser  = "buyer-user"
)

// recordingNotifier keeps every delivered notification.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []domain.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, notification domain.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification)
	return nil
}

func (n *recordingNotifier) to(userID string) []domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []domain.Notification
	for _, sent := range n.sent {
		if sent.UserID == userID {
			out = append(out, sent)
		}
	}
	return out
}

type fixture struct {
	ctx      context.Context
	store    *memory.Store
	svc      *portssvc.ServiceContainer
	metrics  *metrics.Metrics
	notifier *recordingNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.New()
	store.AddOrganization(domain.Organization{OrganizationID: bankOrg, Name: "Trade Bank", IsBank: true})
	store.AddOrganization(domain.Organization{OrganizationID: sellerOrg, Name: "Acme Exports", IsSeller: true})
	store.AddOrganization(domain.Organization{OrganizationID: buyerOrg, Name: "Globex Retail", IsBuyer: true})
	store.AddUser(domain.User{UserID: bankUser, OrganizationID: bankOrg, Role: domain.RoleBankAdmin})
	store.AddUser(domain.User{UserID: sellerUser, OrganizationID: sellerOrg, Role: domain.RoleClientUser})
	store.AddUser(domain.User{UserID: buyerUser, OrganizationID: buyerOrg, Role: domain.RoleClientUser})

	chart, err := services.EnsureChartOfAccounts(ctx, store, "system")
	require.NoError(t, err)

	m := metrics.New()
	notifier := &recordingNotifier{}
	container := services.NewServiceContainer(&config.Config{SystemUserID: "system"}, services.Dependencies{
		TxManager: store,
		Directory: store,
		Notifier:  notifier,
		Chart:     chart,
		Metrics:   m,
	})
	return &fixture{ctx: ctx, store: store, svc: container, metrics: m, notifier: notifier}
}

// grantLimit gives the organization a master limit with one invoice financing facility.
func (f *fixture) grantLimit(t *testing.T, organizationID string, master, facility int64) {
	t.Helper()
	res := f.svc.Limit.CreateCreditLimitWithFacilities(f.ctx, dto.CreateCreditLimitRequest{
		OrganizationID: organizationID,
		MasterLimit:    decimal.NewFromInt(master),
		Facilities: []dto.FacilityRequest{{
			Type:            domain.FacilityInvoiceFinancing,
			TotalLimit:      decimal.NewFromInt(facility),
			ReviewEndDate:   time.Now().AddDate(1, 0, 0),
			GracePeriodDays: 30,
		}},
	}, bankUser)
	require.True(t, res.Success, res.Message)
}

// approvedInvoice uploads an invoice from seller to buyer and takes it to Approved.
func (f *fixture) approvedInvoice(t *testing.T, number string, amount int64) string {
	t.Helper()
	issued := time.Now().AddDate(0, 0, -1)
	res := f.svc.Invoice.UploadInvoice(f.ctx, dto.UploadInvoiceRequest{
		InvoiceNumber: number,
		SellerID:      sellerOrg,
		BuyerID:       buyerOrg,
		Amount:        decimal.NewFromInt(amount),
		Currency:      "usd",
		IssueDate:     issued,
		DueDate:       issued.AddDate(0, 0, 60),
	}, sellerUser)
	require.True(t, res.Success, res.Message)
	invoiceID := res.EntityID

	res = f.svc.Invoice.ValidateInvoice(f.ctx, invoiceID, bankUser)
	require.True(t, res.Success, res.Message)
	res = f.svc.Invoice.ApproveInvoice(f.ctx, invoiceID, bankUser)
	require.True(t, res.Success, res.Message)
	return invoiceID
}

func (f *fixture) invoice(t *testing.T, invoiceID string) *domain.Invoice {
	t.Helper()
	inv, err := f.svc.Invoice.GetInvoice(f.ctx, invoiceID)
	require.NoError(t, err)
	return inv
}

func (f *fixture) ownFacility(t *testing.T, organizationID string) domain.Facility {
	t.Helper()
	info, err := f.svc.Limit.GetCreditLimitInfo(f.ctx, organizationID)
	require.NoError(t, err)
	idx, ok := info.OwnFacility(domain.FacilityInvoiceFinancing)
	require.True(t, ok)
	return info.Facilities[idx]
}

func (f *fixture) balance(t *testing.T, code domain.AccountCode) decimal.Decimal {
	t.Helper()
	balances, err := f.svc.Ledger.GetAccountBalances(f.ctx)
	require.NoError(t, err)
	for _, b := range balances {
		if b.Code == code {
			return b.Balance
		}
	}
	t.Fatalf("account %s not in chart", code)
	return decimal.Zero
}

func rate(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }
