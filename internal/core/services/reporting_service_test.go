package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/apperrors"
	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	"github.com/SscSPs/invoice_finance_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allocate(t *testing.T, f *fixture, amount int64) {
	t.Helper()
	res := f.svc.Limit.AllocateBuyerLimit(f.ctx, dto.AllocateBuyerLimitRequest{
		SellerID:     sellerOrg,
		BuyerID:      buyerOrg,
		FacilityType: domain.FacilityInvoiceFinancing,
		Amount:       decimal.NewFromInt(amount),
	}, bankUser)
	require.True(t, res.Success, res.Message)
}

func TestReportingService_PureBuyerSeesOnlyAllocations(t *testing.T) {
	f := newFixture(t)
	f.grantLimit(t, sellerOrg, 5000, 5000)
	allocate(t, f, 2000)

	_, err := f.svc.Reporting.GenerateLimitReport(f.ctx, buyerOrg)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	inquiry, err := f.svc.Reporting.GenerateLimitInquiry(f.ctx, buyerOrg)
	require.NoError(t, err)
	assert.Equal(t, "Globex Retail", inquiry.OrganizationName)
	assert.Nil(t, inquiry.MasterLimit, "a pure buyer has no master limit to show")
	require.Len(t, inquiry.Facilities, 1)
	line := inquiry.Facilities[0]
	assert.True(t, decimal.NewFromInt(2000).Equal(line.TotalLimit))
	assert.Equal(t, domain.FacilityActive, line.Status)
	assert.Empty(t, inquiry.ActiveTransactions)

	_, err = f.svc.Reporting.GenerateLimitInquiry(f.ctx, "nobody")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestReportingService_SellerReport(t *testing.T) {
	f := newFixture(t)
	f.grantLimit(t, sellerOrg, 10000, 8000)
	invoiceID := f.approvedInvoice(t, "INV-500", 2000)
	require.True(t, f.svc.Invoice.FundInvoice(f.ctx, invoiceID, dto.FundInvoiceRequest{FinalDiscountRate: rate(2)}, bankUser).Success)

	report, err := f.svc.Reporting.GenerateLimitReport(f.ctx, sellerOrg)
	require.NoError(t, err)
	require.NotNil(t, report.MasterLimit)
	assert.True(t, decimal.NewFromInt(10000).Equal(*report.MasterLimit))
	assert.True(t, decimal.NewFromInt(2000).Equal(*report.TotalUtilization))
	assert.True(t, decimal.NewFromInt(8000).Equal(*report.AvailableMasterLimit))
	assert.True(t, decimal.NewFromInt(20).Equal(*report.UtilizationPercentage))
	require.Len(t, report.Facilities, 1)
	assert.True(t, decimal.NewFromInt(6000).Equal(report.Facilities[0].AvailableLimit))
	require.Len(t, report.ActiveTransactions, 1)
	assert.Equal(t, domain.TxnInvoiceFunding, report.ActiveTransactions[0].Type)

	all, err := f.svc.Reporting.GenerateAllLimitsReport(f.ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, sellerOrg, all[0].OrganizationID)
}

func TestReportingService_LimitTree(t *testing.T) {
	f := newFixture(t)
	f.grantLimit(t, sellerOrg, 5000, 5000)
	allocate(t, f, 1500)

	tree, err := f.svc.Reporting.GenerateLimitTree(f.ctx)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, "Acme Exports", tree[0].OrganizationName)
	assert.True(t, decimal.NewFromInt(5000).Equal(tree[0].Facility.TotalLimit))
	require.Len(t, tree[0].SubAllocations, 1)
	assert.True(t, decimal.NewFromInt(1500).Equal(tree[0].SubAllocations[0].AllocatedLimit))
}

func TestReportingService_AccountStatement(t *testing.T) {
	f := newFixture(t)
	f.grantLimit(t, sellerOrg, 10000, 10000)
	invoiceID := f.approvedInvoice(t, "INV-501", 1000)
	require.True(t, f.svc.Invoice.FundInvoice(f.ctx, invoiceID, dto.FundInvoiceRequest{FinalDiscountRate: rate(5)}, bankUser).Success)
	_, err := f.svc.Transactions.RecordFeeCharge(f.ctx, dto.RecordFeeRequest{OrganizationID: sellerOrg, Amount: decimal.NewFromInt(15)}, bankUser)
	require.NoError(t, err)

	from := time.Now().AddDate(0, 0, -1)
	to := time.Now().Add(time.Hour)
	stmt, err := f.svc.Reporting.GenerateAccountStatement(f.ctx, sellerOrg, from, to)
	require.NoError(t, err)
	assert.Contains(t, stmt.StatementNumber, sellerOrg)
	assert.True(t, stmt.OpeningBalance.IsZero())
	assert.True(t, decimal.NewFromInt(-965).Equal(stmt.ClosingBalance), "closing %s", stmt.ClosingBalance)

	var funding *domain.StatementLine
	for i := range stmt.Lines {
		if stmt.Lines[i].Type == domain.TxnInvoiceFunding {
			funding = &stmt.Lines[i]
		}
	}
	require.NotNil(t, funding)
	assert.True(t, decimal.NewFromInt(-950).Equal(funding.Amount))

	_, err = f.svc.Reporting.GenerateAccountStatement(f.ctx, sellerOrg, to, from)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	later, err := f.svc.Reporting.GenerateAccountStatement(f.ctx, sellerOrg, to.Add(time.Hour), to.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, later.Lines)
	assert.True(t, decimal.NewFromInt(-965).Equal(later.OpeningBalance))
}
