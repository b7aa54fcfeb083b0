package services

import (
	portsrepo "github.com/SscSPs/invoice_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoice_finance_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_finance_app/internal/platform/config"
	"github.com/SscSPs/invoice_finance_app/internal/platform/metrics"
)

// Dependencies are the collaborators every service is built from.
type Dependencies struct {
	TxManager portsrepo.TransactionManager
	Directory portssvc.OrganizationDirectory
	Notifier  portssvc.Notifier
	Chart     *ChartOfAccounts
	Metrics   *metrics.Metrics
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, deps Dependencies) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The ledger comes first since the recorder posts through it
	container.Ledger = NewJournalService(
		deps.TxManager,
		deps.Chart,
		WithJournalMetrics(deps.Metrics),
	)

	container.Transactions = NewTransactionService(
		deps.TxManager,
		container.Ledger,
		WithTransactionMetrics(deps.Metrics),
		WithSystemUser(cfg.SystemUserID),
	)

	container.Limit = NewLimitService(
		deps.TxManager,
		deps.Directory,
		container.Transactions,
		WithLimitMetrics(deps.Metrics),
	)

	invoiceOpts := []InvoiceServiceOption{WithInvoiceMetrics(deps.Metrics)}
	if deps.Notifier != nil {
		invoiceOpts = append(invoiceOpts, WithNotifier(deps.Notifier))
	}
	container.Invoice = NewInvoiceService(
		deps.TxManager,
		deps.Directory,
		container.Transactions,
		invoiceOpts...,
	)

	container.Reporting = NewReportingService(deps.TxManager, deps.Directory)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.InvoiceSvcFacade       = (*invoiceService)(nil)
	_ portssvc.LimitSvcFacade         = (*limitService)(nil)
	_ portssvc.LedgerSvcFacade        = (*journalService)(nil)
	_ portssvc.TransactionRecorderSvc = (*transactionService)(nil)
	_ portssvc.ReportingSvcFacade     = (*reportingService)(nil)
)
