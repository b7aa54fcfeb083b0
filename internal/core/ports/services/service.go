package services

// ServiceContainer holds instances of all the application services.
// It is the entry point handlers use to reach the core.
type ServiceContainer struct {
	Invoice      InvoiceSvcFacade
	Limit        LimitSvcFacade
	Ledger       LedgerSvcFacade
	Transactions TransactionRecorderSvc
	Reporting    ReportingSvcFacade
}
