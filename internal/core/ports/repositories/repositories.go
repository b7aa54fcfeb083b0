package repositories

// RepositoryProvider holds the repositories bound to one unit of work.
type RepositoryProvider struct {
	AccountRepo      AccountRepositoryFacade
	JournalRepo      JournalRepositoryFacade
	ReportingRepo    ReportingRepository
	CreditLimitRepo  CreditLimitRepositoryFacade
	InvoiceRepo      InvoiceRepositoryFacade
	CounterpartyRepo CounterpartyRepository
	TransactionRepo  TransactionRepositoryFacade
}
