package pgsql

import (
	portsrepo "github.com/SscSPs/invoice_finance_app/internal/core/ports/repositories"
)

// NewRepositoryProvider binds every repository to db, normally the transaction of one unit of work.
func NewRepositoryProvider(db DBTX) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:      newPgxAccountRepository(db),
		JournalRepo:      newPgxJournalRepository(db),
		ReportingRepo:    newReportingRepository(db),
		CreditLimitRepo:  newPgxCreditLimitRepository(db),
		InvoiceRepo:      newPgxInvoiceRepository(db),
		CounterpartyRepo: newPgxCounterpartyRepository(db),
		TransactionRepo:  newPgxTransactionRepository(db),
	}
}
