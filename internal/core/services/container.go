package services

import (
	portsrepo "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/services"
)

// NewServiceContainer wires every service against one repository provider.
// The same options reach every service so they agree on roles, clock and strictness.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:     NewAccountService(repos.AccountRepo, options...),
		Ledger:      NewLedgerService(repos.AccountRepo, repos.JournalRepo, options...),
		Reporting:   NewReportingService(repos.AccountRepo, repos.JournalRepo, options...),
		Transaction: NewTransactionService(repos.AccountRepo, repos.JournalRepo, options...),
		Closing:     NewClosingService(repos.AccountRepo, repos.JournalRepo, options...),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade     = (*accountService)(nil)
	_ portssvc.LedgerSvc            = (*ledgerService)(nil)
	_ portssvc.ReportingService     = (*reportingService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.ClosingSvc           = (*closingService)(nil)
)
