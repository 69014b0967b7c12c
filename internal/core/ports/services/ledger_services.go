package services

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerSvc exposes the running-balance view of the journal.
type LedgerSvc interface {
	// GetLedgerEntries replays the scope's entries matching the filter.
	GetLedgerEntries(ctx context.Context, scopeID string, filter domain.LedgerFilter) (*domain.LedgerResult, error)

	// GetAccountBalance is the last running balance of one account, or zero without entries.
	GetAccountBalance(ctx context.Context, scopeID, accountCode string, filter domain.LedgerFilter) (decimal.Decimal, error)

	// GetJournal lists the raw journal entries of the scope.
	GetJournal(ctx context.Context, scopeID string, filter domain.LedgerFilter) ([]domain.JournalEntry, error)
}

// ReportingService builds trial balances and financial statements.
type ReportingService interface {
	// TrialBalance builds a trial balance of the given kind as of an optional date.
	TrialBalance(ctx context.Context, scopeID string, kind domain.TrialBalanceKind, asOf *time.Time) (*domain.TrialBalance, error)

	// FinancialStatements computes the income statement and balance sheet from the adjusted trial balance.
	FinancialStatements(ctx context.Context, scopeID string, asOf *time.Time) (*domain.FinancialStatements, error)

	// PostClosingTrialBalance lists real accounts with closing entries applied.
	PostClosingTrialBalance(ctx context.Context, scopeID string) (*domain.PostClosingTrialBalance, error)
}
