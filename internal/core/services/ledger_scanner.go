package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/accounting"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/repositories"
)

// ledgerScanner loads the chart and the journal and replays them through the engine.
// Every query is a full replay; nothing is cached between calls.
type ledgerScanner struct {
	BaseService
	accountRepo portsrepo.AccountReader
	journalRepo portsrepo.JournalReader
	opts        accounting.ReplayOptions
}

func (l *ledgerScanner) chart(ctx context.Context) (accounting.Chart, error) {
	accounts, err := l.accountRepo.ListAccounts(ctx, false)
	if err != nil {
		l.LogError(ctx, err, "Failed to load chart of accounts")
		return nil, fmt.Errorf("failed to load chart of accounts: %w", err)
	}
	return accounting.NewChart(accounts), nil
}

func (l *ledgerScanner) entries(ctx context.Context, scopeID string, filter domain.LedgerFilter) ([]domain.JournalEntry, error) {
	entries, err := l.journalRepo.FindJournalEntries(ctx, scopeID, filter)
	if err != nil {
		l.LogError(ctx, err, "Failed to load journal entries", slog.String("scope_id", scopeID))
		return nil, fmt.Errorf("failed to load journal entries: %w", err)
	}
	return entries, nil
}

// replay runs the filtered journal of a scope through the ledger processor.
func (l *ledgerScanner) replay(ctx context.Context, scopeID string, filter domain.LedgerFilter) (accounting.Chart, domain.LedgerResult, error) {
	chart, err := l.chart(ctx)
	if err != nil {
		return nil, domain.LedgerResult{}, err
	}
	entries, err := l.entries(ctx, scopeID, filter)
	if err != nil {
		return nil, domain.LedgerResult{}, err
	}

	result, err := accounting.Replay(entries, chart, l.opts)
	if err != nil {
		l.LogError(ctx, err, "Ledger replay rejected journal", slog.String("scope_id", scopeID))
		return nil, domain.LedgerResult{}, err
	}
	l.warnDangling(ctx, scopeID, result)
	return chart, result, nil
}

// trialBalance builds a trial balance of the given kind from a full replay.
func (l *ledgerScanner) trialBalance(ctx context.Context, scopeID string, kind domain.TrialBalanceKind, asOf *time.Time) (domain.TrialBalance, accounting.Chart, error) {
	chart, result, err := l.replay(ctx, scopeID, kind.Filter(asOf))
	if err != nil {
		return domain.TrialBalance{}, nil, err
	}
	return accounting.BuildTrialBalance(kind, asOf, chart, result.Balances), chart, nil
}

func (l *ledgerScanner) warnDangling(ctx context.Context, scopeID string, result domain.LedgerResult) {
	for _, e := range result.DanglingEntries {
		l.LogWarn(ctx, "Journal entry references an unknown account",
			slog.String("scope_id", scopeID),
			slog.Int64("entry_id", e.ID),
			slog.String("account_code", e.AccountCode),
			slog.String("reference", e.Reference))
	}
}
