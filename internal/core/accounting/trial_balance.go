package accounting

import (
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildTrialBalance turns per-account balances into a trial balance. Every active
// account is listed, and so is any inactive account still carrying a balance.
// Post-closing balances keep only real accounts.
func BuildTrialBalance(kind domain.TrialBalanceKind, asOf *time.Time, chart Chart, balances map[string]decimal.Decimal) domain.TrialBalance {
	tb := domain.TrialBalance{
		Kind:        kind,
		AsOf:        asOf,
		Rows:        []domain.TrialBalanceRow{},
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	for _, account := range chart.Sorted() {
		if kind == domain.TrialBalancePostClosing && !account.Type.IsReal() {
			continue
		}
		balance, ok := balances[account.Code]
		if !ok {
			balance = decimal.Zero
		}
		if !account.IsActive && balance.IsZero() {
			continue
		}
		debit, credit := SplitBalance(account.NormalBalance, balance)
		tb.Add(account, debit, credit)
	}
	return tb
}

// TrialBalanceFromEntries replays entries and builds the trial balance in one step.
func TrialBalanceFromEntries(kind domain.TrialBalanceKind, asOf *time.Time, chart Chart, entries []domain.JournalEntry, opts ReplayOptions) (domain.TrialBalance, domain.LedgerResult, error) {
	ledger, err := Replay(entries, chart, opts)
	if err != nil {
		return domain.TrialBalance{}, domain.LedgerResult{}, err
	}
	return BuildTrialBalance(kind, asOf, chart, ledger.Balances), ledger, nil
}
