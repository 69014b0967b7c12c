package accounting

import (
	"fmt"
	"sort"

	"github.com/SscSPs/bookkeeping_ledger/internal/apperrors"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReplayOptions controls how Replay treats entries whose account is missing from the chart.
type ReplayOptions struct {
	// Strict turns a dangling account reference into an error instead of a neutral line.
	Strict bool
}

// SortEntries orders entries by date, then by insertion id.
func SortEntries(entries []domain.JournalEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		return entries[i].ID < entries[j].ID
	})
}

// Replay folds entries into per-account running balances. Entries are taken in
// (date, id) order. Each line carries the balance of its own account after the entry.
// Entries pointing at unknown accounts leave every balance unchanged and are
// reported in DanglingEntries, unless opts.Strict is set.
func Replay(entries []domain.JournalEntry, chart Chart, opts ReplayOptions) (domain.LedgerResult, error) {
	ordered := make([]domain.JournalEntry, len(entries))
	copy(ordered, entries)
	SortEntries(ordered)

	result := domain.LedgerResult{
		Lines:    make([]domain.LedgerLine, 0, len(ordered)),
		Balance:  decimal.Zero,
		Balances: make(map[string]decimal.Decimal),
	}

	for _, entry := range ordered {
		account, ok := chart[entry.AccountCode]
		if !ok {
			if opts.Strict {
				return domain.LedgerResult{}, fmt.Errorf("%w: entry %d references %q", apperrors.ErrDanglingAccount, entry.ID, entry.AccountCode)
			}
			result.DanglingEntries = append(result.DanglingEntries, entry)
			result.Lines = append(result.Lines, domain.LedgerLine{
				Entry:          entry,
				AccountName:    entry.AccountCode,
				RunningBalance: result.Balances[entry.AccountCode],
				Dangling:       true,
			})
			continue
		}

		balance := result.Balances[entry.AccountCode].Add(SignedAmount(account.NormalBalance, entry.Debit, entry.Credit))
		result.Balances[entry.AccountCode] = balance
		result.Lines = append(result.Lines, domain.LedgerLine{
			Entry:          entry,
			AccountName:    account.Name,
			RunningBalance: balance,
		})
	}

	if n := len(result.Lines); n > 0 {
		result.Balance = result.Lines[n-1].RunningBalance
	}
	return result, nil
}
