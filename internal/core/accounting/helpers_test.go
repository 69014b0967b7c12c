package accounting_test

import (
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/accounting"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

func defaultChart() accounting.Chart {
	accounts := append(domain.DefaultChartOfAccounts(), domain.Account{
		Code: "5999", Name: "Beban Lain-lain", Type: domain.Expense,
		Category: domain.CategoryOperatingExpense, NormalBalance: domain.NormalDebit,
	})
	for i := range accounts {
		accounts[i].IsActive = true
	}
	return accounting.NewChart(accounts)
}

func day(s string) time.Time {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// journal hands out insertion ids the way storage would.
type journal struct {
	nextID  int64
	entries []domain.JournalEntry
}

func (j *journal) post(date, debit, credit string, amount int64, entryType domain.EntryType) {
	template := domain.JournalEntry{
		ScopeID:   "user-1",
		Date:      day(date),
		Reference: "TEST",
		EntryType: entryType,
	}
	for _, e := range domain.PostingPair(template, debit, credit, dec(amount)) {
		j.nextID++
		e.ID = j.nextID
		j.entries = append(j.entries, e)
	}
}

func (j *journal) postClosing(entries []domain.ClosingEntry) {
	for _, e := range accounting.ClosingJournalEntries(entries) {
		j.nextID++
		e.ID = j.nextID
		j.entries = append(j.entries, e)
	}
}

func (j *journal) trialBalance(kind domain.TrialBalanceKind) domain.TrialBalance {
	entries := filterEntries(j.entries, kind.Filter(nil))
	tb, _, err := accounting.TrialBalanceFromEntries(kind, nil, defaultChart(), entries, accounting.ReplayOptions{})
	if err != nil {
		panic(err)
	}
	return tb
}

// seededJournal is a small trading period with an adjusting depreciation entry.
func seededJournal() *journal {
	j := &journal{}
	j.post("2024-01-01", "1101", "3101", 50_000_000, domain.EntryRegular)
	j.post("2024-01-03", "1301", "1101", 12_000_000, domain.EntryRegular)
	j.post("2024-01-05", "5101", "2101", 8_000_000, domain.EntryRegular)
	j.post("2024-01-10", "1101", "4101", 20_000_000, domain.EntryRegular)
	j.post("2024-01-12", "1101", "4102", 1_500_000, domain.EntryRegular)
	j.post("2024-01-15", "5201", "1101", 750_000, domain.EntryRegular)
	j.post("2024-01-20", "5203", "1101", 2_000_000, domain.EntryRegular)
	j.post("2024-01-22", "5999", "1101", 100_000, domain.EntryRegular)
	j.post("2024-01-25", "3102", "1101", 1_000_000, domain.EntryRegular)
	j.post("2024-01-31", "5301", "1311", 250_000, domain.EntryAdjusting)
	return j
}

func filterEntries(entries []domain.JournalEntry, f domain.LedgerFilter) []domain.JournalEntry {
	var out []domain.JournalEntry
	for _, e := range entries {
		if f.AccountCode != "" && e.AccountCode != f.AccountCode {
			continue
		}
		if f.StartDate != nil && e.Date.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && e.Date.After(*f.EndDate) {
			continue
		}
		if !f.Includes(e.EntryType) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// closingTotals sums closing amounts per kind.
func closingTotals(entries []domain.ClosingEntry) map[domain.ClosingKind]decimal.Decimal {
	totals := make(map[domain.ClosingKind]decimal.Decimal)
	for _, ce := range entries {
		totals[ce.Kind] = totals[ce.Kind].Add(ce.Amount)
	}
	return totals
}
