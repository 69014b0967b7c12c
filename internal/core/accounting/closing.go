package accounting

import (
	"fmt"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClosingGenerator produces the period-end entries that zero nominal accounts into the
// income summary, then move net income and drawings into capital.
type ClosingGenerator struct {
	Roles domain.ChartRoles
	Now   func() time.Time
	NewID func() string
}

// NewClosingGenerator returns a generator using the wall clock and random UUIDs.
func NewClosingGenerator(roles domain.ChartRoles) *ClosingGenerator {
	return &ClosingGenerator{Roles: roles, Now: time.Now, NewID: uuid.NewString}
}

// closingRun numbers references within a single Generate call.
type closingRun struct {
	gen     *ClosingGenerator
	chart   Chart
	scopeID string
	date    time.Time
	stamp   string
	seq     int
	entries []domain.ClosingEntry
}

func (r *closingRun) emit(kind domain.ClosingKind, debitCode, creditCode string, amount decimal.Decimal, description string) {
	r.seq++
	r.entries = append(r.entries, domain.ClosingEntry{
		ClosingEntryID:    r.gen.NewID(),
		ScopeID:           r.scopeID,
		Date:              r.date,
		Reference:         fmt.Sprintf("CLS-%s-%s-%03d", kind, r.stamp, r.seq),
		Description:       description,
		DebitAccountCode:  debitCode,
		DebitAccountName:  r.chart.Name(debitCode),
		CreditAccountCode: creditCode,
		CreditAccountName: r.chart.Name(creditCode),
		Amount:            amount,
		Kind:              kind,
	})
}

// Generate builds closing entries from an adjusted trial balance (adjusting entries in,
// prior closing entries out). closingDate is the posting date of the generated entries.
// It also returns the net income the entries transfer to capital.
func (g *ClosingGenerator) Generate(scopeID string, tb domain.TrialBalance, chart Chart, closingDate time.Time) ([]domain.ClosingEntry, decimal.Decimal) {
	run := &closingRun{
		gen:     g,
		chart:   chart,
		scopeID: scopeID,
		date:    closingDate,
		stamp:   g.Now().Format("20060102"),
		entries: []domain.ClosingEntry{},
	}
	summary := g.Roles.IncomeSummaryAccount
	capital := g.Roles.CapitalAccount

	for _, row := range tb.AccountsByType(domain.Revenue) {
		run.closeNominal(domain.ClosingRevenue, row, summary, "Penutupan pendapatan")
	}
	for _, row := range tb.AccountsByType(domain.Expense) {
		if g.Roles.IsCOGS(row.Account.Code) {
			continue
		}
		run.closeNominal(domain.ClosingExpense, row, summary, "Penutupan beban")
	}
	for _, row := range tb.AccountsByType(domain.Expense) {
		if !g.Roles.IsCOGS(row.Account.Code) {
			continue
		}
		run.closeNominal(domain.ClosingCOGS, row, summary, "Penutupan harga pokok penjualan")
	}

	netIncome := CalculateIncomeStatement(tb, g.Roles).NetIncome
	switch {
	case netIncome.IsPositive():
		run.emit(domain.ClosingIncome, summary, capital, netIncome, "Penutupan laba bersih ke modal")
	case netIncome.IsNegative():
		run.emit(domain.ClosingLoss, capital, summary, netIncome.Abs(), "Penutupan rugi bersih ke modal")
	}

	if row, ok := tb.Row(g.Roles.DrawingAccount); ok {
		switch {
		case row.Debit.IsPositive():
			run.emit(domain.ClosingDrawing, capital, row.Account.Code, row.Debit, "Penutupan prive ke modal")
		case row.Credit.IsPositive():
			run.emit(domain.ClosingDrawing, row.Account.Code, capital, row.Credit, "Penutupan prive ke modal")
		}
	}

	return run.entries, netIncome
}

// closeNominal zeroes one nominal account against the income summary. A credit balance
// is closed with a debit to the account, a debit balance with a credit to it.
func (r *closingRun) closeNominal(kind domain.ClosingKind, row domain.TrialBalanceRow, summary, label string) {
	description := fmt.Sprintf("%s: %s", label, row.Account.Name)
	switch {
	case row.Credit.IsPositive():
		r.emit(kind, row.Account.Code, summary, row.Credit, description)
	case row.Debit.IsPositive():
		r.emit(kind, summary, row.Account.Code, row.Debit, description)
	}
}

// ClosingJournalEntries expands closing entries into their debit and credit journal rows.
func ClosingJournalEntries(entries []domain.ClosingEntry) []domain.JournalEntry {
	rows := make([]domain.JournalEntry, 0, len(entries)*2)
	for _, ce := range entries {
		template := domain.JournalEntry{
			ScopeID:        ce.ScopeID,
			Date:           ce.Date,
			Description:    ce.Description,
			Reference:      ce.Reference,
			EntryType:      domain.EntryClosing,
			ClosingEntryID: ce.ClosingEntryID,
			Processed:      true,
		}
		rows = append(rows, domain.PostingPair(template, ce.DebitAccountCode, ce.CreditAccountCode, ce.Amount)...)
	}
	return rows
}
