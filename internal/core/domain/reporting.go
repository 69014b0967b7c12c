package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceTolerance is the absolute difference under which two totals count as equal.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// WithinTolerance reports whether |a - b| < BalanceTolerance.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(BalanceTolerance)
}

// LedgerLine pairs a journal entry with the account balance after it is applied.
type LedgerLine struct {
	Entry          JournalEntry    `json:"entry"`
	AccountName    string          `json:"accountName"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
	Dangling       bool            `json:"dangling,omitempty"`
}

// LedgerResult is the output of a ledger scan.
type LedgerResult struct {
	Lines []LedgerLine `json:"lines"`
	// Balance is the running balance after the last line, zero when there are no lines.
	// It is only meaningful when the scan was filtered to one account.
	Balance decimal.Decimal `json:"balance"`
	// Balances holds the closing balance of every account touched by the scan.
	Balances map[string]decimal.Decimal `json:"balances"`
	// DanglingEntries lists entries whose account code is not in the chart.
	DanglingEntries []JournalEntry `json:"danglingEntries,omitempty"`
}

// TrialBalanceKind identifies which entry types fed a trial balance.
type TrialBalanceKind string

const (
	TrialBalanceUnadjusted  TrialBalanceKind = "unadjusted"
	TrialBalanceAdjusted    TrialBalanceKind = "adjusted"
	TrialBalancePostClosing TrialBalanceKind = "post-closing"
)

// Filter returns the ledger filter that produces balances for this kind.
func (k TrialBalanceKind) Filter(asOf *time.Time) LedgerFilter {
	f := LedgerFilter{EndDate: asOf}
	switch k {
	case TrialBalanceAdjusted:
		f.IncludeAdjusting = true
	case TrialBalancePostClosing:
		f.IncludeAdjusting = true
		f.IncludeClosing = true
	}
	return f
}

// TrialBalanceRow is one account's balance split into the debit or credit column.
type TrialBalanceRow struct {
	Account Account         `json:"account"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
}

// TypeSummary aggregates trial balance rows of one account type.
type TypeSummary struct {
	Count  int             `json:"count"`
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}

// TrialBalance accumulates rows and keeps running column totals.
type TrialBalance struct {
	Kind        TrialBalanceKind  `json:"kind"`
	AsOf        *time.Time        `json:"asOf,omitempty"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// Add appends a row and updates the totals.
func (tb *TrialBalance) Add(account Account, debit, credit decimal.Decimal) {
	tb.Rows = append(tb.Rows, TrialBalanceRow{Account: account, Debit: debit, Credit: credit})
	tb.TotalDebit = tb.TotalDebit.Add(debit)
	tb.TotalCredit = tb.TotalCredit.Add(credit)
}

// IsBalanced reports whether the debit and credit totals agree within BalanceTolerance.
func (tb *TrialBalance) IsBalanced() bool {
	return WithinTolerance(tb.TotalDebit, tb.TotalCredit)
}

// Difference is total debit minus total credit.
func (tb *TrialBalance) Difference() decimal.Decimal {
	return tb.TotalDebit.Sub(tb.TotalCredit)
}

// AccountsByType returns the rows whose account has type t, in insertion order.
func (tb *TrialBalance) AccountsByType(t AccountType) []TrialBalanceRow {
	var rows []TrialBalanceRow
	for _, row := range tb.Rows {
		if row.Account.Type == t {
			rows = append(rows, row)
		}
	}
	return rows
}

// SummaryByType returns count and column sums per account type present in the balance.
func (tb *TrialBalance) SummaryByType() map[AccountType]TypeSummary {
	summary := make(map[AccountType]TypeSummary)
	for _, row := range tb.Rows {
		s := summary[row.Account.Type]
		s.Count++
		s.Debit = s.Debit.Add(row.Debit)
		s.Credit = s.Credit.Add(row.Credit)
		summary[row.Account.Type] = s
	}
	return summary
}

// Row looks up the row for an account code.
func (tb *TrialBalance) Row(code string) (TrialBalanceRow, bool) {
	for _, row := range tb.Rows {
		if row.Account.Code == code {
			return row, true
		}
	}
	return TrialBalanceRow{}, false
}

// AccountAmount is an account with its net amount on a statement.
type AccountAmount struct {
	Code   string          `json:"code"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// IncomeStatement is derived from an adjusted trial balance.
type IncomeStatement struct {
	RevenueAccounts        []AccountAmount            `json:"revenueAccounts"`
	Revenue                decimal.Decimal            `json:"revenue"`
	COGSAccounts           []AccountAmount            `json:"cogsAccounts"`
	COGS                   decimal.Decimal            `json:"cogs"`
	GrossProfit            decimal.Decimal            `json:"grossProfit"`
	OperatingExpenses      map[string]decimal.Decimal `json:"operatingExpenses"`
	TotalOperatingExpenses decimal.Decimal            `json:"totalOperatingExpenses"`
	NetIncome              decimal.Decimal            `json:"netIncome"`
}

// BalanceSheet is derived from a trial balance and the period's net income.
type BalanceSheet struct {
	Assets            map[string]decimal.Decimal `json:"assets"`
	TotalAssets       decimal.Decimal            `json:"totalAssets"`
	ContraAssets      map[string]decimal.Decimal `json:"contraAssets"`
	TotalContraAssets decimal.Decimal            `json:"totalContraAssets"`
	NetAssets         decimal.Decimal            `json:"netAssets"`
	Liabilities       map[string]decimal.Decimal `json:"liabilities"`
	TotalLiabilities  decimal.Decimal            `json:"totalLiabilities"`
	OpeningEquity     decimal.Decimal            `json:"openingEquity"`
	NetIncome         decimal.Decimal            `json:"netIncome"`
	Drawings          decimal.Decimal            `json:"drawings"`
	IncomeSummary     decimal.Decimal            `json:"incomeSummary"`
	OtherEquity       decimal.Decimal            `json:"otherEquity"`
	EndingEquity      decimal.Decimal            `json:"endingEquity"`
	// TotalLiabilitiesAndEquity is the right-hand side of the accounting identity.
	TotalLiabilitiesAndEquity decimal.Decimal `json:"totalLiabilitiesAndEquity"`
}

// IsBalanced checks net assets == liabilities + ending equity within BalanceTolerance.
func (b BalanceSheet) IsBalanced() bool {
	return WithinTolerance(b.NetAssets, b.TotalLiabilitiesAndEquity)
}

// Difference is net assets minus liabilities and equity.
func (b BalanceSheet) Difference() decimal.Decimal {
	return b.NetAssets.Sub(b.TotalLiabilitiesAndEquity)
}

// FinancialStatements bundles both statements with the trial balance they came from.
type FinancialStatements struct {
	TrialBalance    TrialBalance    `json:"trialBalance"`
	IncomeStatement IncomeStatement `json:"incomeStatement"`
	BalanceSheet    BalanceSheet    `json:"balanceSheet"`
}

// PostClosingTrialBalance lists real accounts after closing entries are applied.
type PostClosingTrialBalance struct {
	TrialBalance TrialBalance `json:"trialBalance"`
	// NominalResiduals holds revenue and expense accounts still carrying a balance.
	NominalResiduals []AccountAmount `json:"nominalResiduals"`
}

// IsClean reports a balanced post-closing trial balance with every nominal account at zero.
func (p PostClosingTrialBalance) IsClean() bool {
	return p.TrialBalance.IsBalanced() && len(p.NominalResiduals) == 0
}
