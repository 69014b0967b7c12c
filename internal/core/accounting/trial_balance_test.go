package accounting_test

import (
	"testing"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/accounting"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrialBalance_SaleScenario(t *testing.T) {
	j := &journal{}
	j.post("2024-01-05", "1101", "4101", 100000, domain.EntryRegular)

	tb := j.trialBalance(domain.TrialBalanceUnadjusted)

	kas, ok := tb.Row("1101")
	require.True(t, ok)
	assert.True(t, dec(100000).Equal(kas.Debit))
	assert.True(t, kas.Credit.IsZero())

	sales, ok := tb.Row("4101")
	require.True(t, ok)
	assert.True(t, dec(100000).Equal(sales.Credit))
	assert.True(t, sales.Debit.IsZero())

	assert.True(t, tb.TotalDebit.Equal(tb.TotalCredit))
	assert.True(t, tb.IsBalanced())
}

func TestTrialBalance_KindsAndAbnormalBalances(t *testing.T) {
	j := seededJournal()
	j.post("2024-01-28", "2101", "1101", 9_000_000, domain.EntryRegular) // overpay the supplier

	unadjusted := j.trialBalance(domain.TrialBalanceUnadjusted)
	adjusted := j.trialBalance(domain.TrialBalanceAdjusted)

	assert.True(t, unadjusted.IsBalanced())
	assert.True(t, adjusted.IsBalanced())

	depreciation, _ := unadjusted.Row("5301")
	assert.True(t, depreciation.Debit.IsZero(), "adjusting entries stay out of the unadjusted balance")
	depreciation, _ = adjusted.Row("5301")
	assert.True(t, dec(250_000).Equal(depreciation.Debit))

	payable, _ := adjusted.Row("2101")
	assert.True(t, dec(1_000_000).Equal(payable.Debit), "a credit-normal account with a debit balance flips columns")
	assert.True(t, payable.Credit.IsZero())
}

func TestTrialBalance_ToleranceIsAbsolute(t *testing.T) {
	tb := domain.TrialBalance{}
	acc := domain.Account{Code: "1101", Type: domain.Asset}
	tb.Add(acc, decimal.RequireFromString("100.005"), decimal.Zero)
	tb.Add(domain.Account{Code: "4101", Type: domain.Revenue}, decimal.Zero, decimal.RequireFromString("100.000"))
	assert.True(t, tb.IsBalanced())
	assert.Equal(t, "0.005", tb.Difference().String())

	tb.Add(acc, decimal.RequireFromString("0.005"), decimal.Zero)
	assert.False(t, tb.IsBalanced(), "a difference of exactly 0.01 is not balanced")
}

func TestTrialBalance_GroupingAndSummary(t *testing.T) {
	tb := seededJournal().trialBalance(domain.TrialBalanceAdjusted)

	expenses := tb.AccountsByType(domain.Expense)
	var codes []string
	for _, row := range expenses {
		codes = append(codes, row.Account.Code)
	}
	assert.Equal(t, []string{"5101", "5201", "5202", "5203", "5204", "5301", "5901", "5999"}, codes)

	summary := tb.SummaryByType()
	assert.Equal(t, 8, summary[domain.Expense].Count)
	assert.True(t, dec(11_100_000).Equal(summary[domain.Expense].Debit))
	assert.True(t, dec(21_500_000).Equal(summary[domain.Revenue].Credit))
}

func TestTrialBalance_InactiveAccounts(t *testing.T) {
	chart := defaultChart()
	idle := chart["5204"]
	idle.IsActive = false
	chart["5204"] = idle
	used := chart["5203"]
	used.IsActive = false
	chart["5203"] = used

	balances := map[string]decimal.Decimal{"5203": dec(10), "1101": dec(-10)}
	tb := accounting.BuildTrialBalance(domain.TrialBalanceAdjusted, nil, chart, balances)

	_, listed := tb.Row("5204")
	assert.False(t, listed, "inactive accounts without a balance are hidden")
	_, listed = tb.Row("5203")
	assert.True(t, listed, "inactive accounts with a balance stay listed")
	assert.True(t, tb.IsBalanced())
}
