package accounting

import (
	"sort"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
)

// Chart indexes accounts by code.
type Chart map[string]domain.Account

// NewChart builds a Chart from a list of accounts.
func NewChart(accounts []domain.Account) Chart {
	chart := make(Chart, len(accounts))
	for _, a := range accounts {
		chart[a.Code] = a
	}
	return chart
}

// Sorted returns the accounts ordered by code.
func (c Chart) Sorted() []domain.Account {
	accounts := make([]domain.Account, 0, len(c))
	for _, a := range c {
		accounts = append(accounts, a)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Code < accounts[j].Code })
	return accounts
}

// Name returns the account name for code, or the code itself when unknown.
func (c Chart) Name(code string) string {
	if a, ok := c[code]; ok {
		return a.Name
	}
	return code
}
