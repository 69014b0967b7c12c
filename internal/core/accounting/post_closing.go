package accounting

import (
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildPostClosing builds the post-closing trial balance from balances that include
// closing entries, and lists any nominal account the close failed to zero.
func BuildPostClosing(chart Chart, balances map[string]decimal.Decimal) domain.PostClosingTrialBalance {
	pc := domain.PostClosingTrialBalance{
		TrialBalance:     BuildTrialBalance(domain.TrialBalancePostClosing, nil, chart, balances),
		NominalResiduals: []domain.AccountAmount{},
	}
	for _, account := range chart.Sorted() {
		if !account.Type.IsNominal() {
			continue
		}
		if balance, ok := balances[account.Code]; ok && !balance.IsZero() {
			pc.NominalResiduals = append(pc.NominalResiduals, domain.AccountAmount{
				Code:   account.Code,
				Name:   account.Name,
				Amount: balance,
			})
		}
	}
	return pc
}
