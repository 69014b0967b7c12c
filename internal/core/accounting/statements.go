package accounting

import (
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateIncomeStatement derives revenue, cost of goods, operating expenses and net
// income from a trial balance.
func CalculateIncomeStatement(tb domain.TrialBalance, roles domain.ChartRoles) domain.IncomeStatement {
	is := domain.IncomeStatement{
		RevenueAccounts:        []domain.AccountAmount{},
		Revenue:                decimal.Zero,
		COGSAccounts:           []domain.AccountAmount{},
		COGS:                   decimal.Zero,
		OperatingExpenses:      map[string]decimal.Decimal{},
		TotalOperatingExpenses: decimal.Zero,
	}

	for _, row := range tb.AccountsByType(domain.Revenue) {
		amount := row.Credit.Sub(row.Debit)
		is.Revenue = is.Revenue.Add(amount)
		is.RevenueAccounts = append(is.RevenueAccounts, accountAmount(row, amount))
	}

	for _, row := range tb.AccountsByType(domain.Expense) {
		amount := row.Debit.Sub(row.Credit)
		if roles.IsCOGS(row.Account.Code) {
			is.COGS = is.COGS.Add(amount)
			is.COGSAccounts = append(is.COGSAccounts, accountAmount(row, amount))
			continue
		}
		bucket := roles.ExpenseBucket(row.Account.Code)
		is.OperatingExpenses[bucket] = bucketTotal(is.OperatingExpenses, bucket).Add(amount)
		is.TotalOperatingExpenses = is.TotalOperatingExpenses.Add(amount)
	}

	is.GrossProfit = is.Revenue.Sub(is.COGS)
	is.NetIncome = is.GrossProfit.Sub(is.TotalOperatingExpenses)
	return is
}

// CalculateBalanceSheet derives net assets, liabilities and ending equity from a trial
// balance and the period's net income.
func CalculateBalanceSheet(tb domain.TrialBalance, netIncome decimal.Decimal, roles domain.ChartRoles) domain.BalanceSheet {
	bs := domain.BalanceSheet{
		Assets:            map[string]decimal.Decimal{},
		TotalAssets:       decimal.Zero,
		ContraAssets:      map[string]decimal.Decimal{},
		TotalContraAssets: decimal.Zero,
		Liabilities:       map[string]decimal.Decimal{},
		TotalLiabilities:  decimal.Zero,
		OpeningEquity:     decimal.Zero,
		NetIncome:         netIncome,
		Drawings:          decimal.Zero,
		IncomeSummary:     decimal.Zero,
		OtherEquity:       decimal.Zero,
	}

	for _, row := range tb.AccountsByType(domain.Asset) {
		amount := row.Debit.Sub(row.Credit)
		bucket := roles.AssetBucket(row.Account.Code)
		bs.Assets[bucket] = bucketTotal(bs.Assets, bucket).Add(amount)
		bs.TotalAssets = bs.TotalAssets.Add(amount)
	}

	for _, row := range tb.AccountsByType(domain.ContraAsset) {
		amount := row.Credit.Sub(row.Debit)
		bucket := roles.ContraAssetBucket(row.Account.Code)
		bs.ContraAssets[bucket] = bucketTotal(bs.ContraAssets, bucket).Add(amount)
		bs.TotalContraAssets = bs.TotalContraAssets.Add(amount)
	}
	bs.NetAssets = bs.TotalAssets.Sub(bs.TotalContraAssets)

	for _, row := range tb.AccountsByType(domain.Liability) {
		amount := row.Credit.Sub(row.Debit)
		bucket := roles.LiabilityBucket(row.Account.Code)
		bs.Liabilities[bucket] = bucketTotal(bs.Liabilities, bucket).Add(amount)
		bs.TotalLiabilities = bs.TotalLiabilities.Add(amount)
	}

	for _, row := range tb.AccountsByType(domain.Equity) {
		amount := row.Credit.Sub(row.Debit)
		if !roles.IsEquityRole(row.Account.Code) {
			bs.OtherEquity = bs.OtherEquity.Add(amount)
			continue
		}
		switch row.Account.Code {
		case roles.CapitalAccount:
			bs.OpeningEquity = bs.OpeningEquity.Add(amount)
		case roles.DrawingAccount:
			bs.Drawings = bs.Drawings.Sub(amount)
		case roles.IncomeSummaryAccount:
			// Zero once closing has run.
			bs.IncomeSummary = bs.IncomeSummary.Add(amount)
		}
	}

	bs.EndingEquity = bs.OpeningEquity.Add(netIncome).Sub(bs.Drawings).Add(bs.IncomeSummary).Add(bs.OtherEquity)
	bs.TotalLiabilitiesAndEquity = bs.TotalLiabilities.Add(bs.EndingEquity)
	return bs
}

// CalculateStatements runs both calculators over one trial balance.
func CalculateStatements(tb domain.TrialBalance, roles domain.ChartRoles) domain.FinancialStatements {
	is := CalculateIncomeStatement(tb, roles)
	return domain.FinancialStatements{
		TrialBalance:    tb,
		IncomeStatement: is,
		BalanceSheet:    CalculateBalanceSheet(tb, is.NetIncome, roles),
	}
}

func accountAmount(row domain.TrialBalanceRow, amount decimal.Decimal) domain.AccountAmount {
	return domain.AccountAmount{Code: row.Account.Code, Name: row.Account.Name, Amount: amount}
}

func bucketTotal(buckets map[string]decimal.Decimal, bucket string) decimal.Decimal {
	if v, ok := buckets[bucket]; ok {
		return v
	}
	return decimal.Zero
}
