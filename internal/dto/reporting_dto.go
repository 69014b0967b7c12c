package dto

import (
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountCode   string               `json:"accountCode"`
	AccountName   string               `json:"accountName"`
	AccountType   domain.AccountType   `json:"accountType"`
	NormalBalance domain.NormalBalance `json:"normalBalance"`
	Debit         decimal.Decimal      `json:"debit"`
	Credit        decimal.Decimal      `json:"credit"`
}

// TypeSummaryResponse aggregates the rows of one account type.
type TypeSummaryResponse struct {
	AccountType domain.AccountType `json:"accountType"`
	Count       int                `json:"count"`
	Debit       decimal.Decimal    `json:"debit"`
	Credit      decimal.Decimal    `json:"credit"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	Kind   domain.TrialBalanceKind   `json:"kind"`
	AsOf   string                    `json:"asOf,omitempty"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	ByType []TypeSummaryResponse     `json:"byType"`
	Totals struct {
		Debit      decimal.Decimal `json:"debit"`
		Credit     decimal.Decimal `json:"credit"`
		Difference decimal.Decimal `json:"difference"`
		IsBalanced bool            `json:"isBalanced"`
	} `json:"totals"`
}

// FinancialStatementsResponse bundles the income statement and the balance sheet.
type FinancialStatementsResponse struct {
	TrialBalance    TrialBalanceResponse   `json:"trialBalance"`
	IncomeStatement domain.IncomeStatement `json:"incomeStatement"`
	BalanceSheet    BalanceSheetResponse   `json:"balanceSheet"`
}

// BalanceSheetResponse is the balance sheet plus the identity check.
type BalanceSheetResponse struct {
	domain.BalanceSheet
	Difference decimal.Decimal `json:"difference"`
	IsBalanced bool            `json:"isBalanced"`
}

// PostClosingTrialBalanceResponse is the post-closing trial balance report.
type PostClosingTrialBalanceResponse struct {
	TrialBalance     TrialBalanceResponse   `json:"trialBalance"`
	NominalResiduals []domain.AccountAmount `json:"nominalResiduals"`
	IsClean          bool                   `json:"isClean"`
}

// ToTrialBalanceResponse converts a domain trial balance to a DTO response
func ToTrialBalanceResponse(tb *domain.TrialBalance) TrialBalanceResponse {
	response := TrialBalanceResponse{
		Kind: tb.Kind,
		Rows: make([]TrialBalanceRowResponse, len(tb.Rows)),
	}
	if tb.AsOf != nil {
		response.AsOf = tb.AsOf.Format(domain.DateLayout)
	}

	for i, row := range tb.Rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountCode:   row.Account.Code,
			AccountName:   row.Account.Name,
			AccountType:   row.Account.Type,
			NormalBalance: row.Account.NormalBalance,
			Debit:         row.Debit,
			Credit:        row.Credit,
		}
	}

	summary := tb.SummaryByType()
	for _, t := range domain.AccountTypes {
		s, ok := summary[t]
		if !ok {
			continue
		}
		response.ByType = append(response.ByType, TypeSummaryResponse{AccountType: t, Count: s.Count, Debit: s.Debit, Credit: s.Credit})
	}

	response.Totals.Debit = tb.TotalDebit
	response.Totals.Credit = tb.TotalCredit
	response.Totals.Difference = tb.Difference()
	response.Totals.IsBalanced = tb.IsBalanced()
	return response
}

// ToFinancialStatementsResponse converts the statements bundle.
func ToFinancialStatementsResponse(st *domain.FinancialStatements) FinancialStatementsResponse {
	return FinancialStatementsResponse{
		TrialBalance:    ToTrialBalanceResponse(&st.TrialBalance),
		IncomeStatement: st.IncomeStatement,
		BalanceSheet: BalanceSheetResponse{
			BalanceSheet: st.BalanceSheet,
			Difference:   st.BalanceSheet.Difference(),
			IsBalanced:   st.BalanceSheet.IsBalanced(),
		},
	}
}

// ToPostClosingTrialBalanceResponse converts the post-closing report.
func ToPostClosingTrialBalanceResponse(pc *domain.PostClosingTrialBalance) PostClosingTrialBalanceResponse {
	return PostClosingTrialBalanceResponse{
		TrialBalance:     ToTrialBalanceResponse(&pc.TrialBalance),
		NominalResiduals: pc.NominalResiduals,
		IsClean:          pc.IsClean(),
	}
}
