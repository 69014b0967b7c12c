package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClosingKind tags the step of the closing procedure that produced an entry.
type ClosingKind string

const (
	ClosingRevenue ClosingKind = "REV"
	ClosingExpense ClosingKind = "EXP"
	ClosingCOGS    ClosingKind = "HPP"
	ClosingIncome  ClosingKind = "INCOME"
	ClosingLoss    ClosingKind = "LOSS"
	ClosingDrawing ClosingKind = "PRIVE"
)

// ClosingEntry is a generated period-end entry. The whole set is replaced on every run.
type ClosingEntry struct {
	ClosingEntryID    string          `json:"closingEntryID"`
	ScopeID           string          `json:"scopeID"`
	Date              time.Time       `json:"date"`
	Reference         string          `json:"reference"`
	Description       string          `json:"description"`
	DebitAccountCode  string          `json:"debitAccountCode"`
	DebitAccountName  string          `json:"debitAccountName"`
	CreditAccountCode string          `json:"creditAccountCode"`
	CreditAccountName string          `json:"creditAccountName"`
	Amount            decimal.Decimal `json:"amount"`
	Kind              ClosingKind     `json:"kind"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ClosingResult reports the outcome of persisting a closing run.
type ClosingResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}
