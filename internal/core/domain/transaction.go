package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a recorded business event. It owns exactly two journal entries.
type Transaction struct {
	TransactionID     string          `json:"transactionID"`
	ScopeID           string          `json:"scopeID"`
	Date              time.Time       `json:"date"`
	Description       string          `json:"description"`
	DebitAccountCode  string          `json:"debitAccountCode"`
	CreditAccountCode string          `json:"creditAccountCode"`
	Amount            decimal.Decimal `json:"amount"`
	Reference         string          `json:"reference"`
	AuditFields
}

// AdjustingEntry is a period-end correction. It owns two journal entries tagged adjusting.
type AdjustingEntry struct {
	AdjustingEntryID  string          `json:"adjustingEntryID"`
	ScopeID           string          `json:"scopeID"`
	Date              time.Time       `json:"date"`
	Reference         string          `json:"reference"`
	Description       string          `json:"description"`
	DebitAccountCode  string          `json:"debitAccountCode"`
	CreditAccountCode string          `json:"creditAccountCode"`
	Amount            decimal.Decimal `json:"amount"`
	AdjustmentType    string          `json:"adjustmentType"`
	AuditFields
}
