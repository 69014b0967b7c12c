package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the header row of a recorded business transaction.
type Transaction struct {
	TransactionID     string          `db:"transaction_id"`
	ScopeID           string          `db:"scope_id"`
	TransactionDate   time.Time       `db:"transaction_date"`
	Description       string          `db:"description"`
	DebitAccountCode  string          `db:"debit_account_code"`
	CreditAccountCode string          `db:"credit_account_code"`
	Amount            decimal.Decimal `db:"amount"`
	Reference         string          `db:"reference"`
	AuditFields
}

// AdjustingEntry is the header row of a period-end adjustment.
type AdjustingEntry struct {
	AdjustingEntryID  string          `db:"adjusting_entry_id"`
	ScopeID           string          `db:"scope_id"`
	EntryDate         time.Time       `db:"entry_date"`
	Reference         string          `db:"reference"`
	Description       string          `db:"description"`
	DebitAccountCode  string          `db:"debit_account_code"`
	CreditAccountCode string          `db:"credit_account_code"`
	Amount            decimal.Decimal `db:"amount"`
	AdjustmentType    string          `db:"adjustment_type"`
	AuditFields
}

// ClosingEntry is a saved closing row. Account names are denormalised at generation time.
type ClosingEntry struct {
	ClosingEntryID    string          `db:"closing_entry_id"`
	ScopeID           string          `db:"scope_id"`
	EntryDate         time.Time       `db:"entry_date"`
	Reference         string          `db:"reference"`
	Description       string          `db:"description"`
	DebitAccountCode  string          `db:"debit_account_code"`
	DebitAccountName  string          `db:"debit_account_name"`
	CreditAccountCode string          `db:"credit_account_code"`
	CreditAccountName string          `db:"credit_account_name"`
	Amount            decimal.Decimal `db:"amount"`
	ClosingKind       string          `db:"closing_kind"`
	CreatedAt         time.Time       `db:"created_at"`
}
