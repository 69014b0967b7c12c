package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is one debit or credit row of the journal. Exactly one of the three
// source IDs is set, matching EntryType.
type JournalEntry struct {
	EntryID          int64           `db:"entry_id"`
	ScopeID          string          `db:"scope_id"`
	EntryDate        time.Time       `db:"entry_date"`
	Description      string          `db:"description"`
	AccountCode      string          `db:"account_code"`
	Debit            decimal.Decimal `db:"debit"`
	Credit           decimal.Decimal `db:"credit"`
	Reference        string          `db:"reference"`
	EntryType        string          `db:"entry_type"`
	TransactionID    *string         `db:"transaction_id"`
	AdjustingEntryID *string         `db:"adjusting_entry_id"`
	ClosingEntryID   *string         `db:"closing_entry_id"`
	Processed        bool            `db:"is_processed"`
	CreatedAt        time.Time       `db:"created_at"`
}
