package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType tags where a journal entry came from.
type EntryType string

const (
	EntryRegular   EntryType = "regular"
	EntryAdjusting EntryType = "adjusting"
	EntryClosing   EntryType = "closing"
)

// JournalEntry is one side of a balanced posting. Exactly one of Debit and Credit is non-zero.
// ID is assigned by storage in insertion order and breaks ties between same-date entries.
type JournalEntry struct {
	ID               int64           `json:"id"`
	ScopeID          string          `json:"scopeID"`
	Date             time.Time       `json:"date"`
	Description      string          `json:"description"`
	AccountCode      string          `json:"accountCode"`
	Debit            decimal.Decimal `json:"debit"`
	Credit           decimal.Decimal `json:"credit"`
	Reference        string          `json:"reference"`
	EntryType        EntryType       `json:"entryType"`
	TransactionID    string          `json:"transactionID,omitempty"`
	AdjustingEntryID string          `json:"adjustingEntryID,omitempty"`
	ClosingEntryID   string          `json:"closingEntryID,omitempty"`
	Processed        bool            `json:"processed"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// LedgerFilter narrows a journal scan. Zero values mean "no bound".
type LedgerFilter struct {
	AccountCode      string
	StartDate        *time.Time
	EndDate          *time.Time
	IncludeAdjusting bool
	IncludeClosing   bool
}

// AllEntries is the filter used for post-closing views: every entry type, no bounds.
func AllEntries() LedgerFilter {
	return LedgerFilter{IncludeAdjusting: true, IncludeClosing: true}
}

// Includes reports whether an entry type passes the filter's type switches.
func (f LedgerFilter) Includes(t EntryType) bool {
	switch t {
	case EntryAdjusting:
		return f.IncludeAdjusting
	case EntryClosing:
		return f.IncludeClosing
	default:
		return true
	}
}

// PostingPair builds the debit row and the credit row for a two-legged posting.
func PostingPair(template JournalEntry, debitCode, creditCode string, amount decimal.Decimal) []JournalEntry {
	debit := template
	debit.AccountCode = debitCode
	debit.Debit = amount
	debit.Credit = decimal.Zero

	credit := template
	credit.AccountCode = creditCode
	credit.Debit = decimal.Zero
	credit.Credit = amount

	return []JournalEntry{debit, credit}
}
