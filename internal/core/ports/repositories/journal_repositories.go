package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
)

// JournalReader is the data-access side of the ledger engine.
type JournalReader interface {
	// FindJournalEntries returns the scope's entries matching the filter, ordered by date then id.
	FindJournalEntries(ctx context.Context, scopeID string, filter domain.LedgerFilter) ([]domain.JournalEntry, error)
}

// TransactionReader defines read operations for transactions
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction of the scope.
	FindTransactionByID(ctx context.Context, scopeID, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns transactions newest first using token-based pagination.
	// It returns the transactions, a token for the next page, and an error.
	ListTransactions(ctx context.Context, scopeID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for transactions
type TransactionWriter interface {
	// SaveTransaction persists a transaction together with its journal entries in one unit.
	SaveTransaction(ctx context.Context, txn domain.Transaction, entries []domain.JournalEntry) error

	// DeleteTransaction removes a transaction and its journal entries in one unit.
	DeleteTransaction(ctx context.Context, scopeID, transactionID string) error
}

// AdjustingEntryReader defines read operations for adjusting entries
type AdjustingEntryReader interface {
	FindAdjustingEntryByID(ctx context.Context, scopeID, adjustingEntryID string) (*domain.AdjustingEntry, error)
	ListAdjustingEntries(ctx context.Context, scopeID string) ([]domain.AdjustingEntry, error)
}

// AdjustingEntryWriter defines write operations for adjusting entries
type AdjustingEntryWriter interface {
	SaveAdjustingEntry(ctx context.Context, entry domain.AdjustingEntry, entries []domain.JournalEntry) error
	DeleteAdjustingEntry(ctx context.Context, scopeID, adjustingEntryID string) error
}

// ClosingEntryRepository stores the generated closing set of a scope.
type ClosingEntryRepository interface {
	// ListClosingEntries returns the saved closing entries ordered by reference.
	ListClosingEntries(ctx context.Context, scopeID string) ([]domain.ClosingEntry, error)

	// ReplaceClosingEntries deletes every closing entry of the scope with its journal rows,
	// then inserts the new set and rows. The whole replace commits or rolls back together.
	// It returns the number of closing entries saved.
	ReplaceClosingEntries(ctx context.Context, scopeID string, entries []domain.ClosingEntry, rows []domain.JournalEntry) (int, error)
}

// JournalRepositoryFacade combines every journal-side repository interface
type JournalRepositoryFacade interface {
	JournalReader
	TransactionReader
	TransactionWriter
	AdjustingEntryReader
	AdjustingEntryWriter
	ClosingEntryRepository
}
