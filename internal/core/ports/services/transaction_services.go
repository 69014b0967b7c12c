package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/SscSPs/bookkeeping_ledger/internal/dto"
)

// TransactionSvc records and removes regular transactions.
type TransactionSvc interface {
	RecordTransaction(ctx context.Context, scopeID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	GetTransaction(ctx context.Context, scopeID, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, scopeID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
	DeleteTransaction(ctx context.Context, scopeID, transactionID string) error
}

// AdjustingEntrySvc records and removes adjusting entries.
type AdjustingEntrySvc interface {
	RecordAdjustingEntry(ctx context.Context, scopeID string, req dto.CreateAdjustingEntryRequest) (*domain.AdjustingEntry, error)
	ListAdjustingEntries(ctx context.Context, scopeID string) ([]domain.AdjustingEntry, error)
	DeleteAdjustingEntry(ctx context.Context, scopeID, adjustingEntryID string) error
}

// TransactionSvcFacade combines transaction and adjusting entry operations
type TransactionSvcFacade interface {
	TransactionSvc
	AdjustingEntrySvc
}
