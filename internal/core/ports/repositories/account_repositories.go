package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
)

// AccountReader defines read operations for the chart of accounts
type AccountReader interface {
	// FindAccountByCode retrieves an account by its code. Returns apperrors.ErrNotFound when missing.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// ListAccounts retrieves all accounts ordered by code, optionally only the active ones.
	ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error)

	// CountAccounts returns the number of accounts in the registry.
	CountAccounts(ctx context.Context) (int, error)
}

// AccountWriter defines write operations for the chart of accounts
type AccountWriter interface {
	// SaveAccount persists a new account. Returns apperrors.ErrDuplicate when the code is taken.
	SaveAccount(ctx context.Context, account domain.Account) error

	// SaveAccounts persists a batch of new accounts atomically.
	SaveAccounts(ctx context.Context, accounts []domain.Account) error

	// UpdateAccount updates everything except the code.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// SetAccountActive flips the active flag of an account.
	SetAccountActive(ctx context.Context, code string, active bool, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
