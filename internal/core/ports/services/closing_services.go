package services

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ClosingSvc runs the period-end closing procedure.
type ClosingSvc interface {
	// GenerateClosingEntries builds the closing set from the adjusted trial balance without saving it.
	GenerateClosingEntries(ctx context.Context, scopeID string, closingDate time.Time) ([]domain.ClosingEntry, decimal.Decimal, error)

	// SaveClosingEntries replaces the scope's closing set. Failures are reported in the result.
	SaveClosingEntries(ctx context.Context, scopeID string, entries []domain.ClosingEntry) domain.ClosingResult

	// RunClosing generates and saves in one call.
	RunClosing(ctx context.Context, scopeID string, closingDate time.Time) ([]domain.ClosingEntry, decimal.Decimal, domain.ClosingResult, error)

	// ListClosingEntries returns the saved closing set.
	ListClosingEntries(ctx context.Context, scopeID string) ([]domain.ClosingEntry, error)
}
