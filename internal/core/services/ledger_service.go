package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/accounting"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type ledgerService struct {
	scanner *ledgerScanner
}

// NewLedgerService creates the running-balance view over the journal.
func NewLedgerService(accountRepo portsrepo.AccountReader, journalRepo portsrepo.JournalReader, options ...ServiceOption) portssvc.LedgerSvc {
	settings := applyOptions(options)
	return &ledgerService{
		scanner: &ledgerScanner{
			accountRepo: accountRepo,
			journalRepo: journalRepo,
			opts:        settings.replayOptions(),
		},
	}
}

func (s *ledgerService) GetLedgerEntries(ctx context.Context, scopeID string, filter domain.LedgerFilter) (*domain.LedgerResult, error) {
	if filter.AccountCode != "" {
		if _, err := s.scanner.accountRepo.FindAccountByCode(ctx, filter.AccountCode); err != nil {
			return nil, err
		}
	}

	_, result, err := s.scanner.replay(ctx, scopeID, filter)
	if err != nil {
		return nil, err
	}

	s.scanner.LogDebug(ctx, "Ledger replayed",
		slog.String("scope_id", scopeID),
		slog.String("account_code", filter.AccountCode),
		slog.Int("lines", len(result.Lines)))
	return &result, nil
}

func (s *ledgerService) GetAccountBalance(ctx context.Context, scopeID, accountCode string, filter domain.LedgerFilter) (decimal.Decimal, error) {
	filter.AccountCode = accountCode
	result, err := s.GetLedgerEntries(ctx, scopeID, filter)
	if err != nil {
		return decimal.Zero, err
	}
	if balance, ok := result.Balances[accountCode]; ok {
		return balance, nil
	}
	return decimal.Zero, nil
}

func (s *ledgerService) GetJournal(ctx context.Context, scopeID string, filter domain.LedgerFilter) ([]domain.JournalEntry, error) {
	entries, err := s.scanner.entries(ctx, scopeID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load journal: %w", err)
	}
	if entries == nil {
		return []domain.JournalEntry{}, nil
	}
	accounting.SortEntries(entries)
	return entries, nil
}
