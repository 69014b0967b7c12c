package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/accounting"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// closingService runs the period-end close. Each save replaces the scope's previous closing
// set; two concurrent runs for one scope are last-write-wins.
type closingService struct {
	scanner     *ledgerScanner
	closingRepo portsrepo.ClosingEntryRepository
	generator   *accounting.ClosingGenerator
}

// NewClosingService creates a new closing service with the provided options
func NewClosingService(accountRepo portsrepo.AccountReader, journalRepo portsrepo.JournalRepositoryFacade, options ...ServiceOption) portssvc.ClosingSvc {
	settings := applyOptions(options)
	generator := accounting.NewClosingGenerator(settings.roles)
	generator.Now = settings.now
	generator.NewID = settings.newID
	return &closingService{
		scanner: &ledgerScanner{
			accountRepo: accountRepo,
			journalRepo: journalRepo,
			opts:        settings.replayOptions(),
		},
		closingRepo: journalRepo,
		generator:   generator,
	}
}

func (s *closingService) GenerateClosingEntries(ctx context.Context, scopeID string, closingDate time.Time) ([]domain.ClosingEntry, decimal.Decimal, error) {
	tb, chart, err := s.scanner.trialBalance(ctx, scopeID, domain.TrialBalanceAdjusted, nil)
	if err != nil {
		return nil, decimal.Zero, err
	}

	entries, netIncome := s.generator.Generate(scopeID, tb, chart, closingDate)
	s.scanner.LogDebug(ctx, "Closing entries generated",
		slog.String("scope_id", scopeID),
		slog.Int("count", len(entries)),
		slog.String("net_income", netIncome.String()))
	return entries, netIncome, nil
}

func (s *closingService) SaveClosingEntries(ctx context.Context, scopeID string, entries []domain.ClosingEntry) domain.ClosingResult {
	createdAt := s.generator.Now().UTC()
	for i := range entries {
		entries[i].ScopeID = scopeID
		entries[i].CreatedAt = createdAt
	}
	rows := accounting.ClosingJournalEntries(entries)
	for i := range rows {
		rows[i].CreatedAt = createdAt
	}

	count, err := s.closingRepo.ReplaceClosingEntries(ctx, scopeID, entries, rows)
	if err != nil {
		s.scanner.LogError(ctx, err, "Failed to save closing entries", slog.String("scope_id", scopeID))
		return domain.ClosingResult{
			Success: false,
			Message: fmt.Sprintf("failed to save closing entries: %v", err),
		}
	}

	s.scanner.LogInfo(ctx, "Closing entries saved", slog.String("scope_id", scopeID), slog.Int("count", count))
	return domain.ClosingResult{
		Success: true,
		Message: fmt.Sprintf("%d closing entries saved", count),
		Count:   count,
	}
}

func (s *closingService) RunClosing(ctx context.Context, scopeID string, closingDate time.Time) ([]domain.ClosingEntry, decimal.Decimal, domain.ClosingResult, error) {
	entries, netIncome, err := s.GenerateClosingEntries(ctx, scopeID, closingDate)
	if err != nil {
		return nil, decimal.Zero, domain.ClosingResult{}, err
	}
	result := s.SaveClosingEntries(ctx, scopeID, entries)
	return entries, netIncome, result, nil
}

func (s *closingService) ListClosingEntries(ctx context.Context, scopeID string) ([]domain.ClosingEntry, error) {
	entries, err := s.closingRepo.ListClosingEntries(ctx, scopeID)
	if err != nil {
		s.scanner.LogError(ctx, err, "Failed to list closing entries", slog.String("scope_id", scopeID))
		return nil, fmt.Errorf("failed to retrieve closing entries: %w", err)
	}
	if entries == nil {
		return []domain.ClosingEntry{}, nil
	}
	return entries, nil
}
