package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/apperrors"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/accounting"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/services"
)

type reportingService struct {
	scanner *ledgerScanner
	roles   domain.ChartRoles
}

// NewReportingService creates the trial balance and statement service.
func NewReportingService(accountRepo portsrepo.AccountReader, journalRepo portsrepo.JournalReader, options ...ServiceOption) portssvc.ReportingService {
	settings := applyOptions(options)
	return &reportingService{
		scanner: &ledgerScanner{
			accountRepo: accountRepo,
			journalRepo: journalRepo,
			opts:        settings.replayOptions(),
		},
		roles: settings.roles,
	}
}

func (s *reportingService) TrialBalance(ctx context.Context, scopeID string, kind domain.TrialBalanceKind, asOf *time.Time) (*domain.TrialBalance, error) {
	switch kind {
	case domain.TrialBalanceUnadjusted, domain.TrialBalanceAdjusted, domain.TrialBalancePostClosing:
	default:
		return nil, fmt.Errorf("%w: unknown trial balance kind %q", apperrors.ErrValidation, kind)
	}

	tb, _, err := s.scanner.trialBalance(ctx, scopeID, kind, asOf)
	if err != nil {
		return nil, err
	}
	if !tb.IsBalanced() {
		s.scanner.LogWarn(ctx, "Trial balance is out of balance",
			slog.String("scope_id", scopeID),
			slog.String("kind", string(kind)),
			slog.String("difference", tb.Difference().String()))
	}
	return &tb, nil
}

func (s *reportingService) FinancialStatements(ctx context.Context, scopeID string, asOf *time.Time) (*domain.FinancialStatements, error) {
	tb, _, err := s.scanner.trialBalance(ctx, scopeID, domain.TrialBalanceAdjusted, asOf)
	if err != nil {
		return nil, err
	}

	statements := accounting.CalculateStatements(tb, s.roles)
	if !statements.BalanceSheet.IsBalanced() {
		s.scanner.LogWarn(ctx, "Balance sheet does not balance",
			slog.String("scope_id", scopeID),
			slog.String("difference", statements.BalanceSheet.Difference().String()))
	}
	return &statements, nil
}

func (s *reportingService) PostClosingTrialBalance(ctx context.Context, scopeID string) (*domain.PostClosingTrialBalance, error) {
	chart, result, err := s.scanner.replay(ctx, scopeID, domain.AllEntries())
	if err != nil {
		return nil, err
	}

	pc := accounting.BuildPostClosing(chart, result.Balances)
	if !pc.IsClean() {
		s.scanner.LogWarn(ctx, "Nominal accounts still carry balances after closing",
			slog.String("scope_id", scopeID),
			slog.Int("accounts", len(pc.NominalResiduals)))
	}
	return &pc, nil
}
