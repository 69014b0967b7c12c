package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/apperrors"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/accounting"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_ledger/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const defaultTransactionPageSize = 20

// transactionService records regular transactions and adjusting entries as balanced pairs of
// journal rows.
type transactionService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	journalRepo portsrepo.JournalRepositoryFacade
	validate    *validator.Validate
	now         func() time.Time
	newID       func() string
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(accountRepo portsrepo.AccountReader, journalRepo portsrepo.JournalRepositoryFacade, options ...ServiceOption) portssvc.TransactionSvcFacade {
	settings := applyOptions(options)
	return &transactionService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
		validate:    newRequestValidator(),
		now:         settings.now,
		newID:       settings.newID,
	}
}

// posting is the validated common part of a transaction or adjusting entry.
type posting struct {
	date   time.Time
	debit  domain.Account
	credit domain.Account
	amount decimal.Decimal
}

// preparePosting parses the date and checks both accounts against the active chart.
func (s *transactionService) preparePosting(ctx context.Context, date, debitCode, creditCode string, amount decimal.Decimal) (*posting, error) {
	parsed, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to load active accounts")
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	chart := accounting.NewChart(accounts)

	if err := accounting.ValidatePosting(chart, debitCode, creditCode, amount); err != nil {
		return nil, err
	}

	return &posting{
		date:   parsed,
		debit:  chart[debitCode],
		credit: chart[creditCode],
		amount: amount,
	}, nil
}

func (s *transactionService) RecordTransaction(ctx context.Context, scopeID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := validateRequest(s.validate, req); err != nil {
		return nil, err
	}
	p, err := s.preparePosting(ctx, req.Date, req.DebitAccountCode, req.CreditAccountCode, req.Amount)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	id := s.newID()
	txn := domain.Transaction{
		TransactionID:     id,
		ScopeID:           scopeID,
		Date:              p.date,
		Description:       req.Description,
		DebitAccountCode:  p.debit.Code,
		CreditAccountCode: p.credit.Code,
		Amount:            p.amount,
		Reference:         "TRX-" + shortID(id, 8),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     scopeID,
			LastUpdatedAt: now,
			LastUpdatedBy: scopeID,
		},
	}

	entries := domain.PostingPair(domain.JournalEntry{
		ScopeID:       scopeID,
		Date:          txn.Date,
		Description:   txn.Description,
		Reference:     txn.Reference,
		EntryType:     domain.EntryRegular,
		TransactionID: txn.TransactionID,
		Processed:     true,
		CreatedAt:     now,
	}, txn.DebitAccountCode, txn.CreditAccountCode, txn.Amount)
	if err := accounting.ValidateEntriesBalance(entries); err != nil {
		return nil, err
	}

	if err := s.journalRepo.SaveTransaction(ctx, txn, entries); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", id))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", id),
		slog.String("reference", txn.Reference),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, scopeID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.journalRepo.FindTransactionByID(ctx, scopeID, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, scopeID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if params.Limit <= 0 {
		params.Limit = defaultTransactionPageSize
	}
	if err := validateRequest(s.validate, params); err != nil {
		return nil, err
	}

	txns, nextToken, err := s.journalRepo.ListTransactions(ctx, scopeID, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("scope_id", scopeID))
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}

	resp := dto.ToListTransactionsResponse(txns, nextToken)
	s.LogDebug(ctx, "Transactions listed", slog.Int("count", len(txns)))
	return &resp, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, scopeID, transactionID string) error {
	if err := s.journalRepo.DeleteTransaction(ctx, scopeID, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		}
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *transactionService) RecordAdjustingEntry(ctx context.Context, scopeID string, req dto.CreateAdjustingEntryRequest) (*domain.AdjustingEntry, error) {
	if err := validateRequest(s.validate, req); err != nil {
		return nil, err
	}
	p, err := s.preparePosting(ctx, req.Date, req.DebitAccountCode, req.CreditAccountCode, req.Amount)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = fmt.Sprintf("Penyesuaian: %s dan %s", p.debit.Name, p.credit.Name)
	}

	now := s.now()
	id := s.newID()
	entry := domain.AdjustingEntry{
		AdjustingEntryID:  id,
		ScopeID:           scopeID,
		Date:              p.date,
		Reference:         fmt.Sprintf("ADJ-%s-%s", now.Format("20060102-150405"), shortID(id, 4)),
		Description:       description,
		DebitAccountCode:  p.debit.Code,
		CreditAccountCode: p.credit.Code,
		Amount:            p.amount,
		AdjustmentType:    req.AdjustmentType,
		AuditFields: domain.AuditFields{
			CreatedAt:     now.UTC(),
			CreatedBy:     scopeID,
			LastUpdatedAt: now.UTC(),
			LastUpdatedBy: scopeID,
		},
	}

	rows := domain.PostingPair(domain.JournalEntry{
		ScopeID:          scopeID,
		Date:             entry.Date,
		Description:      entry.Description,
		Reference:        entry.Reference,
		EntryType:        domain.EntryAdjusting,
		AdjustingEntryID: entry.AdjustingEntryID,
		Processed:        true,
		CreatedAt:        now.UTC(),
	}, entry.DebitAccountCode, entry.CreditAccountCode, entry.Amount)
	if err := accounting.ValidateEntriesBalance(rows); err != nil {
		return nil, err
	}

	if err := s.journalRepo.SaveAdjustingEntry(ctx, entry, rows); err != nil {
		s.LogError(ctx, err, "Failed to save adjusting entry", slog.String("adjusting_entry_id", id))
		return nil, fmt.Errorf("failed to save adjusting entry: %w", err)
	}

	s.LogInfo(ctx, "Adjusting entry recorded",
		slog.String("adjusting_entry_id", id),
		slog.String("reference", entry.Reference))
	return &entry, nil
}

func (s *transactionService) ListAdjustingEntries(ctx context.Context, scopeID string) ([]domain.AdjustingEntry, error) {
	entries, err := s.journalRepo.ListAdjustingEntries(ctx, scopeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list adjusting entries", slog.String("scope_id", scopeID))
		return nil, fmt.Errorf("failed to retrieve adjusting entries: %w", err)
	}
	if entries == nil {
		return []domain.AdjustingEntry{}, nil
	}
	return entries, nil
}

func (s *transactionService) DeleteAdjustingEntry(ctx context.Context, scopeID, adjustingEntryID string) error {
	if err := s.journalRepo.DeleteAdjustingEntry(ctx, scopeID, adjustingEntryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete adjusting entry", slog.String("adjusting_entry_id", adjustingEntryID))
		}
		return err
	}
	s.LogInfo(ctx, "Adjusting entry deleted", slog.String("adjusting_entry_id", adjustingEntryID))
	return nil
}

// shortID returns the first n characters of id without dashes, upper-cased.
func shortID(id string, n int) string {
	compact := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(compact) > n {
		return compact[:n]
	}
	return compact
}
