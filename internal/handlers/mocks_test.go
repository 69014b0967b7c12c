package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_ledger/internal/dto"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) GetAccount(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, code string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, code, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ToggleAccountActive(ctx context.Context, code string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, code, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) InitializeDefaultAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerSvc = (*MockLedgerService)(nil)

func (m *MockLedgerService) GetLedgerEntries(ctx context.Context, scopeID string, filter domain.LedgerFilter) (*domain.LedgerResult, error) {
	args := m.Called(ctx, scopeID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerResult), args.Error(1)
}

func (m *MockLedgerService) GetAccountBalance(ctx context.Context, scopeID, accountCode string, filter domain.LedgerFilter) (decimal.Decimal, error) {
	args := m.Called(ctx, scopeID, accountCode, filter)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerService) GetJournal(ctx context.Context, scopeID string, filter domain.LedgerFilter) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, scopeID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

func (m *MockReportingService) TrialBalance(ctx context.Context, scopeID string, kind domain.TrialBalanceKind, asOf *time.Time) (*domain.TrialBalance, error) {
	args := m.Called(ctx, scopeID, kind, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalance), args.Error(1)
}

func (m *MockReportingService) FinancialStatements(ctx context.Context, scopeID string, asOf *time.Time) (*domain.FinancialStatements, error) {
	args := m.Called(ctx, scopeID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialStatements), args.Error(1)
}

func (m *MockReportingService) PostClosingTrialBalance(ctx context.Context, scopeID string) (*domain.PostClosingTrialBalance, error) {
	args := m.Called(ctx, scopeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostClosingTrialBalance), args.Error(1)
}

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

func (m *MockTransactionService) RecordTransaction(ctx context.Context, scopeID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, scopeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetTransaction(ctx context.Context, scopeID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, scopeID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, scopeID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, scopeID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, scopeID, transactionID string) error {
	args := m.Called(ctx, scopeID, transactionID)
	return args.Error(0)
}

func (m *MockTransactionService) RecordAdjustingEntry(ctx context.Context, scopeID string, req dto.CreateAdjustingEntryRequest) (*domain.AdjustingEntry, error) {
	args := m.Called(ctx, scopeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdjustingEntry), args.Error(1)
}

func (m *MockTransactionService) ListAdjustingEntries(ctx context.Context, scopeID string) ([]domain.AdjustingEntry, error) {
	args := m.Called(ctx, scopeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdjustingEntry), args.Error(1)
}

func (m *MockTransactionService) DeleteAdjustingEntry(ctx context.Context, scopeID, adjustingEntryID string) error {
	args := m.Called(ctx, scopeID, adjustingEntryID)
	return args.Error(0)
}

// --- Mock ClosingService ---
type MockClosingService struct {
	mock.Mock
}

var _ portssvc.ClosingSvc = (*MockClosingService)(nil)

func (m *MockClosingService) GenerateClosingEntries(ctx context.Context, scopeID string, closingDate time.Time) ([]domain.ClosingEntry, decimal.Decimal, error) {
	args := m.Called(ctx, scopeID, closingDate)
	if args.Get(0) == nil {
		return nil, decimal.Zero, args.Error(2)
	}
	return args.Get(0).([]domain.ClosingEntry), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockClosingService) SaveClosingEntries(ctx context.Context, scopeID string, entries []domain.ClosingEntry) domain.ClosingResult {
	args := m.Called(ctx, scopeID, entries)
	return args.Get(0).(domain.ClosingResult)
}

func (m *MockClosingService) RunClosing(ctx context.Context, scopeID string, closingDate time.Time) ([]domain.ClosingEntry, decimal.Decimal, domain.ClosingResult, error) {
	args := m.Called(ctx, scopeID, closingDate)
	if args.Get(0) == nil {
		return nil, decimal.Zero, domain.ClosingResult{}, args.Error(3)
	}
	return args.Get(0).([]domain.ClosingEntry), args.Get(1).(decimal.Decimal), args.Get(2).(domain.ClosingResult), args.Error(3)
}

func (m *MockClosingService) ListClosingEntries(ctx context.Context, scopeID string) ([]domain.ClosingEntry, error) {
	args := m.Called(ctx, scopeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClosingEntry), args.Error(1)
}

// signTestToken creates a JWT for testing.
func signTestToken(secret, userID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    "ledger-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
