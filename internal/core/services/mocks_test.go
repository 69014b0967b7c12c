package services_test

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) CountAccounts(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) SaveAccounts(ctx context.Context, accounts []domain.Account) error {
	args := m.Called(ctx, accounts)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) SetAccountActive(ctx context.Context, code string, active bool, userID string, now time.Time) error {
	args := m.Called(ctx, code, active, userID, now)
	return args.Error(0)
}

// MockJournalRepository is a mock type for the JournalRepositoryFacade interface
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindJournalEntries(ctx context.Context, scopeID string, filter domain.LedgerFilter) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, scopeID, filter)
	if fn, ok := args.Get(0).(func(context.Context, string, domain.LedgerFilter) []domain.JournalEntry); ok {
		return fn(ctx, scopeID, filter), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindTransactionByID(ctx context.Context, scopeID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, scopeID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockJournalRepository) ListTransactions(ctx context.Context, scopeID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, scopeID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Transaction), returnedNextToken, args.Error(2)
}

func (m *MockJournalRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, entries []domain.JournalEntry) error {
	args := m.Called(ctx, txn, entries)
	return args.Error(0)
}

func (m *MockJournalRepository) DeleteTransaction(ctx context.Context, scopeID, transactionID string) error {
	args := m.Called(ctx, scopeID, transactionID)
	return args.Error(0)
}

func (m *MockJournalRepository) FindAdjustingEntryByID(ctx context.Context, scopeID, adjustingEntryID string) (*domain.AdjustingEntry, error) {
	args := m.Called(ctx, scopeID, adjustingEntryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdjustingEntry), args.Error(1)
}

func (m *MockJournalRepository) ListAdjustingEntries(ctx context.Context, scopeID string) ([]domain.AdjustingEntry, error) {
	args := m.Called(ctx, scopeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdjustingEntry), args.Error(1)
}

func (m *MockJournalRepository) SaveAdjustingEntry(ctx context.Context, entry domain.AdjustingEntry, entries []domain.JournalEntry) error {
	args := m.Called(ctx, entry, entries)
	return args.Error(0)
}

func (m *MockJournalRepository) DeleteAdjustingEntry(ctx context.Context, scopeID, adjustingEntryID string) error {
	args := m.Called(ctx, scopeID, adjustingEntryID)
	return args.Error(0)
}

func (m *MockJournalRepository) ListClosingEntries(ctx context.Context, scopeID string) ([]domain.ClosingEntry, error) {
	args := m.Called(ctx, scopeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClosingEntry), args.Error(1)
}

func (m *MockJournalRepository) ReplaceClosingEntries(ctx context.Context, scopeID string, entries []domain.ClosingEntry, rows []domain.JournalEntry) (int, error) {
	args := m.Called(ctx, scopeID, entries, rows)
	return args.Int(0), args.Error(1)
}

// --- shared fixtures ---

var fixedNow = time.Date(2024, 12, 31, 17, 30, 5, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// sequentialIDs returns a generator of predictable UUID-shaped IDs.
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%08x-0000-4000-8000-000000000000", n)
	}
}

func activeChart() []domain.Account {
	accounts := domain.DefaultChartOfAccounts()
	for i := range accounts {
		accounts[i].IsActive = true
	}
	return accounts
}

func day(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// journalFixture builds journal rows with storage-like increasing IDs.
type journalFixture struct {
	nextID  int64
	entries []domain.JournalEntry
}

func (j *journalFixture) post(date, debit, credit string, amount int64, entryType domain.EntryType) {
	j.nextID += 2
	rows := domain.PostingPair(domain.JournalEntry{
		ScopeID:   "user-1",
		Date:      day(date),
		EntryType: entryType,
		Reference: fmt.Sprintf("REF-%d", j.nextID),
	}, debit, credit, decimal.NewFromInt(amount))
	rows[0].ID = j.nextID - 1
	rows[1].ID = j.nextID
	j.entries = append(j.entries, rows...)
}

// matching returns the rows the storage adapter would return for the filter.
func (j *journalFixture) matching(filter domain.LedgerFilter) []domain.JournalEntry {
	var out []domain.JournalEntry
	for _, e := range j.entries {
		if filter.AccountCode != "" && e.AccountCode != filter.AccountCode {
			continue
		}
		if filter.EndDate != nil && e.Date.After(*filter.EndDate) {
			continue
		}
		if filter.StartDate != nil && e.Date.Before(*filter.StartDate) {
			continue
		}
		if !filter.Includes(e.EntryType) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// tradingPeriod is a small period: capital in, a purchase, a sale, rent, an accrual and a drawing.
func tradingPeriod() *journalFixture {
	j := &journalFixture{}
	j.post("2024-01-01", "1101", "3101", 50_000_000, domain.EntryRegular)
	j.post("2024-01-05", "5101", "1101", 8_000_000, domain.EntryRegular)
	j.post("2024-01-10", "1101", "4101", 15_000_000, domain.EntryRegular)
	j.post("2024-01-15", "5203", "1101", 2_000_000, domain.EntryRegular)
	j.post("2024-01-20", "3102", "1101", 1_000_000, domain.EntryRegular)
	j.post("2024-01-31", "5301", "1311", 500_000, domain.EntryAdjusting)
	return j
}
