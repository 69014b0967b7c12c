package pgsql_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/apperrors"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/services"
	"github.com/SscSPs/bookkeeping_ledger/internal/dto"
	"github.com/SscSPs/bookkeeping_ledger/internal/platform/config"
	"github.com/SscSPs/bookkeeping_ledger/internal/platform/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLedgerCycleOnPostgres needs a disposable database in PGSQL_TEST_URL.
func TestLedgerCycleOnPostgres(t *testing.T) {
	url := os.Getenv("PGSQL_TEST_URL")
	if url == "" {
		t.Skip("PGSQL_TEST_URL not set")
	}
	migrations, err := filepath.Abs("../../../../migrations")
	require.NoError(t, err)

	ctx := context.Background()
	cfg := &config.Config{
		StorageDriver: config.DriverPostgres,
		DatabaseURL:   url,
		EnableDBCheck: true,
		MigrationsURL: "file://" + migrations,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repos, closeFn, err := storage.Open(ctx, cfg, logger)
	require.NoError(t, err)
	defer closeFn()
	require.NoError(t, storage.RunMigrations(cfg, logger), "second run is a no-op")

	svc := services.NewServiceContainer(&repos)
	if count, err := repos.AccountRepo.CountAccounts(ctx); err == nil && count == 0 {
		_, err := svc.Account.InitializeDefaultAccounts(ctx, "integration")
		require.NoError(t, err)
	}

	scope := uuid.NewString()
	post := func(date, debit, credit string, amount int64) {
		_, err := svc.Transaction.RecordTransaction(ctx, scope, dto.CreateTransactionRequest{
			Date: date, Description: "integration", DebitAccountCode: debit, CreditAccountCode: credit,
			Amount: decimal.NewFromInt(amount),
		})
		require.NoError(t, err)
	}
	post("2024-01-01", "1101", "3101", 50_000_000)
	post("2024-01-05", "1101", "4101", 15_000_000)
	post("2024-01-06", "5203", "1101", 2_000_000)

	tb, err := svc.Reporting.TrialBalance(ctx, scope, domain.TrialBalanceUnadjusted, nil)
	require.NoError(t, err)
	assert.True(t, tb.IsBalanced())
	kas, ok := tb.Row("1101")
	require.True(t, ok)
	assert.True(t, kas.Debit.Equal(decimal.NewFromInt(63_000_000)), kas.Debit.String())

	page, err := svc.Transaction.ListTransactions(ctx, scope, dto.ListTransactionsParams{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page.Transactions, 2)
	require.NotNil(t, page.NextToken)
	assert.Equal(t, "2024-01-06", page.Transactions[0].Date)

	_, _, result, err := svc.Closing.RunClosing(ctx, scope, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.True(t, result.Success, result.Message)

	pc, err := svc.Reporting.PostClosingTrialBalance(ctx, scope)
	require.NoError(t, err)
	assert.True(t, pc.IsClean())

	before, err := svc.Closing.ListClosingEntries(ctx, scope)
	require.NoError(t, err)
	next, _, err := svc.Closing.GenerateClosingEntries(ctx, scope, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(next), 2)
	next[len(next)-1].ClosingEntryID = next[0].ClosingEntryID
	failed := svc.Closing.SaveClosingEntries(ctx, scope, next)
	assert.False(t, failed.Success)
	after, err := svc.Closing.ListClosingEntries(ctx, scope)
	require.NoError(t, err)
	require.Len(t, after, len(before), "failed replace keeps the previous set")
	for i := range before {
		assert.Equal(t, before[i].ClosingEntryID, after[i].ClosingEntryID)
	}
	pc, err = svc.Reporting.PostClosingTrialBalance(ctx, scope)
	require.NoError(t, err)
	assert.True(t, pc.IsClean(), "closing journal rows survive the failed replace")

	err = svc.Transaction.DeleteTransaction(ctx, uuid.NewString(), page.Transactions[0].TransactionID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "other scopes cannot delete")
}
