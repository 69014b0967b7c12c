package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/bookkeeping_ledger/internal/apperrors"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_ledger/internal/models"
	"github.com/SscSPs/bookkeeping_ledger/internal/utils/mapping"
	"github.com/SscSPs/bookkeeping_ledger/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const insertJournalEntrySQL = `
		INSERT INTO journal_entries (
			scope_id, entry_date, description, account_code, debit, credit, reference, entry_type,
			transaction_id, adjusting_entry_id, closing_entry_id, is_processed, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`

const transactionColumns = `transaction_id::text, scope_id, transaction_date, description, debit_account_code,
		credit_account_code, amount, reference, created_at, created_by, last_updated_at, last_updated_by`

const adjustingColumns = `adjusting_entry_id::text, scope_id, entry_date, reference, description, debit_account_code,
		credit_account_code, amount, adjustment_type, created_at, created_by, last_updated_at, last_updated_by`

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal, transaction and closing data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// insertJournalEntries queues every row in one batch on the given transaction.
func insertJournalEntries(ctx context.Context, tx pgx.Tx, entries []domain.JournalEntry) error {
	batch := &pgx.Batch{}
	for _, e := range entries {
		m := mapping.ToModelJournalEntry(e)
		batch.Queue(insertJournalEntrySQL,
			m.ScopeID, m.EntryDate, m.Description, m.AccountCode, m.Debit, m.Credit, m.Reference, m.EntryType,
			m.TransactionID, m.AdjustingEntryID, m.ClosingEntryID, m.Processed, m.CreatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for i := range entries {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to insert journal entry "+strconv.Itoa(i), err)
		}
	}
	return br.Close()
}

// FindJournalEntries returns the scope's entries matching the filter, ordered by date then id.
func (r *PgxJournalRepository) FindJournalEntries(ctx context.Context, scopeID string, filter domain.LedgerFilter) ([]domain.JournalEntry, error) {
	types := []string{string(domain.EntryRegular)}
	if filter.IncludeAdjusting {
		types = append(types, string(domain.EntryAdjusting))
	}
	if filter.IncludeClosing {
		types = append(types, string(domain.EntryClosing))
	}

	conditions := []string{"scope_id = $1", "entry_type = ANY($2)"}
	args := []any{scopeID, types}
	if filter.AccountCode != "" {
		args = append(args, filter.AccountCode)
		conditions = append(conditions, "account_code = $"+strconv.Itoa(len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, "entry_date >= $"+strconv.Itoa(len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, "entry_date <= $"+strconv.Itoa(len(args)))
	}

	query := `
		SELECT entry_id, scope_id, entry_date, description, account_code, debit, credit, reference, entry_type,
		       transaction_id::text, adjusting_entry_id::text, closing_entry_id::text, is_processed, created_at
		FROM journal_entries
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY entry_date, entry_id;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query journal entries", err)
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		var m models.JournalEntry
		if err := rows.Scan(
			&m.EntryID,
			&m.ScopeID,
			&m.EntryDate,
			&m.Description,
			&m.AccountCode,
			&m.Debit,
			&m.Credit,
			&m.Reference,
			&m.EntryType,
			&m.TransactionID,
			&m.AdjustingEntryID,
			&m.ClosingEntryID,
			&m.Processed,
			&m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan journal entry row", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating journal entry rows", err)
	}

	return mapping.ToDomainJournalEntrySlice(entries), nil
}

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.ScopeID,
		&m.TransactionDate,
		&m.Description,
		&m.DebitAccountCode,
		&m.CreditAccountCode,
		&m.Amount,
		&m.Reference,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindTransactionByID retrieves a transaction of the scope.
func (r *PgxJournalRepository) FindTransactionByID(ctx context.Context, scopeID, transactionID string) (*domain.Transaction, error) {
	if _, err := uuid.Parse(transactionID); err != nil {
		return nil, apperrors.NewNotFoundError("transaction " + transactionID)
	}
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 AND scope_id = $2;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, scopeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("transaction " + transactionID)
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ListTransactions returns transactions newest first using token-based pagination.
func (r *PgxJournalRepository) ListTransactions(ctx context.Context, scopeID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + transactionColumns + ` FROM transactions WHERE scope_id = $1`
	orderByClause := `ORDER BY transaction_date DESC, created_at DESC, transaction_id DESC`
	args := []any{scopeID}

	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		cursor, decodeErr := pagination.DecodeCursor(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", decodeErr)
		}
		query += ` AND (transaction_date, created_at, transaction_id) < ($2, $3, $4)`
		args = append(args, cursor.Date, cursor.CreatedAt, cursor.ID)
	}
	args = append(args, fetchLimit)
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query transactions", err)
	}
	defer rows.Close()

	results := make([]models.Transaction, 0, fetchLimit)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan transaction row", err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating transaction rows", err)
	}

	var nextTokenVal *string
	if len(results) > limit {
		// The token points to the last item included in this page.
		token := pagination.CursorFor(mapping.ToDomainTransaction(results[limit-1])).Encode()
		nextTokenVal = &token
		results = results[:limit]
	}

	return mapping.ToDomainTransactionSlice(results), nextTokenVal, nil
}

// SaveTransaction persists a transaction together with its journal entries in one unit.
func (r *PgxJournalRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, entries []domain.JournalEntry) error {
	m := mapping.ToModelTransaction(txn)
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO transactions (
				transaction_id, scope_id, transaction_date, description, debit_account_code, credit_account_code,
				amount, reference, created_at, created_by, last_updated_at, last_updated_by
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`,
			m.TransactionID, m.ScopeID, m.TransactionDate, m.Description, m.DebitAccountCode, m.CreditAccountCode,
			m.Amount, m.Reference, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to insert transaction", err)
		}
		return insertJournalEntries(ctx, tx, entries)
	})
}

// DeleteTransaction removes a transaction and its journal entries in one unit.
func (r *PgxJournalRepository) DeleteTransaction(ctx context.Context, scopeID, transactionID string) error {
	if _, err := uuid.Parse(transactionID); err != nil {
		return apperrors.NewNotFoundError("transaction " + transactionID)
	}
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM journal_entries WHERE transaction_id = $1 AND scope_id = $2;`, transactionID, scopeID); err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete transaction journal entries", err)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1 AND scope_id = $2;`, transactionID, scopeID)
		if err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete transaction", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("transaction " + transactionID)
		}
		return nil
	})
}

func scanAdjustingEntry(row pgx.Row) (models.AdjustingEntry, error) {
	var m models.AdjustingEntry
	err := row.Scan(
		&m.AdjustingEntryID,
		&m.ScopeID,
		&m.EntryDate,
		&m.Reference,
		&m.Description,
		&m.DebitAccountCode,
		&m.CreditAccountCode,
		&m.Amount,
		&m.AdjustmentType,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindAdjustingEntryByID retrieves an adjusting entry of the scope.
func (r *PgxJournalRepository) FindAdjustingEntryByID(ctx context.Context, scopeID, adjustingEntryID string) (*domain.AdjustingEntry, error) {
	if _, err := uuid.Parse(adjustingEntryID); err != nil {
		return nil, apperrors.NewNotFoundError("adjusting entry " + adjustingEntryID)
	}
	query := `SELECT ` + adjustingColumns + ` FROM adjusting_entries WHERE adjusting_entry_id = $1 AND scope_id = $2;`

	m, err := scanAdjustingEntry(r.Pool.QueryRow(ctx, query, adjustingEntryID, scopeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("adjusting entry " + adjustingEntryID)
		}
		return nil, fmt.Errorf("failed to find adjusting entry %s: %w", adjustingEntryID, err)
	}

	entry := mapping.ToDomainAdjustingEntry(m)
	return &entry, nil
}

// ListAdjustingEntries returns the scope's adjusting entries in posting order.
func (r *PgxJournalRepository) ListAdjustingEntries(ctx context.Context, scopeID string) ([]domain.AdjustingEntry, error) {
	query := `SELECT ` + adjustingColumns + ` FROM adjusting_entries WHERE scope_id = $1 ORDER BY entry_date, created_at;`

	rows, err := r.Pool.Query(ctx, query, scopeID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query adjusting entries", err)
	}
	defer rows.Close()

	var entries []domain.AdjustingEntry
	for rows.Next() {
		m, err := scanAdjustingEntry(rows)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan adjusting entry row", err)
		}
		entries = append(entries, mapping.ToDomainAdjustingEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating adjusting entry rows", err)
	}
	return entries, nil
}

// SaveAdjustingEntry persists an adjusting entry together with its journal entries.
func (r *PgxJournalRepository) SaveAdjustingEntry(ctx context.Context, entry domain.AdjustingEntry, entries []domain.JournalEntry) error {
	m := mapping.ToModelAdjustingEntry(entry)
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO adjusting_entries (
				adjusting_entry_id, scope_id, entry_date, reference, description, debit_account_code,
				credit_account_code, amount, adjustment_type, created_at, created_by, last_updated_at, last_updated_by
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`,
			m.AdjustingEntryID, m.ScopeID, m.EntryDate, m.Reference, m.Description, m.DebitAccountCode,
			m.CreditAccountCode, m.Amount, m.AdjustmentType, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to insert adjusting entry", err)
		}
		return insertJournalEntries(ctx, tx, entries)
	})
}

// DeleteAdjustingEntry removes an adjusting entry and its journal entries in one unit.
func (r *PgxJournalRepository) DeleteAdjustingEntry(ctx context.Context, scopeID, adjustingEntryID string) error {
	if _, err := uuid.Parse(adjustingEntryID); err != nil {
		return apperrors.NewNotFoundError("adjusting entry " + adjustingEntryID)
	}
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM journal_entries WHERE adjusting_entry_id = $1 AND scope_id = $2;`, adjustingEntryID, scopeID); err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete adjusting journal entries", err)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM adjusting_entries WHERE adjusting_entry_id = $1 AND scope_id = $2;`, adjustingEntryID, scopeID)
		if err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete adjusting entry", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("adjusting entry " + adjustingEntryID)
		}
		return nil
	})
}

// ListClosingEntries returns the saved closing entries ordered by reference.
func (r *PgxJournalRepository) ListClosingEntries(ctx context.Context, scopeID string) ([]domain.ClosingEntry, error) {
	query := `
		SELECT closing_entry_id::text, scope_id, entry_date, reference, description, debit_account_code,
		       debit_account_name, credit_account_code, credit_account_name, amount, closing_kind, created_at
		FROM closing_entries
		WHERE scope_id = $1
		ORDER BY reference;`

	rows, err := r.Pool.Query(ctx, query, scopeID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query closing entries", err)
	}
	defer rows.Close()

	var entries []domain.ClosingEntry
	for rows.Next() {
		var m models.ClosingEntry
		if err := rows.Scan(
			&m.ClosingEntryID,
			&m.ScopeID,
			&m.EntryDate,
			&m.Reference,
			&m.Description,
			&m.DebitAccountCode,
			&m.DebitAccountName,
			&m.CreditAccountCode,
			&m.CreditAccountName,
			&m.Amount,
			&m.ClosingKind,
			&m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan closing entry row", err)
		}
		entries = append(entries, mapping.ToDomainClosingEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating closing entry rows", err)
	}
	return entries, nil
}

// ReplaceClosingEntries deletes the scope's closing set with its journal rows and inserts the new one.
func (r *PgxJournalRepository) ReplaceClosingEntries(ctx context.Context, scopeID string, entries []domain.ClosingEntry, rows []domain.JournalEntry) (int, error) {
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM journal_entries WHERE scope_id = $1 AND entry_type = $2;`, scopeID, string(domain.EntryClosing)); err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete closing journal entries", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM closing_entries WHERE scope_id = $1;`, scopeID); err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete closing entries", err)
		}

		batch := &pgx.Batch{}
		for _, ce := range entries {
			m := mapping.ToModelClosingEntry(ce)
			batch.Queue(`
				INSERT INTO closing_entries (
					closing_entry_id, scope_id, entry_date, reference, description, debit_account_code,
					debit_account_name, credit_account_code, credit_account_name, amount, closing_kind, created_at
				)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`,
				m.ClosingEntryID, scopeID, m.EntryDate, m.Reference, m.Description, m.DebitAccountCode,
				m.DebitAccountName, m.CreditAccountCode, m.CreditAccountName, m.Amount, m.ClosingKind, m.CreatedAt,
			)
		}
		br := tx.SendBatch(ctx, batch)
		for _, ce := range entries {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return apperrors.NewAppError(http.StatusInternalServerError, "failed to insert closing entry "+ce.Reference, err)
			}
		}
		if err := br.Close(); err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to insert closing entries", err)
		}

		return insertJournalEntries(ctx, tx, rows)
	})
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}
