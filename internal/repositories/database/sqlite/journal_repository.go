package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/SscSPs/bookkeeping_ledger/internal/apperrors"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_ledger/internal/models"
	"github.com/SscSPs/bookkeeping_ledger/internal/utils/mapping"
	"github.com/SscSPs/bookkeeping_ledger/internal/utils/pagination"
	"github.com/google/uuid"
)

const insertJournalEntrySQL = `
		INSERT INTO journal_entries (
			scope_id, entry_date, description, account_code, debit, credit, reference, entry_type,
			transaction_id, adjusting_entry_id, closing_entry_id, is_processed, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const transactionColumns = `transaction_id, scope_id, transaction_date, description, debit_account_code,
		credit_account_code, amount, reference, created_at, created_by, last_updated_at, last_updated_by`

const adjustingColumns = `adjusting_entry_id, scope_id, entry_date, reference, description, debit_account_code,
		credit_account_code, amount, adjustment_type, created_at, created_by, last_updated_at, last_updated_by`

// JournalRepository stores journal rows with their transaction, adjusting and closing headers.
type JournalRepository struct {
	store *Store
}

var _ portsrepo.JournalRepositoryFacade = (*JournalRepository)(nil)

func insertJournalEntries(ctx context.Context, tx *sql.Tx, entries []domain.JournalEntry) error {
	stmt, err := tx.PrepareContext(ctx, insertJournalEntrySQL)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to prepare journal insert", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		m := mapping.ToModelJournalEntry(e)
		_, err := stmt.ExecContext(ctx,
			m.ScopeID, formatDate(m.EntryDate), m.Description, m.AccountCode, m.Debit.String(), m.Credit.String(),
			m.Reference, m.EntryType, nullString(m.TransactionID), nullString(m.AdjustingEntryID),
			nullString(m.ClosingEntryID), boolToInt(m.Processed), formatTimestamp(m.CreatedAt),
		)
		if err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to insert journal entry %d", i), err)
		}
	}
	return nil
}

func scanJournalEntry(row rowScanner) (models.JournalEntry, error) {
	var (
		m                     models.JournalEntry
		entryDate, createdAt  string
		processed             int
		txnID, adjID, closeID sql.NullString
	)
	err := row.Scan(
		&m.EntryID,
		&m.ScopeID,
		&entryDate,
		&m.Description,
		&m.AccountCode,
		&m.Debit,
		&m.Credit,
		&m.Reference,
		&m.EntryType,
		&txnID,
		&adjID,
		&closeID,
		&processed,
		&createdAt,
	)
	if err != nil {
		return m, err
	}
	m.TransactionID = stringPtr(txnID)
	m.AdjustingEntryID = stringPtr(adjID)
	m.ClosingEntryID = stringPtr(closeID)
	m.Processed = processed != 0
	if m.EntryDate, err = parseDate(entryDate); err != nil {
		return m, fmt.Errorf("parse entry_date of journal entry %d: %w", m.EntryID, err)
	}
	if m.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return m, fmt.Errorf("parse created_at of journal entry %d: %w", m.EntryID, err)
	}
	return m, nil
}

// FindJournalEntries returns the scope's entries matching the filter, ordered by date then id.
func (r *JournalRepository) FindJournalEntries(ctx context.Context, scopeID string, filter domain.LedgerFilter) ([]domain.JournalEntry, error) {
	types := []any{string(domain.EntryRegular)}
	if filter.IncludeAdjusting {
		types = append(types, string(domain.EntryAdjusting))
	}
	if filter.IncludeClosing {
		types = append(types, string(domain.EntryClosing))
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(types)), ",")
	conditions := []string{"scope_id = ?", "entry_type IN (" + placeholders + ")"}
	args := append([]any{scopeID}, types...)
	if filter.AccountCode != "" {
		conditions = append(conditions, "account_code = ?")
		args = append(args, filter.AccountCode)
	}
	if filter.StartDate != nil {
		conditions = append(conditions, "entry_date >= ?")
		args = append(args, formatDate(*filter.StartDate))
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "entry_date <= ?")
		args = append(args, formatDate(*filter.EndDate))
	}

	query := `
		SELECT entry_id, scope_id, entry_date, description, account_code, debit, credit, reference, entry_type,
		       transaction_id, adjusting_entry_id, closing_entry_id, is_processed, created_at
		FROM journal_entries
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY entry_date, entry_id`

	rows, err := r.store.db.Reader.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query journal entries", err)
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		m, err := scanJournalEntry(rows)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan journal entry row", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating journal entry rows", err)
	}

	return mapping.ToDomainJournalEntrySlice(entries), nil
}

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var (
		m                             models.Transaction
		txnDate, createdAt, updatedAt string
	)
	err := row.Scan(
		&m.TransactionID,
		&m.ScopeID,
		&txnDate,
		&m.Description,
		&m.DebitAccountCode,
		&m.CreditAccountCode,
		&m.Amount,
		&m.Reference,
		&createdAt,
		&m.CreatedBy,
		&updatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return m, err
	}
	if m.TransactionDate, err = parseDate(txnDate); err != nil {
		return m, fmt.Errorf("parse transaction_date of %s: %w", m.TransactionID, err)
	}
	if m.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return m, fmt.Errorf("parse created_at of %s: %w", m.TransactionID, err)
	}
	if m.LastUpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return m, fmt.Errorf("parse last_updated_at of %s: %w", m.TransactionID, err)
	}
	return m, nil
}

// FindTransactionByID retrieves a transaction of the scope.
func (r *JournalRepository) FindTransactionByID(ctx context.Context, scopeID, transactionID string) (*domain.Transaction, error) {
	if _, err := uuid.Parse(transactionID); err != nil {
		return nil, apperrors.NewNotFoundError("transaction " + transactionID)
	}
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = ? AND scope_id = ?`

	m, err := scanTransaction(r.store.db.Reader.QueryRowContext(ctx, query, transactionID, scopeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("transaction " + transactionID)
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ListTransactions returns transactions newest first using token-based pagination.
func (r *JournalRepository) ListTransactions(ctx context.Context, scopeID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE scope_id = ?`
	args := []any{scopeID}
	if nextToken != nil && *nextToken != "" {
		cursor, decodeErr := pagination.DecodeCursor(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", decodeErr)
		}
		query += ` AND (transaction_date, created_at, transaction_id) < (?, ?, ?)`
		args = append(args, formatDate(cursor.Date), formatTimestamp(cursor.CreatedAt), cursor.ID)
	}
	query += ` ORDER BY transaction_date DESC, created_at DESC, transaction_id DESC LIMIT ?`
	args = append(args, fetchLimit)

	rows, err := r.store.db.Reader.QueryContext(ctx, query, args...)
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
		token := pagination.CursorFor(mapping.ToDomainTransaction(results[limit-1])).Encode()
		nextTokenVal = &token
		results = results[:limit]
	}

	return mapping.ToDomainTransactionSlice(results), nextTokenVal, nil
}

// SaveTransaction persists a transaction together with its journal entries in one unit.
func (r *JournalRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, entries []domain.JournalEntry) error {
	m := mapping.ToModelTransaction(txn)
	return r.store.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO transactions (`+transactionColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			m.TransactionID, m.ScopeID, formatDate(m.TransactionDate), m.Description, m.DebitAccountCode,
			m.CreditAccountCode, m.Amount.String(), m.Reference, formatTimestamp(m.CreatedAt), m.CreatedBy,
			formatTimestamp(m.LastUpdatedAt), m.LastUpdatedBy,
		)
		if err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to insert transaction", err)
		}
		return insertJournalEntries(ctx, tx, entries)
	})
}

// deleteWithRows removes a header row and the journal rows pointing at it.
func (r *JournalRepository) deleteWithRows(ctx context.Context, table, idColumn, scopeID, id, resource string) error {
	return r.store.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM journal_entries WHERE `+idColumn+` = ? AND scope_id = ?`, id, scopeID); err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete journal entries of "+resource, err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE `+idColumn+` = ? AND scope_id = ?`, id, scopeID)
		if err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete "+resource, err)
		}
		return requireAffected(res, resource)
	})
}

// DeleteTransaction removes a transaction and its journal entries in one unit.
func (r *JournalRepository) DeleteTransaction(ctx context.Context, scopeID, transactionID string) error {
	if _, err := uuid.Parse(transactionID); err != nil {
		return apperrors.NewNotFoundError("transaction " + transactionID)
	}
	return r.deleteWithRows(ctx, "transactions", "transaction_id", scopeID, transactionID, "transaction "+transactionID)
}

func scanAdjustingEntry(row rowScanner) (models.AdjustingEntry, error) {
	var (
		m                               models.AdjustingEntry
		entryDate, createdAt, updatedAt string
	)
	err := row.Scan(
		&m.AdjustingEntryID,
		&m.ScopeID,
		&entryDate,
		&m.Reference,
		&m.Description,
		&m.DebitAccountCode,
		&m.CreditAccountCode,
		&m.Amount,
		&m.AdjustmentType,
		&createdAt,
		&m.CreatedBy,
		&updatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return m, err
	}
	if m.EntryDate, err = parseDate(entryDate); err != nil {
		return m, fmt.Errorf("parse entry_date of %s: %w", m.AdjustingEntryID, err)
	}
	if m.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return m, fmt.Errorf("parse created_at of %s: %w", m.AdjustingEntryID, err)
	}
	if m.LastUpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return m, fmt.Errorf("parse last_updated_at of %s: %w", m.AdjustingEntryID, err)
	}
	return m, nil
}

// FindAdjustingEntryByID retrieves an adjusting entry of the scope.
func (r *JournalRepository) FindAdjustingEntryByID(ctx context.Context, scopeID, adjustingEntryID string) (*domain.AdjustingEntry, error) {
	if _, err := uuid.Parse(adjustingEntryID); err != nil {
		return nil, apperrors.NewNotFoundError("adjusting entry " + adjustingEntryID)
	}
	query := `SELECT ` + adjustingColumns + ` FROM adjusting_entries WHERE adjusting_entry_id = ? AND scope_id = ?`

	m, err := scanAdjustingEntry(r.store.db.Reader.QueryRowContext(ctx, query, adjustingEntryID, scopeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("adjusting entry " + adjustingEntryID)
		}
		return nil, fmt.Errorf("failed to find adjusting entry %s: %w", adjustingEntryID, err)
	}

	entry := mapping.ToDomainAdjustingEntry(m)
	return &entry, nil
}

// ListAdjustingEntries returns the scope's adjusting entries in posting order.
func (r *JournalRepository) ListAdjustingEntries(ctx context.Context, scopeID string) ([]domain.AdjustingEntry, error) {
	query := `SELECT ` + adjustingColumns + ` FROM adjusting_entries WHERE scope_id = ? ORDER BY entry_date, created_at`

	rows, err := r.store.db.Reader.QueryContext(ctx, query, scopeID)
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
func (r *JournalRepository) SaveAdjustingEntry(ctx context.Context, entry domain.AdjustingEntry, entries []domain.JournalEntry) error {
	m := mapping.ToModelAdjustingEntry(entry)
	return r.store.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO adjusting_entries (`+adjustingColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			m.AdjustingEntryID, m.ScopeID, formatDate(m.EntryDate), m.Reference, m.Description, m.DebitAccountCode,
			m.CreditAccountCode, m.Amount.String(), m.AdjustmentType, formatTimestamp(m.CreatedAt), m.CreatedBy,
			formatTimestamp(m.LastUpdatedAt), m.LastUpdatedBy,
		)
		if err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to insert adjusting entry", err)
		}
		return insertJournalEntries(ctx, tx, entries)
	})
}

// DeleteAdjustingEntry removes an adjusting entry and its journal entries in one unit.
func (r *JournalRepository) DeleteAdjustingEntry(ctx context.Context, scopeID, adjustingEntryID string) error {
	if _, err := uuid.Parse(adjustingEntryID); err != nil {
		return apperrors.NewNotFoundError("adjusting entry " + adjustingEntryID)
	}
	return r.deleteWithRows(ctx, "adjusting_entries", "adjusting_entry_id", scopeID, adjustingEntryID, "adjusting entry "+adjustingEntryID)
}

// ListClosingEntries returns the saved closing entries ordered by reference.
func (r *JournalRepository) ListClosingEntries(ctx context.Context, scopeID string) ([]domain.ClosingEntry, error) {
	rows, err := r.store.db.Reader.QueryContext(ctx, `
		SELECT closing_entry_id, scope_id, entry_date, reference, description, debit_account_code,
		       debit_account_name, credit_account_code, credit_account_name, amount, closing_kind, created_at
		FROM closing_entries
		WHERE scope_id = ?
		ORDER BY reference`, scopeID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query closing entries", err)
	}
	defer rows.Close()

	var entries []domain.ClosingEntry
	for rows.Next() {
		var (
			m                    models.ClosingEntry
			entryDate, createdAt string
		)
		if err := rows.Scan(
			&m.ClosingEntryID,
			&m.ScopeID,
			&entryDate,
			&m.Reference,
			&m.Description,
			&m.DebitAccountCode,
			&m.DebitAccountName,
			&m.CreditAccountCode,
			&m.CreditAccountName,
			&m.Amount,
			&m.ClosingKind,
			&createdAt,
		); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan closing entry row", err)
		}
		if m.EntryDate, err = parseDate(entryDate); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to parse closing entry date", err)
		}
		if m.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to parse closing entry timestamp", err)
		}
		entries = append(entries, mapping.ToDomainClosingEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating closing entry rows", err)
	}
	return entries, nil
}

// ReplaceClosingEntries deletes the scope's closing set with its journal rows and inserts the new one.
func (r *JournalRepository) ReplaceClosingEntries(ctx context.Context, scopeID string, entries []domain.ClosingEntry, rows []domain.JournalEntry) (int, error) {
	err := r.store.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM journal_entries WHERE scope_id = ? AND entry_type = ?`, scopeID, string(domain.EntryClosing)); err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete closing journal entries", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM closing_entries WHERE scope_id = ?`, scopeID); err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete closing entries", err)
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO closing_entries (
				closing_entry_id, scope_id, entry_date, reference, description, debit_account_code,
				debit_account_name, credit_account_code, credit_account_name, amount, closing_kind, created_at
			)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to prepare closing insert", err)
		}
		defer stmt.Close()

		for _, ce := range entries {
			m := mapping.ToModelClosingEntry(ce)
			if _, err := stmt.ExecContext(ctx,
				m.ClosingEntryID, scopeID, formatDate(m.EntryDate), m.Reference, m.Description, m.DebitAccountCode,
				m.DebitAccountName, m.CreditAccountCode, m.CreditAccountName, m.Amount.String(), m.ClosingKind,
				formatTimestamp(m.CreatedAt),
			); err != nil {
				return apperrors.NewAppError(http.StatusInternalServerError, "failed to insert closing entry "+ce.Reference, err)
			}
		}

		return insertJournalEntries(ctx, tx, rows)
	})
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}
