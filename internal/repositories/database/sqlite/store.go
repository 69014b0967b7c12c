// Package sqlite is the embedded storage adapter: the same repositories as the
// Postgres adapter, backed by a single SQLite file (or memory) via modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_ledger/pkg/database"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Dates are stored as YYYY-MM-DD text and timestamps as fixed-width UTC text so that
// string order matches time order.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

// Store owns the database handles shared by the repositories.
type Store struct {
	db *database.SQLiteDB
}

// NewStore migrates the schema and returns a store over db.
func NewStore(ctx context.Context, db *database.SQLiteDB) (*Store, error) {
	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// NewRepositoryProvider builds the SQLite-backed repositories.
func (s *Store) NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: &AccountRepository{store: s},
		JournalRepo: &JournalRepository{store: s},
	}
}

// withTx runs fn in a write transaction.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *Store) migrate(ctx context.Context) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY
			)
		`); err != nil {
			return fmt.Errorf("create schema_version: %w", err)
		}

		var version int
		if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&version); err != nil {
			return fmt.Errorf("read schema version: %w", err)
		}

		if version < 1 {
			if err := migrateV1(ctx, tx); err != nil {
				return fmt.Errorf("migration v1: %w", err)
			}
		}
		return nil
	})
}

func migrateV1(ctx context.Context, tx *sql.Tx) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			code            TEXT PRIMARY KEY,
			name            TEXT NOT NULL,
			account_type    TEXT NOT NULL,
			category        TEXT NOT NULL DEFAULT '',
			normal_balance  TEXT NOT NULL CHECK (normal_balance IN ('Debit','Kredit')),
			description     TEXT NOT NULL DEFAULT '',
			is_active       INTEGER NOT NULL DEFAULT 1,
			created_at      TEXT NOT NULL,
			created_by      TEXT NOT NULL,
			last_updated_at TEXT NOT NULL,
			last_updated_by TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS transactions (
			transaction_id      TEXT PRIMARY KEY,
			scope_id            TEXT NOT NULL,
			transaction_date    TEXT NOT NULL,
			description         TEXT NOT NULL,
			debit_account_code  TEXT NOT NULL,
			credit_account_code TEXT NOT NULL,
			amount              TEXT NOT NULL,
			reference           TEXT NOT NULL,
			created_at          TEXT NOT NULL,
			created_by          TEXT NOT NULL,
			last_updated_at     TEXT NOT NULL,
			last_updated_by     TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_scope_date ON transactions(scope_id, transaction_date, created_at)`,

		`CREATE TABLE IF NOT EXISTS adjusting_entries (
			adjusting_entry_id  TEXT PRIMARY KEY,
			scope_id            TEXT NOT NULL,
			entry_date          TEXT NOT NULL,
			reference           TEXT NOT NULL,
			description         TEXT NOT NULL,
			debit_account_code  TEXT NOT NULL,
			credit_account_code TEXT NOT NULL,
			amount              TEXT NOT NULL,
			adjustment_type     TEXT NOT NULL DEFAULT '',
			created_at          TEXT NOT NULL,
			created_by          TEXT NOT NULL,
			last_updated_at     TEXT NOT NULL,
			last_updated_by     TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS closing_entries (
			closing_entry_id    TEXT PRIMARY KEY,
			scope_id            TEXT NOT NULL,
			entry_date          TEXT NOT NULL,
			reference           TEXT NOT NULL,
			description         TEXT NOT NULL,
			debit_account_code  TEXT NOT NULL,
			debit_account_name  TEXT NOT NULL,
			credit_account_code TEXT NOT NULL,
			credit_account_name TEXT NOT NULL,
			amount              TEXT NOT NULL,
			closing_kind        TEXT NOT NULL,
			created_at          TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_closing_entries_scope ON closing_entries(scope_id, reference)`,

		`CREATE TABLE IF NOT EXISTS journal_entries (
			entry_id           INTEGER PRIMARY KEY AUTOINCREMENT,
			scope_id           TEXT NOT NULL,
			entry_date         TEXT NOT NULL,
			description        TEXT NOT NULL,
			account_code       TEXT NOT NULL,
			debit              TEXT NOT NULL DEFAULT '0',
			credit             TEXT NOT NULL DEFAULT '0',
			reference          TEXT NOT NULL,
			entry_type         TEXT NOT NULL CHECK (entry_type IN ('regular','adjusting','closing')),
			transaction_id     TEXT REFERENCES transactions(transaction_id) ON DELETE CASCADE,
			adjusting_entry_id TEXT REFERENCES adjusting_entries(adjusting_entry_id) ON DELETE CASCADE,
			closing_entry_id   TEXT REFERENCES closing_entries(closing_entry_id) ON DELETE CASCADE,
			is_processed       INTEGER NOT NULL DEFAULT 0,
			created_at         TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_journal_entries_scope_date ON journal_entries(scope_id, entry_date, entry_id)`,
		`CREATE INDEX IF NOT EXISTS idx_journal_entries_account ON journal_entries(scope_id, account_code)`,

		`INSERT INTO schema_version (version) VALUES (1)`,
	}

	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func formatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateLayout, s)
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(timestampLayout, s)
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	return code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY || code == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
