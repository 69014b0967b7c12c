package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/apperrors"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_ledger/internal/models"
	"github.com/SscSPs/bookkeeping_ledger/internal/utils/mapping"
)

const accountColumns = `code, name, account_type, category, normal_balance, description, is_active,
		created_at, created_by, last_updated_at, last_updated_by`

const insertAccountSQL = `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// AccountRepository stores the chart of accounts.
type AccountRepository struct {
	store *Store
}

var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

func accountArgs(m models.Account) []any {
	return []any{
		m.Code, m.Name, m.AccountType, m.Category, m.NormalBalance, m.Description, boolToInt(m.IsActive),
		formatTimestamp(m.CreatedAt), m.CreatedBy, formatTimestamp(m.LastUpdatedAt), m.LastUpdatedBy,
	}
}

func scanAccount(row rowScanner) (models.Account, error) {
	var (
		m                    models.Account
		active               int
		createdAt, updatedAt string
	)
	err := row.Scan(
		&m.Code,
		&m.Name,
		&m.AccountType,
		&m.Category,
		&m.NormalBalance,
		&m.Description,
		&active,
		&createdAt,
		&m.CreatedBy,
		&updatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return m, err
	}
	m.IsActive = active != 0
	if m.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return m, fmt.Errorf("parse created_at of account %s: %w", m.Code, err)
	}
	if m.LastUpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return m, fmt.Errorf("parse last_updated_at of account %s: %w", m.Code, err)
	}
	return m, nil
}

// SaveAccount inserts a new account.
func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	_, err := r.store.db.Writer.ExecContext(ctx, insertAccountSQL, accountArgs(mapping.ToModelAccount(account))...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: account with code %s already exists", apperrors.ErrDuplicate, account.Code)
		}
		return fmt.Errorf("failed to save account %s: %w", account.Code, err)
	}
	return nil
}

// SaveAccounts inserts a batch of accounts in one transaction.
func (r *AccountRepository) SaveAccounts(ctx context.Context, accounts []domain.Account) error {
	return r.store.withTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, insertAccountSQL)
		if err != nil {
			return fmt.Errorf("prepare account insert: %w", err)
		}
		defer stmt.Close()

		for _, a := range accounts {
			if _, err := stmt.ExecContext(ctx, accountArgs(mapping.ToModelAccount(a))...); err != nil {
				if isUniqueViolation(err) {
					return fmt.Errorf("%w: account with code %s already exists", apperrors.ErrDuplicate, a.Code)
				}
				return fmt.Errorf("failed to save account %s: %w", a.Code, err)
			}
		}
		return nil
	})
}

// FindAccountByCode retrieves an account by its code.
func (r *AccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE code = ?`

	m, err := scanAccount(r.store.db.Reader.QueryRowContext(ctx, query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("account " + code)
		}
		return nil, fmt.Errorf("failed to find account by code %s: %w", code, err)
	}

	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// ListAccounts retrieves the chart of accounts ordered by code.
func (r *AccountRepository) ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE (? = 0 OR is_active = 1) ORDER BY code`

	rows, err := r.store.db.Reader.QueryContext(ctx, query, boolToInt(activeOnly))
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}

	return mapping.ToDomainAccountSlice(accounts), nil
}

// CountAccounts returns the number of accounts in the registry.
func (r *AccountRepository) CountAccounts(ctx context.Context) (int, error) {
	var count int
	if err := r.store.db.Reader.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to count accounts", err)
	}
	return count, nil
}

// UpdateAccount updates everything except the code.
func (r *AccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	res, err := r.store.db.Writer.ExecContext(ctx, `
		UPDATE accounts
		SET name = ?, account_type = ?, category = ?, normal_balance = ?, description = ?,
		    last_updated_at = ?, last_updated_by = ?
		WHERE code = ?`,
		m.Name, m.AccountType, m.Category, m.NormalBalance, m.Description,
		formatTimestamp(m.LastUpdatedAt), m.LastUpdatedBy, m.Code,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", m.Code, err)
	}
	return requireAffected(res, "account "+m.Code)
}

// SetAccountActive flips the active flag of an account.
func (r *AccountRepository) SetAccountActive(ctx context.Context, code string, active bool, userID string, now time.Time) error {
	res, err := r.store.db.Writer.ExecContext(ctx,
		`UPDATE accounts SET is_active = ?, last_updated_at = ?, last_updated_by = ? WHERE code = ?`,
		boolToInt(active), formatTimestamp(now), userID, code,
	)
	if err != nil {
		return fmt.Errorf("failed to set active flag on account %s: %w", code, err)
	}
	return requireAffected(res, "account "+code)
}

// requireAffected turns a zero-row update or delete into a not-found error.
func requireAffected(res sql.Result, resource string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return apperrors.NewNotFoundError(resource)
	}
	return nil
}
