// Package accounting holds the pure ledger engine: balance replay, trial balances,
// financial statements and closing entry generation. Nothing here touches storage.
package accounting

import (
	"fmt"

	"github.com/SscSPs/bookkeeping_ledger/internal/apperrors"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount returns the change a debit/credit pair makes to an account's balance.
// Debit-normal accounts grow with debits; Kredit-normal accounts grow with credits.
func SignedAmount(normal domain.NormalBalance, debit, credit decimal.Decimal) decimal.Decimal {
	if normal == domain.NormalDebit {
		return debit.Sub(credit)
	}
	return credit.Sub(debit)
}

// SplitBalance places a signed balance into the debit or the credit column.
// A non-negative balance goes to the account's normal side, a negative one flips to the other side.
func SplitBalance(normal domain.NormalBalance, balance decimal.Decimal) (debit, credit decimal.Decimal) {
	onNormalSide := !balance.IsNegative()
	abs := balance.Abs()
	if (normal == domain.NormalDebit) == onNormalSide {
		return abs, decimal.Zero
	}
	return decimal.Zero, abs
}

// ValidatePosting checks a two-legged posting before anything is written.
func ValidatePosting(chart Chart, debitCode, creditCode string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	if debitCode == "" || creditCode == "" {
		return fmt.Errorf("%w: debit and credit accounts are required", apperrors.ErrValidation)
	}
	if debitCode == creditCode {
		return fmt.Errorf("%w: debit and credit accounts must differ", apperrors.ErrValidation)
	}
	if _, ok := chart[debitCode]; !ok {
		return fmt.Errorf("%w: debit account %s not found", apperrors.ErrValidation, debitCode)
	}
	if _, ok := chart[creditCode]; !ok {
		return fmt.Errorf("%w: credit account %s not found", apperrors.ErrValidation, creditCode)
	}
	return nil
}

// ValidateEntriesBalance checks that a group of journal entries balances and that each
// row carries exactly one positive side.
func ValidateEntriesBalance(entries []domain.JournalEntry) error {
	if len(entries) < 2 {
		return fmt.Errorf("%w: a posting needs at least two journal entries", apperrors.ErrValidation)
	}

	debits, credits := decimal.Zero, decimal.Zero
	for i, e := range entries {
		if e.Debit.IsNegative() || e.Credit.IsNegative() {
			return fmt.Errorf("%w: entry %d has a negative amount", apperrors.ErrValidation, i)
		}
		if e.Debit.IsZero() == e.Credit.IsZero() {
			return fmt.Errorf("%w: entry %d must have exactly one of debit or credit", apperrors.ErrValidation, i)
		}
		debits = debits.Add(e.Debit)
		credits = credits.Add(e.Credit)
	}

	if !debits.Equal(credits) {
		return fmt.Errorf("%w: debits %s do not equal credits %s", apperrors.ErrValidation, debits, credits)
	}
	return nil
}
