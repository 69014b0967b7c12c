package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalEntrySourceIDsBecomeNullable(t *testing.T) {
	entry := domain.JournalEntry{
		ID:            7,
		ScopeID:       "scope",
		Date:          time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		AccountCode:   "1101",
		Debit:         decimal.NewFromInt(15_000_000),
		Credit:        decimal.Zero,
		EntryType:     domain.EntryRegular,
		TransactionID: "7a1c",
	}

	m := ToModelJournalEntry(entry)
	require.NotNil(t, m.TransactionID)
	assert.Equal(t, "7a1c", *m.TransactionID)
	assert.Nil(t, m.AdjustingEntryID, "empty source IDs must map to NULL")
	assert.Nil(t, m.ClosingEntryID)
	assert.Equal(t, "regular", m.EntryType)

	assert.Equal(t, entry, ToDomainJournalEntry(m))
}

func TestClosingEntryKindSurvivesMapping(t *testing.T) {
	ce := domain.ClosingEntry{Reference: "CLS-PRIVE-20241231-006", Kind: domain.ClosingDrawing, Amount: decimal.NewFromInt(1)}
	m := ToModelClosingEntry(ce)
	assert.Equal(t, "PRIVE", m.ClosingKind)
	assert.Equal(t, domain.ClosingDrawing, ToDomainClosingEntry(m).Kind)
}
