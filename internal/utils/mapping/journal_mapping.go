package mapping

import (
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/SscSPs/bookkeeping_ledger/internal/models"
)

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:          d.ID,
		ScopeID:          d.ScopeID,
		EntryDate:        d.Date,
		Description:      d.Description,
		AccountCode:      d.AccountCode,
		Debit:            d.Debit,
		Credit:           d.Credit,
		Reference:        d.Reference,
		EntryType:        string(d.EntryType),
		TransactionID:    nullable(d.TransactionID),
		AdjustingEntryID: nullable(d.AdjustingEntryID),
		ClosingEntryID:   nullable(d.ClosingEntryID),
		Processed:        d.Processed,
		CreatedAt:        d.CreatedAt,
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		ID:               m.EntryID,
		ScopeID:          m.ScopeID,
		Date:             m.EntryDate,
		Description:      m.Description,
		AccountCode:      m.AccountCode,
		Debit:            m.Debit,
		Credit:           m.Credit,
		Reference:        m.Reference,
		EntryType:        domain.EntryType(m.EntryType),
		TransactionID:    deref(m.TransactionID),
		AdjustingEntryID: deref(m.AdjustingEntryID),
		ClosingEntryID:   deref(m.ClosingEntryID),
		Processed:        m.Processed,
		CreatedAt:        m.CreatedAt,
	}
}

// ToDomainJournalEntrySlice converts a slice of model JournalEntries
func ToDomainJournalEntrySlice(ms []models.JournalEntry) []domain.JournalEntry {
	ds := make([]domain.JournalEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalEntry(m)
	}
	return ds
}

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:     d.TransactionID,
		ScopeID:           d.ScopeID,
		TransactionDate:   d.Date,
		Description:       d.Description,
		DebitAccountCode:  d.DebitAccountCode,
		CreditAccountCode: d.CreditAccountCode,
		Amount:            d.Amount,
		Reference:         d.Reference,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:     m.TransactionID,
		ScopeID:           m.ScopeID,
		Date:              m.TransactionDate,
		Description:       m.Description,
		DebitAccountCode:  m.DebitAccountCode,
		CreditAccountCode: m.CreditAccountCode,
		Amount:            m.Amount,
		Reference:         m.Reference,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// ToModelAdjustingEntry converts a domain AdjustingEntry to a model AdjustingEntry
func ToModelAdjustingEntry(d domain.AdjustingEntry) models.AdjustingEntry {
	return models.AdjustingEntry{
		AdjustingEntryID:  d.AdjustingEntryID,
		ScopeID:           d.ScopeID,
		EntryDate:         d.Date,
		Reference:         d.Reference,
		Description:       d.Description,
		DebitAccountCode:  d.DebitAccountCode,
		CreditAccountCode: d.CreditAccountCode,
		Amount:            d.Amount,
		AdjustmentType:    d.AdjustmentType,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAdjustingEntry converts a model AdjustingEntry to a domain AdjustingEntry
func ToDomainAdjustingEntry(m models.AdjustingEntry) domain.AdjustingEntry {
	return domain.AdjustingEntry{
		AdjustingEntryID:  m.AdjustingEntryID,
		ScopeID:           m.ScopeID,
		Date:              m.EntryDate,
		Reference:         m.Reference,
		Description:       m.Description,
		DebitAccountCode:  m.DebitAccountCode,
		CreditAccountCode: m.CreditAccountCode,
		Amount:            m.Amount,
		AdjustmentType:    m.AdjustmentType,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelClosingEntry converts a domain ClosingEntry to a model ClosingEntry
func ToModelClosingEntry(d domain.ClosingEntry) models.ClosingEntry {
	return models.ClosingEntry{
		ClosingEntryID:    d.ClosingEntryID,
		ScopeID:           d.ScopeID,
		EntryDate:         d.Date,
		Reference:         d.Reference,
		Description:       d.Description,
		DebitAccountCode:  d.DebitAccountCode,
		DebitAccountName:  d.DebitAccountName,
		CreditAccountCode: d.CreditAccountCode,
		CreditAccountName: d.CreditAccountName,
		Amount:            d.Amount,
		ClosingKind:       string(d.Kind),
		CreatedAt:         d.CreatedAt,
	}
}

// ToDomainClosingEntry converts a model ClosingEntry to a domain ClosingEntry
func ToDomainClosingEntry(m models.ClosingEntry) domain.ClosingEntry {
	return domain.ClosingEntry{
		ClosingEntryID:    m.ClosingEntryID,
		ScopeID:           m.ScopeID,
		Date:              m.EntryDate,
		Reference:         m.Reference,
		Description:       m.Description,
		DebitAccountCode:  m.DebitAccountCode,
		DebitAccountName:  m.DebitAccountName,
		CreditAccountCode: m.CreditAccountCode,
		CreditAccountName: m.CreditAccountName,
		Amount:            m.Amount,
		Kind:              domain.ClosingKind(m.ClosingKind),
		CreatedAt:         m.CreatedAt,
	}
}
