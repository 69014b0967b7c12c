package dto

import (
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerQuery are the query parameters accepted by the ledger and journal endpoints.
// Adjusting entries are included unless include_adjusting=false is passed.
type LedgerQuery struct {
	AccountCode      string `form:"account"`
	StartDate        string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate          string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	IncludeAdjusting bool   `form:"include_adjusting,default=true"`
	IncludeClosing   bool   `form:"include_closing"`
}

// ToFilter parses the query into a domain.LedgerFilter.
func (q LedgerQuery) ToFilter() (domain.LedgerFilter, error) {
	f := domain.LedgerFilter{
		AccountCode:      q.AccountCode,
		IncludeAdjusting: q.IncludeAdjusting,
		IncludeClosing:   q.IncludeClosing,
	}
	var err error
	if f.StartDate, err = ParseOptionalDate(q.StartDate); err != nil {
		return f, err
	}
	if f.EndDate, err = ParseOptionalDate(q.EndDate); err != nil {
		return f, err
	}
	return f, nil
}

// ParseOptionalDate parses a YYYY-MM-DD string, returning nil for an empty one.
func ParseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// JournalEntryResponse is one journal row.
type JournalEntryResponse struct {
	ID          int64            `json:"id"`
	Date        string           `json:"date"`
	Description string           `json:"description"`
	AccountCode string           `json:"accountCode"`
	Debit       decimal.Decimal  `json:"debit"`
	Credit      decimal.Decimal  `json:"credit"`
	Reference   string           `json:"reference"`
	EntryType   domain.EntryType `json:"entryType"`
}

// LedgerLineResponse is a journal row with the running balance of its account.
type LedgerLineResponse struct {
	JournalEntryResponse
	AccountName    string          `json:"accountName"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
	Dangling       bool            `json:"dangling,omitempty"`
}

// LedgerResponse is the general ledger view.
type LedgerResponse struct {
	AccountCode   string               `json:"accountCode,omitempty"`
	Lines         []LedgerLineResponse `json:"lines"`
	Balance       decimal.Decimal      `json:"balance"`
	DanglingCount int                  `json:"danglingCount"`
}

// ToJournalEntryResponse converts a journal entry to its DTO.
func ToJournalEntryResponse(e domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		ID:          e.ID,
		Date:        e.Date.Format(domain.DateLayout),
		Description: e.Description,
		AccountCode: e.AccountCode,
		Debit:       e.Debit,
		Credit:      e.Credit,
		Reference:   e.Reference,
		EntryType:   e.EntryType,
	}
}

// ToJournalResponse converts a list of journal entries.
func ToJournalResponse(entries []domain.JournalEntry) []JournalEntryResponse {
	res := make([]JournalEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToJournalEntryResponse(e)
	}
	return res
}

// ToLedgerResponse converts a ledger scan result.
func ToLedgerResponse(accountCode string, result *domain.LedgerResult) LedgerResponse {
	res := LedgerResponse{
		AccountCode:   accountCode,
		Lines:         make([]LedgerLineResponse, len(result.Lines)),
		Balance:       result.Balance,
		DanglingCount: len(result.DanglingEntries),
	}
	for i, line := range result.Lines {
		res.Lines[i] = LedgerLineResponse{
			JournalEntryResponse: ToJournalEntryResponse(line.Entry),
			AccountName:          line.AccountName,
			RunningBalance:       line.RunningBalance,
			Dangling:             line.Dangling,
		}
	}
	return res
}
