package dto

import (
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ClosingRequest selects the posting date of the generated closing entries.
type ClosingRequest struct {
	ClosingDate string `json:"closingDate" form:"closing_date" binding:"omitempty,datetime=2006-01-02"`
}

// ClosingEntryResponse defines the data returned for a closing entry.
type ClosingEntryResponse struct {
	ClosingEntryID    string             `json:"closingEntryID,omitempty"`
	Date              string             `json:"date"`
	Reference         string             `json:"reference"`
	Description       string             `json:"description"`
	DebitAccountCode  string             `json:"debitAccountCode"`
	DebitAccountName  string             `json:"debitAccountName"`
	CreditAccountCode string             `json:"creditAccountCode"`
	CreditAccountName string             `json:"creditAccountName"`
	Amount            decimal.Decimal    `json:"amount"`
	Kind              domain.ClosingKind `json:"kind"`
}

// ClosingPreviewResponse lists generated entries without saving them.
type ClosingPreviewResponse struct {
	NetIncome decimal.Decimal        `json:"netIncome"`
	Entries   []ClosingEntryResponse `json:"entries"`
}

// ClosingRunResponse is the outcome of generating and saving closing entries.
type ClosingRunResponse struct {
	ClosingPreviewResponse
	Result domain.ClosingResult `json:"result"`
}

// ToClosingEntryResponse converts a closing entry to its DTO.
func ToClosingEntryResponse(ce *domain.ClosingEntry) ClosingEntryResponse {
	return ClosingEntryResponse{
		ClosingEntryID:    ce.ClosingEntryID,
		Date:              ce.Date.Format(domain.DateLayout),
		Reference:         ce.Reference,
		Description:       ce.Description,
		DebitAccountCode:  ce.DebitAccountCode,
		DebitAccountName:  ce.DebitAccountName,
		CreditAccountCode: ce.CreditAccountCode,
		CreditAccountName: ce.CreditAccountName,
		Amount:            ce.Amount,
		Kind:              ce.Kind,
	}
}

// ToListClosingEntryResponse converts a slice of closing entries.
func ToListClosingEntryResponse(entries []domain.ClosingEntry) []ClosingEntryResponse {
	res := make([]ClosingEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToClosingEntryResponse(&entries[i])
	}
	return res
}

// ToClosingPreviewResponse converts generated entries and net income.
func ToClosingPreviewResponse(entries []domain.ClosingEntry, netIncome decimal.Decimal) ClosingPreviewResponse {
	return ClosingPreviewResponse{NetIncome: netIncome, Entries: ToListClosingEntryResponse(entries)}
}
