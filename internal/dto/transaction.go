package dto

import (
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest records a two-legged business transaction.
type CreateTransactionRequest struct {
	Date              string          `json:"date" binding:"required,datetime=2006-01-02"`
	Description       string          `json:"description" binding:"required,max=255"`
	DebitAccountCode  string          `json:"debitAccountCode" binding:"required"`
	CreditAccountCode string          `json:"creditAccountCode" binding:"required,nefield=DebitAccountCode"`
	Amount            decimal.Decimal `json:"amount"`
}

// CreateAdjustingEntryRequest records a period-end adjustment. Description defaults to one
// naming both accounts when left empty.
type CreateAdjustingEntryRequest struct {
	Date              string          `json:"date" binding:"required,datetime=2006-01-02"`
	Description       string          `json:"description" binding:"max=255"`
	DebitAccountCode  string          `json:"debitAccountCode" binding:"required"`
	CreditAccountCode string          `json:"creditAccountCode" binding:"required,nefield=DebitAccountCode"`
	Amount            decimal.Decimal `json:"amount"`
	AdjustmentType    string          `json:"adjustmentType" binding:"max=50"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID     string          `json:"transactionID"`
	Date              string          `json:"date"`
	Description       string          `json:"description"`
	DebitAccountCode  string          `json:"debitAccountCode"`
	CreditAccountCode string          `json:"creditAccountCode"`
	Amount            decimal.Decimal `json:"amount"`
	Reference         string          `json:"reference"`
	CreatedAt         time.Time       `json:"createdAt"`
	CreatedBy         string          `json:"createdBy"`
}

// ListTransactionsResponse is a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// AdjustingEntryResponse defines the data returned for an adjusting entry.
type AdjustingEntryResponse struct {
	AdjustingEntryID  string          `json:"adjustingEntryID"`
	Date              string          `json:"date"`
	Reference         string          `json:"reference"`
	Description       string          `json:"description"`
	DebitAccountCode  string          `json:"debitAccountCode"`
	CreditAccountCode string          `json:"creditAccountCode"`
	Amount            decimal.Decimal `json:"amount"`
	AdjustmentType    string          `json:"adjustmentType"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:     t.TransactionID,
		Date:              t.Date.Format(domain.DateLayout),
		Description:       t.Description,
		DebitAccountCode:  t.DebitAccountCode,
		CreditAccountCode: t.CreditAccountCode,
		Amount:            t.Amount,
		Reference:         t.Reference,
		CreatedAt:         t.CreatedAt,
		CreatedBy:         t.CreatedBy,
	}
}

// ToListTransactionsResponse converts a page of transactions.
func ToListTransactionsResponse(txns []domain.Transaction, nextToken *string) ListTransactionsResponse {
	res := ListTransactionsResponse{
		Transactions: make([]TransactionResponse, len(txns)),
		NextToken:    nextToken,
	}
	for i := range txns {
		res.Transactions[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// ToAdjustingEntryResponse converts a domain.AdjustingEntry to its DTO.
func ToAdjustingEntryResponse(a *domain.AdjustingEntry) AdjustingEntryResponse {
	return AdjustingEntryResponse{
		AdjustingEntryID:  a.AdjustingEntryID,
		Date:              a.Date.Format(domain.DateLayout),
		Reference:         a.Reference,
		Description:       a.Description,
		DebitAccountCode:  a.DebitAccountCode,
		CreditAccountCode: a.CreditAccountCode,
		Amount:            a.Amount,
		AdjustmentType:    a.AdjustmentType,
		CreatedAt:         a.CreatedAt,
	}
}

// ToListAdjustingEntryResponse converts a slice of adjusting entries.
func ToListAdjustingEntryResponse(entries []domain.AdjustingEntry) []AdjustingEntryResponse {
	res := make([]AdjustingEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToAdjustingEntryResponse(&entries[i])
	}
	return res
}
