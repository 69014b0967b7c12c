package dto

import (
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Code          string               `json:"code" binding:"required,max=20,alphanum"`
	Name          string               `json:"name" binding:"required,max=100"`
	Type          domain.AccountType   `json:"type" binding:"required,oneof=Aset 'Aset Kontra' Liabilitas Ekuitas Pendapatan Beban"`
	Category      string               `json:"category" binding:"max=100"`
	NormalBalance domain.NormalBalance `json:"normalBalance" binding:"required,oneof=Debit Kredit"`
	Description   string               `json:"description" binding:"max=500"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// The account code is not updatable. Pointers distinguish zero values from fields not provided.
type UpdateAccountRequest struct {
	Name          *string               `json:"name" binding:"omitempty,max=100"`
	Type          *domain.AccountType   `json:"type" binding:"omitempty,oneof=Aset 'Aset Kontra' Liabilitas Ekuitas Pendapatan Beban"`
	Category      *string               `json:"category" binding:"omitempty,max=100"`
	NormalBalance *domain.NormalBalance `json:"normalBalance" binding:"omitempty,oneof=Debit Kredit"`
	Description   *string               `json:"description" binding:"omitempty,max=500"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	ActiveOnly bool `form:"active_only"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	Code          string               `json:"code"`
	Name          string               `json:"name"`
	Type          domain.AccountType   `json:"type"`
	Category      string               `json:"category"`
	NormalBalance domain.NormalBalance `json:"normalBalance"`
	Description   string               `json:"description"`
	IsActive      bool                 `json:"isActive"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedBy     string               `json:"createdBy"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy string               `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		Code:          acc.Code,
		Name:          acc.Name,
		Type:          acc.Type,
		Category:      acc.Category,
		NormalBalance: acc.NormalBalance,
		Description:   acc.Description,
		IsActive:      acc.IsActive,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	Code    string          `json:"code"`
	Name    string          `json:"name"`
	AsOf    string          `json:"asOf,omitempty"`
	Balance decimal.Decimal `json:"balance"`
}

// ListAccountsResponse wraps the chart of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
