package models

// Account represents a row of the chart of accounts.
type Account struct {
	Code          string `db:"code"`
	Name          string `db:"name"`
	AccountType   string `db:"account_type"`
	Category      string `db:"category"`
	NormalBalance string `db:"normal_balance"`
	Description   string `db:"description"`
	IsActive      bool   `db:"is_active"`
	AuditFields
}
