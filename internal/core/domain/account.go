package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset       AccountType = "Aset"
	ContraAsset AccountType = "Aset Kontra"
	Liability   AccountType = "Liabilitas"
	Equity      AccountType = "Ekuitas"
	Revenue     AccountType = "Pendapatan"
	Expense     AccountType = "Beban"
)

// AccountTypes lists every account type in statement order.
var AccountTypes = []AccountType{Asset, ContraAsset, Liability, Equity, Revenue, Expense}

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	for _, known := range AccountTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsNominal reports whether accounts of this type are zeroed at period close.
func (t AccountType) IsNominal() bool {
	return t == Revenue || t == Expense
}

// IsReal reports whether accounts of this type carry their balance forward.
func (t AccountType) IsReal() bool {
	return t.Valid() && !t.IsNominal()
}

// NormalBalance is the side on which an account's balance increases.
type NormalBalance string

const (
	NormalDebit  NormalBalance = "Debit"
	NormalCredit NormalBalance = "Kredit"
)

// Valid reports whether n is Debit or Kredit.
func (n NormalBalance) Valid() bool {
	return n == NormalDebit || n == NormalCredit
}

// Account is a row of the chart of accounts. Code is the natural key and never changes.
type Account struct {
	Code          string        `json:"code"`
	Name          string        `json:"name"`
	Type          AccountType   `json:"type"`
	Category      string        `json:"category"`
	NormalBalance NormalBalance `json:"normalBalance"`
	Description   string        `json:"description"`
	IsActive      bool          `json:"isActive"`
	AuditFields
}
